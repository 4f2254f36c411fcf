// Package filelogger implements logx.LoggerX on top of an *os.File.
package filelogger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"

	"github.com/kevin-cantwell/brailleart/logx"
)

type UseColor int

const (
	ColorAuto UseColor = iota
	ColorOn
	ColorOff
)

type logLevels [logx.LevelCount]string

var levelstrings = [2]logLevels{
	// uncolored
	{
		logx.DEBUG:    "   DEBUG",
		logx.INFO:     "    INFO",
		logx.NOTICE:   "  NOTICE",
		logx.WARN:     " WARNING",
		logx.ERROR:    "   ERROR",
		logx.CRITICAL: "CRITICAL",
	},
	// colored
	{
		logx.DEBUG:    "\033[37m   DEBUG\033[0m",
		logx.INFO:     "\033[34m    INFO\033[0m",
		logx.NOTICE:   "\033[32m  NOTICE\033[0m",
		logx.WARN:     "\033[33m WARNING\033[0m",
		logx.ERROR:    "\033[31m   ERROR\033[0m",
		logx.CRITICAL: "\033[35mCRITICAL\033[0m",
	},
}

var formatstrings = [2]string{
	// uncolored
	"%s %s [%s] ",
	// colored
	"%s %s [\033[36m%s\033[0m] ",
}

var _ logx.LoggerX = (*FileLogger)(nil)

// FileLogger writes one line per message. Messages below its level are
// dropped.
type FileLogger struct {
	w   io.Writer
	buf bytes.Buffer
	l   sync.Mutex
	t   uint
	m   logx.Level
}

var nowTime = time.Now

// NewFileLogger logs to f. With ColorAuto, colors are used only when f is a
// terminal.
func NewFileLogger(f *os.File, logLevel logx.Level, c UseColor) *FileLogger {
	l := &FileLogger{w: f, m: logLevel}
	fd := f.Fd()
	switch {
	case c == ColorOn:
		l.w = colorable.NewColorable(f)
		l.t = 1
	case c == ColorAuto && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)):
		l.w = colorable.NewColorable(f)
		l.t = 1
	}
	return l
}

func (l *FileLogger) Level() logx.Level {
	return l.m
}

func (l *FileLogger) prepareWrite(section string, lvl logx.Level) {
	l.buf.Reset()
	t := nowTime().UTC()
	var ts string
	if l.t != 0 {
		ts = t.Format("15:04:05")
	} else {
		ts = t.Format("2006-01-02 15:04:05")
	}
	fmt.Fprintf(&l.buf, formatstrings[l.t], ts, levelstrings[l.t][lvl], section)
}

func (l *FileLogger) finish() {
	if b := l.buf.Bytes(); len(b) == 0 || b[len(b)-1] != '\n' {
		l.buf.WriteByte('\n')
	}
	l.w.Write(l.buf.Bytes())
}

func (l *FileLogger) LogPrintX(section string, lvl logx.Level, v ...interface{}) {
	if l.m > lvl {
		return
	}

	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprint(&l.buf, v...)
	l.finish()
}

func (l *FileLogger) LogPrintfX(section string, lvl logx.Level, fmts string, v ...interface{}) {
	if l.m > lvl {
		return
	}

	l.l.Lock()
	defer l.l.Unlock()

	l.prepareWrite(section, lvl)
	fmt.Fprintf(&l.buf, fmts, v...)
	l.finish()
}
