// Package logx defines leveled loggers that tag every message with the
// section of the program that produced it.
package logx

import (
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	NOTICE
	WARN
	ERROR
	CRITICAL
	LevelCount
)

var levelNames = [LevelCount]string{
	DEBUG:    "debug",
	INFO:     "info",
	NOTICE:   "notice",
	WARN:     "warn",
	ERROR:    "error",
	CRITICAL: "critical",
}

func (l Level) String() string {
	if l < 0 || l >= LevelCount {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name such as "debug" or "warning".
func ParseLevel(s string) (Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return WARN, nil
	}
	for i, n := range levelNames {
		if n == s {
			return Level(i), nil
		}
	}
	return DEBUG, fmt.Errorf("unknown log level %q", s)
}

type LoggerX interface {
	LogPrintX(section string, lvl Level, v ...interface{})
	LogPrintfX(section string, lvl Level, fmt string, v ...interface{})
}

type Logger interface {
	LogPrint(lvl Level, v ...interface{})
	LogPrintf(lvl Level, fmt string, v ...interface{})
}

type LogToX struct {
	section string
	logx    LoggerX
}

func (l LogToX) LogPrint(lvl Level, v ...interface{}) { l.logx.LogPrintX(l.section, lvl, v...) }
func (l LogToX) LogPrintf(lvl Level, fmt string, v ...interface{}) {
	l.logx.LogPrintfX(l.section, lvl, fmt, v...)
}
func NewLogToX(logx LoggerX, section string) LogToX { return LogToX{section: section, logx: logx} }

var _ Logger = LogToX{}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) LogPrint(Level, ...interface{})                   {}
func (NopLogger) LogPrintf(Level, string, ...interface{})          {}
func (NopLogger) LogPrintX(string, Level, ...interface{})          {}
func (NopLogger) LogPrintfX(string, Level, string, ...interface{}) {}

var _ Logger = NopLogger{}
var _ LoggerX = NopLogger{}
