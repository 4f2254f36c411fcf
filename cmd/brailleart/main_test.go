package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/brailleart"
	"github.com/kevin-cantwell/brailleart/logx"
)

type logged struct {
	lvl logx.Level
	msg string
}

type memLogger struct {
	lines []logged
}

func (m *memLogger) LogPrint(lvl logx.Level, v ...interface{}) {
	m.lines = append(m.lines, logged{lvl, fmt.Sprint(v...)})
}

func (m *memLogger) LogPrintf(lvl logx.Level, f string, v ...interface{}) {
	m.lines = append(m.lines, logged{lvl, fmt.Sprintf(f, v...)})
}

var errClosed = errors.New("stdout closed")

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errClosed }

var _ = Describe("emit", func() {
	var (
		dir string
		out bytes.Buffer
		log *memLogger
		art = brailleart.Art{"⣿⠁"}
	)

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "brailleart")
		Expect(err).NotTo(HaveOccurred())
		out.Reset()
		log = &memLogger{}
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("displays the art when no name is given", func() {
		Expect(emit(&out, log, brailleart.Sink{W: &out}, art)).To(Succeed())
		Expect(out.String()).To(Equal("⣿⠁\n"))
	})

	It("confirms where the art was saved", func() {
		name := filepath.Join(dir, "cat")
		Expect(emit(&out, log, brailleart.Sink{W: &out, Name: name}, art)).To(Succeed())
		Expect(out.String()).To(Equal("Saved to " + name + ".txt!\n"))

		data, err := ioutil.ReadFile(name + ".txt")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("⣿⠁\n"))
	})

	It("still shows the art when saving fails", func() {
		sink := brailleart.Sink{W: &out, Name: filepath.Join(dir, "missing", "cat")}
		err := emit(&out, log, sink, art)
		Expect(errors.Is(err, brailleart.ErrIO)).To(BeTrue())
		Expect(out.String()).To(Equal("⣿⠁\n"))
		Expect(log.lines).To(BeEmpty())
	})

	It("logs a failed fallback write", func() {
		sink := brailleart.Sink{Name: filepath.Join(dir, "missing", "cat")}
		err := emit(closedWriter{}, log, sink, art)
		Expect(errors.Is(err, brailleart.ErrIO)).To(BeTrue())
		Expect(log.lines).To(Equal([]logged{{logx.ERROR, "stdout closed"}}))
	})
})
