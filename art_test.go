package brailleart_test

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/brailleart"
)

var _ = Describe("Art", func() {
	art := brailleart.Art{"⣿⠁", "⠁⣿"}

	It("terminates every line", func() {
		Expect(art.String()).To(Equal("⣿⠁\n⠁⣿\n"))
		Expect(brailleart.Art{}.String()).To(Equal(""))
	})

	It("writes UTF-8 text", func() {
		var buf bytes.Buffer
		n, err := art.WriteTo(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(BeEquivalentTo(buf.Len()))
		Expect(buf.String()).To(Equal(art.String()))
	})
})

var _ = Describe("Sink", func() {
	art := brailleart.Art{"⢕⢕"}

	var dir string

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "brailleart")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("displays art without a name", func() {
		var buf bytes.Buffer
		sink := brailleart.Sink{W: &buf, Name: "  "}
		Expect(sink.Path()).To(BeEmpty())
		Expect(sink.Put(art)).To(Succeed())
		Expect(buf.String()).To(Equal("⢕⢕\n"))
	})

	It("saves art to name.txt", func() {
		var buf bytes.Buffer
		sink := brailleart.Sink{W: &buf, Name: filepath.Join(dir, "saturn")}
		Expect(sink.Path()).To(Equal(filepath.Join(dir, "saturn.txt")))
		Expect(sink.Put(art)).To(Succeed())
		data, err := ioutil.ReadFile(sink.Path())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("⢕⢕\n"))
		Expect(buf.Len()).To(BeZero())
	})

	It("reports unwritable files as io failures", func() {
		sink := brailleart.Sink{Name: filepath.Join(dir, "no", "such", "dir")}
		Expect(errors.Is(sink.Put(art), brailleart.ErrIO)).To(BeTrue())
	})

	It("reports display errors as io failures", func() {
		sink := brailleart.Sink{W: failingWriter{}}
		Expect(errors.Is(sink.Put(art), brailleart.ErrIO)).To(BeTrue())
	})
})
