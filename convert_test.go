package brailleart_test

import (
	"bytes"
	"errors"
	"image"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/kevin-cantwell/brailleart"
	"github.com/kevin-cantwell/brailleart/logx"
)

// checkerboard sets every pixel whose coordinates sum to an even number.
func checkerboard(w, h int) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				g.Pix[g.PixOffset(x, y)] = 255
			}
		}
	}
	return g
}

var _ = Describe("Converter", func() {
	var ops *fakeOps

	BeforeEach(func() {
		ops = &fakeOps{}
	})

	convert := func(g *image.Gray, opts ...brailleart.Opt) string {
		art, err := brailleart.NewConverter(ops, opts...).Convert(g)
		Expect(err).NotTo(HaveOccurred())
		return art.String()
	}

	It("renders an all-white cell as U+28FF", func() {
		Expect(convert(uniform(2, 4, 255))).To(Equal("⣿\n"))
	})

	It("renders an all-black cell as U+2801", func() {
		Expect(convert(uniform(2, 4, 0))).To(Equal("⠁\n"))
	})

	It("renders a white and a black cell side by side", func() {
		g := grid(
			[]uint8{255, 255, 0, 0},
			[]uint8{255, 255, 0, 0},
			[]uint8{255, 255, 0, 0},
			[]uint8{255, 255, 0, 0},
		)
		Expect(convert(g)).To(Equal("⣿⠁\n"))
		Expect(convert(g, brailleart.WithInvertedColors())).To(Equal("⠁⣿\n"))
	})

	It("renders a checkerboard", func() {
		Expect(convert(checkerboard(4, 8))).To(Equal("⢕⢕\n⢕⢕\n"))
		Expect(convert(checkerboard(4, 8), brailleart.WithInvertedColors())).To(Equal("⡪⡪\n⡪⡪\n"))
	})

	It("resizes before packing", func() {
		art, err := brailleart.NewConverter(ops, brailleart.WithWidth(10)).Convert(gradient(100, 100))
		Expect(err).NotTo(HaveOccurred())
		Expect(art).To(HaveLen(5))
		Expect(ops.resizes).To(Equal([][2]int{{20, 20}}))
	})

	It("uses the adaptive style when asked", func() {
		conv := brailleart.NewConverter(ops,
			brailleart.WithPolicy(brailleart.LocalAdaptive),
			brailleart.WithAdaptive(3, 0))
		_, err := conv.Convert(gradient(6, 8))
		Expect(err).NotTo(HaveOccurred())
		Expect(ops.means).To(Equal([]int{3}))
	})

	It("takes every parameter from a config", func() {
		cfg := brailleart.RenderConfig{
			Width:     4,
			Policy:    brailleart.LocalAdaptive,
			Invert:    true,
			BlockSize: 7,
			Bias:      1,
		}
		conv := brailleart.NewConverter(ops, brailleart.WithConfig(cfg))
		Expect(conv.Config()).To(Equal(cfg))
		_, err := conv.Convert(gradient(16, 16))
		Expect(err).NotTo(HaveOccurred())
		Expect(ops.resizes).To(Equal([][2]int{{8, 8}}))
		Expect(ops.means).To(Equal([]int{7}))
	})

	It("streams the same text it returns", func() {
		conv := brailleart.NewConverter(ops, brailleart.WithWidth(6))
		art, err := conv.Convert(gradient(30, 21))
		Expect(err).NotTo(HaveOccurred())
		var buf bytes.Buffer
		Expect(conv.Encode(&buf, gradient(30, 21))).To(Succeed())
		Expect(buf.String()).To(Equal(art.String()))
	})

	It("logs each stage at debug level", func() {
		log := &recordingLogger{}
		_, err := brailleart.NewConverter(ops, brailleart.WithLogger(log)).Convert(gradient(4, 4))
		Expect(err).NotTo(HaveOccurred())
		Expect(log.lines).NotTo(BeEmpty())
		for _, l := range log.lines {
			Expect(l.lvl).To(Equal(logx.DEBUG))
		}
	})

	Context("with a bad config", func() {
		It("fails before any pixel work", func() {
			for _, opts := range [][]brailleart.Opt{
				{brailleart.WithWidth(1)},
				{brailleart.WithPolicy(brailleart.Policy(9))},
				{brailleart.WithPolicy(brailleart.LocalAdaptive), brailleart.WithAdaptive(4, 3)},
			} {
				_, err := brailleart.NewConverter(ops, opts...).Convert(gradient(8, 8))
				Expect(errors.Is(err, brailleart.ErrInvalidConfig)).To(BeTrue())
			}
			Expect(ops.calls()).To(BeZero())
		})

		It("fails without image ops when they are needed", func() {
			_, err := brailleart.NewConverter(nil, brailleart.WithPolicy(brailleart.LocalAdaptive)).Convert(gradient(8, 8))
			Expect(errors.Is(err, brailleart.ErrInvalidConfig)).To(BeTrue())
		})
	})

	It("reports an empty grid as a decode failure", func() {
		_, err := brailleart.NewConverter(ops).Convert(image.NewGray(image.Rect(0, 0, 4, 0)))
		Expect(errors.Is(err, brailleart.ErrDecode)).To(BeTrue())
	})
})
