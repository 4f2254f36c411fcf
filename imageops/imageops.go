// Package imageops provides the decoding and numeric image primitives used by
// brailleart, backed by imaging, gift and resize.
package imageops

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/gift"
	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kevin-cantwell/brailleart"
)

// Ops implements brailleart.ImageOps.
type Ops struct {
	// Enlarge is used when either dimension grows. An area filter has
	// nothing to average there, so it interpolates instead. Nil means
	// resize.Bilinear.
	Enlarge resize.InterpolationFunction
}

var _ brailleart.ImageOps = Ops{}

func New() Ops {
	return Ops{
		Enlarge: resize.Bilinear,
	}
}

// Resize shrinks g by area averaging, one axis at a time, or enlarges it
// with o.Enlarge.
func (o Ops) Resize(g *image.Gray, width, height int) *image.Gray {
	b := g.Bounds()
	if width > b.Dx() || height > b.Dy() {
		enlarge := o.Enlarge
		if enlarge == 0 {
			enlarge = resize.Bilinear
		}
		return brailleart.Gray(resize.Resize(uint(width), uint(height), g, enlarge))
	}
	var img image.Image = g
	if width != b.Dx() {
		img = imaging.Resize(img, width, b.Dy(), AreaFilter(b.Dx(), width))
	}
	if height != b.Dy() {
		img = imaging.Resize(img, width, height, AreaFilter(b.Dy(), height))
	}
	return brailleart.Gray(img)
}

// AreaFilter weights every source pixel by the part of it an output pixel
// covers when src pixels shrink to dst. It is only exact for the axis it
// was built for.
func AreaFilter(src, dst int) imaging.ResampleFilter {
	// imaging evaluates the kernel in output pixel units, where a source
	// pixel is h wide on either side of its center.
	h := 0.5 * float64(dst) / float64(src)
	return imaging.ResampleFilter{
		Support: 0.5 + h,
		Kernel: func(x float64) float64 {
			return math.Max(0, math.Min(x+h, 0.5)-math.Max(x-h, -0.5))
		},
	}
}

// LocalMean convolves g with a normalized blockSize x blockSize Gaussian.
// Pixels outside g repeat the nearest edge pixel.
func (o Ops) LocalMean(g *image.Gray, blockSize int) *image.Gray {
	f := gift.New(gift.Convolution(GaussianKernel(blockSize), true, false, false, 0))
	dst := image.NewGray(f.Bounds(g.Bounds()))
	f.Draw(dst, g)
	return dst
}

// Fixed kernels for small windows, as used by common imaging toolkits.
var smallGaussian = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// Gaussian1D returns the normalized 1D Gaussian of the given odd size with
// sigma = 0.3*((size-1)/2 - 1) + 0.8.
func Gaussian1D(size int) []float64 {
	if k, ok := smallGaussian[size]; ok {
		return append([]float64(nil), k...)
	}
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	k := make([]float64, size)
	var sum float64
	for i := range k {
		x := float64(i) - float64(size-1)/2
		k[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// GaussianKernel returns the row-major size x size outer product of
// Gaussian1D(size).
func GaussianKernel(size int) []float32 {
	k1 := Gaussian1D(size)
	k := make([]float32, size*size)
	for y, wy := range k1 {
		for x, wx := range k1 {
			k[y*size+x] = float32(wy * wx)
		}
	}
	return k
}

// Grayscale flattens img onto white and converts it to 8 bit luminance.
func Grayscale(img image.Image) *image.Gray {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), color.White)
	return brailleart.Gray(imaging.Overlay(bg, img, image.Pt(0, 0), 1.0))
}

// Decode reads an image in any registered format, applies its EXIF
// orientation and returns its luminance.
func Decode(r io.Reader) (*image.Gray, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", brailleart.ErrDecode, err)
	}
	return Grayscale(img), nil
}

// Open is Decode for a file path.
func Open(path string) (*image.Gray, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", brailleart.ErrDecode, err)
	}
	return Grayscale(img), nil
}
