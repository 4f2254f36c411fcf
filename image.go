package brailleart

import (
	"fmt"
	"image"
	"image/draw"
)

// ImageOps is the set of numeric image primitives the pipeline delegates to.
// The pipeline owns sizing, threshold policy and packing; implementations only
// do the resampling and neighbourhood arithmetic. See package imageops.
type ImageOps interface {
	// Resize returns g resampled to width x height with an area-averaging
	// filter.
	Resize(g *image.Gray, width, height int) *image.Gray

	// LocalMean returns, for every pixel of g, the Gaussian-weighted mean of
	// the blockSize x blockSize window centred on it.
	LocalMean(g *image.Gray, blockSize int) *image.Gray
}

// Gray copies img into a new *image.Gray whose bounds start at (0, 0).
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(g, g.Bounds(), img, b.Min, draw.Src)
	return g
}

// checkGrid rejects grids without pixels.
func checkGrid(g *image.Gray) error {
	if g == nil {
		return fmt.Errorf("%w: nil grid", ErrDecode)
	}
	if b := g.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: empty %dx%d grid", ErrDecode, b.Dx(), b.Dy())
	}
	return nil
}
