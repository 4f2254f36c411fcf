package brailleart

import (
	"fmt"
	"image"
	"math"
)

// NoResize is the width that leaves the grid at its decoded size.
const NoResize = 0

// MinWidth is the smallest accepted target width in characters.
const MinWidth = 2

// ResizeDims returns the pixel dimensions of a w x h grid scaled to chars
// braille characters per line. The aspect ratio is kept and the height is
// rounded to the nearest pixel.
func ResizeDims(w, h, chars int) (int, int) {
	width := cellWidth * chars
	height := int(math.Round(float64(width) * float64(h) / float64(w)))
	if height < 1 {
		height = 1
	}
	return width, height
}

func checkWidth(chars int) error {
	if chars != NoResize && chars < MinWidth {
		return fmt.Errorf("%w: width must be at least %d characters, got %d", ErrInvalidConfig, MinWidth, chars)
	}
	return nil
}

// Resample scales g so that packing it yields chars characters per line.
// With NoResize g is returned as is.
func Resample(g *image.Gray, chars int, ops ImageOps) (*image.Gray, error) {
	if err := checkWidth(chars); err != nil {
		return nil, err
	}
	if ops == nil && chars != NoResize {
		return nil, fmt.Errorf("%w: resizing needs image ops", ErrInvalidConfig)
	}
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	if chars == NoResize {
		return g, nil
	}
	b := g.Bounds()
	width, height := ResizeDims(b.Dx(), b.Dy(), chars)
	return ops.Resize(g, width, height), nil
}
