package brailleart

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// Policy selects how the binarization threshold is computed.
type Policy int

const (
	// GlobalAverage thresholds every sample against the mean of the grid.
	GlobalAverage Policy = iota
	// LocalAdaptive thresholds every sample against a Gaussian-weighted mean
	// of its neighbourhood, less a bias.
	LocalAdaptive

	policyCount
)

const (
	DefaultBlockSize = 15
	DefaultBias      = 3

	// midpoint is used as the threshold of a grid with no contrast at all.
	midpoint = float64(On) / 2
)

var policyNames = [policyCount]string{
	GlobalAverage: "average",
	LocalAdaptive: "adaptive",
}

func (p Policy) Valid() bool {
	return p >= 0 && p < policyCount
}

func (p Policy) String() string {
	if !p.Valid() {
		return "Policy(" + strconv.Itoa(int(p)) + ")"
	}
	return policyNames[p]
}

// ParsePolicy accepts a policy name, alias or index, case-insensitively:
// "average", "global", "Average Threshold" or "0" for GlobalAverage and
// "adaptive", "local", "Adaptive Threshold" or "1" for LocalAdaptive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "average", "global", "average threshold", "0":
		return GlobalAverage, nil
	case "adaptive", "local", "adaptive threshold", "1":
		return LocalAdaptive, nil
	}
	return -1, fmt.Errorf("%w: unknown style %q", ErrInvalidConfig, s)
}

func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Policy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: unknown style %d", ErrInvalidConfig, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalYAML lets yaml.v2 decode a policy from its name or index.
func (p *Policy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}

// Binarizer converts a grayscale grid into a grid of On and Off samples.
type Binarizer struct {
	Policy Policy
	// Invert swaps On and Off in the output. The threshold is unaffected.
	Invert bool
	// BlockSize is the side of the LocalAdaptive window. It must be odd.
	BlockSize int
	// Bias is subtracted from the LocalAdaptive neighbourhood mean.
	Bias int
	// Ops computes the neighbourhood mean. Required for LocalAdaptive.
	Ops ImageOps
}

func (b Binarizer) validateParams() error {
	if !b.Policy.Valid() {
		return fmt.Errorf("%w: unknown style %d", ErrInvalidConfig, int(b.Policy))
	}
	if b.Policy == LocalAdaptive && (b.BlockSize < 3 || b.BlockSize%2 == 0) {
		return fmt.Errorf("%w: block size must be odd and at least 3, got %d", ErrInvalidConfig, b.BlockSize)
	}
	return nil
}

func (b Binarizer) validate() error {
	if err := b.validateParams(); err != nil {
		return err
	}
	if b.Policy == LocalAdaptive && b.Ops == nil {
		return fmt.Errorf("%w: adaptive style needs image ops", ErrInvalidConfig)
	}
	return nil
}

// Binarize returns a new grid where every sample is On or Off. g is not
// modified.
func (b Binarizer) Binarize(g *image.Gray) (*image.Gray, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	switch b.Policy {
	case LocalAdaptive:
		return b.adaptive(g), nil
	default:
		return b.global(g), nil
	}
}

// Threshold returns the GlobalAverage cutoff of g: the mean sample value, or
// the middle of the sample range when every sample is equal.
func Threshold(g *image.Gray) float64 {
	bounds := g.Bounds()
	var sum uint64
	uniform := true
	first := g.GrayAt(bounds.Min.X, bounds.Min.Y).Y
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := g.GrayAt(x, y).Y
			sum += uint64(v)
			if v != first {
				uniform = false
			}
		}
	}
	if uniform {
		return midpoint
	}
	return float64(sum) / float64(bounds.Dx()*bounds.Dy())
}

func (b Binarizer) global(g *image.Gray) *image.Gray {
	threshold := Threshold(g)
	bounds := g.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Pix[out.PixOffset(x, y)] = b.sample(float64(g.GrayAt(x, y).Y) > threshold)
		}
	}
	return out
}

func (b Binarizer) adaptive(g *image.Gray) *image.Gray {
	mean := b.Ops.LocalMean(g, b.BlockSize)
	bounds := g.Bounds()
	mb := mean.Bounds()
	out := image.NewGray(bounds)
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			v := int(g.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
			m := int(mean.GrayAt(mb.Min.X+x, mb.Min.Y+y).Y)
			out.Pix[out.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)] = b.sample(v > m-b.Bias)
		}
	}
	return out
}

func (b Binarizer) sample(above bool) uint8 {
	if above != b.Invert {
		return On
	}
	return Off
}
