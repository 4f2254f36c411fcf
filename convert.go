package brailleart

import (
	"image"
	"io"

	"github.com/kevin-cantwell/brailleart/logx"
)

type Opt func(c *Converter)

// WithConfig replaces all conversion parameters with cfg.
func WithConfig(cfg RenderConfig) Opt {
	return func(c *Converter) {
		c.cfg = cfg
	}
}

// WithWidth sets the number of characters per line. NoResize keeps the
// decoded size.
func WithWidth(chars int) Opt {
	return func(c *Converter) {
		c.cfg.Width = chars
	}
}

func WithPolicy(p Policy) Opt {
	return func(c *Converter) {
		c.cfg.Policy = p
	}
}

// WithAdaptive sets the LocalAdaptive window side and bias.
func WithAdaptive(blockSize, bias int) Opt {
	return func(c *Converter) {
		c.cfg.BlockSize = blockSize
		c.cfg.Bias = bias
	}
}

// If used, dots are drawn where the image is dark instead of light.
func WithInvertedColors() Opt {
	return func(c *Converter) {
		c.cfg.Invert = true
	}
}

func WithLogger(l logx.Logger) Opt {
	return func(c *Converter) {
		c.log = l
	}
}

// Converter runs the resample, binarize and pack stages over grayscale
// grids. It holds no state between conversions.
type Converter struct {
	cfg RenderConfig
	ops ImageOps
	log logx.Logger
}

// NewConverter returns a converter using ops for resizing and local means.
// Without options it behaves as DefaultConfig.
func NewConverter(ops ImageOps, opts ...Opt) *Converter {
	c := Converter{
		cfg: DefaultConfig(),
		ops: ops,
		log: logx.NopLogger{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

func (c *Converter) Config() RenderConfig {
	return c.cfg
}

// Binary returns the resampled, binarized grid that Convert packs.
func (c *Converter) Binary(g *image.Gray) (*image.Gray, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}
	bin := c.cfg.binarizer(c.ops)
	if err := bin.validate(); err != nil {
		return nil, err
	}
	if err := checkGrid(g); err != nil {
		return nil, err
	}
	b := g.Bounds()
	resized, err := Resample(g, c.cfg.Width, c.ops)
	if err != nil {
		return nil, err
	}
	rb := resized.Bounds()
	c.log.LogPrintf(logx.DEBUG, "resampled %dx%d to %dx%d", b.Dx(), b.Dy(), rb.Dx(), rb.Dy())

	out, err := bin.Binarize(resized)
	if err != nil {
		return nil, err
	}
	c.log.LogPrintf(logx.DEBUG, "binarized with %s style (invert=%t)", c.cfg.Policy, c.cfg.Invert)
	return out, nil
}

// Convert renders g as braille art.
func (c *Converter) Convert(g *image.Gray) (Art, error) {
	bin, err := c.Binary(g)
	if err != nil {
		return nil, err
	}
	art := Pack(bin)
	c.log.LogPrintf(logx.DEBUG, "packed %d lines", len(art))
	return art, nil
}

// Encode renders g as braille art and streams it to w.
func (c *Converter) Encode(w io.Writer, g *image.Gray) error {
	bin, err := c.Binary(g)
	if err != nil {
		return err
	}
	return NewEncoder(w).Encode(bin)
}
