package main

import (
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/davecgh/go-spew/spew"

	"github.com/kevin-cantwell/brailleart"
	"github.com/kevin-cantwell/brailleart/filelogger"
	"github.com/kevin-cantwell/brailleart/imageops"
	"github.com/kevin-cantwell/brailleart/logx"
)

const (
	exitDecode        = 1
	exitInvalidConfig = 2
	exitIO            = 3
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "brailleart"
	app.Usage = "Renders images as unicode braille text."
	app.UsageText = "1) brailleart [options] [file|url]\n" +
		/*      */ "   2) brailleart [options] < [file]"
	app.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "width,w",
			Usage: "`WIDTH` in characters to resize to (min 2). 0 keeps the image size.",
		},
		cli.StringFlag{
			Name:  "style,s",
			Usage: "`STYLE` of thresholding: average (0) or adaptive (1).",
			Value: "average",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Draws dots where the image is dark instead of light.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Saves the output as `NAME`.txt instead of printing it.",
		},
		cli.IntFlag{
			Name:  "block-size",
			Usage: "`SIZE` of the adaptive threshold window. Must be odd.",
			Value: brailleart.DefaultBlockSize,
		},
		cli.IntFlag{
			Name:  "bias",
			Usage: "`BIAS` subtracted from the adaptive neighbourhood mean.",
			Value: brailleart.DefaultBias,
		},
		cli.BoolFlag{
			Name:  "fit-terminal,t",
			Usage: "Uses the terminal width when no width is given.",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "Reads defaults from a TOML or YAML `FILE`. Flags take precedence.",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "`LEVEL` of messages logged to stderr.",
			Value: "warn",
		},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	lvl, err := logx.ParseLevel(c.String("log-level"))
	if err != nil {
		return cli.NewExitError(err.Error(), exitInvalidConfig)
	}
	lx := filelogger.NewFileLogger(os.Stderr, lvl, filelogger.ColorAuto)
	log := logx.NewLogToX(lx, "main")

	cfg, err := config(c)
	if err != nil {
		return fail(log, err)
	}
	log.LogPrintf(logx.DEBUG, "config: %s", spew.Sdump(cfg))

	// Try to parse the args, if there are any, as a file or url
	grid, err := decode(c.Args().First())
	if err != nil {
		return fail(log, err)
	}

	conv := brailleart.NewConverter(imageops.New(),
		brailleart.WithConfig(cfg),
		brailleart.WithLogger(logx.NewLogToX(lx, "convert")))
	art, err := conv.Convert(grid)
	if err != nil {
		return fail(log, err)
	}

	sink := brailleart.Sink{W: os.Stdout, Name: cfg.Output}
	if err := emit(os.Stdout, log, sink, art); err != nil {
		return fail(log, err)
	}
	return nil
}

// emit puts art in sink and tells out where it went. If the sink fails the
// art is still good, so it goes to out rather than being lost.
func emit(out io.Writer, log logx.Logger, sink brailleart.Sink, art brailleart.Art) error {
	if err := sink.Put(art); err != nil {
		if _, werr := art.WriteTo(out); werr != nil {
			log.LogPrint(logx.ERROR, werr)
		}
		return err
	}
	if path := sink.Path(); path != "" {
		fmt.Fprintf(out, "Saved to %s!\n", path)
	}
	return nil
}

// config merges the config file, if any, with the flags that were set.
func config(c *cli.Context) (brailleart.RenderConfig, error) {
	cfg := brailleart.DefaultConfig()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = brailleart.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("style") {
		p, err := brailleart.ParsePolicy(c.String("style"))
		if err != nil {
			return cfg, err
		}
		cfg.Policy = p
	}
	if c.IsSet("invert") {
		cfg.Invert = c.Bool("invert")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("block-size") {
		cfg.BlockSize = c.Int("block-size")
	}
	if c.IsSet("bias") {
		cfg.Bias = c.Int("bias")
	}
	if c.Bool("fit-terminal") && cfg.Width == brailleart.NoResize {
		if cols, err := terminalWidth(); err == nil && cols >= brailleart.MinWidth {
			cfg.Width = cols
		}
	}
	return cfg, cfg.Validate()
}

func decode(input string) (*image.Gray, error) {
	if input == "" {
		return imageops.Decode(os.Stdin)
	}
	// Is it a url?
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		resp, err := http.Get(input)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", brailleart.ErrDecode, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %s: %s", brailleart.ErrDecode, input, resp.Status)
		}
		return imageops.Decode(io.LimitReader(resp.Body, maxDownload))
	}
	return imageops.Open(input)
}

const maxDownload = 64 << 20

func fail(log logx.Logger, err error) error {
	log.LogPrint(logx.ERROR, err)
	code := 1
	switch {
	case errors.Is(err, brailleart.ErrInvalidConfig):
		code = exitInvalidConfig
	case errors.Is(err, brailleart.ErrDecode):
		code = exitDecode
	case errors.Is(err, brailleart.ErrIO):
		code = exitIO
	}
	return cli.NewExitError("", code)
}
