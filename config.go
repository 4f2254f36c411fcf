package brailleart

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	yaml "gopkg.in/yaml.v2"
)

// RenderConfig holds every conversion parameter.
type RenderConfig struct {
	// Width is the number of braille characters per line, or NoResize.
	Width  int    `toml:"width" yaml:"width"`
	Policy Policy `toml:"style" yaml:"style"`
	Invert bool   `toml:"invert" yaml:"invert"`
	// Output names the .txt file to save to. Blank means display.
	Output string `toml:"output" yaml:"output"`

	BlockSize int `toml:"block_size" yaml:"block_size"`
	Bias      int `toml:"bias" yaml:"bias"`
}

func DefaultConfig() RenderConfig {
	return RenderConfig{
		Width:     NoResize,
		Policy:    GlobalAverage,
		BlockSize: DefaultBlockSize,
		Bias:      DefaultBias,
	}
}

// Validate reports the first problem with cfg as an ErrInvalidConfig.
func (cfg RenderConfig) Validate() error {
	if err := checkWidth(cfg.Width); err != nil {
		return err
	}
	return cfg.binarizer(nil).validateParams()
}

func (cfg RenderConfig) binarizer(ops ImageOps) Binarizer {
	return Binarizer{
		Policy:    cfg.Policy,
		Invert:    cfg.Invert,
		BlockSize: cfg.BlockSize,
		Bias:      cfg.Bias,
		Ops:       ops,
	}
}

// LoadConfig reads a TOML or YAML file, chosen by extension, over the
// defaults and validates the result.
func LoadConfig(path string) (RenderConfig, error) {
	cfg := DefaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		_, err = toml.Decode(string(data), &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, cfg.Validate()
}
