package config

import (
	"github.com/pkg/errors"

	"github.com/apaonessaa/BMPstat/cover"
)

// DefaultGenConfig is the default value of GenConfig.
var DefaultGenConfig = GenConfig{
	Width:  320,
	Height: 240,
	Color:  "random",
}

// GenConfig is the config of the cover generator.
type GenConfig struct {
	// Width and Height are the generated image dimensions in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Color is a "#rrggbb" hex color or "random".
	Color string `yaml:"color"`
}

func (c GenConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.New("invalid gen dimensions, must be positive")
	}
	if _, err := cover.ParseColor(c.Color); err != nil {
		return errors.Wrap(err, "invalid gen.color")
	}
	return nil
}
