package config

import (
	"github.com/pkg/errors"
)

// DefaultStegConfig is the default value of StegConfig.
var DefaultStegConfig = StegConfig{
	Sublayer: 0,
}

// StegConfig is the config of the embedding defaults.
type StegConfig struct {
	// Sublayer is the bit plane used by embed and extract.
	// 0 is the least significant bit of every channel byte.
	Sublayer int `yaml:"sublayer"`
}

func (c StegConfig) Validate() error {
	if c.Sublayer < 0 || c.Sublayer > 7 {
		return errors.New("invalid steg.sublayer, must be in [0, 8)")
	}
	return nil
}
