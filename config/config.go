package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"
)

// DefaultConfig return the default configuration.
// If config file is not provided, bmpstat will start with DefaultConfig.
// Command-line flags will override the configuration.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Steg: DefaultStegConfig,
		Gen:  DefaultGenConfig,
	}
}

// LogConfig is use to configure the log behaviors.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Config is the configration for bmpstat.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Steg StegConfig `yaml:"steg"`
	Gen  GenConfig  `yaml:"gen"`
}

func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type config Config
	raw := config(DefaultConfig())
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*c = Config(raw)
	return nil
}

func (c Config) Validate() error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	err := c.Steg.Validate()
	if err != nil {
		return err
	}
	return c.Gen.Validate()
}

func ParseConfig(filePath string) (c Config, err error) {
	if filePath == "" {
		return DefaultConfig(), nil
	}
	b, err := ioutil.ReadFile(filePath)
	if err != nil {
		return c, err
	}
	c = DefaultConfig()
	err = yaml.Unmarshal(b, &c)
	if err != nil {
		return c, err
	}
	err = c.Validate()
	if err != nil {
		return Config{}, err
	}
	return c, err
}

func (c Config) GetLogger(config LogConfig) (l *zap.Logger, err error) {
	var logLevel zapcore.Level
	err = logLevel.UnmarshalText([]byte(config.Level))
	if err != nil {
		return
	}

	lc := zap.NewDevelopmentConfig()
	lc.Level = zap.NewAtomicLevelAt(logLevel)
	l, err = lc.Build()
	return l, nil
}
