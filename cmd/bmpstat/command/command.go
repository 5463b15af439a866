package command

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	bmpstat "github.com/apaonessaa/BMPstat"
	"github.com/apaonessaa/BMPstat/config"
)

var (
	ConfigFile string
	logger     *zap.Logger
)

func must(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// initConfig loads the configuration file and builds the logger. A
// missing file falls back to the defaults.
func initConfig() config.Config {
	c, err := config.ParseConfig(ConfigFile)
	var useDefault bool
	if os.IsNotExist(err) {
		c = config.DefaultConfig()
		useDefault = true
	} else {
		must(err)
	}
	l, err := c.GetLogger(c.Log)
	must(err)
	logger = l
	if useDefault {
		logger.Debug("config file not exist, use default configration")
	}
	return c
}

// readBitmap loads a BMP file, rejecting buffers too short to hold the
// header fields the accessors read.
func readBitmap(path string) (*bmpstat.Bitmap, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read file error")
	}
	if len(raw) < bmpstat.MinLen {
		return nil, errors.Errorf("%s: %d bytes is too short for a BMP header", path, len(raw))
	}
	return bmpstat.New(raw), nil
}

func writeBitmap(path string, b *bmpstat.Bitmap) error {
	return errors.Wrap(ioutil.WriteFile(path, b.RawImage(), 0666), "write output file error")
}
