package command

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apaonessaa/BMPstat/cover"
)

// NewConvertCommand creates a *cobra.Command object for convert command.
func NewConvertCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "convert <image>",
		Short: "Re-encode a PNG, JPEG or GIF image as an uncompressed BMP cover",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initConfig()
			f, err := os.Open(args[0])
			must(errors.Wrap(err, "open image error"))
			defer f.Close()
			img, format, err := image.Decode(f)
			must(errors.Wrap(err, "decode image error"))

			raw, err := cover.Convert(img)
			must(err)

			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".bmp"
			}
			must(errors.Wrap(ioutil.WriteFile(output, raw, 0666), "write output file error"))
			logger.Info("image converted",
				zap.String("from", args[0]),
				zap.String("format", format),
				zap.String("file", output))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, default replaces the extension with .bmp")
	return cmd
}
