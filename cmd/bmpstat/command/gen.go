package command

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apaonessaa/BMPstat/cover"
)

// NewGenCommand creates a *cobra.Command object for gen command.
func NewGenCommand() *cobra.Command {
	var (
		output   string
		width    int
		height   int
		colorStr string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a solid-color BMP cover image",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c := initConfig()
			if !cmd.Flags().Changed("width") {
				width = c.Gen.Width
			}
			if !cmd.Flags().Changed("height") {
				height = c.Gen.Height
			}
			if !cmd.Flags().Changed("color") {
				colorStr = c.Gen.Color
			}
			col, err := cover.ParseColor(colorStr)
			must(err)
			raw, err := cover.Generate(width, height, col)
			must(err)
			must(errors.Wrap(ioutil.WriteFile(output, raw, 0666), "write output file error"))
			logger.Info("cover generated",
				zap.String("file", output),
				zap.Int("width", width),
				zap.Int("height", height))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "cover.bmp", "output file")
	cmd.Flags().IntVar(&width, "width", 0, "image width in pixels, overrides the config default")
	cmd.Flags().IntVar(&height, "height", 0, "image height in pixels, overrides the config default")
	cmd.Flags().StringVar(&colorStr, "color", "", "fill color, #rrggbb or random, overrides the config default")
	return cmd
}
