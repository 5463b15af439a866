package command

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apaonessaa/BMPstat/steg"
)

// NewExtractCommand creates a *cobra.Command object for extract command.
func NewExtractCommand() *cobra.Command {
	var (
		output     string
		passphrase string
		sublayer   int
	)
	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Recover a message hidden in a bit plane of a BMP file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := initConfig()
			if !cmd.Flags().Changed("bit") {
				sublayer = c.Steg.Sublayer
			}
			b, err := readBitmap(args[0])
			must(err)

			opts := []steg.Options{steg.WithSublayer(sublayer)}
			if passphrase != "" {
				opts = append(opts, steg.WithPassphrase(passphrase))
			}
			msg, err := steg.Extract(b, opts...)
			must(err)

			if output == "" {
				_, err = os.Stdout.Write(msg)
				must(err)
				return
			}
			must(errors.Wrap(ioutil.WriteFile(output, msg, 0666), "write output file error"))
			logger.Info("message extracted",
				zap.String("file", output),
				zap.Int("bytes", len(msg)),
				zap.Int("sublayer", sublayer))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the message to a file instead of stdout")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "unseal the message with a passphrase")
	cmd.Flags().IntVarP(&sublayer, "bit", "b", 0, "bit plane to read, overrides the config default")
	return cmd
}
