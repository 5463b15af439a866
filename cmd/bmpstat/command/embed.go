package command

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apaonessaa/BMPstat/steg"
)

// NewEmbedCommand creates a *cobra.Command object for embed command.
func NewEmbedCommand() *cobra.Command {
	var (
		output      string
		message     string
		messageFile string
		passphrase  string
		sublayer    int
	)
	cmd := &cobra.Command{
		Use:   "embed <cover>",
		Short: "Hide a message in a bit plane of a BMP file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c := initConfig()
			if !cmd.Flags().Changed("bit") {
				sublayer = c.Steg.Sublayer
			}
			msg := []byte(message)
			if messageFile != "" {
				var err error
				msg, err = ioutil.ReadFile(messageFile)
				must(errors.Wrap(err, "read message file error"))
			}
			b, err := readBitmap(args[0])
			must(err)

			opts := []steg.Options{steg.WithSublayer(sublayer)}
			if passphrase != "" {
				opts = append(opts, steg.WithPassphrase(passphrase))
			}
			must(steg.Embed(b, msg, opts...))

			if output == "" {
				output = args[0]
			}
			must(writeBitmap(output, b))
			logger.Info("message embedded",
				zap.String("file", output),
				zap.Int("bytes", len(msg)),
				zap.Int("sublayer", sublayer))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, default is the cover itself")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text to embed")
	cmd.Flags().StringVar(&messageFile, "message-file", "", "read the message from a file instead")
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "seal the message with a passphrase")
	cmd.Flags().IntVarP(&sublayer, "bit", "b", 0, "bit plane to write, overrides the config default")
	return cmd
}
