package command

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseCoord converts the i, j, layer and bit arguments following the
// file name.
func parseCoord(args []string) (i, j, layer, sublayer int) {
	n := make([]int, 4)
	for k, arg := range args[1:5] {
		v, err := strconv.Atoi(arg)
		must(errors.Wrapf(err, "invalid coordinate %q", arg))
		n[k] = v
	}
	return n[0], n[1], n[2], n[3]
}

// NewGetBitCommand creates a *cobra.Command object for getbit command.
func NewGetBitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "getbit <file> <i> <j> <layer> <bit>",
		Short: "Read one bit of one color channel of one pixel",
		Args:  cobra.ExactArgs(5),
		Run: func(cmd *cobra.Command, args []string) {
			initConfig()
			b, err := readBitmap(args[0])
			must(err)
			i, j, layer, sublayer := parseCoord(args)
			bit, err := b.Bit(i, j, layer, sublayer)
			must(err)
			fmt.Println(bit)
		},
	}
	return cmd
}

// NewSetBitCommand creates a *cobra.Command object for setbit command.
func NewSetBitCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "setbit <file> <i> <j> <layer> <bit> <0|1>",
		Short: "Force one bit of one color channel of one pixel to 0 or 1",
		Args:  cobra.ExactArgs(6),
		Run: func(cmd *cobra.Command, args []string) {
			initConfig()
			b, err := readBitmap(args[0])
			must(err)
			i, j, layer, sublayer := parseCoord(args)
			switch args[5] {
			case "0":
				must(b.SetZero(i, j, layer, sublayer))
			case "1":
				must(b.SetOne(i, j, layer, sublayer))
			default:
				must(errors.Errorf("invalid bit value %q, want 0 or 1", args[5]))
			}
			if output == "" {
				output = args[0]
			}
			must(writeBitmap(output, b))
			logger.Info("bit set",
				zap.String("file", output),
				zap.Int("i", i), zap.Int("j", j),
				zap.Int("layer", layer), zap.Int("sublayer", sublayer),
				zap.String("value", args[5]))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, default is the input itself")
	return cmd
}

// NewFlipBitCommand creates a *cobra.Command object for flipbit command.
func NewFlipBitCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "flipbit <file> <i> <j> <layer> <bit>",
		Short: "Invert one bit of one color channel of one pixel",
		Args:  cobra.ExactArgs(5),
		Run: func(cmd *cobra.Command, args []string) {
			initConfig()
			b, err := readBitmap(args[0])
			must(err)
			i, j, layer, sublayer := parseCoord(args)
			must(b.Flip(i, j, layer, sublayer))
			if output == "" {
				output = args[0]
			}
			must(writeBitmap(output, b))
			logger.Info("bit flipped",
				zap.String("file", output),
				zap.Int("i", i), zap.Int("j", j),
				zap.Int("layer", layer), zap.Int("sublayer", sublayer))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, default is the input itself")
	return cmd
}
