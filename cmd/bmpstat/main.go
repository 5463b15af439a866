package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/apaonessaa/BMPstat/cmd/bmpstat/command"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:     "bmpstat",
		Long:    "Bmpstat inspects BMP files and addresses, mutates and hides data in their low-order pixel bits",
		Version: Version,
	}
)

func must(err error) {
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	d, err := homedir.Dir()
	must(err)
	rootCmd.PersistentFlags().StringVarP(&command.ConfigFile, "config", "c", d+"/bmpstat.yml", "The configration file path")

	rootCmd.AddCommand(command.NewStatCommand())
	rootCmd.AddCommand(command.NewEmbedCommand())
	rootCmd.AddCommand(command.NewExtractCommand())
	rootCmd.AddCommand(command.NewGetBitCommand())
	rootCmd.AddCommand(command.NewSetBitCommand())
	rootCmd.AddCommand(command.NewFlipBitCommand())
	rootCmd.AddCommand(command.NewGenCommand())
	rootCmd.AddCommand(command.NewConvertCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
