package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// NewStatCommand creates a *cobra.Command object for stat command.
func NewStatCommand() *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "stat <file>",
		Short: "Print the header fields and derived geometry of a BMP file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			initConfig()
			b, err := readBitmap(args[0])
			must(err)
			info := b.Info()
			if asYAML {
				out, err := yaml.Marshal(info)
				must(err)
				fmt.Print(string(out))
				return
			}
			fmt.Println(info)
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the report as YAML")
	return cmd
}
