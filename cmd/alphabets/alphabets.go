// Package alphabets provides the alphabets command.
package alphabets

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flexb64/flexb64/cmd"
	"github.com/flexb64/flexb64/lib/base64"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "alphabets",
	Short: `List the built in alphabet presets.`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		for _, preset := range []struct {
			name string
			cfg  *base64.Config
		}{
			{"standard", base64.Standard()},
			{"url", base64.URL()},
			{"mime", base64.MIME()},
		} {
			var ranges []string
			for _, r := range preset.cfg.Ranges() {
				ranges = append(ranges, r.String())
			}
			fmt.Printf("%s:\n", preset.name)
			fmt.Printf("  ranges:  %s\n", strings.Join(ranges, " "))
			fmt.Printf("  padding: %v\n", preset.cfg.Padding())
		}
	},
}
