// Package encode provides the encode command.
package encode

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flexb64/flexb64/cmd"
)

// Globals
var (
	// Flags
	alphabetName = "standard"
	noPadding    = false
	noNewline    = false
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
	cmd.AddCodecFlags(commandDefinition.Flags(), &alphabetName, &noPadding, &noNewline)
}

var commandDefinition = &cobra.Command{
	Use:   "encode [data]",
	Short: `Encode data to base64.`,
	Long: `
Encode the argument, or standard input if no argument is given, using
the chosen alphabet preset, eg

    flexb64 encode 'Hello, World!'
    echo -n 'Hello, World!' | flexb64 encode --alphabet url
`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 1, command, args)
		cmd.Run(command, func() error {
			cfg, err := cmd.ParseAlphabet(alphabetName, noPadding)
			if err != nil {
				return err
			}
			data, err := cmd.ReadInput(args)
			if err != nil {
				return err
			}
			logrus.Debugf("encoding %d bytes with the %s alphabet", len(data), alphabetName)
			fmt.Print(cfg.EncodeToString(data))
			if !noNewline {
				fmt.Println()
			}
			return nil
		})
	},
}
