// Package decode provides the decode command.
package decode

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pkg/errors"
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
	Use:   "decode [data]",
	Short: `Decode base64 to raw bytes.`,
	Long: `
Decode the argument, or standard input if no argument is given, using
the chosen alphabet preset, eg

    flexb64 decode SGVsbG8sIFdvcmxkIQ==
    flexb64 decode --alphabet mime TWE=

Trailing newlines in the input are ignored so piped output of other
tools decodes cleanly. The decoded bytes are written to standard
output as-is.
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
			data = bytes.TrimRight(data, "\r\n")
			logrus.Debugf("decoding %d bytes with the %s alphabet", len(data), alphabetName)
			decoded, err := cfg.Decode(data)
			if err != nil {
				return errors.Wrap(err, "decode failed")
			}
			_, err = os.Stdout.Write(decoded)
			if err != nil {
				return errors.Wrap(err, "failed to write output")
			}
			if !noNewline {
				fmt.Println()
			}
			return nil
		})
	},
}
