// Package version provides the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/flexb64/flexb64/cmd"
)

func init() {
	cmd.Root.AddCommand(commandDefinition)
}

var commandDefinition = &cobra.Command{
	Use:   "version",
	Short: `Show the version number.`,
	Run: func(command *cobra.Command, args []string) {
		cmd.CheckArgs(0, 0, command, args)
		fmt.Printf("flexb64 %s\n", cmd.Version)
		fmt.Printf("- go/version: %s\n", runtime.Version())
		fmt.Printf("- os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
