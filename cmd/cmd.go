// Package cmd implements the flexb64 command.
//
// It is in a sub package so its internals can be re-used elsewhere.
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/flexb64/flexb64/lib/base64"
)

// Version of flexb64
const Version = "v1.0.0"

// Exit codes used by Main and Run
const (
	exitCodeSuccess = iota
	exitCodeUsageError
	exitCodeUncategorizedError
	exitCodeDecodeError
)

// Globals
var (
	// Flags
	verbose bool
)

// Root is the main flexb64 command
var Root = &cobra.Command{
	Use:   "flexb64",
	Short: "Encode and decode base64 with configurable alphabets.",
	Long: `
Flexb64 encodes and decodes base64 using a configurable alphabet. The
usual presets are built in:

  * standard - A-Z a-z 0-9 + /   optional '=' padding
  * url      - A-Z a-z 0-9 - _   optional '=' padding
  * mime     - A-Z a-z 0-9 + /   required '=' padding

Data is taken from the command line argument, or from standard input
when no argument is given.
`,
	PersistentPreRun: func(command *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	Root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
}

// CheckArgs checks there are enough arguments and prints a message if not
func CheckArgs(MinArgs, MaxArgs int, cmd *cobra.Command, args []string) {
	if len(args) < MinArgs {
		_ = cmd.Usage()
		fmt.Fprintf(os.Stderr, "Command %s needs %d arguments minimum\n", cmd.Name(), MinArgs)
		os.Exit(exitCodeUsageError)
	} else if len(args) > MaxArgs {
		_ = cmd.Usage()
		fmt.Fprintf(os.Stderr, "Command %s needs %d arguments maximum\n", cmd.Name(), MaxArgs)
		os.Exit(exitCodeUsageError)
	}
}

// AddCodecFlags adds the flags shared by the encode and decode
// commands to flagSet.
func AddCodecFlags(flagSet *pflag.FlagSet, alphabetName *string, noPadding, noNewline *bool) {
	flagSet.StringVarP(alphabetName, "alphabet", "a", *alphabetName, "Alphabet preset to use: standard, url or mime")
	flagSet.BoolVarP(noPadding, "no-padding", "", *noPadding, "Strip the padding from the chosen preset")
	flagSet.BoolVarP(noNewline, "no-newline", "n", *noNewline, "Don't print a trailing newline")
}

// ParseAlphabet returns the preset Config named by name, with the
// padding stripped if noPadding is set.
func ParseAlphabet(name string, noPadding bool) (*base64.Config, error) {
	var cfg *base64.Config
	switch strings.ToLower(name) {
	case "standard":
		cfg = base64.Standard()
	case "url":
		cfg = base64.URL()
	case "mime":
		cfg = base64.MIME()
	default:
		return nil, errors.Errorf("unknown alphabet %q (must be standard, url or mime)", name)
	}
	if noPadding {
		var err error
		cfg, err = base64.New(cfg.Ranges(), base64.NoPadding)
		if err != nil {
			return nil, errors.Wrap(err, "failed to strip padding")
		}
	}
	return cfg, nil
}

// ReadInput returns the data argument if one was given, otherwise it
// reads standard input to the end.
func ReadInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	logrus.Debug("reading data from stdin")
	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read stdin")
	}
	return data, nil
}

// Run runs f for a command, logging any error and exiting with a code
// matching the error class.
func Run(command *cobra.Command, f func() error) {
	err := f()
	if err == nil {
		return
	}
	logrus.Errorf("Failed to %s: %v", command.Name(), err)
	var decodeErr base64.DecodeError
	if errors.As(err, &decodeErr) {
		os.Exit(exitCodeDecodeError)
	}
	os.Exit(exitCodeUncategorizedError)
}

// Main runs the root command, which dispatches to the subcommands.
func Main() {
	if err := Root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeUsageError)
	}
}
