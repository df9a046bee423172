// Package cli implements the formatvalidate command line tool.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

// ErrInvalidForm is returned by check when at least one field fails.
var ErrInvalidForm = errors.New("form is invalid")

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "formatvalidate",
		Short: "Validate and reformat HTML form fields",
		Long: "formatvalidate applies class-driven validation and formatting rules " +
			"(fvRequired, fvEmail, fvPostalCode, ...) to the fields of an HTML form.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newRulesCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command tree with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
