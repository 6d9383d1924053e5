package main

import (
	"errors"

	"github.com/spf13/cobra"
)

// errInvalidInput signals that the checked input was rejected.
// The rejection itself has already been printed.
var errInvalidInput = errors.New("input rejected")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate form field input: email, passwords, name and one-time codes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFormCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
