package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formcheck/pkg/api"
)

type checkFlags struct {
	minLength int
	length    int
	asJSON    bool
}

func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <rule> <value> [confirm]",
		Short: "Run a single validation rule",
		Long: "Run a single validation rule against a value.\n\nRules: " + strings.Join(api.Rules(), ", ") +
			"\nThe passwords-match rule compares <value> with [confirm].",
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.RuleRequest{Value: args[1]}
			if cmd.Flags().Changed("min-length") {
				if flags.minLength < 0 {
					return fmt.Errorf("--min-length must not be negative, got %d", flags.minLength)
				}
				req.MinLength = &flags.minLength
			}
			if cmd.Flags().Changed("length") {
				if flags.length < 0 {
					return fmt.Errorf("--length must not be negative, got %d", flags.length)
				}
				req.Length = &flags.length
			}
			if len(args) == 3 {
				req.Confirm = args[2]
			}

			res, ok := api.Check(args[0], req)
			if !ok {
				return fmt.Errorf("unknown rule %q, expected one of: %s", args[0], strings.Join(api.Rules(), ", "))
			}

			out := cmd.OutOrStdout()
			if flags.asJSON {
				enc := json.NewEncoder(out)
				if err := enc.Encode(api.RuleResponse{Rule: args[0], Result: res}); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(out, res.String())
			}

			if !res.IsValid() {
				return errInvalidInput
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.minLength, "min-length", 0, "Minimum password length; 0 disables the minimum (default: rule default)")
	cmd.Flags().IntVar(&flags.length, "length", 0, "Exact OTP length (default: rule default)")
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print the result as JSON")

	return cmd
}
