package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"monkey/internal/errors"
)

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "Describe a diagnostic code such as E0102",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			description := errors.GetErrorDescription(code)
			if description == "Unknown error code" {
				return fmt.Errorf("unknown diagnostic code %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %s\n", code, errors.GetErrorCategory(code), description)
			return nil
		},
	}
}
