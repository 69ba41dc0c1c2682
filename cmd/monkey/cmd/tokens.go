package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"monkey/internal/lexer"
	"monkey/internal/token"
)

func newTokensCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			illegal := 0
			for _, tok := range lexer.New(source).Tokenize() {
				if tok.Kind == token.ILLEGAL {
					illegal++
				}
				fmt.Fprintf(out, "%-10s %-12q %s\n", tok.Kind, tok.Literal, tok.Position)
			}

			log.Debugf("%d illegal characters", illegal)
			return nil
		},
	}
}
