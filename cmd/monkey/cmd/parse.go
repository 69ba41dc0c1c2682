package cmd

import (
	"fmt"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"monkey/internal/config"
	"monkey/internal/errors"
	"monkey/internal/parser"
)

func newParseCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a source file and print its syntax tree",
		Long: `Parse a source file and print its syntax tree.

With --format text every statement is printed in canonical form, one per
line, with all operators fully parenthesised. With --format dump the raw
node structure is printed. Syntax errors go to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("format") {
				format = opts.cfg.Format
			}

			parserOpts, err := opts.parserOptions()
			if err != nil {
				return err
			}

			program, parseErrors := parser.ParseSource(source, parserOpts...)

			out := cmd.OutOrStdout()
			switch format {
			case config.FormatText:
				fmt.Fprintln(out, program.String())
			case config.FormatDump:
				fmt.Fprintln(out, litter.Sdump(program))
			default:
				return fmt.Errorf("unknown format %q", format)
			}

			if len(parseErrors) > 0 {
				reporter := errors.NewErrorReporter(name, source)
				fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatErrors(errors.FromParseErrors(parseErrors)))
				return errReported
			}

			log.Infof("parsed %s: %d statements", name, len(program.Statements))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, `output format, "text" or "dump"`)

	return cmd
}
