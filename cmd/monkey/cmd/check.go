package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"monkey/grammar"
	"monkey/internal/ast"
	"monkey/internal/errors"
	"monkey/internal/parser"
	"monkey/internal/token"
)

func newCheckCommand(opts *options) *cobra.Command {
	var reference bool

	cmd := &cobra.Command{
		Use:   "check <file|->",
		Short: "Report syntax errors in a source file",
		Long: `Report syntax errors in a source file and exit non-zero if there are any.

With --reference the program is also read by the grammar-based reference
parser and any disagreement between the two is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			name, source, err := readSource(cmd, args[0])
			if err != nil {
				return err
			}

			parserOpts, err := opts.parserOptions()
			if err != nil {
				return err
			}

			program, parseErrors := parser.ParseSource(source, parserOpts...)
			diagnostics := errors.FromParseErrors(parseErrors)

			if len(diagnostics) == 0 && reference {
				if mismatch, ok := compareWithReference(name, source, program); !ok {
					diagnostics = append(diagnostics, mismatch)
				}
			}

			if len(diagnostics) > 0 {
				reporter := errors.NewErrorReporter(name, source)
				fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatErrors(diagnostics))
				return errReported
			}

			success(cmd, "Successfully checked %s in %s", name, formatDuration(time.Since(start)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reference, "reference", false, "cross-check against the reference grammar")

	return cmd
}

// compareWithReference parses source with the reference grammar and
// reports the first point where it disagrees with program.
func compareWithReference(name, source string, program *ast.Program) (errors.CompilerError, bool) {
	want, err := grammar.Parse(name, source)
	if err != nil {
		pos, ok := grammar.ErrorPosition(err)
		if !ok {
			pos = token.Position{Line: 1, Column: 1}
		}
		return errors.ReferenceMismatch(pos, "the reference grammar rejected the program: "+err.Error()), false
	}

	n := min(len(want.Statements), len(program.Statements))
	for i := range n {
		got, exp := program.Statements[i].String(), want.Statements[i].String()
		if got != exp {
			detail := fmt.Sprintf("in %q: parser read %s, reference read %s",
				ast.SourceText(source, program.Statements[i]), got, exp)
			return errors.ReferenceMismatch(program.Statements[i].NodePos(), detail), false
		}
	}

	if len(want.Statements) != len(program.Statements) {
		detail := fmt.Sprintf("parser read %d statements, reference read %d", len(program.Statements), len(want.Statements))
		return errors.ReferenceMismatch(program.NodeEndPos(), detail), false
	}

	log.Debugf("reference grammar agrees on %d statements", n)
	return errors.CompilerError{}, true
}
