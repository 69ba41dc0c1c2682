package errors

import (
	"fmt"

	"monkey/internal/parser"
	"monkey/internal/token"
)

// DiagnosticBuilder assembles a CompilerError step by step.
type DiagnosticBuilder struct {
	err CompilerError
}

func NewDiagnostic(code, message string, pos token.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// FromParseError turns a parser error into a diagnostic with a code and,
// where one is obvious, a suggested fix.
func FromParseError(perr *parser.ParseError) CompilerError {
	code := CodeFor(perr.Kind)
	if perr.Limit > 0 {
		code = ErrorNestingTooDeep
	}

	builder := NewDiagnostic(code, perr.Message, perr.Got.Position).
		WithLength(len(perr.Got.Literal))

	if perr.Got.Kind == token.ILLEGAL {
		builder = builder.WithNote(fmt.Sprintf("'%s' is not a valid character in monkey source", perr.Got.Literal))
	}

	switch perr.Kind {
	case parser.EXPECTED_IDENTIFIER:
		if perr.Got.Kind.IsKeyword() {
			builder = builder.WithNote(fmt.Sprintf("'%s' is a reserved keyword and cannot be used as a name", perr.Got.Literal))
		}

	case parser.EXPECTED_ASSIGN:
		builder = builder.WithReplacement("bind the value with '='", "let <name> = <value>;")

	case parser.EXPECTED_SEMICOLON:
		builder = builder.WithSuggestion("add ';' to end the statement")

	case parser.EXPECTED_RBRACE:
		builder = builder.WithSuggestion("add '}' to close the block")

	case parser.EXPECTED_RPAREN:
		builder = builder.WithSuggestion("add ')' to close the list")

	case parser.EXPECTED_COMMA:
		builder = builder.WithSuggestion("separate list elements with ','")

	case parser.INVALID_INTEGER:
		builder = builder.WithNote("integers are signed 64-bit values")

	case parser.UNKNOWN:
		if perr.Limit > 0 {
			builder = builder.WithHelp(fmt.Sprintf("raise max_depth above %d in the configuration", perr.Limit))
		}
	}

	return builder.Build()
}

// FromParseErrors converts errs preserving their order.
func FromParseErrors(errs []*parser.ParseError) []CompilerError {
	out := make([]CompilerError, 0, len(errs))
	for _, err := range errs {
		out = append(out, FromParseError(err))
	}
	return out
}

// ReferenceMismatch reports that the reference grammar read the program
// differently from the parser.
func ReferenceMismatch(pos token.Position, detail string) CompilerError {
	return NewDiagnostic(ErrorReferenceMismatch, "reference grammar disagrees with the parser", pos).
		WithNote(detail).
		Build()
}
