package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monkey/internal/errors"
	"monkey/internal/parser"
	"monkey/internal/token"
)

const diagnosticSource = "monkey"

// ConvertParseErrors transforms parser errors into LSP diagnostics. Each
// diagnostic covers the token the parser stopped at and carries the same
// code the CLI prints. The result is never nil so that publishing it
// clears stale diagnostics.
func ConvertParseErrors(parseErrors []*parser.ParseError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(parseErrors))

	for _, parseErr := range parseErrors {
		diag := errors.FromParseError(parseErr)

		message := diag.Message
		if len(diag.Suggestions) > 0 {
			message += "\n" + diag.Suggestions[0].Message
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: toProtocolPosition(parseErr.Got.Position),
				End:   toProtocolPosition(parseErr.Got.EndPosition()),
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: diag.Code},
			Source:   ptrString(diagnosticSource),
			Message:  message,
		})
	}

	return diagnostics
}

// toProtocolPosition converts a 1-based position to the 0-based LSP form.
func toProtocolPosition(pos token.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(max(pos.Line-1, 0)),
		Character: uint32(max(pos.Column-1, 0)),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
