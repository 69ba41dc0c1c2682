package errors

import "monkey/internal/parser"

// Diagnostic codes. Codes are stable across releases so they can be
// looked up in documentation and matched by editor tooling.
//
// E0100-E0199: syntax errors
// E0900-E0999: tooling errors
const (
	// E0100: syntax error without a more specific code
	ErrorSyntax = "E0100"

	// E0101: a name was required
	ErrorExpectedIdentifier = "E0101"

	// E0102: `let <name>` not followed by '='
	ErrorExpectedAssign = "E0102"

	ErrorExpectedLParen    = "E0103"
	ErrorExpectedRParen    = "E0104"
	ErrorExpectedLBrace    = "E0105"
	ErrorExpectedRBrace    = "E0106"
	ErrorExpectedSemicolon = "E0107"
	ErrorExpectedComma     = "E0108"

	// E0109: some other token was required
	ErrorExpectedToken = "E0109"

	// E0110: the token cannot start an expression
	ErrorExpectedExpression = "E0110"

	// E0111: integer literal outside the signed 64-bit range
	ErrorInvalidInteger = "E0111"

	// E0112: maximum nesting depth exceeded
	ErrorNestingTooDeep = "E0112"

	// E0900: the reference grammar disagrees with the parser
	ErrorReferenceMismatch = "E0900"
)

var parseErrorCodes = map[parser.ErrorKind]string{
	parser.UNKNOWN:             ErrorSyntax,
	parser.EXPECTED_IDENTIFIER: ErrorExpectedIdentifier,
	parser.EXPECTED_ASSIGN:     ErrorExpectedAssign,
	parser.EXPECTED_LPAREN:     ErrorExpectedLParen,
	parser.EXPECTED_RPAREN:     ErrorExpectedRParen,
	parser.EXPECTED_LBRACE:     ErrorExpectedLBrace,
	parser.EXPECTED_RBRACE:     ErrorExpectedRBrace,
	parser.EXPECTED_SEMICOLON:  ErrorExpectedSemicolon,
	parser.EXPECTED_COMMA:      ErrorExpectedComma,
	parser.EXPECTED_TOKEN:      ErrorExpectedToken,
	parser.EXPECTED_EXPRESSION: ErrorExpectedExpression,
	parser.INVALID_INTEGER:     ErrorInvalidInteger,
}

// CodeFor returns the diagnostic code of a parse error kind.
func CodeFor(kind parser.ErrorKind) string {
	if code, ok := parseErrorCodes[kind]; ok {
		return code
	}
	return ErrorSyntax
}

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "The source is not a valid monkey program"
	case ErrorExpectedIdentifier:
		return "A name is required here"
	case ErrorExpectedAssign:
		return "A let binding needs '=' between the name and the value"
	case ErrorExpectedLParen:
		return "An opening parenthesis is required here"
	case ErrorExpectedRParen:
		return "A parenthesised list or group is not closed"
	case ErrorExpectedLBrace:
		return "A block must start with '{'"
	case ErrorExpectedRBrace:
		return "A block is not closed"
	case ErrorExpectedSemicolon:
		return "let and return statements end with ';'"
	case ErrorExpectedComma:
		return "List elements are separated by ','"
	case ErrorExpectedToken:
		return "A different token is required here"
	case ErrorExpectedExpression:
		return "The token cannot start an expression"
	case ErrorInvalidInteger:
		return "Integer literal does not fit in a signed 64-bit integer"
	case ErrorNestingTooDeep:
		return "Expression nesting exceeds the configured maximum depth"
	case ErrorReferenceMismatch:
		return "The reference grammar and the parser disagree"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Syntax"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}
