package parser

import (
	"fmt"

	"monkey/internal/token"
)

// ErrorKind names the syntactic expectation that failed.
type ErrorKind int

const (
	UNKNOWN ErrorKind = iota
	EXPECTED_IDENTIFIER
	EXPECTED_ASSIGN
	EXPECTED_LPAREN
	EXPECTED_RPAREN
	EXPECTED_LBRACE
	EXPECTED_RBRACE
	EXPECTED_SEMICOLON
	EXPECTED_COMMA
	EXPECTED_TOKEN
	EXPECTED_EXPRESSION
	INVALID_INTEGER
)

var errorKindNames = [...]string{
	UNKNOWN:             "Unknown",
	EXPECTED_IDENTIFIER: "ExpectedIdentifier",
	EXPECTED_ASSIGN:     "ExpectedAssign",
	EXPECTED_LPAREN:     "ExpectedLParenthesis",
	EXPECTED_RPAREN:     "ExpectedRParenthesis",
	EXPECTED_LBRACE:     "ExpectedLeftBrace",
	EXPECTED_RBRACE:     "ExpectedRightBrace",
	EXPECTED_SEMICOLON:  "ExpectedSemicolon",
	EXPECTED_COMMA:      "ExpectedComma",
	EXPECTED_TOKEN:      "ExpectedToken",
	EXPECTED_EXPRESSION: "ExpectedExpression",
	INVALID_INTEGER:     "InvalidInteger",
}

func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError is a recorded syntax error. Got is the token that was
// actually consumed where the expectation failed.
type ParseError struct {
	Kind     ErrorKind
	Expected token.Kind // set for EXPECTED_TOKEN and the single-token kinds
	Got      token.Token
	Message  string
	Limit    int // nesting limit, set only when it was exceeded
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Got.Position, e.Message)
}

// Position is where the offending token starts.
func (e *ParseError) Position() token.Position {
	return e.Got.Position
}

func ExpectedIdentifier(got token.Token) *ParseError {
	return &ParseError{
		Kind:     EXPECTED_IDENTIFIER,
		Expected: token.IDENT,
		Got:      got,
		Message:  "expected identifier, found " + describe(got),
	}
}

func ExpectedAssign(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_ASSIGN, token.ASSIGN, got)
}

func ExpectedLParenthesis(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_LPAREN, token.LPAREN, got)
}

func ExpectedRParenthesis(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_RPAREN, token.RPAREN, got)
}

func ExpectedLeftBrace(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_LBRACE, token.LBRACE, got)
}

func ExpectedRightBrace(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_RBRACE, token.RBRACE, got)
}

func ExpectedSemicolon(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_SEMICOLON, token.SEMICOLON, got)
}

func ExpectedComma(got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_COMMA, token.COMMA, got)
}

// ExpectedToken is the generic mismatch for kinds without a dedicated error.
func ExpectedToken(expected token.Kind, got token.Token) *ParseError {
	return expectedSymbol(EXPECTED_TOKEN, expected, got)
}

func ExpectedExpression(got token.Token) *ParseError {
	return &ParseError{
		Kind:    EXPECTED_EXPRESSION,
		Got:     got,
		Message: "expected expression, found " + describe(got),
	}
}

func InvalidInteger(got token.Token) *ParseError {
	return &ParseError{
		Kind:    INVALID_INTEGER,
		Got:     got,
		Message: fmt.Sprintf("integer literal %s does not fit in 64 bits", got.Literal),
	}
}

// Unknown records a failure that has no dedicated kind.
func Unknown(got token.Token, message string) *ParseError {
	return &ParseError{
		Kind:    UNKNOWN,
		Got:     got,
		Message: message,
	}
}

// NestingTooDeep is the Unknown error raised when expressions nest deeper
// than limit.
func NestingTooDeep(got token.Token, limit int) *ParseError {
	err := Unknown(got, fmt.Sprintf("expression nested deeper than %d levels", limit))
	err.Limit = limit
	return err
}

func expectedSymbol(kind ErrorKind, expected token.Kind, got token.Token) *ParseError {
	return &ParseError{
		Kind:     kind,
		Expected: expected,
		Got:      got,
		Message:  fmt.Sprintf("expected '%s', found %s", expected.Symbol(), describe(got)),
	}
}

// errorFor returns the constructor matching an expected kind.
func errorFor(kind token.Kind) func(token.Token) *ParseError {
	switch kind {
	case token.IDENT:
		return ExpectedIdentifier
	case token.ASSIGN:
		return ExpectedAssign
	case token.LPAREN:
		return ExpectedLParenthesis
	case token.RPAREN:
		return ExpectedRParenthesis
	case token.LBRACE:
		return ExpectedLeftBrace
	case token.RBRACE:
		return ExpectedRightBrace
	case token.SEMICOLON:
		return ExpectedSemicolon
	case token.COMMA:
		return ExpectedComma
	}
	return func(got token.Token) *ParseError {
		return ExpectedToken(kind, got)
	}
}

func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "end of input"
	case tok.Kind == token.IDENT:
		return fmt.Sprintf("identifier '%s'", tok.Literal)
	case tok.Kind == token.INT:
		return "integer " + tok.Literal
	case tok.Kind == token.ILLEGAL:
		return fmt.Sprintf("illegal character '%s'", tok.Literal)
	case tok.Kind.IsKeyword():
		return fmt.Sprintf("keyword '%s'", tok.Literal)
	default:
		return fmt.Sprintf("'%s'", tok.Literal)
	}
}
