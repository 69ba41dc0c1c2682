package token

import "fmt"

type Kind int

const (
	// Special tokens
	ILLEGAL Kind = iota
	EOF

	// Identifiers + literals
	IDENT
	INT

	// Operators
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	EQ
	NOT_EQ

	// Delimiters
	COMMA
	SEMICOLON
	LPAREN
	RPAREN
	LBRACE
	RBRACE

	// Keywords
	FUNCTION
	LET
	TRUE
	FALSE
	IF
	ELSE
	RETURN
)

var kindNames = [...]string{
	ILLEGAL:   "ILLEGAL",
	EOF:       "EOF",
	IDENT:     "IDENT",
	INT:       "INT",
	ASSIGN:    "ASSIGN",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	BANG:      "BANG",
	ASTERISK:  "ASTERISK",
	SLASH:     "SLASH",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	NOT_EQ:    "NOT_EQ",
	COMMA:     "COMMA",
	SEMICOLON: "SEMICOLON",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	LBRACE:    "LBRACE",
	RBRACE:    "RBRACE",
	FUNCTION:  "FUNCTION",
	LET:       "LET",
	TRUE:      "TRUE",
	FALSE:     "FALSE",
	IF:        "IF",
	ELSE:      "ELSE",
	RETURN:    "RETURN",
}

// symbols holds the fixed spelling of every kind that has one.
var symbols = map[Kind]string{
	ASSIGN:    "=",
	PLUS:      "+",
	MINUS:     "-",
	BANG:      "!",
	ASTERISK:  "*",
	SLASH:     "/",
	LT:        "<",
	GT:        ">",
	EQ:        "==",
	NOT_EQ:    "!=",
	COMMA:     ",",
	SEMICOLON: ";",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	FUNCTION:  "fn",
	LET:       "let",
	TRUE:      "true",
	FALSE:     "false",
	IF:        "if",
	ELSE:      "else",
	RETURN:    "return",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Symbol returns the source spelling of k, or its name for kinds that
// carry a variable payload (identifiers, integers, EOF, ILLEGAL).
func (k Kind) Symbol() string {
	if s, ok := symbols[k]; ok {
		return s
	}
	return k.String()
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= FUNCTION && k <= RETURN
}

// IsOperator reports whether k is a one- or two-character operator.
func (k Kind) IsOperator() bool {
	return k >= ASSIGN && k <= NOT_EQ
}

// KindFromSymbol maps a fixed spelling such as ";" or "let" back to its kind.
func KindFromSymbol(s string) (Kind, bool) {
	for k, sym := range symbols {
		if sym == s {
			return k, true
		}
	}
	return ILLEGAL, false
}

type Position struct {
	Offset int // 0-based byte offset in the source
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is the half-open byte range [Start, End) a token covers.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

// Token is a classified slice of the source. Literal is a substring of the
// scanned source, so it shares the source's backing memory.
type Token struct {
	Kind     Kind
	Literal  string
	Span     Span
	Position Position
}

func (t Token) String() string {
	switch t.Kind {
	case IDENT, INT, ILLEGAL:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Literal)
	default:
		return t.Kind.String()
	}
}

// Is reports whether the token is of kind k.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// EndPosition returns the position just past the token on its line.
func (t Token) EndPosition() Position {
	return Position{
		Offset: t.Span.End,
		Line:   t.Position.Line,
		Column: t.Position.Column + t.Span.Len(),
	}
}
