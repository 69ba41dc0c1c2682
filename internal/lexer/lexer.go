package lexer

import (
	"iter"
	"unicode/utf8"

	"monkey/internal/token"
)

// Lexer turns a source string into tokens on demand. It keeps a single
// byte of lookahead and is not safe for concurrent use.
type Lexer struct {
	source  string
	start   int
	current int

	line        int
	column      int
	startLine   int
	startColumn int
}

func New(source string) *Lexer {
	l := &Lexer{}
	l.Reset(source)
	return l
}

// Reset points the lexer at a new source so it can be reused.
func (l *Lexer) Reset(source string) {
	l.source = source
	l.start = 0
	l.current = 0
	l.line = 1
	l.column = 1
	l.startLine = 1
	l.startColumn = 1
}

// NextToken scans and returns the next token. Once the input is exhausted
// every call returns EOF.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column

	if l.isAtEnd() {
		return l.makeToken(token.EOF)
	}

	c := l.advance()
	switch c {
	case '=':
		if l.matchNext('=') {
			return l.makeToken(token.EQ)
		}
		return l.makeToken(token.ASSIGN)
	case '!':
		if l.matchNext('=') {
			return l.makeToken(token.NOT_EQ)
		}
		return l.makeToken(token.BANG)
	case '+':
		return l.makeToken(token.PLUS)
	case '-':
		return l.makeToken(token.MINUS)
	case '*':
		return l.makeToken(token.ASTERISK)
	case '/':
		return l.makeToken(token.SLASH)
	case '<':
		return l.makeToken(token.LT)
	case '>':
		return l.makeToken(token.GT)
	case ',':
		return l.makeToken(token.COMMA)
	case ';':
		return l.makeToken(token.SEMICOLON)
	case '(':
		return l.makeToken(token.LPAREN)
	case ')':
		return l.makeToken(token.RPAREN)
	case '{':
		return l.makeToken(token.LBRACE)
	case '}':
		return l.makeToken(token.RBRACE)
	}

	switch {
	case isAlpha(c):
		return l.scanIdentifier()
	case isDigit(c):
		return l.scanNumber()
	default:
		return l.scanIllegal(c)
	}
}

// All yields tokens until the end of input. The EOF sentinel itself is not
// yielded.
func (l *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := l.NextToken()
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize scans the remaining input. The returned slice always ends with
// the EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlpha(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	return l.makeToken(token.Lookup(l.source[l.start:l.current]))
}

func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.makeToken(token.INT)
}

// scanIllegal swallows the rest of a multi-byte character so a single
// non-ASCII character yields a single ILLEGAL token.
func (l *Lexer) scanIllegal(c byte) token.Token {
	if c >= utf8.RuneSelf {
		_, size := utf8.DecodeRuneInString(l.source[l.start:])
		l.current = l.start + size
		l.column += size - 1
	}
	return l.makeToken(token.ILLEGAL)
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() && isWhitespace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) matchNext(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) makeToken(kind token.Kind) token.Token {
	return token.Token{
		Kind:    kind,
		Literal: l.source[l.start:l.current],
		Span:    token.Span{Start: l.start, End: l.current},
		Position: token.Position{
			Offset: l.start,
			Line:   l.startLine,
			Column: l.startColumn,
		},
	}
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
