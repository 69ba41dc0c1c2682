package parser

import (
	"monkey/internal/ast"
	"monkey/internal/lexer"
)

// ParseSource tokenizes and parses source in one call.
func ParseSource(source string, opts ...Option) (*ast.Program, []*ParseError) {
	p := New(lexer.New(source), opts...)
	program := p.ParseProgram()

	return program, p.Errors()
}
