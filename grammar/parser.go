package grammar

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"monkey/internal/ast"
	"monkey/internal/token"
)

var monkeyParser = participle.MustBuild[Program](
	participle.Lexer(MonkeyLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse parses source with the reference grammar and converts the result
// to the same AST the hand-written parser produces. Unlike that parser it
// stops at the first syntax error.
func Parse(name, source string) (*ast.Program, error) {
	tree, err := monkeyParser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	return tree.ToAST()
}

func ParseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// ErrorPosition reports where a syntax error returned by Parse occurred.
func ErrorPosition(err error) (token.Position, bool) {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return token.Position{}, false
	}
	return convertPos(pe.Position()), true
}

// EBNF renders the grammar in participle's EBNF notation.
func EBNF() string {
	return monkeyParser.String()
}
