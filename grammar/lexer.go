package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"monkey/internal/token"
)

// MonkeyLexer splits keywords out of identifiers so that `@Ident` never
// captures a reserved word.
var MonkeyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(` + strings.Join(token.Keywords(), "|") + `)\b`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Operator", Pattern: `==|!=|[-+*/<>=!]`},
	{Name: "Punct", Pattern: `[,;(){}]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n\v\f]+`},
})
