package lsp

import (
	"monkey/internal/ast"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

// SemanticToken represents a single LSP semantic token entry.
// Line and StartChar are 0-based; StartChar and Length count bytes.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask over SemanticTokenModifiers
}

// identClass is how an identifier occurrence should be highlighted.
type identClass struct {
	tokenType string
	modifiers []string
}

// collectSemanticTokens highlights text token by token. Keywords, numbers
// and operators come straight from the lexer; identifiers are classified
// from the AST so declarations, functions and parameters stand out. An
// identifier the parser never reached is reported as a variable.
func collectSemanticTokens(text string, program *ast.Program) []SemanticToken {
	classes := classifyIdentifiers(program)

	var tokens []SemanticToken
	for tok := range lexer.New(text).All() {
		switch {
		case tok.Kind == token.IDENT:
			class, ok := classes[tok.Position.Offset]
			if !ok {
				class = identClass{tokenType: "variable"}
			}
			tokens = append(tokens, makeToken(tok, class.tokenType, class.modifiers...))

		case tok.Kind.IsKeyword():
			tokens = append(tokens, makeToken(tok, "keyword"))

		case tok.Kind == token.INT:
			tokens = append(tokens, makeToken(tok, "number"))

		case tok.Kind.IsOperator():
			tokens = append(tokens, makeToken(tok, "operator"))
		}
	}

	return tokens
}

// classifier resolves identifiers against the let bindings and parameters
// in scope. Scopes are opened by function literals only, matching how
// monkey closures capture their environment.
type classifier struct {
	classes map[int]identClass
	scopes  []map[string]string
}

func classifyIdentifiers(program *ast.Program) map[int]identClass {
	c := &classifier{
		classes: make(map[int]identClass),
		scopes:  []map[string]string{{}},
	}
	if program != nil {
		c.walk(program)
	}
	return c.classes
}

func (c *classifier) declare(ident *ast.Identifier, tokenType string, modifiers ...string) {
	c.scopes[len(c.scopes)-1][ident.Name] = tokenType
	c.classes[ident.Pos.Offset] = identClass{tokenType: tokenType, modifiers: modifiers}
}

func (c *classifier) resolve(name string) (string, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if tokenType, ok := c.scopes[i][name]; ok {
			return tokenType, true
		}
	}
	return "", false
}

func (c *classifier) reference(ident *ast.Identifier, callee bool) {
	tokenType, ok := c.resolve(ident.Name)
	switch {
	case ok:
	case callee:
		tokenType = "function"
	default:
		tokenType = "variable"
	}
	c.classes[ident.Pos.Offset] = identClass{tokenType: tokenType}
}

func (c *classifier) walk(node ast.Node) {
	switch n := node.(type) {
	case *ast.LetStmt:
		// declared before the value is walked so recursive functions resolve
		tokenType := "variable"
		if _, ok := n.Value.(*ast.FunctionLiteral); ok {
			tokenType = "function"
		}
		c.declare(n.Name, tokenType, "declaration", "readonly")
		if n.Value != nil {
			c.walk(n.Value)
		}

	case *ast.FunctionLiteral:
		c.scopes = append(c.scopes, map[string]string{})
		for _, param := range n.Params {
			c.declare(param, "parameter", "declaration")
		}
		if n.Body != nil {
			c.walk(n.Body)
		}
		c.scopes = c.scopes[:len(c.scopes)-1]

	case *ast.CallExpr:
		if ident, ok := n.Function.(*ast.Identifier); ok {
			c.reference(ident, true)
		} else if n.Function != nil {
			c.walk(n.Function)
		}
		for _, arg := range n.Arguments {
			c.walk(arg)
		}

	case *ast.Identifier:
		c.reference(n, false)

	default:
		for _, child := range ast.Children(node) {
			c.walk(child)
		}
	}
}

// makeToken creates a semantic token covering tok
func makeToken(tok token.Token, tokenType string, modifiers ...string) SemanticToken {
	mask := 0
	for _, m := range modifiers {
		mask |= 1 << indexOf(m, SemanticTokenModifiers)
	}

	return SemanticToken{
		Line:           uint32(tok.Position.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(tok.Position.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(tok.Span.Len()),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: mask,
	}
}

// encodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression. Tokens must be in document order.
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, tok := range tokens {
		deltaLine := tok.Line - prevLine
		deltaStart := tok.StartChar
		if deltaLine == 0 {
			deltaStart = tok.StartChar - prevStart
		}

		data = append(data, deltaLine, deltaStart, tok.Length, uint32(tok.TokenType), uint32(tok.TokenModifiers))

		prevLine = tok.Line
		prevStart = tok.StartChar
	}

	return data
}

// indexOf returns the index of a string in a slice, or 0 if not found
func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return 0
}
