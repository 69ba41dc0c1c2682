package parser

import (
	"monkey/internal/ast"
	"monkey/internal/token"
)

// peek returns the lookahead token without consuming it.
func (p *Parser) peek() token.Token {
	if !p.hasPeek {
		p.peeked = p.lexer.NextToken()
		p.hasPeek = true
	}
	return p.peeked
}

// next consumes and returns the lookahead token.
func (p *Parser) next() token.Token {
	tok := p.peek()
	p.hasPeek = false
	p.prev = tok
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.next()
			return true
		}
	}
	return false
}

// expectPeek consumes exactly one token whether or not it has the expected
// kind, so a bad token is never re-read.
func (p *Parser) expectPeek(kind token.Kind, mkErr func(token.Token) *ParseError) (token.Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return tok, mkErr(tok)
	}
	return tok, nil
}

// expect is expectPeek with the error matching kind.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	return p.expectPeek(kind, errorFor(kind))
}

func (p *Parser) isSync(kind token.Kind) bool {
	_, ok := p.syncTokens[kind]
	return ok
}

// synchronize discards tokens until a synchronisation token has been
// consumed or the end of input is next. Inside a block it also stops in
// front of '}' so the block can close.
func (p *Parser) synchronize() {
	if p.isSync(p.prev.Kind) || p.prev.Kind == token.EOF {
		return
	}

	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			return
		}
		if tok.Kind == token.RBRACE && p.blockDepth > 0 {
			return
		}

		p.next()
		if p.isSync(tok.Kind) {
			return
		}
	}
}

func (p *Parser) makeIdent(tok token.Token) *ast.Identifier {
	return &ast.Identifier{
		Pos:    tok.Position,
		EndPos: tok.EndPosition(),
		Name:   tok.Literal,
	}
}
