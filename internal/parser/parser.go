package parser

import (
	"errors"

	"monkey/internal/ast"
	"monkey/internal/lexer"
	"monkey/internal/token"
)

// DefaultMaxDepth bounds expression nesting unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 1000

// Parser builds an AST from a lexer through a one-token lookahead buffer.
// Syntax errors are collected, never raised: after each failed statement
// the parser skips to the next synchronisation token and carries on.
type Parser struct {
	lexer *lexer.Lexer

	peeked  token.Token
	hasPeek bool
	prev    token.Token

	errors []*ParseError

	syncTokens map[token.Kind]struct{}
	maxDepth   int
	depth      int
	blockDepth int
}

type Option func(*Parser)

// WithSyncTokens replaces the set of tokens that end panic-mode recovery.
// The default set is just ';'.
func WithSyncTokens(kinds ...token.Kind) Option {
	return func(p *Parser) {
		p.syncTokens = make(map[token.Kind]struct{}, len(kinds))
		for _, k := range kinds {
			p.syncTokens[k] = struct{}{}
		}
	}
}

// WithMaxDepth limits how deeply expressions may nest. Zero disables the limit.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		lexer:      l,
		syncTokens: map[token.Kind]struct{}{token.SEMICOLON: {}},
		maxDepth:   DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Errors returns the syntax errors recorded so far, in source order.
func (p *Parser) Errors() []*ParseError {
	return p.errors
}

// ParseProgram parses statements until the end of input.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.check(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.record(err)
			p.synchronize()
			continue
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.next()

	switch tok.Kind {
	case token.LET:
		return p.parseLetStatement(tok)
	case token.RETURN:
		return p.parseReturnStatement(tok)
	default:
		return p.parseExpressionStatement(tok)
	}
}

// parseLetStatement parses `let <ident> = <expr> ;` after the let keyword.
func (p *Parser) parseLetStatement(letTok token.Token) (ast.Statement, error) {
	name, err := p.expectPeek(token.IDENT, ExpectedIdentifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expectPeek(token.ASSIGN, ExpectedAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	semi, err := p.expectPeek(token.SEMICOLON, ExpectedSemicolon)
	if err != nil {
		return nil, err
	}

	return &ast.LetStmt{
		Pos:    letTok.Position,
		EndPos: semi.EndPosition(),
		Name:   p.makeIdent(name),
		Value:  value,
	}, nil
}

func (p *Parser) parseReturnStatement(returnTok token.Token) (ast.Statement, error) {
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	semi, err := p.expectPeek(token.SEMICOLON, ExpectedSemicolon)
	if err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		Pos:    returnTok.Position,
		EndPos: semi.EndPosition(),
		Value:  value,
	}, nil
}

// parseExpressionStatement parses an expression whose first token has
// already been consumed, followed by an optional ';'.
func (p *Parser) parseExpressionStatement(first token.Token) (ast.Statement, error) {
	expr, err := p.parseExpressionFrom(first, LOWEST)
	if err != nil {
		return nil, err
	}

	stmt := &ast.ExprStmt{
		Pos:    expr.NodePos(),
		EndPos: expr.NodeEndPos(),
		Expr:   expr,
	}

	if p.match(token.SEMICOLON) {
		stmt.Semicolon = true
		stmt.EndPos = p.prev.EndPosition()
	}

	return stmt, nil
}

// parseBlock parses `{ <statements> }`. Errors inside the block are
// recorded and recovered from locally so the block can still close.
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	lbrace, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	p.blockDepth++
	defer func() { p.blockDepth-- }()

	block := &ast.BlockStmt{Pos: lbrace.Position}

	for {
		tok := p.peek()

		switch tok.Kind {
		case token.RBRACE:
			p.next()
			block.EndPos = tok.EndPosition()
			return block, nil

		case token.EOF:
			p.next()
			return nil, ExpectedRightBrace(tok)
		}

		stmt, err := p.parseStatement()
		if err != nil {
			p.record(err)
			// braces in between were matched by nested blocks, so a '}'
			// consumed by the failed statement is this block's own
			if p.prev.Kind == token.RBRACE {
				block.EndPos = p.prev.EndPosition()
				return block, nil
			}
			p.synchronize()
			continue
		}
		block.Statements = append(block.Statements, stmt)
	}
}

func (p *Parser) record(err error) {
	var perr *ParseError
	if errors.As(err, &perr) {
		p.errors = append(p.errors, perr)
		return
	}
	p.errors = append(p.errors, Unknown(p.prev, err.Error()))
}
