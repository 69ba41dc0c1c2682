package parser

import (
	"strconv"

	"monkey/internal/ast"
	"monkey/internal/token"
)

// Binding powers, weakest first.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x)
)

var precedences = map[token.Kind]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
}

func precedenceOf(kind token.Kind) int {
	if prec, ok := precedences[kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	return p.parseExpressionFrom(p.next(), minPrec)
}

// parseExpressionFrom runs the Pratt loop with first already consumed.
// Infix operators are folded in while they bind tighter than minPrec; the
// right operand is parsed at the operator's own precedence, which makes
// every binary operator left-associative.
func (p *Parser) parseExpressionFrom(first token.Token, minPrec int) (ast.Expression, error) {
	p.depth++
	defer func() { p.depth-- }()

	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return nil, NestingTooDeep(first, p.maxDepth)
	}

	expr, err := p.parsePrefixExpr(first)
	if err != nil {
		return nil, err
	}

	for {
		prec := precedenceOf(p.peek().Kind)
		if prec <= minPrec {
			return expr, nil
		}

		op := p.next()
		if op.Kind == token.LPAREN {
			expr, err = p.parseCallExpr(expr)
		} else {
			expr, err = p.parseInfixExpr(expr, op, prec)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parsePrefixExpr(tok token.Token) (ast.Expression, error) {
	switch tok.Kind {
	case token.IDENT:
		return p.makeIdent(tok), nil

	case token.INT:
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, InvalidInteger(tok)
		}
		return &ast.IntegerLiteral{
			Pos:     tok.Position,
			EndPos:  tok.EndPosition(),
			Value:   value,
			Literal: tok.Literal,
		}, nil

	case token.TRUE, token.FALSE:
		return &ast.BooleanLiteral{
			Pos:    tok.Position,
			EndPos: tok.EndPosition(),
			Value:  tok.Kind == token.TRUE,
		}, nil

	case token.BANG, token.MINUS:
		right, err := p.parseExpression(PREFIX)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpr{
			Pos:    tok.Position,
			EndPos: right.NodeEndPos(),
			Op:     tok.Literal,
			Right:  right,
		}, nil

	case token.LPAREN:
		return p.parseGroupedExpr(tok)

	case token.IF:
		return p.parseIfExpr(tok)

	case token.FUNCTION:
		return p.parseFunctionLiteral(tok)
	}

	return nil, ExpectedExpression(tok)
}

func (p *Parser) parseInfixExpr(left ast.Expression, op token.Token, prec int) (ast.Expression, error) {
	right, err := p.parseExpression(prec)
	if err != nil {
		return nil, err
	}

	return &ast.InfixExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Left:   left,
		Op:     op.Literal,
		Right:  right,
	}, nil
}

func (p *Parser) parseGroupedExpr(lparen token.Token) (ast.Expression, error) {
	inner, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	rparen, err := p.expect(token.RPAREN)
	if err != nil {
		return nil, err
	}

	return &ast.GroupedExpr{
		Pos:    lparen.Position,
		EndPos: rparen.EndPosition(),
		Inner:  inner,
	}, nil
}

// parseIfExpr parses `if (<cond>) { ... } [else { ... }]`.
func (p *Parser) parseIfExpr(ifTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	consequence, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpr{
		Pos:         ifTok.Position,
		EndPos:      consequence.EndPos,
		Condition:   cond,
		Consequence: consequence,
	}

	if p.match(token.ELSE) {
		alternative, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		expr.Alternative = alternative
		expr.EndPos = alternative.EndPos
	}

	return expr, nil
}

// parseFunctionLiteral parses `fn(<params>) { ... }`.
func (p *Parser) parseFunctionLiteral(fnTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionLiteral{
		Pos:    fnTok.Position,
		EndPos: body.EndPos,
		Params: params,
		Body:   body,
	}, nil
}

// parseParameters parses a comma separated identifier list up to and
// including the closing ')'.
func (p *Parser) parseParameters() ([]*ast.Identifier, error) {
	var params []*ast.Identifier

	if p.match(token.RPAREN) {
		return params, nil
	}

	for {
		name, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		params = append(params, p.makeIdent(name))

		if err := p.listSeparator(); err != nil {
			return nil, err
		}
		if p.prev.Kind == token.RPAREN {
			return params, nil
		}
	}
}

func (p *Parser) parseCallExpr(function ast.Expression) (ast.Expression, error) {
	var args []ast.Expression

	if !p.match(token.RPAREN) {
		for {
			arg, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if err := p.listSeparator(); err != nil {
				return nil, err
			}
			if p.prev.Kind == token.RPAREN {
				break
			}
		}
	}

	return &ast.CallExpr{
		Pos:       function.NodePos(),
		EndPos:    p.prev.EndPosition(),
		Function:  function,
		Arguments: args,
	}, nil
}

// listSeparator consumes the token after a list element, which must be
// ',' or the closing ')'.
func (p *Parser) listSeparator() error {
	tok := p.next()

	switch tok.Kind {
	case token.COMMA, token.RPAREN:
		return nil
	case token.EOF:
		return ExpectedRParenthesis(tok)
	default:
		return ExpectedComma(tok)
	}
}
