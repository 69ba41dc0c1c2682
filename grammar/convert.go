package grammar

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"monkey/internal/ast"
	"monkey/internal/token"
)

func convertPos(p lexer.Position) token.Position {
	return token.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// ToAST converts the parse tree into ast nodes. The only failure is an
// integer literal that does not fit in 64 bits.
func (p *Program) ToAST() (*ast.Program, error) {
	program := &ast.Program{}

	for _, s := range p.Statements {
		stmt, err := s.toAST()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

func (s *Statement) toAST() (ast.Statement, error) {
	switch {
	case s.Let != nil:
		value, err := s.Let.Value.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.LetStmt{
			Pos:    convertPos(s.Let.Pos),
			EndPos: convertPos(s.Let.EndPos),
			Name:   s.Let.Name.toAST(),
			Value:  value,
		}, nil

	case s.Return != nil:
		value, err := s.Return.Value.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{
			Pos:    convertPos(s.Return.Pos),
			EndPos: convertPos(s.Return.EndPos),
			Value:  value,
		}, nil

	case s.Expr != nil:
		expr, err := s.Expr.Expr.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{
			Pos:       convertPos(s.Expr.Pos),
			EndPos:    convertPos(s.Expr.EndPos),
			Expr:      expr,
			Semicolon: s.Expr.Semicolon,
		}, nil
	}

	return nil, fmt.Errorf("empty statement")
}

func (b *Block) toAST() (*ast.BlockStmt, error) {
	block := &ast.BlockStmt{
		Pos:    convertPos(b.Pos),
		EndPos: convertPos(b.EndPos),
	}

	for _, s := range b.Statements {
		stmt, err := s.toAST()
		if err != nil {
			return nil, err
		}
		block.Statements = append(block.Statements, stmt)
	}

	return block, nil
}

func (i *Ident) toAST() *ast.Identifier {
	return &ast.Identifier{
		Pos:    convertPos(i.Pos),
		EndPos: convertPos(i.EndPos),
		Name:   i.Name,
	}
}

func (e *Expr) toAST() (ast.Expression, error) {
	return e.Equality.toAST()
}

func infix(left ast.Expression, op string, right ast.Expression) ast.Expression {
	return &ast.InfixExpr{
		Pos:    left.NodePos(),
		EndPos: right.NodeEndPos(),
		Left:   left,
		Op:     op,
		Right:  right,
	}
}

func (e *Equality) toAST() (ast.Expression, error) {
	left, err := e.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, op := range e.Rest {
		right, err := op.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = infix(left, op.Operator, right)
	}

	return left, nil
}

func (c *Comparison) toAST() (ast.Expression, error) {
	left, err := c.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, op := range c.Rest {
		right, err := op.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = infix(left, op.Operator, right)
	}

	return left, nil
}

func (s *Sum) toAST() (ast.Expression, error) {
	left, err := s.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, op := range s.Rest {
		right, err := op.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = infix(left, op.Operator, right)
	}

	return left, nil
}

func (p *Product) toAST() (ast.Expression, error) {
	left, err := p.Left.toAST()
	if err != nil {
		return nil, err
	}

	for _, op := range p.Rest {
		right, err := op.Right.toAST()
		if err != nil {
			return nil, err
		}
		left = infix(left, op.Operator, right)
	}

	return left, nil
}

func (u *Unary) toAST() (ast.Expression, error) {
	if u.Call != nil {
		return u.Call.toAST()
	}

	operand, err := u.Operand.toAST()
	if err != nil {
		return nil, err
	}

	return &ast.PrefixExpr{
		Pos:    convertPos(u.Pos),
		EndPos: operand.NodeEndPos(),
		Op:     u.Operator,
		Right:  operand,
	}, nil
}

func (c *Call) toAST() (ast.Expression, error) {
	expr, err := c.Callee.toAST()
	if err != nil {
		return nil, err
	}

	for _, call := range c.Calls {
		args := make([]ast.Expression, 0, len(call.Values))
		for _, v := range call.Values {
			arg, err := v.toAST()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}

		expr = &ast.CallExpr{
			Pos:       expr.NodePos(),
			EndPos:    convertPos(call.EndPos),
			Function:  expr,
			Arguments: args,
		}
	}

	return expr, nil
}

func (p *Primary) toAST() (ast.Expression, error) {
	pos, end := convertPos(p.Pos), convertPos(p.EndPos)

	switch {
	case p.If != nil:
		return p.If.toAST()

	case p.Fn != nil:
		return p.Fn.toAST()

	case p.Bool != nil:
		return &ast.BooleanLiteral{Pos: pos, EndPos: end, Value: *p.Bool == "true"}, nil

	case p.Int != nil:
		value, err := strconv.ParseInt(*p.Int, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: integer literal %s does not fit in 64 bits", pos, *p.Int)
		}
		return &ast.IntegerLiteral{Pos: pos, EndPos: end, Value: value, Literal: *p.Int}, nil

	case p.Ident != nil:
		return &ast.Identifier{Pos: pos, EndPos: end, Name: *p.Ident}, nil

	case p.Group != nil:
		inner, err := p.Group.toAST()
		if err != nil {
			return nil, err
		}
		return &ast.GroupedExpr{Pos: pos, EndPos: end, Inner: inner}, nil
	}

	return nil, fmt.Errorf("%s: empty expression", pos)
}

func (i *IfExpr) toAST() (ast.Expression, error) {
	cond, err := i.Condition.toAST()
	if err != nil {
		return nil, err
	}

	consequence, err := i.Consequence.toAST()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpr{
		Pos:         convertPos(i.Pos),
		EndPos:      convertPos(i.EndPos),
		Condition:   cond,
		Consequence: consequence,
	}

	if i.Alternative != nil {
		if expr.Alternative, err = i.Alternative.toAST(); err != nil {
			return nil, err
		}
	}

	return expr, nil
}

func (f *FnLiteral) toAST() (ast.Expression, error) {
	body, err := f.Body.toAST()
	if err != nil {
		return nil, err
	}

	var params []*ast.Identifier
	for _, p := range f.Params {
		params = append(params, p.toAST())
	}

	return &ast.FunctionLiteral{
		Pos:    convertPos(f.Pos),
		EndPos: convertPos(f.EndPos),
		Params: params,
		Body:   body,
	}, nil
}
