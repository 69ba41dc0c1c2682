package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStmt{
				Name:  ident("myVar"),
				Value: ident("anotherVar"),
			},
			&ReturnStmt{
				Value: &IntegerLiteral{Value: 5, Literal: "5"},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar;\nreturn 5;", program.String())
}

func TestEmptyProgramString(t *testing.T) {
	assert.Equal(t, "", (&Program{}).String())
}

func TestExprStmtString(t *testing.T) {
	stmt := &ExprStmt{Expr: ident("x")}
	assert.Equal(t, "x", stmt.String())

	stmt.Semicolon = true
	assert.Equal(t, "x;", stmt.String())
}

func TestOperatorStrings(t *testing.T) {
	expr := &InfixExpr{
		Left: &PrefixExpr{Op: "-", Right: ident("a")},
		Op:   "*",
		Right: &GroupedExpr{Inner: &InfixExpr{
			Left:  ident("b"),
			Op:    "+",
			Right: &IntegerLiteral{Value: 1},
		}},
	}

	assert.Equal(t, "((-a) * (b + 1))", expr.String())
}

func TestIfExprString(t *testing.T) {
	expr := &IfExpr{
		Condition:   &InfixExpr{Left: ident("x"), Op: "<", Right: ident("y")},
		Consequence: &BlockStmt{Statements: []Statement{&ExprStmt{Expr: ident("x")}}},
	}
	assert.Equal(t, "if (x < y) { x }", expr.String())

	expr.Alternative = &BlockStmt{Statements: []Statement{&ExprStmt{Expr: ident("y")}}}
	assert.Equal(t, "if (x < y) { x } else { y }", expr.String())
}

func TestFunctionAndCallStrings(t *testing.T) {
	fn := &FunctionLiteral{
		Params: []*Identifier{ident("x"), ident("y")},
		Body: &BlockStmt{Statements: []Statement{
			&ExprStmt{Expr: &InfixExpr{Left: ident("x"), Op: "+", Right: ident("y")}, Semicolon: true},
		}},
	}
	assert.Equal(t, "fn(x, y) { (x + y); }", fn.String())
	assert.Equal(t, "fn() { }", (&FunctionLiteral{Body: &BlockStmt{}}).String())

	call := &CallExpr{
		Function:  ident("add"),
		Arguments: []Expression{&IntegerLiteral{Value: 1}, &BooleanLiteral{Value: true}},
	}
	assert.Equal(t, "add(1, true)", call.String())
}

func TestNodeTypeString(t *testing.T) {
	assert.Equal(t, "LET_STMT", (&LetStmt{}).NodeType().String())
	assert.Equal(t, "CALL_EXPR", (&CallExpr{}).NodeType().String())
	assert.Equal(t, "NodeType(42)", NodeType(42).String())
}
