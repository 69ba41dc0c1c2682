package ast

import (
	"fmt"
	"strings"
)

// String renders one statement per line. Operator expressions are fully
// parenthesised so the tree shape is visible in the output.
func (p *Program) String() string {
	var b strings.Builder

	for i, stmt := range p.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(stmt.String())
	}

	return b.String()
}

func (l *LetStmt) String() string {
	return fmt.Sprintf("let %s = %s;", l.Name.String(), exprString(l.Value))
}

func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", exprString(r.Value))
}

func (e *ExprStmt) String() string {
	if e.Semicolon {
		return exprString(e.Expr) + ";"
	}
	return exprString(e.Expr)
}

func (b *BlockStmt) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}

	parts := make([]string, len(b.Statements))
	for i, stmt := range b.Statements {
		parts[i] = stmt.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

func (i *Identifier) String() string {
	return i.Name
}

func (i *IntegerLiteral) String() string {
	if i.Literal != "" {
		return i.Literal
	}
	return fmt.Sprintf("%d", i.Value)
}

func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

func (p *PrefixExpr) String() string {
	return fmt.Sprintf("(%s%s)", p.Op, exprString(p.Right))
}

func (i *InfixExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", exprString(i.Left), i.Op, exprString(i.Right))
}

// String of a grouped expression is its inner expression: the canonical
// form already makes grouping explicit.
func (g *GroupedExpr) String() string {
	return exprString(g.Inner)
}

func (i *IfExpr) String() string {
	var b strings.Builder

	b.WriteString("if ")
	b.WriteString(exprString(i.Condition))
	b.WriteString(" ")
	b.WriteString(i.Consequence.String())

	if i.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(i.Alternative.String())
	}

	return b.String()
}

func (f *FunctionLiteral) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	return fmt.Sprintf("fn(%s) %s", strings.Join(params, ", "), f.Body.String())
}

func (c *CallExpr) String() string {
	args := make([]string, len(c.Arguments))
	for i, arg := range c.Arguments {
		args[i] = exprString(arg)
	}
	return fmt.Sprintf("%s(%s)", exprString(c.Function), strings.Join(args, ", "))
}

func exprString(e Expression) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
