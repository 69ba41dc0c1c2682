package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar has one rule per binding level, weakest first, and folds
// repeated operators on a level from the left.

type Program struct {
	Statements []*Statement `@@*`
}

type Statement struct {
	Let    *LetStmt    `  @@`
	Return *ReturnStmt `| @@`
	Expr   *ExprStmt   `| @@`
}

type LetStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   *Ident `"let" @@ "="`
	Value  *Expr  `@@ ";"`
}

type ReturnStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  *Expr `"return" @@ ";"`
}

type ExprStmt struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Expr      *Expr `@@`
	Semicolon bool  `[ @";" ]`
}

type Block struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `"{" @@* "}"`
}

type Ident struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string `@Ident`
}

type Expr struct {
	Equality *Equality `@@`
}

type Equality struct {
	Left *Comparison   `@@`
	Rest []*EqualityOp `@@*`
}

type EqualityOp struct {
	Operator string      `@("==" | "!=")`
	Right    *Comparison `@@`
}

type Comparison struct {
	Left *Sum            `@@`
	Rest []*ComparisonOp `@@*`
}

type ComparisonOp struct {
	Operator string `@("<" | ">")`
	Right    *Sum   `@@`
}

type Sum struct {
	Left *Product `@@`
	Rest []*SumOp `@@*`
}

type SumOp struct {
	Operator string   `@("+" | "-")`
	Right    *Product `@@`
}

type Product struct {
	Left *Unary       `@@`
	Rest []*ProductOp `@@*`
}

type ProductOp struct {
	Operator string `@("*" | "/")`
	Right    *Unary `@@`
}

type Unary struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string `  ( @("!" | "-")`
	Operand  *Unary `    @@ )`
	Call     *Call  `| @@`
}

type Call struct {
	Callee *Primary     `@@`
	Calls  []*Arguments `@@*`
}

type Arguments struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Values []*Expr `"(" [ @@ { "," @@ } ] ")"`
}

type Primary struct {
	Pos    lexer.Position
	EndPos lexer.Position
	If     *IfExpr    `  @@`
	Fn     *FnLiteral `| @@`
	Bool   *string    `| @("true" | "false")`
	Int    *string    `| @Int`
	Ident  *string    `| @Ident`
	Group  *Expr      `| "(" @@ ")"`
}

type IfExpr struct {
	Pos         lexer.Position
	EndPos      lexer.Position
	Condition   *Expr  `"if" "(" @@ ")"`
	Consequence *Block `@@`
	Alternative *Block `[ "else" @@ ]`
}

type FnLiteral struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Params []*Ident `"fn" "(" [ @@ { "," @@ } ] ")"`
	Body   *Block   `@@`
}
