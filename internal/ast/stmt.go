package ast

type Statement interface {
	Node
	isStmt()
}

func (*LetStmt) isStmt()    {}
func (*ReturnStmt) isStmt() {}
func (*ExprStmt) isStmt()   {}
func (*BlockStmt) isStmt()  {}

// LetStmt binds the value of an expression to a name
// Example: "let x = 5 * y;"
type LetStmt struct {
	Pos    Position
	EndPos Position
	Name   *Identifier
	Value  Expression
}

// ReturnStmt
// Example: "return x + 1;"
type ReturnStmt struct {
	Pos    Position
	EndPos Position
	Value  Expression
}

// ExprStmt is a bare expression used as a statement. Semicolon records
// whether the optional terminator was present.
// Example: "add(1, 2);" or "x + y" as the tail of a block
type ExprStmt struct {
	Pos       Position
	EndPos    Position
	Expr      Expression
	Semicolon bool
}

// BlockStmt is a brace-delimited statement list used by if and fn bodies
// Example: "{ let y = x; y * 2 }"
type BlockStmt struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}
