package ast

type Expression interface {
	Node
	isExpr()
}

func (*Identifier) isExpr()      {}
func (*IntegerLiteral) isExpr()  {}
func (*BooleanLiteral) isExpr()  {}
func (*PrefixExpr) isExpr()      {}
func (*InfixExpr) isExpr()       {}
func (*GroupedExpr) isExpr()     {}
func (*IfExpr) isExpr()          {}
func (*FunctionLiteral) isExpr() {}
func (*CallExpr) isExpr()        {}

// IntegerLiteral keeps both the parsed value and the source spelling
// Example: "838383"
type IntegerLiteral struct {
	Pos     Position
	EndPos  Position
	Value   int64
	Literal string
}

// BooleanLiteral
// Example: "true"
type BooleanLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// PrefixExpr applies a unary operator ("!" or "-") to its operand
// Example: "-x", "!ok"
type PrefixExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Right  Expression
}

// InfixExpr is a binary operation
// Example: "a + b", "x == y"
type InfixExpr struct {
	Pos    Position
	EndPos Position
	Left   Expression
	Op     string
	Right  Expression
}

// GroupedExpr records explicit parentheses in the source
// Example: "(a + b)"
type GroupedExpr struct {
	Pos    Position
	EndPos Position
	Inner  Expression
}

// IfExpr
// Example: "if (x < y) { x } else { y }"
type IfExpr struct {
	Pos         Position
	EndPos      Position
	Condition   Expression
	Consequence *BlockStmt
	Alternative *BlockStmt // nil without an else branch
}

// FunctionLiteral
// Example: "fn(x, y) { x + y; }"
type FunctionLiteral struct {
	Pos    Position
	EndPos Position
	Params []*Identifier
	Body   *BlockStmt
}

// CallExpr
// Example: "add(1, 2 * 3)", "fn(x) { x }(5)"
type CallExpr struct {
	Pos       Position
	EndPos    Position
	Function  Expression
	Arguments []Expression
}
