package ast

import "fmt"

type NodeType int

const (
	ILLEGAL NodeType = iota
	PROGRAM

	// Statements
	LET_STMT
	RETURN_STMT
	EXPR_STMT
	BLOCK_STMT

	// Expressions
	IDENT
	INTEGER_LITERAL
	BOOLEAN_LITERAL
	PREFIX_EXPR
	INFIX_EXPR
	GROUPED_EXPR
	IF_EXPR
	FUNCTION_LITERAL
	CALL_EXPR
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "ILLEGAL",
	PROGRAM:          "PROGRAM",
	LET_STMT:         "LET_STMT",
	RETURN_STMT:      "RETURN_STMT",
	EXPR_STMT:        "EXPR_STMT",
	BLOCK_STMT:       "BLOCK_STMT",
	IDENT:            "IDENT",
	INTEGER_LITERAL:  "INTEGER_LITERAL",
	BOOLEAN_LITERAL:  "BOOLEAN_LITERAL",
	PREFIX_EXPR:      "PREFIX_EXPR",
	INFIX_EXPR:       "INFIX_EXPR",
	GROUPED_EXPR:     "GROUPED_EXPR",
	IF_EXPR:          "IF_EXPR",
	FUNCTION_LITERAL: "FUNCTION_LITERAL",
	CALL_EXPR:        "CALL_EXPR",
}

func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}
