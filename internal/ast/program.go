package ast

import "monkey/internal/token"

// Position tracks location information for error reporting and tooling
type Position = token.Position

// Program is the root of every parse: its statements in source order.
// Example: "let x = 5; x + 1;"
type Program struct {
	Statements []Statement
}

// Identifier represents a name in binding or expression position
// Example: "x", "add", "foo_bar"
type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string
}
