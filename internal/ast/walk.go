package ast

// Inspect traverses the tree rooted at node in depth-first order. If f
// returns false the children of that node are skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var children []Node

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			children = append(children, stmt)
		}

	case *LetStmt:
		children = append(children, n.Name)
		children = appendExpr(children, n.Value)

	case *ReturnStmt:
		children = appendExpr(children, n.Value)

	case *ExprStmt:
		children = appendExpr(children, n.Expr)

	case *BlockStmt:
		for _, stmt := range n.Statements {
			children = append(children, stmt)
		}

	case *PrefixExpr:
		children = appendExpr(children, n.Right)

	case *InfixExpr:
		children = appendExpr(children, n.Left)
		children = appendExpr(children, n.Right)

	case *GroupedExpr:
		children = appendExpr(children, n.Inner)

	case *IfExpr:
		children = appendExpr(children, n.Condition)
		if n.Consequence != nil {
			children = append(children, n.Consequence)
		}
		if n.Alternative != nil {
			children = append(children, n.Alternative)
		}

	case *FunctionLiteral:
		for _, param := range n.Params {
			children = append(children, param)
		}
		if n.Body != nil {
			children = append(children, n.Body)
		}

	case *CallExpr:
		children = appendExpr(children, n.Function)
		for _, arg := range n.Arguments {
			children = appendExpr(children, arg)
		}
	}

	return children
}

func appendExpr(nodes []Node, e Expression) []Node {
	if e == nil {
		return nodes
	}
	return append(nodes, e)
}

// SourceText returns the slice of source covered by node, or "" when the
// node's offsets do not fit the source.
func SourceText(source string, node Node) string {
	start := node.NodePos().Offset
	end := node.NodeEndPos().Offset

	if start < 0 || end < 0 || start > len(source) || end > len(source) {
		return ""
	}

	if start > end {
		return ""
	}

	return source[start:end]
}
