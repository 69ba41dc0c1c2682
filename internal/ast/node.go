package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position {
	if len(p.Statements) == 0 {
		return Position{Line: 1, Column: 1}
	}
	return p.Statements[0].NodePos()
}

func (p *Program) NodeEndPos() Position {
	if len(p.Statements) == 0 {
		return Position{Line: 1, Column: 1}
	}
	return p.Statements[len(p.Statements)-1].NodeEndPos()
}

func (*Program) NodeType() NodeType { return PROGRAM }

func (l *LetStmt) NodePos() Position    { return l.Pos }
func (l *LetStmt) NodeEndPos() Position { return l.EndPos }
func (*LetStmt) NodeType() NodeType     { return LET_STMT }

func (r *ReturnStmt) NodePos() Position    { return r.Pos }
func (r *ReturnStmt) NodeEndPos() Position { return r.EndPos }
func (*ReturnStmt) NodeType() NodeType     { return RETURN_STMT }

func (e *ExprStmt) NodePos() Position    { return e.Pos }
func (e *ExprStmt) NodeEndPos() Position { return e.EndPos }
func (*ExprStmt) NodeType() NodeType     { return EXPR_STMT }

func (b *BlockStmt) NodePos() Position    { return b.Pos }
func (b *BlockStmt) NodeEndPos() Position { return b.EndPos }
func (*BlockStmt) NodeType() NodeType     { return BLOCK_STMT }

func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }
func (*Identifier) NodeType() NodeType     { return IDENT }

func (i *IntegerLiteral) NodePos() Position    { return i.Pos }
func (i *IntegerLiteral) NodeEndPos() Position { return i.EndPos }
func (*IntegerLiteral) NodeType() NodeType     { return INTEGER_LITERAL }

func (b *BooleanLiteral) NodePos() Position    { return b.Pos }
func (b *BooleanLiteral) NodeEndPos() Position { return b.EndPos }
func (*BooleanLiteral) NodeType() NodeType     { return BOOLEAN_LITERAL }

func (p *PrefixExpr) NodePos() Position    { return p.Pos }
func (p *PrefixExpr) NodeEndPos() Position { return p.EndPos }
func (*PrefixExpr) NodeType() NodeType     { return PREFIX_EXPR }

func (i *InfixExpr) NodePos() Position    { return i.Pos }
func (i *InfixExpr) NodeEndPos() Position { return i.EndPos }
func (*InfixExpr) NodeType() NodeType     { return INFIX_EXPR }

func (g *GroupedExpr) NodePos() Position    { return g.Pos }
func (g *GroupedExpr) NodeEndPos() Position { return g.EndPos }
func (*GroupedExpr) NodeType() NodeType     { return GROUPED_EXPR }

func (i *IfExpr) NodePos() Position    { return i.Pos }
func (i *IfExpr) NodeEndPos() Position { return i.EndPos }
func (*IfExpr) NodeType() NodeType     { return IF_EXPR }

func (f *FunctionLiteral) NodePos() Position    { return f.Pos }
func (f *FunctionLiteral) NodeEndPos() Position { return f.EndPos }
func (*FunctionLiteral) NodeType() NodeType     { return FUNCTION_LITERAL }

func (c *CallExpr) NodePos() Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() Position { return c.EndPos }
func (*CallExpr) NodeType() NodeType     { return CALL_EXPR }
