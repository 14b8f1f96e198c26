package lox

// Expr is implemented by every expression node. The set of implementations is
// closed; the interpreter and printer switch over it exhaustively.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

type LiteralExpr struct {
	Value Value
}

type UnaryExpr struct {
	Operator Token
	Right    Expr
}

type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// LogicalExpr is an `and` / `or` expression. It is kept apart from
// BinaryExpr because its right operand is evaluated conditionally.
type LogicalExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

type GroupingExpr struct {
	Inner Expr
}

type VariableExpr struct {
	Name Token
}

type AssignExpr struct {
	Name  Token
	Value Expr
}

func (*LiteralExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*GroupingExpr) exprNode() {}
func (*VariableExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}

type ExpressionStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

// VarStmt declares Name in the current scope. Initializer is nil when the
// declaration has none.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

type BlockStmt struct {
	Statements []Stmt
}

// IfStmt binds Else to the nearest preceding if. Else is nil when absent.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
