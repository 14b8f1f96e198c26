package lox

import (
	"strconv"
	"strings"
)

// FormatStmt renders a statement in a parenthesized prefix form, e.g.
// `(var x (+ 1 2))`. It is meant for debugging the parser.
func FormatStmt(stmt Stmt) string {
	var b strings.Builder
	writeStmt(&b, stmt)
	return b.String()
}

// FormatExpr renders an expression in parenthesized prefix form, e.g.
// `(* (- 123) (group 45.67))`.
func FormatExpr(expr Expr) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeStmt(b *strings.Builder, stmt Stmt) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		parenthesize(b, ";", s.Expr)
	case *PrintStmt:
		parenthesize(b, "print", s.Expr)
	case *VarStmt:
		if s.Initializer == nil {
			b.WriteString("(var " + s.Name.Lexeme + ")")
			return
		}
		parenthesize(b, "var "+s.Name.Lexeme, s.Initializer)
	case *BlockStmt:
		b.WriteString("(block")
		for _, inner := range s.Statements {
			b.WriteByte(' ')
			writeStmt(b, inner)
		}
		b.WriteByte(')')
	case *IfStmt:
		b.WriteString("(if ")
		writeExpr(b, s.Condition)
		b.WriteByte(' ')
		writeStmt(b, s.Then)
		if s.Else != nil {
			b.WriteByte(' ')
			writeStmt(b, s.Else)
		}
		b.WriteByte(')')
	default:
		b.WriteString("(?)")
	}
}

func writeExpr(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *LiteralExpr:
		if e.Value.Kind() == KindString {
			b.WriteString(strconv.Quote(e.Value.Str()))
			return
		}
		b.WriteString(e.Value.String())
	case *GroupingExpr:
		parenthesize(b, "group", e.Inner)
	case *VariableExpr:
		b.WriteString(e.Name.Lexeme)
	case *AssignExpr:
		parenthesize(b, "= "+e.Name.Lexeme, e.Value)
	case *UnaryExpr:
		parenthesize(b, e.Operator.Lexeme, e.Right)
	case *BinaryExpr:
		parenthesize(b, e.Operator.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		parenthesize(b, e.Operator.Lexeme, e.Left, e.Right)
	default:
		b.WriteString("?")
	}
}

func parenthesize(b *strings.Builder, name string, exprs ...Expr) {
	b.WriteByte('(')
	b.WriteString(name)
	for _, expr := range exprs {
		b.WriteByte(' ')
		writeExpr(b, expr)
	}
	b.WriteByte(')')
}
