package lox

import "testing"

func TestFormatExpr(t *testing.T) {
	expr := &BinaryExpr{
		Left: &UnaryExpr{
			Operator: Token{Type: TokenMinus, Lexeme: "-", Line: 1},
			Right:    &LiteralExpr{Value: NewNumber(123)},
		},
		Operator: Token{Type: TokenStar, Lexeme: "*", Line: 1},
		Right:    &GroupingExpr{Inner: &LiteralExpr{Value: NewNumber(45.67)}},
	}
	if got := FormatExpr(expr); got != "(* (- 123) (group 45.67))" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFormatStmtQuotesStrings(t *testing.T) {
	statements := Parse(Scan(`var greeting = "hi" + "\n";`, nil), nil)
	if len(statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(statements))
	}
	if got := FormatStmt(statements[0]); got != `(var greeting (+ "hi" "\\n"))` {
		t.Fatalf("unexpected output %q", got)
	}
}
