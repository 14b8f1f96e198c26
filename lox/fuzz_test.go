package lox

import (
	"io"
	"testing"
)

func FuzzScanParseDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add("print 1 + 2;")
	f.Add("var a = (1 2 print a;")
	f.Add("\"unterminated")
	f.Add("{ var a = 1; { a = a + 1; } print a; }")
	f.Add("1 = 2; if (x print;")

	f.Fuzz(func(t *testing.T, source string) {
		if len(source) > 4096 {
			source = source[:4096]
		}
		diag := NewDiagnostics(nil)
		statements := Parse(Scan(source, diag), diag)
		for _, stmt := range statements {
			_ = FormatStmt(stmt)
		}
	})
}

func FuzzEvalDoesNotPanic(f *testing.F) {
	f.Add("print 1 / 0;")
	f.Add("print \"a\" + 1;")
	f.Add("var a; a = a or \"x\"; print a;")
	f.Add("if (nil) print 1; else if (0) print 2;")
	f.Add("print -\"s\";")

	f.Fuzz(func(t *testing.T, source string) {
		if len(source) > 4096 {
			source = source[:4096]
		}
		in := NewInterpreter(Config{Stdout: io.Discard, Reporter: NewDiagnostics(nil)})
		_, _ = in.Eval(source)
	})
}
