package lox

import (
	"bytes"
	"strings"
	"testing"
)

func TestDiagnosticsFormatting(t *testing.T) {
	var buf bytes.Buffer
	diag := NewDiagnostics(&buf)

	diag.Error(3, 1, "", "Unexpected character.")
	diag.Error(4, 5, "at 'x'", "Expect ';' after value.")
	diag.RuntimeError(&RuntimeError{Token: Token{Lexeme: "+", Line: 9}, Message: "Operands must be numbers."})

	want := "[line 3] Error: Unexpected character.\n" +
		"[line 4] Error at 'x': Expect ';' after value.\n" +
		"Operands must be numbers.\n[line 9]\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	if !diag.HadError() || !diag.HadRuntimeError() {
		t.Fatalf("expected both flags set")
	}
	if len(diag.Entries()) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(diag.Entries()))
	}
}

func TestDiagnosticsReset(t *testing.T) {
	diag := NewDiagnostics(nil)
	diag.Error(1, 1, "", "boom")
	diag.Reset()
	if diag.HadError() || diag.HadRuntimeError() || len(diag.Entries()) != 0 {
		t.Fatalf("reset should clear state")
	}
	if diag.String() != "" {
		t.Fatalf("expected empty string after reset, got %q", diag.String())
	}
}

func TestDiagnosticsEntriesIsACopy(t *testing.T) {
	diag := NewDiagnostics(nil)
	diag.Error(1, 1, "", "first")
	entries := diag.Entries()
	entries[0].Message = "changed"
	if diag.Entries()[0].Message != "first" {
		t.Fatalf("entries should not alias internal state")
	}
}

func TestFormatCodeFrame(t *testing.T) {
	source := "var a = 1;\nprint a +;\n"
	frame := FormatCodeFrame(source, Diagnostic{Line: 2, Column: 10})
	want := "  --> line 2, column 10\n 2 | print a +;\n   |          ^"
	if frame != want {
		t.Fatalf("got\n%s\nwant\n%s", frame, want)
	}
}

func TestFormatCodeFrameClampsAndRejects(t *testing.T) {
	if FormatCodeFrame("", Diagnostic{Line: 1, Column: 1}) != "" {
		t.Fatalf("empty source should produce no frame")
	}
	if FormatCodeFrame("x", Diagnostic{Line: 5, Column: 1}) != "" {
		t.Fatalf("line out of range should produce no frame")
	}
	frame := FormatCodeFrame("ab", Diagnostic{Line: 1, Column: 40})
	if !strings.HasSuffix(frame, "|   ^") {
		t.Fatalf("column should clamp to end of line, got %q", frame)
	}
}

func TestFormatCodeFrameForParseError(t *testing.T) {
	source := "var x = 1;\nx = ;"
	diag := NewDiagnostics(nil)
	Parse(Scan(source, diag), diag)
	entries := diag.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one error, got %s", diag)
	}
	frame := FormatCodeFrame(source, entries[0])
	if !strings.Contains(frame, "line 2, column 5") {
		t.Fatalf("unexpected frame %q", frame)
	}
}

func TestFormatCodeFrameAtMultilineString(t *testing.T) {
	source := "print 1 \"a\nbc\";"
	diag := NewDiagnostics(nil)
	Parse(Scan(source, diag), diag)
	entries := diag.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected one error, got %s", diag)
	}
	want := "  --> line 2, column 1\n 2 | bc\";\n   | ^"
	if frame := FormatCodeFrame(source, entries[0]); frame != want {
		t.Fatalf("got\n%s\nwant\n%s", frame, want)
	}
}

// Lexical errors carry no location text, so the separator space after
// "Error" is dropped rather than rendering "Error : msg".
func TestLexicalDiagnosticOmitsEmptyLocation(t *testing.T) {
	d := Diagnostic{Kind: DiagnosticSyntax, Line: 2, Where: "", Message: "Unexpected character."}
	if got := d.String(); got != "[line 2] Error: Unexpected character." {
		t.Fatalf("unexpected rendering %q", got)
	}
	d.Where = "at end"
	if got := d.String(); got != "[line 2] Error at end: Unexpected character." {
		t.Fatalf("unexpected rendering %q", got)
	}
}
