package lox

import (
	"fmt"
	"io"
	"strings"
)

// RuntimeError is raised while evaluating a statement. It aborts the current
// top-level statement only.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(tok Token, msg string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: msg}
}

// Reporter receives the problems found while scanning, parsing and
// evaluating. None of them stop the caller; deciding what to do about them is
// up to the driver.
type Reporter interface {
	// Error reports a lexical or syntax error. where is empty for lexical
	// errors and "at end" or "at 'lexeme'" for syntax errors.
	Error(line, column int, where, message string)
	RuntimeError(err *RuntimeError)
}

type DiagnosticKind int

const (
	DiagnosticSyntax DiagnosticKind = iota
	DiagnosticRuntime
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Kind    DiagnosticKind
	Line    int
	Column  int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Kind == DiagnosticRuntime {
		return fmt.Sprintf("%s\n[line %d]", d.Message, d.Line)
	}
	if d.Where == "" {
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[line %d] Error %s: %s", d.Line, d.Where, d.Message)
}

// Diagnostics is the default Reporter. It writes each diagnostic on its own
// line to w (when w is non-nil) and remembers what it has seen so a driver can
// pick an exit code.
type Diagnostics struct {
	w       io.Writer
	entries []Diagnostic

	hadError        bool
	hadRuntimeError bool
}

func NewDiagnostics(w io.Writer) *Diagnostics {
	return &Diagnostics{w: w}
}

func (d *Diagnostics) Error(line, column int, where, message string) {
	d.hadError = true
	d.add(Diagnostic{Kind: DiagnosticSyntax, Line: line, Column: column, Where: where, Message: message})
}

func (d *Diagnostics) RuntimeError(err *RuntimeError) {
	d.hadRuntimeError = true
	d.add(Diagnostic{
		Kind:    DiagnosticRuntime,
		Line:    err.Token.Line,
		Column:  err.Token.Column,
		Message: err.Message,
	})
}

func (d *Diagnostics) add(diag Diagnostic) {
	d.entries = append(d.entries, diag)
	if d.w != nil {
		fmt.Fprintln(d.w, diag.String())
	}
}

// HadError reports whether a lexical or syntax error was seen since the last
// Reset.
func (d *Diagnostics) HadError() bool { return d.hadError }

// HadRuntimeError reports whether a runtime error was seen since the last
// Reset.
func (d *Diagnostics) HadRuntimeError() bool { return d.hadRuntimeError }

func (d *Diagnostics) Entries() []Diagnostic {
	return append([]Diagnostic(nil), d.entries...)
}

// Reset clears recorded state. A REPL calls it between lines so one mistake
// does not poison the session.
func (d *Diagnostics) Reset() {
	d.entries = nil
	d.hadError = false
	d.hadRuntimeError = false
}

func (d *Diagnostics) String() string {
	lines := make([]string, len(d.entries))
	for i, entry := range d.entries {
		lines[i] = entry.String()
	}
	return strings.Join(lines, "\n")
}

// errorCounter forwards to another Reporter while counting syntax errors.
type errorCounter struct {
	Reporter
	errors int
}

func (c *errorCounter) Error(line, column int, where, message string) {
	c.errors++
	c.Reporter.Error(line, column, where, message)
}
