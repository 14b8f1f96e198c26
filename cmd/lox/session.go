package main

import (
	"bytes"
	"strings"

	"github.com/jeffzh4ng/rlox/lox"
)

// session evaluates REPL input against one interpreter whose global scope
// outlives every line.
type session struct {
	interp *lox.Interpreter
	out    bytes.Buffer
	diag   *lox.Diagnostics
}

type evalResult struct {
	source      string
	printed     string
	value       string
	hasValue    bool
	diagnostics []lox.Diagnostic
}

func newSession() *session {
	s := &session{diag: lox.NewDiagnostics(nil)}
	s.reset()
	return s
}

// reset drops every global binding.
func (s *session) reset() {
	s.interp = lox.NewInterpreter(lox.Config{Stdout: &s.out, Reporter: s.diag})
}

func (s *session) eval(input string) evalResult {
	source := completeStatement(input)
	s.out.Reset()
	s.diag.Reset()

	val, ok := s.interp.Eval(source)
	res := evalResult{
		source:      source,
		printed:     strings.TrimSuffix(s.out.String(), "\n"),
		diagnostics: s.diag.Entries(),
	}
	if ok && len(res.diagnostics) == 0 {
		res.value = val.String()
		res.hasValue = true
	}
	return res
}

func (r evalResult) failed() bool { return len(r.diagnostics) > 0 }

// text joins printed output, the result value and any diagnostics.
func (r evalResult) text(styled bool) string {
	var parts []string
	if r.printed != "" {
		parts = append(parts, r.printed)
	}
	if r.hasValue {
		parts = append(parts, r.value)
	}
	if r.failed() {
		parts = append(parts, formatDiagnostics(r.source, r.diagnostics, styled))
	}
	return strings.Join(parts, "\n")
}

type variable struct {
	name  string
	value string
}

func (s *session) variables() []variable {
	globals := s.interp.Globals()
	names := globals.Names()
	vars := make([]variable, 0, len(names))
	for _, name := range names {
		val, _ := globals.Lookup(name)
		vars = append(vars, variable{name: name, value: val.String()})
	}
	return vars
}

// completions lists keywords and globals starting with prefix.
func (s *session) completions(prefix string) []string {
	var out []string
	for _, kw := range lox.Keywords() {
		if strings.HasPrefix(kw, prefix) {
			out = append(out, kw)
		}
	}
	for _, name := range s.interp.Globals().Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

// completeStatement lets a REPL line omit its final semicolon. The decision
// is made on tokens so a trailing comment neither hides nor swallows the ';'.
func completeStatement(input string) string {
	tokens := lox.Scan(input, nil)
	if len(tokens) < 2 {
		return input
	}
	switch tokens[len(tokens)-2].Type {
	case lox.TokenSemicolon, lox.TokenRightBrace:
		return input
	}
	return input + "\n;"
}

// needsMoreInput reports whether src stops inside a string, a block or a
// parenthesized expression.
func needsMoreInput(src string) bool {
	diag := lox.NewDiagnostics(nil)
	tokens := lox.Scan(src, diag)
	for _, d := range diag.Entries() {
		if d.Message == "Unterminated string." {
			return true
		}
	}
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case lox.TokenLeftBrace, lox.TokenLeftParen:
			depth++
		case lox.TokenRightBrace, lox.TokenRightParen:
			depth--
		}
	}
	return depth > 0
}
