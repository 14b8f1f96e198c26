package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const continuationPrompt = "... "

// lineREPL is the REPL used when no full-screen terminal is available.
type lineREPL struct {
	session *session
	stdout  io.Writer
	stderr  io.Writer
	styled  bool
}

func newLineREPL(stdout, stderr io.Writer, styled bool) *lineREPL {
	return &lineREPL{
		session: newSession(),
		stdout:  stdout,
		stderr:  stderr,
		styled:  styled,
	}
}

// handle runs one complete input and reports whether the session should end.
func (r *lineREPL) handle(code string) bool {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, ":") {
		switch strings.ToLower(strings.Fields(trimmed)[0]) {
		case ":quit", ":q":
			return true
		case ":reset", ":r":
			r.session.reset()
			fmt.Fprintln(r.stdout, "Environment reset")
		case ":vars", ":v":
			for _, v := range r.session.variables() {
				fmt.Fprintf(r.stdout, "%s = %s\n", v.name, v.value)
			}
		default:
			fmt.Fprintln(r.stderr, "unknown command. Type :quit to exit.")
		}
		return false
	}

	res := r.session.eval(code)
	if res.printed != "" {
		fmt.Fprintln(r.stdout, res.printed)
	}
	if res.failed() {
		fmt.Fprintln(r.stderr, formatDiagnostics(res.source, res.diagnostics, r.styled))
		return false
	}
	if res.hasValue {
		value := res.value
		if r.styled {
			value = resultStyle.Render(value)
		}
		fmt.Fprintln(r.stdout, value)
	}
	return false
}

func runLineREPL(cfg replConfig) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	historyPath := cfg.historyPath()
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() { _ = saveHistory(ln, historyPath, cfg.HistoryLimit) }()
	}

	repl := newLineREPL(os.Stdout, os.Stderr, isTerminal(os.Stderr))
	ln.SetCompleter(func(line string) []string {
		return completeLine(repl.session, line)
	})

	for {
		code, ok, err := readStatement(ln, cfg.Prompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(os.Stdout)
			return nil
		}
		if repl.handle(code) {
			return nil
		}
		if strings.TrimSpace(code) != "" {
			ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		}
	}
}

// readStatement keeps prompting while the input is still open.
func readStatement(ln *liner.State, prompt string) (string, bool, error) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = continuationPrompt
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("read input: %w", err)
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if !needsMoreInput(b.String()) {
			return b.String(), true, nil
		}
	}
}

// saveHistory writes the newest limit entries of the liner history to path.
// A zero limit keeps everything.
func saveHistory(ln *liner.State, path string, limit int) error {
	var buf bytes.Buffer
	if _, err := ln.WriteHistory(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(trimHistory(buf.String(), limit)), 0o600)
}

func trimHistory(history string, limit int) string {
	lines := strings.Split(strings.TrimSuffix(history, "\n"), "\n")
	if history == "" {
		return ""
	}
	if limit > 0 && len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return strings.Join(lines, "\n") + "\n"
}

func completeLine(s *session, line string) []string {
	start := strings.LastIndexAny(line, " \t(){};=!<>+-*/,") + 1
	word := line[start:]
	if word == "" {
		return nil
	}
	matches := s.completions(word)
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = line[:start] + m
	}
	return out
}
