package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeffzh4ng/rlox/lox"
	"github.com/mattn/go-isatty"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle   lipgloss.Style
	resultStyle   lipgloss.Style
	errorStyle    lipgloss.Style
	mutedStyle    lipgloss.Style
	headerStyle   lipgloss.Style
	helpKeyStyle  lipgloss.Style
	helpDescStyle lipgloss.Style
	borderStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

// applyTheme replaces the palette with any colours set in t.
func applyTheme(t themeConfig) {
	if t.Accent != "" {
		accentColor = lipgloss.Color(t.Accent)
	}
	if t.Success != "" {
		successColor = lipgloss.Color(t.Success)
	}
	if t.Error != "" {
		errorColor = lipgloss.Color(t.Error)
	}
	if t.Muted != "" {
		mutedColor = lipgloss.Color(t.Muted)
	}
	buildStyles()
}

func buildStyles() {
	promptStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	resultStyle = lipgloss.NewStyle().
		Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
		Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true).
		Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
		Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatDiagnostic renders d, followed by a code frame for syntax errors when
// the source line is known.
func formatDiagnostic(source string, d lox.Diagnostic, styled bool) string {
	text := d.String()
	frame := ""
	if d.Kind == lox.DiagnosticSyntax {
		frame = lox.FormatCodeFrame(source, d)
	}
	if styled {
		text = errorStyle.Render(text)
		if frame != "" {
			frame = mutedStyle.Render(frame)
		}
	}
	if frame == "" {
		return text
	}
	return text + "\n" + frame
}

func formatDiagnostics(source string, entries []lox.Diagnostic, styled bool) string {
	parts := make([]string, len(entries))
	for i, d := range entries {
		parts[i] = formatDiagnostic(source, d, styled)
	}
	return strings.Join(parts, "\n")
}

// streamReporter records diagnostics and writes each one to w as it arrives.
type streamReporter struct {
	*lox.Diagnostics
	w      io.Writer
	source string
	styled bool
}

func newStreamReporter(w io.Writer, source string, styled bool) *streamReporter {
	return &streamReporter{
		Diagnostics: lox.NewDiagnostics(nil),
		w:           w,
		source:      source,
		styled:      styled,
	}
}

func (r *streamReporter) Error(line, column int, where, message string) {
	r.Diagnostics.Error(line, column, where, message)
	r.flushLast()
}

func (r *streamReporter) RuntimeError(err *lox.RuntimeError) {
	r.Diagnostics.RuntimeError(err)
	r.flushLast()
}

func (r *streamReporter) flushLast() {
	entries := r.Entries()
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(r.w, formatDiagnostic(r.source, entries[len(entries)-1], r.styled))
}
