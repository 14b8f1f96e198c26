package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCodeFrame renders the source line of d with a caret under its column.
// It returns "" when the location is unknown or outside source.
func FormatCodeFrame(source string, d Diagnostic) string {
	if source == "" || d.Line <= 0 {
		return ""
	}

	lines := strings.Split(source, "\n")
	if d.Line > len(lines) {
		return ""
	}

	lineText := strings.TrimRight(lines[d.Line-1], "\r")
	lineRunes := []rune(lineText)

	column := d.Column
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(d.Line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		d.Line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
