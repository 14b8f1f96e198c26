package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	prompt      string
	session     *session
	pending     []string
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	showVars    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlV key.Binding
	CtrlK key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous command"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next command"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlV: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "toggle vars"),
	),
	CtrlK: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel(cfg replConfig) replModel {
	ti := textinput.New()
	ti.Placeholder = "print 1 + 2"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "lox" + cfg.Prompt

	return replModel{
		textInput:  ti,
		prompt:     ti.Prompt,
		session:    newSession(),
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC) && len(m.pending) > 0:
			m = m.clearPending()
			m.textInput.SetValue("")
			return m, nil

		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlV):
			m.showVars = !m.showVars
			return m, nil

		case key.Matches(msg, keys.CtrlK):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if len(m.pending) == 0 && strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			source := strings.Join(append(append([]string(nil), m.pending...), input), "\n")
			if needsMoreInput(source) {
				m.pending = append(m.pending, input)
				m.textInput.SetValue("")
				m.textInput.Prompt = strings.Repeat(" ", max(len(m.prompt)-4, 0)) + continuationPrompt
				return m, nil
			}
			m = m.clearPending()
			input = source

			output, isErr := m.evaluate(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, strings.ReplaceAll(input, "\n", " "))
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// clearPending drops a partially entered multi-line statement.
func (m replModel) clearPending() replModel {
	m.pending = nil
	m.textInput.Prompt = m.prompt
	return m
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":vars", ":v":
		m.showVars = !m.showVars
	case ":reset", ":r":
		m.session.reset()
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Environment reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" || strings.HasSuffix(input, " ") {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 {
		return m
	}
	lastWord := words[len(words)-1]

	completions := m.session.completions(lastWord)
	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + strings.Join(completions, ", "),
		})
	}

	return m
}

func (m replModel) evaluate(input string) (string, bool) {
	res := m.session.eval(input)
	out := res.text(false)
	if out == "" {
		out = "nil"
	}
	return out, res.failed()
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Lox REPL")
	globals := mutedStyle.Render(fmt.Sprintf("%d globals", len(m.session.variables())))
	b.WriteString(header + " " + globals + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", max(min(m.width-2, 60), 0))) + "\n\n")

	vars := m.session.variables()
	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	if m.showVars {
		reservedLines += len(vars) + 3
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = min(len(m.history)-availableHeight, len(m.history))
	}

	for i := historyStart; i < len(m.history); i++ {
		b.WriteString(renderEntry(m.history[i]))
		b.WriteString("\n")
	}

	if m.showVars {
		b.WriteString(renderVarsPanel(vars))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+v") + helpDescStyle.Render(" vars  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

// renderEntry shows a submitted statement and its result. Continuation lines
// of the input and of the output are indented under the first, and the code
// frame of a syntax error is muted.
func renderEntry(entry historyEntry) string {
	var b strings.Builder
	for i, line := range strings.Split(entry.input, "\n") {
		if entry.input == "" {
			break
		}
		marker := "  › "
		if i > 0 {
			marker = "  · "
		}
		b.WriteString(mutedStyle.Render(marker) + line + "\n")
	}

	style, marker := resultStyle, "→ "
	if entry.isErr {
		style, marker = errorStyle, "✗ "
	}
	for i, line := range strings.Split(entry.output, "\n") {
		switch {
		case i == 0:
			b.WriteString("  " + style.Render(marker+line) + "\n")
		case isFrameLine(line):
			b.WriteString("    " + mutedStyle.Render(line) + "\n")
		default:
			b.WriteString("    " + style.Render(line) + "\n")
		}
	}
	return b.String()
}

func isFrameLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "-->") || strings.Contains(line, " | ") || strings.HasSuffix(trimmed, "|")
}

func renderVarsPanel(vars []variable) string {
	if len(vars) == 0 {
		return borderStyle.Render(mutedStyle.Render("No variables defined"))
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Variables"))
	varNameStyle := lipgloss.NewStyle().Foreground(highlightColor)
	for _, v := range vars {
		lines = append(lines, fmt.Sprintf("  %s = %s", varNameStyle.Render(v.name), v.value))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"↑/↓", "Navigate command history"},
		{"Tab", "Complete keywords and globals"},
		{"Enter", "Run; an open { ( or \" continues"},
		{"ctrl+c", "Drop a half-entered statement"},
		{";", "Optional after the last statement"},
		{":help", "Toggle this help"},
		{":vars", "Toggle variables panel"},
		{":clear", "Clear history"},
		{":reset", "Reset environment"},
		{":quit", "Exit REPL"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-8s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runTUI(cfg replConfig) error {
	p := tea.NewProgram(newREPLModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
