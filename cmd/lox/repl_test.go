package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() replModel {
	return newREPLModel(defaultConfig().REPL)
}

func submit(t *testing.T, m replModel, input string) (replModel, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(input)
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return rm, cmd
}

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	rm, cmd := submit(t, newTestModel(), ":quit")

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateNonQuitCommandDoesNotReturnCmd(t *testing.T) {
	rm, cmd := submit(t, newTestModel(), ":help")

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}
}

func TestUpdateUnknownCommandIsAnError(t *testing.T) {
	rm, _ := submit(t, newTestModel(), ":bogus")
	last := rm.history[len(rm.history)-1]
	if !last.isErr || last.output != "Unknown command: :bogus" {
		t.Fatalf("unexpected history entry %#v", last)
	}
}

func TestGlobalsPersistAcrossLines(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "var a = 40;")
	m, _ = submit(t, m, "a = a + 2")
	m, _ = submit(t, m, "print a;")

	if len(m.history) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(m.history))
	}
	if got := m.history[1].output; got != "42" {
		t.Fatalf("expected assignment value 42, got %q", got)
	}
	if got := m.history[2].output; got != "42" {
		t.Fatalf("expected printed 42, got %q", got)
	}
	if len(m.cmdHistory) != 3 {
		t.Fatalf("expected command history to record inputs")
	}
}

func TestEvaluateErrorKeepsSession(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "var x = 1;")
	m, _ = submit(t, m, "print y;")
	last := m.history[len(m.history)-1]
	if !last.isErr || !strings.Contains(last.output, "Undefined variable 'y'.") {
		t.Fatalf("expected undefined variable error, got %#v", last)
	}

	m, _ = submit(t, m, "print ;")
	last = m.history[len(m.history)-1]
	if !last.isErr || !strings.Contains(last.output, "Expect expression.") {
		t.Fatalf("expected syntax error, got %#v", last)
	}

	output, isErr := m.evaluate("x")
	if isErr || output != "1" {
		t.Fatalf("session should survive errors, got %q (err=%v)", output, isErr)
	}
}

func TestResetCommandClearsGlobals(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "var a = 1;")
	m, _ = submit(t, m, ":reset")
	if vars := m.session.variables(); len(vars) != 0 {
		t.Fatalf("expected no variables after reset, got %v", vars)
	}
	output, isErr := m.evaluate("a")
	if !isErr || !strings.Contains(output, "Undefined variable 'a'.") {
		t.Fatalf("expected a to be gone, got %q", output)
	}
}

func TestHistoryNavigation(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "1")
	m, _ = submit(t, m, "2")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(replModel)
	if m.textInput.Value() != "2" {
		t.Fatalf("expected most recent command, got %q", m.textInput.Value())
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = model.(replModel)
	if m.textInput.Value() != "1" {
		t.Fatalf("expected older command, got %q", m.textInput.Value())
	}
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(replModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(replModel)
	if m.textInput.Value() != "" || m.historyIdx != -1 {
		t.Fatalf("expected empty input past newest command, got %q", m.textInput.Value())
	}
}

func TestAutocompleteSingleMatch(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "var counter = 1;")
	m.textInput.SetValue("print cou")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(replModel)
	if m.textInput.Value() != "print counter" {
		t.Fatalf("unexpected completion %q", m.textInput.Value())
	}
}

func TestAutocompleteMultipleMatchesListsThem(t *testing.T) {
	m := newTestModel()
	m.textInput.SetValue("f")

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = model.(replModel)
	last := m.history[len(m.history)-1]
	if last.output != "Completions: false, for, fun" {
		t.Fatalf("unexpected completions %q", last.output)
	}
}

func TestViewRendersHistoryAndVars(t *testing.T) {
	m := newTestModel()
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	m = model.(replModel)
	m, _ = submit(t, m, "var answer = 42;")
	m.showVars = true

	view := m.View()
	if !strings.Contains(view, "Lox REPL") {
		t.Fatalf("missing header in view")
	}
	if !strings.Contains(view, "answer") || !strings.Contains(view, "42") {
		t.Fatalf("vars panel should list answer = 42:\n%s", view)
	}
}

func TestMultiLineBlockWaitsForClosingBrace(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "{ var a = 1;")
	if len(m.history) != 0 || len(m.pending) != 1 {
		t.Fatalf("open block should be held, history=%d pending=%d", len(m.history), len(m.pending))
	}
	if !strings.HasSuffix(m.textInput.Prompt, continuationPrompt) {
		t.Fatalf("expected continuation prompt, got %q", m.textInput.Prompt)
	}

	m, _ = submit(t, m, "print a + 1; }")
	if len(m.pending) != 0 || m.textInput.Prompt != m.prompt {
		t.Fatalf("pending input should be cleared after the block closes")
	}
	last := m.history[len(m.history)-1]
	if last.isErr || last.output != "2" {
		t.Fatalf("unexpected entry %#v", last)
	}
	if last.input != "{ var a = 1;\nprint a + 1; }" {
		t.Fatalf("entry should keep both lines, got %q", last.input)
	}
	if m.cmdHistory[len(m.cmdHistory)-1] != "{ var a = 1; print a + 1; }" {
		t.Fatalf("command history should be a single line, got %q", m.cmdHistory[len(m.cmdHistory)-1])
	}
}

func TestCtrlCDropsPendingInput(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "print (1 +")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = model.(replModel)
	if cmd != nil || m.quitting {
		t.Fatalf("ctrl+c with pending input should not quit")
	}
	if len(m.pending) != 0 || m.textInput.Prompt != m.prompt {
		t.Fatalf("pending input should be dropped")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("second ctrl+c should quit")
	}
}

func TestRenderEntryShowsCodeFrame(t *testing.T) {
	m := newTestModel()
	m, _ = submit(t, m, "print (1;")
	entry := m.history[len(m.history)-1]
	if !entry.isErr {
		t.Fatalf("expected an error entry")
	}
	out := renderEntry(entry)
	for _, want := range []string{"print (1;", "Expect ')' after expression.", "--> line 1, column 9", "^"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered entry missing %q:\n%s", want, out)
		}
	}
}
