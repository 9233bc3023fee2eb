package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var languages = []string{"rust", "python", "javascript", "java", "c++", "go", "swift"}

func typeString(h *Harness, s string) {
	for _, r := range s {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestTypeFilterNavigateAndConfirm(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)

	typeString(h, "ja")
	if got := len(m.list.Visible); got != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "ja", got)
	}
	target := -1
	for i, entry := range m.list.Visible {
		if entry.Text == "java" {
			target = i
		}
	}
	if target < 0 {
		t.Fatalf("expected java among matches, got %#v", m.list.Visible)
	}
	for i := 0; i < target; i++ {
		h.Send(tea.KeyMsg{Type: tea.KeyDown})
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.Quit() {
		t.Fatalf("expected enter to terminate the loop")
	}
	choice, ok := m.Choice()
	if !ok || choice != "java" {
		t.Fatalf("expected choice java, got %q/%v", choice, ok)
	}
}

func TestEscapeYieldsNoSelection(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyEsc})
	if !h.Quit() {
		t.Fatalf("expected escape to terminate the loop")
	}
	if _, ok := m.Choice(); ok {
		t.Fatalf("expected no selection after escape")
	}
}

func TestCtrlCBehavesLikeEscape(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !h.Quit() {
		t.Fatalf("expected ctrl+c to terminate the loop")
	}
	if _, ok := m.Choice(); ok {
		t.Fatalf("expected no selection after ctrl+c")
	}
}

func TestEmptyItemListSurvivesInput(t *testing.T) {
	m := NewModel(nil, nil, 80, 24)
	h := NewHarness(m)
	typeString(h, "abc")
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if !h.Quit() {
		t.Fatalf("expected enter to terminate the loop")
	}
	if _, ok := m.Choice(); ok {
		t.Fatalf("expected no selection from an empty list")
	}
}

func TestEnterWithNoMatchesYieldsNoSelection(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	typeString(h, "xyz")
	if got := len(m.list.Visible); got != 0 {
		t.Fatalf("expected no matches, got %d", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.Choice(); ok {
		t.Fatalf("expected no selection when nothing matches")
	}
}

func TestArrowKeysWrapSelection(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyUp})
	if m.list.Cursor != len(languages)-1 {
		t.Fatalf("expected wrap to last entry, got %d", m.list.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyDown})
	if m.list.Cursor != 0 {
		t.Fatalf("expected wrap back to first entry, got %d", m.list.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyRight})
	if m.list.Cursor != 1 {
		t.Fatalf("expected right arrow to advance, got %d", m.list.Cursor)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyLeft})
	if m.list.Cursor != 0 {
		t.Fatalf("expected left arrow to go back, got %d", m.list.Cursor)
	}
}

func TestPromptEditResetsScroll(t *testing.T) {
	m := NewModel([]string{"a", "b", "c", "d", "e", "f", "g", "h"}, nil, 80, 6)
	h := NewHarness(m)
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.list.Start != 2 {
		t.Fatalf("expected window scrolled to 2, got %d", m.list.Start)
	}
	typeString(h, "a")
	if m.list.Start != 0 || m.list.Cursor != 0 {
		t.Fatalf("expected prompt edit to reset scroll, got %d/%d", m.list.Start, m.list.Cursor)
	}

	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.list.Start != 0 || m.list.Cursor != 0 {
		t.Fatalf("expected backspace to reset scroll, got %d/%d", m.list.Start, m.list.Cursor)
	}
}

func TestMouseClickSelectsRow(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.MouseMsg{Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.list.Cursor != 2 {
		t.Fatalf("expected click on row 3 to select index 2, got %d", m.list.Cursor)
	}
	h.Send(tea.MouseMsg{Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.list.Cursor != 2 {
		t.Fatalf("expected click on the prompt row to be ignored, got %d", m.list.Cursor)
	}
	h.Send(tea.MouseMsg{Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.list.Cursor != 2 {
		t.Fatalf("expected click below the items to be ignored, got %d", m.list.Cursor)
	}
}

func TestMouseWheelScrollsWindow(t *testing.T) {
	m := NewModel([]string{"a", "b", "c", "d", "e", "f", "g", "h"}, nil, 80, 6)
	h := NewHarness(m)
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.list.Start != 2 || m.list.Cursor != 2 {
		t.Fatalf("expected window and cursor at 2, got %d/%d", m.list.Start, m.list.Cursor)
	}
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.list.Start != 0 || m.list.Cursor != 0 {
		t.Fatalf("expected window and cursor back at 0, got %d/%d", m.list.Start, m.list.Cursor)
	}
	h.Send(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.list.Start != 0 {
		t.Fatalf("expected scroll up at top to be a no-op, got %d", m.list.Start)
	}
}

func TestWindowSizeUpdatesScrollWindow(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 10})
	if m.width != 40 || m.height != 10 {
		t.Fatalf("expected dimensions 40x10, got %dx%d", m.width, m.height)
	}
	if m.list.End != m.list.Start+9 {
		t.Fatalf("expected end = start + height - 1, got %d/%d", m.list.Start, m.list.End)
	}
}

func TestChoiceResolvesAgainstVisibleList(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	typeString(h, "go")
	h.Send(tea.KeyMsg{Type: tea.KeyEnter})
	choice, ok := m.Choice()
	if !ok || choice != "go" {
		t.Fatalf("expected choice go, got %q/%v", choice, ok)
	}
}
