package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAppendToPromptViaKeyMsg(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ja")})
	if m.prompt.String() != "ja" {
		t.Fatalf("expected prompt %q, got %q", "ja", m.prompt.String())
	}
	h.Send(tea.KeyMsg{Type: tea.KeySpace})
	if m.prompt.String() != "ja " {
		t.Fatalf("expected space appended, got %q", m.prompt.String())
	}
}

func TestAltRunesAreIgnored(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if m.prompt.Len() != 0 {
		t.Fatalf("expected alt-modified runes to be ignored, got %q", m.prompt.String())
	}
}

func TestControlRunesNeverReachThePrompt(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	if m.appendToPrompt([]rune{'\x07'}) {
		t.Fatalf("expected control rune to be rejected")
	}
	if m.prompt.Len() != 0 {
		t.Fatalf("expected prompt unchanged, got %q", m.prompt.String())
	}
}

func TestBackspaceOnEmptyPromptIsHarmless(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	h := NewHarness(m)
	h.Send(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.prompt.Len() != 0 {
		t.Fatalf("expected prompt still empty, got %q", m.prompt.String())
	}
	if h.Quit() {
		t.Fatalf("expected the loop to keep running")
	}
}

func TestPromptLinePlaceholder(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	line := m.promptLine()
	if line == "" {
		t.Fatalf("expected non-empty prompt line")
	}
	if !strings.Contains(line, "type to search") {
		t.Fatalf("expected placeholder in prompt line, got %q", line)
	}
}

func TestPromptLineShowsQuery(t *testing.T) {
	m := NewModel(languages, nil, 80, 24)
	m.appendToPrompt([]rune("jav"))
	line := m.promptLine()
	if !strings.Contains(line, "> ") {
		t.Fatalf("expected prompt prefix, got %q", line)
	}
	if !strings.Contains(line, "jav") {
		t.Fatalf("expected query text in prompt line, got %q", line)
	}
}
