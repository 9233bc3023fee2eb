package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galib45/fuzzypicker/internal/logging/events"
)

// handleKeyMsg dispatches one key press. Bubble Tea only delivers presses, so
// no release/repeat filtering is needed here.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEnter:
		if selected, ok := m.list.Selected(); ok {
			m.choice = selected.Text
			m.chosen = true
		}
		return tea.Quit
	case tea.KeyUp, tea.KeyLeft:
		m.advance(-1)
	case tea.KeyDown, tea.KeyRight:
		m.advance(1)
	case tea.KeyBackspace:
		m.removePromptRune()
	case tea.KeySpace:
		m.appendToPrompt([]rune{' '})
	case tea.KeyRunes:
		if !keyMsg.Alt {
			m.appendToPrompt(keyMsg.Runes)
		}
	}
	return nil
}

func (m *Model) advance(delta int) {
	if m.list.Advance(delta) {
		events.UI.Cursor(m.list.Cursor)
	}
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case ev.Button == tea.MouseButtonWheelUp:
		if m.list.ScrollUp() {
			events.UI.Scroll(m.list.Start, m.list.Cursor)
		}
	case ev.Button == tea.MouseButtonWheelDown:
		if m.list.ScrollDown() {
			events.UI.Scroll(m.list.Start, m.list.Cursor)
		}
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		if m.list.ClickRow(ev.Y) {
			events.UI.Click(ev.Y, m.list.Cursor)
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = resize.Width
	m.height = resize.Height
	m.list.Resize(resize.Height)
	events.UI.Resize(resize.Width, resize.Height)
	return nil
}
