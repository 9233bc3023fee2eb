package ui

import (
	"github.com/galib45/fuzzypicker/internal/logging/events"
)

const promptPlaceholder = "(type to search)"

func (m *Model) appendToPrompt(runes []rune) bool {
	if !m.prompt.Append(runes) {
		return false
	}
	m.noteQueryChange()
	events.Filter.Append(m.prompt.String())
	return true
}

func (m *Model) removePromptRune() bool {
	if !m.prompt.Backspace() {
		return false
	}
	m.noteQueryChange()
	events.Filter.Backspace(m.prompt.String())
	return true
}

// noteQueryChange applies the query-change rule: scroll window and cursor
// return to the top, and the display list is rebuilt immediately so any
// navigation later in the same tick sees the new list.
func (m *Model) noteQueryChange() {
	m.list.ResetScroll()
	m.refresh()
}

// promptLine renders the prompt row: the "> " prefix, the query (or a
// placeholder), and the caret just after the last prompt character.
func (m *Model) promptLine() string {
	prefix := "> "
	if styles.Prompt != nil {
		prefix = styles.Prompt.Render(prefix)
	}
	text := m.prompt.String()
	if text == "" {
		if styles.Placeholder != nil {
			m.caret.TextStyle = styles.Placeholder.Copy()
		}
		runes := []rune(promptPlaceholder)
		caret := m.renderCaret(string(runes[0]))
		rest := string(runes[1:])
		if styles.Placeholder != nil {
			rest = styles.Placeholder.Render(rest)
		}
		return prefix + caret + rest
	}
	if styles.PromptText != nil {
		m.caret.TextStyle = styles.PromptText.Copy()
	}
	body := text
	if styles.PromptText != nil {
		body = styles.PromptText.Render(text)
	}
	return prefix + body + m.renderCaret(" ")
}

func (m *Model) renderCaret(char string) string {
	if char == "" {
		char = " "
	}
	m.caret.SetChar(char)

	base := m.caret.TextStyle.Copy().Inline(true)
	if m.caret.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
