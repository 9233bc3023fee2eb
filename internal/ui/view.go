package ui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model. Every call repaints the whole frame: the display
// list is recomputed from scratch, then the prompt row and the visible window
// are drawn. Paint cost is bounded by terminal height, not candidate count.
func (m *Model) View() string {
	m.refresh()
	lines := make([]string, 0, len(m.list.Window())+2)
	lines = append(lines, m.promptLine())
	if len(m.list.Visible) == 0 && m.prompt.Len() > 0 {
		msg := fmt.Sprintf("No matches for %q", m.prompt.String())
		if styles.NoMatches != nil {
			msg = styles.NoMatches.Render(msg)
		}
		lines = append(lines, "  "+msg)
		return strings.Join(lines, "\n")
	}
	for i, entry := range m.list.Window() {
		lines = append(lines, m.itemLine(entry.Text, m.list.Start+i == m.list.Cursor))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) itemLine(text string, selected bool) string {
	var line string
	if selected {
		indicator := " "
		if styles.SelectedIndicator != nil {
			indicator = styles.SelectedIndicator.Render(indicator)
		}
		body := " " + text
		if styles.SelectedItem != nil {
			body = styles.SelectedItem.Render(body)
		}
		line = indicator + body
	} else {
		body := text
		if styles.Item != nil {
			body = styles.Item.Render(body)
		}
		line = "  " + body
	}
	if m.width > 1 {
		line = truncate.StringWithTail(line, uint(m.width-1), "…")
	}
	return line
}
