package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/galib45/fuzzypicker/internal/match"
	"github.com/galib45/fuzzypicker/internal/theme"
	"github.com/galib45/fuzzypicker/internal/ui/state"
)

var styles = theme.Default()

// heartbeatInterval bounds how long the session waits for input before a
// frame is repainted anyway.
const heartbeatInterval = 500 * time.Millisecond

type msgHandler func(tea.Msg) tea.Cmd

// tickMsg is the heartbeat that keeps frames repainting without input.
type tickMsg time.Time

func heartbeat() tea.Cmd {
	return tea.Tick(heartbeatInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea model for one picker session. It owns the
// candidate display strings (immutable for the session), the prompt, and the
// selection/scroll state, and records the display string confirmed with enter.
type Model struct {
	items  []string
	scorer match.Scorer

	list   state.List
	prompt state.Prompt

	width  int
	height int

	caret cursor.Model

	choice string
	chosen bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises session state for the given display strings. Width and
// height are starting values; the first window-size message overrides them.
func NewModel(items []string, scorer match.Scorer, width, height int) *Model {
	if scorer == nil {
		scorer = match.SkimScorer{}
	}
	m := &Model{
		items:  append([]string(nil), items...),
		scorer: scorer,
		width:  width,
		height: height,
	}
	if height > 0 {
		m.list.Resize(height)
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.PromptText != nil {
		c.TextStyle = styles.PromptText.Copy()
	}
	c.SetChar(" ")
	m.caret = c
	m.refresh()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{heartbeat()}
	if cmd := m.caret.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var caretCmd tea.Cmd
	m.caret, caretCmd = m.caret.Update(msg)
	if caretCmd != nil {
		cmds = append(cmds, caretCmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// handleTickMsg reschedules the heartbeat; the repaint itself happens because
// Bubble Tea calls View after every Update.
func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	return heartbeat()
}

// refresh rebuilds the filtered display list from the candidates and the
// current prompt. It runs on every render tick.
func (m *Model) refresh() {
	m.list.SetVisible(match.Rank(m.items, m.prompt.String(), m.scorer))
}

// Choice returns the display string confirmed with enter, if any.
func (m *Model) Choice() (string, bool) {
	return m.choice, m.chosen
}
