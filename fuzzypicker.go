// Package fuzzypicker provides an embeddable interactive fuzzy picker for
// terminal applications: type to filter a list of candidates, navigate with
// keyboard or mouse, confirm with enter or cancel with escape.
//
// A picker is built from any item type plus a function that renders an item
// as its display string:
//
//	picker := fuzzypicker.NewStrings([]string{"rust", "python", "go"})
//	item, ok, err := picker.Pick()
//
// Pick blocks for the duration of the interactive session. It returns the
// chosen item, whether one was chosen at all, and an error only when the
// terminal backend fails; cancellation is not an error.
package fuzzypicker

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/galib45/fuzzypicker/internal/logging"
	"github.com/galib45/fuzzypicker/internal/logging/events"
	"github.com/galib45/fuzzypicker/internal/match"
	"github.com/galib45/fuzzypicker/internal/ui"
)

// ErrTerminal is the sole error kind Pick returns: the terminal backend
// failed to start, poll, or draw. Test with errors.Is.
var ErrTerminal = errors.New("fuzzypicker: terminal failure")

type options struct {
	scorer match.Scorer
	input  io.Reader
	output io.Writer
	height int
	trace  bool
}

// Option adjusts picker behaviour.
type Option func(*options)

// WithScorer replaces the default fuzzy scorer.
func WithScorer(s match.Scorer) Option {
	return func(o *options) { o.scorer = s }
}

// WithInput sets the reader the interactive session polls for input. Useful
// when stdin carries the candidate data and the session should read from the
// controlling terminal instead.
func WithInput(r io.Reader) Option {
	return func(o *options) { o.input = r }
}

// WithOutput sets the writer the session draws to.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.output = w }
}

// WithHeight fixes the initial list height instead of probing the terminal.
func WithHeight(rows int) Option {
	return func(o *options) { o.height = rows }
}

// WithTrace enables structured trace logging for the session.
func WithTrace(enabled bool) Option {
	return func(o *options) { o.trace = enabled }
}

// Picker holds the candidate list and session options. The zero display
// function renders items with fmt.Sprint. Items are owned by the picker for
// the duration of a session and must not change while Pick runs.
type Picker[T any] struct {
	display func(T) string
	items   []T
	opts    options
}

// New constructs an empty picker for items rendered by display. A nil display
// falls back to fmt.Sprint. Set candidates with SetItems before picking.
func New[T any](display func(T) string, opts ...Option) *Picker[T] {
	if display == nil {
		display = func(v T) string { return fmt.Sprint(v) }
	}
	p := &Picker[T]{display: display}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// NewStrings constructs a picker over plain strings.
func NewStrings(items []string, opts ...Option) *Picker[string] {
	p := New[string](func(s string) string { return s }, opts...)
	p.SetItems(items)
	return p
}

// SetItems replaces the candidate list.
func (p *Picker[T]) SetItems(items []T) {
	p.items = append([]T(nil), items...)
}

// Items returns the current candidate list.
func (p *Picker[T]) Items() []T {
	return append([]T(nil), p.items...)
}

// Reset clears all candidates, returning the picker to its construction
// state.
func (p *Picker[T]) Reset() {
	p.items = nil
}

// Pick runs one interactive session: alternate screen and mouse capture on
// entry, live filtering while the user types, teardown on exit. It returns
// the selected candidate, false when the user cancelled or nothing matched,
// or an ErrTerminal-wrapped error when the terminal backend failed. The
// backend restores the terminal on every exit path, including failures.
func (p *Picker[T]) Pick() (T, bool, error) {
	var zero T
	if p.opts.trace {
		logging.SetTraceEnabled(true)
	}

	displays := make([]string, len(p.items))
	for i, item := range p.items {
		displays[i] = p.display(item)
	}
	width, height := p.initialSize()
	model := ui.NewModel(displays, p.opts.scorer, width, height)

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if p.opts.input != nil {
		progOpts = append(progOpts, tea.WithInput(p.opts.input))
	}
	if p.opts.output != nil {
		progOpts = append(progOpts, tea.WithOutput(p.opts.output))
	}

	events.Session.Start(len(p.items))
	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			events.Session.End("", false)
			return zero, false, nil
		}
		events.Session.Failure(err)
		logging.Error(err)
		return zero, false, fmt.Errorf("%w: %v", ErrTerminal, err)
	}

	finished, ok := final.(*ui.Model)
	if !ok {
		return zero, false, nil
	}
	text, chosen := finished.Choice()
	if !chosen {
		events.Session.End("", false)
		return zero, false, nil
	}
	item, found := resolve(p.items, p.display, text)
	events.Session.End(text, found)
	if !found {
		return zero, false, nil
	}
	return item, true, nil
}

// resolve maps a confirmed display string back to its originating candidate
// by exact text match, taking the first candidate that renders to it.
func resolve[T any](items []T, display func(T) string, text string) (T, bool) {
	for _, item := range items {
		if display(item) == text {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// initialSize probes the output terminal so the first frame has a usable
// window before the first resize message lands.
func (p *Picker[T]) initialSize() (int, int) {
	height := p.opts.height
	width := 0
	fd := int(os.Stdout.Fd())
	if f, ok := p.opts.output.(*os.File); ok {
		fd = int(f.Fd())
	}
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width = w
			if height <= 0 {
				height = h
			}
		}
	}
	return width, height
}
