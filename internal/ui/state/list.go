// Package state tracks the picker's selection cursor, scroll window, and
// prompt buffer between render ticks.
package state

import "github.com/galib45/fuzzypicker/internal/match"

// scrollStep is how many rows one wheel notch shifts the window.
const scrollStep = 2

// List holds the filtered display list together with the selection cursor and
// the scroll window over it. Visible is rebuilt from scratch on every render
// tick; Cursor, Start, and End survive across ticks.
type List struct {
	Visible []match.Result
	Cursor  int
	Start   int
	End     int
}

// SetVisible installs the freshly ranked display list and clamps the cursor
// back into range when the list shrank underneath it.
func (l *List) SetVisible(results []match.Result) {
	l.Visible = results
	if len(results) == 0 {
		l.Cursor = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(results) {
		l.Cursor = len(results) - 1
	}
}

// Advance moves the cursor by delta positions with wraparound. A delta of -1
// from the first entry lands on the last. No-op when the list is empty; the
// wraparound modulo must never run against a zero length.
func (l *List) Advance(delta int) bool {
	n := len(l.Visible)
	if n == 0 {
		return false
	}
	l.Cursor = ((l.Cursor+delta)%n + n) % n
	return true
}

// ResetScroll returns the scroll window and cursor to the top of the list,
// keeping the window size intact. Called on every prompt mutation: a changed
// query invalidates whatever the previous visual position meant.
func (l *List) ResetScroll() {
	l.End -= l.Start
	l.Start = 0
	l.Cursor = 0
}

// ScrollUp shifts the window up by one step and relocates the cursor to the
// new window start. No-op when the window is already at the top.
func (l *List) ScrollUp() bool {
	if l.Start <= 0 {
		l.Start = 0
		return false
	}
	step := scrollStep
	if step > l.Start {
		step = l.Start
	}
	l.Start -= step
	l.End -= step
	if l.End < l.Start {
		l.End = l.Start
	}
	l.Cursor = l.Start
	return true
}

// ScrollDown shifts the window down by one step and relocates the cursor to
// the new window start. No-op once either bound has reached the end of the
// filtered list; Start never moves past the list length.
func (l *List) ScrollDown() bool {
	n := len(l.Visible)
	if l.Start >= n || l.End >= n {
		return false
	}
	l.Start += scrollStep
	l.End += scrollStep
	if l.Start > n {
		l.End -= l.Start - n
		l.Start = n
	}
	l.Cursor = l.Start
	if l.Cursor >= n && n > 0 {
		l.Cursor = n - 1
	}
	return true
}

// Resize recomputes the window end for a new terminal height, keeping the
// start anchored. One row is reserved for the prompt.
func (l *List) Resize(rows int) {
	if rows < 1 {
		l.End = l.Start
		return
	}
	l.End = l.Start + rows - 1
}

// ClickRow maps a clicked terminal row to a cursor position. Row 0 is the
// prompt; row r selects the (r-1)th rendered item. Clicks below the rendered
// items are ignored.
func (l *List) ClickRow(row int) bool {
	if row < 1 {
		return false
	}
	idx := l.Start + row - 1
	if idx >= l.WindowEnd() {
		return false
	}
	l.Cursor = idx
	return true
}

// WindowEnd returns the exclusive end of the rendered range, bounded by both
// the window and the filtered list length.
func (l *List) WindowEnd() int {
	end := l.End
	if end > len(l.Visible) {
		end = len(l.Visible)
	}
	return end
}

// Window returns the slice of the filtered list currently on screen.
func (l *List) Window() []match.Result {
	start := l.Start
	end := l.WindowEnd()
	if start < 0 {
		start = 0
	}
	if start >= end {
		return nil
	}
	return l.Visible[start:end]
}

// Selected returns the entry under the cursor, if any.
func (l *List) Selected() (match.Result, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Visible) {
		return match.Result{}, false
	}
	return l.Visible[l.Cursor], true
}
