// Package ui contains the Bubble Tea program behind a picker session.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry: key presses mutate the prompt or the
//     selection (navigation.go, input.go), mouse events scroll or click-select,
//     window sizes resize the scroll window, and a self-rescheduling heartbeat
//     tick keeps frames repainting while the session waits for input.
//   - Model.View repaints the full frame each tick: it rebuilds the filtered
//     display list from the candidates and the prompt (internal/match), then
//     draws the prompt row and the visible window (view.go).
//   - Enter records the highlighted display string and quits; escape quits
//     without recording one. The public package resolves the recorded string
//     back to the originating candidate.
//
// Selection, scroll, and prompt state live in internal/ui/state so they can be
// tested without the event loop.
package ui
