// Package events provides typed tracers so call sites log structured entries
// without repeating field names.
package events

import "github.com/galib45/fuzzypicker/internal/logging"

type SessionTracer struct{}

type FilterTracer struct{}

type UITracer struct{}

var (
	Session = SessionTracer{}
	Filter  = FilterTracer{}
	UI      = UITracer{}
)

func (SessionTracer) Startup(payload map[string]interface{}) {
	logging.Trace("session.startup", payload)
}

func (SessionTracer) Start(items int) {
	logging.Trace("session.start", map[string]interface{}{"items": items})
}

func (SessionTracer) End(choice string, selected bool) {
	logging.Trace("session.end", map[string]interface{}{"choice": choice, "selected": selected})
}

func (SessionTracer) Failure(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.failure", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Append(prompt string) {
	logging.Trace("filter.append", map[string]interface{}{"prompt": prompt})
}

func (FilterTracer) Backspace(prompt string) {
	logging.Trace("filter.backspace", map[string]interface{}{"prompt": prompt})
}

func (UITracer) Cursor(cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"cursor": cursor})
}

func (UITracer) Scroll(start, cursor int) {
	logging.Trace("ui.scroll", map[string]interface{}{"start": start, "cursor": cursor})
}

func (UITracer) Click(row, cursor int) {
	logging.Trace("ui.click", map[string]interface{}{"row": row, "cursor": cursor})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}
