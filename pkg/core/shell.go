package core

import "time"

// Shell collects the deferred effects of a dispatch call: messages published
// by widgets, invalidation signals, and redraw requests. Every effect is
// recorded synchronously during the call; the host inspects the shell when
// the call returns.
//
// A dispatch path that needs to observe its descendants' effects before the
// caller does (for example, to react to a layout invalidation) runs the inner
// call against a local shell and merges it into the caller's shell
// afterwards. Merge preserves message emission order.
type Shell struct {
	messages       *[]any
	layoutInvalid  bool
	widgetsInvalid bool
	redrawAt       *time.Time
}

// NewShell creates a shell appending messages to the given slice.
func NewShell(messages *[]any) *Shell {
	return &Shell{messages: messages}
}

// Publish emits a message to the host.
func (s *Shell) Publish(message any) {
	*s.messages = append(*s.messages, message)
}

// InvalidateLayout records that some widget's geometry requirements changed
// and cached layouts along the dispatch path must be recomputed.
func (s *Shell) InvalidateLayout() {
	s.layoutInvalid = true
}

// IsLayoutInvalid reports whether a layout invalidation was recorded.
func (s *Shell) IsLayoutInvalid() bool {
	return s.layoutInvalid
}

// InvalidateWidgets records that the widget tree itself must be rebuilt.
func (s *Shell) InvalidateWidgets() {
	s.widgetsInvalid = true
}

// AreWidgetsInvalid reports whether a widget invalidation was recorded.
func (s *Shell) AreWidgetsInvalid() bool {
	return s.widgetsInvalid
}

// RequestRedraw asks the host to draw another frame at the given time.
// The earliest requested time wins.
func (s *Shell) RequestRedraw(at time.Time) {
	if s.redrawAt == nil || at.Before(*s.redrawAt) {
		s.redrawAt = &at
	}
}

// RedrawRequest returns the earliest requested redraw time, if any.
func (s *Shell) RedrawRequest() (time.Time, bool) {
	if s.redrawAt == nil {
		return time.Time{}, false
	}
	return *s.redrawAt, true
}

// Merge folds a local shell into this one: messages are appended in their
// original emission order after passing through f, and invalidation flags
// and redraw requests are combined. f may be nil to forward messages as-is.
func (s *Shell) Merge(local *Shell, f func(any) any) {
	for _, message := range *local.messages {
		if f != nil {
			message = f(message)
		}
		s.Publish(message)
	}
	s.layoutInvalid = s.layoutInvalid || local.layoutInvalid
	s.widgetsInvalid = s.widgetsInvalid || local.widgetsInvalid
	if local.redrawAt != nil {
		s.RequestRedraw(*local.redrawAt)
	}
}
