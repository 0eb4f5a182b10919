// Package event defines the input events delivered to widgets and the status
// a dispatch reports back to its caller.
package event

import (
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/mouse"
)

// Event is an input event delivered by the host. Concrete event types are
// plain values; widgets switch on the type they care about.
type Event interface {
	isEvent()
}

// PointerMoved reports a pointer position change.
type PointerMoved struct {
	Position geometry.Offset
}

// PointerPressed reports a pointer button press.
type PointerPressed struct {
	Button mouse.Button
}

// PointerReleased reports a pointer button release.
type PointerReleased struct {
	Button mouse.Button
}

// KeyPressed reports a key press by logical key name.
type KeyPressed struct {
	Key string
}

// WindowResized reports a change of the host surface size.
type WindowResized struct {
	Size geometry.Size
}

func (PointerMoved) isEvent()    {}
func (PointerPressed) isEvent()  {}
func (PointerReleased) isEvent() {}
func (KeyPressed) isEvent()      {}
func (WindowResized) isEvent()   {}

// Status reports whether a dispatched event was consumed.
type Status int

const (
	// Ignored means the event was not handled and may propagate further.
	Ignored Status = iota
	// Captured means the event was consumed by a widget.
	Captured
)

// Merge combines two statuses: the event counts as captured if either side
// captured it.
func (s Status) Merge(other Status) Status {
	if s == Captured || other == Captured {
		return Captured
	}
	return Ignored
}
