package core

import (
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// Overlay is a transient layer drawn above normal content for the remainder
// of a frame: a dropdown menu, a tooltip, a context menu. An overlay is
// produced fresh every frame by a widget's Overlay capability and carries no
// identity across frames; persistent state stays in the widget's Tree node.
type Overlay interface {
	// Layout solves the overlay's geometry against the full surface size.
	Layout(r renderer.Renderer, bounds geometry.Size) layout.Node

	// Draw issues the overlay's drawing primitives.
	Draw(r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor)

	// OnEvent dispatches an input event to the overlay.
	OnEvent(ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard Clipboard, shell *Shell) event.Status

	// MouseInteraction reports the pointer shape for the current cursor.
	MouseInteraction(lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction

	// IsOver reports whether the position hits the overlay.
	IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Offset) bool

	// Operate runs a cross-cutting traversal over the overlay.
	Operate(lay layout.Layout, r renderer.Renderer, op Operation)

	// Overlay returns the overlay's own nested overlay, or nil. Menus that
	// open submenus chain through this.
	Overlay(lay layout.Layout, r renderer.Renderer) *OverlayElement
}

// OverlayElement positions an Overlay on the surface.
type OverlayElement struct {
	position geometry.Offset
	overlay  Overlay
}

// NewOverlayElement wraps an overlay at the given surface position.
func NewOverlayElement(position geometry.Offset, overlay Overlay) *OverlayElement {
	return &OverlayElement{position: position, overlay: overlay}
}

// Position returns the overlay's surface position.
func (e *OverlayElement) Position() geometry.Offset {
	return e.position
}

// Overlay returns the wrapped overlay.
func (e *OverlayElement) Overlay() Overlay {
	return e.overlay
}

// OverlayBase provides default implementations for the optional Overlay
// capabilities. Embed it and implement Layout, Draw, and whatever the
// overlay actually handles.
type OverlayBase struct{}

// OnEvent ignores all events.
func (OverlayBase) OnEvent(event.Event, layout.Layout, mouse.Cursor, renderer.Renderer, Clipboard, *Shell) event.Status {
	return event.Ignored
}

// MouseInteraction reports the idle pointer shape.
func (OverlayBase) MouseInteraction(layout.Layout, mouse.Cursor, geometry.Rect, renderer.Renderer) mouse.Interaction {
	return mouse.InteractionIdle
}

// Operate does nothing.
func (OverlayBase) Operate(layout.Layout, renderer.Renderer, Operation) {}

// Overlay reports no nested overlay.
func (OverlayBase) Overlay(layout.Layout, renderer.Renderer) *OverlayElement {
	return nil
}
