// Package overlay provides Nested, the driver for a chain of nested
// overlays. A widget's overlay may itself present an overlay (a menu opening
// a submenu); Nested owns the root of that chain and drives every level
// through a single handle.
package overlay

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// Nested drives a chain of overlays rooted at a single overlay element.
//
// Nested stores only the root element. Every call walks the chain afresh by
// asking each level for its nested overlay, so deeper levels are re-derived
// per call instead of being retained between calls. Re-entry is therefore
// safe: a call into a deep overlay never observes a stale sibling reference.
type Nested struct {
	element *core.OverlayElement
}

// NewNested wraps the root overlay element of a chain.
func NewNested(element *core.OverlayElement) *Nested {
	return &Nested{element: element}
}

// Element returns the root overlay element.
func (n *Nested) Element() *core.OverlayElement {
	return n.element
}

// Layout solves geometry for the whole chain. Each chain level contributes a
// wrapper node sized to the full surface whose first child is that level's
// own node and whose second child, when present, wraps the next level.
func (n *Nested) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	var recurse func(element *core.OverlayElement) layout.Node
	recurse = func(element *core.OverlayElement) layout.Node {
		node := element.Overlay().Layout(r, bounds).MoveTo(element.Position())
		if nested := element.Overlay().Overlay(layout.NewLayout(&node), r); nested != nil {
			return layout.NewNodeWithChildren(bounds, node, recurse(nested))
		}
		return layout.NewNodeWithChildren(bounds, node)
	}
	return recurse(n.element)
}

// Draw paints the chain outermost first, so deeper overlays appear on top.
func (n *Nested) Draw(r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor) {
	var recurse func(element *core.OverlayElement, lay layout.Layout)
	recurse = func(element *core.OverlayElement, lay layout.Layout) {
		layouts := lay.Children()
		if len(layouts) == 0 {
			return
		}
		element.Overlay().Draw(r, style, layouts[0], cursor)
		if nested := element.Overlay().Overlay(layouts[0], r); nested != nil && len(layouts) > 1 {
			recurse(nested, layouts[1])
		}
	}
	recurse(n.element, lay)
}

// OnEvent dispatches an event to the chain, innermost level first. The walk
// stops as soon as a level captures the event.
func (n *Nested) OnEvent(ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell) event.Status {
	var recurse func(element *core.OverlayElement, lay layout.Layout) event.Status
	recurse = func(element *core.OverlayElement, lay layout.Layout) event.Status {
		layouts := lay.Children()
		if len(layouts) == 0 {
			return event.Ignored
		}
		if nested := element.Overlay().Overlay(layouts[0], r); nested != nil && len(layouts) > 1 {
			if status := recurse(nested, layouts[1]); status == event.Captured {
				return status
			}
		}
		return element.Overlay().OnEvent(ev, layouts[0], cursor, r, clipboard, shell)
	}
	return recurse(n.element, lay)
}

// MouseInteraction reports the pointer shape of the innermost level the
// cursor is over, falling back to outer levels.
func (n *Nested) MouseInteraction(lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction {
	position, available := cursor.Position()
	var recurse func(element *core.OverlayElement, lay layout.Layout) mouse.Interaction
	recurse = func(element *core.OverlayElement, lay layout.Layout) mouse.Interaction {
		layouts := lay.Children()
		if len(layouts) == 0 {
			return mouse.InteractionIdle
		}
		if nested := element.Overlay().Overlay(layouts[0], r); nested != nil && len(layouts) > 1 {
			if available && overlayIsOver(nested, layouts[1], r, position) {
				return recurse(nested, layouts[1])
			}
		}
		return element.Overlay().MouseInteraction(layouts[0], cursor, viewport, r)
	}
	return recurse(n.element, lay)
}

// IsOver reports whether the position hits any level of the chain.
func (n *Nested) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Offset) bool {
	return overlayIsOver(n.element, lay, r, position)
}

func overlayIsOver(element *core.OverlayElement, lay layout.Layout, r renderer.Renderer, position geometry.Offset) bool {
	layouts := lay.Children()
	if len(layouts) == 0 {
		return false
	}
	if element.Overlay().IsOver(layouts[0], r, position) {
		return true
	}
	if nested := element.Overlay().Overlay(layouts[0], r); nested != nil && len(layouts) > 1 {
		return overlayIsOver(nested, layouts[1], r, position)
	}
	return false
}

// Operate runs a cross-cutting traversal over every level of the chain.
func (n *Nested) Operate(lay layout.Layout, r renderer.Renderer, op core.Operation) {
	var recurse func(element *core.OverlayElement, lay layout.Layout)
	recurse = func(element *core.OverlayElement, lay layout.Layout) {
		layouts := lay.Children()
		if len(layouts) == 0 {
			return
		}
		element.Overlay().Operate(layouts[0], r, op)
		if nested := element.Overlay().Overlay(layouts[0], r); nested != nil && len(layouts) > 1 {
			recurse(nested, layouts[1])
		}
	}
	recurse(n.element, lay)
}
