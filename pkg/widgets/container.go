package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// Container pads a single child and optionally paints a background behind
// it. Every capability is forwarded to the child, including overlay
// production, so containers are transparent to state, events, and popups.
type Container struct {
	core.Base
	Padding    float64
	Background *renderer.Color
	Child      core.Widget
}

// Children returns the single child.
func (c Container) Children() []core.Widget {
	return []core.Widget{c.Child}
}

// SizeHint forwards the child's preference.
func (c Container) SizeHint() (core.Length, core.Length) {
	return c.Child.SizeHint()
}

// Layout lays out the child inside the padded limits and wraps it.
func (c Container) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	pad := geometry.Size{Width: c.Padding * 2, Height: c.Padding * 2}
	child := c.Child.Layout(tree.Children[0], r, limits.Shrink(pad).LoosenMin())
	child = child.MoveTo(geometry.Offset{X: c.Padding, Y: c.Padding})

	size := limits.Resolve(geometry.Size{
		Width:  child.Size().Width + pad.Width,
		Height: child.Size().Height + pad.Height,
	})
	return layout.NewNodeWithChildren(size, child)
}

// Draw paints the background, then the child.
func (c Container) Draw(tree *core.Tree, r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect) {
	if c.Background != nil {
		r.FillQuad(renderer.Quad{Bounds: lay.Bounds()}, *c.Background)
	}
	c.Child.Draw(tree.Children[0], r, style, lay.Children()[0], cursor, viewport)
}

// OnEvent forwards the event to the child.
func (c Container) OnEvent(tree *core.Tree, ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell, viewport geometry.Rect) event.Status {
	return c.Child.OnEvent(tree.Children[0], ev, lay.Children()[0], cursor, r, clipboard, shell, viewport)
}

// Operate visits the container, recursing into the child.
func (c Container) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	op.Container(c.ID(), lay.Bounds(), func(op core.Operation) {
		c.Child.Operate(tree.Children[0], lay.Children()[0], r, op)
	})
}

// MouseInteraction forwards the query to the child.
func (c Container) MouseInteraction(tree *core.Tree, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction {
	return c.Child.MouseInteraction(tree.Children[0], lay.Children()[0], cursor, viewport, r)
}

// Overlay forwards overlay production to the child.
func (c Container) Overlay(tree *core.Tree, lay layout.Layout, r renderer.Renderer, translation geometry.Offset) *core.OverlayElement {
	return c.Child.Overlay(tree.Children[0], lay.Children()[0], r, translation)
}

// DragDestinations forwards the query to the child.
func (c Container) DragDestinations(tree *core.Tree, lay layout.Layout, r renderer.Renderer, dests *core.DragDestinations) {
	c.Child.DragDestinations(tree.Children[0], lay.Children()[0], r, dests)
}
