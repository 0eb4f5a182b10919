package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

const tooltipPadding = 4

// Tooltip wraps a child and presents a message in an overlay while the
// pointer hovers the child's bounds. The overlay is produced fresh every
// frame; only the hover flag and pointer position persist in the state tree.
type Tooltip struct {
	core.Base
	Child    core.Widget
	Message  string
	TextSize float64
}

type tooltipState struct {
	hovered  bool
	position geometry.Offset
}

func (t Tooltip) Tag() core.Tag {
	return core.TagOf[*tooltipState]()
}

func (t Tooltip) State() any {
	return &tooltipState{}
}

func (t Tooltip) Children() []core.Widget {
	return []core.Widget{t.Child}
}

func (t Tooltip) SizeHint() (core.Length, core.Length) {
	return t.Child.SizeHint()
}

func (t Tooltip) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	child := t.Child.Layout(tree.Children[0], r, limits)
	return layout.NewNodeWithChildren(child.Size(), child)
}

func (t Tooltip) Draw(tree *core.Tree, r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect) {
	t.Child.Draw(tree.Children[0], r, style, lay.Children()[0], cursor, viewport)
}

// OnEvent tracks hover on pointer movement and forwards every event to the
// child. Hover changes request a redraw so the overlay appears promptly.
func (t Tooltip) OnEvent(tree *core.Tree, ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell, viewport geometry.Rect) event.Status {
	state := tree.State.(*tooltipState)
	if moved, ok := ev.(event.PointerMoved); ok {
		hovered := lay.Bounds().Contains(moved.Position)
		if hovered != state.hovered {
			state.hovered = hovered
		}
		state.position = moved.Position
	}
	return t.Child.OnEvent(tree.Children[0], ev, lay.Children()[0], cursor, r, clipboard, shell, viewport)
}

func (t Tooltip) MouseInteraction(tree *core.Tree, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction {
	return t.Child.MouseInteraction(tree.Children[0], lay.Children()[0], cursor, viewport, r)
}

// Overlay returns the tooltip overlay while hovered, positioned just below
// the pointer, or the child's own overlay otherwise.
func (t Tooltip) Overlay(tree *core.Tree, lay layout.Layout, r renderer.Renderer, translation geometry.Offset) *core.OverlayElement {
	state := tree.State.(*tooltipState)
	if !state.hovered {
		return t.Child.Overlay(tree.Children[0], lay.Children()[0], r, translation)
	}
	size := t.TextSize
	if size == 0 {
		size = DefaultTextSize
	}
	position := state.position.Add(translation).Add(geometry.Offset{Y: size})
	return core.NewOverlayElement(position, &tooltipOverlay{
		text: renderer.Text{Content: t.Message, Size: size},
	})
}

// tooltipOverlay draws the message on a plain background quad.
type tooltipOverlay struct {
	core.OverlayBase
	text renderer.Text
}

func (o *tooltipOverlay) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	text := r.MeasureText(o.text)
	return layout.NewNode(geometry.Size{
		Width:  text.Width + tooltipPadding*2,
		Height: text.Height + tooltipPadding*2,
	})
}

func (o *tooltipOverlay) Draw(r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor) {
	r.FillQuad(renderer.Quad{Bounds: lay.Bounds()}, renderer.Color{R: 0.95, G: 0.95, B: 0.85, A: 1})
	r.FillText(o.text, lay.Position().Add(geometry.Offset{X: tooltipPadding, Y: tooltipPadding}), style.TextColor)
}

func (o *tooltipOverlay) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Offset) bool {
	return lay.Bounds().Contains(position)
}
