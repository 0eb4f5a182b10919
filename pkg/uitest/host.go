package uitest

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// DefaultHostSize is the surface size hosts start with.
var DefaultHostSize = geometry.Size{Width: 800, Height: 600}

// Host drives a root widget the way a real shell would: it owns the state
// tree, negotiates layout for the current surface size, dispatches events
// with a fresh shell per call, and performs the per-frame overlay pass,
// releasing the overlay at the end of it.
type Host struct {
	root      core.Widget
	tree      *core.Tree
	renderer  *Renderer
	clipboard core.Clipboard
	style     renderer.Style
	size      geometry.Size
	cursor    mouse.Cursor
	node      *layout.Node
}

// NewHost mounts the root widget at the default surface size.
func NewHost(root core.Widget) *Host {
	return &Host{
		root:      root,
		tree:      core.NewTree(root),
		renderer:  NewRenderer(),
		clipboard: core.NullClipboard{},
		size:      DefaultHostSize,
		cursor:    mouse.UnavailableCursor(),
	}
}

// Renderer returns the recording renderer.
func (h *Host) Renderer() *Renderer {
	return h.renderer
}

// Tree returns the root state tree.
func (h *Host) Tree() *core.Tree {
	return h.tree
}

// Resize changes the surface size for subsequent calls.
func (h *Host) Resize(size geometry.Size) {
	h.size = size
}

func (h *Host) viewport() geometry.Rect {
	return geometry.RectFromOffsetSize(geometry.Offset{}, h.size)
}

// layoutRoot negotiates the root layout for the current surface size and
// returns the view dispatch calls use.
func (h *Host) layoutRoot() layout.Layout {
	node := h.root.Layout(h.tree, h.renderer, layout.NewLimits(geometry.Size{}, h.size))
	h.node = &node
	return layout.NewLayout(h.node)
}

// Dispatch sends an event to the root widget and returns the messages it
// published. Pointer movement updates the host cursor first.
func (h *Host) Dispatch(ev event.Event) []any {
	if moved, ok := ev.(event.PointerMoved); ok {
		h.cursor = mouse.CursorAt(moved.Position)
	}

	messages := []any{}
	shell := core.NewShell(&messages)
	h.root.OnEvent(h.tree, ev, h.layoutRoot(), h.cursor, h.renderer, h.clipboard, shell, h.viewport())
	return messages
}

// Draw records one frame: the root widget, then the overlay pass on top.
func (h *Host) Draw() []Op {
	h.renderer.Reset()
	h.root.Draw(h.tree, h.renderer, h.style, h.layoutRoot(), h.cursor, h.viewport())
	h.PumpOverlay(func(ov core.Overlay, lay layout.Layout) {
		ov.Draw(h.renderer, h.style, lay, h.cursor)
	})
	return h.renderer.Ops()
}

// PumpOverlay performs the per-frame overlay query. When the root produces
// an overlay, it is laid out against the surface, handed to f, and released
// when f returns, ending the frame's overlay pass. Reports whether an
// overlay was present.
func (h *Host) PumpOverlay(f func(ov core.Overlay, lay layout.Layout)) bool {
	element := h.root.Overlay(h.tree, h.layoutRoot(), h.renderer, geometry.Offset{})
	if element == nil {
		return false
	}
	defer releaseOverlay(element.Overlay())

	node := element.Overlay().Layout(h.renderer, h.size)
	lay := layout.WithOffset(element.Position(), &node)
	if f != nil {
		f(element.Overlay(), lay)
	}
	return true
}

// DispatchToOverlay sends an event through the overlay pass. Reports the
// published messages and whether an overlay was present to receive it.
func (h *Host) DispatchToOverlay(ev event.Event) ([]any, bool) {
	if moved, ok := ev.(event.PointerMoved); ok {
		h.cursor = mouse.CursorAt(moved.Position)
	}

	messages := []any{}
	shell := core.NewShell(&messages)
	present := h.PumpOverlay(func(ov core.Overlay, lay layout.Layout) {
		ov.OnEvent(ev, lay, h.cursor, h.renderer, h.clipboard, shell)
	})
	return messages, present
}

// Operate runs a cross-cutting traversal over the root widget.
func (h *Host) Operate(op core.Operation) {
	h.root.Operate(h.tree, h.layoutRoot(), h.renderer, op)
}

// MouseInteraction queries the pointer shape for the current cursor.
func (h *Host) MouseInteraction() mouse.Interaction {
	return h.root.MouseInteraction(h.tree, h.layoutRoot(), h.cursor, h.viewport(), h.renderer)
}

// releaseOverlay ends a frame-scoped overlay's lifetime, if it has one.
func releaseOverlay(ov core.Overlay) {
	if releaser, ok := ov.(interface{ Release() }); ok {
		releaser.Release()
	}
}
