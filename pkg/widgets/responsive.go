package widgets

import (
	"github.com/go-quill/quill/pkg/cell"
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/overlay"
	"github.com/go-quill/quill/pkg/renderer"
)

// Responsive is a widget that is aware of its dimensions. It always fills
// the space its parent offers, and defers building its actual content until
// that space is known: the view function receives the resolved size and
// returns the subtree for it.
//
// The built subtree and its computed layout are cached between frames. The
// subtree is rebuilt only when the resolved size changes or on first use;
// the layout is additionally recomputed when a descendant invalidates it
// mid-dispatch. Both the cache and the subtree's state tree live behind
// runtime-checked exclusive cells, because the overlay path must hold them
// across several host-driven calls within a frame.
type Responsive struct {
	view    func(geometry.Size) core.Widget
	content *cell.Cell[*responsiveContent]
}

// NewResponsive creates a Responsive widget with the view function that
// produces its content. The cache starts with a zero-size placeholder and no
// layout; the first resolve builds the real content.
func NewResponsive(view func(geometry.Size) core.Widget) *Responsive {
	return &Responsive{
		view: view,
		content: cell.New(&responsiveContent{
			element: Space{Width: core.FixedLength(0), Height: core.FixedLength(0)},
		}),
	}
}

// responsiveState is the runtime state of a Responsive widget: the state
// tree of the built subtree, hidden from the outer tree's reconciliation
// behind its own cell.
type responsiveState struct {
	tree *cell.Cell[*core.Tree]
}

// responsiveContent is the content cache: the last built subtree, the size
// it was built for, and the memoized layout node. The layout, when present,
// was computed against size and is dropped whenever size changes or an
// invalidation signal fires.
type responsiveContent struct {
	size    geometry.Size
	layout  *layout.Node
	element core.Widget
}

// update rebuilds the subtree iff the state tree has never been diffed
// (first use) or the resolved size changed. On rebuild the cached layout is
// dropped and the state tree is reconciled against the new subtree so
// structurally matching descendants keep their state.
func (c *responsiveContent) update(tree *core.Tree, newSize geometry.Size, view func(geometry.Size) core.Widget) {
	if !tree.IsPristine() && c.size == newSize {
		return
	}

	c.element = view(newSize)
	c.size = newSize
	c.layout = nil

	tree.Diff(c.element)
}

// layoutIfNeeded computes and memoizes the subtree layout, bounded below by
// zero and above by the cached size.
func (c *responsiveContent) layoutIfNeeded(tree *core.Tree, r renderer.Renderer) {
	if c.layout != nil {
		return
	}
	node := c.element.Layout(tree, r, layout.NewLimits(geometry.Size{}, c.size))
	c.layout = &node
}

// resolve guarantees a valid subtree and layout for the given bounds, then
// hands f the bridging layout context: the cached node positioned at the
// caller's own offset.
func (c *responsiveContent) resolve(tree *core.Tree, r renderer.Renderer, lay layout.Layout, view func(geometry.Size) core.Widget, f func(tree *core.Tree, contentLayout layout.Layout, element core.Widget)) {
	c.update(tree, lay.Bounds().Size(), view)
	c.layoutIfNeeded(tree, r)
	f(tree, layout.WithOffset(lay.Position(), c.layout), c.element)
}

// withContent borrows the content cache and the subtree state tree for the
// duration of f. Borrowing while an overlay bundle (or another dispatch) is
// live is a fatal programming error and panics.
func (w *Responsive) withContent(tree *core.Tree, holder string, f func(c *responsiveContent, inner *core.Tree)) {
	state := tree.State.(*responsiveState)

	contentRef := w.content.BorrowMut(holder)
	defer contentRef.Release()
	treeRef := state.tree.BorrowMut(holder)
	defer treeRef.Release()

	f(contentRef.Get(), treeRef.Get())
}

// Tag identifies Responsive state across rebuilds.
func (w *Responsive) Tag() core.Tag {
	return core.TagOf[*responsiveState]()
}

// State creates the cell-wrapped, pristine subtree state.
func (w *Responsive) State() any {
	return &responsiveState{tree: cell.New(core.EmptyTree())}
}

// Children reports none: the built subtree is private to the cache and never
// participates in the outer tree's reconciliation.
func (w *Responsive) Children() []core.Widget {
	return nil
}

// SizeHint always fills the available space; content sizing is deferred to
// the resolved bounds.
func (w *Responsive) SizeHint() (core.Length, core.Length) {
	return core.FillLength(), core.FillLength()
}

// Layout claims the maximum of the limits without touching the cache; the
// content is resolved lazily by the first operation that needs it.
func (w *Responsive) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Max())
}

// Draw resolves the cache for the current bounds and forwards.
func (w *Responsive) Draw(tree *core.Tree, r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect) {
	w.withContent(tree, "Responsive.Draw", func(c *responsiveContent, inner *core.Tree) {
		c.resolve(inner, r, lay, w.view, func(inner *core.Tree, contentLayout layout.Layout, element core.Widget) {
			element.Draw(inner, r, style, contentLayout, cursor, viewport)
		})
	})
}

// OnEvent forwards the event through a local shell, so the subtree's
// messages and signals can be inspected before they reach the caller. A
// layout invalidation raised by a descendant drops only the cached layout;
// the subtree itself is kept. Messages are then merged outward in their
// original emission order.
func (w *Responsive) OnEvent(tree *core.Tree, ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell, viewport geometry.Rect) event.Status {
	status := event.Ignored
	w.withContent(tree, "Responsive.OnEvent", func(c *responsiveContent, inner *core.Tree) {
		var localMessages []any
		localShell := core.NewShell(&localMessages)

		c.resolve(inner, r, lay, w.view, func(inner *core.Tree, contentLayout layout.Layout, element core.Widget) {
			status = element.OnEvent(inner, ev, contentLayout, cursor, r, clipboard, localShell, viewport)
		})

		if localShell.IsLayoutInvalid() {
			c.layout = nil
		}

		shell.Merge(localShell, nil)
	})
	return status
}

// Operate resolves the cache and forwards the traversal.
func (w *Responsive) Operate(tree *core.Tree, lay layout.Layout, r renderer.Renderer, op core.Operation) {
	w.withContent(tree, "Responsive.Operate", func(c *responsiveContent, inner *core.Tree) {
		c.resolve(inner, r, lay, w.view, func(inner *core.Tree, contentLayout layout.Layout, element core.Widget) {
			element.Operate(inner, contentLayout, r, op)
		})
	})
}

// MouseInteraction resolves the cache and forwards the query.
func (w *Responsive) MouseInteraction(tree *core.Tree, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction {
	interaction := mouse.InteractionIdle
	w.withContent(tree, "Responsive.MouseInteraction", func(c *responsiveContent, inner *core.Tree) {
		c.resolve(inner, r, lay, w.view, func(inner *core.Tree, contentLayout layout.Layout, element core.Widget) {
			interaction = element.MouseInteraction(inner, contentLayout, cursor, viewport, r)
		})
	})
	return interaction
}

// DragDestinations resolves the cache and forwards the query.
func (w *Responsive) DragDestinations(tree *core.Tree, lay layout.Layout, r renderer.Renderer, dests *core.DragDestinations) {
	w.withContent(tree, "Responsive.DragDestinations", func(c *responsiveContent, inner *core.Tree) {
		c.resolve(inner, r, lay, w.view, func(inner *core.Tree, contentLayout layout.Layout, element core.Widget) {
			element.DragDestinations(inner, contentLayout, r, dests)
		})
	})
}

// ID forwards to the cached subtree.
func (w *Responsive) ID() *core.ID {
	var id *core.ID
	w.content.With("Responsive.ID", func(c *responsiveContent) {
		id = c.element.ID()
	})
	return id
}

// SetID forwards to the cached subtree.
func (w *Responsive) SetID(id core.ID) {
	w.content.With("Responsive.SetID", func(c *responsiveContent) {
		c.element.SetID(id)
	})
}

// Overlay resolves the cache and asks the subtree for its overlay. When one
// exists, the exclusive borrows of the cache and the state tree move into a
// frame-scoped bundle that the host must Release at the end of the frame's
// overlay pass; until then any other access to this widget fails fast. When
// there is no overlay the borrows are released immediately and nil is
// returned.
func (w *Responsive) Overlay(tree *core.Tree, lay layout.Layout, r renderer.Renderer, translation geometry.Offset) *core.OverlayElement {
	state := tree.State.(*responsiveState)

	contentRef := w.content.BorrowMut("Responsive.Overlay")
	treeRef := state.tree.BorrowMut("Responsive.Overlay")

	c := contentRef.Get()
	inner := treeRef.Get()

	c.update(inner, lay.Bounds().Size(), w.view)
	c.layoutIfNeeded(inner, r)

	contentLayout := layout.WithOffset(lay.Position(), c.layout)
	element := c.element.Overlay(inner, contentLayout, r, translation)
	if element == nil {
		treeRef.Release()
		contentRef.Release()
		return nil
	}

	bundle := &responsiveOverlay{
		content: contentRef,
		tree:    treeRef,
		nested:  overlay.NewNested(element),
	}
	return core.NewOverlayElement(geometry.Offset{}, bundle)
}

// responsiveOverlay is the frame-scoped overlay bundle: it owns the live
// borrows of the content cache and its state tree, plus the nested driver
// for the subtree's overlay chain. Every accessor re-derives its target
// through the held borrows, so a released bundle can never reach the cache.
type responsiveOverlay struct {
	content  *cell.Ref[*responsiveContent]
	tree     *cell.Ref[*core.Tree]
	nested   *overlay.Nested
	released bool
}

// withNested asserts the bundle borrows are still live, then runs f against
// the nested overlay driver.
func (o *responsiveOverlay) withNested(f func(*overlay.Nested)) {
	_ = o.content.Get()
	_ = o.tree.Get()
	f(o.nested)
}

// Release drops the bundle's borrows, making the content cache available
// again. Releasing twice is a no-op.
func (o *responsiveOverlay) Release() {
	if o.released {
		return
	}
	o.released = true
	o.tree.Release()
	o.content.Release()
}

// Layout solves the overlay chain's geometry.
func (o *responsiveOverlay) Layout(r renderer.Renderer, bounds geometry.Size) layout.Node {
	var node layout.Node
	o.withNested(func(n *overlay.Nested) {
		node = n.Layout(r, bounds)
	})
	return node
}

// Draw paints the overlay chain.
func (o *responsiveOverlay) Draw(r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor) {
	o.withNested(func(n *overlay.Nested) {
		n.Draw(r, style, lay, cursor)
	})
}

// OnEvent dispatches into the overlay chain. If the chain reports a layout
// invalidation, the cached layout slot reachable through the bundle's
// back-reference is cleared so the next resolve recomputes geometry.
func (o *responsiveOverlay) OnEvent(ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard core.Clipboard, shell *core.Shell) event.Status {
	status := event.Ignored
	o.withNested(func(n *overlay.Nested) {
		status = n.OnEvent(ev, lay, cursor, r, clipboard, shell)
	})

	if shell.IsLayoutInvalid() {
		o.content.Get().layout = nil
	}

	return status
}

// MouseInteraction queries the overlay chain.
func (o *responsiveOverlay) MouseInteraction(lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction {
	interaction := mouse.InteractionIdle
	o.withNested(func(n *overlay.Nested) {
		interaction = n.MouseInteraction(lay, cursor, viewport, r)
	})
	return interaction
}

// IsOver hit-tests the overlay chain.
func (o *responsiveOverlay) IsOver(lay layout.Layout, r renderer.Renderer, position geometry.Offset) bool {
	over := false
	o.withNested(func(n *overlay.Nested) {
		over = n.IsOver(lay, r, position)
	})
	return over
}

// Operate traverses the overlay chain.
func (o *responsiveOverlay) Operate(lay layout.Layout, r renderer.Renderer, op core.Operation) {
	o.withNested(func(n *overlay.Nested) {
		n.Operate(lay, r, op)
	})
}

// Overlay reports no further nesting; the chain below is already driven by
// the nested handle.
func (o *responsiveOverlay) Overlay(layout.Layout, renderer.Renderer) *core.OverlayElement {
	return nil
}
