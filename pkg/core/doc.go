// Package core defines the widget capability contract and the runtime state
// that surrounds it.
//
// # Core Types
//
// Widget is an immutable description of part of the UI. A widget implements
// the full capability set (layout, draw, event dispatch, operate traversal,
// pointer interaction, overlay production) and is invoked through that
// interface by its parent; there is no inheritance and no hidden dispatch.
//
// Tree is the runtime state that shadows a widget tree: one node per widget,
// holding whatever per-instance state the widget declared via State(). Trees
// survive rebuilds through Diff, which preserves a node's state only when the
// new widget at the same position has the same structural identity.
//
// Shell is the side-channel of a dispatch call: messages published by
// descendants, layout/widget invalidation flags, and redraw requests are
// collected into it synchronously and merged into the caller's shell when the
// call returns, preserving emission order.
//
// # Embedding Base
//
// Most widgets only care about a few capabilities. Embed Base to pick up
// no-op defaults for everything except Layout and Draw:
//
//	type Badge struct {
//	    core.Base
//	    Label string
//	}
//
//	func (b Badge) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
//	    ...
//	}
package core
