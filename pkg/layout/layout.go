package layout

import "github.com/go-quill/quill/pkg/geometry"

// Layout is a read-only view of a Node together with the absolute offset
// accumulated from its ancestors. Dispatch paths hand a Layout to a widget so
// it can resolve its own absolute bounds and derive views for its children
// without the node tree storing absolute coordinates.
type Layout struct {
	offset geometry.Offset
	node   *Node
}

// NewLayout creates a view of the node rooted at the origin.
func NewLayout(node *Node) Layout {
	return WithOffset(geometry.Offset{}, node)
}

// WithOffset creates a view of the node translated by the given offset.
// This is the bridging context a cache hands to dispatch: the caller's own
// position plus the cached node.
func WithOffset(offset geometry.Offset, node *Node) Layout {
	return Layout{offset: offset, node: node}
}

// Position returns the absolute position of the node.
func (l Layout) Position() geometry.Offset {
	return l.node.Position().Add(l.offset)
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() geometry.Rect {
	return geometry.RectFromOffsetSize(l.Position(), l.node.Size())
}

// Node returns the underlying node.
func (l Layout) Node() *Node {
	return l.node
}

// Children returns views of the node's children with this node's absolute
// position propagated as their offset.
func (l Layout) Children() []Layout {
	children := l.node.Children()
	views := make([]Layout, len(children))
	position := l.Position()
	for i := range children {
		views[i] = Layout{offset: position, node: &children[i]}
	}
	return views
}
