package layout

import "github.com/go-quill/quill/pkg/geometry"

// Node is the cached result of laying out a widget: its resolved size, its
// offset relative to the parent node, and the nodes of its children.
// Nodes are plain values; a parent takes ownership of its children's nodes
// when it builds its own.
type Node struct {
	size     geometry.Size
	position geometry.Offset
	children []Node
}

// NewNode creates a leaf node with the given size at the origin.
func NewNode(size geometry.Size) Node {
	return Node{size: size}
}

// NewNodeWithChildren creates a node with the given size and child nodes.
func NewNodeWithChildren(size geometry.Size, children ...Node) Node {
	return Node{size: size, children: children}
}

// MoveTo returns the node repositioned at the given parent-relative offset.
func (n Node) MoveTo(position geometry.Offset) Node {
	n.position = position
	return n
}

// Size returns the resolved size of the node.
func (n Node) Size() geometry.Size {
	return n.size
}

// Position returns the parent-relative offset of the node.
func (n Node) Position() geometry.Offset {
	return n.position
}

// Bounds returns the parent-relative bounds of the node.
func (n Node) Bounds() geometry.Rect {
	return geometry.RectFromOffsetSize(n.position, n.size)
}

// Children returns the child nodes.
func (n Node) Children() []Node {
	return n.children
}
