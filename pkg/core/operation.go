package core

import "github.com/go-quill/quill/pkg/geometry"

// Operation is a cross-cutting traversal over a widget tree. Widgets that
// contain others call Container with a closure that recurses into their
// children; leaf widgets with addressable state report it through Custom.
type Operation interface {
	// Container visits a widget that holds children. The operate closure
	// recurses the traversal into them.
	Container(id *ID, bounds geometry.Rect, operate func(Operation))

	// Custom visits widget-defined state.
	Custom(state any, id *ID)
}

// Clipboard is the host clipboard handed into event dispatch.
type Clipboard interface {
	Read() string
	Write(contents string)
}

// NullClipboard is a Clipboard that holds nothing. Hosts without clipboard
// access (and tests) use it.
type NullClipboard struct{}

func (NullClipboard) Read() string { return "" }
func (NullClipboard) Write(string) {}

// DragDestinations collects the drop-target rectangles of a widget tree.
type DragDestinations struct {
	rects []geometry.Rect
}

// Push appends a drop-target rectangle.
func (d *DragDestinations) Push(rect geometry.Rect) {
	d.rects = append(d.rects, rect)
}

// Rects returns the collected rectangles in traversal order.
func (d *DragDestinations) Rects() []geometry.Rect {
	return d.rects
}
