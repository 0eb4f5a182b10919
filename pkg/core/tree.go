package core

import "reflect"

// Tag is the structural identity of a widget: the concrete type of its
// runtime state. Two widgets can exchange runtime state across a rebuild only
// when their tags match.
type Tag struct {
	t reflect.Type
}

// TagOf returns the tag for a state type.
func TagOf[T any]() Tag {
	return Tag{t: reflect.TypeFor[T]()}
}

// StatelessTag returns the tag shared by all widgets without runtime state.
func StatelessTag() Tag {
	return Tag{}
}

// Tree is the runtime state tree that shadows a widget tree: one node per
// widget, each holding the state blob the widget declared plus the nodes of
// its children. The widget tree is rebuilt freely; the state tree persists
// and is reconciled against each new widget tree via Diff.
type Tree struct {
	tag      Tag
	State    any
	Children []*Tree

	// initialized distinguishes a node that has never been diffed from one
	// that was legitimately diffed into an empty shape. It is an explicit
	// flag rather than an inference from tag and child count, so an empty
	// stateless subtree is never mistaken for first use.
	initialized bool
}

// EmptyTree returns a pristine node: stateless, childless, never diffed.
func EmptyTree() *Tree {
	return &Tree{}
}

// NewTree builds the full state tree for a widget and its descendants.
func NewTree(widget Widget) *Tree {
	children := widget.Children()
	tree := &Tree{
		tag:         widget.Tag(),
		State:       widget.State(),
		initialized: true,
	}
	if len(children) > 0 {
		tree.Children = make([]*Tree, len(children))
		for i, child := range children {
			tree.Children[i] = NewTree(child)
		}
	}
	return tree
}

// Tag returns the node's structural identity.
func (t *Tree) Tag() Tag {
	return t.tag
}

// IsPristine reports whether the node has never been diffed. A pristine node
// signals first use: whatever owns it must populate it before dispatching
// into the associated widget.
func (t *Tree) IsPristine() bool {
	return !t.initialized
}

// Diff reconciles the node against a new widget. State is preserved when the
// widget's tag matches the node's; otherwise the node is reset to the
// widget's fresh state. Children are reconciled pairwise by position, extra
// nodes are dropped, and missing nodes are built fresh.
func (t *Tree) Diff(widget Widget) {
	if t.tag == widget.Tag() {
		t.diffChildren(widget.Children())
	} else {
		*t = *NewTree(widget)
	}
	t.initialized = true
}

func (t *Tree) diffChildren(widgets []Widget) {
	if len(t.Children) > len(widgets) {
		t.Children = t.Children[:len(widgets)]
	}
	for i, widget := range widgets {
		if i < len(t.Children) {
			t.Children[i].Diff(widget)
		} else {
			t.Children = append(t.Children, NewTree(widget))
		}
	}
}
