package core

import (
	"github.com/go-quill/quill/pkg/event"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// ID identifies a widget across operate traversals.
type ID string

// LengthUnit describes how a widget wants to size itself along one axis.
type LengthUnit int

const (
	// Shrink sizes the widget to its intrinsic content.
	Shrink LengthUnit = iota
	// Fill takes all the space the parent offers.
	Fill
	// Fixed takes an exact pixel amount.
	Fixed
)

// Length is a sizing preference along one axis.
type Length struct {
	Unit   LengthUnit
	Pixels float64 // used when Unit == Fixed
}

// FillLength returns a preference for all available space.
func FillLength() Length { return Length{Unit: Fill} }

// ShrinkLength returns a preference for intrinsic content size.
func ShrinkLength() Length { return Length{Unit: Shrink} }

// FixedLength returns a preference for an exact pixel amount.
func FixedLength(px float64) Length { return Length{Unit: Fixed, Pixels: px} }

// Widget is the capability set every widget implements. The parent drives a
// widget exclusively through these calls; each takes the widget's state tree
// node and, where geometry is needed, a layout view of its cached node.
type Widget interface {
	// Tag returns the structural identity used by Tree.Diff to decide
	// whether runtime state carries over across rebuilds.
	Tag() Tag

	// State returns the widget's fresh per-instance runtime state, or nil
	// for stateless widgets.
	State() any

	// Children returns the child widgets, in tree order.
	Children() []Widget

	// SizeHint reports the widget's sizing preference per axis.
	SizeHint() (width, height Length)

	// Layout solves the widget's geometry within the given limits.
	Layout(tree *Tree, r renderer.Renderer, limits layout.Limits) layout.Node

	// Draw issues the widget's drawing primitives.
	Draw(tree *Tree, r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect)

	// OnEvent dispatches an input event to the widget. Deferred effects go
	// into the shell; the return value reports whether the event was
	// consumed.
	OnEvent(tree *Tree, ev event.Event, lay layout.Layout, cursor mouse.Cursor, r renderer.Renderer, clipboard Clipboard, shell *Shell, viewport geometry.Rect) event.Status

	// Operate runs a cross-cutting traversal over the widget and its
	// descendants.
	Operate(tree *Tree, lay layout.Layout, r renderer.Renderer, op Operation)

	// MouseInteraction reports the pointer shape for the current cursor.
	MouseInteraction(tree *Tree, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect, r renderer.Renderer) mouse.Interaction

	// Overlay returns the widget's transient overlay for the current frame,
	// or nil when it presents none. The translation is the accumulated
	// offset between the widget's layout space and the overlay space.
	Overlay(tree *Tree, lay layout.Layout, r renderer.Renderer, translation geometry.Offset) *OverlayElement

	// DragDestinations appends the widget's drop-target rectangles.
	DragDestinations(tree *Tree, lay layout.Layout, r renderer.Renderer, dests *DragDestinations)

	// ID returns the widget's identifier, or nil when it has none.
	ID() *ID

	// SetID assigns the widget's identifier.
	SetID(id ID)
}

// Base provides default implementations for every Widget capability except
// Layout and Draw. Embed it in a widget struct and override what the widget
// actually does; the zero value is ready to use.
type Base struct{}

// Tag returns the stateless tag.
func (Base) Tag() Tag { return StatelessTag() }

// State returns nil: no runtime state.
func (Base) State() any { return nil }

// Children returns nil: no children.
func (Base) Children() []Widget { return nil }

// SizeHint prefers intrinsic content size on both axes.
func (Base) SizeHint() (Length, Length) { return ShrinkLength(), ShrinkLength() }

// OnEvent ignores all events.
func (Base) OnEvent(*Tree, event.Event, layout.Layout, mouse.Cursor, renderer.Renderer, Clipboard, *Shell, geometry.Rect) event.Status {
	return event.Ignored
}

// Operate does nothing.
func (Base) Operate(*Tree, layout.Layout, renderer.Renderer, Operation) {}

// MouseInteraction reports the idle pointer shape.
func (Base) MouseInteraction(*Tree, layout.Layout, mouse.Cursor, geometry.Rect, renderer.Renderer) mouse.Interaction {
	return mouse.InteractionIdle
}

// Overlay reports no overlay.
func (Base) Overlay(*Tree, layout.Layout, renderer.Renderer, geometry.Offset) *OverlayElement {
	return nil
}

// DragDestinations appends nothing.
func (Base) DragDestinations(*Tree, layout.Layout, renderer.Renderer, *DragDestinations) {}

// ID reports no identifier.
func (Base) ID() *ID { return nil }

// SetID does nothing.
func (Base) SetID(ID) {}
