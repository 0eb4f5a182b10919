// Package mouse provides the pointer cursor state and interaction shapes
// reported by widgets during hit queries.
package mouse

import "github.com/go-quill/quill/pkg/geometry"

// Cursor is the state of the pointer during a dispatch: either a known
// position, or unavailable (pointer left the surface or was never seen).
type Cursor struct {
	position  geometry.Offset
	available bool
}

// CursorAt returns a cursor at a known position.
func CursorAt(position geometry.Offset) Cursor {
	return Cursor{position: position, available: true}
}

// UnavailableCursor returns a cursor with no known position.
func UnavailableCursor() Cursor {
	return Cursor{}
}

// Position returns the pointer position and whether it is available.
func (c Cursor) Position() (geometry.Offset, bool) {
	return c.position, c.available
}

// IsOver reports whether the cursor is available and inside the bounds.
func (c Cursor) IsOver(bounds geometry.Rect) bool {
	return c.available && bounds.Contains(c.position)
}

// Interaction is the pointer shape a widget requests for the current cursor.
type Interaction int

const (
	InteractionIdle Interaction = iota
	InteractionPointer
	InteractionText
	InteractionCrosshair
	InteractionGrab
	InteractionGrabbing
	InteractionNotAllowed
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)
