// Package renderer defines the primitive-issuance interface widgets draw
// through. Concrete renderers (GPU, software, recording) live behind it; the
// core never depends on a particular backend.
package renderer

import "github.com/go-quill/quill/pkg/geometry"

// Color is an RGBA color with components in the 0..1 range.
type Color struct {
	R, G, B, A float64
}

// Style carries the inherited drawing state handed down a draw pass.
type Style struct {
	TextColor Color
}

// Quad is a rectangular drawing primitive.
type Quad struct {
	Bounds       geometry.Rect
	BorderRadius float64
	BorderWidth  float64
	BorderColor  Color
}

// Text is a text drawing primitive.
type Text struct {
	Content string
	Size    float64
}

// Renderer issues drawing primitives and answers measurement queries.
//
// Measurement lives here because text metrics depend on the backend's font
// stack; layout code queries the renderer rather than shipping its own.
type Renderer interface {
	// FillQuad draws a quad filled with the background color.
	FillQuad(quad Quad, background Color)

	// FillText draws text at the given absolute position.
	FillText(text Text, position geometry.Offset, color Color)

	// MeasureText returns the size the text would occupy.
	MeasureText(text Text) geometry.Size

	// WithLayer runs f with drawing clipped to the given bounds.
	WithLayer(bounds geometry.Rect, f func())
}
