// Package uitest provides isolated widget testing without real rendering:
// a recording renderer, a host harness that drives the widget capability
// calls the way a real shell would, and YAML snapshot goldens.
package uitest

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/renderer"
)

// Op is a recorded drawing primitive.
type Op interface {
	isOp()
}

// QuadOp records a filled quad.
type QuadOp struct {
	Quad       renderer.Quad
	Background renderer.Color
}

// TextOp records drawn text.
type TextOp struct {
	Text     renderer.Text
	Position geometry.Offset
	Color    renderer.Color
}

// PushLayerOp records the start of a clipped layer.
type PushLayerOp struct {
	Bounds geometry.Rect
}

// PopLayerOp records the end of a clipped layer.
type PopLayerOp struct{}

func (QuadOp) isOp()      {}
func (TextOp) isOp()      {}
func (PushLayerOp) isOp() {}
func (PopLayerOp) isOp()  {}

// Renderer records primitives instead of rasterizing them and measures text
// with a fixed bitmap face, so layout results are deterministic across
// machines.
type Renderer struct {
	ops  []Op
	face font.Face
}

// NewRenderer creates a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{face: basicfont.Face7x13}
}

// FillQuad records the quad.
func (r *Renderer) FillQuad(quad renderer.Quad, background renderer.Color) {
	r.ops = append(r.ops, QuadOp{Quad: quad, Background: background})
}

// FillText records the text.
func (r *Renderer) FillText(text renderer.Text, position geometry.Offset, color renderer.Color) {
	r.ops = append(r.ops, TextOp{Text: text, Position: position, Color: color})
}

// MeasureText measures with the bitmap face, scaled to the requested size.
func (r *Renderer) MeasureText(text renderer.Text) geometry.Size {
	advance := font.MeasureString(r.face, text.Content)
	metrics := r.face.Metrics()

	width := float64(advance) / 64
	height := float64(metrics.Height) / 64
	if text.Size > 0 && height > 0 {
		scale := text.Size / height
		width *= scale
		height = text.Size
	}
	return geometry.Size{Width: width, Height: height}
}

// WithLayer records push/pop ops around f.
func (r *Renderer) WithLayer(bounds geometry.Rect, f func()) {
	r.ops = append(r.ops, PushLayerOp{Bounds: bounds})
	f()
	r.ops = append(r.ops, PopLayerOp{})
}

// Ops returns the recorded primitives in issue order.
func (r *Renderer) Ops() []Op {
	return r.ops
}

// Reset discards all recorded primitives.
func (r *Renderer) Reset() {
	r.ops = nil
}
