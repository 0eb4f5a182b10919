package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// DefaultTextSize is the text size used when none is configured.
const DefaultTextSize = 16

// Text is a leaf widget drawing a single run of text. Metrics come from the
// renderer, so the same widget measures consistently across backends.
type Text struct {
	core.Base
	Content string
	Size    float64
	Color   *renderer.Color
}

func (t Text) primitive() renderer.Text {
	size := t.Size
	if size == 0 {
		size = DefaultTextSize
	}
	return renderer.Text{Content: t.Content, Size: size}
}

// Layout measures the text and clamps it into the limits.
func (t Text) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(limits.Resolve(r.MeasureText(t.primitive())))
}

// Draw issues the text primitive, using the inherited color unless one is
// configured.
func (t Text) Draw(tree *core.Tree, r renderer.Renderer, style renderer.Style, lay layout.Layout, cursor mouse.Cursor, viewport geometry.Rect) {
	color := style.TextColor
	if t.Color != nil {
		color = *t.Color
	}
	r.FillText(t.primitive(), lay.Position(), color)
}
