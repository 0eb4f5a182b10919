package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/mouse"
	"github.com/go-quill/quill/pkg/renderer"
)

// Space is an empty widget occupying the requested amount of room.
// It draws nothing and handles nothing.
type Space struct {
	core.Base
	Width  core.Length
	Height core.Length
}

// SizeHint reports the configured lengths.
func (s Space) SizeHint() (core.Length, core.Length) {
	return s.Width, s.Height
}

// Layout resolves the configured lengths against the limits.
func (s Space) Layout(tree *core.Tree, r renderer.Renderer, limits layout.Limits) layout.Node {
	return layout.NewNode(geometry.Size{
		Width:  resolveLength(s.Width, limits.Min().Width, limits.Max().Width),
		Height: resolveLength(s.Height, limits.Min().Height, limits.Max().Height),
	})
}

// Draw draws nothing.
func (s Space) Draw(*core.Tree, renderer.Renderer, renderer.Style, layout.Layout, mouse.Cursor, geometry.Rect) {
}

func resolveLength(l core.Length, min, max float64) float64 {
	switch l.Unit {
	case core.Fill:
		return max
	case core.Fixed:
		if l.Pixels < min {
			return min
		}
		if l.Pixels > max {
			return max
		}
		return l.Pixels
	default:
		return min
	}
}
