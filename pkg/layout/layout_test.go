package layout

import (
	"testing"

	"github.com/go-quill/quill/pkg/geometry"
)

func TestLimits_Resolve(t *testing.T) {
	limits := NewLimits(
		geometry.Size{Width: 10, Height: 10},
		geometry.Size{Width: 100, Height: 50},
	)

	resolved := limits.Resolve(geometry.Size{Width: 5, Height: 200})
	if resolved.Width != 10 || resolved.Height != 50 {
		t.Fatalf("expected clamp to (10,50), got (%.1f,%.1f)", resolved.Width, resolved.Height)
	}
}

func TestLimits_ShrinkClampsAtZero(t *testing.T) {
	limits := Loose(geometry.Size{Width: 8, Height: 8})
	shrunk := limits.Shrink(geometry.Size{Width: 20, Height: 20})

	if max := shrunk.Max(); max.Width != 0 || max.Height != 0 {
		t.Fatalf("expected shrunk max clamped to zero, got %+v", max)
	}
}

func TestLimits_Tight(t *testing.T) {
	limits := Tight(geometry.Size{Width: 30, Height: 40})
	if !limits.IsTight() {
		t.Fatalf("expected tight limits")
	}
	if resolved := limits.Resolve(geometry.Size{}); resolved.Width != 30 || resolved.Height != 40 {
		t.Fatalf("expected tight limits to force (30,40), got %+v", resolved)
	}
}

func TestLayout_OffsetPropagatesToChildren(t *testing.T) {
	child := NewNode(geometry.Size{Width: 10, Height: 10}).
		MoveTo(geometry.Offset{X: 5, Y: 6})
	parent := NewNodeWithChildren(geometry.Size{Width: 100, Height: 100}, child).
		MoveTo(geometry.Offset{X: 1, Y: 2})

	lay := WithOffset(geometry.Offset{X: 10, Y: 20}, &parent)

	bounds := lay.Bounds()
	if bounds.Left != 11 || bounds.Top != 22 {
		t.Fatalf("expected parent bounds at (11,22), got (%.1f,%.1f)", bounds.Left, bounds.Top)
	}

	children := lay.Children()
	if len(children) != 1 {
		t.Fatalf("expected one child view, got %d", len(children))
	}
	childBounds := children[0].Bounds()
	if childBounds.Left != 16 || childBounds.Top != 28 {
		t.Fatalf("expected child bounds at (16,28), got (%.1f,%.1f)", childBounds.Left, childBounds.Top)
	}
}

func TestNode_Bounds(t *testing.T) {
	node := NewNode(geometry.Size{Width: 4, Height: 5}).MoveTo(geometry.Offset{X: 1, Y: 1})
	bounds := node.Bounds()
	if bounds.Width() != 4 || bounds.Height() != 5 || bounds.Left != 1 || bounds.Top != 1 {
		t.Fatalf("unexpected bounds %+v", bounds)
	}
}
