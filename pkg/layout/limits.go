// Package layout provides the bounds negotiation and cached geometry types:
// Limits flow down from parent to child, Nodes flow back up, and Layout views
// a node tree with an accumulated absolute offset.
package layout

import (
	"math"

	"github.com/go-quill/quill/pkg/geometry"
)

// Limits describe the minimum and maximum size a widget may occupy,
// as negotiated by its parent during the layout pass.
type Limits struct {
	min geometry.Size
	max geometry.Size
}

// NewLimits creates limits from a minimum and maximum size.
func NewLimits(min, max geometry.Size) Limits {
	return Limits{min: min, max: max}
}

// Tight creates limits that force exactly the given size.
func Tight(size geometry.Size) Limits {
	return Limits{min: size, max: size}
}

// Loose creates limits with a zero minimum and the given maximum.
func Loose(max geometry.Size) Limits {
	return Limits{max: max}
}

// Min returns the minimum size allowed by the limits.
func (l Limits) Min() geometry.Size {
	return l.min
}

// Max returns the maximum size allowed by the limits.
func (l Limits) Max() geometry.Size {
	return l.max
}

// IsTight reports whether the limits allow exactly one size.
func (l Limits) IsTight() bool {
	return l.min == l.max
}

// Resolve clamps an intrinsic size into the limits.
func (l Limits) Resolve(intrinsic geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  clamp(intrinsic.Width, l.min.Width, l.max.Width),
		Height: clamp(intrinsic.Height, l.min.Height, l.max.Height),
	}
}

// Shrink reduces the limits by the given padding on every axis.
// The minimum never drops below zero.
func (l Limits) Shrink(pad geometry.Size) Limits {
	return Limits{
		min: geometry.Size{
			Width:  math.Max(0, l.min.Width-pad.Width),
			Height: math.Max(0, l.min.Height-pad.Height),
		},
		max: geometry.Size{
			Width:  math.Max(0, l.max.Width-pad.Width),
			Height: math.Max(0, l.max.Height-pad.Height),
		},
	}
}

// LoosenMin returns the limits with the minimum reset to zero.
func (l Limits) LoosenMin() Limits {
	return Limits{max: l.max}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
