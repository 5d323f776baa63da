// Package core: central geometry types and sentinel errors.
//
// This file declares Point, Point3, Segment, Segment3, Face, Range and the
// shared sentinel errors. Viewport and Box3 live in viewport.go.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core geometry operations.
var (
	// ErrInvalidRange indicates Min ≥ Max or a non-finite bound.
	ErrInvalidRange = errors.New("core: range requires finite min < max")

	// ErrInvalidViewport indicates viewport bounds with xMin ≥ xMax or yMin ≥ yMax.
	ErrInvalidViewport = errors.New("core: viewport requires xMin < xMax and yMin < yMax")
)

// Viewport span limits, per axis. A span below MinSpan makes linear
// interpolation between samples numerically meaningless; a span above
// MaxSpan overflows the uniform-step sampling model.
const (
	// MinSpan is the smallest admissible axis span of a Viewport.
	MinSpan = 1e-3

	// MaxSpan is the largest admissible axis span of a Viewport.
	MaxSpan = 1e6
)

// Point is a 2D world-space coordinate.
type Point struct {
	X, Y float64
}

// Point3 is a 3D world-space coordinate.
type Point3 struct {
	X, Y, Z float64
}

// Segment is an ordered run of at least two 2D points drawn as one polyline.
// A single curve decomposes into many disjoint Segments wherever sampling
// hit a pole, a domain gap, or an out-of-view excursion.
type Segment []Point

// Segment3 is an ordered run of at least two 3D points (wireframe, axes, box
// edges). Same restart semantics as Segment.
type Segment3 []Point3

// Face is a quad of world points produced by the surface mesher. Corner
// order is (x,y), (x+1,y), (x+1,y+1), (x,y+1) around the cell.
type Face [4]Point3

// Range is a closed interval [Min, Max] on one axis.
type Range struct {
	Min, Max float64
}

// Valid reports whether both bounds are finite and Min < Max.
func (r Range) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsInf(r.Min, 0) &&
		!math.IsNaN(r.Max) && !math.IsInf(r.Max, 0) &&
		r.Min < r.Max
}

// Span returns Max − Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains reports whether v lies inside [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Intersect returns the overlap of r and o. When the two ranges are
// disjoint the result is not Valid; callers fall back per their own rules.
func (r Range) Intersect(o Range) Range {
	return Range{Min: math.Max(r.Min, o.Min), Max: math.Min(r.Max, o.Max)}
}

// Ordered returns the range with bounds sorted ascending. Degenerate input
// (Min == Max) is widened by 1e-6 so uniform stepping never divides by zero.
func (r Range) Ordered() Range {
	lo, hi := r.Min, r.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi <= lo {
		hi = lo + 1e-6
	}
	return Range{Min: lo, Max: hi}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsReal reports whether v is a usable finite sample value.
func IsReal(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
