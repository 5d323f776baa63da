// Package core: the 2D Viewport and 3D Box3 world windows.
//
// Both are immutable values: Pan, Zoom and Clamped return fresh copies, so a
// render pass can keep using the previous window while the next one is built.
package core

// Viewport is the axis-aligned 2D world rectangle currently on screen.
// Invariant: XMin < XMax and YMin < YMax, each span within [MinSpan, MaxSpan].
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewViewport validates bounds and returns a span-clamped Viewport.
//
// Errors:
//   - ErrInvalidViewport — non-finite bounds or min ≥ max on either axis.
func NewViewport(xMin, xMax, yMin, yMax float64) (Viewport, error) {
	x := Range{Min: xMin, Max: xMax}
	y := Range{Min: yMin, Max: yMax}
	if !x.Valid() || !y.Valid() {
		return Viewport{}, ErrInvalidViewport
	}

	return Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}.Clamped(), nil
}

// XRange returns the horizontal extent as a Range.
func (v Viewport) XRange() Range { return Range{Min: v.XMin, Max: v.XMax} }

// YRange returns the vertical extent as a Range.
func (v Viewport) YRange() Range { return Range{Min: v.YMin, Max: v.YMax} }

// XSpan returns XMax − XMin.
func (v Viewport) XSpan() float64 { return v.XMax - v.XMin }

// YSpan returns YMax − YMin.
func (v Viewport) YSpan() float64 { return v.YMax - v.YMin }

// Contains reports whether p lies inside the viewport rectangle.
func (v Viewport) Contains(p Point) bool {
	return v.XRange().Contains(p.X) && v.YRange().Contains(p.Y)
}

// Pan returns a copy shifted by (dx, dy) in world units.
func (v Viewport) Pan(dx, dy float64) Viewport {
	return Viewport{
		XMin: v.XMin + dx, XMax: v.XMax + dx,
		YMin: v.YMin + dy, YMax: v.YMax + dy,
	}
}

// Zoom returns a copy scaled about the viewport center. factor < 1 zooms in,
// factor > 1 zooms out. The result is span-clamped.
func (v Viewport) Zoom(factor float64) Viewport {
	if factor <= 0 {
		return v
	}
	cx := (v.XMin + v.XMax) / 2
	cy := (v.YMin + v.YMax) / 2
	hx := v.XSpan() / 2 * factor
	hy := v.YSpan() / 2 * factor

	return Viewport{XMin: cx - hx, XMax: cx + hx, YMin: cy - hy, YMax: cy + hy}.Clamped()
}

// Clamped returns a copy whose spans are forced into [MinSpan, MaxSpan],
// expanding or shrinking symmetrically about the center.
func (v Viewport) Clamped() Viewport {
	out := v
	out.XMin, out.XMax = clampSpan(v.XMin, v.XMax)
	out.YMin, out.YMax = clampSpan(v.YMin, v.YMax)

	return out
}

// clampSpan re-centers [lo,hi] to a span within [MinSpan, MaxSpan].
func clampSpan(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span >= MinSpan && span <= MaxSpan {
		return lo, hi
	}
	c := (lo + hi) / 2
	half := Clamp(span, MinSpan, MaxSpan) / 2

	return c - half, c + half
}

// Box3 is the axis-aligned 3D world box a surface is plotted inside and a
// camera orbits around.
type Box3 struct {
	X, Y, Z Range
}

// Center returns the midpoint of the box.
func (b Box3) Center() Point3 {
	return Point3{
		X: (b.X.Min + b.X.Max) / 2,
		Y: (b.Y.Min + b.Y.Max) / 2,
		Z: (b.Z.Min + b.Z.Max) / 2,
	}
}

// MaxSpan returns the largest axis extent, used to normalize the box into a
// unit cube before projection.
func (b Box3) MaxSpan() float64 {
	s := b.X.Span()
	if y := b.Y.Span(); y > s {
		s = y
	}
	if z := b.Z.Span(); z > s {
		s = z
	}

	return s
}

// Valid reports whether all three axis ranges are valid.
func (b Box3) Valid() bool { return b.X.Valid() && b.Y.Valid() && b.Z.Valid() }
