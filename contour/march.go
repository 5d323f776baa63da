package contour

import (
	"math"

	"github.com/katalvlaran/plotf/core"
)

// March extracts the zero contour of g over the viewport.
//
// Errors:
//   - ErrNilFunc — g is nil.
//
// The result is an unordered list of independent 2-point segments.
// Complexity: O(r²) time and memory, r = Resolution(opts.Density).
func March(g Func2, vp core.Viewport, opts *Options) ([]core.Segment, error) {
	if g == nil {
		return nil, ErrNilFunc
	}

	density := DefaultDensity
	cutoff := DefaultCutoff
	if opts != nil {
		if opts.Density != 0 {
			density = opts.Density
		}
		if opts.Cutoff > 0 {
			cutoff = opts.Cutoff
		}
	}

	r := Resolution(density)
	f := sampleField(g, vp, r, cutoff)

	var out []core.Segment
	for j := 0; j < r; j++ {
		for i := 0; i < r; i++ {
			out = appendCellSegments(out, f, g, i, j)
		}
	}

	return out, nil
}

// corner order within a cell: 0=(i,j) 1=(i+1,j) 2=(i+1,j+1) 3=(i,j+1),
// i.e. bottom-left, bottom-right, top-right, top-left. The four edges
// in crossing order are bottom(0→1), right(1→2), top(3→2), left(0→3).
type cellCorner struct {
	x, y float64
	v    float64
	def  bool
}

// appendCellSegments resolves one cell and appends 0, 1 or 2 segments.
func appendCellSegments(out []core.Segment, f *field, g Func2, i, j int) []core.Segment {
	var c [4]cellCorner
	coords := [4][2]int{{i, j}, {i + 1, j}, {i + 1, j + 1}, {i, j + 1}}
	for k, ij := range coords {
		c[k].x = f.xs[ij[0]]
		c[k].y = f.ys[ij[1]]
		c[k].v, c[k].def = f.at(ij[0], ij[1])
	}

	// Edge endpoint pairs in bottom→right→top→left order.
	edges := [4][2]int{{0, 1}, {1, 2}, {3, 2}, {0, 3}}

	var crossings []core.Point
	for _, e := range edges {
		p, ok := edgeCrossing(c[e[0]], c[e[1]])
		if !ok {
			continue
		}
		crossings = append(crossings, p)
	}

	switch len(crossings) {
	case 2:
		return append(out, core.Segment{crossings[0], crossings[1]})

	case 4:
		// Saddle: two valid pairings exist. Sample the cell center and
		// connect so that the positive region stays connected. A center
		// miss counts as non-positive.
		cx := (c[0].x + c[1].x) / 2
		cy := (c[0].y + c[3].y) / 2
		center, ok := g(cx, cy)
		if ok && core.IsReal(center) && center > 0 {
			return append(out,
				core.Segment{crossings[0], crossings[3]},
				core.Segment{crossings[1], crossings[2]},
			)
		}

		return append(out,
			core.Segment{crossings[0], crossings[1]},
			core.Segment{crossings[2], crossings[3]},
		)

	default:
		// 0, 1 or 3 crossings: numerically atypical configurations give
		// no segment for this cell.
		return out
	}
}

// edgeCrossing finds the linear zero crossing on one edge.
//
// Rules, in order:
//   - an undefined endpoint skips the edge entirely;
//   - an endpoint within zeroTol of zero is itself the crossing;
//   - same-sign finite endpoints cross nowhere;
//   - otherwise interpolate at t = v1/(v1−v2), accepted iff t ∈ [0,1].
func edgeCrossing(a, b cellCorner) (core.Point, bool) {
	if !a.def || !b.def {
		return core.Point{}, false
	}
	if math.Abs(a.v) < zeroTol {
		return core.Point{X: a.x, Y: a.y}, true
	}
	if math.Abs(b.v) < zeroTol {
		return core.Point{X: b.x, Y: b.y}, true
	}
	if (a.v > 0) == (b.v > 0) {
		return core.Point{}, false
	}
	t := a.v / (a.v - b.v)
	if t < 0 || t > 1 {
		return core.Point{}, false
	}

	return core.Point{
		X: a.x + t*(b.x-a.x),
		Y: a.y + t*(b.y-a.y),
	}, true
}
