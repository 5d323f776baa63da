package surface

import (
	"math"

	"github.com/katalvlaran/plotf/core"
)

// Grid is a sampled height field: world points at (Xs[i], Ys[j]) with
// height Z[j][i], valid only where Def[j][i] is true. Immutable once built.
type Grid struct {
	Xs, Ys []float64
	Z      [][]float64
	Def    [][]bool
}

// Mesh evaluates f over xd×yd into a Grid.
//
// A point is undefined when the evaluation misses, z is non-finite,
// |z| > ZCutoff, or z falls outside a valid Options.ZBounds.
//
// Errors:
//   - ErrNilFunc   — f is nil.
//   - ErrBadDomain — either domain is not a valid finite range.
func Mesh(f Func2, xd, yd core.Range, opts *Options) (*Grid, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if !xd.Valid() || !yd.Valid() {
		return nil, ErrBadDomain
	}

	density := DefaultDensity
	scale := DefaultScale
	var zBounds core.Range
	if opts != nil {
		if opts.Density != 0 {
			density = opts.Density
		}
		if opts.Scale > 0 {
			scale = opts.Scale
		}
		zBounds = opts.ZBounds
	}
	r := Resolution(density, scale)
	n := r + 1

	g := &Grid{
		Xs:  make([]float64, n),
		Ys:  make([]float64, n),
		Z:   make([][]float64, n),
		Def: make([][]bool, n),
	}
	dx := xd.Span() / float64(r)
	dy := yd.Span() / float64(r)
	for i := 0; i < n; i++ {
		g.Xs[i] = xd.Min + float64(i)*dx
		g.Ys[i] = yd.Min + float64(i)*dy
	}
	clampZ := zBounds.Valid()
	for j := 0; j < n; j++ {
		g.Z[j] = make([]float64, n)
		g.Def[j] = make([]bool, n)
		for i := 0; i < n; i++ {
			z, ok := f(g.Xs[i], g.Ys[j])
			if !ok || !core.IsReal(z) || math.Abs(z) > ZCutoff {
				continue
			}
			if clampZ && !zBounds.Contains(z) {
				continue
			}
			g.Z[j][i] = z
			g.Def[j][i] = true
		}
	}

	return g, nil
}

// Faces emits one quad per cell whose four corners are all defined.
// Corner order is (i,j), (i+1,j), (i+1,j+1), (i,j+1).
func (g *Grid) Faces() []core.Face {
	r := len(g.Xs) - 1
	faces := make([]core.Face, 0, r*r)
	for j := 0; j < r; j++ {
		for i := 0; i < r; i++ {
			if !g.Def[j][i] || !g.Def[j][i+1] || !g.Def[j+1][i+1] || !g.Def[j+1][i] {
				continue
			}
			faces = append(faces, core.Face{
				g.point(i, j),
				g.point(i+1, j),
				g.point(i+1, j+1),
				g.point(i, j+1),
			})
		}
	}

	return faces
}

// Wireframe emits row and column polylines, restarted at undefined points.
// Runs shorter than 2 points are dropped.
func (g *Grid) Wireframe() []core.Segment3 {
	n := len(g.Xs)
	var out []core.Segment3

	emit := func(run core.Segment3) core.Segment3 {
		if len(run) >= 2 {
			out = append(out, run)
		}

		return nil
	}

	for j := 0; j < n; j++ {
		var run core.Segment3
		for i := 0; i < n; i++ {
			if !g.Def[j][i] {
				run = emit(run)

				continue
			}
			run = append(run, g.point(i, j))
		}
		emit(run)
	}
	for i := 0; i < n; i++ {
		var run core.Segment3
		for j := 0; j < n; j++ {
			if !g.Def[j][i] {
				run = emit(run)

				continue
			}
			run = append(run, g.point(i, j))
		}
		emit(run)
	}

	return out
}

// Box returns the world bounding box of the grid: the sampling domains on
// x and y, and the defined z extent (falling back to [-1, 1] when the
// surface is empty or flat).
func (g *Grid) Box() core.Box3 {
	n := len(g.Xs)
	zMin, zMax := math.Inf(1), math.Inf(-1)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if !g.Def[j][i] {
				continue
			}
			if g.Z[j][i] < zMin {
				zMin = g.Z[j][i]
			}
			if g.Z[j][i] > zMax {
				zMax = g.Z[j][i]
			}
		}
	}
	z := core.Range{Min: zMin, Max: zMax}
	if !z.Valid() {
		if core.IsReal(zMin) && zMin == zMax {
			z = core.Range{Min: zMin, Max: zMax}.Ordered()
		} else {
			z = core.Range{Min: -1, Max: 1}
		}
	}

	return core.Box3{
		X: core.Range{Min: g.Xs[0], Max: g.Xs[n-1]},
		Y: core.Range{Min: g.Ys[0], Max: g.Ys[n-1]},
		Z: z,
	}
}

func (g *Grid) point(i, j int) core.Point3 {
	return core.Point3{X: g.Xs[i], Y: g.Ys[j], Z: g.Z[j][i]}
}
