package contour

import (
	"math"

	"github.com/katalvlaran/plotf/core"
)

// field is the sampled scalar grid: (r+1)×(r+1) vertex values over the
// viewport, with an explicit defined flag per vertex. Working state only;
// it is discarded after extraction.
type field struct {
	r      int       // cells per axis
	xs, ys []float64 // r+1 vertex coordinates per axis
	val    []float64 // row-major [j*(r+1)+i]
	def    []bool
}

// sampleField evaluates g at every grid vertex. Misses, non-finite values
// and magnitudes beyond cutoff become undefined vertices.
func sampleField(g Func2, vp core.Viewport, r int, cutoff float64) *field {
	n := r + 1
	f := &field{
		r:   r,
		xs:  make([]float64, n),
		ys:  make([]float64, n),
		val: make([]float64, n*n),
		def: make([]bool, n*n),
	}
	dx := vp.XSpan() / float64(r)
	dy := vp.YSpan() / float64(r)
	for i := 0; i < n; i++ {
		f.xs[i] = vp.XMin + float64(i)*dx
		f.ys[i] = vp.YMin + float64(i)*dy
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v, ok := g(f.xs[i], f.ys[j])
			if !ok || !core.IsReal(v) || math.Abs(v) > cutoff {
				continue
			}
			f.val[j*n+i] = v
			f.def[j*n+i] = true
		}
	}

	return f
}

// at returns the vertex value and defined flag at grid coordinate (i, j).
func (f *field) at(i, j int) (float64, bool) {
	idx := j*(f.r+1) + i

	return f.val[idx], f.def[idx]
}
