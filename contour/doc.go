// Package contour extracts the zero set of an implicit relation g(x,y)=0
// from a viewport using marching squares over a sampled scalar field.
//
// 🚀 How it works:
//
//  1. Grid — the viewport is covered by an r×r cell grid,
//     r = clamp(round(sqrt(max(1,density))·2.2), 30, 180), and g is
//     evaluated at every vertex. A vertex whose evaluation misses, is
//     non-finite, or exceeds the magnitude cutoff becomes an "undefined"
//     sentinel that never participates in interpolation.
//  2. Edges — per cell, each of the four edges (bottom→right→top→left) gets
//     a linear zero-crossing from its endpoint values: same-sign finite
//     endpoints cross nowhere; an endpoint within 1e-12 of zero crosses
//     exactly at that vertex; otherwise the crossing sits at parametric
//     t = v1/(v1−v2), accepted only when t ∈ [0,1]. Edges touching an
//     undefined vertex are skipped.
//  3. Cells — exactly two crossings join into one line segment; exactly
//     four (the saddle case) are disambiguated by the sign of g at the
//     cell center: positive connects (bottom,left)+(right,top), otherwise
//     (bottom,right)+(top,left). 0, 1 or 3 crossings emit nothing.
//
// ✨ Output: an unordered list of independent 2-point segments, not
// stitched into polylines — consumers draw each on its own. Multi-valued
// curves, closed loops and disjoint branches all come out naturally.
//
// ⚙️ Usage:
//
//	segs, err := contour.March(g, vp, &contour.Options{Density: 200})
//
// Complexity: O(r²) evaluations and memory; r is hard-capped at 180.
//
// The saddle resolution is the standard center-sample heuristic: any
// consistent choice is acceptable as long as contour lines never cross
// inside one cell. Two distinct valid contours closer than one cell are
// merged or dropped — tighten Density to separate them.
package contour
