// Package surface samples z=f(x,y) into a regular height-field grid with
// per-cell validity, ready for quad-face rendering and wireframe strokes.
//
// 🚀 What it produces:
//
//	A (r+1)×(r+1) grid of world points over the two domains,
//	r = clamp(round(sqrt(density)·scale), 12, 80). A grid point is
//	undefined when f misses, z is non-finite, |z| exceeds 1e7, or z falls
//	outside the declared z-bounds. From the grid:
//	  • Faces()     — quad faces, emitted only when all 4 corners are defined
//	  • Wireframe() — row and column polylines, broken at undefined points
//	  • Box()       — the world bounding box a camera orbits around
//
// ✨ Sizing: interactive rendering scales the resolution with the entry's
// requested density; export passes a fixed smaller density to bound output
// size. Both land in the same hard cap, so a pass is always bounded.
//
// ⚙️ Usage:
//
//	grid, err := surface.Mesh(f, xd, yd, &surface.Options{Density: 900})
//	faces := grid.Faces()
//
// Complexity: O(r²) evaluations and memory; r is hard-capped at 80.
package surface
