// Package camera projects world-space surface geometry onto a 2D canvas
// and orders it for painter-style rendering.
//
// 🚀 The model:
//
//	Camera{Yaw, Pitch, Distance} orbits the bounding box of the scene.
//	Pitch and Distance are clamped to ranges that keep the projection
//	stable; every mutation (Orbit, Zoom, Clamped) is a pure transform
//	returning a new Camera.
//
//	A Projector is built per frame from the scene box, the camera and the
//	canvas size. Each world point is translated to box-center-relative
//	coordinates, normalized so the box roughly fills a [-1,1] cube,
//	rotated by yaw then pitch, and perspective-divided by
//	d = Distance − rotZ. Points with d ≤ 0.08 are behind the camera; any
//	face or segment with a behind-camera endpoint is dropped whole.
//
// ✨ Ordering: the pre-divide rotated z is the depth key. SortFaces and
// SortSegments sort ascending, so farther primitives come first and a
// renderer that paints in order overdraws correctly (painter's
// algorithm — an approximation, with no per-pixel occlusion test).
//
// ⚙️ Usage:
//
//	pr, err := camera.NewProjector(grid.Box(), cam, 800, 600)
//	faces := pr.ProjectFaces(grid.Faces())
//	camera.SortFaces(faces)
//
// Complexity: O(1) per point, O(n log n) to sort n primitives.
package camera
