// Package core defines the shared geometry vocabulary of plotf: points,
// segments, ranges, viewports, boxes and faces. Every sampler, extractor
// and projector in the module speaks these types.
//
// 🚀 What lives here?
//
//	• Point / Point3   — world-space coordinates, 2D and 3D
//	• Segment          — an ordered polyline run of ≥2 points; curves split
//	                     into many disjoint Segments around poles and gaps
//	• Range            — a [Min,Max] interval with intersection & fallback rules
//	• Viewport         — the 2D world window, span-clamped to [1e-3, 1e6]
//	• Box3 / Viewport3D — the 3D world box a camera orbits around
//	• Face             — a quad of world points emitted by the surface mesher
//
// ✨ Design rules:
//
//   - Values, not pointers — every transform (Pan, Zoom, Intersect) returns a
//     new value and never mutates its receiver, so a previous viewport stays
//     valid while the next frame is being computed.
//   - No behavior beyond geometry — evaluation, sampling and projection live
//     in their own packages; core stays dependency-free.
//   - Deterministic — no randomness, no global state.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/plotf/core"
//
//	vp := core.Viewport{XMin: -10, XMax: 10, YMin: -5, YMax: 5}
//	vp = vp.Zoom(0.5).Pan(1, 0) // pure transforms; original untouched
//
// See the sampler, contour, surface and camera packages for the algorithms
// that consume and produce these types.
package core
