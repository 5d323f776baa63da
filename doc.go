// Package plotf turns textual math expressions into plottable, exportable
// geometry — from raw user input to screen-space primitives.
//
// 🚀 What is plotf?
//
//	A pure-Go expression-to-geometry engine that brings together:
//		• Expression core: a closed AST, strict parser & complex-aware evaluator
//		• Safety validation: a hard whitelist over nodes, functions and symbols
//		• Curve sampling: adaptive polylines that survive poles & discontinuities
//		• Implicit contours: marching-squares extraction of g(x,y)=0 zero sets
//		• Surface meshing: height-field grids for z=f(x,y)
//		• Symbolic transpilation: PGFPlots formulas, with a sampled fallback
//		• 3D projection: yaw/pitch/distance camera + painter's depth ordering
//
// ✨ Why choose plotf?
//
//   - Hostile-input tolerant – malformed text, poles, overflow: all local, all recovered
//   - Rock-solid boundaries – the evaluator can never execute anything but arithmetic
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same input, same geometry, every time
//
// Under the hood, everything is organized per concern:
//
//	core/      — shared geometry: points, segments, viewports, boxes, faces
//	expr/      — AST, lexer/parser, evaluation with real-coercion rules
//	validate/  — the whitelist walk that gates every compiled expression
//	prepare/   — normalization, explicit/implicit classification, compilation
//	sampler/   — adaptive explicit-curve sampling
//	contour/   — marching-squares implicit-contour extraction
//	surface/   — 3D height-field mesh sampling
//	transpile/ — symbolic conversion to PGFPlots math syntax
//	camera/    — world→screen projection and back-to-front depth sorting
//	export/    — PGFPlots document assembly (formula or coordinates)
//
// Quick ASCII example:
//
//	    y
//	    │   ·· x²+y²=1
//	    │  ·  ·
//	────┼──·──·──── x
//	    │  ·  ·
//	    │   ··
//
//	an implicit relation extracted as a ring of contour segments.
//
// Dive into the examples/ directory for end-to-end scenarios: sampling a
// pole, marching a circle, projecting a surface, exporting a document.
//
//	go get github.com/katalvlaran/plotf
package plotf
