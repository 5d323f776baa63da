// Package sampler walks an explicit function y=f(x) across a domain and
// produces restartable polyline segments that survive poles, domain gaps
// and overflow.
//
// 🚀 What is adaptive about it?
//
//	The step is uniform, but segment boundaries adapt to the data:
//	  • a per-point miss (undefined, non-finite, |y| beyond the cutoff)
//	    ends the current segment — the point is dropped;
//	  • a jump larger than JumpFactor × the viewport's vertical span ends
//	    the segment too, but the point survives as the start of the next
//	    one — this is what separates a pole of 1/(x−1) from a merely steep
//	    slope, and it rescales with zoom so smooth curves never fragment.
//
// ✨ Guarantees:
//   - samples+1 evaluations, inclusive of both domain ends
//   - singleton points are never emitted; every Segment has ≥2 points
//   - output order matches input order; deterministic for fixed input
//   - the sample count is hard-capped, so a pass is always bounded
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/plotf/sampler"
//
//	segs, err := sampler.Sample(f, domain, vp, &sampler.Options{Samples: 800})
//
// Complexity: O(samples) time, O(samples) memory.
//
// The jump threshold (8× the vertical span) is a tuned heuristic, not an
// exact discontinuity detector; see Options.JumpFactor.
package sampler
