package sampler

import (
	"math"

	"github.com/katalvlaran/plotf/core"
)

// Sample steps uniformly across domain and collects accepted points into
// restartable segments.
//
// Algorithm Outline:
//  1. n = clamp(Samples, MinSamples, MaxSamples); step = span/n.
//  2. For i = 0..n evaluate f at xMin + i·step (both ends inclusive).
//  3. Reject the point (close the open segment, drop the point) when the
//     evaluator misses, y is non-finite, or |y| > Cutoff.
//  4. Break (close the open segment, keep the point as the start of the
//     next) when |y − prevY| > JumpFactor × max(1e-6, vp.YSpan()).
//  5. Emit only segments with ≥ 2 points.
//
// Errors:
//   - ErrNilFunc   — f is nil.
//   - ErrBadDomain — domain is not a valid finite range.
//
// Complexity: O(n) time, O(n) memory.
func Sample(f Func, domain core.Range, vp core.Viewport, opts *Options) ([]core.Segment, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if !domain.Valid() {
		return nil, ErrBadDomain
	}

	samples := DefaultSamples
	cutoff := DefaultCutoff
	jumpFactor := DefaultJumpFactor
	if opts != nil {
		if opts.Samples != 0 {
			samples = opts.Samples
		}
		if opts.Cutoff != 0 {
			cutoff = opts.Cutoff
		}
		if opts.JumpFactor > 0 {
			jumpFactor = opts.JumpFactor
		}
	}
	samples = core.ClampInt(samples, MinSamples, MaxSamples)

	jumpLimit := jumpFactor * math.Max(1e-6, vp.YSpan())
	step := domain.Span() / float64(samples)

	var (
		out     []core.Segment
		current core.Segment
		prevY   float64
		havePrev bool
	)

	flush := func() {
		if len(current) >= 2 {
			out = append(out, current)
		}
		current = nil
	}

	for i := 0; i <= samples; i++ {
		x := domain.Min + float64(i)*step
		y, ok := f(x)
		if !ok || !core.IsReal(y) || math.Abs(y) > cutoff {
			// Rejected point: the current run ends, the point vanishes.
			flush()
			havePrev = false

			continue
		}
		if havePrev && math.Abs(y-prevY) > jumpLimit {
			// Discontinuity: the point is sound, it just belongs to the
			// next branch of the curve.
			flush()
		}
		current = append(current, core.Point{X: x, Y: y})
		prevY, havePrev = y, true
	}
	flush()

	return out, nil
}
