// Package sampler: options, defaults and sentinel errors.
package sampler

import "errors"

// Sentinel errors for sampling operations.
var (
	// ErrNilFunc indicates a nil evaluator.
	ErrNilFunc = errors.New("sampler: evaluator must be non-nil")

	// ErrBadDomain indicates a domain that is not a valid finite range.
	ErrBadDomain = errors.New("sampler: domain must be a finite range with min < max")
)

// Admissible sample counts and defaults.
const (
	// MinSamples is the smallest admissible uniform step count.
	MinSamples = 32

	// MaxSamples caps a pass so recomputes stay bounded.
	MaxSamples = 5000

	// DefaultSamples is used when Options is nil or Samples is zero.
	DefaultSamples = 500

	// DefaultCutoff is the magnitude beyond which a value counts as
	// off-scale and the point is rejected.
	DefaultCutoff = 1e6

	// DefaultJumpFactor scales the viewport's vertical span into the
	// discontinuity threshold. Heuristic: large enough that steep smooth
	// curves pass, small enough that pole crossings break.
	DefaultJumpFactor = 8.0
)

// Func evaluates y=f(x); ok=false is a per-point miss.
type Func func(x float64) (y float64, ok bool)

// Options tunes one sampling pass.
type Options struct {
	// Samples is the uniform step count, clamped to [MinSamples, MaxSamples].
	// Zero selects DefaultSamples.
	Samples int

	// Cutoff rejects |y| > Cutoff. Zero selects DefaultCutoff.
	Cutoff float64

	// JumpFactor overrides DefaultJumpFactor when positive.
	JumpFactor float64
}

// DefaultOptions returns the default sampling configuration.
func DefaultOptions() *Options {
	return &Options{
		Samples:    DefaultSamples,
		Cutoff:     DefaultCutoff,
		JumpFactor: DefaultJumpFactor,
	}
}
