// Package surface: options, defaults and sentinel errors.
package surface

import (
	"errors"
	"math"

	"github.com/katalvlaran/plotf/core"
)

// Sentinel errors for mesh sampling.
var (
	// ErrNilFunc indicates a nil evaluator.
	ErrNilFunc = errors.New("surface: evaluator must be non-nil")

	// ErrBadDomain indicates an axis domain that is not a valid finite range.
	ErrBadDomain = errors.New("surface: domains must be finite ranges with min < max")
)

// Grid sizing and numeric policy.
const (
	// MinResolution is the smallest grid side (cells per axis).
	MinResolution = 12

	// MaxResolution caps the grid side so a pass stays bounded.
	MaxResolution = 80

	// DefaultDensity is the density hint used when Options is nil.
	DefaultDensity = 600

	// DefaultScale maps sqrt(density) into the interactive grid side.
	DefaultScale = 1.6

	// ZCutoff marks |z| beyond it as undefined.
	ZCutoff = 1e7
)

// Func2 evaluates z=f(x,y); ok=false is a per-point miss.
type Func2 func(x, y float64) (z float64, ok bool)

// Options tunes one mesh pass.
type Options struct {
	// Density is the requested density hint. Zero selects DefaultDensity.
	Density int

	// Scale overrides DefaultScale when positive; export callers use a
	// smaller effective resolution simply by passing a smaller Density.
	Scale float64

	// ZBounds, when valid, additionally marks z outside it undefined.
	ZBounds core.Range
}

// Resolution converts a density hint and scale into the grid side:
// clamp(round(sqrt(max(1,density))·scale), MinResolution, MaxResolution).
func Resolution(density int, scale float64) int {
	if density < 1 {
		density = 1
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	r := int(math.Round(math.Sqrt(float64(density)) * scale))

	return core.ClampInt(r, MinResolution, MaxResolution)
}
