// Package contour: options, defaults and sentinel errors.
package contour

import (
	"errors"
	"math"

	"github.com/katalvlaran/plotf/core"
)

// Sentinel errors for contour extraction.
var (
	// ErrNilFunc indicates a nil evaluator.
	ErrNilFunc = errors.New("contour: evaluator must be non-nil")
)

// Grid sizing and numeric policy.
const (
	// MinResolution is the smallest grid side (cells per axis).
	MinResolution = 30

	// MaxResolution caps the grid side so a pass stays bounded.
	MaxResolution = 180

	// DefaultDensity is the density hint used when Options is nil.
	DefaultDensity = 120

	// DefaultCutoff marks vertices with |g| beyond it as undefined.
	DefaultCutoff = 1e8

	// resolutionScale maps sqrt(density) into a grid side.
	resolutionScale = 2.2

	// zeroTol snaps a vertex value within it of zero onto the contour.
	zeroTol = 1e-12
)

// Func2 evaluates g(x,y); ok=false is a per-vertex miss.
type Func2 func(x, y float64) (v float64, ok bool)

// Options tunes one extraction pass.
type Options struct {
	// Density is the requested sample density hint; the grid side derives
	// from it via Resolution. Zero selects DefaultDensity.
	Density int

	// Cutoff overrides DefaultCutoff when positive.
	Cutoff float64
}

// Resolution converts a density hint into the grid side:
// clamp(round(sqrt(max(1,density))·2.2), MinResolution, MaxResolution).
func Resolution(density int) int {
	if density < 1 {
		density = 1
	}
	r := int(math.Round(math.Sqrt(float64(density)) * resolutionScale))

	return core.ClampInt(r, MinResolution, MaxResolution)
}
