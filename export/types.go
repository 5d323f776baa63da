// Package export: options and output-size policy.
package export

// Output-size policy.
const (
	// DefaultMaxPoints is the per-entry coordinate budget for 2D
	// fallbacks. Segment endpoints survive downsampling.
	DefaultMaxPoints = 800

	// DefaultFormulaSamples is the sample count written into a symbolic
	// plot directive; the target evaluates the formula itself.
	DefaultFormulaSamples = 200

	// SurfaceDensity is the fixed mesh density for surface exports,
	// deliberately below the interactive default to bound document size.
	SurfaceDensity = 250
)

// Options tunes one document build. The zero value selects all defaults.
type Options struct {
	// MaxPoints overrides DefaultMaxPoints when positive.
	MaxPoints int

	// FormulaSamples overrides DefaultFormulaSamples when positive.
	FormulaSamples int
}

func (o *Options) maxPoints() int {
	if o != nil && o.MaxPoints > 0 {
		return o.MaxPoints
	}

	return DefaultMaxPoints
}

func (o *Options) formulaSamples() int {
	if o != nil && o.FormulaSamples > 0 {
		return o.FormulaSamples
	}

	return DefaultFormulaSamples
}
