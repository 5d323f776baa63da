// Package prepare: entry and result types plus sentinel errors.
package prepare

import (
	"errors"

	"github.com/google/uuid"

	"github.com/katalvlaran/plotf/expr"
)

// Sentinel errors for form-level failures. These (plus parse and validation
// errors) are the only failures ever surfaced to the user; everything
// downstream recovers locally.
var (
	// ErrEquationCount indicates zero-side or multi-equation text.
	ErrEquationCount = errors.New("prepare: expression must contain exactly one equals sign")

	// ErrEmptySide indicates an equation with an empty left or right side.
	ErrEmptySide = errors.New("prepare: both sides of an equation must be non-empty")

	// ErrEqualsInSurface indicates "=" in 3D mode, where surfaces are
	// declared as bare f(x,y).
	ErrEqualsInSurface = errors.New("prepare: a surface is declared as f(x,y), not an equation")
)

// Mode tells a consumer which geometry pipeline an expression feeds.
type Mode int

const (
	// ModeExplicit is y=f(x) (2D) or z=f(x,y) (3D): sampled directly.
	ModeExplicit Mode = iota
	// ModeImplicit is g(x,y)=0: extracted as a zero contour.
	ModeImplicit
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeImplicit {
		return "implicit"
	}

	return "explicit"
}

// Style is the stroke styling an entry is drawn and exported with.
type Style struct {
	// Color is a named or hex color understood by the export target.
	Color string
	// Width is the stroke width in output units.
	Width float64
	// Dash selects a dashed stroke.
	Dash bool
}

// RawEntry is one user-entered plot item. It is owned by the caller and
// passed by value into the engine on every recompute.
type RawEntry struct {
	// ID uniquely identifies the entry across its lifetime.
	ID string

	// Text is the raw expression as typed.
	Text string

	// Visible gates sampling and export for this entry.
	Visible bool

	// Style is the stroke styling.
	Style Style

	// SampleDensity is the requested sampling density hint; each consumer
	// clamps it to its own admissible range.
	SampleDensity int

	// DomainMin and DomainMax are optional textual domain bounds; empty or
	// unparsable strings fall back to the viewport.
	DomainMin, DomainMax string
}

// DefaultSampleDensity is the density hint assigned to new entries.
const DefaultSampleDensity = 500

// NewEntry creates a visible entry with a fresh UUID and default styling.
func NewEntry(text string) RawEntry {
	return RawEntry{
		ID:            uuid.NewString(),
		Text:          text,
		Visible:       true,
		Style:         Style{Color: "blue", Width: 1},
		SampleDensity: DefaultSampleDensity,
	}
}

// ValidatedExpression is the compiled form of one entry's text. It is
// created fresh whenever the text changes and never mutated afterwards.
//
// Invariant: AST is non-nil and exactly one evaluator arity is usable iff
// Err is nil.
type ValidatedExpression struct {
	// Text is the normalized source.
	Text string

	// Mode is explicit or implicit.
	Mode Mode

	// Typeset is the LaTeX preview, empty when Err is non-nil.
	Typeset string

	// Err is the surfaced error: syntax, validation, or form. Nil on success.
	Err error

	// AST is the validated tree. Nil iff Err is non-nil. For implicit
	// entries it is the residual (left) − (right).
	AST expr.Node

	arity int
}

// Func returns the arity-1 evaluator for explicit 2D entries, or nil when
// the expression failed or is not explicit-2D. The closure owns no mutable
// state and is safe for concurrent use.
func (v *ValidatedExpression) Func() func(x float64) (float64, bool) {
	if v.Err != nil || v.arity != 1 {
		return nil
	}
	ast := v.AST

	return func(x float64) (float64, bool) {
		y, err := expr.Eval(ast, map[string]float64{"x": x})

		return y, err == nil
	}
}

// Func2 returns the arity-2 evaluator for implicit and surface entries, or
// nil when unavailable. Same safety guarantees as Func.
func (v *ValidatedExpression) Func2() func(x, y float64) (float64, bool) {
	if v.Err != nil || v.arity != 2 {
		return nil
	}
	ast := v.AST

	return func(x, y float64) (float64, bool) {
		z, err := expr.Eval(ast, map[string]float64{"x": x, "y": y})

		return z, err == nil
	}
}
