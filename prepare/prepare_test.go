package prepare_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotf/core"
	"github.com/katalvlaran/plotf/expr"
	"github.com/katalvlaran/plotf/prepare"
	"github.com/katalvlaran/plotf/validate"
)

// TestNormalize covers the two textual rewrite rules and trimming.
func TestNormalize(t *testing.T) {
	require.Equal(t, prepare.Normalize("x^2"), prepare.Normalize("x**2"))
	require.Equal(t, prepare.Normalize("log(x)"), prepare.Normalize("ln(x)"))
	require.Equal(t, "x + 1", prepare.Normalize("  x + 1  "))
	require.Equal(t, "log(x)^2", prepare.Normalize("ln(x)**2"))
}

// TestPrepare2D_Explicit: no equals sign, and the bound y-forms, all behave
// like preparing the bare function.
func TestPrepare2D_Explicit(t *testing.T) {
	bare := prepare.Prepare2D("x^2")
	bound := prepare.Prepare2D("y = x^2")
	reversed := prepare.Prepare2D("x^2 = y")

	for name, ve := range map[string]*prepare.ValidatedExpression{
		"bare": bare, "bound": bound, "reversed": reversed,
	} {
		require.NoError(t, ve.Err, name)
		require.Equal(t, prepare.ModeExplicit, ve.Mode, name)
		f := ve.Func()
		require.NotNil(t, f, name)
		got, ok := f(3)
		require.True(t, ok, name)
		require.Equal(t, 9.0, got, name)
		require.Nil(t, ve.Func2(), name)
	}

	// All three compile to the same function text and typeset.
	require.Equal(t, bare.Typeset, bound.Typeset)
	require.Equal(t, bare.Typeset, reversed.Typeset)
}

// TestPrepare2D_Implicit: one equals sign, neither side a bare y.
func TestPrepare2D_Implicit(t *testing.T) {
	ve := prepare.Prepare2D("x^2 + y^2 = 1")
	require.NoError(t, ve.Err)
	require.Equal(t, prepare.ModeImplicit, ve.Mode)
	require.Nil(t, ve.Func(), "implicit entries carry no arity-1 evaluator")

	g := ve.Func2()
	require.NotNil(t, g)

	// On the unit circle the residual vanishes.
	v, ok := g(1, 0)
	require.True(t, ok)
	require.InDelta(t, 0.0, v, 1e-12)

	v, ok = g(1, 1)
	require.True(t, ok)
	require.InDelta(t, 1.0, v, 1e-12)
}

// TestPrepare2D_YBothSides: "y = y + 1" references y on the remaining side,
// so it is implicit, not explicit.
func TestPrepare2D_YBothSides(t *testing.T) {
	ve := prepare.Prepare2D("y = y + 1")
	require.NoError(t, ve.Err)
	require.Equal(t, prepare.ModeImplicit, ve.Mode)
}

// TestPrepare2D_FormErrors: equals-sign counting and empty sides.
func TestPrepare2D_FormErrors(t *testing.T) {
	ve := prepare.Prepare2D("x=1=2")
	require.ErrorIs(t, ve.Err, prepare.ErrEquationCount)
	require.Nil(t, ve.AST)

	ve = prepare.Prepare2D("x^2 =")
	require.ErrorIs(t, ve.Err, prepare.ErrEmptySide)

	ve = prepare.Prepare2D("= x")
	require.ErrorIs(t, ve.Err, prepare.ErrEmptySide)
}

// TestPrepare2D_SurfacedErrors: syntax and validation failures block the
// entry with a descriptive error and nil AST.
func TestPrepare2D_SurfacedErrors(t *testing.T) {
	ve := prepare.Prepare2D("x +* 2")
	require.ErrorIs(t, ve.Err, expr.ErrSyntax)
	require.Nil(t, ve.AST)
	require.Nil(t, ve.Func())

	ve = prepare.Prepare2D("system(x)")
	require.ErrorIs(t, ve.Err, validate.ErrFunction)

	ve = prepare.Prepare2D("x + q")
	require.ErrorIs(t, ve.Err, validate.ErrSymbol)
}

// TestPrepare2D_VerticalLine: "x=1" has one equals sign and no bare y side,
// so it is a legitimate implicit contour (a vertical line).
func TestPrepare2D_VerticalLine(t *testing.T) {
	ve := prepare.Prepare2D("x=1")
	require.NoError(t, ve.Err)
	require.Equal(t, prepare.ModeImplicit, ve.Mode)

	g := ve.Func2()
	require.NotNil(t, g)
	v, ok := g(1, 5)
	require.True(t, ok)
	require.InDelta(t, 0.0, v, 1e-12)
}

// TestPrepare3D rejects equations and compiles f(x,y).
func TestPrepare3D(t *testing.T) {
	ve := prepare.Prepare3D("sin(x) * cos(y)")
	require.NoError(t, ve.Err)
	g := ve.Func2()
	require.NotNil(t, g)
	v, ok := g(0, 0)
	require.True(t, ok)
	require.Equal(t, 0.0, v)

	ve = prepare.Prepare3D("z = x + y")
	require.ErrorIs(t, ve.Err, prepare.ErrEqualsInSurface)
}

// TestPrepare_Idempotent: preparing the same text twice yields structurally
// equal results.
func TestPrepare_Idempotent(t *testing.T) {
	a := prepare.Prepare2D("y = sin(x)/x")
	b := prepare.Prepare2D("y = sin(x)/x")

	require.Equal(t, a.Text, b.Text)
	require.Equal(t, a.Mode, b.Mode)
	require.Equal(t, a.Typeset, b.Typeset)
	require.Equal(t, a.Err == nil, b.Err == nil)
	require.Equal(t, a.AST.String(), b.AST.String())
}

// TestPerPointMiss: the compiled evaluator reports misses, never panics.
func TestPerPointMiss(t *testing.T) {
	f := prepare.Prepare2D("1/(x - 1)").Func()
	require.NotNil(t, f)

	_, ok := f(1)
	require.False(t, ok)

	y, ok := f(2)
	require.True(t, ok)
	require.Equal(t, 1.0, y)
}

// TestParseDomain fallback and coercion rules.
func TestParseDomain(t *testing.T) {
	vp := core.Range{Min: -10, Max: 10}

	require.Equal(t, vp, prepare.ParseDomain("", "", vp))
	require.Equal(t, vp, prepare.ParseDomain("abc", "1", vp))
	require.Equal(t, core.Range{Min: 0, Max: 2}, prepare.ParseDomain("0", "2", vp))

	coerced := prepare.ParseDomain("5", "1", vp)
	require.Equal(t, 1.0, coerced.Min)
	require.Equal(t, 5.0, coerced.Max)

	deg := prepare.ParseDomain("2", "2", vp)
	require.Equal(t, 2.0, deg.Min)
	require.InDelta(t, 2.0+1e-6, deg.Max, 1e-12)
}

// TestEffectiveDomain intersects declared bounds with the viewport axis.
func TestEffectiveDomain(t *testing.T) {
	e := prepare.NewEntry("x^2")
	axis := core.Range{Min: -10, Max: 10}

	require.Equal(t, axis, prepare.EffectiveDomain(e, axis))

	e.DomainMin, e.DomainMax = "0", "20"
	require.Equal(t, core.Range{Min: 0, Max: 10}, prepare.EffectiveDomain(e, axis))

	// Entirely outside the viewport: kept as declared.
	e.DomainMin, e.DomainMax = "15", "20"
	require.Equal(t, core.Range{Min: 15, Max: 20}, prepare.EffectiveDomain(e, axis))
}

// TestNewEntry_UniqueIDs: uuid identifiers, no shared counter.
func TestNewEntry_UniqueIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		e := prepare.NewEntry("x")
		require.NotEmpty(t, e.ID)
		_, dup := seen[e.ID]
		require.False(t, dup, "duplicate entry id %s", e.ID)
		seen[e.ID] = struct{}{}
	}
}
