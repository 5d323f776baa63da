package expr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotf/expr"
)

func mustParse(t *testing.T, src string) expr.Node {
	t.Helper()
	n, err := expr.Parse(src)
	require.NoError(t, err)

	return n
}

// TestEval_Basics covers arithmetic, built-in constants, and functions.
func TestEval_Basics(t *testing.T) {
	x := map[string]float64{"x": 2}
	cases := []struct {
		src  string
		want float64
	}{
		{"x^2 + 1", 5},
		{"2*x - 3", 1},
		{"x/4", 0.5},
		{"-x^2", -4},
		{"sqrt(x^2)", 2},
		{"abs(-x)", 2},
		{"exp(0)", 1},
		{"log(e)", 1},
		{"log10(100)", 2},
		{"sin(pi)", 0},
		{"cos(0)", 1},
		{"atan(0)", 0},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := expr.Eval(mustParse(t, tc.src), x)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

// TestEval_ComplexCoercion: transiently complex values collapse back to the
// real line; meaningfully complex ones are rejected per point.
func TestEval_ComplexCoercion(t *testing.T) {
	got, err := expr.Eval(mustParse(t, "sqrt(-1)^2"), nil)
	require.NoError(t, err)
	require.InDelta(t, -1.0, got, 1e-9)

	_, err = expr.Eval(mustParse(t, "sqrt(-1)"), nil)
	require.ErrorIs(t, err, expr.ErrNotReal)
}

// TestEval_NegativeBaseIntegerPower stays exact on the real line even for
// high odd exponents, where principal complex powers would drift.
func TestEval_NegativeBaseIntegerPower(t *testing.T) {
	got, err := expr.Eval(mustParse(t, "x^11"), map[string]float64{"x": -10})
	require.NoError(t, err)
	require.Equal(t, -1e11, got)

	// Fractional power of a negative base has no real value.
	_, err = expr.Eval(mustParse(t, "x^0.5"), map[string]float64{"x": -4})
	require.ErrorIs(t, err, expr.ErrNotReal)
}

// TestEval_PerPointMisses: poles and domain edges yield errors, not panics.
func TestEval_PerPointMisses(t *testing.T) {
	pole := mustParse(t, "1/(x - 1)")
	_, err := expr.Eval(pole, map[string]float64{"x": 1})
	require.ErrorIs(t, err, expr.ErrNotReal)

	got, err := expr.Eval(pole, map[string]float64{"x": 3})
	require.NoError(t, err)
	require.InDelta(t, 0.5, got, 1e-12)

	_, err = expr.Eval(mustParse(t, "log(x)"), map[string]float64{"x": 0})
	require.ErrorIs(t, err, expr.ErrNotReal)
}

// TestEval_StructuralErrors names unknown functions, arity, unbound symbols.
func TestEval_StructuralErrors(t *testing.T) {
	_, err := expr.Eval(mustParse(t, "foo(1)"), nil)
	require.ErrorIs(t, err, expr.ErrUnknownFunction)

	_, err = expr.Eval(mustParse(t, "sin(1, 2)"), nil)
	require.ErrorIs(t, err, expr.ErrBadArity)

	_, err = expr.Eval(mustParse(t, "q + 1"), nil)
	require.ErrorIs(t, err, expr.ErrUnboundSymbol)
}

// TestEval_BindingsShadowNothing: pi and e resolve as built-ins even when a
// binding of the same name is present.
func TestEval_BindingsShadowNothing(t *testing.T) {
	got, err := expr.Eval(mustParse(t, "pi"), map[string]float64{"pi": 3})
	require.NoError(t, err)
	require.Equal(t, math.Pi, got)

	got, err = expr.Eval(mustParse(t, "e"), nil)
	require.NoError(t, err)
	require.Equal(t, math.E, got)
}
