package transpile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotf/expr"
	"github.com/katalvlaran/plotf/transpile"
)

func mustParse(t *testing.T, src string) expr.Node {
	t.Helper()
	n, err := expr.Parse(src)
	require.NoError(t, err, "parse %q", src)

	return n
}

func TestTo2D_Arithmetic(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x", "x"},
		{"2", "2"},
		{"x + 1", "(x + 1)"},
		{"x - 1", "(x - 1)"},
		{"2*x", "(2 * x)"},
		{"x/2", "(x / 2)"},
		{"x^2", "pow(x, 2)"},
		{"-x", "(-x)"},
		{"-x^2", "(-pow(x, 2))"},
		{"(x+1)^2", "pow((x + 1), 2)"},
		{"pi*x", "(pi * x)"},
		{"e^x", "pow(exp(1), x)"},
		{"0.5*x", "(0.5 * x)"},
	}
	for _, tc := range cases {
		got, err := transpile.To2D(mustParse(t, tc.src), "x")
		require.NoError(t, err, tc.src)
		require.Equal(t, tc.want, got, tc.src)
	}
}

func TestTo2D_Functions(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"sqrt(x)", "sqrt(x)"},
		{"abs(x)", "abs(x)"},
		{"exp(x)", "exp(x)"},
		{"log(x)", "ln(x)"},
		{"log10(x)", "(ln(x)/ln(10))"},
	}
	for _, tc := range cases {
		got, err := transpile.To2D(mustParse(t, tc.src), "x")
		require.NoError(t, err, tc.src)
		require.Equal(t, tc.want, got, tc.src)
	}
}

func TestTo2D_TrigRefused(t *testing.T) {
	for _, fn := range []string{"sin", "cos", "tan", "asin", "acos", "atan"} {
		_, err := transpile.To2D(mustParse(t, fn+"(x)"), "x")
		require.ErrorIs(t, err, transpile.ErrUnsupportedFunction, fn)
		require.Contains(t, err.Error(), fn)
	}
}

func TestTo2D_VariableMapping(t *testing.T) {
	// The bound variable maps to the target's plot variable x.
	got, err := transpile.To2D(mustParse(t, "t^2 + 1"), "t")
	require.NoError(t, err)
	require.Equal(t, "(pow(x, 2) + 1)", got)

	// An unbound symbol fails and is named.
	_, err = transpile.To2D(mustParse(t, "x + a"), "x")
	require.ErrorIs(t, err, transpile.ErrUnsupportedSymbol)
	require.Contains(t, err.Error(), "a")
}

func TestTo3D_Trig(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"sin(x)", "sin(deg(x))"},
		{"cos(x*y)", "cos(deg((x * y)))"},
		{"tan(y)", "tan(deg(y))"},
		{"asin(x)", "(asin(x)*pi/180)"},
		{"acos(x)", "(acos(x)*pi/180)"},
		{"atan(y)", "(atan(y)*pi/180)"},
		{"log10(x) + y", "((ln(x)/ln(10)) + y)"},
		{"x^2 + y^2", "(pow(x, 2) + pow(y, 2))"},
	}
	for _, tc := range cases {
		got, err := transpile.To3D(mustParse(t, tc.src), "x", "y")
		require.NoError(t, err, tc.src)
		require.Equal(t, tc.want, got, tc.src)
	}
}

func TestTo3D_VariableMapping(t *testing.T) {
	got, err := transpile.To3D(mustParse(t, "u*v"), "u", "v")
	require.NoError(t, err)
	require.Equal(t, "(x * y)", got)
}

func TestTranspile_Failures(t *testing.T) {
	// Unknown function, named in the error.
	_, err := transpile.To2D(mustParse(t, "sinh(x)"), "x")
	require.ErrorIs(t, err, transpile.ErrUnsupportedFunction)
	require.Contains(t, err.Error(), "sinh")

	// Wrong arity.
	_, err = transpile.To3D(&expr.Call{
		Name: "sqrt",
		Args: []expr.Node{&expr.Symbol{Name: "x"}, &expr.Symbol{Name: "y"}},
	}, "x", "y")
	require.ErrorIs(t, err, transpile.ErrBadArity)

	// Failure deep inside a subtree still surfaces.
	_, err = transpile.To2D(mustParse(t, "1 + sin(x)/2"), "x")
	require.ErrorIs(t, err, transpile.ErrUnsupportedFunction)
}
