package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotf/expr"
	"github.com/katalvlaran/plotf/validate"
)

func parse(t *testing.T, src string) expr.Node {
	t.Helper()
	n, err := expr.Parse(src)
	require.NoError(t, err)

	return n
}

// TestCheck_AllowsArithmeticSubset: constants, allowed symbols, operators,
// parentheses and whitelisted calls all pass.
func TestCheck_AllowsArithmeticSubset(t *testing.T) {
	allowed := validate.Allowed("x", "y")
	for _, src := range []string{
		"1.5",
		"x + y",
		"-x^2 * (y - 1)",
		"sin(x) + cos(y)",
		"sqrt(abs(x))",
		"log(x) / log10(x)",
		"exp(pi * e)",
		"atan(asin(acos(tan(x))))",
	} {
		t.Run(src, func(t *testing.T) {
			require.NoError(t, validate.Check(parse(t, src), allowed))
		})
	}
}

// TestCheck_RejectsUnknownFunction names the function in the error.
func TestCheck_RejectsUnknownFunction(t *testing.T) {
	err := validate.Check(parse(t, "sinh(x)"), validate.Allowed("x"))
	require.ErrorIs(t, err, validate.ErrFunction)
	require.Contains(t, err.Error(), "sinh")
}

// TestCheck_RejectsUnknownSymbol names the symbol in the error.
func TestCheck_RejectsUnknownSymbol(t *testing.T) {
	err := validate.Check(parse(t, "x + t"), validate.Allowed("x"))
	require.ErrorIs(t, err, validate.ErrSymbol)
	require.Contains(t, err.Error(), "t")
}

// TestCheck_ShortCircuit stops at the first violation, left to right.
func TestCheck_ShortCircuit(t *testing.T) {
	err := validate.Check(parse(t, "bad1(x) + bad2(x)"), validate.Allowed("x"))
	require.ErrorIs(t, err, validate.ErrFunction)
	require.True(t, strings.Contains(err.Error(), "bad1"), "first violation must win: %v", err)
	require.False(t, strings.Contains(err.Error(), "bad2"))
}

// TestCheck_FunctionNamePositionExempt: a whitelisted call name is not
// treated as a symbol reference, while the same name outside a call is.
func TestCheck_FunctionNamePositionExempt(t *testing.T) {
	allowed := validate.Allowed("x")

	require.NoError(t, validate.Check(parse(t, "sin(x)"), allowed))

	err := validate.Check(parse(t, "sin + x"), allowed)
	require.ErrorIs(t, err, validate.ErrSymbol)
	require.Contains(t, err.Error(), "sin")
}

// TestCheck_PiAndEAlwaysAllowed regardless of declared variables.
func TestCheck_PiAndEAlwaysAllowed(t *testing.T) {
	require.NoError(t, validate.Check(parse(t, "pi * e"), validate.Allowed()))
}
