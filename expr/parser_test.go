package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plotf/expr"
)

// TestParse_Precedence verifies operator binding and associativity through
// the round-trip String rendering (fully parenthesized).
func TestParse_Precedence(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"AddMul", "1 + 2*x", "(1 + (2 * x))"},
		{"MulDivLeft", "6/2*3", "((6 / 2) * 3)"},
		{"PowRight", "2^3^2", "(2 ^ (3 ^ 2))"},
		{"UnaryPow", "-x^2", "-(x ^ 2)"},
		{"UnaryMul", "-x*y", "(-x * y)"},
		{"Call", "sin(x + 1)", "sin((x + 1))"},
		{"Paren", "(x + 1)*2", "((x + 1) * 2)"},
		{"Scientific", "1.5e2 + x", "(150 + x)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := expr.Parse(tc.src)
			require.NoError(t, err)
			require.Equal(t, tc.want, n.String())
		})
	}
}

// TestParse_RejectsStructuralTokens verifies assignment, lists and indexing
// never produce an AST.
func TestParse_RejectsStructuralTokens(t *testing.T) {
	for _, src := range []string{"x=1", "[1,2]", "x[0]", "a = b = c", "x[1+2]"} {
		t.Run(src, func(t *testing.T) {
			_, err := expr.Parse(src)
			require.ErrorIs(t, err, expr.ErrSyntax)
		})
	}
}

// TestParse_Malformed covers truncated and stray-token inputs.
func TestParse_Malformed(t *testing.T) {
	for _, src := range []string{"", "1 +", "sin(", "sin(x", ")x", "1 2", "2x", "x & y", "..5"} {
		t.Run(src, func(t *testing.T) {
			_, err := expr.Parse(src)
			require.ErrorIs(t, err, expr.ErrSyntax)
		})
	}
}

// TestParse_CallArity keeps multi-argument calls parseable; arity is a
// later-stage concern (evaluator and transpiler reject it there).
func TestParse_CallArity(t *testing.T) {
	n, err := expr.Parse("log(x, 2)")
	require.NoError(t, err)
	call, ok := n.(*expr.Call)
	require.True(t, ok)
	require.Len(t, call.Args, 2)
}

// TestParse_ExponentBoundary: "2e" is the number 2 followed by symbol e,
// which the strict grammar (no implicit multiplication) rejects.
func TestParse_ExponentBoundary(t *testing.T) {
	_, err := expr.Parse("2e")
	require.ErrorIs(t, err, expr.ErrSyntax)

	n, err := expr.Parse("2e3")
	require.NoError(t, err)
	c, ok := n.(*expr.Const)
	require.True(t, ok)
	require.Equal(t, 2000.0, c.Value)
}
