package transpile_test

import (
	"fmt"

	"github.com/katalvlaran/plotf/expr"
	"github.com/katalvlaran/plotf/transpile"
)

// Exponentiation has no ^ on the target; it becomes a two-argument pow.
func ExampleTo2D() {
	ast, err := expr.Parse("x^2 + 1")
	if err != nil {
		panic(err)
	}

	formula, err := transpile.To2D(ast, "x")
	if err != nil {
		panic(err)
	}
	fmt.Println(formula)
	// Output: (pow(x, 2) + 1)
}

// The 3D target evaluates trig in degrees, so radian arguments are
// wrapped explicitly.
func ExampleTo3D() {
	ast, err := expr.Parse("sin(x) * cos(y)")
	if err != nil {
		panic(err)
	}

	formula, err := transpile.To3D(ast, "x", "y")
	if err != nil {
		panic(err)
	}
	fmt.Println(formula)
	// Output: (sin(deg(x)) * cos(deg(y)))
}
