package transpile

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/plotf/expr"
)

// mode selects the per-target function table.
type mode int

const (
	mode2D mode = iota
	mode3D
)

// transpiler holds the bound-variable mapping for one pass.
type transpiler struct {
	mode mode
	vars map[string]string
}

// To2D renders n as a 2D axis-plot formula over the given bound variable,
// which maps to the target plot variable x.
//
// Trigonometric and inverse-trigonometric calls fail here: the target's
// 2D engine evaluates them in degrees, which would silently change the
// curve. Callers treat the failure as a signal to emit coordinates.
func To2D(n expr.Node, variable string) (string, error) {
	tr := &transpiler{mode: mode2D, vars: map[string]string{variable: "x"}}

	return tr.render(n)
}

// To3D renders n as a surface-plot formula over two bound variables,
// mapped to the target plot variables x and y. Trig survives via deg()
// argument wrappers; inverse trig results are scaled back to radians.
func To3D(n expr.Node, xVar, yVar string) (string, error) {
	tr := &transpiler{mode: mode3D, vars: map[string]string{xVar: "x", yVar: "y"}}

	return tr.render(n)
}

func (tr *transpiler) render(n expr.Node) (string, error) {
	switch v := n.(type) {
	case *expr.Const:
		return strconv.FormatFloat(v.Value, 'g', -1, 64), nil
	case *expr.Paren:
		return tr.render(v.X)
	case *expr.Symbol:
		return tr.symbol(v.Name)
	case *expr.Unary:
		return tr.unary(v)
	case *expr.Binary:
		return tr.binary(v)
	case *expr.Call:
		return tr.call(v)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedOperator, n)
	}
}

func (tr *transpiler) symbol(name string) (string, error) {
	if mapped, ok := tr.vars[name]; ok {
		return mapped, nil
	}
	switch name {
	case "pi":
		return "pi", nil
	case "e":
		return "exp(1)", nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedSymbol, name)
}

func (tr *transpiler) unary(v *expr.Unary) (string, error) {
	if v.Op != expr.OpNeg {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedOperator, v.Op)
	}
	inner, err := tr.render(v.X)
	if err != nil {
		return "", err
	}

	return "(-" + inner + ")", nil
}

func (tr *transpiler) binary(v *expr.Binary) (string, error) {
	l, err := tr.render(v.L)
	if err != nil {
		return "", err
	}
	r, err := tr.render(v.R)
	if err != nil {
		return "", err
	}
	switch v.Op {
	case expr.OpAdd:
		return "(" + l + " + " + r + ")", nil
	case expr.OpSub:
		return "(" + l + " - " + r + ")", nil
	case expr.OpMul:
		return "(" + l + " * " + r + ")", nil
	case expr.OpDiv:
		return "(" + l + " / " + r + ")", nil
	case expr.OpPow:
		return "pow(" + l + ", " + r + ")", nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedOperator, v.Op)
	}
}

func (tr *transpiler) call(v *expr.Call) (string, error) {
	if len(v.Args) != 1 {
		return "", fmt.Errorf("%w: %s takes %d", ErrBadArity, v.Name, len(v.Args))
	}
	arg, err := tr.render(v.Args[0])
	if err != nil {
		return "", err
	}

	switch v.Name {
	case "sqrt", "abs", "exp":
		return v.Name + "(" + arg + ")", nil
	case "log":
		return "ln(" + arg + ")", nil
	case "log10":
		return "(ln(" + arg + ")/ln(10))", nil
	}

	switch v.Name {
	case "sin", "cos", "tan":
		if tr.mode == mode2D {
			return "", fmt.Errorf("%w: %s evaluates in degrees on the 2D target", ErrUnsupportedFunction, v.Name)
		}

		return v.Name + "(deg(" + arg + "))", nil
	case "asin", "acos", "atan":
		if tr.mode == mode2D {
			return "", fmt.Errorf("%w: %s returns degrees on the 2D target", ErrUnsupportedFunction, v.Name)
		}

		return "(" + v.Name + "(" + arg + ")*pi/180)", nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFunction, v.Name)
}
