// Package expr: numeric evaluation of the AST.
//
// Evaluation runs in complex128 so that intermediate excursions off the real
// line (sqrt(-1)^2) do not poison otherwise-real results, then coerces back:
// a value counts as real iff it is finite and |imag| < ImagTolerance.
// Every failure is a typed error return — a caller's sampling loop treats it
// as a per-point miss, never as an expression-level fault.
package expr

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ImagTolerance is the largest imaginary magnitude still coerced to a real
// result. Values beyond it are meaningfully complex and rejected per point.
const ImagTolerance = 1e-10

// Sentinel errors for evaluation. All are per-point conditions.
var (
	// ErrUnknownFunction indicates a call to a function outside the table.
	ErrUnknownFunction = errors.New("expr: unknown function")

	// ErrBadArity indicates a call whose argument count is not one.
	ErrBadArity = errors.New("expr: function takes exactly one argument")

	// ErrUnboundSymbol indicates a symbol with no binding and no built-in value.
	ErrUnboundSymbol = errors.New("expr: unbound symbol")

	// ErrNotReal indicates a non-finite or meaningfully complex result.
	ErrNotReal = errors.New("expr: result is not a real number")
)

// Functions is the evaluable function table. It deliberately matches the
// validator whitelist: nothing outside this set can ever execute.
var Functions = map[string]func(complex128) complex128{
	"sin":   cmplx.Sin,
	"cos":   cmplx.Cos,
	"tan":   cmplx.Tan,
	"asin":  cmplx.Asin,
	"acos":  cmplx.Acos,
	"atan":  cmplx.Atan,
	"sqrt":  cmplx.Sqrt,
	"abs":   func(z complex128) complex128 { return complex(cmplx.Abs(z), 0) },
	"log":   cmplx.Log,
	"log10": func(z complex128) complex128 { return cmplx.Log(z) / complex(math.Ln10, 0) },
	"exp":   cmplx.Exp,
}

// Eval computes n under the given variable bindings and coerces the result
// to a real number.
//
// Errors:
//   - ErrUnboundSymbol, ErrUnknownFunction, ErrBadArity — structural misses.
//   - ErrNotReal — the value exists but is not representable as float64.
func Eval(n Node, vars map[string]float64) (float64, error) {
	z, err := evalC(n, vars)
	if err != nil {
		return 0, err
	}
	re, im := real(z), imag(z)
	if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
		return 0, ErrNotReal
	}
	if math.Abs(im) >= ImagTolerance {
		return 0, ErrNotReal
	}

	return re, nil
}

// evalC walks the tree in complex arithmetic.
func evalC(n Node, vars map[string]float64) (complex128, error) {
	switch t := n.(type) {
	case *Const:
		return complex(t.Value, 0), nil

	case *Symbol:
		// Built-in constants resolve first: bindings cannot shadow pi or e.
		switch t.Name {
		case "pi":
			return complex(math.Pi, 0), nil
		case "e":
			return complex(math.E, 0), nil
		}
		if v, ok := vars[t.Name]; ok {
			return complex(v, 0), nil
		}

		return 0, fmt.Errorf("%w: %q", ErrUnboundSymbol, t.Name)

	case *Unary:
		x, err := evalC(t.X, vars)
		if err != nil {
			return 0, err
		}

		return -x, nil

	case *Binary:
		l, err := evalC(t.L, vars)
		if err != nil {
			return 0, err
		}
		r, err := evalC(t.R, vars)
		if err != nil {
			return 0, err
		}
		switch t.Op {
		case OpAdd:
			return l + r, nil
		case OpSub:
			return l - r, nil
		case OpMul:
			return l * r, nil
		case OpDiv:
			return l / r, nil
		case OpPow:
			return pow(l, r), nil
		default:
			return 0, fmt.Errorf("%w: operator %q", ErrUnknownFunction, t.Op.String())
		}

	case *Call:
		fn, ok := Functions[t.Name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, t.Name)
		}
		if len(t.Args) != 1 {
			return 0, fmt.Errorf("%w: %q got %d", ErrBadArity, t.Name, len(t.Args))
		}
		arg, err := evalC(t.Args[0], vars)
		if err != nil {
			return 0, err
		}

		return fn(arg), nil

	case *Paren:
		return evalC(t.X, vars)

	default:
		return 0, fmt.Errorf("%w: unsupported node", ErrUnknownFunction)
	}
}

// pow keeps real-base integer exponents on the real line. cmplx.Pow of a
// negative real base accumulates an imaginary residue proportional to the
// magnitude (|b|^k·sin(kπ)), which for large k exceeds ImagTolerance and
// would spuriously reject x^11 at negative x.
func pow(b, e complex128) complex128 {
	if imag(b) == 0 && imag(e) == 0 {
		er := real(e)
		if er == math.Trunc(er) && math.Abs(er) < 1e15 {
			return complex(math.Pow(real(b), er), 0)
		}
		if real(b) >= 0 {
			return complex(math.Pow(real(b), er), 0)
		}
	}

	return cmplx.Pow(b, e)
}
