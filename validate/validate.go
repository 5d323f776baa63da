package validate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/plotf/expr"
)

// Sentinel errors for validation failures. Each is wrapped with the name of
// the offending construct before being returned.
var (
	// ErrFunction indicates a call to a function outside the whitelist.
	ErrFunction = errors.New("validate: function is not allowed")

	// ErrSymbol indicates a symbol outside the allowed set.
	ErrSymbol = errors.New("validate: symbol is not allowed")

	// ErrNode indicates an AST node kind outside the arithmetic subset.
	ErrNode = errors.New("validate: construct is not allowed")
)

// functionWhitelist is the fixed set of callable functions. It must stay in
// lockstep with expr.Functions: a name listed here and missing there would
// validate but never evaluate.
var functionWhitelist = map[string]struct{}{
	"sin": {}, "cos": {}, "tan": {},
	"asin": {}, "acos": {}, "atan": {},
	"sqrt": {}, "abs": {},
	"log": {}, "log10": {}, "exp": {},
}

// Allowed builds an allowed-symbol set from the given variable names,
// always including the named constants pi and e.
func Allowed(vars ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(vars)+2)
	set["pi"] = struct{}{}
	set["e"] = struct{}{}
	for _, v := range vars {
		set[v] = struct{}{}
	}

	return set
}

// Check walks n and returns nil iff every node is a constant, an allowed
// symbol, a unary/binary arithmetic operator, a parenthesis, or a
// whitelisted function call. The first violation stops the walk.
//
// Errors:
//   - ErrFunction, ErrSymbol, ErrNode — wrapped with the construct's name.
func Check(n expr.Node, allowed map[string]struct{}) error {
	switch t := n.(type) {
	case *expr.Const:
		return nil

	case *expr.Symbol:
		if _, ok := allowed[t.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrSymbol, t.Name)
		}

		return nil

	case *expr.Unary:
		return Check(t.X, allowed)

	case *expr.Binary:
		if err := Check(t.L, allowed); err != nil {
			return err
		}

		return Check(t.R, allowed)

	case *expr.Call:
		// The function-name position is exempt from the symbol rule; the
		// name is checked against the whitelist instead.
		if _, ok := functionWhitelist[t.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrFunction, t.Name)
		}
		for _, a := range t.Args {
			if err := Check(a, allowed); err != nil {
				return err
			}
		}

		return nil

	case *expr.Paren:
		return Check(t.X, allowed)

	default:
		return fmt.Errorf("%w: %T", ErrNode, n)
	}
}
