// Package transpile: sentinel errors.
package transpile

import "errors"

// Sentinel errors; every failure wraps exactly one of them and names the
// construct that could not be translated.
var (
	// ErrUnsupportedSymbol indicates a symbol with no target mapping.
	ErrUnsupportedSymbol = errors.New("transpile: unsupported symbol")

	// ErrUnsupportedFunction indicates a call the target cannot express.
	ErrUnsupportedFunction = errors.New("transpile: unsupported function")

	// ErrUnsupportedOperator indicates an operator with no target form.
	ErrUnsupportedOperator = errors.New("transpile: unsupported operator")

	// ErrBadArity indicates a call with other than one argument.
	ErrBadArity = errors.New("transpile: function takes exactly one argument")
)
