// Package expr: the closed AST variant set.
//
// This file declares Node and its five concrete kinds plus Paren. The set is
// deliberately closed: the unexported marker method keeps external packages
// from adding kinds, so consumers may switch exhaustively.
package expr

import (
	"strconv"
	"strings"
)

// Op identifies a unary or binary arithmetic operator.
type Op int

const (
	// OpAdd is binary addition.
	OpAdd Op = iota
	// OpSub is binary subtraction.
	OpSub
	// OpMul is binary multiplication.
	OpMul
	// OpDiv is binary division.
	OpDiv
	// OpPow is binary exponentiation (right-associative).
	OpPow
	// OpNeg is unary negation.
	OpNeg
)

// String returns the operator's source form.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

// Node is one expression-tree node. The concrete kinds are exactly
// *Const, *Symbol, *Unary, *Binary, *Call and *Paren.
type Node interface {
	// String renders the node back to parser-accepted source text.
	String() string

	// LaTeX renders the node as a typeset string (see latex.go).
	LaTeX() string

	node()
}

// Const is a numeric literal.
type Const struct {
	Value float64
}

// Symbol is a named reference: a plot variable (x, y) or a named constant
// (pi, e). Resolution happens at evaluation time.
type Symbol struct {
	Name string
}

// Unary applies OpNeg to its operand.
type Unary struct {
	Op Op
	X  Node
}

// Binary applies one of OpAdd..OpPow to two operands.
type Binary struct {
	Op   Op
	L, R Node
}

// Call is a function application, e.g. sin(x). Args holds one node per
// comma-separated argument; arity is checked by the evaluator and the
// transpiler, not by the parser.
type Call struct {
	Name string
	Args []Node
}

// Paren wraps an explicitly parenthesized subexpression. It carries no
// semantics of its own; it is kept so String and LaTeX round-trip the
// source faithfully.
type Paren struct {
	X Node
}

func (*Const) node()  {}
func (*Symbol) node() {}
func (*Unary) node()  {}
func (*Binary) node() {}
func (*Call) node()   {}
func (*Paren) node()  {}

func (c *Const) String() string {
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

func (s *Symbol) String() string { return s.Name }

func (u *Unary) String() string { return "-" + u.X.String() }

func (b *Binary) String() string {
	return "(" + b.L.String() + " " + b.Op.String() + " " + b.R.String() + ")"
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}

	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (p *Paren) String() string { return "(" + p.X.String() + ")" }
