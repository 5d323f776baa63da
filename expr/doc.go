// Package expr owns the expression layer of plotf: a closed AST, a strict
// lexer/parser, a complex-aware numeric evaluator, and LaTeX typesetting.
//
// 🚀 What is expr?
//
//	The foundation every other package stands on:
//	  • A tagged-variant AST — exactly {Const, Symbol, Unary, Binary, Call,
//	    Paren}, nothing else can exist, so validation and transpilation are
//	    exhaustive switches rather than open-ended type probing.
//	  • A Pratt parser for the restricted grammar: numbers, identifiers,
//	    + − * / ^ (right-associative), unary minus, parentheses, and
//	    comma-separated call arguments. Assignment (=), lists ([1,2]) and
//	    indexing (x[0]) are rejected at the token level with a named error.
//	  • Evaluation in complex128: intermediate values may briefly leave the
//	    real line (sqrt(-1)^2), and a result is accepted as real only when
//	    finite with |imaginary| < 1e-10. Anything else is a per-point error,
//	    never a panic — sampling loops simply skip the point.
//
// ✨ Key rules:
//   - log is the natural logarithm; log10 is decimal (ln is normalized to
//     log before parsing, by the prepare package).
//   - pi and e parse as ordinary symbols and are resolved by the evaluator;
//     bindings may not shadow them.
//   - Integer powers of negative bases are computed on the real line, so
//     x^3 stays exact for x < 0 instead of drifting off the real axis.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/plotf/expr"
//
//	node, err := expr.Parse("x^2 + sin(x)")
//	if err != nil { ... }
//	y, err := expr.Eval(node, map[string]float64{"x": 0.5})
//
// Complexity: parsing O(len(text)), evaluation O(nodes) per point.
package expr
