// Package validate is plotf's hard security boundary: a whitelist walk over
// a parsed AST that decides whether an expression may ever be compiled.
//
// 🚀 What does it guard?
//
//	The evaluator must never execute anything beyond pure numeric
//	arithmetic over the declared variables. validate enforces that:
//	  • node kinds     — only constant, symbol, unary/binary arithmetic,
//	                     parenthesis, and single-name function calls
//	  • function names — the fixed whitelist
//	                     {sin cos tan asin acos atan sqrt abs log log10 exp}
//	  • symbol names   — only the caller-declared allowed set
//	                     (plot variables plus pi and e)
//
// ✨ Behavior:
//   - Short-circuit: traversal stops at the first violation.
//   - Descriptive: every rejection names the offending construct, so the
//     error can be surfaced verbatim as a per-entry message.
//   - Side-effect free and deterministic.
//
// Because the expr AST is a closed variant set, the walk is an exhaustive
// type switch — a node kind outside the set is unrepresentable, and any
// future addition fails closed through the default case.
//
// ⚙️ Usage:
//
//	allowed := validate.Allowed("x", "y")
//	if err := validate.Check(node, allowed); err != nil {
//	    // surface err.Error() as the entry's error string
//	}
package validate
