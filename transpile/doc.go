// Package transpile converts expression trees into PGFPlots formula
// strings, so an export document can carry the symbolic form instead of
// literal coordinate lists.
//
// 🚀 Two targets:
//
//	To2D — an axis plot over one variable. The bound variable maps to the
//	  plot variable x. Trigonometric calls are refused here: the target's
//	  2D math engine evaluates trig in degrees, so sin(x) would draw the
//	  wrong curve; callers fall back to sampled coordinates instead.
//	To3D — a surface plot over two variables, mapped to x and y. The 3D
//	  target accepts degree wrappers, so trig survives: direct calls wrap
//	  their argument in deg(...), inverse calls scale the result back to
//	  radians with *pi/180.
//
// ✨ Shared rules: constants print verbatim, pi stays pi, e becomes
// exp(1), `a^b` becomes pow(a,b), and +, -, *, / stay infix, fully
// parenthesized. Anything outside the supported surface fails with an
// error naming the offending construct; the transpiler never panics.
//
// ⚙️ Usage:
//
//	formula, err := transpile.To2D(ast, "x")
//	if err != nil {
//	    // fall back to numeric sampling
//	}
//
// Complexity: O(n) in tree size, single recursive pass.
package transpile
