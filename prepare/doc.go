// Package prepare turns raw user text into a compiled, safe, evaluable
// expression — or a descriptive per-entry error.
//
// 🚀 The pipeline (one pass, no suspension points):
//
//	raw text ──► Normalize ──► classify (explicit / implicit / surface)
//	          ──► parse (expr) ──► validate (whitelist) ──► compile
//	          ──► ValidatedExpression { AST, evaluators, typeset, error }
//
// ✨ Classification rules (2D):
//   - no "="            ⇒ explicit y=f(x)
//   - one "=", one side textually "y" and the other side not referencing y
//     ⇒ explicit: the remaining side is re-prepared as f(x)
//   - one "=" otherwise ⇒ implicit: the zero contour of (left) − (right)
//   - two or more "="   ⇒ error: exactly one equals sign
//
// A 3D surface is declared as bare f(x,y); any "=" is itself an error.
//
// ✨ Normalization is purely textual and order-independent:
// trim, "**" → "^", "ln(" → "log(".
//
// ✨ Compilation semantics:
//   - The evaluator is compiled once per normalized text; sampling reuses it.
//   - Every evaluation failure (pole, domain edge, meaningfully complex
//     value) is a per-point miss, never an entry-level error.
//   - ValidatedExpression is immutable: text changes build a fresh one.
//     Invariant: AST and evaluators are non-nil iff Err is nil.
//
// ⚙️ Usage:
//
//	ve := prepare.Prepare2D("y = x^2")
//	if ve.Err != nil { ... } // surfaced verbatim to the user
//	f := ve.Func()           // func(x) (float64, bool) for the sampler
//
// Entries carry UUID identifiers (github.com/google/uuid); no module-level
// counters, no global state.
package prepare
