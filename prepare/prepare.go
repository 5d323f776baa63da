package prepare

import (
	"strings"

	"github.com/katalvlaran/plotf/expr"
	"github.com/katalvlaran/plotf/validate"
)

// Normalize rewrites raw text into the parser's dialect: trim surrounding
// space, "**" → "^" (exponent spelling), "ln(" → "log(" (natural log
// spelling). The two rewrites touch disjoint characters, so their order
// does not matter.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "**", "^")
	s = strings.ReplaceAll(s, "ln(", "log(")

	return s
}

// Prepare2D classifies and compiles 2D text: explicit y=f(x) or the
// implicit zero contour g(x,y)=0.
//
// The returned value always has Text and Mode set; on failure Err carries
// the surfaced message and AST stays nil.
func Prepare2D(raw string) *ValidatedExpression {
	norm := Normalize(raw)
	parts := strings.Split(norm, "=")

	switch len(parts) {
	case 1:
		return prepareExplicit(norm)

	case 2:
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])
		if left == "" || right == "" {
			return &ValidatedExpression{Text: norm, Err: ErrEmptySide}
		}
		// Bound y-form: "y = f(x)" or "f(x) = y" solves out to explicit,
		// provided the remaining side does not itself reference y.
		if left == "y" && !referencesY(right) {
			return prepareExplicit(right)
		}
		if right == "y" && !referencesY(left) {
			return prepareExplicit(left)
		}

		return prepareImplicit(norm, left, right)

	default:
		return &ValidatedExpression{Text: norm, Err: ErrEquationCount}
	}
}

// Prepare3D compiles surface text z=f(x,y). Surfaces are declared as the
// bare right-hand side; an equals sign anywhere is a form error.
func Prepare3D(raw string) *ValidatedExpression {
	norm := Normalize(raw)
	if strings.Contains(norm, "=") {
		return &ValidatedExpression{Text: norm, Err: ErrEqualsInSurface}
	}

	ast, err := expr.Parse(norm)
	if err != nil {
		return &ValidatedExpression{Text: norm, Err: err}
	}
	if err = validate.Check(ast, validate.Allowed("x", "y")); err != nil {
		return &ValidatedExpression{Text: norm, Err: err}
	}

	return &ValidatedExpression{
		Text:    norm,
		Mode:    ModeExplicit,
		Typeset: ast.LaTeX(),
		AST:     ast,
		arity:   2,
	}
}

// prepareExplicit compiles a 1-variable function of x.
func prepareExplicit(text string) *ValidatedExpression {
	ast, err := expr.Parse(text)
	if err != nil {
		return &ValidatedExpression{Text: text, Err: err}
	}
	if err = validate.Check(ast, validate.Allowed("x")); err != nil {
		return &ValidatedExpression{Text: text, Err: err}
	}

	return &ValidatedExpression{
		Text:    text,
		Mode:    ModeExplicit,
		Typeset: ast.LaTeX(),
		AST:     ast,
		arity:   1,
	}
}

// prepareImplicit compiles the residual (left) − (right) as a 2-variable
// zero-contour function. Both sides are parsed separately so syntax errors
// point at the side the user typed, and the typeset preview keeps the
// equation shape.
func prepareImplicit(norm, left, right string) *ValidatedExpression {
	lAST, err := expr.Parse(left)
	if err != nil {
		return &ValidatedExpression{Text: norm, Err: err}
	}
	rAST, err := expr.Parse(right)
	if err != nil {
		return &ValidatedExpression{Text: norm, Err: err}
	}

	residual := &expr.Binary{
		Op: expr.OpSub,
		L:  &expr.Paren{X: lAST},
		R:  &expr.Paren{X: rAST},
	}
	if err = validate.Check(residual, validate.Allowed("x", "y")); err != nil {
		return &ValidatedExpression{Text: norm, Err: err}
	}

	return &ValidatedExpression{
		Text:    norm,
		Mode:    ModeImplicit,
		Typeset: lAST.LaTeX() + " = " + rAST.LaTeX(),
		AST:     residual,
		arity:   2,
	}
}

// referencesY reports whether the side's AST references the symbol y.
// Unparsable text conservatively counts as referencing, pushing the entry
// down the implicit path where the parse error is surfaced.
func referencesY(side string) bool {
	ast, err := expr.Parse(side)
	if err != nil {
		return true
	}

	return containsSymbol(ast, "y")
}

// containsSymbol walks n for a symbol reference outside function-name
// positions.
func containsSymbol(n expr.Node, name string) bool {
	switch t := n.(type) {
	case *expr.Symbol:
		return t.Name == name
	case *expr.Unary:
		return containsSymbol(t.X, name)
	case *expr.Binary:
		return containsSymbol(t.L, name) || containsSymbol(t.R, name)
	case *expr.Call:
		for _, a := range t.Args {
			if containsSymbol(a, name) {
				return true
			}
		}

		return false
	case *expr.Paren:
		return containsSymbol(t.X, name)
	default:
		return false
	}
}
