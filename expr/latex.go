// Package expr: LaTeX typesetting of the AST.
//
// The preview string a UI shows next to a validated entry. Rendering is
// structural: no simplification, no reordering, faithful to the source tree.
package expr

import "strconv"

func (c *Const) LaTeX() string {
	return strconv.FormatFloat(c.Value, 'g', -1, 64)
}

func (s *Symbol) LaTeX() string {
	switch s.Name {
	case "pi":
		return "\\pi"
	case "theta":
		return "\\theta"
	default:
		return s.Name
	}
}

func (u *Unary) LaTeX() string { return "-" + u.X.LaTeX() }

func (b *Binary) LaTeX() string {
	switch b.Op {
	case OpAdd:
		return b.L.LaTeX() + " + " + b.R.LaTeX()
	case OpSub:
		return b.L.LaTeX() + " - " + wrapAdditive(b.R)
	case OpMul:
		return wrapAdditive(b.L) + " \\cdot " + wrapAdditive(b.R)
	case OpDiv:
		return "\\frac{" + b.L.LaTeX() + "}{" + b.R.LaTeX() + "}"
	case OpPow:
		base := b.L.LaTeX()
		if needsParens(b.L) {
			base = "\\left(" + base + "\\right)"
		}

		return base + "^{" + b.R.LaTeX() + "}"
	default:
		return b.L.LaTeX() + " ? " + b.R.LaTeX()
	}
}

func (c *Call) LaTeX() string {
	if len(c.Args) != 1 {
		args := ""
		for i, a := range c.Args {
			if i > 0 {
				args += ", "
			}
			args += a.LaTeX()
		}

		return "\\operatorname{" + c.Name + "}\\left(" + args + "\\right)"
	}
	arg := c.Args[0].LaTeX()
	switch c.Name {
	case "sin", "cos", "tan", "exp", "log":
		name := c.Name
		if name == "log" {
			name = "ln"
		}

		return "\\" + name + "\\left(" + arg + "\\right)"
	case "asin":
		return "\\arcsin\\left(" + arg + "\\right)"
	case "acos":
		return "\\arccos\\left(" + arg + "\\right)"
	case "atan":
		return "\\arctan\\left(" + arg + "\\right)"
	case "sqrt":
		return "\\sqrt{" + arg + "}"
	case "abs":
		return "\\left|" + arg + "\\right|"
	case "log10":
		return "\\log_{10}\\left(" + arg + "\\right)"
	default:
		return "\\operatorname{" + c.Name + "}\\left(" + arg + "\\right)"
	}
}

func (p *Paren) LaTeX() string { return "\\left(" + p.X.LaTeX() + "\\right)" }

// wrapAdditive parenthesizes additive subtrees appearing where a tighter
// binding is displayed, e.g. a - (b + c) or (a + b)·c.
func wrapAdditive(n Node) string {
	if b, ok := n.(*Binary); ok && (b.Op == OpAdd || b.Op == OpSub) {
		return "\\left(" + n.LaTeX() + "\\right)"
	}

	return n.LaTeX()
}

// needsParens reports whether n must be wrapped when used as a power base.
func needsParens(n Node) bool {
	switch t := n.(type) {
	case *Binary:
		return true
	case *Unary:
		return true
	case *Const:
		return t.Value < 0
	default:
		return false
	}
}
