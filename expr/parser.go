// Package expr: Pratt parsing of the restricted grammar.
//
// Grammar (precedence climbing):
//
//	expr    = term { ("+"|"-") term }
//	term    = factor { ("*"|"/") factor }
//	factor  = power
//	power   = unary [ "^" power ]           // right-associative
//	unary   = "-" unary | primary
//	primary = number | ident | ident "(" expr {"," expr} ")" | "(" expr ")"
//
// Implicit multiplication ("2x") is intentionally not part of the grammar;
// the parser reports the stray token instead of guessing.
package expr

import "fmt"

// Binding powers, low to high. Unary minus binds tighter than "*" but looser
// than "^", so -x^2 parses as -(x^2) while -x*y parses as (-x)*y.
const (
	precAdd = 1
	precMul = 2
	precPow = 3
)

// Parse turns source text into an AST.
//
// Errors:
//   - ErrSyntax (wrapped) — naming the offending token and its position.
func Parse(src string) (Node, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	n, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		t := p.peek()

		return nil, fmt.Errorf("%w: unexpected %q (position %d)", ErrSyntax, t.text, t.pos)
	}

	return n, nil
}

type parser struct {
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if p.i < len(p.toks)-1 {
		p.i++
	}

	return t
}

func (p *parser) atEOF() bool { return p.peek().kind == tokEOF }

// binaryOp maps an infix token to its operator and precedence.
func binaryOp(k tokKind) (Op, int, bool) {
	switch k {
	case tokPlus:
		return OpAdd, precAdd, true
	case tokMinus:
		return OpSub, precAdd, true
	case tokStar:
		return OpMul, precMul, true
	case tokSlash:
		return OpDiv, precMul, true
	case tokCaret:
		return OpPow, precPow, true
	default:
		return 0, 0, false
	}
}

// parseExpr parses while the next infix operator binds at least as tight as
// minPrec. "^" recurses at its own level for right associativity.
func (p *parser) parseExpr(minPrec int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, prec, ok := binaryOp(p.peek().kind)
		if !ok || prec < minPrec {
			return left, nil
		}
		p.next()
		nextMin := prec + 1
		if op == OpPow {
			nextMin = prec
		}
		right, err := p.parseExpr(nextMin)
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, L: left, R: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().kind == tokMinus {
		p.next()
		// The operand may itself be a power: -x^2 ⇒ -(x^2).
		x, err := p.parseExpr(precPow)
		if err != nil {
			return nil, err
		}

		return &Unary{Op: OpNeg, X: x}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return &Const{Value: t.num}, nil

	case tokIdent:
		if p.peek().kind != tokLParen {
			return &Symbol{Name: t.text}, nil
		}
		p.next() // consume '('
		var args []Node
		if p.peek().kind != tokRParen {
			for {
				a, err := p.parseExpr(0)
				if err != nil {
					return nil, err
				}
				args = append(args, a)
				if p.peek().kind != tokComma {
					break
				}
				p.next()
			}
		}
		if close := p.next(); close.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' to close call %q (position %d)", ErrSyntax, t.text, close.pos)
		}

		return &Call{Name: t.text, Args: args}, nil

	case tokLParen:
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if close := p.next(); close.kind != tokRParen {
			return nil, fmt.Errorf("%w: expected ')' (position %d)", ErrSyntax, close.pos)
		}

		return &Paren{X: inner}, nil

	case tokEOF:
		return nil, fmt.Errorf("%w: unexpected end of expression (position %d)", ErrSyntax, t.pos)

	default:
		return nil, fmt.Errorf("%w: unexpected %q (position %d)", ErrSyntax, t.text, t.pos)
	}
}
