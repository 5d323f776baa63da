// Package expr: tokenization of the restricted expression grammar.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrSyntax indicates text that does not belong to the restricted grammar.
// It wraps a description naming the offending token and its position.
var ErrSyntax = errors.New("expr: syntax error")

// tokKind enumerates lexical token categories.
type tokKind int

const (
	tokEOF tokKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokComma
)

// token is one lexical unit with its source position (byte offset).
type token struct {
	kind tokKind
	text string
	num  float64
	pos  int
}

// lex splits src into tokens. Structural punctuation outside the grammar
// ('=', '[', ']', '{', …) is a hard error naming the character: assignment,
// lists and indexing must never reach the parser.
func lex(src string) ([]token, error) {
	var toks []token
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r >= '0' && r <= '9' || r == '.':
			num, width, err := lexNumber(runes[i:], i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokNumber, num: num, text: string(runes[i : i+width]), pos: i})
			i += width
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			toks = append(toks, token{kind: tokIdent, text: string(runes[start:i]), pos: start})
		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case r == '*':
			toks = append(toks, token{kind: tokStar, text: "*", pos: i})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
			i++
		case r == '^':
			toks = append(toks, token{kind: tokCaret, text: "^", pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case r == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		case r == '=':
			return nil, fmt.Errorf("%w: assignment '=' is not an expression (position %d)", ErrSyntax, i)
		case r == '[' || r == ']':
			return nil, fmt.Errorf("%w: lists and indexing '%c' are not supported (position %d)", ErrSyntax, r, i)
		default:
			return nil, fmt.Errorf("%w: unexpected character %q (position %d)", ErrSyntax, r, i)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(runes)})

	return toks, nil
}

// lexNumber scans a decimal literal with optional fraction and exponent.
// The 'e'/'E' is consumed as an exponent marker only when a digit (after an
// optional sign) follows; otherwise it is left for the identifier lexer, so
// "2e" splits into 2 and the symbol e.
func lexNumber(runes []rune, base int) (float64, int, error) {
	i := 0
	digits := false
	for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
		i++
		digits = true
	}
	if i < len(runes) && runes[i] == '.' {
		i++
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, 0, fmt.Errorf("%w: malformed number (position %d)", ErrSyntax, base)
	}
	if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
		j := i + 1
		if j < len(runes) && (runes[j] == '+' || runes[j] == '-') {
			j++
		}
		if j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(string(runes[:i]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: malformed number %q (position %d)", ErrSyntax, string(runes[:i]), base)
	}

	return v, i, nil
}
