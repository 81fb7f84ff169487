// Package calc evaluates the arithmetic expressions typed into amount
// fields, e.g. "100+200*3". It accepts only digits, '.', and the four
// operators; anything else is stripped before parsing. This replaces
// general-purpose code evaluation with a small sandboxed parser.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrDivideByZero is returned when an expression divides by zero.
var ErrDivideByZero = errors.New("division by zero")

// ErrEmptyExpression is returned when nothing evaluable remains after
// sanitizing the input.
var ErrEmptyExpression = errors.New("empty expression")

// EvalOrZero evaluates expr and returns 0 for empty, partial, or otherwise
// invalid input. This is the behavior amount fields want while the user is
// still typing.
func EvalOrZero(expr string) float64 {
	v, err := Eval(expr)
	if err != nil {
		return 0
	}
	return v
}

// Eval evaluates an arithmetic expression with standard operator precedence
// (* and / bind tighter than + and -) and left associativity.
func Eval(expr string) (float64, error) {
	tokens, err := tokenize(sanitize(expr))
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}

	p := &parser{tokens: tokens}
	result, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.tokens) {
		return 0, fmt.Errorf("unexpected token %q", p.tokens[p.pos].text)
	}
	return result, nil
}

// sanitize drops every rune outside the allowed vocabulary.
func sanitize(expr string) string {
	var b strings.Builder
	for _, r := range expr {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '+', r == '-', r == '*', r == '/':
			b.WriteRune(r)
		}
	}
	return b.String()
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOp
)

type token struct {
	text string
	kind tokenKind
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		c := expr[i]
		switch {
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, token{kind: tokenOp, text: string(c)})
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			text := expr[i:j]
			if _, err := strconv.ParseFloat(text, 64); err != nil {
				return nil, fmt.Errorf("invalid number %q", text)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	return tokens, nil
}

type parser struct {
	tokens []token
	pos    int
}

// parseExpr handles + and -.
func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for p.pos < len(p.tokens) && (p.tokens[p.pos].text == "+" || p.tokens[p.pos].text == "-") {
		op := p.tokens[p.pos].text
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == "+" {
			left += right
		} else {
			left -= right
		}
	}
	return left, nil
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	for p.pos < len(p.tokens) && (p.tokens[p.pos].text == "*" || p.tokens[p.pos].text == "/") {
		op := p.tokens[p.pos].text
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if op == "*" {
			left *= right
		} else {
			if right == 0 {
				return 0, ErrDivideByZero
			}
			left /= right
		}
	}
	return left, nil
}

// parseFactor handles numbers with optional unary sign.
func (p *parser) parseFactor() (float64, error) {
	if p.pos >= len(p.tokens) {
		return 0, errors.New("unexpected end of expression")
	}

	negative := false
	for p.pos < len(p.tokens) && p.tokens[p.pos].kind == tokenOp {
		switch p.tokens[p.pos].text {
		case "-":
			negative = !negative
		case "+":
		default:
			return 0, fmt.Errorf("unexpected operator %q", p.tokens[p.pos].text)
		}
		p.pos++
	}

	if p.pos >= len(p.tokens) || p.tokens[p.pos].kind != tokenNumber {
		return 0, errors.New("expected number")
	}

	v, err := strconv.ParseFloat(p.tokens[p.pos].text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.tokens[p.pos].text)
	}
	p.pos++

	if negative {
		v = -v
	}
	return v, nil
}
