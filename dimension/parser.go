package dimension

import (
	"unicode"

	"github.com/c360studio/siquant"
)

// Parse parses a dimensionality expression such as "M*L/T^2" or "L^(1/2)".
//
// Grammar:
//
//	expr    := product ('/' product)*
//	product := factor ('*' factor)*
//	factor  := primary ('^' exponent)?
//	primary := '(' expr ')' | base-symbol
//
// '^' binds tighter than multiplication, and '/' divides by the whole
// product to its right, up to the next '/'. Exponents are signed integers
// or parenthesized rationals. Addition and subtraction are rejected:
// sums of dimensionalities are physically meaningless.
func Parse(text string) (Dimensionality, error) {
	p := newParser(text)
	d, err := p.parseExpr()
	if err != nil {
		return Dimensionality{}, err
	}
	if !p.atEnd() {
		return Dimensionality{}, p.errHere("unexpected token")
	}
	return d, nil
}

type tokenKind int

const (
	tokEnd tokenKind = iota
	tokSymbol
	tokNumber
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
	tokPlus
	tokMinus
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	expr   string
	runes  []rune
	pos    int
	peeked *token
}

func newParser(text string) *parser {
	return &parser{expr: text, runes: []rune(text)}
}

func (p *parser) atEnd() bool {
	return p.peek().kind == tokEnd
}

func (p *parser) errHere(msg string) error {
	t := p.peek()
	return siquant.NewParseError(p.expr, t.pos, t.text, msg)
}

func (p *parser) peek() token {
	if p.peeked == nil {
		t := p.lex()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *parser) next() token {
	t := p.peek()
	p.peeked = nil
	return t
}

func (p *parser) lex() token {
	for p.pos < len(p.runes) && unicode.IsSpace(p.runes[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.runes) {
		return token{kind: tokEnd, pos: p.pos}
	}
	start := p.pos
	r := p.runes[p.pos]
	switch r {
	case '*', '•':
		p.pos++
		return token{kind: tokStar, text: string(r), pos: start}
	case '/':
		p.pos++
		return token{kind: tokSlash, text: "/", pos: start}
	case '^':
		p.pos++
		return token{kind: tokCaret, text: "^", pos: start}
	case '(':
		p.pos++
		return token{kind: tokLParen, text: "(", pos: start}
	case ')':
		p.pos++
		return token{kind: tokRParen, text: ")", pos: start}
	case '+':
		p.pos++
		return token{kind: tokPlus, text: "+", pos: start}
	case '-', '−':
		p.pos++
		return token{kind: tokMinus, text: string(r), pos: start}
	}
	if unicode.IsDigit(r) {
		for p.pos < len(p.runes) && unicode.IsDigit(p.runes[p.pos]) {
			p.pos++
		}
		return token{kind: tokNumber, text: string(p.runes[start:p.pos]), pos: start}
	}
	if unicode.IsLetter(r) {
		for p.pos < len(p.runes) && unicode.IsLetter(p.runes[p.pos]) {
			p.pos++
		}
		return token{kind: tokSymbol, text: string(p.runes[start:p.pos]), pos: start}
	}
	p.pos++
	return token{kind: tokSymbol, text: string(r), pos: start}
}

func (p *parser) parseExpr() (Dimensionality, error) {
	d, err := p.parseProduct()
	if err != nil {
		return Dimensionality{}, err
	}
	for p.peek().kind == tokSlash {
		p.next()
		q, err := p.parseProduct()
		if err != nil {
			return Dimensionality{}, err
		}
		d = d.Div(q)
	}
	return d, nil
}

func (p *parser) parseProduct() (Dimensionality, error) {
	d, err := p.parseFactor()
	if err != nil {
		return Dimensionality{}, err
	}
	for p.peek().kind == tokStar {
		p.next()
		f, err := p.parseFactor()
		if err != nil {
			return Dimensionality{}, err
		}
		d = d.Mul(f)
	}
	if k := p.peek().kind; k == tokPlus || k == tokMinus {
		return Dimensionality{}, p.errHere("addition and subtraction are not valid in dimensionality expressions")
	}
	return d, nil
}

func (p *parser) parseFactor() (Dimensionality, error) {
	d, err := p.parsePrimary()
	if err != nil {
		return Dimensionality{}, err
	}
	if p.peek().kind != tokCaret {
		return d, nil
	}
	p.next()
	e, err := p.parseExponent()
	if err != nil {
		return Dimensionality{}, err
	}
	return d.Power(e)
}

func (p *parser) parsePrimary() (Dimensionality, error) {
	t := p.peek()
	switch t.kind {
	case tokLParen:
		p.next()
		d, err := p.parseExpr()
		if err != nil {
			return Dimensionality{}, err
		}
		if p.peek().kind != tokRParen {
			return Dimensionality{}, p.errHere("expected closing parenthesis")
		}
		p.next()
		return d, nil
	case tokSymbol:
		p.next()
		for i, sym := range baseSymbols {
			if t.text == sym {
				return ForBase(i), nil
			}
		}
		return Dimensionality{}, siquant.NewUnknownIdentifier("base dimension", t.text)
	case tokNumber:
		// "1" is the dimensionless numerator, as in "1/T^2".
		if t.text == "1" {
			p.next()
			return Dimensionless(), nil
		}
		return Dimensionality{}, p.errHere("expected base symbol")
	default:
		return Dimensionality{}, p.errHere("expected base symbol or parenthesized expression")
	}
}

// parseExponent accepts a signed integer or a parenthesized rational such
// as "(1/2)" or "(-3/4)".
func (p *parser) parseExponent() (Ratio, error) {
	if p.peek().kind == tokLParen {
		p.next()
		num, err := p.parseSignedInt()
		if err != nil {
			return Ratio{}, err
		}
		den := 1
		if p.peek().kind == tokSlash {
			p.next()
			den, err = p.parseSignedInt()
			if err != nil {
				return Ratio{}, err
			}
		}
		if p.peek().kind != tokRParen {
			return Ratio{}, p.errHere("expected closing parenthesis in exponent")
		}
		p.next()
		return NewRatio(num, den)
	}
	n, err := p.parseSignedInt()
	if err != nil {
		return Ratio{}, err
	}
	return Int(n), nil
}

func (p *parser) parseSignedInt() (int, error) {
	sign := 1
	switch p.peek().kind {
	case tokMinus:
		p.next()
		sign = -1
	case tokPlus:
		p.next()
	}
	t := p.peek()
	if t.kind != tokNumber {
		return 0, p.errHere("expected integer exponent")
	}
	p.next()
	n := 0
	for _, r := range t.text {
		n = n*10 + int(r-'0')
	}
	return sign * n, nil
}
