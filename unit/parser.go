package unit

import (
	"unicode"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
)

// Parse parses a unit expression such as "kg*m/s^2", "km" or "µs"
// against this registry. It shares the dimensionality grammar: "^" binds
// tighter than multiplication and "/" divides by the whole product to its
// right. The returned multiplier converts a value expressed in the parsed
// unit into the coherent reference representation.
func (r *Registry) Parse(text string) (*Unit, float64, error) {
	p := &unitParser{reg: r, expr: text, runes: []rune(text)}
	u, err := p.parseExpr()
	if err != nil {
		return nil, 0, err
	}
	if !p.atEnd() {
		return nil, 0, p.errHere("unexpected token")
	}
	return u, u.multiplier, nil
}

type unitParser struct {
	reg    *Registry
	expr   string
	runes  []rune
	pos    int
	peeked *unitToken
}

type unitTokenKind int

const (
	utEnd unitTokenKind = iota
	utSymbol
	utNumber
	utStar
	utSlash
	utCaret
	utLParen
	utRParen
	utPlus
	utMinus
)

type unitToken struct {
	kind unitTokenKind
	text string
	pos  int
}

// isSymbolRune covers unit symbols: letters plus the degree and prime
// marks, which Unicode does not class as letters.
func isSymbolRune(r rune) bool {
	return unicode.IsLetter(r) || r == '°' || r == '′' || r == '″'
}

func (p *unitParser) atEnd() bool {
	return p.peek().kind == utEnd
}

func (p *unitParser) errHere(msg string) error {
	t := p.peek()
	return siquant.NewParseError(p.expr, t.pos, t.text, msg)
}

func (p *unitParser) peek() unitToken {
	if p.peeked == nil {
		t := p.lex()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *unitParser) next() unitToken {
	t := p.peek()
	p.peeked = nil
	return t
}

func (p *unitParser) lex() unitToken {
	for p.pos < len(p.runes) && unicode.IsSpace(p.runes[p.pos]) {
		p.pos++
	}
	if p.pos >= len(p.runes) {
		return unitToken{kind: utEnd, pos: p.pos}
	}
	start := p.pos
	r := p.runes[p.pos]
	switch r {
	case '*', '•':
		p.pos++
		return unitToken{kind: utStar, text: string(r), pos: start}
	case '/':
		p.pos++
		return unitToken{kind: utSlash, text: "/", pos: start}
	case '^':
		p.pos++
		return unitToken{kind: utCaret, text: "^", pos: start}
	case '(':
		p.pos++
		return unitToken{kind: utLParen, text: "(", pos: start}
	case ')':
		p.pos++
		return unitToken{kind: utRParen, text: ")", pos: start}
	case '+':
		p.pos++
		return unitToken{kind: utPlus, text: "+", pos: start}
	case '-', '−':
		p.pos++
		return unitToken{kind: utMinus, text: string(r), pos: start}
	}
	if unicode.IsDigit(r) {
		for p.pos < len(p.runes) && unicode.IsDigit(p.runes[p.pos]) {
			p.pos++
		}
		return unitToken{kind: utNumber, text: string(p.runes[start:p.pos]), pos: start}
	}
	if isSymbolRune(r) {
		for p.pos < len(p.runes) && isSymbolRune(p.runes[p.pos]) {
			p.pos++
		}
		return unitToken{kind: utSymbol, text: string(p.runes[start:p.pos]), pos: start}
	}
	p.pos++
	return unitToken{kind: utSymbol, text: string(r), pos: start}
}

func (p *unitParser) parseExpr() (*Unit, error) {
	u, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == utSlash {
		p.next()
		q, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		u, _ = u.Div(q)
	}
	return u, nil
}

func (p *unitParser) parseProduct() (*Unit, error) {
	u, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == utStar {
		p.next()
		f, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		u, _ = u.Mul(f)
	}
	if k := p.peek().kind; k == utPlus || k == utMinus {
		return nil, p.errHere("addition and subtraction are not valid in unit expressions")
	}
	return u, nil
}

func (p *unitParser) parseFactor() (*Unit, error) {
	u, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != utCaret {
		return u, nil
	}
	p.next()
	e, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	v, _, err := u.Pow(e)
	return v, err
}

func (p *unitParser) parsePrimary() (*Unit, error) {
	t := p.peek()
	switch t.kind {
	case utLParen:
		p.next()
		u, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != utRParen {
			return nil, p.errHere("expected closing parenthesis")
		}
		p.next()
		return u, nil
	case utSymbol:
		p.next()
		return p.reg.resolveToken(t.text)
	case utNumber:
		// "1" is the dimensionless numerator, as in "1/s".
		if t.text == "1" {
			p.next()
			return p.reg.Dimensionless(), nil
		}
		return nil, p.errHere("expected unit symbol")
	default:
		return nil, p.errHere("expected unit symbol or parenthesized expression")
	}
}

func (p *unitParser) parseExponent() (dimension.Ratio, error) {
	if p.peek().kind == utLParen {
		p.next()
		num, err := p.parseSignedInt()
		if err != nil {
			return dimension.Ratio{}, err
		}
		den := 1
		if p.peek().kind == utSlash {
			p.next()
			den, err = p.parseSignedInt()
			if err != nil {
				return dimension.Ratio{}, err
			}
		}
		if p.peek().kind != utRParen {
			return dimension.Ratio{}, p.errHere("expected closing parenthesis in exponent")
		}
		p.next()
		return dimension.NewRatio(num, den)
	}
	n, err := p.parseSignedInt()
	if err != nil {
		return dimension.Ratio{}, err
	}
	return dimension.Int(n), nil
}

func (p *unitParser) parseSignedInt() (int, error) {
	sign := 1
	switch p.peek().kind {
	case utMinus:
		p.next()
		sign = -1
	case utPlus:
		p.next()
	}
	t := p.peek()
	if t.kind != utNumber {
		return 0, p.errHere("expected integer exponent")
	}
	p.next()
	n := 0
	for _, r := range t.text {
		n = n*10 + int(r-'0')
	}
	return sign * n, nil
}
