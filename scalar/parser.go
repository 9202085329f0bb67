package scalar

import (
	"strconv"
	"unicode"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
	"github.com/c360studio/siquant/unit"
)

// Parse parses a scalar quantity expression. Accepted forms are a numeric
// literal (real, or complex with a trailing "j" imaginary marker)
// optionally followed by a unit expression, and full algebraic expressions
// combining such quantities with "+ - * / ^", parentheses and named
// physical constants:
//
//	"5.0 m"
//	"3+4j Ω"
//	"0.5 * 2 kg * (10 m/s)^2"
//	"2 * π * 100 Hz"
//
// A unit suffix binds tightly to the literal before it. Identifiers in
// operand position resolve against the physical-constant catalog;
// identifiers following a value resolve against the unit catalog.
func Parse(text string) (Scalar, error) {
	toks, err := scanScalar(text)
	if err != nil {
		return Scalar{}, err
	}
	p := &scalarParser{expr: text, toks: toks}
	s, err := p.parseExpr()
	if err != nil {
		return Scalar{}, err
	}
	if p.peek().kind != stEnd {
		return Scalar{}, p.errHere("unexpected token")
	}
	return s, nil
}

type scalarTokenKind int

const (
	stEnd scalarTokenKind = iota
	stNumber
	stIdent
	stPlus
	stMinus
	stStar
	stSlash
	stCaret
	stLParen
	stRParen
)

type scalarToken struct {
	kind      scalarTokenKind
	text      string
	pos       int
	value     complex128
	isComplex bool
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' ||
		r == '°' || r == '′' || r == '″'
}

func isIdentTail(r rune) bool {
	return isIdentRune(r) || unicode.IsDigit(r)
}

// scanScalar tokenizes the whole input up front; the parser needs
// two-token lookahead to tell unit suffixes from algebraic operators.
func scanScalar(text string) ([]scalarToken, error) {
	runes := []rune(text)
	var toks []scalarToken
	pos := 0
	for pos < len(runes) {
		r := runes[pos]
		if unicode.IsSpace(r) {
			pos++
			continue
		}
		start := pos
		switch r {
		case '+':
			toks = append(toks, scalarToken{kind: stPlus, text: "+", pos: start})
			pos++
			continue
		case '-', '−':
			toks = append(toks, scalarToken{kind: stMinus, text: string(r), pos: start})
			pos++
			continue
		case '*', '•':
			toks = append(toks, scalarToken{kind: stStar, text: string(r), pos: start})
			pos++
			continue
		case '/':
			toks = append(toks, scalarToken{kind: stSlash, text: "/", pos: start})
			pos++
			continue
		case '^':
			toks = append(toks, scalarToken{kind: stCaret, text: "^", pos: start})
			pos++
			continue
		case '(':
			toks = append(toks, scalarToken{kind: stLParen, text: "(", pos: start})
			pos++
			continue
		case ')':
			toks = append(toks, scalarToken{kind: stRParen, text: ")", pos: start})
			pos++
			continue
		}
		if unicode.IsDigit(r) || r == '.' {
			tok, next, err := scanNumber(text, runes, pos)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			pos = next
			continue
		}
		if isIdentRune(r) {
			for pos < len(runes) && isIdentTail(runes[pos]) {
				pos++
			}
			toks = append(toks, scalarToken{kind: stIdent, text: string(runes[start:pos]), pos: start})
			continue
		}
		return nil, siquant.NewParseError(text, start, string(r), "unexpected character")
	}
	toks = append(toks, scalarToken{kind: stEnd, pos: len(runes)})
	return toks, nil
}

// scanNumber scans a real literal, a pure imaginary literal ("4j"), or a
// full complex literal written without spaces ("3+4j", "1.5-0.5j").
func scanNumber(text string, runes []rune, pos int) (scalarToken, int, error) {
	start := pos
	re, pos, err := scanFloat(text, runes, pos)
	if err != nil {
		return scalarToken{}, 0, err
	}
	// Pure imaginary: "4j".
	if pos < len(runes) && runes[pos] == 'j' {
		return scalarToken{
			kind: stNumber, text: string(runes[start : pos+1]), pos: start,
			value: complex(0, re), isComplex: true,
		}, pos + 1, nil
	}
	// Complex literal: sign and imaginary part attached without spaces.
	if pos < len(runes) && (runes[pos] == '+' || runes[pos] == '-') &&
		pos+1 < len(runes) && (unicode.IsDigit(runes[pos+1]) || runes[pos+1] == '.') {
		sign := 1.0
		if runes[pos] == '-' {
			sign = -1
		}
		im, next, err := scanFloat(text, runes, pos+1)
		if err == nil && next < len(runes) && runes[next] == 'j' {
			return scalarToken{
				kind: stNumber, text: string(runes[start : next+1]), pos: start,
				value: complex(re, sign*im), isComplex: true,
			}, next + 1, nil
		}
		// No trailing "j": the sign belongs to the surrounding expression.
	}
	return scalarToken{
		kind: stNumber, text: string(runes[start:pos]), pos: start,
		value: complex(re, 0),
	}, pos, nil
}

func scanFloat(text string, runes []rune, pos int) (float64, int, error) {
	start := pos
	for pos < len(runes) && (unicode.IsDigit(runes[pos]) || runes[pos] == '.') {
		pos++
	}
	if pos < len(runes) && (runes[pos] == 'e' || runes[pos] == 'E') {
		mark := pos
		pos++
		if pos < len(runes) && (runes[pos] == '+' || runes[pos] == '-') {
			pos++
		}
		if pos < len(runes) && unicode.IsDigit(runes[pos]) {
			for pos < len(runes) && unicode.IsDigit(runes[pos]) {
				pos++
			}
		} else {
			// "e" was not an exponent marker.
			pos = mark
		}
	}
	lit := string(runes[start:pos])
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, 0, siquant.NewParseError(text, start, lit, "invalid numeric literal")
	}
	return v, pos, nil
}

type scalarParser struct {
	expr string
	toks []scalarToken
	idx  int
}

func (p *scalarParser) peek() scalarToken {
	return p.toks[p.idx]
}

func (p *scalarParser) peekAt(offset int) scalarToken {
	i := p.idx + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *scalarParser) next() scalarToken {
	t := p.toks[p.idx]
	if t.kind != stEnd {
		p.idx++
	}
	return t
}

func (p *scalarParser) errHere(msg string) error {
	t := p.peek()
	return siquant.NewParseError(p.expr, t.pos, t.text, msg)
}

func (p *scalarParser) parseExpr() (Scalar, error) {
	s, err := p.parseTerm()
	if err != nil {
		return Scalar{}, err
	}
	for {
		switch p.peek().kind {
		case stPlus:
			p.next()
			t, err := p.parseTerm()
			if err != nil {
				return Scalar{}, err
			}
			if s, err = s.Add(t); err != nil {
				return Scalar{}, err
			}
		case stMinus:
			p.next()
			t, err := p.parseTerm()
			if err != nil {
				return Scalar{}, err
			}
			if s, err = s.Sub(t); err != nil {
				return Scalar{}, err
			}
		default:
			return s, nil
		}
	}
}

func (p *scalarParser) parseTerm() (Scalar, error) {
	s, err := p.parseUnary()
	if err != nil {
		return Scalar{}, err
	}
	for {
		switch p.peek().kind {
		case stStar:
			p.next()
			t, err := p.parseUnary()
			if err != nil {
				return Scalar{}, err
			}
			s = s.Mul(t)
		case stSlash:
			p.next()
			t, err := p.parseUnary()
			if err != nil {
				return Scalar{}, err
			}
			s = s.Div(t)
		default:
			return s, nil
		}
	}
}

func (p *scalarParser) parseUnary() (Scalar, error) {
	switch p.peek().kind {
	case stMinus:
		p.next()
		s, err := p.parseUnary()
		if err != nil {
			return Scalar{}, err
		}
		return s.Neg(), nil
	case stPlus:
		p.next()
		return p.parseUnary()
	default:
		return p.parsePower()
	}
}

func (p *scalarParser) parsePower() (Scalar, error) {
	s, err := p.parseOperand()
	if err != nil {
		return Scalar{}, err
	}
	if p.peek().kind != stCaret {
		return s, nil
	}
	p.next()
	e, err := p.parseRatioLiteral()
	if err != nil {
		return Scalar{}, err
	}
	return s.Pow(e)
}

func (p *scalarParser) parseOperand() (Scalar, error) {
	t := p.peek()
	switch t.kind {
	case stNumber:
		p.next()
		s := dimensionless(t.value, t.isComplex)
		return p.maybeUnitSuffix(s)
	case stIdent:
		p.next()
		c, err := Constant(t.text)
		if err != nil {
			return Scalar{}, err
		}
		return c, nil
	case stLParen:
		p.next()
		s, err := p.parseExpr()
		if err != nil {
			return Scalar{}, err
		}
		if p.peek().kind != stRParen {
			return Scalar{}, p.errHere("expected closing parenthesis")
		}
		p.next()
		return p.maybeUnitSuffix(s)
	default:
		return Scalar{}, p.errHere("expected value, constant or parenthesized expression")
	}
}

// maybeUnitSuffix attaches a unit expression when the next identifier is a
// known unit symbol: "5.0 m", "2 kg", "(10 m/s)".
func (p *scalarParser) maybeUnitSuffix(s Scalar) (Scalar, error) {
	t := p.peek()
	if t.kind != stIdent || !unit.DefaultRegistry().IsKnownSymbol(t.text) {
		return s, nil
	}
	u, err := p.parseUnitExpr()
	if err != nil {
		return Scalar{}, err
	}
	return s.Mul(New(1, u)), nil
}

// parseUnitExpr parses a unit sub-expression from the scalar token stream,
// using the unit grammar's precedence: "/" divides by the whole product to
// its right. A "*" or "/" continues the unit expression only when the token
// after it is itself a known unit symbol, so "2 kg * (10 m/s)^2" hands the
// "*" back to the scalar grammar.
func (p *scalarParser) parseUnitExpr() (*unit.Unit, error) {
	u, err := p.parseUnitProduct()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == stSlash && p.isUnitIdent(p.peekAt(1)) {
		p.next()
		q, err := p.parseUnitProduct()
		if err != nil {
			return nil, err
		}
		u, _ = u.Div(q)
	}
	return u, nil
}

func (p *scalarParser) parseUnitProduct() (*unit.Unit, error) {
	u, err := p.parseUnitAtom()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == stStar && p.isUnitIdent(p.peekAt(1)) {
		p.next()
		f, err := p.parseUnitAtom()
		if err != nil {
			return nil, err
		}
		u, _ = u.Mul(f)
	}
	return u, nil
}

func (p *scalarParser) parseUnitAtom() (*unit.Unit, error) {
	t := p.peek()
	if t.kind != stIdent {
		return nil, p.errHere("expected unit symbol")
	}
	p.next()
	u, _, err := unit.Parse(t.text)
	if err != nil {
		return nil, err
	}
	if p.peek().kind != stCaret {
		return u, nil
	}
	p.next()
	e, err := p.parseRatioLiteral()
	if err != nil {
		return nil, err
	}
	u, _, err = u.Pow(e)
	return u, err
}

func (p *scalarParser) isUnitIdent(t scalarToken) bool {
	return t.kind == stIdent && unit.DefaultRegistry().IsKnownSymbol(t.text)
}

// parseRatioLiteral accepts a signed integer or a parenthesized rational
// exponent such as "(1/2)".
func (p *scalarParser) parseRatioLiteral() (dimension.Ratio, error) {
	if p.peek().kind == stLParen {
		p.next()
		num, err := p.parseSignedInt()
		if err != nil {
			return dimension.Ratio{}, err
		}
		den := 1
		if p.peek().kind == stSlash {
			p.next()
			den, err = p.parseSignedInt()
			if err != nil {
				return dimension.Ratio{}, err
			}
		}
		if p.peek().kind != stRParen {
			return dimension.Ratio{}, p.errHere("expected closing parenthesis in exponent")
		}
		p.next()
		return dimension.NewRatio(num, den)
	}
	return p.parseSignedRatioInt()
}

func (p *scalarParser) parseSignedRatioInt() (dimension.Ratio, error) {
	n, err := p.parseSignedInt()
	if err != nil {
		return dimension.Ratio{}, err
	}
	return dimension.Int(n), nil
}

func (p *scalarParser) parseSignedInt() (int, error) {
	sign := 1
	switch p.peek().kind {
	case stMinus:
		p.next()
		sign = -1
	case stPlus:
		p.next()
	}
	t := p.peek()
	if t.kind != stNumber || t.isComplex {
		return 0, p.errHere("expected integer exponent")
	}
	v := real(t.value)
	n := int(v)
	if float64(n) != v {
		return 0, p.errHere("expected integer exponent")
	}
	p.next()
	return sign * n, nil
}
