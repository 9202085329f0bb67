// Package dimension models physical dimensionalities as rational-exponent
// vectors over the seven SI base dimensions. Dimensionalities are plain
// immutable values: equality is defined on the exponent tuple, and the
// canonical symbol is derived from it deterministically.
package dimension

import (
	"strings"

	"github.com/c360studio/siquant"
)

// NumBase is the number of SI base dimensions.
const NumBase = 7

// Base dimension indices, in canonical tuple order.
const (
	BaseLength = iota
	BaseMass
	BaseTime
	BaseCurrent
	BaseTemperature
	BaseAmount
	BaseLuminousIntensity
)

// baseSymbols are the canonical single-rune symbols, in tuple order.
var baseSymbols = [NumBase]string{"L", "M", "T", "I", "Θ", "N", "J"}

// Dimensionality is an ordered 7-tuple of rational exponents over the SI
// base dimensions. The zero value is dimensionless.
type Dimensionality struct {
	exps [NumBase]Ratio
}

// Dimensionless returns the all-zero dimensionality, the identity for Mul
// and Div.
func Dimensionless() Dimensionality {
	return Dimensionality{}
}

// ForBase returns the dimensionality with exponent 1 at the given base
// index.
func ForBase(index int) Dimensionality {
	var d Dimensionality
	d.exps[index] = Int(1)
	return d
}

// Exponent returns the exponent at the given base index.
func (d Dimensionality) Exponent(index int) Ratio {
	return d.exps[index]
}

// IsDimensionless returns true when every exponent is zero.
func (d Dimensionality) IsDimensionless() bool {
	for _, e := range d.exps {
		if !e.IsZero() {
			return false
		}
	}
	return true
}

// Equal compares the exponent tuples component-wise.
func (d Dimensionality) Equal(o Dimensionality) bool {
	for i := range d.exps {
		if !d.exps[i].Equal(o.exps[i]) {
			return false
		}
	}
	return true
}

// Mul returns the component-wise sum of exponents. It never fails.
func (d Dimensionality) Mul(o Dimensionality) Dimensionality {
	var out Dimensionality
	for i := range d.exps {
		out.exps[i] = d.exps[i].Add(o.exps[i])
	}
	return out
}

// Div returns the component-wise difference of exponents. It never fails.
func (d Dimensionality) Div(o Dimensionality) Dimensionality {
	var out Dimensionality
	for i := range d.exps {
		out.exps[i] = d.exps[i].Sub(o.exps[i])
	}
	return out
}

// Power multiplies every exponent by p. It fails with a ValidationError if
// a resulting denominator exceeds MaxExponentDenominator.
func (d Dimensionality) Power(p Ratio) (Dimensionality, error) {
	var out Dimensionality
	for i := range d.exps {
		e := d.exps[i].MulRatio(p)
		if e.Den() > MaxExponentDenominator {
			return Dimensionality{}, siquant.NewValidationError(
				"exponent %s of %s is not representable (denominator above %d)",
				e, baseSymbols[i], MaxExponentDenominator)
		}
		out.exps[i] = e
	}
	return out, nil
}

// NthRoot divides every exponent by n, for positive integer n. It fails
// with a ValidationError for non-positive n or when a resulting denominator
// exceeds MaxExponentDenominator.
func (d Dimensionality) NthRoot(n int) (Dimensionality, error) {
	if n <= 0 {
		return Dimensionality{}, siquant.NewValidationError("root index must be positive, got %d", n)
	}
	var out Dimensionality
	for i := range d.exps {
		e, err := d.exps[i].DivInt(n)
		if err != nil {
			return Dimensionality{}, err
		}
		if e.Den() > MaxExponentDenominator {
			return Dimensionality{}, siquant.NewValidationError(
				"root %d of %s^%s is not representable (denominator above %d)",
				n, baseSymbols[i], d.exps[i], MaxExponentDenominator)
		}
		out.exps[i] = e
	}
	return out, nil
}

// Symbol renders the canonical symbol: positive exponents in base order
// joined by "*", negative exponents after "/" (parenthesized when there is
// more than one), "1" for an empty numerator. The rendering is
// deterministic and independent of how the value was constructed.
func (d Dimensionality) Symbol() string {
	var num, den []string
	for i, e := range d.exps {
		switch e.Sign() {
		case 1:
			num = append(num, renderTerm(baseSymbols[i], e))
		case -1:
			den = append(den, renderTerm(baseSymbols[i], e.Neg()))
		}
	}
	return joinSymbol(num, den)
}

// String is the canonical symbol.
func (d Dimensionality) String() string {
	return d.Symbol()
}

// renderTerm renders symbol^exp, omitting "^1" and parenthesizing rational
// exponents.
func renderTerm(sym string, e Ratio) string {
	if e.Equal(Int(1)) {
		return sym
	}
	if e.IsInt() {
		return sym + "^" + e.String()
	}
	return sym + "^(" + e.String() + ")"
}

func joinSymbol(num, den []string) string {
	top := "1"
	if len(num) > 0 {
		top = strings.Join(num, "*")
	}
	switch len(den) {
	case 0:
		return top
	case 1:
		return top + "/" + den[0]
	default:
		return top + "/(" + strings.Join(den, "*") + ")"
	}
}
