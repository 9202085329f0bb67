package dimension

import (
	"fmt"

	"github.com/c360studio/siquant"
)

// MaxExponentDenominator bounds the denominator of any exponent produced by
// Power or NthRoot. Roots up to the twelfth are representable.
const MaxExponentDenominator = 12

// Ratio is a rational exponent in lowest terms. The zero value is 0/1.
type Ratio struct {
	num int
	den int
}

// Int returns the ratio n/1.
func Int(n int) Ratio {
	return Ratio{num: n, den: 1}
}

// NewRatio returns num/den reduced to lowest terms with a positive
// denominator. A zero denominator is a ValidationError.
func NewRatio(num, den int) (Ratio, error) {
	if den == 0 {
		return Ratio{}, siquant.NewValidationError("ratio %d/0 has zero denominator", num)
	}
	return reduce(num, den), nil
}

func reduce(num, den int) Ratio {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Ratio{num: 0, den: 1}
	}
	g := gcd(abs(num), den)
	return Ratio{num: num / g, den: den / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Num returns the reduced numerator.
func (r Ratio) Num() int {
	return r.num
}

// Den returns the reduced denominator, always positive.
func (r Ratio) Den() int {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// IsZero returns true for the zero exponent.
func (r Ratio) IsZero() bool {
	return r.num == 0
}

// IsInt returns true when the reduced denominator is 1.
func (r Ratio) IsInt() bool {
	return r.Den() == 1
}

// Sign returns -1, 0 or 1.
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Equal compares reduced forms.
func (r Ratio) Equal(o Ratio) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	return reduce(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	return reduce(r.num*o.Den()-o.num*r.Den(), r.Den()*o.Den())
}

// MulRatio returns r * o.
func (r Ratio) MulRatio(o Ratio) Ratio {
	return reduce(r.num*o.num, r.Den()*o.Den())
}

// DivInt returns r / n. A zero divisor is a ValidationError.
func (r Ratio) DivInt(n int) (Ratio, error) {
	if n == 0 {
		return Ratio{}, siquant.NewValidationError("division of exponent %s by zero", r)
	}
	return reduce(r.num, r.Den()*n), nil
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, den: r.Den()}
}

// Float64 returns the ratio as a float.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders "n" for integers and "n/d" otherwise.
func (r Ratio) String() string {
	if r.IsInt() {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}
