// Package scalar implements dimensioned scalar quantities: a real or
// complex double-precision magnitude bound to a unit. Magnitudes are held
// in the coherent SI representation of their dimensionality, and the unit
// is consulted only for display and conversion. Every operation returns a
// fresh value; nothing is mutated in place.
package scalar

import (
	"math"
	"math/cmplx"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
	"github.com/c360studio/siquant/unit"
)

// Scalar is an immutable quantity value.
type Scalar struct {
	coherent  complex128
	isComplex bool
	unit      *unit.Unit
}

// New creates a real scalar with the given value expressed in u.
func New(value float64, u *unit.Unit) Scalar {
	return Scalar{coherent: complex(value*u.Multiplier(), 0), unit: u}
}

// NewComplex creates a complex scalar with the given value expressed in u.
func NewComplex(value complex128, u *unit.Unit) Scalar {
	return Scalar{coherent: value * complex(u.Multiplier(), 0), isComplex: true, unit: u}
}

// Value returns the real magnitude expressed in the display unit.
func (s Scalar) Value() float64 {
	return real(s.coherent) / s.unit.Multiplier()
}

// Complex returns the magnitude expressed in the display unit.
func (s Scalar) Complex() complex128 {
	return s.coherent / complex(s.unit.Multiplier(), 0)
}

// Coherent returns the magnitude in the coherent reference representation.
func (s Scalar) Coherent() complex128 {
	return s.coherent
}

// IsComplex reports whether the scalar carries an imaginary component.
func (s Scalar) IsComplex() bool {
	return s.isComplex
}

// Unit returns the display unit.
func (s Scalar) Unit() *unit.Unit {
	return s.unit
}

// UnitSymbol returns the display unit's canonical symbol.
func (s Scalar) UnitSymbol() string {
	return s.unit.Symbol()
}

// Dimensionality returns the dimensionality of the display unit.
func (s Scalar) Dimensionality() dimension.Dimensionality {
	return s.unit.Dimensionality()
}

// Equal reports exact equality: same coherent magnitude and structurally
// equal display units.
func (s Scalar) Equal(o Scalar) bool {
	return s.coherent == o.coherent && unit.Equal(s.unit, o.unit)
}

// Add returns s + o. The operand dimensionalities must be exactly equal,
// not merely convertible; the result keeps s's display unit.
func (s Scalar) Add(o Scalar) (Scalar, error) {
	if !s.Dimensionality().Equal(o.Dimensionality()) {
		return Scalar{}, siquant.NewDimensionalMismatch("add",
			s.Dimensionality().Symbol(), o.Dimensionality().Symbol())
	}
	return Scalar{
		coherent:  s.coherent + o.coherent,
		isComplex: s.isComplex || o.isComplex,
		unit:      s.unit,
	}, nil
}

// Sub returns s - o under the same dimensionality requirement as Add.
func (s Scalar) Sub(o Scalar) (Scalar, error) {
	if !s.Dimensionality().Equal(o.Dimensionality()) {
		return Scalar{}, siquant.NewDimensionalMismatch("subtract",
			s.Dimensionality().Symbol(), o.Dimensionality().Symbol())
	}
	return Scalar{
		coherent:  s.coherent - o.coherent,
		isComplex: s.isComplex || o.isComplex,
		unit:      s.unit,
	}, nil
}

// Mul returns s * o. It never fails; the result unit is synthesized by the
// unit algebra.
func (s Scalar) Mul(o Scalar) Scalar {
	u, _ := s.unit.Mul(o.unit)
	return Scalar{
		coherent:  s.coherent * o.coherent,
		isComplex: s.isComplex || o.isComplex,
		unit:      u,
	}
}

// Div returns s / o. It never fails dimensionally; dividing by a zero
// magnitude follows IEEE-754.
func (s Scalar) Div(o Scalar) Scalar {
	u, _ := s.unit.Div(o.unit)
	return Scalar{
		coherent:  s.coherent / o.coherent,
		isComplex: s.isComplex || o.isComplex,
		unit:      u,
	}
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	return Scalar{coherent: -s.coherent, isComplex: s.isComplex, unit: s.unit}
}

// Pow raises s to a rational power. It fails like the dimensionality
// algebra for non-representable exponents, and with a DomainError for a
// fractional power of a negative real magnitude.
func (s Scalar) Pow(p dimension.Ratio) (Scalar, error) {
	u, _, err := s.unit.Pow(p)
	if err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return Scalar{
			coherent:  cmplx.Pow(s.coherent, complex(p.Float64(), 0)),
			isComplex: true,
			unit:      u,
		}, nil
	}
	base := real(s.coherent)
	if base < 0 && !p.IsInt() {
		return Scalar{}, siquant.NewDomainError(
			"fractional power %s of negative real value %v", p, base)
	}
	return Scalar{coherent: complex(math.Pow(base, p.Float64()), 0), unit: u}, nil
}

// Root takes the principal nth root of value and unit together, n a
// positive integer. A real operand must be non-negative when n is even,
// else a DomainError is returned; a complex operand takes the principal
// branch.
func (s Scalar) Root(n int) (Scalar, error) {
	u, _, err := s.unit.Root(n)
	if err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return Scalar{
			coherent:  cmplx.Pow(s.coherent, complex(1/float64(n), 0)),
			isComplex: true,
			unit:      u,
		}, nil
	}
	v := real(s.coherent)
	switch {
	case v >= 0:
		return Scalar{coherent: complex(math.Pow(v, 1/float64(n)), 0), unit: u}, nil
	case n%2 == 1:
		return Scalar{coherent: complex(-math.Pow(-v, 1/float64(n)), 0), unit: u}, nil
	default:
		return Scalar{}, siquant.NewDomainError(
			"even root %d of negative real value %v", n, v)
	}
}

// Sqrt is Root(2).
func (s Scalar) Sqrt() (Scalar, error) {
	return s.Root(2)
}

// ConvertTo re-expresses s in the target unit, given as a *unit.Unit or a
// unit expression string. The target must be dimensionally equivalent.
func (s Scalar) ConvertTo(target any) (Scalar, error) {
	u, err := unit.Resolve(target)
	if err != nil {
		return Scalar{}, err
	}
	if !unit.IsEquivalent(s.unit, u) {
		return Scalar{}, siquant.NewDimensionalMismatch("convert",
			s.Dimensionality().Symbol(), u.Dimensionality().Symbol())
	}
	return Scalar{coherent: s.coherent, isComplex: s.isComplex, unit: u}, nil
}

// CanConvertTo is a non-throwing equivalence probe.
func (s Scalar) CanConvertTo(target any) bool {
	u, err := unit.Resolve(target)
	if err != nil {
		return false
	}
	return unit.IsEquivalent(s.unit, u)
}

// requireDimensionless guards the transcendental functions.
func (s Scalar) requireDimensionless(op string) error {
	if !s.Dimensionality().IsDimensionless() {
		return &siquant.DimensionalMismatchError{Op: op, Left: s.Dimensionality().Symbol()}
	}
	return nil
}

// dimensionless wraps a coherent magnitude in the scale-1 unit.
func dimensionless(v complex128, isComplex bool) Scalar {
	return Scalar{coherent: v, isComplex: isComplex, unit: unit.Dimensionless()}
}

// Sin returns the sine of a dimensionless operand. Angular operands in
// degrees are coherent in radians, so no pre-conversion is needed.
func (s Scalar) Sin() (Scalar, error) {
	if err := s.requireDimensionless("sin"); err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return dimensionless(cmplx.Sin(s.coherent), true), nil
	}
	return dimensionless(complex(math.Sin(real(s.coherent)), 0), false), nil
}

// Cos returns the cosine of a dimensionless operand.
func (s Scalar) Cos() (Scalar, error) {
	if err := s.requireDimensionless("cos"); err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return dimensionless(cmplx.Cos(s.coherent), true), nil
	}
	return dimensionless(complex(math.Cos(real(s.coherent)), 0), false), nil
}

// Tan returns the tangent of a dimensionless operand.
func (s Scalar) Tan() (Scalar, error) {
	if err := s.requireDimensionless("tan"); err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return dimensionless(cmplx.Tan(s.coherent), true), nil
	}
	return dimensionless(complex(math.Tan(real(s.coherent)), 0), false), nil
}

// Ln returns the natural logarithm of a dimensionless operand. A
// non-positive real operand is a DomainError.
func (s Scalar) Ln() (Scalar, error) {
	if err := s.requireDimensionless("ln"); err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return dimensionless(cmplx.Log(s.coherent), true), nil
	}
	v := real(s.coherent)
	if v <= 0 {
		return Scalar{}, siquant.NewDomainError("ln of non-positive real value %v", v)
	}
	return dimensionless(complex(math.Log(v), 0), false), nil
}

// Exp returns e raised to a dimensionless operand.
func (s Scalar) Exp() (Scalar, error) {
	if err := s.requireDimensionless("exp"); err != nil {
		return Scalar{}, err
	}
	if s.isComplex {
		return dimensionless(cmplx.Exp(s.coherent), true), nil
	}
	return dimensionless(complex(math.Exp(real(s.coherent)), 0), false), nil
}

// Arg returns the phase of a dimensionless operand in radians.
func (s Scalar) Arg() (Scalar, error) {
	if err := s.requireDimensionless("argument"); err != nil {
		return Scalar{}, err
	}
	return dimensionless(complex(cmplx.Phase(s.coherent), 0), false), nil
}

// Abs returns the magnitude of s as a real scalar with the same
// dimensionality and display unit.
func (s Scalar) Abs() Scalar {
	return Scalar{coherent: complex(cmplx.Abs(s.coherent), 0), unit: s.unit}
}

// Resolve normalizes a collaborator-facing quantity parameter: a Scalar is
// returned as-is, a string is parsed as a scalar expression. Any other
// type is rejected.
func Resolve(v any) (Scalar, error) {
	switch x := v.(type) {
	case Scalar:
		return x, nil
	case string:
		return Parse(x)
	default:
		return Scalar{}, siquant.NewValidationError("unsupported quantity argument type %T", v)
	}
}
