// Package unit implements the SI unit registry and algebra. Units are
// immutable and interned per registry by canonical symbol: reference
// equality implies structural equality. Every parse or composition returns
// the interned unit together with the multiplier that converts a value
// expressed in that unit into the coherent SI reference representation.
package unit

import (
	"math"
	"sort"
	"strings"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
)

// component is one catalog token (a possibly prefixed symbol such as "km"
// or "N") raised to a rational exponent.
type component struct {
	token string
	exp   dimension.Ratio
}

// Unit is an interned measurement scale for one dimensionality. Units are
// never mutated after creation.
type Unit struct {
	symbol     string
	name       string
	plural     string
	dim        dimension.Dimensionality
	multiplier float64
	components []component
	reg        *Registry
}

// Symbol returns the canonical display symbol.
func (u *Unit) Symbol() string {
	return u.symbol
}

// Name returns the display name, falling back to the symbol for composed
// units that have no name of their own.
func (u *Unit) Name() string {
	if u.name == "" {
		return u.symbol
	}
	return u.name
}

// Plural returns the plural display name, falling back to Name.
func (u *Unit) Plural() string {
	if u.plural == "" {
		return u.Name()
	}
	return u.plural
}

// Dimensionality returns the unit's dimensionality.
func (u *Unit) Dimensionality() dimension.Dimensionality {
	return u.dim
}

// Multiplier returns the coherent scale factor: how many coherent reference
// units one instance of this unit equals.
func (u *Unit) Multiplier() float64 {
	return u.multiplier
}

// IsDimensionless returns true when the unit's dimensionality is the zero
// tuple.
func (u *Unit) IsDimensionless() bool {
	return u.dim.IsDimensionless()
}

// String is the canonical symbol.
func (u *Unit) String() string {
	return u.symbol
}

// Equal is strict structural equality. Interning guarantees it coincides
// with reference equality within one registry.
func Equal(u1, u2 *Unit) bool {
	return u1 == u2 || u1.symbol == u2.symbol
}

// IsEquivalent reports scale-independent compatibility: equal
// dimensionalities.
func IsEquivalent(u1, u2 *Unit) bool {
	return u1.dim.Equal(u2.dim)
}

// ConversionFactor returns the factor that converts a value expressed in
// from into to. It fails with a DimensionalMismatchError when the units are
// not equivalent.
func ConversionFactor(from, to *Unit) (float64, error) {
	if !IsEquivalent(from, to) {
		return 0, siquant.NewDimensionalMismatch("convert", from.dim.Symbol(), to.dim.Symbol())
	}
	return from.multiplier / to.multiplier, nil
}

// Mul returns the interned product unit and its coherent multiplier.
// It never fails: exponent algebra is vector addition.
func (u *Unit) Mul(o *Unit) (*Unit, float64) {
	comps := mergeComponents(u.components, o.components, false)
	v := u.reg.intern(comps, u.dim.Mul(o.dim), u.multiplier*o.multiplier, "", "")
	return v, v.multiplier
}

// Div returns the interned quotient unit and its coherent multiplier.
func (u *Unit) Div(o *Unit) (*Unit, float64) {
	comps := mergeComponents(u.components, o.components, true)
	v := u.reg.intern(comps, u.dim.Div(o.dim), u.multiplier/o.multiplier, "", "")
	return v, v.multiplier
}

// Pow raises the unit to a rational power. It fails like
// dimension.Power when a resulting exponent is not representable.
func (u *Unit) Pow(p dimension.Ratio) (*Unit, float64, error) {
	d, err := u.dim.Power(p)
	if err != nil {
		return nil, 0, err
	}
	comps := make([]component, 0, len(u.components))
	for _, c := range u.components {
		e := c.exp.MulRatio(p)
		if e.Den() > dimension.MaxExponentDenominator {
			return nil, 0, siquant.NewValidationError(
				"exponent %s of %s is not representable (denominator above %d)",
				e, c.token, dimension.MaxExponentDenominator)
		}
		if !e.IsZero() {
			comps = append(comps, component{token: c.token, exp: e})
		}
	}
	v := u.reg.intern(comps, d, math.Pow(u.multiplier, p.Float64()), "", "")
	return v, v.multiplier, nil
}

// Root takes the nth root of the unit, n a positive integer. It fails like
// dimension.NthRoot when an exponent does not divide evenly within the
// bounded-denominator invariant.
func (u *Unit) Root(n int) (*Unit, float64, error) {
	d, err := u.dim.NthRoot(n)
	if err != nil {
		return nil, 0, err
	}
	comps := make([]component, 0, len(u.components))
	for _, c := range u.components {
		e, err := c.exp.DivInt(n)
		if err != nil {
			return nil, 0, err
		}
		if e.Den() > dimension.MaxExponentDenominator {
			return nil, 0, siquant.NewValidationError(
				"root %d of %s^%s is not representable (denominator above %d)",
				n, c.token, c.exp, dimension.MaxExponentDenominator)
		}
		comps = append(comps, component{token: c.token, exp: e})
	}
	v := u.reg.intern(comps, d, math.Pow(u.multiplier, 1/float64(n)), "", "")
	return v, v.multiplier, nil
}

// mergeComponents adds (or subtracts) exponent vectors over tokens,
// dropping cancelled tokens.
func mergeComponents(a, b []component, subtract bool) []component {
	merged := make(map[string]dimension.Ratio, len(a)+len(b))
	for _, c := range a {
		merged[c.token] = c.exp
	}
	for _, c := range b {
		e := c.exp
		if subtract {
			e = e.Neg()
		}
		merged[c.token] = merged[c.token].Add(e)
	}
	out := make([]component, 0, len(merged))
	for token, exp := range merged {
		if !exp.IsZero() {
			out = append(out, component{token: token, exp: exp})
		}
	}
	sortComponents(out)
	return out
}

func sortComponents(comps []component) {
	// Alphabetical token order keeps the canonical symbol deterministic
	// regardless of construction order.
	sort.Slice(comps, func(i, j int) bool { return comps[i].token < comps[j].token })
}

// canonicalSymbol renders positive exponents joined by "*", negatives after
// "/", parenthesized when more than one, and "1" for an empty numerator.
func canonicalSymbol(comps []component) string {
	var num, den []string
	for _, c := range comps {
		switch c.exp.Sign() {
		case 1:
			num = append(num, renderTerm(c.token, c.exp))
		case -1:
			den = append(den, renderTerm(c.token, c.exp.Neg()))
		}
	}
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

func renderTerm(token string, e dimension.Ratio) string {
	if e.Equal(dimension.Int(1)) {
		return token
	}
	if e.IsInt() {
		return token + "^" + e.String()
	}
	return token + "^(" + e.String() + ")"
}

// Resolve normalizes a collaborator-facing unit parameter: a *Unit is
// returned as-is, a string is parsed as a unit expression. Any other type
// is rejected.
func Resolve(v any) (*Unit, error) {
	switch x := v.(type) {
	case *Unit:
		return x, nil
	case string:
		u, _, err := Parse(x)
		return u, err
	default:
		return nil, siquant.NewValidationError("unsupported unit argument type %T", v)
	}
}
