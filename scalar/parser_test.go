package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/siquant"
)

func TestParse_ValueWithUnit(t *testing.T) {
	s := mustParse(t, "9.81 m/s^2")
	assert.InDelta(t, 9.81, s.Value(), 1e-12)
	assert.Equal(t, "m/s^2", s.UnitSymbol())

	sci := mustParse(t, "1.5e3 Hz")
	assert.Equal(t, 1500.0, sci.Value())
	assert.Equal(t, "Hz", sci.UnitSymbol())

	neg := mustParse(t, "-42.0 Hz")
	assert.Equal(t, -42.0, neg.Value())
}

func TestParse_BareNumberIsDimensionless(t *testing.T) {
	s := mustParse(t, "1.5")
	assert.Equal(t, 1.5, s.Value())
	assert.True(t, s.Dimensionality().IsDimensionless())
	assert.Equal(t, "1", s.UnitSymbol())
}

func TestParse_ComplexLiterals(t *testing.T) {
	z := mustParse(t, "3+4j Ω")
	assert.True(t, z.IsComplex())
	assert.Equal(t, complex(3, 4), z.Complex())
	assert.Equal(t, "Ω", z.UnitSymbol())

	conj := mustParse(t, "3-4j")
	assert.Equal(t, complex(3, -4), conj.Complex())

	im := mustParse(t, "4j")
	assert.Equal(t, complex(0, 4), im.Complex())

	// A spaced sum is ordinary addition of dimensionless terms.
	sum := mustParse(t, "3 + 4j")
	assert.Equal(t, complex(3, 4), sum.Complex())
}

func TestParse_Algebraic(t *testing.T) {
	s := mustParse(t, "0.5 * 2 kg * (10 m/s)^2")
	assert.InDelta(t, 100, real(s.Coherent()), 1e-12)
	assert.Equal(t, "kg*m^2/s^2", s.UnitSymbol())

	diff := mustParse(t, "10.0 m - 400 cm")
	assert.InDelta(t, 6.0, diff.Value(), 1e-12)
	assert.Equal(t, "m", diff.UnitSymbol())

	quot := mustParse(t, "100.0 m / 5.0 s")
	assert.True(t, quot.Equal(mustParse(t, "20.0 m/s")))
}

func TestParse_UnitSuffixBindsTightly(t *testing.T) {
	// The "*" after "kg" belongs to the scalar grammar because the next
	// operand is parenthesized, while "/h" continues the unit suffix.
	s := mustParse(t, "100 km/h")
	assert.Equal(t, "km/h", s.UnitSymbol())
	assert.InDelta(t, 100, s.Value(), 1e-12)

	p := mustParse(t, "2 m * 3 m")
	assert.InDelta(t, 6, p.Value(), 1e-12)
	assert.Equal(t, "m^2", p.UnitSymbol())
}

func TestParse_Constants(t *testing.T) {
	tau := mustParse(t, "2 * π")
	assert.InDelta(t, 2*math.Pi, tau.Value(), 1e-12)

	alias := mustParse(t, "2 * pi")
	assert.True(t, alias.Equal(tau))

	c, err := Constant("c_0")
	require.NoError(t, err)
	assert.Equal(t, 299792458.0, c.Value())
	assert.Equal(t, "m/s", c.UnitSymbol())

	// Photon energy E = h_P * c_0 / λ.
	e := mustParse(t, "h_P * c_0 / 500 nm")
	j, err := e.ConvertTo("J")
	require.NoError(t, err)
	assert.InDelta(t, 3.97289e-19, j.Value(), 1e-23)
}

func TestParse_ConstantUnknown(t *testing.T) {
	_, err := Parse("2 * nosuchconstant")
	require.Error(t, err)
	assert.True(t, siquant.IsUnknownIdentifier(err))
}

func TestParse_MismatchInsideExpression(t *testing.T) {
	_, err := Parse("5.0 m + 2.0 s")
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))
}

func TestParse_Errors(t *testing.T) {
	exprs := []string{
		"",
		"invalid expression format",
		"5.0 +",
		"(5.0 m",
		"5.0 m)",
		"5..0",
		"* 2",
		"2 ^",
		"2 ^ m",
	}
	for _, expr := range exprs {
		_, err := Parse(expr)
		require.Error(t, err, expr)
	}
}

func TestParse_UnknownUnit(t *testing.T) {
	// "5.0 qqq" lexes "qqq" as an operand identifier, which is neither a
	// unit symbol nor a constant.
	_, err := Parse("5.0 qqq")
	require.Error(t, err)
}

func TestConstantNames(t *testing.T) {
	names := ConstantNames()
	assert.Contains(t, names, "c_0")
	assert.Contains(t, names, "k_B")
	assert.Contains(t, names, "π")
	assert.Greater(t, len(names), 15)
}
