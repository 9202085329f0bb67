package unit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
)

func TestParse_BaseUnits(t *testing.T) {
	m, mult, err := Parse("m")
	require.NoError(t, err)
	assert.Equal(t, "m", m.Symbol())
	assert.Equal(t, "meter", m.Name())
	assert.Equal(t, 1.0, mult)

	s, mult, err := Parse("s")
	require.NoError(t, err)
	assert.Equal(t, "second", s.Name())
	assert.Equal(t, 1.0, mult)

	kg, mult, err := Parse("kg")
	require.NoError(t, err)
	assert.Equal(t, "kg", kg.Symbol())
	assert.Equal(t, "kilogram", kg.Name())
	assert.Equal(t, 1.0, mult)

	g, mult, err := Parse("g")
	require.NoError(t, err)
	assert.Equal(t, "gram", g.Name())
	assert.Equal(t, 1e-3, mult)
}

func TestParse_DerivedExpressions(t *testing.T) {
	velocity, mult, err := Parse("m/s")
	require.NoError(t, err)
	assert.Equal(t, "m/s", velocity.Symbol())
	assert.Equal(t, 1.0, mult)

	force, _, err := Parse("kg*m/s^2")
	require.NoError(t, err)
	assert.Equal(t, "kg*m/s^2", force.Symbol())

	newton, _, err := Parse("N")
	require.NoError(t, err)
	assert.True(t, IsEquivalent(force, newton))
	assert.False(t, Equal(force, newton))

	pressure, _, err := Parse("kg/(m*s^2)")
	require.NoError(t, err)
	pascal, _, err := Parse("Pa")
	require.NoError(t, err)
	assert.True(t, IsEquivalent(pressure, pascal))
}

func TestParse_CanonicalizesOperandOrder(t *testing.T) {
	a, _, err := Parse("m*kg/s^2")
	require.NoError(t, err)
	b, _, err := Parse("kg*m/s^2")
	require.NoError(t, err)
	assert.True(t, Equal(a, b))
	assert.Same(t, a, b)
}

func TestParse_Prefixes(t *testing.T) {
	tests := []struct {
		expr string
		name string
		mult float64
	}{
		{"km", "kilometer", 1e3},
		{"ms", "millisecond", 1e-3},
		{"mg", "milligram", 1e-6},
		{"µs", "microsecond", 1e-6},
		{"μs", "microsecond", 1e-6},
		{"GHz", "gigahertz", 1e9},
		{"daL", "decaliter", 1e-2},
		{"cm", "centimeter", 1e-2},
		{"Tm", "terameter", 1e12},
		{"fmol", "femtomole", 1e-15},
	}
	for _, tt := range tests {
		u, mult, err := Parse(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.name, u.Name(), tt.expr)
		assert.InEpsilon(t, tt.mult, mult, 1e-12, tt.expr)
	}
}

func TestParse_ExactSymbolWinsOverPrefix(t *testing.T) {
	// "min" is the minute, not milli-inch; "Pa" the pascal, not peta-are;
	// "h" the hour; "T" the tesla; "cd" the candela.
	min, mult, err := Parse("min")
	require.NoError(t, err)
	assert.Equal(t, "minute", min.Name())
	assert.Equal(t, 60.0, mult)

	h, mult, err := Parse("h")
	require.NoError(t, err)
	assert.Equal(t, "hour", h.Name())
	assert.Equal(t, 3600.0, mult)

	tesla, mult, err := Parse("T")
	require.NoError(t, err)
	assert.Equal(t, "tesla", tesla.Name())
	assert.Equal(t, 1.0, mult)

	cd, _, err := Parse("cd")
	require.NoError(t, err)
	assert.Equal(t, "candela", cd.Name())
}

func TestParse_NoStackedPrefixes(t *testing.T) {
	_, _, err := Parse("kkm")
	require.Error(t, err)
	assert.True(t, siquant.IsUnknownIdentifier(err))
}

func TestParse_SlashBindsRestOfProduct(t *testing.T) {
	a, _, err := Parse("J/kg*K")
	require.NoError(t, err)
	b, _, err := Parse("J/(kg*K)")
	require.NoError(t, err)
	assert.True(t, Equal(a, b))
}

func TestParse_RationalExponent(t *testing.T) {
	u, mult, err := Parse("m^(1/2)")
	require.NoError(t, err)
	assert.Equal(t, "m^(1/2)", u.Symbol())
	assert.Equal(t, 1.0, mult)

	half, err := dimension.Parse("L^(1/2)")
	require.NoError(t, err)
	assert.True(t, u.Dimensionality().Equal(half))
}

func TestParse_Errors(t *testing.T) {
	parseErrs := []string{"", "m^", "(m*s", "m)", "*m", "m+s", "m-s"}
	for _, expr := range parseErrs {
		_, _, err := Parse(expr)
		require.Error(t, err, expr)
		assert.True(t, siquant.IsParseError(err), expr)
	}

	unknownErrs := []string{"invalid_unit_xyz", "xyz", "qm"}
	for _, expr := range unknownErrs {
		_, _, err := Parse(expr)
		require.Error(t, err, expr)
		assert.True(t, siquant.IsUnknownIdentifier(err), expr)
	}
}

func TestParse_RoundTripCatalog(t *testing.T) {
	// Reparsing any interned unit's canonical symbol yields the same unit.
	for _, sym := range DefaultRegistry().Symbols() {
		u, err := FindBySymbol(sym)
		require.NoError(t, err, sym)
		back, _, err := Parse(u.Symbol())
		require.NoError(t, err, sym)
		assert.True(t, Equal(u, back), sym)
	}
}
