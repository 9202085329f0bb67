package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/siquant"
)

func TestParse_BaseSymbols(t *testing.T) {
	for i, sym := range []string{"L", "M", "T", "I", "Θ", "N", "J"} {
		d, err := Parse(sym)
		require.NoError(t, err, sym)
		assert.True(t, d.Equal(ForBase(i)), sym)
		assert.Equal(t, sym, d.Symbol())
	}
}

func TestParse_Force(t *testing.T) {
	d, err := Parse("M*L/T^2")
	require.NoError(t, err)

	force, err := ForQuantity("force")
	require.NoError(t, err)
	assert.True(t, d.Equal(force))
}

func TestParse_SlashBindsRestOfProduct(t *testing.T) {
	// "/" divides by everything to its right until the next "/".
	a, err := Parse("L/T*M")
	require.NoError(t, err)
	b, err := Parse("L/(T*M)")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := Parse("L/T/M")
	require.NoError(t, err)
	d, err := Parse("L*M/T")
	require.NoError(t, err)
	// L/T/M multiplies the denominators.
	e, err := Parse("L/(T*M)")
	require.NoError(t, err)
	assert.True(t, c.Equal(e))
	assert.False(t, c.Equal(d))
}

func TestParse_RationalExponents(t *testing.T) {
	d, err := Parse("L^(1/2)")
	require.NoError(t, err)
	assert.Equal(t, "L^(1/2)", d.Symbol())

	sq, err := d.Power(Int(2))
	require.NoError(t, err)
	assert.Equal(t, "L", sq.Symbol())

	neg, err := Parse("T^-2")
	require.NoError(t, err)
	assert.Equal(t, "1/T^2", neg.Symbol())
}

func TestParse_Parentheses(t *testing.T) {
	a, err := Parse("(M*L)/(T*T)")
	require.NoError(t, err)
	b, err := Parse("M*L/T^2")
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	c, err := Parse("(L/T)^2")
	require.NoError(t, err)
	assert.Equal(t, "L^2/T^2", c.Symbol())
}

func TestParse_RejectsAdditionSubtraction(t *testing.T) {
	// Sums of dimensionalities are physically meaningless and must be
	// rejected, spaces or not.
	exprs := []string{
		"L+T", "M-L", "L + T", "M - L", "L+M*T",
		"L*T+M", "L/T+M", "L^2+T^2", "M+L+T", "L-T+M",
	}
	for _, expr := range exprs {
		_, err := Parse(expr)
		require.Error(t, err, expr)
		assert.True(t, siquant.IsParseError(err), expr)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		expr    string
		unknown bool
	}{
		{"", false},
		{"L^", false},
		{"L^(1/2", false},
		{"(L*M", false},
		{"L)", false},
		{"*L", false},
		{"L^x", false},
		{"Q", true},
		{"LM", true},
		{"L*meters", true},
	}
	for _, tt := range tests {
		_, err := Parse(tt.expr)
		require.Error(t, err, tt.expr)
		if tt.unknown {
			assert.True(t, siquant.IsUnknownIdentifier(err), tt.expr)
		} else {
			assert.True(t, siquant.IsParseError(err), tt.expr)
		}
	}
}

func TestParse_ErrorCarriesPosition(t *testing.T) {
	_, err := Parse("L^2*M*T^-x")
	require.Error(t, err)

	var pe *siquant.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "L^2*M*T^-x", pe.Expr)
	assert.Equal(t, "x", pe.Token)
	assert.Equal(t, 9, pe.Pos)
}
