package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/siquant"
)

func TestForQuantity_Known(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"force", "M*L/T^2"},
		{"pressure", "M/(L*T^2)"},
		{"energy", "M*L^2/T^2"},
		{"power", "M*L^2/T^3"},
		{"electric charge", "I*T"},
		{"electric resistance", "M*L^2/(T^3*I^2)"},
		{"capacitance", "I^2*T^4/(M*L^2)"},
		{"entropy", "M*L^2/(T^2*Θ)"},
		{"magnetic flux density", "M/(T^2*I)"},
		{"amount concentration", "N/L^3"},
		{"illuminance", "J/L^2"},
		{"speed", "L/T"},
	}
	for _, tt := range tests {
		got, err := ForQuantity(tt.name)
		require.NoError(t, err, tt.name)
		want, err := Parse(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.True(t, got.Equal(want), "%s should be %s, got %s", tt.name, tt.expr, got.Symbol())
	}
}

func TestForQuantity_CaseSensitive(t *testing.T) {
	_, err := ForQuantity("Force")
	require.Error(t, err)
	assert.True(t, siquant.IsUnknownIdentifier(err))
}

func TestForQuantity_Unknown(t *testing.T) {
	_, err := ForQuantity("flux capacitance")
	require.Error(t, err)
	assert.True(t, siquant.IsUnknownIdentifier(err))
}

func TestForQuantity_DimensionlessEntries(t *testing.T) {
	for _, name := range []string{
		"dimensionless", "plane angle", "solid angle", "strain",
		"refractive index", "fine structure constant", "mass ratio",
	} {
		d, err := ForQuantity(name)
		require.NoError(t, err, name)
		assert.True(t, d.IsDimensionless(), name)
	}
}

func TestQuantityNames_SortedAndComplete(t *testing.T) {
	names := QuantityNames()
	assert.Greater(t, len(names), 150)
	assert.True(t, sortedStrings(names))

	for _, name := range names {
		_, err := ForQuantity(name)
		assert.NoError(t, err, name)
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}
