package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/c360studio/siquant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := Root()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{name: "average speed", expr: "100 km / 2 h", want: "50 km/h\n"},
		{name: "kinetic energy converted by hand", expr: "0.5 * 2 kg * (10 m/s)^2", want: "100 kg*m^2/s^2\n"},
		{name: "bare number", expr: "2 + 3", want: "5\n"},
		{name: "complex impedance", expr: "3+4j Ω", want: "3+4j Ω\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, "eval", tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestEvalCommandDimensionalError(t *testing.T) {
	_, err := runCommand(t, "eval", "1 m + 1 s")
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))
}

func TestEvalCommandJSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "eval", "100 km / 2 h")
	require.NoError(t, err)

	var res struct {
		Value          float64 `json:"value"`
		Unit           string  `json:"unit"`
		Dimensionality string  `json:"dimensionality"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, 50.0, res.Value, 1e-9)
	assert.Equal(t, "km/h", res.Unit)
	assert.Equal(t, "L/T", res.Dimensionality)
}

func TestEvalCommandPrecision(t *testing.T) {
	out, err := runCommand(t, "--precision", "3", "eval", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.333\n", out)
}

func TestConvertCommand(t *testing.T) {
	out, err := runCommand(t, "convert", "100 km/h", "m/s")
	require.NoError(t, err)
	assert.Contains(t, out, "27.7777778")
	assert.Contains(t, out, "m/s")
}

func TestConvertCommandMismatch(t *testing.T) {
	_, err := runCommand(t, "convert", "100 km", "s")
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))
}

func TestDimCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "quantity name", args: []string{"pressure"}, want: "M/(L*T^2)\n"},
		{name: "multi word quantity", args: []string{"electric", "charge"}, want: "T*I\n"},
		{name: "expression", args: []string{"M*L/T^2"}, want: "L*M/T^2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, append([]string{"dim"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDimCommandUnknown(t *testing.T) {
	_, err := runCommand(t, "dim", "flux capacitance rating")
	require.Error(t, err)
}

func TestUnitCommand(t *testing.T) {
	out, err := runCommand(t, "unit", "km")
	require.NoError(t, err)
	assert.Contains(t, out, "km")
	assert.Contains(t, out, "kilometer")
	assert.Contains(t, out, "L")
	assert.Contains(t, out, "1000")
}

func TestUnitCommandJSON(t *testing.T) {
	out, err := runCommand(t, "--format", "json", "unit", "kg*m/s^2")
	require.NoError(t, err)

	var res struct {
		Symbol         string  `json:"symbol"`
		Dimensionality string  `json:"dimensionality"`
		Multiplier     float64 `json:"multiplier"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "kg*m/s^2", res.Symbol)
	assert.Equal(t, "L*M/T^2", res.Dimensionality)
	assert.InDelta(t, 1.0, res.Multiplier, 1e-12)
}

func TestQuantitiesCommand(t *testing.T) {
	out, err := runCommand(t, "quantities", "--filter", "electric charge")
	require.NoError(t, err)
	assert.Contains(t, out, "electric charge")
	assert.Contains(t, out, "T*I")
}

func TestConstantsCommand(t *testing.T) {
	out, err := runCommand(t, "constants")
	require.NoError(t, err)
	assert.Contains(t, out, "c_0")
	assert.Contains(t, out, "m/s")
	assert.Contains(t, out, "k_B")
}

func TestCustomUnitsRegisteredOnEveryExecute(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	chdir(t, dir)

	cfgYAML := `units:
  - symbol: fur
    name: furlong
    plural: furlongs
    definition: 201.168 m
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "siquant.yaml"), []byte(cfgYAML), 0644))

	out, err := runCommand(t, "eval", "2 fur")
	require.NoError(t, err)
	assert.Equal(t, "2 fur\n", out)

	// A second Execute in the same process applies the config units again;
	// re-registering the identical definition must not fail.
	out, err = runCommand(t, "convert", "1 fur", "m")
	require.NoError(t, err)
	assert.Equal(t, "201.168 m\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "siquant version")
}
