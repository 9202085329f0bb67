package scalar

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/dimension"
	"github.com/c360studio/siquant/unit"
)

func mustParse(t *testing.T, expr string) Scalar {
	t.Helper()
	s, err := Parse(expr)
	require.NoError(t, err, expr)
	return s
}

func TestNew_StoresCoherently(t *testing.T) {
	km, _, err := unit.Parse("km")
	require.NoError(t, err)

	s := New(5, km)
	assert.Equal(t, complex(5000, 0), s.Coherent())
	assert.Equal(t, 5.0, s.Value())
	assert.Equal(t, "km", s.UnitSymbol())
	assert.False(t, s.IsComplex())
}

func TestAdd_SameDimensionality(t *testing.T) {
	a := mustParse(t, "5.0 m")
	b := mustParse(t, "20.0 cm")

	sum, err := a.Add(b)
	require.NoError(t, err)
	// Result keeps the left operand's display unit.
	assert.Equal(t, "m", sum.UnitSymbol())
	assert.InDelta(t, 5.2, sum.Value(), 1e-12)
}

func TestAdd_Mismatch(t *testing.T) {
	a := mustParse(t, "5.0 m")
	b := mustParse(t, "2.0 s")

	_, err := a.Add(b)
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))

	_, err = a.Sub(b)
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))
}

func TestDiv_SynthesizesUnit(t *testing.T) {
	distance := mustParse(t, "100.0 m")
	time := mustParse(t, "5.0 s")

	speed := distance.Div(time)
	assert.True(t, speed.Equal(mustParse(t, "20.0 m/s")))
}

func TestMul_KineticEnergy(t *testing.T) {
	half := mustParse(t, "0.5 * 2 kg * (10 m/s)^2")

	energy, err := dimension.ForQuantity("energy")
	require.NoError(t, err)
	assert.True(t, half.Dimensionality().Equal(energy))
	assert.InDelta(t, 100, real(half.Coherent()), 1e-12)

	joules, err := half.ConvertTo("J")
	require.NoError(t, err)
	assert.InDelta(t, 100, joules.Value(), 1e-12)
}

func TestRoot_ValueAndUnitTogether(t *testing.T) {
	area := mustParse(t, "25.0 m^2")

	side, err := area.Root(2)
	require.NoError(t, err)
	assert.True(t, side.Equal(mustParse(t, "5.0 m")))

	sq, err := area.Sqrt()
	require.NoError(t, err)
	assert.True(t, sq.Equal(side))
}

func TestRoot_EvenRootOfNegativeReal(t *testing.T) {
	neg := mustParse(t, "-4.0 m^2")

	_, err := neg.Root(2)
	require.Error(t, err)
	assert.True(t, siquant.IsDomain(err))

	// Odd roots of negative reals are fine.
	vol := mustParse(t, "-8.0 m^3")
	side, err := vol.Root(3)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, side.Value(), 1e-12)
	assert.Equal(t, "m", side.UnitSymbol())
}

func TestRoot_ComplexPrincipalBranch(t *testing.T) {
	minusOne := NewComplex(complex(-1, 0), unit.Dimensionless())

	i, err := minusOne.Root(2)
	require.NoError(t, err)
	got := i.Complex()
	assert.InDelta(t, 0, real(got), 1e-12)
	assert.InDelta(t, 1, imag(got), 1e-12)
}

func TestPow(t *testing.T) {
	v := mustParse(t, "3.0 m")

	sq, err := v.Pow(dimension.Int(2))
	require.NoError(t, err)
	assert.InDelta(t, 9, sq.Value(), 1e-12)
	assert.Equal(t, "m^2", sq.UnitSymbol())

	inv, err := v.Pow(dimension.Int(-1))
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, inv.Value(), 1e-12)
	assert.Equal(t, "1/m", inv.UnitSymbol())

	neg := mustParse(t, "-8.0")
	halfExp, err := dimension.NewRatio(1, 2)
	require.NoError(t, err)
	_, err = neg.Pow(halfExp)
	require.Error(t, err)
	assert.True(t, siquant.IsDomain(err))
}

func TestConvertTo(t *testing.T) {
	speed := mustParse(t, "10.0 m/s")

	kmh, err := speed.ConvertTo("km/h")
	require.NoError(t, err)
	assert.InDelta(t, 36.0, kmh.Value(), 1e-9)
	assert.Equal(t, "km/h", kmh.UnitSymbol())

	// Idempotence: converting twice equals converting once.
	again, err := kmh.ConvertTo("km/h")
	require.NoError(t, err)
	assert.True(t, again.Equal(kmh))

	_, err = speed.ConvertTo("kg")
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))
}

func TestCanConvertTo(t *testing.T) {
	speed := mustParse(t, "10.0 m/s")
	assert.True(t, speed.CanConvertTo("km/h"))
	assert.False(t, speed.CanConvertTo("kg"))
	assert.False(t, speed.CanConvertTo("not a unit"))
}

func TestTranscendental_RequiresDimensionless(t *testing.T) {
	length := mustParse(t, "1.0 m")

	_, err := length.Sin()
	require.Error(t, err)
	assert.True(t, siquant.IsDimensionalMismatch(err))

	_, err = length.Ln()
	require.Error(t, err)
	_, err = length.Exp()
	require.Error(t, err)
}

func TestTranscendental_Values(t *testing.T) {
	x := mustParse(t, "0.5")

	sin, err := x.Sin()
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(0.5), sin.Value(), 1e-12)

	cos, err := x.Cos()
	require.NoError(t, err)
	assert.InDelta(t, math.Cos(0.5), cos.Value(), 1e-12)

	tan, err := x.Tan()
	require.NoError(t, err)
	assert.InDelta(t, math.Tan(0.5), tan.Value(), 1e-12)

	ln, err := x.Ln()
	require.NoError(t, err)
	assert.InDelta(t, math.Log(0.5), ln.Value(), 1e-12)

	exp, err := x.Exp()
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(0.5), exp.Value(), 1e-12)
}

func TestTranscendental_DegreesAreCoherentInRadians(t *testing.T) {
	angle := mustParse(t, "30 °")

	sin, err := angle.Sin()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, sin.Value(), 1e-12)
}

func TestLn_NonPositiveReal(t *testing.T) {
	_, err := mustParse(t, "-1.0").Ln()
	require.Error(t, err)
	assert.True(t, siquant.IsDomain(err))
}

func TestComplex_AbsAndArg(t *testing.T) {
	z := mustParse(t, "3+4j Ω")
	assert.True(t, z.IsComplex())

	abs := z.Abs()
	assert.False(t, abs.IsComplex())
	assert.InDelta(t, 5.0, abs.Value(), 1e-12)
	assert.Equal(t, "Ω", abs.UnitSymbol())

	w := mustParse(t, "1+1j")
	arg, err := w.Arg()
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, arg.Value(), 1e-12)
}

func TestResolve(t *testing.T) {
	s := mustParse(t, "5.0 m")

	fromHandle, err := Resolve(s)
	require.NoError(t, err)
	assert.True(t, fromHandle.Equal(s))

	fromText, err := Resolve("5.0 m")
	require.NoError(t, err)
	assert.True(t, fromText.Equal(s))

	_, err = Resolve(3.14)
	require.Error(t, err)
	assert.True(t, siquant.IsValidation(err))
}
