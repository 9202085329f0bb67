package scalar

import (
	"math"
	"sort"
	"sync"

	"github.com/c360studio/siquant"
	"github.com/c360studio/siquant/unit"
)

// constDef declares one named physical constant as a value and a unit
// expression, resolved against the unit registry on first use.
type constDef struct {
	value float64
	unit  string
}

// constantDefs is the constant catalog. CODATA 2018 values; the defining
// constants of the 2019 SI are exact.
var constantDefs = map[string]constDef{
	"π":  {math.Pi, ""},
	"pi": {math.Pi, ""},

	"c_0":  {299792458, "m/s"},
	"h_P":  {6.62607015e-34, "J*s"},
	"ħ":    {1.054571817e-34, "J*s"},
	"hbar": {1.054571817e-34, "J*s"},
	"k_B":  {1.380649e-23, "J/K"},
	"N_A":  {6.02214076e23, "1/mol"},
	"q_e":  {1.602176634e-19, "C"},
	"R":    {8.31446261815324, "J/(K*mol)"},

	"m_e": {9.1093837015e-31, "kg"},
	"m_p": {1.67262192369e-27, "kg"},
	"m_n": {1.67492749804e-27, "kg"},

	"g_0": {9.80665, "m/s^2"},
	"G":   {6.67430e-11, "m^3/(kg*s^2)"},
	"ε_0": {8.8541878128e-12, "F/m"},
	"μ_0": {1.25663706212e-6, "N/A^2"},
	"σ":   {5.670374419e-8, "W/(m^2*K^4)"},
	"α":   {7.2973525693e-3, ""},
	"μ_B": {9.2740100783e-24, "J/T"},
	"μ_N": {5.0507837461e-27, "J/T"},
	"a_0": {5.29177210903e-11, "m"},
}

var (
	constantsOnce sync.Once
	constants     map[string]Scalar
)

// buildConstants resolves every definition once, after the unit registry is
// available. Definitions reference only catalog units, so resolution cannot
// fail.
func buildConstants() {
	constants = make(map[string]Scalar, len(constantDefs))
	for name, def := range constantDefs {
		u := unit.Dimensionless()
		if def.unit != "" {
			var err error
			u, _, err = unit.Parse(def.unit)
			if err != nil {
				panic(err)
			}
		}
		constants[name] = New(def.value, u)
	}
}

// Constant returns the named physical constant. Lookup is exact and
// case-sensitive.
func Constant(name string) (Scalar, error) {
	constantsOnce.Do(buildConstants)
	c, ok := constants[name]
	if !ok {
		return Scalar{}, siquant.NewUnknownIdentifier("constant", name)
	}
	return c, nil
}

// ConstantNames returns every constant name, sorted.
func ConstantNames() []string {
	constantsOnce.Do(buildConstants)
	names := make([]string, 0, len(constants))
	for name := range constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
