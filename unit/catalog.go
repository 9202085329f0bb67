package unit

import (
	"math"

	"github.com/c360studio/siquant/dimension"
)

// prefix is an SI decimal prefix applied to prefixable catalog symbols.
type prefix struct {
	symbol string
	name   string
	factor float64
}

// prefixes are ordered longest symbol first so that "da" is tried before
// "d". Both the micro sign U+00B5 and the Greek mu U+03BC are accepted.
var prefixes = []prefix{
	{"da", "deca", 1e1},
	{"Y", "yotta", 1e24},
	{"Z", "zetta", 1e21},
	{"E", "exa", 1e18},
	{"P", "peta", 1e15},
	{"T", "tera", 1e12},
	{"G", "giga", 1e9},
	{"M", "mega", 1e6},
	{"k", "kilo", 1e3},
	{"h", "hecto", 1e2},
	{"d", "deci", 1e-1},
	{"c", "centi", 1e-2},
	{"m", "milli", 1e-3},
	{"µ", "micro", 1e-6},
	{"μ", "micro", 1e-6},
	{"n", "nano", 1e-9},
	{"p", "pico", 1e-12},
	{"f", "femto", 1e-15},
	{"a", "atto", 1e-18},
	{"z", "zepto", 1e-21},
	{"y", "yocto", 1e-24},
}

// entry is one catalog unit definition. The multiplier scales one instance
// of the unit to the coherent SI reference representation.
type entry struct {
	symbol     string
	name       string
	plural     string
	quantity   string
	multiplier float64
	prefixable bool
}

// mustQuantity looks up a dimensionality from the quantity catalog. Catalog
// entries reference quantities by name so the two tables cannot drift.
func mustQuantity(name string) dimension.Dimensionality {
	d, err := dimension.ForQuantity(name)
	if err != nil {
		panic(err)
	}
	return d
}

// catalog lists the seed units: the seven SI base units (gram carries
// multiplier 1e-3 so the "k" prefix lands exactly on the coherent
// kilogram), the named derived SI units, and accepted non-SI units.
var catalog = []entry{
	// Base units.
	{"m", "meter", "meters", "length", 1, true},
	{"g", "gram", "grams", "mass", 1e-3, true},
	{"s", "second", "seconds", "time", 1, true},
	{"A", "ampere", "amperes", "current", 1, true},
	{"K", "kelvin", "kelvin", "temperature", 1, true},
	{"mol", "mole", "moles", "amount", 1, true},
	{"cd", "candela", "candelas", "luminous intensity", 1, true},

	// Named derived units, all coherent.
	{"rad", "radian", "radians", "plane angle", 1, true},
	{"sr", "steradian", "steradians", "solid angle", 1, true},
	{"Hz", "hertz", "hertz", "frequency", 1, true},
	{"N", "newton", "newtons", "force", 1, true},
	{"Pa", "pascal", "pascals", "pressure", 1, true},
	{"J", "joule", "joules", "energy", 1, true},
	{"W", "watt", "watts", "power", 1, true},
	{"C", "coulomb", "coulombs", "electric charge", 1, true},
	{"V", "volt", "volts", "electric potential", 1, true},
	{"F", "farad", "farads", "capacitance", 1, true},
	{"Ω", "ohm", "ohms", "electric resistance", 1, true},
	{"S", "siemens", "siemens", "electric conductance", 1, true},
	{"Wb", "weber", "webers", "magnetic flux", 1, true},
	{"T", "tesla", "teslas", "magnetic flux density", 1, true},
	{"H", "henry", "henries", "inductance", 1, true},
	{"lm", "lumen", "lumens", "luminous flux", 1, true},
	{"lx", "lux", "lux", "illuminance", 1, true},
	{"Bq", "becquerel", "becquerels", "radioactivity", 1, true},
	{"Gy", "gray", "grays", "absorbed dose", 1, true},
	{"Sv", "sievert", "sieverts", "dose equivalent", 1, true},
	{"kat", "katal", "katals", "catalytic activity", 1, true},

	// Accepted non-SI units.
	{"min", "minute", "minutes", "time", 60, false},
	{"h", "hour", "hours", "time", 3600, false},
	{"d", "day", "days", "time", 86400, false},
	{"L", "liter", "liters", "volume", 1e-3, true},
	{"t", "tonne", "tonnes", "mass", 1e3, false},
	{"eV", "electronvolt", "electronvolts", "energy", 1.602176634e-19, true},
	{"Da", "dalton", "daltons", "mass", 1.66053906660e-27, true},
	{"bar", "bar", "bars", "pressure", 1e5, true},
	{"atm", "atmosphere", "atmospheres", "pressure", 101325, false},
	{"Torr", "torr", "torr", "pressure", 101325.0 / 760.0, false},
	{"mmHg", "millimeter of mercury", "millimeters of mercury", "pressure", 133.322387415, false},
	{"Å", "angstrom", "angstroms", "length", 1e-10, false},
	{"au", "astronomical unit", "astronomical units", "length", 1.495978707e11, false},
	{"ly", "light year", "light years", "length", 9.4607304725808e15, false},
	{"pc", "parsec", "parsecs", "length", 3.0856775814913673e16, false},
	{"ha", "hectare", "hectares", "area", 1e4, false},
	{"°", "degree", "degrees", "plane angle", math.Pi / 180, false},
	{"′", "arcminute", "arcminutes", "plane angle", math.Pi / 10800, false},
	{"″", "arcsecond", "arcseconds", "plane angle", math.Pi / 648000, false},
}
