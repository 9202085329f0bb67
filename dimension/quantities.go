package dimension

import (
	"sort"

	"github.com/c360studio/siquant"
)

// ForQuantity returns the dimensionality of a named physical quantity.
// Lookup is exact and case-sensitive.
func ForQuantity(name string) (Dimensionality, error) {
	d, ok := quantityCatalog[name]
	if !ok {
		return Dimensionality{}, siquant.NewUnknownIdentifier("quantity", name)
	}
	return d, nil
}

// QuantityNames returns every catalog quantity name, sorted.
func QuantityNames() []string {
	names := make([]string, 0, len(quantityCatalog))
	for name := range quantityCatalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// dims builds a dimensionality from integer exponents in tuple order:
// length, mass, time, current, temperature, amount, luminous intensity.
func dims(l, m, t, i, th, n, j int) Dimensionality {
	var d Dimensionality
	d.exps = [NumBase]Ratio{Int(l), Int(m), Int(t), Int(i), Int(th), Int(n), Int(j)}
	return d
}

// quantityCatalog maps quantity names to their dimensionalities. The table
// is initialized once at package load and never mutated afterwards.
var quantityCatalog = map[string]Dimensionality{
	"dimensionless": dims(0, 0, 0, 0, 0, 0, 0),

	// Base quantities.
	"length":             dims(1, 0, 0, 0, 0, 0, 0),
	"mass":               dims(0, 1, 0, 0, 0, 0, 0),
	"time":               dims(0, 0, 1, 0, 0, 0, 0),
	"current":            dims(0, 0, 0, 1, 0, 0, 0),
	"temperature":        dims(0, 0, 0, 0, 1, 0, 0),
	"amount":             dims(0, 0, 0, 0, 0, 1, 0),
	"luminous intensity": dims(0, 0, 0, 0, 0, 0, 1),

	// Mechanics.
	"area":                         dims(2, 0, 0, 0, 0, 0, 0),
	"volume":                       dims(3, 0, 0, 0, 0, 0, 0),
	"speed":                        dims(1, 0, -1, 0, 0, 0, 0),
	"velocity":                     dims(1, 0, -1, 0, 0, 0, 0),
	"acceleration":                 dims(1, 0, -2, 0, 0, 0, 0),
	"force":                        dims(1, 1, -2, 0, 0, 0, 0),
	"pressure":                     dims(-1, 1, -2, 0, 0, 0, 0),
	"stress":                       dims(-1, 1, -2, 0, 0, 0, 0),
	"elastic modulus":              dims(-1, 1, -2, 0, 0, 0, 0),
	"compressibility":              dims(1, -1, 2, 0, 0, 0, 0),
	"stress optic coefficient":     dims(1, -1, 2, 0, 0, 0, 0),
	"pressure gradient":            dims(-2, 1, -2, 0, 0, 0, 0),
	"energy":                       dims(2, 1, -2, 0, 0, 0, 0),
	"power":                        dims(2, 1, -3, 0, 0, 0, 0),
	"action":                       dims(2, 1, -1, 0, 0, 0, 0),
	"reduced action":               dims(2, 1, -1, 0, 0, 0, 0),
	"linear momentum":              dims(1, 1, -1, 0, 0, 0, 0),
	"angular momentum":             dims(2, 1, -1, 0, 0, 0, 0),
	"moment of inertia":            dims(2, 1, 0, 0, 0, 0, 0),
	"moment of force":              dims(2, 1, -2, 0, 0, 0, 0),
	"torque":                       dims(2, 1, -2, 0, 0, 0, 0),
	"density":                      dims(-3, 1, 0, 0, 0, 0, 0),
	"mass concentration":           dims(-3, 1, 0, 0, 0, 0, 0),
	"surface density":              dims(-2, 1, 0, 0, 0, 0, 0),
	"specific volume":              dims(3, -1, 0, 0, 0, 0, 0),
	"specific surface area":        dims(2, -1, 0, 0, 0, 0, 0),
	"surface area to volume ratio": dims(-1, 0, 0, 0, 0, 0, 0),
	"specific energy":              dims(2, 0, -2, 0, 0, 0, 0),
	"specific power":               dims(2, 0, -3, 0, 0, 0, 0),
	"energy density":               dims(-1, 1, -2, 0, 0, 0, 0),
	"surface energy":               dims(0, 1, -2, 0, 0, 0, 0),
	"surface tension":              dims(0, 1, -2, 0, 0, 0, 0),
	"dynamic viscosity":            dims(-1, 1, -1, 0, 0, 0, 0),
	"viscosity":                    dims(-1, 1, -1, 0, 0, 0, 0),
	"kinematic viscosity":          dims(2, 0, -1, 0, 0, 0, 0),
	"fluidity":                     dims(1, -1, 1, 0, 0, 0, 0),
	"circulation":                  dims(2, 0, -1, 0, 0, 0, 0),
	"diffusion coefficient":        dims(2, 0, -1, 0, 0, 0, 0),
	"mass flow rate":               dims(0, 1, -1, 0, 0, 0, 0),
	"mass flux":                    dims(-2, 1, -1, 0, 0, 0, 0),
	"volumetric flow rate":         dims(3, 0, -1, 0, 0, 0, 0),
	"volume power density":         dims(-1, 1, -3, 0, 0, 0, 0),
	"strain":                       dims(0, 0, 0, 0, 0, 0, 0),
	"specific gravity":             dims(0, 0, 0, 0, 0, 0, 0),
	"porosity":                     dims(0, 0, 0, 0, 0, 0, 0),
	"rock permeability":            dims(2, 0, 0, 0, 0, 0, 0),
	"gravitational constant":       dims(3, -1, -2, 0, 0, 0, 0),

	// Kinematics and angle.
	"plane angle":          dims(0, 0, 0, 0, 0, 0, 0),
	"solid angle":          dims(0, 0, 0, 0, 0, 0, 0),
	"angular speed":        dims(0, 0, -1, 0, 0, 0, 0),
	"angular velocity":     dims(0, 0, -1, 0, 0, 0, 0),
	"angular acceleration": dims(0, 0, -2, 0, 0, 0, 0),
	"angular frequency":    dims(0, 0, -1, 0, 0, 0, 0),
	"frequency":            dims(0, 0, -1, 0, 0, 0, 0),
	"wavenumber":           dims(-1, 0, 0, 0, 0, 0, 0),

	// Inverses and simple ratios.
	"inverse length":             dims(-1, 0, 0, 0, 0, 0, 0),
	"inverse area":               dims(-2, 0, 0, 0, 0, 0, 0),
	"inverse volume":             dims(-3, 0, 0, 0, 0, 0, 0),
	"inverse mass":               dims(0, -1, 0, 0, 0, 0, 0),
	"inverse time":               dims(0, 0, -1, 0, 0, 0, 0),
	"inverse time squared":       dims(0, 0, -2, 0, 0, 0, 0),
	"inverse current":            dims(0, 0, 0, -1, 0, 0, 0),
	"inverse temperature":        dims(0, 0, 0, 0, -1, 0, 0),
	"inverse amount":             dims(0, 0, 0, 0, 0, -1, 0),
	"inverse luminous intensity": dims(0, 0, 0, 0, 0, 0, -1),
	"length ratio":               dims(0, 0, 0, 0, 0, 0, 0),
	"area ratio":                 dims(0, 0, 0, 0, 0, 0, 0),
	"volume ratio":               dims(0, 0, 0, 0, 0, 0, 0),
	"mass ratio":                 dims(0, 0, 0, 0, 0, 0, 0),
	"time ratio":                 dims(0, 0, 0, 0, 0, 0, 0),
	"current ratio":              dims(0, 0, 0, 0, 0, 0, 0),
	"temperature ratio":          dims(0, 0, 0, 0, 0, 0, 0),
	"amount ratio":               dims(0, 0, 0, 0, 0, 0, 0),
	"frequency ratio":            dims(0, 0, 0, 0, 0, 0, 0),
	"luminous intensity ratio":   dims(0, 0, 0, 0, 0, 0, 0),
	"length per volume":          dims(-2, 0, 0, 0, 0, 0, 0),
	"volume per length":          dims(2, 0, 0, 0, 0, 0, 0),

	// Electricity and magnetism.
	"electric charge":                     dims(0, 0, 1, 1, 0, 0, 0),
	"amount of electricity":               dims(0, 0, 1, 1, 0, 0, 0),
	"electric charge density":             dims(-3, 0, 1, 1, 0, 0, 0),
	"surface charge density":              dims(-2, 0, 1, 1, 0, 0, 0),
	"current density":                     dims(-2, 0, 0, 1, 0, 0, 0),
	"electric potential":                  dims(2, 1, -3, -1, 0, 0, 0),
	"electric potential difference":       dims(2, 1, -3, -1, 0, 0, 0),
	"electromotive force":                 dims(2, 1, -3, -1, 0, 0, 0),
	"voltage":                             dims(2, 1, -3, -1, 0, 0, 0),
	"electric resistance":                 dims(2, 1, -3, -2, 0, 0, 0),
	"electric resistance per length":      dims(1, 1, -3, -2, 0, 0, 0),
	"electric resistivity":                dims(3, 1, -3, -2, 0, 0, 0),
	"electric conductance":                dims(-2, -1, 3, 2, 0, 0, 0),
	"electric conductivity":               dims(-3, -1, 3, 2, 0, 0, 0),
	"capacitance":                         dims(-2, -1, 4, 2, 0, 0, 0),
	"inductance":                          dims(2, 1, -2, -2, 0, 0, 0),
	"electric field strength":             dims(1, 1, -3, -1, 0, 0, 0),
	"electric field gradient":             dims(0, 1, -3, -1, 0, 0, 0),
	"electric flux":                       dims(3, 1, -3, -1, 0, 0, 0),
	"electric flux density":               dims(-2, 0, 1, 1, 0, 0, 0),
	"electric displacement":               dims(-2, 0, 1, 1, 0, 0, 0),
	"electric dipole moment":              dims(1, 0, 1, 1, 0, 0, 0),
	"electric quadrupole moment":          dims(2, 0, 1, 1, 0, 0, 0),
	"electric polarizability":             dims(0, -1, 4, 2, 0, 0, 0),
	"first hyperpolarizability":           dims(-1, -2, 7, 3, 0, 0, 0),
	"second hyperpolarizability":          dims(-2, -3, 10, 4, 0, 0, 0),
	"electrical mobility":                 dims(0, -1, 2, 1, 0, 0, 0),
	"permittivity":                        dims(-3, -1, 4, 2, 0, 0, 0),
	"permeability":                        dims(1, 1, -2, -2, 0, 0, 0),
	"magnetic flux":                       dims(2, 1, -2, -1, 0, 0, 0),
	"magnetic flux density":               dims(0, 1, -2, -1, 0, 0, 0),
	"inverse magnetic flux density":       dims(0, -1, 2, 1, 0, 0, 0),
	"magnetic field gradient":             dims(-1, 1, -2, -1, 0, 0, 0),
	"magnetic field strength":             dims(-1, 0, 0, 1, 0, 0, 0),
	"magnetic dipole moment":              dims(2, 0, 0, 1, 0, 0, 0),
	"magnetic dipole moment ratio":        dims(0, 0, 0, 0, 0, 0, 0),
	"magnetizability":                     dims(2, -1, 2, 2, 0, 0, 0),
	"gyromagnetic ratio":                  dims(0, -1, 1, 1, 0, 0, 0),
	"frequency per magnetic flux density": dims(0, -1, 1, 1, 0, 0, 0),
	"charge per amount":                   dims(0, 0, 1, 1, 0, -1, 0),
	"charge to mass ratio":                dims(0, -1, 1, 1, 0, 0, 0),
	"mass to charge ratio":                dims(0, 1, -1, -1, 0, 0, 0),
	"radiation exposure":                  dims(0, -1, 1, 1, 0, 0, 0),
	"fine structure constant":             dims(0, 0, 0, 0, 0, 0, 0),

	// Thermodynamics.
	"entropy":                                        dims(2, 1, -2, 0, -1, 0, 0),
	"heat capacity":                                  dims(2, 1, -2, 0, -1, 0, 0),
	"specific heat capacity":                         dims(2, 0, -2, 0, -1, 0, 0),
	"specific entropy":                               dims(2, 0, -2, 0, -1, 0, 0),
	"thermal conductance":                            dims(2, 1, -3, 0, -1, 0, 0),
	"thermal conductivity":                           dims(1, 1, -3, 0, -1, 0, 0),
	"heat transfer coefficient":                      dims(0, 1, -3, 0, -1, 0, 0),
	"heat flux density":                              dims(0, 1, -3, 0, 0, 0, 0),
	"temperature gradient":                           dims(-1, 0, 0, 0, 1, 0, 0),
	"second radiation constant":                      dims(1, 0, 0, 0, 1, 0, 0),
	"wavelength displacement constant":               dims(1, 0, 0, 0, 1, 0, 0),
	"power per area per temperature to fourth power": dims(0, 1, -3, 0, -4, 0, 0),

	// Chemistry.
	"amount concentration":                   dims(-3, 0, 0, 0, 0, 1, 0),
	"molality":                               dims(0, -1, 0, 0, 0, 1, 0),
	"molar mass":                             dims(0, 1, 0, 0, 0, -1, 0),
	"molar energy":                           dims(2, 1, -2, 0, 0, -1, 0),
	"molar entropy":                          dims(2, 1, -2, 0, -1, -1, 0),
	"molar heat capacity":                    dims(2, 1, -2, 0, -1, -1, 0),
	"molar conductivity":                     dims(0, -1, 3, 2, 0, -1, 0),
	"molar magnetic susceptibility":          dims(3, 0, 0, 0, 0, -1, 0),
	"diffusion flux":                         dims(-2, 0, -1, 0, 0, 1, 0),
	"catalytic activity":                     dims(0, 0, -1, 0, 0, 1, 0),
	"catalytic activity concentration":       dims(-3, 0, -1, 0, 0, 1, 0),
	"catalytic activity content":             dims(0, -1, -1, 0, 0, 1, 0),
	"gas permeance":                          dims(-1, -1, 1, 0, 0, 1, 0),
	"rate per amount concentration per time": dims(3, 0, -1, 0, 0, -1, 0),

	// Radiation and dosimetry.
	"radioactivity":      dims(0, 0, -1, 0, 0, 0, 0),
	"absorbed dose":      dims(2, 0, -2, 0, 0, 0, 0),
	"absorbed dose rate": dims(2, 0, -3, 0, 0, 0, 0),
	"dose equivalent":    dims(2, 0, -2, 0, 0, 0, 0),

	// Light and radiometry.
	"luminous flux":                 dims(0, 0, 0, 0, 0, 0, 1),
	"luminous flux density":         dims(-2, 0, 0, 0, 0, 0, 1),
	"luminous energy":               dims(0, 0, 1, 0, 0, 0, 1),
	"luminance":                     dims(-2, 0, 0, 0, 0, 0, 1),
	"illuminance":                   dims(-2, 0, 0, 0, 0, 0, 1),
	"luminous efficacy":             dims(-2, -1, 3, 0, 0, 0, 1),
	"power per luminous flux":       dims(2, 1, -3, 0, 0, 0, -1),
	"radiant flux":                  dims(2, 1, -3, 0, 0, 0, 0),
	"radiant intensity":             dims(2, 1, -3, 0, 0, 0, 0),
	"radiance":                      dims(0, 1, -3, 0, 0, 0, 0),
	"irradiance":                    dims(0, 1, -3, 0, 0, 0, 0),
	"spectral power":                dims(1, 1, -3, 0, 0, 0, 0),
	"spectral radiance":             dims(-1, 1, -3, 0, 0, 0, 0),
	"spectral radiant energy":       dims(1, 1, -2, 0, 0, 0, 0),
	"spectral radiant intensity":    dims(1, 1, -3, 0, 0, 0, 0),
	"spectral radiant flux density": dims(-1, 1, -3, 0, 0, 0, 0),
	"refractive index":              dims(0, 0, 0, 0, 0, 0, 0),
}
