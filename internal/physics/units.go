package physics

import "math"

// wl2ekin is h^2/(2 m_n) in eV Aa^2.
const wl2ekin = 0.081804209605330899

// WavelengthToEkin converts a neutron wavelength in Aa to kinetic energy in eV.
func WavelengthToEkin(wl float64) float64 {
	if wl == 0 {
		return math.Inf(1)
	}
	return wl2ekin / (wl * wl)
}

// EkinToWavelength converts a kinetic energy in eV to a wavelength in Aa.
func EkinToWavelength(ekin float64) float64 {
	if ekin == 0 {
		return math.Inf(1)
	}
	return math.Sqrt(wl2ekin / ekin)
}
