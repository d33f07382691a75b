package physics

import (
	"strconv"

	"github.com/san-kum/ncscatter/internal/host"
)

// SectionName is the custom section the model reads its parameters from.
const SectionName = "CUTOFF"

type Model struct {
	sigma      float64 // barn
	cutoffEkin float64 // eV
}

type ScatEvent struct {
	EkinFinal float64
	Mu        float64
}

// New returns a model with cross-section sigma (barn) for neutrons with
// wavelengths below lambdaCutoff (Aa).
func New(sigma, lambdaCutoff float64) (Model, error) {
	if !(sigma > 0) || !(lambdaCutoff > 0) {
		return Model{}, host.BadInput("", "cutoff model needs positive sigma and wavelength, got %g and %g", sigma, lambdaCutoff)
	}
	return Model{sigma: sigma, cutoffEkin: WavelengthToEkin(lambdaCutoff)}, nil
}

// IsApplicable reports whether info carries data for this model. Invalid
// material info is reported as an error.
func IsApplicable(info *host.MatInfo) (bool, error) {
	if err := info.Validate(); err != nil {
		return false, err
	}
	return info.CountCustomSections(SectionName) > 0, nil
}

func CreateFromInfo(info *host.MatInfo) (Model, error) {
	if err := info.Validate(); err != nil {
		return Model{}, err
	}

	switch n := info.CountCustomSections(SectionName); {
	case n == 0:
		return Model{}, host.BadInput(info.Name, "missing @CUSTOM_%s section", SectionName)
	case n > 1:
		return Model{}, host.BadInput(info.Name, "multiple @CUSTOM_%s sections are not allowed", SectionName)
	}

	data, _ := info.CustomSection(SectionName)
	if len(data) != 1 || len(data[0]) != 2 {
		return Model{}, host.BadInput(info.Name, "data in the @CUSTOM_%s section should be two numbers on a single line", SectionName)
	}

	sigma, err1 := strconv.ParseFloat(data[0][0], 64)
	lambda, err2 := strconv.ParseFloat(data[0][1], 64)
	if err1 != nil || err2 != nil || !(sigma > 0) || !(lambda > 0) {
		return Model{}, host.BadInput(info.Name, "invalid values in the @CUSTOM_%s section (should be two positive numbers)", SectionName)
	}

	m, err := New(sigma, lambda)
	if err != nil {
		return Model{}, host.BadInput(info.Name, "%v", err)
	}
	return m, nil
}

func (m Model) Sigma() float64 { return m.sigma }

func (m Model) CutoffEkin() float64 { return m.cutoffEkin }

func (m Model) CutoffWavelength() float64 { return EkinToWavelength(m.cutoffEkin) }

func (m Model) CalcCrossSection(ekin float64) float64 {
	if ekin > m.cutoffEkin {
		return m.sigma
	}
	return 0
}

// SampleScatteringEvent samples the outcome of one scattering. At energies
// with zero cross-section the neutron is returned unchanged without
// consuming random numbers.
func (m Model) SampleScatteringEvent(rng host.RNG, ekin float64) ScatEvent {
	if !(ekin > m.cutoffEkin) {
		return ScatEvent{EkinFinal: ekin, Mu: 1}
	}
	return ScatEvent{EkinFinal: ekin, Mu: 2*rng.Generate() - 1}
}
