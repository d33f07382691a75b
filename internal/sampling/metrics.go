package sampling

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/san-kum/ncscatter/internal/host"
)

type Metric interface {
	Name() string
	Observe(ekin float64, ev host.ScatterOutcome)
	Value() float64
	Reset()
}

// DefaultMetrics returns the metrics reported for every sampling run.
func DefaultMetrics() []Metric {
	return []Metric{
		NewMeanMu(),
		NewEnergyTransfer(),
		NewUnscattered(),
	}
}

type MeanMu struct {
	samples int
	sum     float64
}

func NewMeanMu() *MeanMu { return &MeanMu{} }

func (m *MeanMu) Name() string { return "mean_mu" }

func (m *MeanMu) Observe(_ float64, ev host.ScatterOutcome) {
	m.sum += float64(ev.Mu)
	m.samples++
}

func (m *MeanMu) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanMu) Reset() { m.sum, m.samples = 0, 0 }

// EnergyTransfer is the mean energy lost by the neutron, in eV.
type EnergyTransfer struct {
	samples int
	sum     float64
}

func NewEnergyTransfer() *EnergyTransfer { return &EnergyTransfer{} }

func (e *EnergyTransfer) Name() string { return "mean_energy_transfer" }

func (e *EnergyTransfer) Observe(ekin float64, ev host.ScatterOutcome) {
	e.sum += ekin - float64(ev.Ekin)
	e.samples++
}

func (e *EnergyTransfer) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *EnergyTransfer) Reset() { e.sum, e.samples = 0, 0 }

// Unscattered is the fraction of events that left the neutron untouched.
type Unscattered struct {
	samples int
	hits    int
}

func NewUnscattered() *Unscattered { return &Unscattered{} }

func (u *Unscattered) Name() string { return "unscattered_fraction" }

func (u *Unscattered) Observe(ekin float64, ev host.ScatterOutcome) {
	if ev.Mu == 1 && float64(ev.Ekin) == ekin {
		u.hits++
	}
	u.samples++
}

func (u *Unscattered) Value() float64 {
	if u.samples == 0 {
		return 0
	}
	return float64(u.hits) / float64(u.samples)
}

func (u *Unscattered) Reset() { u.hits, u.samples = 0, 0 }

func MeanAndVariance[T constraints.Float](s []T, unbiased bool) (mean, variance float64) {
	if len(s) == 0 {
		return 0, 0
	}
	for _, v := range s {
		mean += float64(v)
	}
	mean /= float64(len(s))
	for _, v := range s {
		d := float64(v) - mean
		variance += d * d
	}
	if unbiased && len(s) > 1 {
		variance /= float64(len(s) - 1)
	} else {
		variance /= float64(len(s))
	}
	return
}

// MuStats returns the mean and standard deviation of the sampled cosines.
func MuStats(events []host.ScatterOutcome) (mean, stddev float64) {
	mus := make([]host.CosineScatAngle, len(events))
	for i, ev := range events {
		mus[i] = ev.Mu
	}
	mean, v := MeanAndVariance(mus, true)
	return mean, math.Sqrt(v)
}
