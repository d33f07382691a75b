package plugin

import (
	"testing"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
)

func newScatter(t *testing.T) *Scatter {
	t.Helper()
	pm, err := physics.New(2.0, 4.0)
	if err != nil {
		t.Fatalf("model: %v", err)
	}
	return NewScatter(pm)
}

func TestScatterName(t *testing.T) {
	if got := newScatter(t).Name(); got != "CutoffModel" {
		t.Errorf("expected CutoffModel, got %q", got)
	}
}

func TestScatterCrossSectionIgnoresCache(t *testing.T) {
	s := newScatter(t)
	used := host.NewCache()
	used.Data = "stale"

	for _, ekin := range []host.NeutronEnergy{0, 1e-4, 0.005, 0.025, 2} {
		a := s.CrossSectionIsotropic(nil, ekin)
		b := s.CrossSectionIsotropic(host.NewCache(), ekin)
		c := s.CrossSectionIsotropic(used, ekin)
		if a != b || b != c {
			t.Errorf("ekin=%g: cross-section depends on cache: %v %v %v", ekin, a, b, c)
		}
	}
}

func TestScatterCrossSectionMatchesModel(t *testing.T) {
	pm, _ := physics.New(2.0, 4.0)
	s := NewScatter(pm)

	for _, ekin := range []float64{1e-4, pm.CutoffEkin(), 0.025} {
		if got := float64(s.CrossSectionIsotropic(nil, host.NeutronEnergy(ekin))); got != pm.CalcCrossSection(ekin) {
			t.Errorf("ekin=%g: expected %g, got %g", ekin, pm.CalcCrossSection(ekin), got)
		}
	}
}

func TestScatterSampleDeterministic(t *testing.T) {
	s := newScatter(t)

	run := func() []host.ScatterOutcome {
		rng := host.NewRNG(1234)
		out := make([]host.ScatterOutcome, 200)
		for i := range out {
			out[i] = s.SampleScatterIsotropic(nil, rng, 0.025)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("event %d differs between identical streams: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestScatterSampleConsumesCallerStream(t *testing.T) {
	s := newScatter(t)
	rng := host.NewRNG(99)
	first := s.SampleScatterIsotropic(nil, rng, 0.025)
	second := s.SampleScatterIsotropic(nil, rng, 0.025)
	if first == second {
		t.Error("expected successive calls to advance the caller's stream")
	}

	ref := host.NewRNG(99)
	ref.Generate()
	want := host.CosineScatAngle(2*ref.Generate() - 1)
	if second.Mu != want {
		t.Errorf("expected second draw mu %v, got %v", want, second.Mu)
	}
}

func TestScatterSampleBelowCutoff(t *testing.T) {
	s := newScatter(t)
	ekin := host.NeutronEnergy(physics.WavelengthToEkin(8.0))
	out := s.SampleScatterIsotropic(nil, host.NewRNG(1), ekin)
	if out.Ekin != ekin || out.Mu != 1 {
		t.Errorf("expected unchanged neutron, got %+v", out)
	}
}
