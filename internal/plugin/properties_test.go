package plugin

import (
	"math"
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
)

func drawMaterial(t *rapid.T, withModel bool) *host.MatInfo {
	elements := []string{"H", "C", "O", "Al", "Fe", "V", "Pb"}
	el := rapid.SampledFrom(elements).Draw(t, "element")
	m := &host.MatInfo{
		Name:        "prop",
		Temperature: rapid.Float64Range(1, 2000).Draw(t, "temperature"),
		Density:     rapid.Float64Range(0.01, 20).Draw(t, "density"),
		Phase:       rapid.SampledFrom([]host.Phase{host.Solid, host.Liquid, host.Gas}).Draw(t, "phase"),
		Composition: []host.CompositionEntry{{Element: el, Fraction: 1}},
	}
	if withModel {
		sigma := rapid.Float64Range(0.01, 100).Draw(t, "sigma")
		lambda := rapid.Float64Range(0.1, 20).Draw(t, "lambda")
		m.CustomSections = map[string][]host.CustomSection{
			physics.SectionName: {{{formatFloat(sigma), formatFloat(lambda)}}},
		}
	}
	return m
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func TestQueryDisabledProperty(t *testing.T) {
	f := NewFactory(&stubCreator{})
	rapid.Check(t, func(t *rapid.T) {
		req := host.NewScatterRequest(drawMaterial(t, rapid.Bool().Draw(t, "withModel")))
		req.Inelas = rapid.SampledFrom(disabledInelas).Draw(t, "inelas")
		p, err := f.Query(req)
		if err != nil || p != host.Unable {
			t.Fatalf("expected Unable, got %v, %v", p, err)
		}
	})
}

func TestQueryEnabledProperty(t *testing.T) {
	f := NewFactory(&stubCreator{})
	rapid.Check(t, func(t *rapid.T) {
		withModel := rapid.Bool().Draw(t, "withModel")
		req := host.NewScatterRequest(drawMaterial(t, withModel))
		req.Inelas = rapid.StringMatching(`[a-z0-9_]{1,8}`).Filter(func(s string) bool {
			for _, d := range disabledInelas {
				if s == d {
					return false
				}
			}
			return true
		}).Draw(t, "inelas")

		p, err := f.Query(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := host.Unable
		if withModel {
			want = Priority
		}
		if p != want {
			t.Fatalf("expected %v, got %v", want, p)
		}
	})
}

func TestProduceCrossSectionSumProperty(t *testing.T) {
	reg := newRegistry()
	rapid.Check(t, func(t *rapid.T) {
		req := host.NewScatterRequest(drawMaterial(t, true))
		req.IncohElas = rapid.Bool().Draw(t, "incoh")
		req.CohElas = rapid.Bool().Draw(t, "coh")

		proc, err := reg.CreateScatter(req)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		std, err := host.NewStdFactory().Produce(req)
		if err != nil {
			t.Fatalf("std failed: %v", err)
		}
		pm, err := physics.CreateFromInfo(req.Info)
		if err != nil {
			t.Fatalf("model failed: %v", err)
		}

		ekin := rapid.Float64Range(1e-6, 10).Draw(t, "ekin")
		want := float64(std.CrossSectionIsotropic(nil, host.NeutronEnergy(ekin))) + pm.CalcCrossSection(ekin)
		got := float64(proc.CrossSectionIsotropic(nil, host.NeutronEnergy(ekin)))
		if math.Abs(got-want) > 1e-9*math.Max(1, want) {
			t.Fatalf("cross-section %g, want %g", got, want)
		}
	})
}
