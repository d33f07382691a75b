package sampling

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ncscatter/internal/host"
)

type threshold struct{ cut host.NeutronEnergy }

func (p threshold) Name() string { return "threshold" }

func (p threshold) CrossSectionIsotropic(_ *host.Cache, ekin host.NeutronEnergy) host.CrossSect {
	if ekin > p.cut {
		return 1
	}
	return 0
}

func (p threshold) SampleScatterIsotropic(_ *host.Cache, rng host.RNG, ekin host.NeutronEnergy) host.ScatterOutcome {
	if ekin <= p.cut {
		return host.ScatterOutcome{Ekin: ekin, Mu: 1}
	}
	return host.ScatterOutcome{Ekin: ekin * 0.9, Mu: host.CosineScatAngle(2*rng.Generate() - 1)}
}

func testConfig() Config {
	return Config{Energy: 1, Events: 10000, Workers: 3, Seed: 5, BatchSize: 128}
}

func TestEnsembleRun(t *testing.T) {
	e := NewEnsemble(threshold{cut: 0.5})
	for _, m := range DefaultMetrics() {
		e.AddMetric(m)
	}

	result, err := e.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Events) != 10000 {
		t.Errorf("expected 10000 events, got %d", len(result.Events))
	}
	if result.CrossSection != 1 {
		t.Errorf("expected cross-section 1, got %f", result.CrossSection)
	}
	if mu := result.Metrics["mean_mu"]; math.Abs(mu) > 0.05 {
		t.Errorf("expected isotropic mean mu ~0, got %f", mu)
	}
	if dE := result.Metrics["mean_energy_transfer"]; math.Abs(dE-0.1) > 1e-9 {
		t.Errorf("expected energy transfer 0.1, got %f", dE)
	}
	if f := result.Metrics["unscattered_fraction"]; f != 0 {
		t.Errorf("expected no unscattered events, got %f", f)
	}
}

func TestEnsembleDeterministic(t *testing.T) {
	e := NewEnsemble(threshold{cut: 0.5})

	a, err := e.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := e.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Events {
		if a.Events[i] != b.Events[i] {
			t.Fatalf("event %d differs between identical runs", i)
		}
	}
}

func TestEnsembleBelowThreshold(t *testing.T) {
	e := NewEnsemble(threshold{cut: 2})
	e.AddMetric(NewUnscattered())

	result, err := e.Run(context.Background(), testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if f := result.Metrics["unscattered_fraction"]; f != 1 {
		t.Errorf("expected all events unscattered, got %f", f)
	}
}

func TestEnsembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEnsemble(threshold{}).Run(ctx, testConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEnsembleInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero energy", func(c *Config) { c.Energy = 0 }},
		{"no events", func(c *Config) { c.Events = 0 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"no batch", func(c *Config) { c.BatchSize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(&cfg)
			if _, err := NewEnsemble(threshold{}).Run(context.Background(), cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSpan(t *testing.T) {
	total := 0
	prevEnd := 0
	for w := 0; w < 4; w++ {
		start, end := span(10, 4, w)
		if start != prevEnd {
			t.Errorf("worker %d starts at %d, want %d", w, start, prevEnd)
		}
		total += end - start
		prevEnd = end
	}
	if total != 10 {
		t.Errorf("expected 10 events covered, got %d", total)
	}
}

func TestFewerEventsThanWorkers(t *testing.T) {
	cfg := testConfig()
	cfg.Events, cfg.Workers = 2, 8
	result, err := NewEnsemble(threshold{cut: 0.5}).Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Events) != 2 {
		t.Errorf("expected 2 events, got %d", len(result.Events))
	}
}
