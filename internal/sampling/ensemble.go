package sampling

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/ncscatter/internal/host"
)

type Config struct {
	Energy    float64 // eV
	Events    int
	Workers   int
	Seed      uint64
	BatchSize int
}

func DefaultConfig() Config {
	return Config{
		Energy:    0.0253,
		Events:    100000,
		Workers:   4,
		Seed:      1,
		BatchSize: 4096,
	}
}

type Result struct {
	Energy       float64
	CrossSection float64
	Events       []host.ScatterOutcome
	Metrics      map[string]float64
}

// Ensemble samples scattering events from a shared process on several
// workers. Each worker owns its RNG, seeded Seed+i, and its cache, so a run
// is reproducible for a fixed seed and worker count.
type Ensemble struct {
	proc    host.Process
	metrics []Metric
}

func NewEnsemble(proc host.Process) *Ensemble {
	return &Ensemble{proc: proc}
}

func (e *Ensemble) AddMetric(m Metric) { e.metrics = append(e.metrics, m) }

func (e *Ensemble) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	workers := min(cfg.Workers, cfg.Events)
	chunks := make([][]host.ScatterOutcome, workers)
	errs := make([]error, workers)
	ekin := host.NeutronEnergy(cfg.Energy)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start, end := span(cfg.Events, workers, w)
		wg.Add(1)
		go func(idx, n int) {
			defer wg.Done()

			rng := host.NewRNG(cfg.Seed + uint64(idx))
			cache := host.NewCache()
			out := make([]host.ScatterOutcome, 0, n)
			for len(out) < n {
				select {
				case <-ctx.Done():
					errs[idx] = ctx.Err()
					return
				default:
				}
				batch := min(cfg.BatchSize, n-len(out))
				for i := 0; i < batch; i++ {
					out = append(out, e.proc.SampleScatterIsotropic(cache, rng, ekin))
				}
			}
			chunks[idx] = out
		}(w, end-start)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	result := &Result{
		Energy:       cfg.Energy,
		CrossSection: float64(e.proc.CrossSectionIsotropic(nil, ekin)),
		Events:       make([]host.ScatterOutcome, 0, cfg.Events),
		Metrics:      make(map[string]float64),
	}
	for _, c := range chunks {
		result.Events = append(result.Events, c...)
	}

	for _, m := range e.metrics {
		m.Reset()
		for _, ev := range result.Events {
			m.Observe(cfg.Energy, ev)
		}
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if !(cfg.Energy > 0) {
		return fmt.Errorf("energy must be positive, got %g", cfg.Energy)
	}
	if cfg.Events <= 0 {
		return fmt.Errorf("events must be positive, got %d", cfg.Events)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", cfg.BatchSize)
	}
	return nil
}

// span returns the half-open range of events assigned to worker w.
func span(n, workers, w int) (int, int) {
	chunk := (n + workers - 1) / workers
	start := min(w*chunk, n)
	end := min(start+chunk, n)
	return start, end
}
