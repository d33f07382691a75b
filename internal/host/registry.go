package host

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Factory decides whether it can serve a scatter request and builds the
// process for it once selected.
type Factory interface {
	Name() string
	Query(req *ScatterRequest) (Priority, error)
	Produce(req *ScatterRequest) (Process, error)
}

// ScatterCreator resolves a request through the registered factories,
// skipping the named factory. Factories use it to obtain the standard
// treatment of a request they are producing for.
type ScatterCreator interface {
	GlobalCreateScatter(req *ScatterRequest, exclude string) (Process, error)
}

type Candidate struct {
	Factory  string
	Priority Priority
}

type Registry struct {
	mu        sync.RWMutex
	factories []Factory
	logger    *slog.Logger
}

func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{logger: logger}
}

func (r *Registry) Register(f Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.factories {
		if existing.Name() == f.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateFactory, f.Name())
		}
	}
	r.factories = append(r.factories, f)
	r.logger.Debug("factory registered", "factory", f.Name())
	return nil
}

func (r *Registry) Factories() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.factories)
}

// QueryAll asks every factory not listed in exclude, and not excluded by an
// enclosing resolution of req, for its priority. The result is sorted by
// descending priority, ties broken by name. A failing query aborts
// resolution.
func (r *Registry) QueryAll(req *ScatterRequest, exclude ...string) ([]Candidate, error) {
	if req == nil {
		return nil, BadInput("", "missing scatter request")
	}
	var out []Candidate
	for _, f := range r.Factories() {
		if slices.Contains(exclude, f.Name()) || slices.Contains(req.excluded, f.Name()) {
			continue
		}
		p, err := f.Query(req)
		if err != nil {
			return nil, &FactoryError{Factory: f.Name(), Op: "query", Err: err}
		}
		out = append(out, Candidate{Factory: f.Name(), Priority: p})
	}
	slices.SortStableFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Factory, b.Factory)
	})
	return out, nil
}

// CreateScatter resolves req through all registered factories.
func (r *Registry) CreateScatter(req *ScatterRequest) (Process, error) {
	return r.create(req)
}

// GlobalCreateScatter resolves req without the named factory. The exclusion
// holds for every resolution nested inside this one, so no factory is
// produced twice along a chain of add-on factories.
func (r *Registry) GlobalCreateScatter(req *ScatterRequest, exclude string) (Process, error) {
	if req == nil {
		return nil, BadInput("", "missing scatter request")
	}
	return r.create(req.without(exclude))
}

func (r *Registry) create(req *ScatterRequest) (Process, error) {
	candidates, err := r.QueryAll(req)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 || !candidates[0].Priority.CanServe() {
		return nil, fmt.Errorf("%w: %s", ErrNoFactory, req)
	}

	best := candidates[0]
	f := r.lookup(best.Factory)
	r.logger.Debug("factory selected",
		"factory", best.Factory,
		"priority", best.Priority.String(),
		"request", req.String(),
		"excluded", req.excluded)

	proc, err := f.Produce(req)
	if err != nil {
		return nil, &FactoryError{Factory: best.Factory, Op: "produce", Err: err}
	}
	if proc == nil {
		proc = NullProcess()
	}
	return proc, nil
}

func (r *Registry) lookup(name string) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.factories {
		if f.Name() == name {
			return f
		}
	}
	return nil
}
