package host

// StdFactoryName is the name of the host's built-in factory.
const StdFactoryName = "stdscat"

// StdFactory provides the host's standard treatment of a material: isotropic
// elastic scattering on free atoms, with coherent and incoherent parts gated
// by the request.
type StdFactory struct{}

func NewStdFactory() *StdFactory { return &StdFactory{} }

func (f *StdFactory) Name() string { return StdFactoryName }

func (f *StdFactory) Query(req *ScatterRequest) (Priority, error) {
	if req == nil || req.Info == nil {
		return Unable, nil
	}
	return StandardPriority, nil
}

func (f *StdFactory) Produce(req *ScatterRequest) (Process, error) {
	if req == nil {
		return nil, BadInput("", "missing scatter request")
	}
	if err := req.Info.Validate(); err != nil {
		return nil, err
	}

	var xs float64
	for _, c := range req.Info.Composition {
		el, _ := LookupElement(c.Element)
		var bound float64
		if req.CohElas {
			bound += el.CohXS
		}
		if req.IncohElas {
			bound += el.IncohXS
		}
		xs += c.Fraction * bound * el.FreeScale()
	}
	if xs <= 0 {
		return NullProcess(), nil
	}
	return &FreeElastic{xs: CrossSect(xs)}, nil
}

// FreeElastic is energy independent isotropic elastic scattering.
type FreeElastic struct {
	xs CrossSect
}

func NewFreeElastic(xs CrossSect) *FreeElastic { return &FreeElastic{xs: xs} }

func (p *FreeElastic) Name() string { return "FreeElastic" }

func (p *FreeElastic) CrossSectionIsotropic(_ *Cache, _ NeutronEnergy) CrossSect {
	return p.xs
}

func (p *FreeElastic) SampleScatterIsotropic(_ *Cache, rng RNG, ekin NeutronEnergy) ScatterOutcome {
	return ScatterOutcome{Ekin: ekin, Mu: CosineScatAngle(2*rng.Generate() - 1)}
}
