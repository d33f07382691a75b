package host

type seqRNG struct {
	vals []float64
	i    int
}

func (s *seqRNG) Generate() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

type constProcess struct {
	name string
	xs   CrossSect
	mu   CosineScatAngle
}

func (p *constProcess) Name() string { return p.name }

func (p *constProcess) CrossSectionIsotropic(*Cache, NeutronEnergy) CrossSect { return p.xs }

func (p *constProcess) SampleScatterIsotropic(_ *Cache, _ RNG, ekin NeutronEnergy) ScatterOutcome {
	return ScatterOutcome{Ekin: ekin, Mu: p.mu}
}

func testMaterial() *MatInfo {
	return &MatInfo{
		Name:        "Al",
		Temperature: 293.15,
		Density:     2.7,
		Phase:       Solid,
		Composition: []CompositionEntry{{Element: "Al", Fraction: 1}},
	}
}
