package host

import "strings"

// ProcComposition is the union of several processes. Its cross-section is
// the sum of the components' and sampling picks a component with
// probability proportional to its cross-section at the sampled energy.
type ProcComposition struct {
	components []Process
}

// CombineProcs returns a process representing the union of a and b. Nil and
// null operands are dropped and nested compositions are flattened. The
// operands are shared, not copied.
func CombineProcs(a, b Process) Process {
	var comps []Process
	for _, p := range []Process{a, b} {
		switch p := p.(type) {
		case nil:
		case *ProcComposition:
			comps = append(comps, p.components...)
		default:
			if !IsNull(p) {
				comps = append(comps, p)
			}
		}
	}

	switch len(comps) {
	case 0:
		return NullProcess()
	case 1:
		return comps[0]
	}
	return &ProcComposition{components: comps}
}

func (c *ProcComposition) Components() []Process {
	out := make([]Process, len(c.components))
	copy(out, c.components)
	return out
}

func (c *ProcComposition) Name() string {
	names := make([]string, len(c.components))
	for i, p := range c.components {
		names[i] = p.Name()
	}
	return "ProcComposition(" + strings.Join(names, "+") + ")"
}

func (c *ProcComposition) CrossSectionIsotropic(cache *Cache, ekin NeutronEnergy) CrossSect {
	var total CrossSect
	for i, p := range c.components {
		total += p.CrossSectionIsotropic(cache.Sub(i), ekin)
	}
	return total
}

func (c *ProcComposition) SampleScatterIsotropic(cache *Cache, rng RNG, ekin NeutronEnergy) ScatterOutcome {
	xs := make([]CrossSect, len(c.components))
	var total CrossSect
	for i, p := range c.components {
		xs[i] = p.CrossSectionIsotropic(cache.Sub(i), ekin)
		total += xs[i]
	}
	if !(total > 0) {
		return ScatterOutcome{Ekin: ekin, Mu: 1}
	}

	r := CrossSect(rng.Generate()) * total
	chosen := len(c.components) - 1
	var cum CrossSect
	for i := range xs {
		cum += xs[i]
		if xs[i] > 0 && r <= cum {
			chosen = i
			break
		}
	}
	for xs[chosen] <= 0 && chosen > 0 {
		chosen--
	}
	return c.components[chosen].SampleScatterIsotropic(cache.Sub(chosen), rng, ekin)
}
