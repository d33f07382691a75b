package host

// NeutronEnergy is a kinetic energy in eV.
type NeutronEnergy float64

// CrossSect is a cross-section in barn per atom.
type CrossSect float64

// CosineScatAngle is the cosine of the scattering angle.
type CosineScatAngle float64

type ScatterOutcome struct {
	Ekin NeutronEnergy
	Mu   CosineScatAngle
}

// Process is an isotropic scattering process: its cross-section and outcome
// distribution depend only on the incident energy.
//
// Implementations must be safe for concurrent use. Per-call state belongs in
// the Cache, which like the RNG is owned by the calling goroutine.
type Process interface {
	Name() string
	CrossSectionIsotropic(cache *Cache, ekin NeutronEnergy) CrossSect
	SampleScatterIsotropic(cache *Cache, rng RNG, ekin NeutronEnergy) ScatterOutcome
}

// Cache carries per-goroutine scratch data for stateful processes. A nil
// *Cache is valid and means "no caching".
type Cache struct {
	Data any
	sub  []*Cache
}

func NewCache() *Cache { return &Cache{} }

// Sub returns the cache slot for the i-th component of a composite process.
func (c *Cache) Sub(i int) *Cache {
	if c == nil {
		return nil
	}
	for len(c.sub) <= i {
		c.sub = append(c.sub, &Cache{})
	}
	return c.sub[i]
}

type nullProcess struct{}

// NullProcess returns a process with zero cross-section at all energies.
func NullProcess() Process { return nullProcess{} }

func (nullProcess) Name() string { return "NullProcess" }

func (nullProcess) CrossSectionIsotropic(*Cache, NeutronEnergy) CrossSect { return 0 }

func (nullProcess) SampleScatterIsotropic(_ *Cache, _ RNG, ekin NeutronEnergy) ScatterOutcome {
	return ScatterOutcome{Ekin: ekin, Mu: 1}
}

func IsNull(p Process) bool {
	if p == nil {
		return true
	}
	_, ok := p.(nullProcess)
	return ok
}
