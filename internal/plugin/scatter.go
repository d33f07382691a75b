package plugin

import (
	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
)

// PluginName identifies the plugin. Factory and process names derive from it.
const PluginName = "Cutoff"

// Scatter exposes a physics.Model through the host's isotropic scattering
// process interface. It owns its model exclusively and holds no reference to
// the request it was built for.
type Scatter struct {
	pm physics.Model
}

func NewScatter(pm physics.Model) *Scatter {
	return &Scatter{pm: pm}
}

func (s *Scatter) Name() string { return PluginName + "Model" }

func (s *Scatter) CrossSectionIsotropic(_ *host.Cache, ekin host.NeutronEnergy) host.CrossSect {
	return host.CrossSect(s.pm.CalcCrossSection(float64(ekin)))
}

func (s *Scatter) SampleScatterIsotropic(_ *host.Cache, rng host.RNG, ekin host.NeutronEnergy) host.ScatterOutcome {
	ev := s.pm.SampleScatteringEvent(rng, float64(ekin))
	return host.ScatterOutcome{
		Ekin: host.NeutronEnergy(ev.EkinFinal),
		Mu:   host.CosineScatAngle(ev.Mu),
	}
}
