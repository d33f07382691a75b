package plugin

import (
	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
)

// Priority is returned for applicable requests. It is above
// host.StandardPriority so the plugin takes precedence over the standard
// factory.
const Priority host.Priority = 999

// disabledInelas are the inelastic modes that switch the plugin off. They are
// matched exactly and case-sensitively.
var disabledInelas = []string{"none", "0", "false", "sterile"}

type Factory struct {
	creator host.ScatterCreator
}

// NewFactory returns the plugin factory. The creator supplies the standard
// process that the plugin's own contribution is combined with.
func NewFactory(creator host.ScatterCreator) *Factory {
	return &Factory{creator: creator}
}

func (f *Factory) Name() string { return PluginName + "Factory" }

// Query follows the host contract for a nil request: Unable, no error.
func (f *Factory) Query(req *host.ScatterRequest) (host.Priority, error) {
	if req == nil {
		return host.Unable, nil
	}
	for _, v := range disabledInelas {
		if req.Inelas == v {
			return host.Unable, nil
		}
	}

	ok, err := physics.IsApplicable(req.Info)
	if err != nil {
		return host.Unable, err
	}
	if !ok {
		return host.Unable, nil
	}
	return Priority, nil
}

// Produce returns the union of the plugin's process and the standard process
// for the same request.
func (f *Factory) Produce(req *host.ScatterRequest) (host.Process, error) {
	if req == nil {
		return nil, host.BadInput("", "missing scatter request")
	}
	pm, err := physics.CreateFromInfo(req.Info)
	if err != nil {
		return nil, err
	}
	ours := NewScatter(pm)

	std, err := f.creator.GlobalCreateScatter(req, f.Name())
	if err != nil {
		return nil, err
	}
	return host.CombineProcs(std, ours), nil
}

// Register installs the plugin factory into reg, which also serves as the
// factory's source of standard processes.
func Register(reg *host.Registry) error {
	return reg.Register(NewFactory(reg))
}
