package plugin

import (
	"io"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/physics"
)

func TestPlugin(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Plugin Suite")
}

// newMaterial returns a valid aluminium material, with a cutoff section when
// withModel is set.
func newMaterial(withModel bool) *host.MatInfo {
	m := &host.MatInfo{
		Name:        "Al",
		Temperature: 293.15,
		Density:     2.7,
		Phase:       host.Solid,
		Composition: []host.CompositionEntry{{Element: "Al", Fraction: 1}},
	}
	if withModel {
		m.CustomSections = map[string][]host.CustomSection{
			physics.SectionName: {{{"2.0", "4.0"}}},
		}
	}
	return m
}

func newRegistry() *host.Registry {
	reg := host.NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := reg.Register(host.NewStdFactory()); err != nil {
		panic(err)
	}
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}

type stubCreator struct {
	proc     host.Process
	err      error
	excluded []string
}

func (s *stubCreator) GlobalCreateScatter(_ *host.ScatterRequest, exclude string) (host.Process, error) {
	s.excluded = append(s.excluded, exclude)
	return s.proc, s.err
}
