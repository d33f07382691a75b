package host

import (
	"math"
	"strings"
)

type Phase string

const (
	Solid  Phase = "solid"
	Liquid Phase = "liquid"
	Gas    Phase = "gas"
)

type CompositionEntry struct {
	Element  string
	Fraction float64
}

// CustomSection holds the raw lines of a custom data section, each line
// split into words.
type CustomSection [][]string

// MatInfo describes a material. It is owned by the host and read-only to
// factories and processes.
type MatInfo struct {
	Name           string
	Temperature    float64 // K
	Density        float64 // g/cm3
	Phase          Phase
	Composition    []CompositionEntry
	CustomSections map[string][]CustomSection
}

const fractionTolerance = 1e-6

// Validate checks the material for data-validation failures.
func (m *MatInfo) Validate() error {
	if m == nil {
		return BadInput("", "missing material info")
	}
	if !(m.Temperature > 0) || math.IsInf(m.Temperature, 0) {
		return BadInput(m.Name, "temperature must be positive, got %g", m.Temperature)
	}
	if !(m.Density > 0) || math.IsInf(m.Density, 0) {
		return BadInput(m.Name, "density must be positive, got %g", m.Density)
	}
	switch m.Phase {
	case Solid, Liquid, Gas:
	default:
		return BadInput(m.Name, "unknown phase %q", m.Phase)
	}
	if len(m.Composition) == 0 {
		return BadInput(m.Name, "empty composition")
	}
	total := 0.0
	for _, c := range m.Composition {
		if _, ok := LookupElement(c.Element); !ok {
			return BadInput(m.Name, "unknown element %q", c.Element)
		}
		if !(c.Fraction > 0) || c.Fraction > 1 {
			return BadInput(m.Name, "fraction of %s must be in (0,1], got %g", c.Element, c.Fraction)
		}
		total += c.Fraction
	}
	if math.Abs(total-1) > fractionTolerance {
		return BadInput(m.Name, "composition fractions sum to %g, want 1", total)
	}
	for name := range m.CustomSections {
		if name == "" || strings.ToUpper(name) != name {
			return BadInput(m.Name, "custom section name %q must be non-empty upper case", name)
		}
	}
	return nil
}

func (m *MatInfo) CountCustomSections(name string) int {
	if m == nil {
		return 0
	}
	return len(m.CustomSections[name])
}

// CustomSection returns the first section with the given name.
func (m *MatInfo) CustomSection(name string) (CustomSection, bool) {
	if m.CountCustomSections(name) == 0 {
		return nil, false
	}
	return m.CustomSections[name][0], true
}

// Element holds bound scattering lengths expressed as cross-sections.
type Element struct {
	Symbol  string
	Mass    float64 // amu
	CohXS   float64 // barn, bound
	IncohXS float64 // barn, bound
}

const neutronMass = 1.00866491595 // amu

// FreeScale converts a bound-atom cross-section into the free-atom value.
func (e Element) FreeScale() float64 {
	a := e.Mass / neutronMass
	return (a / (a + 1)) * (a / (a + 1))
}

var elements = map[string]Element{
	"H":  {"H", 1.008, 1.7568, 80.26},
	"C":  {"C", 12.011, 5.551, 0.001},
	"N":  {"N", 14.007, 11.01, 0.5},
	"O":  {"O", 15.999, 4.232, 0.0008},
	"Mg": {"Mg", 24.305, 3.631, 0.08},
	"Al": {"Al", 26.982, 1.495, 0.0082},
	"Si": {"Si", 28.085, 2.163, 0.004},
	"Ti": {"Ti", 47.867, 1.485, 2.87},
	"V":  {"V", 50.942, 0.0184, 5.08},
	"Fe": {"Fe", 55.845, 11.22, 0.4},
	"Ni": {"Ni", 58.693, 13.3, 5.2},
	"Cu": {"Cu", 63.546, 7.485, 0.55},
	"Zr": {"Zr", 91.224, 6.44, 0.02},
	"Pb": {"Pb", 207.2, 11.115, 0.003},
}

func LookupElement(symbol string) (Element, bool) {
	e, ok := elements[symbol]
	return e, ok
}
