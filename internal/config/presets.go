package config

import (
	"sort"

	"github.com/facette/natsort"
)

var Presets = map[string]MaterialConfig{
	"Al": {
		Name: "Al", Temperature: 293.15, Density: 2.699, Phase: "solid",
		Composition: []CompositionConfig{{"Al", 1}},
	},
	"Al_cutoff": {
		Name: "Al_cutoff", Temperature: 293.15, Density: 2.699, Phase: "solid",
		Composition: []CompositionConfig{{"Al", 1}},
		Custom:      []SectionConfig{{Name: "CUTOFF", Lines: []string{"1.5 4.04"}}},
	},
	"V": {
		Name: "V", Temperature: 293.15, Density: 6.11, Phase: "solid",
		Composition: []CompositionConfig{{"V", 1}},
	},
	"Fe_cutoff": {
		Name: "Fe_cutoff", Temperature: 293.15, Density: 7.874, Phase: "solid",
		Composition: []CompositionConfig{{"Fe", 1}},
		Custom:      []SectionConfig{{Name: "CUTOFF", Lines: []string{"0.8 4.05"}}},
	},
	"H2O": {
		Name: "H2O", Temperature: 293.15, Density: 0.998, Phase: "liquid",
		Composition: []CompositionConfig{{"H", 2.0 / 3}, {"O", 1.0 / 3}},
		Custom:      []SectionConfig{{Name: "CUTOFF", Lines: []string{"20 1.0"}}},
	},
	"polyethylene": {
		Name: "polyethylene", Temperature: 293.15, Density: 0.92, Phase: "solid",
		Composition: []CompositionConfig{{"C", 1.0 / 3}, {"H", 2.0 / 3}},
		Custom:      []SectionConfig{{Name: "CUTOFF", Lines: []string{"40 2.5"}}},
	},
}

// ListPresets returns the preset names in natural order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return natsort.Compare(names[i], names[j]) })
	return names
}
