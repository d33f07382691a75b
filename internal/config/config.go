package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ncscatter/internal/host"
	"github.com/san-kum/ncscatter/internal/sampling"
)

const (
	DefaultInelas    = "auto"
	DefaultEnergy    = 0.0253
	DefaultEvents    = 100000
	DefaultWorkers   = 4
	DefaultBatchSize = 4096
	DefaultEmin      = 1e-5
	DefaultEmax      = 1.0
	DefaultPoints    = 200
)

type Config struct {
	Request   RequestConfig    `yaml:"request" toml:"request"`
	Sampling  SamplingConfig   `yaml:"sampling" toml:"sampling"`
	Grid      GridConfig       `yaml:"grid" toml:"grid"`
	Materials []MaterialConfig `yaml:"materials" toml:"materials"`
}

type RequestConfig struct {
	Inelas    string `yaml:"inelas" toml:"inelas"`
	IncohElas bool   `yaml:"incoh_elas" toml:"incoh_elas"`
	CohElas   bool   `yaml:"coh_elas" toml:"coh_elas"`
}

type SamplingConfig struct {
	Energy    float64 `yaml:"energy" toml:"energy"`
	Events    int     `yaml:"events" toml:"events"`
	Workers   int     `yaml:"workers" toml:"workers"`
	Seed      uint64  `yaml:"seed" toml:"seed"`
	BatchSize int     `yaml:"batch_size" toml:"batch_size"`
}

// GridConfig is the energy grid cross-sections are tabulated on.
type GridConfig struct {
	Emin   float64 `yaml:"emin" toml:"emin"`
	Emax   float64 `yaml:"emax" toml:"emax"`
	Points int     `yaml:"points" toml:"points"`
}

type MaterialConfig struct {
	Name        string              `yaml:"name" toml:"name"`
	Temperature float64             `yaml:"temperature" toml:"temperature"`
	Density     float64             `yaml:"density" toml:"density"`
	Phase       string              `yaml:"phase" toml:"phase"`
	Composition []CompositionConfig `yaml:"composition" toml:"composition"`
	Custom      []SectionConfig     `yaml:"custom,omitempty" toml:"custom,omitempty"`
}

type CompositionConfig struct {
	Element  string  `yaml:"element" toml:"element"`
	Fraction float64 `yaml:"fraction" toml:"fraction"`
}

// SectionConfig is a custom data section; every entry of Lines is one line
// of whitespace separated words.
type SectionConfig struct {
	Name  string   `yaml:"name" toml:"name"`
	Lines []string `yaml:"lines" toml:"lines"`
}

func DefaultConfig() *Config {
	return &Config{
		Request: RequestConfig{
			Inelas:    DefaultInelas,
			IncohElas: true,
			CohElas:   true,
		},
		Sampling: SamplingConfig{
			Energy:    DefaultEnergy,
			Events:    DefaultEvents,
			Workers:   DefaultWorkers,
			Seed:      1,
			BatchSize: DefaultBatchSize,
		},
		Grid: GridConfig{
			Emin:   DefaultEmin,
			Emax:   DefaultEmax,
			Points: DefaultPoints,
		},
	}
}

// Load reads a yaml or toml file, chosen by extension, on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var b strings.Builder
		err = toml.NewEncoder(&b).Encode(cfg)
		data = []byte(b.String())
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Info converts the material into host material info.
func (m MaterialConfig) Info() *host.MatInfo {
	info := &host.MatInfo{
		Name:        m.Name,
		Temperature: m.Temperature,
		Density:     m.Density,
		Phase:       host.Phase(m.Phase),
	}
	for _, c := range m.Composition {
		info.Composition = append(info.Composition, host.CompositionEntry{Element: c.Element, Fraction: c.Fraction})
	}
	for _, s := range m.Custom {
		if info.CustomSections == nil {
			info.CustomSections = make(map[string][]host.CustomSection)
		}
		sec := make(host.CustomSection, 0, len(s.Lines))
		for _, line := range s.Lines {
			if words := strings.Fields(line); len(words) > 0 {
				sec = append(sec, words)
			}
		}
		info.CustomSections[s.Name] = append(info.CustomSections[s.Name], sec)
	}
	return info
}

// Lookup finds a material by name, first in the config file, then among the
// presets.
func (c *Config) Lookup(name string) (*host.MatInfo, error) {
	for _, m := range c.Materials {
		if m.Name == name {
			return m.Info(), nil
		}
	}
	if m, ok := Presets[name]; ok {
		return m.Info(), nil
	}
	return nil, fmt.Errorf("unknown material: %s (available: %v)", name, c.MaterialNames())
}

// MaterialNames lists config materials followed by presets.
func (c *Config) MaterialNames() []string {
	names := make([]string, 0, len(c.Materials)+len(Presets))
	for _, m := range c.Materials {
		names = append(names, m.Name)
	}
	return append(names, ListPresets()...)
}

// Request resolves a cfg string against the config's materials with the
// config's request defaults applied first.
func (c *Config) Request(cfgstr string) (*host.ScatterRequest, error) {
	return host.ParseCfg(c.applyDefaults(cfgstr), c.Lookup)
}

func (c *Config) applyDefaults(cfgstr string) string {
	name, rest, _ := strings.Cut(cfgstr, ";")
	out := fmt.Sprintf("%s;inelas=%s;incoh_elas=%t;coh_elas=%t",
		name, c.Request.Inelas, c.Request.IncohElas, c.Request.CohElas)
	if rest != "" {
		out += ";" + rest
	}
	return out
}

func (c *Config) SamplingConfig() sampling.Config {
	return sampling.Config{
		Energy:    c.Sampling.Energy,
		Events:    c.Sampling.Events,
		Workers:   c.Sampling.Workers,
		Seed:      c.Sampling.Seed,
		BatchSize: c.Sampling.BatchSize,
	}
}
