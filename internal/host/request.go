package host

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ScatterRequest is the configuration a factory is queried with. It is
// owned by the host; factories must not retain it after Produce returns.
type ScatterRequest struct {
	Info      *MatInfo
	Inelas    string
	IncohElas bool
	CohElas   bool

	// factories skipped while resolving this request, accumulated through
	// nested resolutions
	excluded []string
}

// NewScatterRequest returns a request with the host defaults: inelastic mode
// "auto" and both elastic channels enabled.
func NewScatterRequest(info *MatInfo) *ScatterRequest {
	return &ScatterRequest{
		Info:      info,
		Inelas:    "auto",
		IncohElas: true,
		CohElas:   true,
	}
}

func (r *ScatterRequest) MaterialName() string {
	if r == nil || r.Info == nil {
		return ""
	}
	return r.Info.Name
}

// without returns a copy of r whose resolution also skips factory.
func (r *ScatterRequest) without(factory string) *ScatterRequest {
	c := *r
	c.excluded = append(slices.Clone(r.excluded), factory)
	return &c
}

func (r *ScatterRequest) String() string {
	return fmt.Sprintf("%s;inelas=%s;incoh_elas=%t;coh_elas=%t",
		r.MaterialName(), r.Inelas, r.IncohElas, r.CohElas)
}

// MaterialLookup resolves a material name to its info.
type MaterialLookup func(name string) (*MatInfo, error)

// ParseCfg builds a request from a cfg string of the form
// "<material>[;key=value]...". Recognised keys are inelas, incoh_elas and
// coh_elas.
func ParseCfg(cfg string, lookup MaterialLookup) (*ScatterRequest, error) {
	parts := strings.Split(cfg, ";")
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, BadInput("", "cfg string %q does not start with a material name", cfg)
	}

	info, err := lookup(name)
	if err != nil {
		return nil, err
	}
	req := NewScatterRequest(info)

	for _, part := range parts[1:] {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, BadInput(name, "cfg parameter %q is not of the form key=value", part)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "inelas":
			if value == "" {
				return nil, BadInput(name, "empty inelas value")
			}
			req.Inelas = value
		case "incoh_elas", "coh_elas":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, BadInput(name, "invalid boolean %q for %s", value, key)
			}
			if key == "incoh_elas" {
				req.IncohElas = b
			} else {
				req.CohElas = b
			}
		default:
			return nil, BadInput(name, "unknown cfg parameter %q", key)
		}
	}

	return req, nil
}
