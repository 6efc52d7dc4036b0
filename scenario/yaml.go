package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/dipak93/Byzantine-Generals-Problem/core"
)

// FaultSpec names a fault behavior for one sender, as found in a YAML
// scenario document. Exactly one of the value-bearing fields is set for
// "each": the rest pick a named generator.
type FaultSpec struct {
	Sender int            `yaml:"sender"`
	Kind   string         `yaml:"kind"` // "asymmetric-source", "always-one", "always-zero", "always-unknown", "each"
	Each   map[int]string `yaml:"each,omitempty"`
}

// Document is the on-disk shape of a custom scenario, an opt-in
// alternative to specifying everything through CLI flags.
type Document struct {
	SourceID     int         `yaml:"source_id"`
	M            int         `yaml:"m"`
	N            int         `yaml:"n"`
	Debug        bool        `yaml:"debug"`
	SourceValue  string      `yaml:"source_value"`
	DefaultValue string      `yaml:"default_value"`
	Faults       []FaultSpec `yaml:"faults,omitempty"`
}

// LoadFile parses a YAML scenario document from path and builds the
// *Policy it describes.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenario: parse %s: %w", path, err)
	}
	return doc.Build()
}

// Build converts a parsed Document into a runnable *Policy.
func (d *Document) Build() (*Policy, error) {
	sourceValue, err := parseValue(d.SourceValue)
	if err != nil {
		return nil, fmt.Errorf("scenario: source_value: %w", err)
	}
	defaultValue, err := parseValue(d.DefaultValue)
	if err != nil {
		return nil, fmt.Errorf("scenario: default_value: %w", err)
	}

	p := NewPolicy(d.SourceID, d.M, d.N, sourceValue, defaultValue).WithDebug(d.Debug)

	for _, spec := range d.Faults {
		fn, err := spec.buildFaultFunc()
		if err != nil {
			return nil, fmt.Errorf("scenario: sender %d: %w", spec.Sender, err)
		}
		p.SetFaulty(spec.Sender, fn)
	}
	return p, nil
}

func (spec *FaultSpec) buildFaultFunc() (FaultFunc, error) {
	switch spec.Kind {
	case "asymmetric-source":
		return FaultySourceAsymmetric(), nil
	case "always-one":
		return FaultyAlwaysOne(), nil
	case "always-zero":
		return FaultyAlwaysZero(), nil
	case "always-unknown":
		return FaultyAlwaysUnknown(), nil
	case "each":
		values := make(map[int]core.Value, len(spec.Each))
		for receiver, s := range spec.Each {
			v, err := parseValue(s)
			if err != nil {
				return nil, fmt.Errorf("each[%d]: %w", receiver, err)
			}
			values[receiver] = v
		}
		return FaultToEach(values), nil
	default:
		return nil, fmt.Errorf("unrecognized fault kind %q", spec.Kind)
	}
}

func parseValue(s string) (core.Value, error) {
	switch s {
	case "0", "zero", "ZERO":
		return core.Zero, nil
	case "1", "one", "ONE":
		return core.One, nil
	case "", "unknown", "UNKNOWN":
		return core.Unknown, nil
	default:
		return core.Unknown, fmt.Errorf("unrecognized value %q", s)
	}
}
