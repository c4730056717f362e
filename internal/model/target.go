// Package model defines the data structures produced by Makefile analysis.
package model

// Target is a build goal discovered in a Makefile.
type Target struct {
	Name    string   `json:"name" yaml:"name" cbor:"name"`
	Default bool     `json:"default" yaml:"default" cbor:"default"`
	Output  []string `json:"output" yaml:"output" cbor:"output"` // nil when no output was detected
}

// MarshalYAML writes a nil Output as null, so it decodes back to nil rather
// than to an empty list.
func (t Target) MarshalYAML() (any, error) {
	type yamlTarget struct {
		Name    string    `yaml:"name"`
		Default bool      `yaml:"default"`
		Output  *[]string `yaml:"output"`
	}

	out := yamlTarget{Name: t.Name, Default: t.Default}
	if t.Output != nil {
		out.Output = &t.Output
	}

	return out, nil
}

// NewTarget creates a non-default target with no output.
func NewTarget(name string) Target {
	return Target{Name: name}
}

// Equal reports whether two targets share a name. Default and Output are ignored.
func (t Target) Equal(other Target) bool {
	return t.Name == other.Name
}

// HasOutput reports whether an output path was recorded for the target.
func (t Target) HasOutput() bool {
	return len(t.Output) > 0
}

// Targets is an ordered list of targets in declaration order.
type Targets []Target

// Find returns the first target equal to a target named name.
func (ts Targets) Find(name string) (Target, bool) {
	probe := NewTarget(name)

	for _, t := range ts {
		if t.Equal(probe) {
			return t, true
		}
	}

	return Target{}, false
}

// Names returns target names in order.
func (ts Targets) Names() []string {
	names := make([]string, 0, len(ts))
	for _, t := range ts {
		names = append(names, t.Name)
	}

	return names
}

// Default returns the default target, if any.
func (ts Targets) Default() (Target, bool) {
	for _, t := range ts {
		if t.Default {
			return t, true
		}
	}

	return Target{}, false
}
