package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario: a sequence of attribute
// writes (and clears) applied to one instance, followed by assertions on
// the recorded history.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden
	// file when the scenario runs under RunWithGolden.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Token is the fixed instance token, for deterministic golden
	// comparison. Defaults to "scenario-default".
	Token string `yaml:"token,omitempty"`

	// Steps are applied in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the resulting history and final values.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Step is one scenario action: a write, a single-attribute clear, or a
// whole-ledger clear. Exactly one form must be set.
type Step struct {
	// Attr names the attribute to write; used with Value.
	Attr string `yaml:"attr,omitempty"`

	// Value is the value to assign. A YAML null writes nil, which is
	// recorded as nil, not as the absence sentinel.
	Value any `yaml:"value,omitempty"`

	// Clear names an attribute whose history is truncated.
	Clear string `yaml:"clear,omitempty"`

	// ClearAll truncates the whole ledger.
	ClearAll bool `yaml:"clear_all,omitempty"`
}

// Assertion validates history or final state.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Attr names the attribute under test (all types except write_order).
	Attr string `yaml:"attr,omitempty"`

	// Changes is the expected full change sequence (history_equals).
	Changes []ChangeExpect `yaml:"changes,omitempty"`

	// Count is the expected number of entries (history_count).
	Count int `yaml:"count,omitempty"`

	// Attrs is the expected relative first-write order (write_order).
	Attrs []string `yaml:"attrs,omitempty"`

	// Value is the expected current value (final_value).
	Value any `yaml:"value,omitempty"`
}

// ChangeExpect is one expected (old, new) pair. OldUnset asserts the old
// side is the absence sentinel, which has no literal YAML spelling.
type ChangeExpect struct {
	Old      any  `yaml:"old,omitempty"`
	OldUnset bool `yaml:"old_unset,omitempty"`
	New      any  `yaml:"new"`
}

// Assertion type constants.
const (
	AssertHistoryEquals = "history_equals"
	AssertHistoryCount  = "history_count"
	AssertWriteOrder    = "write_order"
	AssertFinalValue    = "final_value"
	AssertChainIntact   = "chain_intact"
)

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected (catches typos like "assertion:" vs "assertions:"), and the
// scenario is validated before being returned.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &scenario, nil
}

// Validate checks structural requirements: a name, at least one step, each
// step in exactly one form, and well-formed assertions.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario needs at least one step")
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	for i, a := range s.Assertions {
		if err := a.validate(); err != nil {
			return fmt.Errorf("assertion %d: %w", i, err)
		}
	}
	return nil
}

func (st *Step) validate() error {
	forms := 0
	if st.Attr != "" {
		forms++
	}
	if st.Clear != "" {
		forms++
	}
	if st.ClearAll {
		forms++
	}
	if forms != 1 {
		return fmt.Errorf("exactly one of attr, clear, clear_all must be set")
	}
	return nil
}

func (a *Assertion) validate() error {
	switch a.Type {
	case AssertHistoryEquals:
		if a.Attr == "" {
			return fmt.Errorf("%s requires attr", a.Type)
		}
	case AssertHistoryCount:
		if a.Attr == "" {
			return fmt.Errorf("%s requires attr", a.Type)
		}
		if a.Count < 0 {
			return fmt.Errorf("%s count must be non-negative", a.Type)
		}
	case AssertWriteOrder:
		if len(a.Attrs) < 2 {
			return fmt.Errorf("%s requires at least two attrs", a.Type)
		}
	case AssertFinalValue, AssertChainIntact:
		if a.Attr == "" {
			return fmt.Errorf("%s requires attr", a.Type)
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}
