package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/catalogue/internal/query"
)

// Scenario defines a query scenario: a data file and the steps run
// against it.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Data is the catalogue data file. Relative paths are resolved against
	// the scenario file's directory.
	Data string `yaml:"data"`

	// Steps run in order against one query engine.
	Steps []Step `yaml:"steps"`
}

// Step changes the query state and optionally checks the outcome.
// Reset runs before Query when both are set.
type Step struct {
	Reset  bool        `yaml:"reset,omitempty"`
	Query  *QueryPatch `yaml:"query,omitempty"`
	Expect *Expect     `yaml:"expect,omitempty"`
}

// QueryPatch is the YAML form of query.Patch. Absent keys leave the state
// unchanged; `styles: []` clears the style filter.
type QueryPatch struct {
	Text     *string  `yaml:"q,omitempty"`
	Category *string  `yaml:"category,omitempty"`
	Styles   []string `yaml:"styles,omitempty"`
	Sort     *string  `yaml:"sort,omitempty"`
}

// Patch converts p, rejecting unknown sort keys.
func (p QueryPatch) Patch() (query.Patch, error) {
	out := query.Patch{
		Text:       p.Text,
		CategoryID: p.Category,
		Styles:     p.Styles,
	}
	if p.Sort != nil {
		key, err := query.ParseSort(*p.Sort)
		if err != nil {
			return query.Patch{}, err
		}
		out.Sort = &key
	}
	return out, nil
}

// Expect lists what must hold after a step. Unset fields are not checked.
type Expect struct {
	// Visible is the exact visible SKU order.
	Visible []string `yaml:"visible,omitempty"`

	// Groups is the exact category ID order of the non-empty groups.
	Groups []string `yaml:"groups,omitempty"`

	// Count is the number of visible templates.
	Count *int `yaml:"count,omitempty"`

	// Contains and Excludes are SKUs that must or must not be visible.
	Contains []string `yaml:"contains,omitempty"`
	Excludes []string `yaml:"excludes,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "expects:" vs "expect:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve the data path relative to the scenario BEFORE validation
	if scenario.Data != "" && !filepath.IsAbs(scenario.Data) {
		scenario.Data = filepath.Join(filepath.Dir(path), scenario.Data)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%s: scenario name %q already used by %s", filepath.Base(path), s.Name, prev)
		}
		seen[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Data == "" {
		return fmt.Errorf("data is required")
	}
	if _, err := os.Stat(s.Data); os.IsNotExist(err) {
		return fmt.Errorf("data file not found: %s", s.Data)
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if !step.Reset && step.Query == nil && step.Expect == nil {
			return fmt.Errorf("steps[%d]: one of reset, query or expect is required", i)
		}
		if step.Query != nil {
			if _, err := step.Query.Patch(); err != nil {
				return fmt.Errorf("steps[%d].query: %w", i, err)
			}
		}
		if step.Expect != nil && step.Expect.Count != nil && *step.Expect.Count < 0 {
			return fmt.Errorf("steps[%d].expect: count must be non-negative", i)
		}
	}

	return nil
}
