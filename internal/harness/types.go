package harness

import (
	"github.com/roach88/catalogue/internal/query"
)

// GroupSnapshot is one category group reduced to its SKUs.
type GroupSnapshot struct {
	CategoryID string   `json:"categoryId"`
	Name       string   `json:"name"`
	SKUs       []string `json:"skus"`
}

// StepResult is the query state and outcome after one step.
type StepResult struct {
	State   query.State     `json:"state"`
	Visible []string        `json:"visible"`
	Groups  []GroupSnapshot `json:"groups"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expectation held and the index agreed with
	// the engine on every step.
	Pass bool `json:"pass"`

	Scenario string       `json:"scenario"`
	Records  int          `json:"records"`
	Steps    []StepResult `json:"steps"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(scenario string, records int) *Result {
	return &Result{
		Pass:     true,
		Scenario: scenario,
		Records:  records,
		Steps:    []StepResult{},
		Errors:   []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

func snapshotGroups(groups []query.Group) []GroupSnapshot {
	out := make([]GroupSnapshot, len(groups))
	for i, g := range groups {
		out[i] = GroupSnapshot{
			CategoryID: string(g.Category.ID),
			Name:       g.Category.Name,
			SKUs:       skus(g.Records),
		}
	}
	return out
}
