package harness

import (
	"fmt"
	"slices"
)

// CheckExpect evaluates e against a step outcome and returns one message
// per failed expectation. It returns nil when everything holds.
func CheckExpect(sr StepResult, e Expect) []string {
	var errs []string

	if e.Visible != nil && !slices.Equal(sr.Visible, e.Visible) {
		errs = append(errs, fmt.Sprintf("visible: expected %v, got %v", e.Visible, sr.Visible))
	}

	if e.Groups != nil {
		got := make([]string, len(sr.Groups))
		for i, g := range sr.Groups {
			got[i] = g.CategoryID
		}
		if !slices.Equal(got, e.Groups) {
			errs = append(errs, fmt.Sprintf("groups: expected %v, got %v", e.Groups, got))
		}
	}

	if e.Count != nil && len(sr.Visible) != *e.Count {
		errs = append(errs, fmt.Sprintf("count: expected %d, got %d", *e.Count, len(sr.Visible)))
	}

	for _, sku := range e.Contains {
		if !slices.Contains(sr.Visible, sku) {
			errs = append(errs, fmt.Sprintf("contains: %s not visible", sku))
		}
	}
	for _, sku := range e.Excludes {
		if slices.Contains(sr.Visible, sku) {
			errs = append(errs, fmt.Sprintf("excludes: %s is visible", sku))
		}
	}

	return errs
}
