package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders a result as stable text: one block per step with the
// query state and each group's SKUs in display order.
func Snapshot(r *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario)
	fmt.Fprintf(&b, "records: %d\n", r.Records)

	for i, step := range r.Steps {
		st := step.State
		fmt.Fprintf(&b, "\nstep %d: q=%q category=%s styles=[%s] sort=%s\n",
			i+1, st.Text, st.CategoryID, strings.Join(st.StyleList(), ","), st.Sort)
		fmt.Fprintf(&b, "  visible: %d\n", len(step.Visible))
		if len(step.Groups) == 0 {
			b.WriteString("  (no matches)\n")
		}
		for _, g := range step.Groups {
			fmt.Fprintf(&b, "  %s: %s\n", g.Name, strings.Join(g.SKUs, ", "))
		}
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario, fails t on any failed expectation and
// compares the snapshot against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	AssertGolden(t, scenario.Name, result)
	return nil
}

// AssertGolden compares the snapshot of an existing result against a golden
// file without re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(result))
}
