package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/catalogue/internal/query"
)

func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			require.NoError(t, RunWithGolden(t, s))
		})
	}
}

func TestRun_RecordsEveryStep(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/filters-compose.yaml")
	require.NoError(t, err)

	result, err := Run(s)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Equal(t, 8, result.Records)
	require.Len(t, result.Steps, 5)

	last := result.Steps[4]
	assert.Equal(t, query.DefaultState(), last.State)
	assert.Len(t, last.Visible, 8)
}

func TestRun_DetectsFailedExpectation(t *testing.T) {
	count := 1
	s := &Scenario{
		Name:        "wrong",
		Description: "expects the wrong count",
		Data:        filepath.Join("testdata", "catalogue-data.js"),
		Steps: []Step{
			{Query: &QueryPatch{Text: query.Ptr("yoga")}, Expect: &Expect{Count: &count}},
			{Query: &QueryPatch{Text: query.Ptr("")}, Expect: &Expect{Count: &count, Excludes: []string{"TECH-9001"}}},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Equal(t, []string{
		"step 2: count: expected 1, got 8",
		"step 2: excludes: TECH-9001 is visible",
	}, result.Errors)
}

func TestRun_MissingData(t *testing.T) {
	_, err := Run(&Scenario{Name: "x", Data: "testdata/missing.js", Steps: []Step{{Reset: true}}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load scenario data")
}

func TestSnapshot_NoMatches(t *testing.T) {
	result := NewResult("empty", 0)
	result.Steps = append(result.Steps, StepResult{State: query.DefaultState(), Visible: []string{}})

	assert.Equal(t, "scenario: empty\nrecords: 0\n\n"+
		"step 1: q=\"\" category=all styles=[] sort=featured\n"+
		"  visible: 0\n"+
		"  (no matches)\n", string(Snapshot(result)))
}
