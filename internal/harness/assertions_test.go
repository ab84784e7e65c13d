package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleStep() StepResult {
	return StepResult{
		Visible: []string{"FOOD-3307", "FITN-4821"},
		Groups: []GroupSnapshot{
			{CategoryID: "food", Name: "Food & Drink", SKUs: []string{"FOOD-3307"}},
			{CategoryID: "fitness", Name: "Fitness", SKUs: []string{"FITN-4821"}},
		},
	}
}

func TestCheckExpect_AllHold(t *testing.T) {
	count := 2
	errs := CheckExpect(sampleStep(), Expect{
		Visible:  []string{"FOOD-3307", "FITN-4821"},
		Groups:   []string{"food", "fitness"},
		Count:    &count,
		Contains: []string{"FITN-4821"},
		Excludes: []string{"TECH-9001"},
	})
	assert.Empty(t, errs)
}

func TestCheckExpect_EmptyExpectChecksNothing(t *testing.T) {
	assert.Empty(t, CheckExpect(sampleStep(), Expect{}))
}

func TestCheckExpect_Failures(t *testing.T) {
	count := 3
	errs := CheckExpect(sampleStep(), Expect{
		Visible:  []string{"FITN-4821", "FOOD-3307"},
		Groups:   []string{"fitness", "food"},
		Count:    &count,
		Contains: []string{"TECH-9001"},
		Excludes: []string{"FOOD-3307"},
	})
	assert.Equal(t, []string{
		"visible: expected [FITN-4821 FOOD-3307], got [FOOD-3307 FITN-4821]",
		"groups: expected [fitness food], got [food fitness]",
		"count: expected 3, got 2",
		"contains: TECH-9001 not visible",
		"excludes: FOOD-3307 is visible",
	}, errs)
}

func TestCheckExpect_EmptyVisibleListMeansNoMatches(t *testing.T) {
	errs := CheckExpect(StepResult{Visible: []string{}}, Expect{Visible: []string{}})
	assert.Empty(t, errs)

	errs = CheckExpect(sampleStep(), Expect{Visible: []string{}})
	assert.Len(t, errs, 1)
}
