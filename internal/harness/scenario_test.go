package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScenario writes content as dir/test.yaml next to an empty data file.
func writeScenario(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.js"), []byte("export const ITEMS = [\n];\n"), 0644))
	path := filepath.Join(dir, "test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	path := writeScenario(t, `
name: test_scenario
description: "Test scenario for validation"
data: data.js
steps:
  - query:
      q: pizza
      category: food
      styles: [Warm]
      sort: newest
    expect:
      count: 0
  - reset: true
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "data.js"), scenario.Data)
	require.Len(t, scenario.Steps, 2)
	assert.True(t, scenario.Steps[1].Reset)

	q := scenario.Steps[0].Query
	require.NotNil(t, q)
	assert.Equal(t, "pizza", *q.Text)
	assert.Equal(t, "food", *q.Category)
	assert.Equal(t, []string{"Warm"}, q.Styles)
	require.NotNil(t, scenario.Steps[0].Expect.Count)
	assert.Equal(t, 0, *scenario.Steps[0].Expect.Count)
}

func TestLoadScenario_EmptyStylesClearsFilter(t *testing.T) {
	path := writeScenario(t, `
name: clear
description: "Clear styles"
data: data.js
steps:
  - query:
      styles: []
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	p, err := scenario.Steps[0].Query.Patch()
	require.NoError(t, err)
	assert.NotNil(t, p.Styles)
	assert.Empty(t, p.Styles)
	assert.Nil(t, p.Text)
	assert.Nil(t, p.Sort)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario("/nonexistent/scenario.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestLoadScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing name",
			content: "description: d\ndata: data.js\nsteps:\n  - reset: true\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: n\ndata: data.js\nsteps:\n  - reset: true\n",
			wantErr: "description is required",
		},
		{
			name:    "missing data",
			content: "name: n\ndescription: d\nsteps:\n  - reset: true\n",
			wantErr: "data is required",
		},
		{
			name:    "data not found",
			content: "name: n\ndescription: d\ndata: nope.js\nsteps:\n  - reset: true\n",
			wantErr: "data file not found",
		},
		{
			name:    "no steps",
			content: "name: n\ndescription: d\ndata: data.js\nsteps: []\n",
			wantErr: "steps list is required",
		},
		{
			name:    "empty step",
			content: "name: n\ndescription: d\ndata: data.js\nsteps:\n  - {}\n",
			wantErr: "steps[0]: one of reset, query or expect is required",
		},
		{
			name:    "unknown sort",
			content: "name: n\ndescription: d\ndata: data.js\nsteps:\n  - query:\n      sort: cheapest\n",
			wantErr: "unknown sort key",
		},
		{
			name:    "negative count",
			content: "name: n\ndescription: d\ndata: data.js\nsteps:\n  - expect:\n      count: -1\n",
			wantErr: "count must be non-negative",
		},
		{
			name:    "unknown field",
			content: "name: n\ndescription: d\ndata: data.js\nsteps:\n  - expects:\n      count: 1\n",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenario(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenarios_SortedAndUnique(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios")
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"default_featured", "filters_compose", "sorts", "text_search"}, names)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.js"), []byte("export const ITEMS = [\n];\n"), 0644))
	body := "name: same\ndescription: d\ndata: data.js\nsteps:\n  - reset: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(body), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(body), 0644))

	_, err = LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario name "same" already used by a.yaml`)
}
