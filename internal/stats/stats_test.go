package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/catalogue/internal/testutil"
)

func sampleText(t *testing.T) string {
	t.Helper()
	f := testutil.WriteDatastore(t, t.TempDir(), testutil.SampleRecords())
	text, err := f.Read()
	require.NoError(t, err)
	return text
}

func TestFromText_Sample(t *testing.T) {
	r := FromText(sampleText(t))

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, map[string]int{"food": 2, "fitness": 1, "tech": 1}, r.CategoryCounts)
	assert.Equal(t, map[string]int{
		"Warm": 2, "Minimal": 2, "Bold": 1, "Elegant": 1, "Neon": 1, "Corporate": 1,
	}, r.StyleCounts)
	assert.Equal(t, Prices{Min: 49, Max: 149, Avg: 87}, r.Prices)
	assert.Equal(t, "2026-02-01", r.Latest)
	assert.True(t, r.InSync())
}

func TestFromText_Empty(t *testing.T) {
	r := FromText("export const ITEMS = [\n];\n")
	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.Categories())
	assert.Empty(t, r.Styles())
	assert.Equal(t, Prices{}, r.Prices)
	assert.Equal(t, NoDate, r.Latest)
}

func TestFromText_LatestIsLastInFileOrder(t *testing.T) {
	text := `addedAt: "2026-05-01"` + "\n" + `addedAt: "2025-01-01"`
	assert.Equal(t, "2025-01-01", FromText(text).Latest)
}

func TestFromText_AverageRoundsHalfUp(t *testing.T) {
	r := FromText("price: 1,\nprice: 2,\n")
	assert.Equal(t, 2, r.Prices.Avg)
	assert.Equal(t, 1, r.Prices.Min)
	assert.Equal(t, 2, r.Prices.Max)
}

func TestFromText_ToleratesBrokenFile(t *testing.T) {
	text := `{ sku: "FOOD-1000", categoryId: "food", style: ["Warm", "Bold"], price: 49 ` // no closing marker
	r := FromText(text)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, 1, r.CategoryCounts["food"])
	assert.Equal(t, 1, r.StyleCounts["Bold"])
}

func TestSorted_TiesByName(t *testing.T) {
	r := Report{CategoryCounts: map[string]int{"tech": 3, "beauty": 3, "food": 5}}
	assert.Equal(t, []Count{{"food", 5}, {"beauty", 3}, {"tech", 3}}, r.Categories())
}

func TestInSync(t *testing.T) {
	n := 3
	r := Report{Total: 4, Indexed: &n}
	assert.False(t, r.InSync())
	n = 4
	assert.True(t, r.InSync())
}

func TestWriteText_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, FromText(sampleText(t))))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "sample_report", buf.Bytes())
}

func TestWriteText_IndexMismatch(t *testing.T) {
	n := 2
	r := FromText(sampleText(t))
	r.Indexed = &n

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "Indexed: 2 (index out of sync, run reindex)")
}

func TestWriteText_LimitsStyles(t *testing.T) {
	r := Report{StyleCounts: map[string]int{}}
	for _, s := range strings.Fields("a b c d e f g h i j k l") {
		r.StyleCounts[s] = 1
	}
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))

	section := buf.String()[strings.Index(buf.String(), "STYLES"):]
	assert.Equal(t, TopStyles, strings.Count(section, "   1 "))
}
