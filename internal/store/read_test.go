package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/query"
	"github.com/roach88/catalogue/internal/testutil"
)

func TestRecords_EmptyIsNotNil(t *testing.T) {
	s := createTestStore(t)
	got, err := s.Records(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// The SQL path must agree with the in-memory engine for every state,
// including tie order.
func TestQuery_MatchesVisible(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	records := testutil.Synthesize(t, 7, 120)
	// A few unranked and undated records to exercise the sentinels.
	records[10].FeaturedRank = 0
	records[11].FeaturedRank = 0
	records[12].AddedAt = catalogue.Date{}
	_, err := s.Rebuild(ctx, records)
	require.NoError(t, err)

	patches := []query.Patch{
		{},
		{CategoryID: query.Ptr("food")},
		{CategoryID: query.Ptr("food"), Sort: query.Ptr(query.SortPriceAsc)},
		{Sort: query.Ptr(query.SortPriceDesc)},
		{Sort: query.Ptr(query.SortNewest)},
		{Styles: []string{"Minimal"}},
		{Styles: []string{"Neon", "Luxury"}, Sort: query.Ptr(query.SortPriceAsc)},
		{Text: query.Ptr("studio")},
		{Text: query.Ptr("  COFFEE ")},
		{Text: query.Ptr("tech"), Sort: query.Ptr(query.SortNewest)},
		{Text: query.Ptr("100%")},
		{Text: query.Ptr("zzz-no-match")},
		{CategoryID: query.Ptr("all"), Styles: []string{"Warm"}, Text: query.Ptr("a")},
	}
	for _, p := range patches {
		st := query.DefaultState().Apply(p)
		want := query.Visible(records, st)
		got, err := s.Query(ctx, st)
		require.NoError(t, err)
		assert.Equal(t, skuList(want), skuList(got), "state %+v", st)
	}
}

func TestQuery_ReturnsFullRecords(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	records := testutil.SampleRecords()
	_, err := s.Rebuild(ctx, records)
	require.NoError(t, err)

	st := query.DefaultState().Apply(query.Patch{Text: query.Ptr("yoga")})
	got, err := s.Query(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, []catalogue.Record{records[2]}, got)
}

func TestHashesAndDrift(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	records := testutil.SampleRecords()
	_, err := s.Rebuild(ctx, records[:3])
	require.NoError(t, err)

	hashes, err := s.Hashes(ctx)
	require.NoError(t, err)
	require.Len(t, hashes, 3)
	want, err := catalogue.ContentHash(records[0])
	require.NoError(t, err)
	assert.Equal(t, want, hashes[records[0].SKU])

	edited := testutil.SampleRecords()
	edited[1].Price = 149
	missing, changed, extra, err := s.Drift(ctx, append(edited[1:2], edited[3]))
	require.NoError(t, err)
	assert.Equal(t, []string{"TECH-9001"}, missing)
	assert.Equal(t, []string{"FOOD-3307"}, changed)
	assert.Equal(t, []string{"FITN-4821", "FOOD-1201"}, extra)
}

func skuList(records []catalogue.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.SKU
	}
	return out
}
