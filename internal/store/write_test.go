package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/catalogue/internal/testutil"
)

func TestPutRecord_Idempotent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rec := testutil.SampleRecords()[0]

	inserted, err := s.PutRecord(ctx, rec)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.PutRecord(ctx, rec)
	require.NoError(t, err)
	assert.False(t, inserted)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var styles int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM record_styles WHERE sku = ?", rec.SKU).Scan(&styles))
	assert.Equal(t, 2, styles)
}

func TestPutRecord_StoresSearchColumns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	rec := testutil.SampleRecords()[2]

	_, err := s.PutRecord(ctx, rec)
	require.NoError(t, err)

	var haystack, addedAt string
	var rank int
	require.NoError(t, s.db.QueryRow(
		"SELECT haystack, added_at, featured_rank FROM records WHERE sku = ?", rec.SKU,
	).Scan(&haystack, &addedAt, &rank))

	assert.Equal(t, rec.Haystack(), haystack)
	assert.Equal(t, "2026-03-05", addedAt)
	assert.Equal(t, 0, rank)
}

func TestRebuild(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	records := testutil.SampleRecords()

	_, err := s.PutRecord(ctx, records[3])
	require.NoError(t, err)

	n, err := s.Rebuild(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, len(records), n)

	got, err := s.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestRebuild_KeepsFirstDuplicate(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()
	records := testutil.SampleRecords()
	dup := records[0]
	dup.Name = "Shadow Copy"

	n, err := s.Rebuild(ctx, append(records, dup))
	require.NoError(t, err)
	assert.Equal(t, len(records), n)

	got, err := s.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Golden Pizza Kitchen", got[0].Name)
}

func TestRebuild_Empty(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	_, err := s.Rebuild(ctx, testutil.SampleRecords())
	require.NoError(t, err)
	n, err := s.Rebuild(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	var styles int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM record_styles").Scan(&styles))
	assert.Equal(t, 0, styles)
}

func TestRuns(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	id, err := s.BeginRun(ctx, "batch")
	require.NoError(t, err)
	assert.Equal(t, "run-1", id)
	require.NoError(t, s.FinishRun(ctx, id, 3, 0, nil))

	id2, err := s.BeginRun(ctx, "endless")
	require.NoError(t, err)
	require.NoError(t, s.FinishRun(ctx, id2, 1, 2, errors.New("disk full")))

	id3, err := s.BeginRun(ctx, "batch")
	require.NoError(t, err)

	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	assert.Equal(t, "run-1", runs[0].ID)
	assert.Equal(t, "batch", runs[0].Mode)
	assert.Equal(t, testutil.Epoch, runs[0].StartedAt)
	require.NotNil(t, runs[0].FinishedAt)
	assert.Equal(t, testutil.Epoch.Add(time.Minute), *runs[0].FinishedAt)
	assert.Equal(t, 3, runs[0].Generated)
	assert.Empty(t, runs[0].Error)

	assert.Equal(t, 2, runs[1].Failed)
	assert.Equal(t, "disk full", runs[1].Error)

	assert.Equal(t, id3, runs[2].ID)
	assert.Nil(t, runs[2].FinishedAt)
}

func TestFinishRun_Unknown(t *testing.T) {
	s := createTestStore(t)
	err := s.FinishRun(context.Background(), "nope", 0, 0, nil)
	assert.Error(t, err)
}
