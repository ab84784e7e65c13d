package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/catalogue/internal/testutil"
)

// createTestStore creates a new temp-dir store with fixed run IDs and a
// clock that advances one minute per reading.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path,
		WithIDGenerator(testutil.NewSequentialIDs("run")),
		WithNow(testutil.NewSteppingClock(testutil.Epoch, time.Minute).Now),
	)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}
