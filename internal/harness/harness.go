package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/query"
	"github.com/roach88/catalogue/internal/store"
)

// Harness is the scenario execution engine. It holds one query engine and
// an in-memory index over the same records.
type Harness struct {
	engine *query.Engine
	index  *store.Store
	logger *slog.Logger
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Decode the scenario's data file
// 2. Build the engine and rebuild the in-memory index from the records
// 3. Run each step: reset, apply the query, evaluate with engine and index
// 4. Check the step's expectations
func Run(scenario *Scenario) (*Result, error) {
	records, err := datastore.NewFile(scenario.Data).Records()
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario data: %w", err)
	}

	// Create fresh in-memory SQLite database
	st, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	if _, err := st.Rebuild(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to index scenario data: %w", err)
	}

	h := &Harness{
		engine: query.New(records),
		index:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	}

	result := NewResult(scenario.Name, len(records))
	for i, step := range scenario.Steps {
		if err := h.executeStep(ctx, i+1, step, result); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return result, nil
}

// executeStep applies one step, records its outcome and checks it.
func (h *Harness) executeStep(ctx context.Context, n int, step Step, result *Result) error {
	if step.Reset {
		h.engine.Reset()
	}
	if step.Query != nil {
		p, err := step.Query.Patch()
		if err != nil {
			return err
		}
		h.engine.SetQuery(p)
	}

	state := h.engine.State()
	visible := h.engine.Visible()
	h.logger.Debug("step evaluated", "step", n, "visible", len(visible))

	indexed, err := h.index.Query(ctx, state)
	if err != nil {
		return fmt.Errorf("index query: %w", err)
	}
	if got, want := skus(indexed), skus(visible); !slices.Equal(got, want) {
		result.AddError(fmt.Sprintf("step %d: index returned %v, engine returned %v", n, got, want))
	}

	sr := StepResult{
		State:   state,
		Visible: skus(visible),
		Groups:  snapshotGroups(query.GroupByCategory(visible)),
	}
	result.Steps = append(result.Steps, sr)

	if step.Expect != nil {
		for _, msg := range CheckExpect(sr, *step.Expect) {
			result.AddError(fmt.Sprintf("step %d: %s", n, msg))
		}
	}
	return nil
}

func skus(records []catalogue.Record) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.SKU
	}
	return out
}
