// Package generate sequences the synthesizer, slug registry, page emitter,
// data file and index into generation cycles, and drives them in batch,
// endless and preview-regeneration modes.
//
// Generation is single-goroutine. A cycle always runs to completion once
// started; cancellation is only observed between cycles.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/page"
	"github.com/roach88/catalogue/internal/slug"
	"github.com/roach88/catalogue/internal/store"
	"github.com/roach88/catalogue/internal/synth"
	"github.com/roach88/catalogue/internal/vocab"
)

// Options configures NewRunner. Data, OutputDir and Tables are required.
type Options struct {
	Tables    *vocab.Tables
	Data      *datastore.File
	OutputDir string

	// Index is updated after each successful append. Optional.
	Index *store.Store
	// Logger defaults to slog.Default().
	Logger *slog.Logger

	Reserved    []string
	MaxAttempts int
	Rand        *rand.Rand
	Now         func() time.Time

	// OnCycle is called after every cycle with its result or error.
	OnCycle func(Result, error)
}

// Result describes one completed cycle.
type Result struct {
	Record   catalogue.Record `json:"record"`
	Slug     string           `json:"slug"`
	Page     string           `json:"page"`
	Appended bool             `json:"appended"`
	Indexed  bool             `json:"indexed"`
}

// Runner owns all per-run generation state. Not safe for concurrent use.
type Runner struct {
	synth     *synth.Synthesizer
	slugs     *slug.Registry
	data      *datastore.File
	index     *store.Store
	outputDir string
	reserved  []string
	logger    *slog.Logger
	onCycle   func(Result, error)
}

// NewRunner creates a runner seeded from the records already in the data
// file: their SKUs are treated as issued, ranks continue after the highest
// existing rank and their slugs are claimed.
//
// A data file without a recognizable ITEMS list is not fatal here; the
// runner starts unseeded and each append will report ErrFormat.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Tables == nil || opts.Data == nil || opts.OutputDir == "" {
		return nil, errors.New("generate: tables, data file and output dir are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	existing, err := opts.Data.Records()
	switch {
	case errors.Is(err, datastore.ErrFormat):
		logger.Warn("data file has no ITEMS list; starting unseeded", "path", opts.Data.Path, "error", err)
		existing = nil
	case err != nil:
		return nil, fmt.Errorf("load existing records: %w", err)
	}

	skus := make([]string, len(existing))
	maxRank := 0
	registry := slug.NewRegistry(opts.Reserved)
	for i, rec := range existing {
		skus[i] = rec.SKU
		maxRank = max(maxRank, rec.FeaturedRank)
		registry.Resolve(rec.Name, rec.SKU)
	}

	synthOpts := []synth.Option{
		synth.WithIssued(skus),
		synth.WithStartRank(maxRank),
		synth.WithMaxAttempts(opts.MaxAttempts),
	}
	if opts.Rand != nil {
		synthOpts = append(synthOpts, synth.WithRand(opts.Rand))
	}
	if opts.Now != nil {
		synthOpts = append(synthOpts, synth.WithNow(opts.Now))
	}

	logger.Debug("runner seeded", "records", len(existing), "max_rank", maxRank)
	return &Runner{
		synth:     synth.New(opts.Tables, synthOpts...),
		slugs:     registry,
		data:      opts.Data,
		index:     opts.Index,
		outputDir: opts.OutputDir,
		reserved:  opts.Reserved,
		logger:    logger,
		onCycle:   opts.OnCycle,
	}, nil
}

// Cycle synthesizes one record, writes its preview page, appends it to the
// data file and indexes it.
//
// Cancellation of ctx does not interrupt a started cycle. A missing closing
// marker in the data file is logged and reported as Appended=false; the
// page is still written. Synthesis and page IO errors abort the cycle.
func (r *Runner) Cycle(ctx context.Context) (Result, error) {
	res, err := r.cycle(context.WithoutCancel(ctx))
	if r.onCycle != nil {
		r.onCycle(res, err)
	}
	return res, err
}

func (r *Runner) cycle(ctx context.Context) (Result, error) {
	rec, err := r.synth.Next()
	if err != nil {
		return Result{}, fmt.Errorf("synthesize: %w", err)
	}
	res := Result{Record: rec, Slug: r.slugs.Resolve(rec.Name, rec.SKU)}

	if res.Page, err = page.Write(r.outputDir, rec, res.Slug); err != nil {
		return res, err
	}

	appended, err := r.data.AppendRecord(ctx, rec)
	switch {
	case errors.Is(err, datastore.ErrFormat):
		r.logger.Warn("skipped datastore append", "sku", rec.SKU, "error", err)
		return res, nil
	case err != nil:
		return res, err
	}
	res.Appended = appended

	if r.index != nil && appended {
		indexed, err := r.index.PutRecord(ctx, rec)
		if err != nil {
			// The data file already holds the record; reindex repairs this.
			r.logger.Warn("failed to index record", "sku", rec.SKU, "error", err)
		}
		res.Indexed = indexed
	}
	return res, nil
}

// Summary totals a batch or endless run.
type Summary struct {
	RunID     string `json:"runId,omitempty"`
	Generated int    `json:"generated"`
	Failed    int    `json:"failed"`
}

func (r *Runner) beginRun(ctx context.Context, mode string) string {
	if r.index == nil {
		return ""
	}
	id, err := r.index.BeginRun(ctx, mode)
	if err != nil {
		r.logger.Warn("failed to record run start", "mode", mode, "error", err)
		return ""
	}
	return id
}

func (r *Runner) finishRun(ctx context.Context, sum Summary, runErr error) {
	if r.index == nil || sum.RunID == "" {
		return
	}
	if err := r.index.FinishRun(context.WithoutCancel(ctx), sum.RunID, sum.Generated, sum.Failed, runErr); err != nil {
		r.logger.Warn("failed to record run end", "run", sum.RunID, "error", err)
	}
}
