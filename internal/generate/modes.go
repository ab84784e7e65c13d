package generate

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/page"
	"github.com/roach88/catalogue/internal/slug"
)

// Batch runs up to n cycles and stops at the first error. A cancelled ctx
// stops the batch between cycles without error.
func (r *Runner) Batch(ctx context.Context, n int) (Summary, error) {
	sum := Summary{RunID: r.beginRun(ctx, "batch")}
	r.logger.Info("batch started", "count", n, "run", sum.RunID)

	var runErr error
	for i := 1; i <= n; i++ {
		if ctx.Err() != nil {
			r.logger.Info("batch interrupted", "done", i-1, "count", n)
			break
		}
		res, err := r.Cycle(ctx)
		if err != nil {
			sum.Failed++
			runErr = fmt.Errorf("cycle %d/%d: %w", i, n, err)
			r.logger.Error("generation failed", "progress", fmt.Sprintf("%d/%d", i, n), "error", err)
			break
		}
		sum.Generated++
		r.logger.Info(fmt.Sprintf("%d/%d: %s (%s)", i, n, res.Record.Name, res.Record.SKU),
			"slug", res.Slug, "appended", res.Appended)
	}

	r.finishRun(ctx, sum, runErr)
	r.logger.Info("batch finished", "generated", sum.Generated, "failed", sum.Failed)
	return sum, runErr
}

// Endless runs cycles until ctx is cancelled, paced to one per delay. After
// a failed cycle it waits two intervals and tries again. It returns when ctx
// is done; the in-flight cycle always completes first.
func (r *Runner) Endless(ctx context.Context, delay time.Duration) Summary {
	sum := Summary{RunID: r.beginRun(ctx, "endless")}
	r.logger.Info("generator started", "delay", delay, "run", sum.RunID)

	limiter := newPacer(delay)
	for ctx.Err() == nil {
		res, err := r.Cycle(ctx)
		if err != nil {
			sum.Failed++
			r.logger.Error("generation failed", "error", err)
			pace(ctx, limiter, 2)
			continue
		}
		sum.Generated++
		r.logger.Info(fmt.Sprintf("Generated #%d: %s (%s) -> %s", sum.Generated, res.Record.Name, res.Record.SKU, res.Slug),
			"appended", res.Appended)
		pace(ctx, limiter, 1)
	}

	r.finishRun(ctx, sum, nil)
	r.logger.Info("generator stopped", "total", sum.Generated, "failed", sum.Failed)
	return sum
}

// newPacer returns a limiter granting one cycle per delay. The initial
// token is drained so the first wait lasts a full interval.
func newPacer(delay time.Duration) *rate.Limiter {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	l := rate.NewLimiter(limit, 1)
	l.Allow()
	return l
}

// pace waits for n intervals or until ctx is done.
func pace(ctx context.Context, l *rate.Limiter, n int) {
	for range n {
		if err := l.Wait(ctx); err != nil {
			// The deadline falls before the next token.
			if ctx.Err() == nil {
				<-ctx.Done()
			}
			return
		}
	}
}

// Previews rewrites the preview page of every record, resolving slugs with
// a fresh registry in record order so repeated runs produce the same paths.
// It stops early, without error, when ctx is cancelled.
func Previews(ctx context.Context, outputDir string, records []catalogue.Record, reserved []string) (int, error) {
	registry := slug.NewRegistry(reserved)
	n := 0
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return n, nil
		}
		s := registry.Resolve(rec.Name, rec.SKU)
		if _, err := page.Write(outputDir, rec, s); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Previews regenerates pages for records using the runner's output dir and
// reserved slugs.
func (r *Runner) Previews(ctx context.Context, records []catalogue.Record) (int, error) {
	n, err := Previews(ctx, r.outputDir, records, r.reserved)
	r.logger.Info("previews written", "count", n, "dir", r.outputDir)
	return n, err
}
