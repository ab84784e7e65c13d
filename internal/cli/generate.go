package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/config"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/generate"
	"github.com/roach88/catalogue/internal/store"
	"github.com/roach88/catalogue/internal/synth"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Count int
	Seed  uint64
}

// GenerateResult is the generate command's JSON payload.
type GenerateResult struct {
	generate.Summary
	Records []generate.Result `json:"records"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a batch of templates",
		Long: `Synthesize templates, write a preview page for each and append them to
the data file. Generation stops at the first failed cycle.

Example:
  catalogue generate --count 25
  catalogue generate -n 5 --seed 42 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 0, "number of templates (default from config, 10)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducible output (0 = random)")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	cfg, f, logger, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	count := cfg.Count
	if cmd.Flags().Changed("count") {
		count = opts.Count
	}
	if count < 1 {
		return f.Fail(ExitCommandError, ErrCodeGeneric, fmt.Sprintf("invalid count %d: must be at least 1", count), nil)
	}

	var results []generate.Result
	runner, index, err := newRunner(cfg, f, logger, opts.Seed, func(res generate.Result, err error) {
		if err == nil {
			results = append(results, res)
		}
	})
	if err != nil {
		return err
	}
	defer closeIndex(index, logger)

	ctx, stop := signalContext(cmd, logger)
	defer stop()

	sum, err := runner.Batch(ctx, count)
	if err != nil {
		code := ErrCodeGenerate
		if errors.Is(err, synth.ErrExhausted) {
			code = ErrCodeExhausted
		}
		return f.Fail(ExitFailure, code,
			fmt.Sprintf("generation stopped after %d of %d", sum.Generated, count), err)
	}

	result := GenerateResult{Summary: sum, Records: results}
	if result.Records == nil {
		result.Records = []generate.Result{}
	}
	return f.Result(result, func(w io.Writer) error {
		for _, res := range result.Records {
			fmt.Fprintf(w, "  %s  %s -> %s\n", res.Record.SKU, res.Record.Name, res.Page)
		}
		_, err := fmt.Fprintf(w, "✓ Generated %d of %d templates\n", sum.Generated, count)
		return err
	})
}

// newRunner wires the runner used by generate and run. Errors are reported
// through f. The caller closes the returned index, which may be nil.
func newRunner(cfg config.Config, f *OutputFormatter, logger *slog.Logger, seed uint64, onCycle func(generate.Result, error)) (*generate.Runner, *store.Store, error) {
	tables, err := loadTables(cfg)
	if err != nil {
		return nil, nil, f.Fail(ExitCommandError, ErrCodeConfig, "failed to load vocabulary", err)
	}

	index, err := openIndex(cfg)
	if err != nil {
		return nil, nil, f.Fail(ExitCommandError, ErrCodeIndex, "failed to open index", err)
	}

	runnerOpts := generate.Options{
		Tables:      tables,
		Data:        datastore.NewFile(cfg.DataFile),
		OutputDir:   cfg.OutputDir,
		Index:       index,
		Logger:      logger,
		Reserved:    cfg.ReservedSlugs,
		MaxAttempts: cfg.MaxAttempts,
		OnCycle:     onCycle,
	}
	if seed != 0 {
		runnerOpts.Rand = rand.New(rand.NewPCG(seed, seed))
	}

	runner, err := generate.NewRunner(runnerOpts)
	if err != nil {
		closeIndex(index, logger)
		return nil, nil, f.Fail(ExitCommandError, ErrCodeDatastore, "failed to load data file", err)
	}
	return runner, index, nil
}
