package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/datastore"
)

// ReindexOptions holds flags for the reindex command.
type ReindexOptions struct {
	*RootOptions
	Check bool
}

// ReindexResult is the reindex command's JSON payload.
type ReindexResult struct {
	Records int      `json:"records"`
	Indexed int      `json:"indexed"`
	Missing []string `json:"missing,omitempty"`
	Changed []string `json:"changed,omitempty"`
	Extra   []string `json:"extra,omitempty"`
}

// InSync reports whether the check found no drift.
func (r ReindexResult) InSync() bool {
	return len(r.Missing) == 0 && len(r.Changed) == 0 && len(r.Extra) == 0
}

// NewReindexCommand creates the reindex command.
func NewReindexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReindexOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from the data file",
		Long: `Replace the contents of the SQLite index with the records in the data
file. The data file is the source of truth; the index can always be
rebuilt from it.

With --check nothing is written. The command compares the index against
the data file and exits 1 when records are missing, changed or extra.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReindex(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "report drift without rebuilding")

	return cmd
}

func runReindex(opts *ReindexOptions, cmd *cobra.Command) error {
	cfg, f, logger, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	if cfg.IndexPath == "" {
		return f.Fail(ExitCommandError, ErrCodeIndex, "index is disabled (set index_path or --db)", nil)
	}
	records, err := readRecords(f, datastore.NewFile(cfg.DataFile))
	if err != nil {
		return err
	}

	index, err := openIndex(cfg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeIndex, "failed to open index", err)
	}
	defer closeIndex(index, logger)
	ctx := commandContext(cmd)

	result := ReindexResult{Records: len(records)}
	if opts.Check {
		result.Missing, result.Changed, result.Extra, err = index.Drift(ctx, records)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeIndex, "failed to compare index", err)
		}
		if result.Indexed, err = index.Count(ctx); err != nil {
			return f.Fail(ExitCommandError, ErrCodeIndex, "failed to count indexed records", err)
		}
		if !result.InSync() {
			return outputDrift(f, result)
		}
		return f.Result(result, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "✓ Index in sync (%d records)\n", result.Indexed)
			return err
		})
	}

	if result.Indexed, err = index.Rebuild(ctx, records); err != nil {
		return f.Fail(ExitCommandError, ErrCodeIndex, "failed to rebuild index", err)
	}
	logger.Debug("index rebuilt", "path", cfg.IndexPath, "records", result.Indexed)
	return f.Result(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Indexed %d of %d records into %s\n", result.Indexed, result.Records, cfg.IndexPath)
		return err
	})
}

func outputDrift(f *OutputFormatter, r ReindexResult) error {
	failure := NewExitError(ExitFailure, "index out of sync with data file")

	if f.Format == "json" {
		if err := f.encode(CLIResponse{
			Status: "error",
			Data:   r,
			Error:  &CLIError{Code: ErrCodeDrift, Message: failure.Message},
		}); err != nil {
			return err
		}
		return failure
	}

	fmt.Fprintln(f.Writer, "✗ Index out of sync (run reindex)")
	for _, line := range []struct {
		label string
		skus  []string
	}{
		{"missing", r.Missing},
		{"changed", r.Changed},
		{"extra", r.Extra},
	} {
		if len(line.skus) > 0 {
			fmt.Fprintf(f.Writer, "  %s: %s\n", line.label, strings.Join(line.skus, ", "))
		}
	}
	return failure
}
