package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/stats"
)

// StatsResult is the stats command's JSON payload.
type StatsResult struct {
	stats.Report
	InSync bool `json:"inSync"`
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalogue",
		Long: `Report template totals, the latest addition, price range and average,
and per-category and per-style counts.

The data file is scanned as text, so stats still work on a file that no
longer parses. When an index exists its record count is shown alongside.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd)
		},
	}

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	cfg, f, logger, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	text, err := datastore.NewFile(cfg.DataFile).Read()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeDatastore, "could not load statistics", err)
	}
	report := stats.FromText(text)

	index, err := openExistingIndex(cfg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeIndex, "failed to open index", err)
	}
	defer closeIndex(index, logger)
	if index != nil {
		n, err := index.Count(commandContext(cmd))
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeIndex, "failed to count indexed records", err)
		}
		report.Indexed = &n
	}

	return f.Result(StatsResult{Report: report, InSync: report.InSync()}, func(w io.Writer) error {
		return stats.WriteText(w, report)
	})
}
