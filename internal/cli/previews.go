package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/generate"
)

// PreviewsResult is the previews command's JSON payload.
type PreviewsResult struct {
	Written   int    `json:"written"`
	Records   int    `json:"records"`
	OutputDir string `json:"outputDir"`
}

// NewPreviewsCommand creates the previews command.
func NewPreviewsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "previews",
		Short: "Regenerate preview pages for every record",
		Long: `Rewrite the preview page of every record in the data file, for example
after the page template changed. Slugs are resolved in file order, so
repeated runs write the same paths.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreviews(rootOpts, cmd)
		},
	}

	return cmd
}

func runPreviews(opts *RootOptions, cmd *cobra.Command) error {
	cfg, f, logger, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	records, err := readRecords(f, datastore.NewFile(cfg.DataFile))
	if err != nil {
		return err
	}

	ctx, stop := signalContext(cmd, logger)
	defer stop()

	n, err := generate.Previews(ctx, cfg.OutputDir, records, cfg.ReservedSlugs)
	if err != nil {
		return f.Fail(ExitFailure, ErrCodeWrite, fmt.Sprintf("failed after %d of %d previews", n, len(records)), err)
	}
	logger.Debug("previews written", "count", n, "dir", cfg.OutputDir)

	result := PreviewsResult{Written: n, Records: len(records), OutputDir: cfg.OutputDir}
	return f.Result(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Regenerated %d of %d previews in %s\n", n, len(records), cfg.OutputDir)
		return err
	})
}
