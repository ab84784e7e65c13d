package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/datastore"
)

// InitResult is the init command's JSON payload.
type InitResult struct {
	DataFile   string `json:"dataFile"`
	OutputDir  string `json:"outputDir"`
	Categories int    `json:"categories"`
	Styles     int    `json:"styles"`
}

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty catalogue data file",
		Long: `Write a data file holding the category and style lists and an empty
ITEMS array, and create the preview output directory.

An existing data file is never overwritten.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(rootOpts, cmd)
		},
	}

	return cmd
}

func runInit(opts *RootOptions, cmd *cobra.Command) error {
	cfg, f, _, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "failed to load vocabulary", err)
	}

	data := datastore.NewFile(cfg.DataFile)
	if err := data.Create(datastore.Skeleton(catalogue.Categories, tables.Styles)); err != nil {
		if errors.Is(err, os.ErrExist) {
			return f.Fail(ExitCommandError, ErrCodeWrite,
				fmt.Sprintf("data file already exists: %s", cfg.DataFile), err)
		}
		return f.Fail(ExitCommandError, ErrCodeWrite, "failed to create data file", err)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return f.Fail(ExitCommandError, ErrCodeWrite, "failed to create output dir", err)
	}

	result := InitResult{
		DataFile:   cfg.DataFile,
		OutputDir:  cfg.OutputDir,
		Categories: len(catalogue.Categories),
		Styles:     len(tables.Styles),
	}
	return f.Result(result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ Created %s (%d categories, %d styles)\n",
			result.DataFile, result.Categories, result.Styles)
		return err
	})
}
