package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid   bool           `json:"valid"`
	Records int            `json:"records"`
	Issues  []schema.Issue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check every record against the record schema",
		Long: `Parse the data file and check each record: SKU format and category
prefix, known category, two distinct styles, a price on the price ladder,
at most five tags, hex accent colours and an ISO addedAt date. Repeated
SKUs are reported too.

Exits 1 when any record is invalid.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, cmd *cobra.Command) error {
	cfg, f, _, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	tables, err := loadTables(cfg)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeConfig, "failed to load vocabulary", err)
	}
	records, err := readRecords(f, datastore.NewFile(cfg.DataFile))
	if err != nil {
		return err
	}
	f.VerboseLog("Loaded %d record(s) from %s", len(records), cfg.DataFile)

	v, err := schema.New(tables.Prices)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "failed to compile record schema", err)
	}
	issues := v.ValidateAll(records)

	if len(issues) > 0 {
		return outputValidationIssues(f, len(records), issues)
	}
	return f.Result(ValidationResult{Valid: true, Records: len(records)}, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✓ All %d records valid\n", len(records))
		return err
	})
}

// outputValidationIssues reports invalid records and returns an exit code 1
// error.
func outputValidationIssues(f *OutputFormatter, total int, issues []schema.Issue) error {
	failure := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))

	if f.Format == "json" {
		if err := f.encode(CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Records: total, Issues: issues},
			Error: &CLIError{
				Code:    ErrCodeInvalid,
				Message: issues[0].Err.Error(),
			},
		}); err != nil {
			return err
		}
		return failure
	}

	fmt.Fprintln(f.Writer, "✗ Validation failed")
	fmt.Fprintln(f.Writer)
	for _, issue := range issues {
		fmt.Fprintf(f.Writer, "record %d (%s)\n", issue.Index, issue.SKU)
		fmt.Fprintf(f.Writer, "  %s: %s\n\n", ErrCodeInvalid, issue.Err)
	}
	return failure
}
