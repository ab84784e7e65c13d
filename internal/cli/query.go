package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/query"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Text     string
	Category string
	Styles   []string
	Sort     string
	UseIndex bool
}

// QueryResult is the query command's JSON payload.
type QueryResult struct {
	Query  query.State   `json:"query"`
	Source string        `json:"source"`
	Total  int           `json:"total"`
	Groups []query.Group `json:"groups"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, sort and group the catalogue",
		Long: `Show the templates a storefront visitor would see for a query, grouped
by category.

Text matches case-insensitively against name, SKU, category ID, short
description, pitch, tags and styles. --style may repeat; a template matches
if it has any of them. With --index the query runs against the SQLite index.

Example:
  catalogue query --q yoga
  catalogue query --category food --style Warm --style Minimal --sort price-asc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Text, "q", "q", "", "search text")
	cmd.Flags().StringVar(&opts.Category, "category", catalogue.AllCategories, "category id, or all")
	cmd.Flags().StringArrayVar(&opts.Styles, "style", nil, "style filter (repeatable)")
	cmd.Flags().StringVar(&opts.Sort, "sort", string(query.SortFeatured), "featured|price-asc|price-desc|newest")
	cmd.Flags().BoolVar(&opts.UseIndex, "index", false, "query the SQLite index instead of the data file")

	return cmd
}

// patch converts the flags into a query patch over DefaultState.
func (o *QueryOptions) patch() (query.Patch, error) {
	category := strings.ToLower(strings.TrimSpace(o.Category))
	if category == "" {
		category = catalogue.AllCategories
	}
	if category != catalogue.AllCategories {
		id, ok := catalogue.ParseCategory(category)
		if !ok {
			return query.Patch{}, fmt.Errorf("unknown category %q", o.Category)
		}
		category = string(id)
	}
	sort, err := query.ParseSort(o.Sort)
	if err != nil {
		return query.Patch{}, err
	}

	return query.Patch{
		Text:       query.Ptr(o.Text),
		CategoryID: query.Ptr(category),
		Styles:     o.Styles,
		Sort:       query.Ptr(sort),
	}, nil
}

func runQuery(opts *QueryOptions, cmd *cobra.Command) error {
	cfg, f, logger, err := opts.setup(cmd)
	if err != nil {
		return err
	}
	p, err := opts.patch()
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeGeneric, "invalid query", err)
	}
	st := query.DefaultState().Apply(p)

	result := QueryResult{Query: st, Source: cfg.DataFile}
	if opts.UseIndex {
		index, err := openExistingIndex(cfg)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeIndex, "failed to open index", err)
		}
		if index == nil {
			return f.Fail(ExitCommandError, ErrCodeIndex, "no index found (run reindex first)", nil)
		}
		defer closeIndex(index, logger)

		visible, err := index.Query(commandContext(cmd), st)
		if err != nil {
			return f.Fail(ExitCommandError, ErrCodeIndex, "index query failed", err)
		}
		result.Source = cfg.IndexPath
		result.Total = len(visible)
		result.Groups = query.GroupByCategory(visible)
	} else {
		records, err := readRecords(f, datastore.NewFile(cfg.DataFile))
		if err != nil {
			return err
		}
		engine := query.New(records)
		engine.SetQuery(p)
		result.Total = len(engine.Visible())
		result.Groups = engine.Groups()
	}
	logger.Debug("query evaluated", "source", result.Source, "visible", result.Total)

	return f.Result(result, func(w io.Writer) error {
		return writeGroups(w, result)
	})
}

// writeGroups prints one block per category with one line per template.
func writeGroups(w io.Writer, r QueryResult) error {
	var b strings.Builder
	if r.Total == 0 {
		b.WriteString("No templates match.\n")
	}
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "%s (%d)\n", g.Category.Name, len(g.Records))
		for _, rec := range g.Records {
			fmt.Fprintf(&b, "   %-9s  %-32s $%-4d %s\n",
				rec.SKU, rec.Name, rec.Price, strings.Join(rec.Style, " · "))
		}
		b.WriteString("\n")
	}
	if r.Total > 0 {
		fmt.Fprintf(&b, "%d templates\n", r.Total)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
