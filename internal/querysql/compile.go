// Package querysql compiles storefront queries to parameterized SQLite SQL
// over the derived index schema (see internal/store).
//
// The compiled SQL must return exactly what query.Visible returns for the
// same records, in the same order. Two rules keep that true:
//   - every query ends with ORDER BY <sort key>, seq ASC, and seq is the
//     record's position in the data file, so ties break like a stable sort
//   - values are always bound as ? parameters, never interpolated
package querysql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/query"
)

// Columns is the select list the index reads records back from.
const Columns = "r.record_json"

// Compiler compiles query states to SQL.
type Compiler struct {
	// Table is the records table name.
	Table string
	// StylesTable is the (sku, style) table searched by AnyStyle.
	StylesTable string
}

// NewCompiler returns a compiler for the default index schema.
func NewCompiler() *Compiler {
	return &Compiler{Table: "records", StylesTable: "record_styles"}
}

// Compile converts st to (sql, params). The result always has an ORDER BY
// with seq as the final tiebreaker.
func (c *Compiler) Compile(st query.State) (string, []any, error) {
	where, params, err := c.CompilePredicate(query.Compile(st))
	if err != nil {
		return "", nil, fmt.Errorf("compile filter: %w", err)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s r WHERE %s ORDER BY %s",
		Columns, c.Table, where, orderBy(st.Sort))
	return sql, params, nil
}

// Compile uses the default compiler.
func Compile(st query.State) (string, []any, error) {
	return NewCompiler().Compile(st)
}

// CompilePredicate compiles p to a WHERE fragment.
// CRITICAL: Values NEVER interpolated - always use ? placeholders.
func (c *Compiler) CompilePredicate(p query.Predicate) (string, []any, error) {
	switch pred := p.(type) {
	case nil:
		return "1 = 1", nil, nil
	case query.CategoryIs:
		return "r.category_id = ?", []any{string(pred.ID)}, nil
	case query.AnyStyle:
		return c.compileAnyStyle(pred)
	case query.TextContains:
		return `r.haystack LIKE ? ESCAPE '\'`, []any{"%" + escapeLike(pred.Needle) + "%"}, nil
	case query.And:
		return c.compileAnd(pred)
	default:
		return "", nil, fmt.Errorf("unsupported predicate type: %T", p)
	}
}

func (c *Compiler) compileAnyStyle(p query.AnyStyle) (string, []any, error) {
	if len(p.Styles) == 0 {
		return "1 = 0", nil, nil
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(p.Styles)), ", ")
	params := make([]any, len(p.Styles))
	for i, s := range p.Styles {
		params[i] = s
	}
	sql := fmt.Sprintf("EXISTS (SELECT 1 FROM %s s WHERE s.sku = r.sku AND s.style IN (%s))",
		c.StylesTable, marks)
	return sql, params, nil
}

func (c *Compiler) compileAnd(and query.And) (string, []any, error) {
	if len(and.Predicates) == 0 {
		return "1 = 1", nil, nil // Always true (vacuous truth)
	}

	var sqlParts []string
	var allParams []any
	for _, pred := range and.Predicates {
		sql, params, err := c.CompilePredicate(pred)
		if err != nil {
			return "", nil, err
		}
		sqlParts = append(sqlParts, sql)
		allParams = append(allParams, params...)
	}
	return strings.Join(sqlParts, " AND "), allParams, nil
}

// orderBy mirrors query.Visible. Unknown keys sort as featured.
func orderBy(key query.SortKey) string {
	var primary string
	switch key {
	case query.SortPriceAsc:
		primary = "r.price ASC"
	case query.SortPriceDesc:
		primary = "r.price DESC"
	case query.SortNewest:
		// YYYY-MM-DD sorts lexically; the empty date sorts last.
		primary = "r.added_at COLLATE BINARY DESC"
	default:
		primary = "CASE WHEN r.featured_rank > 0 THEN r.featured_rank ELSE " +
			strconv.Itoa(catalogue.UnrankedRank) + " END ASC"
	}
	return primary + ", r.seq ASC"
}

// escapeLike escapes LIKE wildcards so the needle matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
