package query

import (
	"fmt"
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
)

// Predicate is a record filter condition.
//
// This is a sealed interface - only types in this package implement it.
// Backends (Match here, querysql for the index) switch over the concrete
// types exhaustively.
type Predicate interface {
	predicateNode() // Marker method - seals interface to this package
}

// CategoryIs holds when the record's categoryId equals ID.
type CategoryIs struct {
	ID catalogue.CategoryID
}

func (CategoryIs) predicateNode() {}

// AnyStyle holds when the record carries at least one of Styles.
// Styles is sorted so compiled output is deterministic.
type AnyStyle struct {
	Styles []string
}

func (AnyStyle) predicateNode() {}

// TextContains holds when the record's haystack contains Needle.
// Needle is already trimmed and lower-cased.
type TextContains struct {
	Needle string
}

func (TextContains) predicateNode() {}

// And holds when every predicate holds. An empty And matches everything.
type And struct {
	Predicates []Predicate
}

func (And) predicateNode() {}

// Compile builds the filter for st. Inactive filters are omitted, so the
// default State compiles to an empty And.
func Compile(st State) Predicate {
	var preds []Predicate
	if id := st.CategoryID; id != "" && id != catalogue.AllCategories {
		preds = append(preds, CategoryIs{ID: catalogue.CategoryID(id)})
	}
	if len(st.Styles) > 0 {
		preds = append(preds, AnyStyle{Styles: st.StyleList()})
	}
	if needle := NormalizeText(st.Text); needle != "" {
		preds = append(preds, TextContains{Needle: needle})
	}
	return And{Predicates: preds}
}

// NormalizeText lower-cases and trims free-text input.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match evaluates p against rec.
func Match(p Predicate, rec catalogue.Record) bool {
	switch pred := p.(type) {
	case nil:
		return true
	case CategoryIs:
		return rec.CategoryID == pred.ID
	case AnyStyle:
		for _, s := range pred.Styles {
			if rec.HasStyle(s) {
				return true
			}
		}
		return false
	case TextContains:
		return strings.Contains(rec.Haystack(), pred.Needle)
	case And:
		for _, sub := range pred.Predicates {
			if !Match(sub, rec) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("query: unsupported predicate type %T", p))
	}
}
