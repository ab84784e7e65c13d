package query

import (
	"slices"

	"github.com/roach88/catalogue/internal/catalogue"
)

// Visible returns the records matching st, stably sorted by st.Sort.
// records is not modified. An unknown sort key sorts as SortFeatured.
func Visible(records []catalogue.Record, st State) []catalogue.Record {
	pred := Compile(st)
	out := make([]catalogue.Record, 0, len(records))
	for _, rec := range records {
		if Match(pred, rec) {
			out = append(out, rec)
		}
	}
	slices.SortStableFunc(out, compareFor(st.Sort))
	return out
}

func compareFor(key SortKey) func(a, b catalogue.Record) int {
	switch key {
	case SortPriceAsc:
		return func(a, b catalogue.Record) int { return a.Price - b.Price }
	case SortPriceDesc:
		return func(a, b catalogue.Record) int { return b.Price - a.Price }
	case SortNewest:
		return func(a, b catalogue.Record) int { return b.AddedAt.Compare(a.AddedAt) }
	default:
		return func(a, b catalogue.Record) int { return a.EffectiveRank() - b.EffectiveRank() }
	}
}

// Group is the records of one category.
type Group struct {
	Category catalogue.Category `json:"category"`
	Records  []catalogue.Record `json:"records"`
}

// GroupByCategory partitions records by category. Enumerated categories come
// first in display order, then unknown ones in first-seen order. Empty
// groups are omitted and record order within a group is preserved.
func GroupByCategory(records []catalogue.Record) []Group {
	buckets := make(map[catalogue.CategoryID][]catalogue.Record)
	var unknown []catalogue.CategoryID
	for _, rec := range records {
		id := rec.CategoryID
		if _, seen := buckets[id]; !seen && !id.Valid() {
			unknown = append(unknown, id)
		}
		buckets[id] = append(buckets[id], rec)
	}

	groups := make([]Group, 0, len(buckets))
	for _, c := range catalogue.Categories {
		if recs := buckets[c.ID]; len(recs) > 0 {
			groups = append(groups, Group{Category: c, Records: recs})
		}
	}
	for _, id := range unknown {
		groups = append(groups, Group{
			Category: catalogue.Category{ID: id, Name: id.Name()},
			Records:  buckets[id],
		})
	}
	return groups
}
