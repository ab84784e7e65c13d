package query

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
)

// SortKey selects the ordering of visible records.
type SortKey string

const (
	// SortFeatured orders by featuredRank ascending; unranked records last.
	SortFeatured SortKey = "featured"
	// SortPriceAsc orders by price, cheapest first.
	SortPriceAsc SortKey = "price-asc"
	// SortPriceDesc orders by price, most expensive first.
	SortPriceDesc SortKey = "price-desc"
	// SortNewest orders by addedAt, most recent first.
	SortNewest SortKey = "newest"
)

// SortKeys lists every accepted key in storefront order.
var SortKeys = []SortKey{SortFeatured, SortPriceAsc, SortPriceDesc, SortNewest}

// ParseSort validates user input. Empty input is SortFeatured.
func ParseSort(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortFeatured, nil
	}
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown sort key %q (want one of featured, price-asc, price-desc, newest)", s)
}

// State is the storefront query.
type State struct {
	Text       string
	CategoryID string
	Styles     map[string]struct{}
	Sort       SortKey
}

// DefaultState is the initial storefront query: everything, featured first.
func DefaultState() State {
	return State{
		CategoryID: catalogue.AllCategories,
		Styles:     map[string]struct{}{},
		Sort:       SortFeatured,
	}
}

// StyleList returns the style filter sorted by name.
func (s State) StyleList() []string {
	out := make([]string, 0, len(s.Styles))
	for style := range s.Styles {
		out = append(out, style)
	}
	sort.Strings(out)
	return out
}

// Clone returns a copy that shares no map with s.
func (s State) Clone() State {
	c := s
	c.Styles = make(map[string]struct{}, len(s.Styles))
	for style := range s.Styles {
		c.Styles[style] = struct{}{}
	}
	return c
}

// MarshalJSON renders styles as a sorted list.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Text       string   `json:"q"`
		CategoryID string   `json:"categoryId"`
		Styles     []string `json:"styles"`
		Sort       SortKey  `json:"sort"`
	}{s.Text, s.CategoryID, s.StyleList(), s.Sort})
}

// Patch is a partial State update. Nil fields are left unchanged. A non-nil
// empty Styles clears the style filter.
type Patch struct {
	Text       *string
	CategoryID *string
	Styles     []string
	Sort       *SortKey
}

// Ptr returns a pointer to v, for building Patch literals.
func Ptr[T any](v T) *T { return &v }

// Apply returns s with p applied. s is not modified.
func (s State) Apply(p Patch) State {
	out := s.Clone()
	if p.Text != nil {
		out.Text = *p.Text
	}
	if p.CategoryID != nil {
		out.CategoryID = *p.CategoryID
	}
	if p.Styles != nil {
		out.Styles = make(map[string]struct{}, len(p.Styles))
		for _, style := range p.Styles {
			out.Styles[style] = struct{}{}
		}
	}
	if p.Sort != nil {
		out.Sort = *p.Sort
	}
	return out
}
