package catalogue

import (
	"regexp"
	"strings"
)

// SKUPattern is the accepted SKU format: 4-letter category prefix, dash,
// 4 digits.
var SKUPattern = regexp.MustCompile(`^[A-Z]{4}-\d{4}$`)

// UnrankedRank is the featured rank assumed for records without one, so they
// sort after every ranked record. FeaturedRank is an int and 0 is its zero
// value, so an explicit featuredRank of 0 (or below) also counts as unranked
// and sorts last rather than first. Generated ranks start at 1.
const UnrankedRank = 999

// Accent is the 3-color palette used for a template's thumbnail gradient.
type Accent struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
	C string `json:"c" yaml:"c"`
}

// Record is one catalogue entry.
type Record struct {
	SKU          string     `json:"sku"`
	CategoryID   CategoryID `json:"categoryId"`
	Name         string     `json:"name"`
	Style        []string   `json:"style"`
	Price        int        `json:"price"`
	Short        string     `json:"short"`
	Pitch        string     `json:"pitch"`
	Pages        []string   `json:"pages"`
	BestFor      []string   `json:"bestFor"`
	Includes     []string   `json:"includes"`
	Tags         []string   `json:"tags"`
	Accent       Accent     `json:"accent"`
	FeaturedRank int        `json:"featuredRank,omitempty"`
	AddedAt      Date       `json:"addedAt"`
}

// EffectiveRank returns FeaturedRank, or UnrankedRank when the record has none.
func (r Record) EffectiveRank() int {
	if r.FeaturedRank <= 0 {
		return UnrankedRank
	}
	return r.FeaturedRank
}

// HasStyle reports whether the record carries the given style label.
func (r Record) HasStyle(style string) bool {
	for _, s := range r.Style {
		if s == style {
			return true
		}
	}
	return false
}

// Haystack is the lower-cased text searched by free-text queries: name, sku,
// category, short, pitch, then every tag and style label, space-joined.
func (r Record) Haystack() string {
	parts := make([]string, 0, 5+len(r.Tags)+len(r.Style))
	parts = append(parts, r.Name, r.SKU, string(r.CategoryID), r.Short, r.Pitch)
	parts = append(parts, r.Tags...)
	parts = append(parts, r.Style...)
	return strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
}
