// Package vocab holds the static vocabulary the synthesizer draws from:
// business types per category, style labels, accent palettes, the price
// ladder and the copy templates.
//
// Default returns the built-in tables. Load reads a YAML override with the
// same shape.
package vocab

import (
	"fmt"
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
)

// BusinessType is one kind of business within a category.
type BusinessType struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Tables is the complete vocabulary. All lists are read-only after
// construction.
//
// Template strings may use the placeholders {keyword} (first business-type
// keyword), {type} (business-type name), {types} (lower-cased plural type
// name) and {style} (lower-cased first style).
type Tables struct {
	BusinessTypes map[catalogue.CategoryID][]BusinessType `yaml:"business_types"`
	Styles        []string                                `yaml:"styles"`
	Palettes      []catalogue.Accent                      `yaml:"palettes"`
	Prices        []int                                   `yaml:"prices"`

	NamePrefixes []string                          `yaml:"name_prefixes"`
	NameSuffixes map[catalogue.CategoryID][]string `yaml:"name_suffixes"`
	Descriptions map[catalogue.CategoryID][]string `yaml:"descriptions"`
	Pitches      []string                          `yaml:"pitches"`
	CommonPages  []string                          `yaml:"common_pages"`
	Pages        map[catalogue.CategoryID][]string `yaml:"pages"`
	PagesPicked  int                               `yaml:"pages_picked"`
	Includes     []string                          `yaml:"includes"`
	Extras       []string                          `yaml:"extras"`
	ExtrasPicked int                               `yaml:"extras_picked"`
	ShortLimit   int                               `yaml:"short_limit"`
}

// StyleCount is the number of styles drawn per record.
const StyleCount = 2

// Categories returns the enumerated categories that have at least one
// business type, in display order.
func (t *Tables) Categories() []catalogue.CategoryID {
	ids := make([]catalogue.CategoryID, 0, len(catalogue.Categories))
	for _, c := range catalogue.Categories {
		if len(t.BusinessTypes[c.ID]) > 0 {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// HasStyle reports whether s is in the style vocabulary.
func (t *Tables) HasStyle(s string) bool {
	for _, style := range t.Styles {
		if style == s {
			return true
		}
	}
	return false
}

// HasPrice reports whether p is on the price ladder.
func (t *Tables) HasPrice(p int) bool {
	for _, price := range t.Prices {
		if price == p {
			return true
		}
	}
	return false
}

// Validate checks the tables can drive the synthesizer: every referenced
// category is enumerated, each category with business types also has name
// suffixes, and the style labels are unique with at least StyleCount of them.
func (t *Tables) Validate() error {
	if len(t.Categories()) == 0 {
		return fmt.Errorf("vocab: no business types")
	}
	for id, types := range t.BusinessTypes {
		if !id.Valid() {
			return fmt.Errorf("vocab: unknown category %q", id)
		}
		for i, bt := range types {
			if strings.TrimSpace(bt.Name) == "" {
				return fmt.Errorf("vocab: business_types.%s[%d]: name is required", id, i)
			}
			if len(bt.Keywords) == 0 {
				return fmt.Errorf("vocab: business_types.%s[%d]: keywords are required", id, i)
			}
		}
	}
	for id := range t.NameSuffixes {
		if !id.Valid() {
			return fmt.Errorf("vocab: name_suffixes: unknown category %q", id)
		}
	}
	for id := range t.Pages {
		if !id.Valid() {
			return fmt.Errorf("vocab: pages: unknown category %q", id)
		}
	}
	distinct := uniq(t.Styles)
	if len(distinct) != len(t.Styles) {
		return fmt.Errorf("vocab: styles: duplicate label %q", firstDuplicate(t.Styles))
	}
	if len(distinct) < StyleCount {
		return fmt.Errorf("vocab: need at least %d distinct styles, have %d", StyleCount, len(distinct))
	}
	if len(t.Palettes) == 0 {
		return fmt.Errorf("vocab: palettes are required")
	}
	if len(t.Prices) == 0 {
		return fmt.Errorf("vocab: prices are required")
	}
	if len(t.NamePrefixes) == 0 {
		return fmt.Errorf("vocab: name_prefixes are required")
	}
	if len(t.Pitches) == 0 {
		return fmt.Errorf("vocab: pitches are required")
	}
	if t.PagesPicked < 0 || t.ExtrasPicked < 0 || t.ShortLimit < 0 {
		return fmt.Errorf("vocab: pick counts and short_limit must not be negative")
	}
	return nil
}

func uniq(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func firstDuplicate(in []string) string {
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			return s
		}
		seen[s] = struct{}{}
	}
	return ""
}
