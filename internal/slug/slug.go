// Package slug derives filesystem- and URL-safe identifiers from template
// names and keeps them unique per SKU.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make converts a display name into a slug.
// "Tom's & Jerry's Café" -> "toms_and_jerrys_cafe".
// Degenerate input ("", "!!!") yields "".
func Make(name string) string {
	// Decompose accents, then drop anything outside ASCII. Typographic
	// apostrophes go with it.
	s := norm.NFKD.String(name)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "'", "")
	s = nonAlphanumeric.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// SKUSuffix renders a SKU as a slug fragment: "FOOD-1234" -> "food_1234".
func SKUSuffix(sku string) string {
	return strings.Trim(nonAlphanumeric.ReplaceAllString(strings.ToLower(sku), "_"), "_")
}

// DefaultReserved names directories a slug may never take.
var DefaultReserved = []string{"_shared"}

// fallbackBase stands in for names that slugify to nothing.
const fallbackBase = "template"

// Registry resolves names to slugs for one run, remembering which SKU owns
// each slug so two templates never share a preview directory.
type Registry struct {
	reserved map[string]struct{}
	owners   map[string]string
}

// NewRegistry creates a registry. A nil reserved list uses DefaultReserved.
func NewRegistry(reserved []string) *Registry {
	if reserved == nil {
		reserved = DefaultReserved
	}
	r := &Registry{
		reserved: make(map[string]struct{}, len(reserved)),
		owners:   make(map[string]string),
	}
	for _, name := range reserved {
		r.reserved[name] = struct{}{}
	}
	return r
}

// Resolve returns the slug for (name, sku) and records sku as its owner.
//
// The default slug is Make(name). An empty or reserved slug, or one already
// owned by a different SKU, gets the SKU suffix appended. Resolving the same
// (name, sku) again returns the same slug.
func (r *Registry) Resolve(name, sku string) string {
	base := Make(name)
	slug := base
	if slug == "" || r.isReserved(slug) {
		slug = orFallback(base) + "_" + SKUSuffix(sku)
	}
	if owner, ok := r.owners[slug]; ok && owner != sku {
		slug = orFallback(base) + "_" + SKUSuffix(sku)
	}
	// A name can spell out another template's disambiguated slug; count up
	// until the slug is free or already ours.
	for n, candidate := 2, slug; ; n++ {
		owner, ok := r.owners[candidate]
		if (!ok || owner == sku) && !r.isReserved(candidate) {
			slug = candidate
			break
		}
		candidate = slug + "_" + strconv.Itoa(n)
	}
	r.owners[slug] = sku
	return slug
}

// Owner returns the SKU that owns slug.
func (r *Registry) Owner(slug string) (string, bool) {
	sku, ok := r.owners[slug]
	return sku, ok
}

// Len returns the number of slugs handed out.
func (r *Registry) Len() int { return len(r.owners) }

func (r *Registry) isReserved(slug string) bool {
	_, ok := r.reserved[slug]
	return ok
}

func orFallback(base string) string {
	if base == "" {
		return fallbackBase
	}
	return base
}
