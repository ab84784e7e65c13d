// Package datastore reads and appends to the catalogue data file.
//
// The data file is a JS module that exports CATEGORIES, STYLES and an ITEMS
// array of object literals. New records are spliced in front of the last
// "];" in the file, so everything after that marker is left untouched.
// Records decodes the ITEMS list back into catalogue records.
package datastore

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
)

// Serialize renders rec as one ITEMS entry: a two-space indented object
// literal with unquoted keys, JSON-encoded values and a trailing "},\n".
func Serialize(rec catalogue.Record) string {
	var b strings.Builder
	b.WriteString("  {\n")
	field(&b, "sku", quote(rec.SKU))
	field(&b, "categoryId", quote(string(rec.CategoryID)))
	field(&b, "name", quote(rec.Name))
	field(&b, "style", quote(nonNil(rec.Style)))
	field(&b, "price", strconv.Itoa(rec.Price))
	field(&b, "short", quote(rec.Short))
	field(&b, "pitch", quote(rec.Pitch))
	field(&b, "pages", quote(nonNil(rec.Pages)))
	field(&b, "bestFor", quote(nonNil(rec.BestFor)))
	field(&b, "includes", quote(nonNil(rec.Includes)))
	field(&b, "tags", quote(nonNil(rec.Tags)))
	field(&b, "accent", quote(rec.Accent))
	field(&b, "featuredRank", strconv.Itoa(rec.FeaturedRank))
	field(&b, "addedAt", quote(rec.AddedAt.String()))
	b.WriteString("  },\n")
	return b.String()
}

func field(b *strings.Builder, key, value string) {
	b.WriteString("    ")
	b.WriteString(key)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString(",\n")
}

// quote JSON-encodes v without HTML escaping so "&" stays readable in the
// data file. The values are plain strings, string slices and Accent, none of
// which can fail to encode.
func quote(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
