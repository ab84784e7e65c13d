package datastore

import (
	"strings"

	"github.com/roach88/catalogue/internal/catalogue"
)

const skeletonHeader = `// Catalogue data.
// The generator appends new entries in front of the final "];" below.

`

// Skeleton renders an empty data file exporting the given categories and
// styles. ITEMS is always the last export so appends land inside it.
func Skeleton(categories []catalogue.Category, styles []string) string {
	var b strings.Builder
	b.WriteString(skeletonHeader)

	b.WriteString("export const CATEGORIES = [\n")
	for _, c := range categories {
		b.WriteString("  { id: ")
		b.WriteString(quote(string(c.ID)))
		b.WriteString(", name: ")
		b.WriteString(quote(c.Name))
		b.WriteString(" },\n")
	}
	b.WriteString("];\n\n")

	b.WriteString("export const STYLES = ")
	b.WriteString(quote(nonNil(styles)))
	b.WriteString(";\n\n")

	b.WriteString("export const ITEMS = [\n")
	b.WriteString(Marker)
	b.WriteString("\n")
	return b.String()
}
