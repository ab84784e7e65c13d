// Package stats summarizes a catalogue data file by pattern extraction over
// its text. It deliberately does not decode the file, so it still reports
// on a data file that no longer parses.
package stats

import (
	"fmt"
	"io"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// NoDate is reported as Latest when the text has no addedAt entries.
const NoDate = "N/A"

// TopStyles is how many styles WriteText lists.
const TopStyles = 10

var (
	skuRe      = regexp.MustCompile(`sku:`)
	categoryRe = regexp.MustCompile(`categoryId:\s*"(\w+)"`)
	styleRe    = regexp.MustCompile(`style:\s*\[(.*?)\]`)
	quotedRe   = regexp.MustCompile(`"([^"]+)"`)
	priceRe    = regexp.MustCompile(`price:\s*(\d+)`)
	addedAtRe  = regexp.MustCompile(`addedAt:\s*"([^"]+)"`)
)

// Prices summarizes the price column. All zero when there are no prices.
type Prices struct {
	Min int `json:"min"`
	Max int `json:"max"`
	Avg int `json:"avg"`
}

// Count is one label with its number of occurrences.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Report is the data file summary.
type Report struct {
	Total          int            `json:"total"`
	CategoryCounts map[string]int `json:"categories"`
	StyleCounts    map[string]int `json:"styles"`
	Prices         Prices         `json:"prices"`
	Latest         string         `json:"latest"`

	// Indexed is the derived index's record count, when an index exists.
	Indexed *int `json:"indexed,omitempty"`
}

// FromText extracts a Report from data file text.
//
// Latest is the last addedAt in file order, which is the most recent append
// for a generator-maintained file.
func FromText(text string) Report {
	r := Report{
		Total:          len(skuRe.FindAllStringIndex(text, -1)),
		CategoryCounts: make(map[string]int),
		StyleCounts:    make(map[string]int),
		Latest:         NoDate,
	}

	for _, m := range categoryRe.FindAllStringSubmatch(text, -1) {
		r.CategoryCounts[m[1]]++
	}
	for _, m := range styleRe.FindAllStringSubmatch(text, -1) {
		for _, q := range quotedRe.FindAllStringSubmatch(m[1], -1) {
			r.StyleCounts[q[1]]++
		}
	}

	var sum, n int
	for _, m := range priceRe.FindAllStringSubmatch(text, -1) {
		p, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n == 0 || p < r.Prices.Min {
			r.Prices.Min = p
		}
		if n == 0 || p > r.Prices.Max {
			r.Prices.Max = p
		}
		sum += p
		n++
	}
	if n > 0 {
		r.Prices.Avg = int(math.Floor(float64(sum)/float64(n) + 0.5))
	}

	if dates := addedAtRe.FindAllStringSubmatch(text, -1); len(dates) > 0 {
		r.Latest = dates[len(dates)-1][1]
	}
	return r
}

// Categories returns category counts sorted by count descending, then name.
func (r Report) Categories() []Count { return sorted(r.CategoryCounts) }

// Styles returns style counts sorted by count descending, then name.
func (r Report) Styles() []Count { return sorted(r.StyleCounts) }

// InSync reports whether the index count matches the data file. Always true
// without an index.
func (r Report) InSync() bool {
	return r.Indexed == nil || *r.Indexed == r.Total
}

func sorted(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for name, c := range m {
		out = append(out, Count{Name: name, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// WriteText renders the report with count/2 bar charts.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	rule := strings.Repeat("=", 50)

	fmt.Fprintf(&b, "CATALOGUE STATISTICS\n%s\n\n", rule)
	fmt.Fprintf(&b, "OVERVIEW\n")
	fmt.Fprintf(&b, "   Total Websites: %d\n", r.Total)
	fmt.Fprintf(&b, "   Latest Addition: %s\n", r.Latest)
	if r.Indexed != nil {
		fmt.Fprintf(&b, "   Indexed: %d", *r.Indexed)
		if !r.InSync() {
			fmt.Fprintf(&b, " (index out of sync, run reindex)")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nPRICING\n")
	fmt.Fprintf(&b, "   Range: $%d - $%d\n", r.Prices.Min, r.Prices.Max)
	fmt.Fprintf(&b, "   Average: $%d\n", r.Prices.Avg)

	fmt.Fprintf(&b, "\nCATEGORIES\n")
	for _, c := range r.Categories() {
		writeBar(&b, c, "█")
	}

	fmt.Fprintf(&b, "\nSTYLES\n")
	styles := r.Styles()
	if len(styles) > TopStyles {
		styles = styles[:TopStyles]
	}
	for _, c := range styles {
		writeBar(&b, c, "▓")
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeBar(b *strings.Builder, c Count, glyph string) {
	fmt.Fprintf(b, "   %-12s %3d %s\n", c.Name, c.Count, strings.Repeat(glyph, c.Count/2))
}
