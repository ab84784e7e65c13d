package synth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/vocab"
)

// SKU numbers are 4 digits in [skuMin, skuMax].
const (
	skuMin   = 1000
	skuMax   = 9999
	skuSpace = skuMax - skuMin + 1

	// DefaultMaxAttempts caps rejection sampling for one SKU.
	DefaultMaxAttempts = 1000

	maxTags = 5
)

// Synthesizer produces one record per Next call.
// Not safe for concurrent use; generation is single-writer.
type Synthesizer struct {
	tables      *vocab.Tables
	rng         *rand.Rand
	now         func() time.Time
	issued      map[string]struct{}
	perPrefix   map[string]int
	rank        *Counter
	maxAttempts int
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithRand sets the random source. Tests pass a seeded source.
func WithRand(r *rand.Rand) Option {
	return func(s *Synthesizer) { s.rng = r }
}

// WithNow sets the clock used for AddedAt.
func WithNow(now func() time.Time) Option {
	return func(s *Synthesizer) { s.now = now }
}

// WithIssued marks SKUs as already taken, typically those in the data file.
func WithIssued(skus []string) Option {
	return func(s *Synthesizer) {
		for _, sku := range skus {
			s.markIssued(sku)
		}
	}
}

// WithStartRank makes the first record of the run get rank start+1.
func WithStartRank(start int) Option {
	return func(s *Synthesizer) { s.rank = NewCounterAt(start) }
}

// WithMaxAttempts overrides the SKU rejection-sampling cap.
func WithMaxAttempts(n int) Option {
	return func(s *Synthesizer) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// New creates a synthesizer over tables. tables must already be valid.
func New(tables *vocab.Tables, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		tables:      tables,
		rng:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:         time.Now,
		issued:      make(map[string]struct{}),
		perPrefix:   make(map[string]int),
		rank:        NewCounterAt(0),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issued returns how many SKUs are taken, including seeded ones.
func (s *Synthesizer) Issued() int { return len(s.issued) }

// Rank returns the last featured rank handed out.
func (s *Synthesizer) Rank() int { return s.rank.Current() }

// Next synthesizes a record and marks its SKU issued.
// Returns an *ExhaustionError when no SKU is available for the picked
// category; in that case neither a SKU nor a rank is consumed.
func (s *Synthesizer) Next() (catalogue.Record, error) {
	categories := s.tables.Categories()
	if len(categories) == 0 {
		return catalogue.Record{}, fmt.Errorf("synthesize: vocabulary has no categories")
	}
	categoryID := pick(s.rng, categories)
	bt := pick(s.rng, s.tables.BusinessTypes[categoryID])

	sku, err := s.newSKU(categoryID.Prefix())
	if err != nil {
		return catalogue.Record{}, err
	}

	styles := sample(s.rng, s.tables.Styles, vocab.StyleCount)
	rec := catalogue.Record{
		SKU:          sku,
		CategoryID:   categoryID,
		Name:         s.name(bt, categoryID),
		Style:        styles,
		Price:        pick(s.rng, s.tables.Prices),
		Short:        s.short(bt, categoryID),
		Pitch:        s.pitch(bt, styles[0]),
		Pages:        s.pages(categoryID),
		BestFor:      append([]string{bt.Name + "s"}, sample(s.rng, bt.Keywords, 2)...),
		Includes:     s.includes(),
		Tags:         tags(bt.Keywords, styles, categoryID),
		Accent:       pick(s.rng, s.tables.Palettes),
		FeaturedRank: s.rank.Next(),
		AddedAt:      catalogue.DateOf(s.now()),
	}
	return rec, nil
}

// newSKU draws prefix-NNNN until an unused value appears.
func (s *Synthesizer) newSKU(prefix string) (string, error) {
	if s.perPrefix[prefix] >= skuSpace {
		return "", &ExhaustionError{Prefix: prefix, Issued: s.perPrefix[prefix]}
	}
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		sku := fmt.Sprintf("%s-%d", prefix, skuMin+s.rng.IntN(skuSpace))
		if _, taken := s.issued[sku]; taken {
			continue
		}
		s.markIssued(sku)
		return sku, nil
	}
	return "", &ExhaustionError{Prefix: prefix, Attempts: s.maxAttempts, Issued: s.perPrefix[prefix]}
}

func (s *Synthesizer) markIssued(sku string) {
	if _, ok := s.issued[sku]; ok {
		return
	}
	s.issued[sku] = struct{}{}
	if catalogue.SKUPattern.MatchString(sku) && sku[5] != '0' {
		s.perPrefix[sku[:4]]++
	}
}

func (s *Synthesizer) name(bt vocab.BusinessType, id catalogue.CategoryID) string {
	suffixes := s.tables.NameSuffixes[id]
	if len(suffixes) == 0 {
		suffixes = []string{"Co"}
	}
	return pick(s.rng, s.tables.NamePrefixes) + " " + bt.Name + " " + pick(s.rng, suffixes)
}

func (s *Synthesizer) short(bt vocab.BusinessType, id catalogue.CategoryID) string {
	templates := s.tables.Descriptions[id]
	if len(templates) == 0 {
		templates = s.tables.Descriptions[catalogue.Tech]
	}
	if len(templates) == 0 {
		templates = []string{"A polished {type} website template."}
	}
	return truncate(fill(pick(s.rng, templates), bt, ""), s.tables.ShortLimit)
}

func (s *Synthesizer) pitch(bt vocab.BusinessType, style string) string {
	return fill(pick(s.rng, s.tables.Pitches), bt, style)
}

func (s *Synthesizer) pages(id catalogue.CategoryID) []string {
	specific := s.tables.Pages[id]
	if len(specific) == 0 {
		specific = []string{"Services", "Products"}
	}
	if n := s.tables.PagesPicked; n > 0 && n < len(specific) {
		specific = sample(s.rng, specific, n)
	}
	pages := make([]string, 0, len(s.tables.CommonPages)+len(specific))
	pages = append(pages, s.tables.CommonPages...)
	return append(pages, specific...)
}

func (s *Synthesizer) includes() []string {
	out := make([]string, 0, len(s.tables.Includes)+s.tables.ExtrasPicked)
	out = append(out, s.tables.Includes...)
	return append(out, sample(s.rng, s.tables.Extras, s.tables.ExtrasPicked)...)
}

// tags merges keywords, lower-cased styles and the category ID, keeping the
// first occurrence of each and at most maxTags entries.
func tags(keywords, styles []string, id catalogue.CategoryID) []string {
	all := make([]string, 0, len(keywords)+len(styles)+1)
	all = append(all, keywords...)
	for _, s := range styles {
		all = append(all, strings.ToLower(s))
	}
	all = append(all, string(id))

	seen := make(map[string]struct{}, len(all))
	out := make([]string, 0, maxTags)
	for _, t := range all {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

// fill expands {keyword}, {type}, {types} and {style} in a copy template.
func fill(template string, bt vocab.BusinessType, style string) string {
	keyword := ""
	if len(bt.Keywords) > 0 {
		keyword = bt.Keywords[0]
	}
	return strings.NewReplacer(
		"{keyword}", keyword,
		"{types}", strings.ToLower(bt.Name)+"s",
		"{type}", bt.Name,
		"{style}", strings.ToLower(style),
	).Replace(template)
}

// truncate shortens s to at most limit runes plus "...", cutting at the last
// space when there is one. limit <= 0 disables truncation. Text that already
// fits is returned unchanged, with no trailing "...".
func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	cut := string(r[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:-") + "..."
}

// pick returns a uniform random element. list must not be empty.
func pick[T any](rng *rand.Rand, list []T) T {
	return list[rng.IntN(len(list))]
}

// sample returns up to n distinct elements in random order, drawn without
// replacement (uniform permutation, first n).
func sample[T any](rng *rand.Rand, list []T, n int) []T {
	if n > len(list) {
		n = len(list)
	}
	out := make([]T, 0, n)
	for _, i := range rng.Perm(len(list))[:n] {
		out = append(out, list[i])
	}
	return out
}
