package testutil

import (
	"math/rand/v2"
	"path/filepath"
	"testing"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/datastore"
	"github.com/roach88/catalogue/internal/synth"
	"github.com/roach88/catalogue/internal/vocab"
)

// Rand returns a seeded PCG source so generated records are reproducible.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Synthesize generates n records from the default vocabulary with a fixed
// seed and clock.
func Synthesize(t testing.TB, seed uint64, n int) []catalogue.Record {
	t.Helper()
	s := synth.New(vocab.Default(), synth.WithRand(Rand(seed)), synth.WithNow(FixedNow(Epoch)))
	records := make([]catalogue.Record, 0, n)
	for range n {
		rec, err := s.Next()
		if err != nil {
			t.Fatalf("synthesize record %d: %v", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return records
}

// SampleRecords is a small hand-written catalogue covering every sort key:
// two food records, one fitness and one tech, one of them unranked.
func SampleRecords() []catalogue.Record {
	return []catalogue.Record{
		{
			SKU:          "FOOD-1201",
			CategoryID:   catalogue.Food,
			Name:         "Golden Pizza Kitchen",
			Style:        []string{"Warm", "Bold"},
			Price:        59,
			Short:        "Hand-tossed pizza baked fresh daily.",
			Pitch:        "Perfect for pizzerias.",
			Pages:        []string{"Home", "About", "Contact", "Menu"},
			BestFor:      []string{"Pizzerias"},
			Includes:     []string{"Mobile responsive"},
			Tags:         []string{"pizza", "warm", "bold", "food"},
			Accent:       catalogue.Accent{A: "#f97316", B: "#f43f5e", C: "#facc15"},
			FeaturedRank: 2,
			AddedAt:      catalogue.MustDate("2026-01-10"),
		},
		{
			SKU:          "FOOD-3307",
			CategoryID:   catalogue.Food,
			Name:         "Urban Coffee Roasters",
			Style:        []string{"Minimal", "Warm"},
			Price:        49,
			Short:        "Single-origin coffee, roasted in house.",
			Pitch:        "Built for coffee shops.",
			Pages:        []string{"Home", "About", "Contact", "Menu"},
			BestFor:      []string{"Cafes"},
			Includes:     []string{"Mobile responsive"},
			Tags:         []string{"coffee", "minimal", "warm", "food"},
			Accent:       catalogue.Accent{A: "#22c55e", B: "#06b6d4", C: "#a855f7"},
			FeaturedRank: 1,
			AddedAt:      catalogue.MustDate("2026-02-01"),
		},
		{
			SKU:        "FITN-4821",
			CategoryID: catalogue.Fitness,
			Name:       "Elite Yoga Studio",
			Style:      []string{"Minimal", "Elegant"},
			Price:      89,
			Short:      "Achieve your wellness goals.",
			Pitch:      "Yoga that converts.",
			Pages:      []string{"Home", "About", "Contact", "Classes"},
			BestFor:    []string{"Yoga Studios"},
			Includes:   []string{"SEO basics"},
			Tags:       []string{"yoga", "minimal", "elegant", "fitness"},
			Accent:     catalogue.Accent{A: "#0ea5e9", B: "#1f2937", C: "#f59e0b"},
			AddedAt:    catalogue.MustDate("2026-03-05"),
		},
		{
			SKU:          "TECH-9001",
			CategoryID:   catalogue.Tech,
			Name:         "Modern Cloud Labs",
			Style:        []string{"Neon", "Corporate"},
			Price:        149,
			Short:        "Ship faster with a SaaS landing page.",
			Pitch:        "Made for startups.",
			Pages:        []string{"Home", "About", "Contact", "Pricing"},
			BestFor:      []string{"SaaS"},
			Includes:     []string{"Analytics ready"},
			Tags:         []string{"saas", "neon", "corporate", "tech"},
			Accent:       catalogue.Accent{A: "#a855f7", B: "#06b6d4", C: "#111827"},
			FeaturedRank: 3,
			AddedAt:      catalogue.MustDate("2026-02-01"),
		},
	}
}

// WriteDatastore creates a data file under dir holding records, in order.
func WriteDatastore(t testing.TB, dir string, records []catalogue.Record) *datastore.File {
	t.Helper()
	f := datastore.NewFile(filepath.Join(dir, "catalogue-data.js"))
	if err := f.Create(datastore.Skeleton(catalogue.Categories, vocab.Default().Styles)); err != nil {
		t.Fatalf("create datastore: %v", err)
	}
	text, err := f.Read()
	if err != nil {
		t.Fatalf("read datastore: %v", err)
	}
	for _, rec := range records {
		if text, err = datastore.Append(text, datastore.Serialize(rec)); err != nil {
			t.Fatalf("append %s: %v", rec.SKU, err)
		}
	}
	if err := f.Replace(text); err != nil {
		t.Fatalf("write datastore: %v", err)
	}
	return f
}
