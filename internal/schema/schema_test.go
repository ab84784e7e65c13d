package schema

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/catalogue/internal/catalogue"
	"github.com/roach88/catalogue/internal/synth"
	"github.com/roach88/catalogue/internal/vocab"
)

func validRecord() catalogue.Record {
	return catalogue.Record{
		SKU:          "FOOD-1234",
		CategoryID:   catalogue.Food,
		Name:         "The Artisan Bakery Co",
		Style:        []string{"Modern", "Warm"},
		Price:        49,
		Short:        "Fresh bread daily.",
		Pitch:        "Built for bakeries.",
		Pages:        []string{"Home", "About", "Contact"},
		BestFor:      []string{"Bakerys"},
		Includes:     []string{"Mobile responsive"},
		Tags:         []string{"bread", "modern", "food"},
		Accent:       catalogue.Accent{A: "#f97316", B: "#f43f5e", C: "#facc15"},
		FeaturedRank: 1,
		AddedAt:      catalogue.MustDate("2026-10-15"),
	}
}

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(nil)
	require.NoError(t, err)
	return v
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, newValidator(t).Validate(validRecord()))
}

func TestValidate_EveryCategoryIsAccepted(t *testing.T) {
	v := newValidator(t)
	for _, c := range catalogue.Categories {
		rec := validRecord()
		rec.CategoryID = c.ID
		rec.SKU = c.ID.Prefix() + "-5000"
		assert.NoError(t, v.Validate(rec), c.ID)
	}
}

func TestValidate_UnrankedIsAccepted(t *testing.T) {
	rec := validRecord()
	rec.FeaturedRank = 0
	assert.NoError(t, newValidator(t).Validate(rec))
}

func TestValidate_Violations(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*catalogue.Record)
		field string
	}{
		{"bad sku", func(r *catalogue.Record) { r.SKU = "FOOD-12" }, "sku"},
		{"unknown category", func(r *catalogue.Record) { r.CategoryID = "space"; r.SKU = "SPAC-1000" }, "categoryId"},
		{"one style", func(r *catalogue.Record) { r.Style = []string{"Modern"} }, "style"},
		{"three styles", func(r *catalogue.Record) { r.Style = []string{"Modern", "Warm", "Bold"} }, "style"},
		{"off-ladder price", func(r *catalogue.Record) { r.Price = 50 }, "price"},
		{"too many tags", func(r *catalogue.Record) { r.Tags = []string{"a", "b", "c", "d", "e", "f"} }, "tags"},
		{"missing date", func(r *catalogue.Record) { r.AddedAt = catalogue.Date{} }, "addedAt"},
		{"bad accent", func(r *catalogue.Record) { r.Accent.B = "red" }, "accent"},
		{"empty name", func(r *catalogue.Record) { r.Name = "" }, "name"},
	}

	v := newValidator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.edit(&rec)

			err := v.Validate(rec)
			require.Error(t, err)
			var se *Error
			require.ErrorAs(t, err, &se)
			assert.Contains(t, se.Field, tt.field)
			assert.Equal(t, rec.SKU, se.SKU)
		})
	}
}

func TestValidate_DuplicateStyle(t *testing.T) {
	rec := validRecord()
	rec.Style = []string{"Warm", "Warm"}

	err := newValidator(t).Validate(rec)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "style", se.Field)
}

func TestValidate_PrefixMismatch(t *testing.T) {
	rec := validRecord()
	rec.SKU = "TECH-1234"

	err := newValidator(t).Validate(rec)
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "sku", se.Field)
	assert.Contains(t, se.Message, "FOOD")
}

func TestNew_CustomLadder(t *testing.T) {
	v, err := New([]int{10, 20})
	require.NoError(t, err)

	rec := validRecord()
	rec.Price = 20
	assert.NoError(t, v.Validate(rec))
	rec.Price = 49
	assert.Error(t, v.Validate(rec))
}

func TestValidateAll_Duplicates(t *testing.T) {
	a := validRecord()
	b := validRecord()
	b.SKU = "FOOD-2000"
	c := validRecord()

	issues := newValidator(t).ValidateAll([]catalogue.Record{a, b, c})
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Index)
	assert.Equal(t, "FOOD-1234", issues[0].SKU)
	assert.Contains(t, issues[0].Err.Error(), "duplicate of record 0")
}

func TestValidateAll_SynthesizedRecordsPass(t *testing.T) {
	tables := vocab.Default()
	s := synth.New(tables,
		synth.WithRand(rand.New(rand.NewPCG(7, 11))),
		synth.WithNow(func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }),
	)

	records := make([]catalogue.Record, 0, 200)
	for range 200 {
		rec, err := s.Next()
		require.NoError(t, err)
		records = append(records, rec)
	}

	v, err := New(tables.Prices)
	require.NoError(t, err)
	assert.Empty(t, v.ValidateAll(records))
}

func TestIssue_MarshalJSON(t *testing.T) {
	issue := Issue{Index: 3, SKU: "FOOD-1234", Err: &Error{SKU: "FOOD-1234", Field: "price", Message: "bad"}}
	data, err := issue.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"index":3,"sku":"FOOD-1234","message":"FOOD-1234: price: bad"}`, string(data))
}
