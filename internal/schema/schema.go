// Package schema validates catalogue records against an embedded CUE
// definition.
//
// #Record carries the per-record invariants: SKU format, enumerated
// category, exactly two styles, the price ladder, at most five tags and a
// YYYY-MM-DD date. Checks that CUE cannot express (distinct styles, SKU
// prefix matching the category, datastore-wide SKU uniqueness) run in Go.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/roach88/catalogue/internal/catalogue"
)

//go:embed record.cue
var recordCUE string

// DefaultPrices is the price ladder used when New is given none.
var DefaultPrices = []int{49, 59, 69, 79, 89, 99, 109, 119, 129, 149}

// Error is a validation failure for one record field.
type Error struct {
	SKU     string
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.SKU, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.SKU, e.Field, e.Message)
}

// Issue is one failed record in a ValidateAll pass.
type Issue struct {
	Index int    `json:"index"`
	SKU   string `json:"sku"`
	Err   error  `json:"-"`
}

// MarshalJSON flattens Err into a message for CLI output.
func (i Issue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Index   int    `json:"index"`
		SKU     string `json:"sku"`
		Message string `json:"message"`
	}{i.Index, i.SKU, i.Err.Error()})
}

// Validator checks records against #Record.
type Validator struct {
	ctx    *cue.Context
	record cue.Value
}

// New compiles the schema with the given price ladder. A nil ladder uses
// DefaultPrices.
func New(prices []int) (*Validator, error) {
	if len(prices) == 0 {
		prices = DefaultPrices
	}
	ladder, err := json.Marshal(prices)
	if err != nil {
		return nil, fmt.Errorf("encode price ladder: %w", err)
	}

	ctx := cuecontext.New()
	src := recordCUE + "\n#Prices: " + string(ladder) + "\n"
	v := ctx.CompileString(src, cue.Filename("record.cue"))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	def := v.LookupPath(cue.ParsePath("#Record"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Record: %w", err)
	}
	return &Validator{ctx: ctx, record: def}, nil
}

// Validate returns nil or an *Error for the first violated constraint.
func (v *Validator) Validate(rec catalogue.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", rec.SKU, err)
	}
	val := v.ctx.CompileBytes(data)
	if err := val.Err(); err != nil {
		return fmt.Errorf("compile %s: %w", rec.SKU, err)
	}
	if err := v.record.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return toError(rec.SKU, err)
	}

	if len(rec.Style) == 2 && rec.Style[0] == rec.Style[1] {
		return &Error{SKU: rec.SKU, Field: "style", Message: "styles must be distinct"}
	}
	if want := rec.CategoryID.Prefix(); !strings.HasPrefix(rec.SKU, want+"-") {
		return &Error{SKU: rec.SKU, Field: "sku", Message: fmt.Sprintf("prefix does not match category (want %s)", want)}
	}
	return nil
}

// ValidateAll validates every record and flags repeated SKUs. Issues come
// back in record order.
func (v *Validator) ValidateAll(records []catalogue.Record) []Issue {
	var issues []Issue
	first := make(map[string]int, len(records))
	for i, rec := range records {
		if err := v.Validate(rec); err != nil {
			issues = append(issues, Issue{Index: i, SKU: rec.SKU, Err: err})
		}
		if j, seen := first[rec.SKU]; seen {
			issues = append(issues, Issue{Index: i, SKU: rec.SKU, Err: &Error{
				SKU:     rec.SKU,
				Field:   "sku",
				Message: fmt.Sprintf("duplicate of record %d", j),
			}})
			continue
		}
		first[rec.SKU] = i
	}
	return issues
}

func toError(sku string, err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &Error{SKU: sku, Message: err.Error()}
	}
	e := errs[0]
	msg := e.Error()
	if f, args := e.Msg(); f != "" {
		msg = fmt.Sprintf(f, args...)
	}
	return &Error{SKU: sku, Field: strings.Join(e.Path(), "."), Message: msg}
}
