package datastore

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/catalogue/internal/catalogue"
)

var itemsOpen = regexp.MustCompile(`\bITEMS\s*=\s*\[`)

// DecodeError is a data file syntax or type error with its source position.
type DecodeError struct {
	Message string
	Pos     token.Pos
}

func (e *DecodeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// Decode parses the ITEMS list out of a data file.
//
// The list body (object literals with bare keys, trailing commas and //
// comments) is valid CUE, so it is compiled as the value of a single field
// and exported to JSON. Leading newlines keep CUE line numbers aligned with
// the file. filename only labels error positions.
func Decode(filename, text string) ([]catalogue.Record, error) {
	loc := itemsOpen.FindStringIndex(text)
	if loc == nil {
		return nil, fmt.Errorf("%w: ITEMS array not found", ErrFormat)
	}
	end := strings.LastIndex(text, Marker)
	if end < loc[1] {
		return nil, ErrFormat
	}

	var src strings.Builder
	src.WriteString(strings.Repeat("\n", strings.Count(text[:loc[0]], "\n")))
	src.WriteString("items: [")
	src.WriteString(text[loc[1]:end])
	src.WriteString("]\n")

	ctx := cuecontext.New()
	v := ctx.CompileString(src.String(), cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	items := v.LookupPath(cue.ParsePath("items"))
	if err := rejectBytes(items); err != nil {
		return nil, err
	}
	data, err := items.MarshalJSON()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var records []catalogue.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return records, nil
}

// rejectBytes fails on the first single-quoted literal under v. CUE reads
// 'text' as bytes, which would export as base64 instead of a string.
func rejectBytes(v cue.Value) error {
	switch v.Kind() {
	case cue.BytesKind:
		return &DecodeError{
			Message: fmt.Sprintf("%s: single-quoted strings are not supported, use double quotes", v.Path()),
			Pos:     v.Pos(),
		}
	case cue.ListKind:
		it, err := v.List()
		if err != nil {
			return formatCUEError(err)
		}
		for it.Next() {
			if err := rejectBytes(it.Value()); err != nil {
				return err
			}
		}
	case cue.StructKind:
		it, err := v.Fields()
		if err != nil {
			return formatCUEError(err)
		}
		for it.Next() {
			if err := rejectBytes(it.Value()); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatCUEError keeps the first error and its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}
	first := errs[0]
	de := &DecodeError{Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		de.Pos = positions[0]
	}
	return de
}
