package query

import (
	"slices"

	"github.com/roach88/catalogue/internal/catalogue"
)

// Engine holds a record set and the current storefront query.
// Not safe for concurrent use.
type Engine struct {
	records []catalogue.Record
	state   State
}

// New creates an engine over a copy of records with DefaultState.
func New(records []catalogue.Record) *Engine {
	return &Engine{
		records: slices.Clone(records),
		state:   DefaultState(),
	}
}

// SetQuery applies p to the current state and returns the new state.
func (e *Engine) SetQuery(p Patch) State {
	e.state = e.state.Apply(p)
	return e.State()
}

// State returns a copy of the current query.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Reset restores DefaultState.
func (e *Engine) Reset() {
	e.state = DefaultState()
}

// Len returns the total number of records, visible or not.
func (e *Engine) Len() int {
	return len(e.records)
}

// Visible returns the records matching the current query, sorted.
func (e *Engine) Visible() []catalogue.Record {
	return Visible(e.records, e.state)
}

// Groups returns the visible records grouped by category.
func (e *Engine) Groups() []Group {
	return GroupByCategory(e.Visible())
}
