// Package harness runs storefront query scenarios against a catalogue data
// file.
//
// A scenario is a YAML file naming a data file and a sequence of steps.
// Each step patches (or resets) the query state and may carry
// expectations about the visible templates and their category groups:
//
//	name: food-by-price
//	description: Category filter with a price sort
//	data: ../catalogue-data.js
//	steps:
//	  - query: {category: food, sort: price-asc}
//	    expect:
//	      visible: [FOOD-3307, FOOD-1201]
//	      groups: [food]
//
// Every step is evaluated twice: by the in-memory query engine and by the
// SQLite index built from the same records. A step fails when the two
// disagree or when an expectation does not hold.
//
// RunWithGolden additionally snapshots each step's groups to
// testdata/golden/{name}.golden. Regenerate snapshots with:
//
//	go test ./internal/harness -update
package harness
