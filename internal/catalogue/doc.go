// Package catalogue defines the template record model shared by the
// generator, the datastore and the query engine.
//
// A Record describes one website template: its SKU, category, style
// labels, price, sales copy and accent palette. Records are created once by
// the synthesizer, appended to the data file and never edited in place.
//
// # Invariants
//
//   - SKU matches ^[A-Z]{4}-\d{4}$ and is unique within the data file
//   - Style has exactly two distinct labels
//   - CategoryID is one of Categories, never free text
//   - FeaturedRank strictly increases with generation order; 0 means unranked
package catalogue
