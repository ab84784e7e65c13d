// Package store keeps a derived SQLite index of the catalogue data file.
//
// The data file stays the source of truth. The index is rebuilt from it on
// demand and is updated alongside every append, so storefront queries can
// run as SQL without re-parsing the file. It also records generation runs.
//
// Tables:
//   - records: one row per record, with a lower-cased search haystack and the
//     record's JSON encoding
//   - record_styles: (sku, style) pairs for style filters
//   - runs: one row per generation run, keyed by a UUIDv7
//
// # Ordering
//
// seq is the record's insertion position, which is its position in the data
// file. Every read orders by seq (after the sort key, for queries) so results
// match the in-memory query engine exactly.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
