// Package query filters, sorts and groups catalogue records the way the
// storefront does.
//
// A State is the storefront's query: free text, a category filter, a style
// set and a sort key. Compile turns a State into a Predicate, a small sealed
// IR shared with the SQL backend in querysql:
//
//   - CategoryIs: categoryId equals the given ID
//   - AnyStyle: the record carries at least one of the styles
//   - TextContains: the lower-cased haystack contains the needle
//   - And: all predicates hold
//
// Visible applies the predicate and a stable sort. Group partitions records
// by category in display order. Engine wraps both behind SetQuery.
//
// Everything here is pure. Inputs are never mutated and the same records
// with the same State always give the same output.
package query
