// Package synth manufactures catalogue records from the vocabulary tables.
//
// A Synthesizer owns all per-run state: the set of issued SKUs, the featured
// rank counter and the random source. Nothing is package-global, so two
// synthesizers (two runs, or two tests) never observe each other.
//
// Output is intentionally non-reproducible unless a seeded source is supplied
// with WithRand. Tests assert properties (format, uniqueness, ordering), not
// exact values.
package synth
