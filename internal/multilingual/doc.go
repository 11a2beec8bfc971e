// Package multilingual resolves the pipe-delimited multilingual strings used
// throughout the line data into display text.
//
// A field stores up to five variants in the order zh-hans, zh-hant, en, ja,
// ko. Resolution never fails: absent variants are empty strings, and the
// fixed FallbackOrder (zh-hans, zh-hant, ja, ko, en) decides which variant
// stands in for a missing one.
package multilingual
