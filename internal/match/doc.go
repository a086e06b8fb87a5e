// Package match provides identifier normalization and Levenshtein similarity.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - SnakeCase: derives column and attribute names from Go identifiers
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks candidate names for "did you mean" suggestions
package match
