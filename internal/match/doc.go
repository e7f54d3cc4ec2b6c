// Package match ranks known names against a misspelled one.
//
// Key functions:
//   - NormalizeName: folds case and drops separators before comparing
//   - Levenshtein: computes edit distance between strings
//   - Suggest: returns the closest candidates above a similarity threshold
package match
