// Package match provides fuzzy name comparison used to suggest corrections
// for unknown names in schemas.
//
// Key functions:
//   - NormalizeIdent: folds identifiers for comparison
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity
package match
