// Package suggest proposes a near miss for a relative specifier that did not
// resolve, by ranking the entries of the directory it points into.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Rank: ranks sibling files and directories against a specifier
//   - Suggest: returns the best candidate above MinScore
package suggest
