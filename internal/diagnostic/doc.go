// Package diagnostic provides structured per-site outcomes for a rewrite run.
//
// Key capabilities:
//   - Rewritten specifier reports (from -> to)
//   - Unresolved relative specifier warnings
//   - Skipped non-literal reference sites
//   - File level errors (read, parse, write) that do not stop other files
package diagnostic
