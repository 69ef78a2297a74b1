// Package workspace rewrites every source file under a set of roots.
//
// Files are collected with a directory walk that skips node_modules and dot
// directories, then rewritten concurrently. Each file is independent: a file
// that fails to read, parse or write is reported in the diagnostics and the
// others carry on. Output goes back in place or into a mirrored tree under
// an output directory; resolution always runs against the source location.
package workspace
