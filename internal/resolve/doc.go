// Package resolve decides what a relative module specifier written in a
// source file refers to on disk and what string should replace it.
//
// For a containing file and a written specifier the resolver probes two
// titles in order, the specifier itself and the specifier joined with
// "index". Each title is first checked as an exact file, then with every
// candidate extension of the policy in declared order. The first hit wins and
// its extension is mapped through the policy to the output extension.
//
// Results are always relative specifiers with forward slashes and a leading
// ".". Every failure, including file-system errors, degrades to Unchanged so a
// failed resolution never aborts the rewrite of a file.
//
// A Resolver keeps no state between calls and is safe for concurrent use as
// long as its FileSystem is.
package resolve
