// Package host is the boundary between a syntax-tree host (a parser, a
// bundler plugin) and the resolver.
//
// A host exposes every candidate module reference of one file as a Site:
// something that can be classified, may carry a literal specifier, and can
// have that specifier replaced. Apply runs the resolver over the sites of one
// file and performs the replacements. Hosts never pass resolver types around
// and the resolver never sees host node types.
package host
