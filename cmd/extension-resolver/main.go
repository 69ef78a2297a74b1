// Package main provides the CLI entrypoint for extension-resolver.
//
// extension-resolver rewrites relative module specifiers in JavaScript and
// TypeScript so that they name the files a build step produces:
//   - rewrite: rewrites sources in place or into an output tree (tree-sitter)
//   - bundle: runs esbuild with the resolver plugin, one output per entry
//   - resolve: explains the decision for individual specifiers
//   - defaults: prints the effective policy as YAML
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
