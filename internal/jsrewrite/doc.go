// Package jsrewrite rewrites relative module specifiers in JavaScript and
// TypeScript source text.
//
// Sources are parsed with tree-sitter; the grammar is picked from the file
// extension (.ts/.mts/.cts TypeScript, .tsx TSX, anything else JavaScript
// with JSX). Recognized reference sites:
//
//	import x from "./a"        import "./a"        import type { T } from "./a"
//	export * from "./a"        export { x } from "./a"
//	require("./a")             import("./a")       import x = require("./a")
//
// Calls are only sites when they have exactly one argument. Arguments that
// are not plain string literals are reported and left alone. Replacements
// keep the original quote character and every other byte of the file.
package jsrewrite
