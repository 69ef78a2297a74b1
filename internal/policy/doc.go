// Package policy provides the resolution policy used for one rewrite run and
// the option merging that produces it.
//
// A Policy is built once from defaults plus user overrides and is read-only
// afterwards. Merging is shallow: every field present in the user options
// replaces the default field wholesale. A partial extension list replaces the
// default list, it is never appended to.
//
// Two extension rewrite styles are supported:
//
//   - keep style: ExtensionsToKeep lists extensions written verbatim, every
//     other matched extension is rewritten to OutputExtension
//   - map style: ExtensionMap maps a matched extension to its replacement,
//     extensions absent from the map are written verbatim
//
// When ExtensionMap is present it selects the map style and the keep style
// fields are ignored.
//
// # Config file
//
//	candidate_extensions: [.ts, .js]
//	output_extension: .js
//	extensions_to_keep: .json   # string or list
//	extension_map:
//	  .ts: .js
//	  .mts: .mjs
package policy
