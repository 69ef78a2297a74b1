package policy

import (
	"maps"
	"slices"
)

// Default option values.
var (
	DefaultCandidateExtensions = []string{".js", ".cjs", ".mjs", ".es", ".es6", ".ts", ".node", ".json"}
	DefaultOutputExtension     = ".js"
	DefaultExtensionsToKeep    = []string{".json"}
)

// Options is user-supplied configuration.
// A nil field is absent and keeps the default value.
type Options struct {
	// CandidateExtensions are probed in order; the first existing file wins.
	CandidateExtensions ExtensionList `yaml:"candidate_extensions,omitempty"`
	// OutputExtension replaces matched extensions not in ExtensionsToKeep.
	OutputExtension *string `yaml:"output_extension,omitempty"`
	// ExtensionsToKeep are written verbatim.
	ExtensionsToKeep ExtensionList `yaml:"extensions_to_keep,omitempty"`
	// ExtensionMap selects the map style when present.
	ExtensionMap map[string]string `yaml:"extension_map,omitempty"`
}

// Defaults returns a fresh copy of the default options.
func Defaults() *Options {
	output := DefaultOutputExtension

	return &Options{
		CandidateExtensions: slices.Clone(DefaultCandidateExtensions),
		OutputExtension:     &output,
		ExtensionsToKeep:    slices.Clone(DefaultExtensionsToKeep),
	}
}

// Merge returns base with every field present in override replacing the
// corresponding base field. Lists and maps are replaced, never merged.
// Either argument may be nil.
func Merge(base, override *Options) *Options {
	merged := &Options{}
	if base != nil {
		*merged = *base
	}

	if override == nil {
		return merged
	}

	if override.CandidateExtensions != nil {
		merged.CandidateExtensions = override.CandidateExtensions
	}

	if override.OutputExtension != nil {
		merged.OutputExtension = override.OutputExtension
	}

	if override.ExtensionsToKeep != nil {
		merged.ExtensionsToKeep = override.ExtensionsToKeep
	}

	if override.ExtensionMap != nil {
		merged.ExtensionMap = override.ExtensionMap
	}

	return merged
}

// Normalize merges user options over the defaults and builds the Policy.
// No validation is performed: an empty candidate list is legal and means only
// exact on-disk matches can resolve.
func Normalize(user *Options) Policy {
	merged := Merge(Defaults(), user)

	p := Policy{
		candidates: slices.Clone([]string(merged.CandidateExtensions)),
		keep:       make(map[string]struct{}, len(merged.ExtensionsToKeep)),
	}

	if merged.OutputExtension != nil {
		p.output = *merged.OutputExtension
	}

	for _, ext := range merged.ExtensionsToKeep {
		p.keep[ext] = struct{}{}
	}

	if merged.ExtensionMap != nil {
		p.rewrite = maps.Clone(merged.ExtensionMap)
	}

	return p
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string {
	return &s
}
