package policy

import (
	"maps"
	"slices"
)

// Policy governs probe order and extension rewriting for one run.
// The zero value has no candidates and rewrites nothing.
type Policy struct {
	candidates []string
	output     string
	keep       map[string]struct{}
	rewrite    map[string]string
}

// CandidateExtensions returns the probe order.
func (p Policy) CandidateExtensions() []string {
	return slices.Clone(p.candidates)
}

// OutputExtension returns the keep style replacement extension.
func (p Policy) OutputExtension() string {
	return p.output
}

// ExtensionsToKeep returns the keep style verbatim extensions, sorted.
func (p Policy) ExtensionsToKeep() []string {
	exts := make([]string, 0, len(p.keep))
	for ext := range p.keep {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	return exts
}

// ExtensionMap returns a copy of the map style rewrite table, or nil in keep style.
func (p Policy) ExtensionMap() map[string]string {
	return maps.Clone(p.rewrite)
}

// UsesMap reports whether the policy uses the map style.
func (p Policy) UsesMap() bool {
	return p.rewrite != nil
}

// OutputFor returns the extension written into a rewritten specifier when a
// file with the matched extension was found.
func (p Policy) OutputFor(matched string) string {
	if p.rewrite != nil {
		if out, ok := p.rewrite[matched]; ok {
			return out
		}

		return matched
	}

	if _, ok := p.keep[matched]; ok {
		return matched
	}

	return p.output
}

// Options returns the policy as fully populated options.
func (p Policy) Options() *Options {
	o := &Options{
		CandidateExtensions: ExtensionList(p.CandidateExtensions()),
	}

	if p.rewrite != nil {
		o.ExtensionMap = p.ExtensionMap()

		return o
	}

	o.OutputExtension = String(p.output)
	o.ExtensionsToKeep = ExtensionList(p.ExtensionsToKeep())

	return o
}
