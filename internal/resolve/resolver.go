package resolve

import (
	"path"
	"path/filepath"
	"strings"

	"extension-resolver/internal/policy"
)

// indexTitle is appended to a specifier for directory-style imports.
const indexTitle = "index"

// Resolver applies one Policy against a FileSystem.
type Resolver struct {
	fs     FileSystem
	policy policy.Policy
}

// New creates a Resolver. A nil fsys probes the local disk.
func New(p policy.Policy, fsys FileSystem) *Resolver {
	if fsys == nil {
		fsys = OSFileSystem{}
	}

	return &Resolver{
		fs:     fsys,
		policy: p,
	}
}

// Resolve resolves specifier against the local disk with policy p.
func Resolve(containingFile, specifier string, p policy.Policy) Result {
	return New(p, nil).Resolve(containingFile, specifier)
}

// Policy returns the resolver's policy.
func (r *Resolver) Policy() policy.Policy {
	return r.policy
}

// IsRelative reports whether specifier is a relative module specifier.
// Anything else (bare package names, absolute paths, URLs) is never touched.
func IsRelative(specifier string) bool {
	return strings.HasPrefix(specifier, ".")
}

// Resolve decides the replacement for specifier written in containingFile.
// Non-relative specifiers return Unchanged without touching the file system.
func (r *Resolver) Resolve(containingFile, specifier string) Result {
	if !IsRelative(specifier) {
		return Unchanged()
	}

	baseDir := filepath.Dir(containingFile)
	candidates := r.policy.CandidateExtensions()

	// The index title is probed even when the specifier is not a directory:
	// a missing directory just makes every index probe miss.
	for _, title := range []string{specifier, path.Join(specifier, indexTitle)} {
		if resolved, ok := r.probe(baseDir, title, candidates); ok {
			return Rewritten(Normalize(resolved))
		}
	}

	return Unchanged()
}

// probe tries title as an exact file, then with each candidate extension.
func (r *Resolver) probe(baseDir, title string, candidates []string) (string, bool) {
	absolutePath := filepath.Join(baseDir, filepath.FromSlash(title))
	if strings.HasSuffix(title, "/") {
		// "./dir/" names the directory itself, never a sibling "dir.ts".
		absolutePath += string(filepath.Separator)
	}

	if r.fs.Stat(absolutePath) == EntryFile {
		// already resolved
		return title, true
	}

	for _, ext := range candidates {
		if r.fs.Stat(absolutePath+ext) != EntryFile {
			continue
		}

		rel, err := filepath.Rel(baseDir, absolutePath+r.policy.OutputFor(ext))
		if err != nil {
			return "", false
		}

		return rel, true
	}

	return "", false
}

// Normalize converts platform separators to "/" and guarantees a leading ".".
func Normalize(p string) string {
	return normalize(p, filepath.Separator)
}

func normalize(p string, sep rune) string {
	if sep != '/' {
		p = strings.ReplaceAll(p, string(sep), "/")
	}

	if !strings.HasPrefix(p, ".") {
		p = "./" + p
	}

	return p
}
