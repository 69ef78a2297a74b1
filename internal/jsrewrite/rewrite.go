package jsrewrite

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"extension-resolver/internal/diagnostic"
	"extension-resolver/internal/host"
	"extension-resolver/internal/resolve"
)

// Rewriter rewrites the module specifiers of source files.
// It is safe for concurrent use; every call parses with its own parser.
type Rewriter struct {
	resolver *resolve.Resolver
}

// New creates a Rewriter.
func New(r *resolve.Resolver) *Rewriter {
	return &Rewriter{resolver: r}
}

// RewriteFile reads path and returns its rewritten content.
func (w *Rewriter) RewriteFile(ctx context.Context, path string) ([]byte, diagnostic.Diagnostics, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("failed to read source file %s: %w", path, err)
	}

	return w.Rewrite(ctx, path, src)
}

// Rewrite returns src with its specifiers rewritten as if it were the content
// of path. Specifiers are resolved against the directory of path.
// src is not modified; when nothing changes the returned slice is src itself.
func (w *Rewriter) Rewrite(ctx context.Context, path string, src []byte) ([]byte, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, diags, fmt.Errorf("failed to resolve absolute path of %s: %w", path, err)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(languageFor(path))

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, diags, fmt.Errorf("tree-sitter parse of %s failed: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		diags.AddWarning(diagnostic.CodeParse, "source has syntax errors, sites inside them may be missed", path, 0, "")
	}

	sites := collectSites(root, src)

	hostSites := make([]host.Site, len(sites))
	for i, s := range sites {
		hostSites[i] = s
	}

	diags.Merge(relabel(host.Apply(absPath, hostSites, w.resolver), absPath, path))

	return splice(src, sites), diags, nil
}

// relabel reports diagnostics against the path as given by the caller.
func relabel(d diagnostic.Diagnostics, from, to string) diagnostic.Diagnostics {
	for _, list := range [][]diagnostic.Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for i := range list {
			if list[i].File == from {
				list[i].File = to
			}
		}
	}

	return d
}

// splice applies the replacements of sites, which are in source order.
func splice(src []byte, sites []*site) []byte {
	var out bytes.Buffer

	last := uint32(0)
	edited := false

	for _, s := range sites {
		if !s.changed() {
			continue
		}

		out.Write(src[last:s.start])
		out.WriteString(quote(*s.replacement, s.quote))

		last = s.end
		edited = true
	}

	if !edited {
		return src
	}

	out.Write(src[last:])

	return out.Bytes()
}

// quote escapes backslashes and the surrounding quote character.
func quote(specifier string, q byte) string {
	specifier = strings.ReplaceAll(specifier, `\`, `\\`)

	return strings.ReplaceAll(specifier, string(q), `\`+string(q))
}
