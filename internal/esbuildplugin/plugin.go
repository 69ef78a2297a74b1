// Package esbuildplugin exposes the resolver as an esbuild plugin.
//
// The plugin claims every relative import esbuild asks it about, marks it
// external and hands back the rewritten specifier. esbuild then prints the
// import with the output extension instead of bundling the target, which
// turns a bundle build into a per-file transform with resolved extensions.
package esbuildplugin

import (
	"github.com/evanw/esbuild/pkg/api"

	"extension-resolver/internal/host"
	"extension-resolver/internal/resolve"
)

// PluginName is the esbuild plugin name.
const PluginName = "module-extension-resolver"

const fileNamespace = "file"

// onResolveSite adapts one esbuild resolve request to host.Site.
type onResolveSite struct {
	kind        host.Kind
	path        string
	replacement *string
}

func (s *onResolveSite) Kind() host.Kind           { return s.kind }
func (s *onResolveSite) Specifier() (string, bool) { return s.path, true }
func (s *onResolveSite) Replace(specifier string)  { s.replacement = &specifier }

// kindOf maps esbuild resolve kinds to site kinds. esbuild reports
// re-exports as import statements.
func kindOf(k api.ResolveKind) (host.Kind, bool) {
	switch k {
	case api.ResolveJSImportStatement:
		return host.KindStaticImport, true
	case api.ResolveJSRequireCall:
		return host.KindRequireCall, true
	case api.ResolveJSDynamicImport:
		return host.KindDynamicImport, true
	default:
		return 0, false
	}
}

// New returns an esbuild plugin resolving relative imports with r.
// Every relative import becomes external; imports that do not resolve keep
// the specifier as written, so esbuild never inlines or rejects them.
func New(r *resolve.Resolver) api.Plugin {
	return api.Plugin{
		Name: PluginName,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `^\.`}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				kind, ok := kindOf(args.Kind)
				if !ok || args.Importer == "" || (args.Namespace != "" && args.Namespace != fileNamespace) {
					return api.OnResolveResult{}, nil
				}

				site := &onResolveSite{kind: kind, path: args.Path}
				host.Apply(args.Importer, []host.Site{site}, r)

				// Unresolved imports stay external as written.
				path := args.Path
				if site.replacement != nil {
					path = *site.replacement
				}

				return api.OnResolveResult{
					Path:     path,
					External: true,
				}, nil
			})
		},
	}
}
