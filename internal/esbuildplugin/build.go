package esbuildplugin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"extension-resolver/internal/resolve"
)

// Output formats.
const (
	FormatESM = "esm"
	FormatCJS = "cjs"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// EntryPoints are the source files to transform, one output each.
	EntryPoints []string
	// OutDir receives the outputs.
	OutDir string
	// OutBase is the root the output tree mirrors; empty lets esbuild pick the
	// lowest common ancestor of the entry points.
	OutBase string
	// Format is FormatESM (default) or FormatCJS.
	Format string
	// Write makes esbuild write the outputs to disk.
	Write bool
}

// Build runs esbuild over the entry points with the resolver plugin.
// Package imports stay external; relative imports become external imports
// with rewritten specifiers.
func Build(r *resolve.Resolver, opts BuildOptions) (api.BuildResult, error) {
	if len(opts.EntryPoints) == 0 {
		return api.BuildResult{}, errors.New("no entry points")
	}

	format, err := formatOf(opts.Format)
	if err != nil {
		return api.BuildResult{}, err
	}

	result := api.Build(api.BuildOptions{
		EntryPoints: opts.EntryPoints,
		Outdir:      opts.OutDir,
		Outbase:     opts.OutBase,
		Bundle:      true,
		Packages:    api.PackagesExternal,
		Format:      format,
		Platform:    api.PlatformNode,
		Write:       opts.Write,
		LogLevel:    api.LogLevelSilent,
		Plugins:     []api.Plugin{New(r)},
	})

	if len(result.Errors) > 0 {
		msgs := api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage})

		return result, fmt.Errorf("esbuild failed:\n%s", strings.Join(msgs, ""))
	}

	return result, nil
}

func formatOf(name string) (api.Format, error) {
	switch name {
	case "", FormatESM:
		return api.FormatESModule, nil
	case FormatCJS:
		return api.FormatCommonJS, nil
	default:
		return api.FormatDefault, fmt.Errorf("unknown output format %q", name)
	}
}
