package workspace

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"extension-resolver/internal/diagnostic"
	"extension-resolver/internal/jsrewrite"
)

// Config configures Run.
type Config struct {
	// Roots are files or directories to rewrite.
	Roots []string
	// Extensions select the files collected from directories.
	// Empty uses jsrewrite.DefaultExtensions.
	Extensions []string
	// OutDir mirrors every root under this directory. Empty rewrites in place.
	OutDir string
	// Jobs bounds concurrent rewrites. Zero or less uses GOMAXPROCS.
	Jobs int
	// DryRun rewrites without writing anything.
	DryRun bool
}

// FileResult is the outcome for one file.
type FileResult struct {
	Source Source
	// Output is where the content was (or would be) written.
	Output  string
	Changed bool
}

// Summary is the outcome of a Run.
type Summary struct {
	Files       []FileResult
	Diagnostics diagnostic.Diagnostics
}

// Changed returns the number of files whose content changed.
func (s *Summary) Changed() int {
	n := 0

	for _, f := range s.Files {
		if f.Changed {
			n++
		}
	}

	return n
}

type job struct {
	source Source
	output string
}

// Run rewrites every collected file. Per-file failures are reported in the
// summary diagnostics; the returned error is for collection failures and
// cancellation.
func Run(ctx context.Context, rw *jsrewrite.Rewriter, cfg Config) (*Summary, error) {
	jobs, err := plan(cfg)
	if err != nil {
		return nil, err
	}

	limit := cfg.Jobs
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(jobs))
	diags := make([]diagnostic.Diagnostics, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], diags[i] = rewriteOne(ctx, rw, j, cfg)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &Summary{Files: results}
	for _, d := range diags {
		summary.Diagnostics.Merge(d)
	}

	return summary, nil
}

// plan collects the sources of every root and decides their output paths.
func plan(cfg Config) ([]job, error) {
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = jsrewrite.DefaultExtensions
	}

	var skip []string
	if cfg.OutDir != "" {
		skip = append(skip, cfg.OutDir)
	}

	var jobs []job

	for _, root := range cfg.Roots {
		sources, err := Collect(root, exts, skip...)
		if err != nil {
			return nil, err
		}

		for _, src := range sources {
			output := src.Path
			if cfg.OutDir != "" {
				output = filepath.Join(cfg.OutDir, src.Rel)
			}

			jobs = append(jobs, job{source: src, output: output})
		}
	}

	return jobs, nil
}

func rewriteOne(ctx context.Context, rw *jsrewrite.Rewriter, j job, cfg Config) (FileResult, diagnostic.Diagnostics) {
	res := FileResult{Source: j.source, Output: j.output}

	before, err := os.ReadFile(j.source.Path)
	if err != nil {
		var diags diagnostic.Diagnostics
		diags.AddError(diagnostic.CodeRead, err.Error(), j.source.Path)

		return res, diags
	}

	after, diags, err := rw.Rewrite(ctx, j.source.Path, before)
	if err != nil {
		diags.AddError(diagnostic.CodeParse, err.Error(), j.source.Path)

		return res, diags
	}

	res.Changed = !bytes.Equal(before, after)

	if cfg.DryRun || (cfg.OutDir == "" && !res.Changed) {
		return res, diags
	}

	if err := writeFile(j.output, after); err != nil {
		diags.AddError(diagnostic.CodeWrite, err.Error(), j.output)
	}

	return res, diags
}
