package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"extension-resolver/internal/diagnostic"
	"extension-resolver/internal/jsrewrite"
	"extension-resolver/internal/workspace"
)

func newRewriteCmd(g *globalFlags) *cobra.Command {
	var cfg workspace.Config

	cmd := &cobra.Command{
		Use:   "rewrite [path...]",
		Short: "Rewrite relative specifiers in source files",
		Long: `The rewrite command parses every JavaScript/TypeScript file under the given
files or directories (default ".") and rewrites its relative import, export,
require() and import() specifiers. Files are rewritten in place unless
--out-dir is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.resolver(cmd)
			if err != nil {
				return err
			}

			cfg.Roots = args
			if len(cfg.Roots) == 0 {
				cfg.Roots = []string{"."}
			}

			summary, err := workspace.Run(cmd.Context(), jsrewrite.New(r), cfg)
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			for _, d := range summary.Diagnostics.All() {
				if d.Severity == diagnostic.DiagnosticInfo && !g.verbose {
					continue
				}

				fmt.Fprintf(errOut, "%s: %s\n", d.Severity, d)
			}

			verb := "rewrote"
			if cfg.DryRun {
				verb = "would rewrite"
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d of %d files\n", verb, summary.Changed(), len(summary.Files))

			return summary.Diagnostics.Error()
		},
	}

	cmd.Flags().StringVarP(&cfg.OutDir, "out-dir", "o", "", "write into this directory instead of in place")
	cmd.Flags().StringSliceVar(&cfg.Extensions, "source-ext", jsrewrite.DefaultExtensions, "extensions of the files to rewrite")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "concurrent files (default GOMAXPROCS)")
	cmd.Flags().BoolVarP(&cfg.DryRun, "dry-run", "n", false, "report without writing")

	return cmd
}
