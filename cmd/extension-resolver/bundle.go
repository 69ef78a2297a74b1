package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"extension-resolver/internal/esbuildplugin"
)

func newBundleCmd(g *globalFlags) *cobra.Command {
	opts := esbuildplugin.BuildOptions{Write: true}

	cmd := &cobra.Command{
		Use:   "bundle <entry...>",
		Short: "Transform entry points with esbuild, rewriting relative imports",
		Long: `The bundle command runs esbuild over each entry point with the resolver
plugin. Relative imports are kept external with their rewritten specifiers,
so every entry point produces one output file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.resolver(cmd)
			if err != nil {
				return err
			}

			opts.EntryPoints = args

			result, err := esbuildplugin.Build(r, opts)
			if err != nil {
				return err
			}

			for _, f := range result.OutputFiles {
				fmt.Fprintln(cmd.OutOrStdout(), f.Path)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.OutDir, "outdir", "o", "dist", "output directory")
	cmd.Flags().StringVar(&opts.OutBase, "outbase", "", "root of the mirrored output tree")
	cmd.Flags().StringVar(&opts.Format, "format", esbuildplugin.FormatESM, "output format: esm or cjs")

	return cmd
}
