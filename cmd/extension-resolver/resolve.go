package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"extension-resolver/internal/resolve"
	"extension-resolver/internal/suggest"
)

func newResolveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <file> <specifier...>",
		Short: "Show how specifiers written in a file resolve",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.resolver(cmd)
			if err != nil {
				return err
			}

			file, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve absolute path of %s: %w", args[0], err)
			}

			rewritten := color.New(color.FgGreen)
			unchanged := color.New(color.FgYellow)
			out := cmd.OutOrStdout()

			for _, spec := range args[1:] {
				res := r.Resolve(file, spec)
				if res.Rewritten {
					rewritten.Fprint(out, "rewritten")
					fmt.Fprintf(out, " %s -> %s\n", spec, res.Specifier)

					continue
				}

				unchanged.Fprint(out, "unchanged")
				fmt.Fprintf(out, " %s\n", spec)

				if !resolve.IsRelative(spec) {
					continue
				}

				if hint, ok := suggest.Suggest(file, spec, r.Policy().CandidateExtensions()); ok {
					fmt.Fprintf(out, "  did you mean %s?\n", hint)
				}
			}

			return nil
		},
	}
}
