package main

import (
	"github.com/spf13/cobra"

	"extension-resolver/internal/policy"
)

func newDefaultsCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the effective policy as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := g.policy(cmd)
			if err != nil {
				return err
			}

			data, err := policy.Marshal(p.Options())
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
