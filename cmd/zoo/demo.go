package main

import (
	"animal-zoo/internal/demo"
	"animal-zoo/internal/roster"

	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var rosterPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the animal model demo",
		Long: `Walks through inheritance, polymorphism, encapsulation and the factory,
printing every step. The zoo collection comes from --roster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := roster.Resolve(rosterPath)
			if err != nil {
				return err
			}
			zoo, err := r.Build()
			if err != nil {
				return err
			}
			return demo.Run(cmd.OutOrStdout(), zoo)
		},
	}

	cmd.Flags().StringVar(&rosterPath, "roster", "default", `Roster YAML for the collection section ("default" = built-in)`)
	return cmd
}
