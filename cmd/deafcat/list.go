package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deafcat/adaptation/internal/app"
)

func newCharactersCmd(flags *globalFlags) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "characters",
		Short: "Print the character bible",
		Long:  "Print every character, or those whose name or Arabic name contains --search. Falls back to sample data when the remote table is empty or unreachable.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Bootstrap(flags.options())
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()
			return app.WriteCharacters(cmd.Context(), cmd.OutOrStdout(), env.Logger, env.Client, search)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive name filter")
	return cmd
}

func newEpisodesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "episodes",
		Short: "Print episode production status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Bootstrap(flags.options())
			if err != nil {
				return err
			}
			defer func() { _ = env.Logger.Sync() }()
			return app.WriteEpisodes(cmd.Context(), cmd.OutOrStdout(), env.Logger, env.Client)
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deafcat %s\n", version)
		},
	}
}
