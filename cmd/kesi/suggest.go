package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func suggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "suggest <description>",
		Short:   "Suggest a category for a transaction description",
		Example: `  kesi suggest "Taxi to airport"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suggester, err := createSuggester()
			if err != nil {
				return err
			}

			category, err := suggester.Suggest(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), category)
			return nil
		},
	}
}
