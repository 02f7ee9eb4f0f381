package main

import (
	"fmt"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/spf13/cobra"
)

func feeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee",
		Short: "Show or change the service fee rate",
		Long: `The service fee rate is a percentage applied to new transactions. Changing
it never alters the fee stored with transactions already recorded.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current service fee rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "Service fee rate: %s%%\n", a.store.LoadFeeRate(ctx))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "set <percent>",
		Short:   "Set the service fee rate",
		Example: "  kesi fee set 1.5",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			rate, err := a.store.SetFeeRate(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Service fee rate set to %s%%.", rate)))
			return nil
		},
	})

	return cmd
}
