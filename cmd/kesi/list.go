package main

import (
	"fmt"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			r, filtered, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns := a.store.LoadLedger(ctx).Transactions()
			if filtered {
				txns = r.Filter(txns)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTransactions(txns))
			return nil
		},
	}

	addRangeFlags(cmd)
	return cmd
}

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show net income, total expenses and balance",
		Long: `Show the balance summary. Income is counted net of its service fee and
expenses include theirs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			r, filtered, err := rangeFromFlags(cmd)
			if err != nil {
				return err
			}

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns := a.store.LoadLedger(ctx).Transactions()
			if filtered {
				txns = r.Filter(txns)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderTotals(ledger.Aggregate(txns)))
			return nil
		},
	}

	addRangeFlags(cmd)
	return cmd
}
