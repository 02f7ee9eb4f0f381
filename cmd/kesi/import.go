package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/Veraticus/kesi-ledger/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge transactions from a backup file",
		Long: `Merge transactions from a JSON file written by 'kesi backup'.

Transactions already in the ledger, matched by id, are skipped. Imported
transactions keep the service fee they were recorded with.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("no-progress", false, "hide the progress bar")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0]) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	incoming, err := storage.DecodeTransactions(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", args[0], err)
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	l := a.store.LoadLedger(ctx)

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	bar := progressbar.NewOptions(len(incoming),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetVisibility(!noProgress),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing transactions..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(cmd.ErrOrStderr())
		}),
	)

	added := 0
	for _, txn := range incoming {
		n, mergeErr := l.Merge([]model.Transaction{txn})
		if mergeErr != nil {
			return mergeErr
		}
		added += n
		_ = bar.Add(1)
	}

	if added > 0 {
		if err := a.store.SaveLedger(ctx, l); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(
		fmt.Sprintf("Imported %d new transactions (%d already present).", added, len(incoming)-added)))
	return nil
}

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Write every transaction to a JSON file",
		Long: `Write every transaction to a JSON file in the stored record format.
The file can be merged back with 'kesi import'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			txns := a.store.LoadLedger(ctx).Transactions()
			data, err := storage.EncodeTransactions(txns)
			if err != nil {
				return err
			}

			if err := os.WriteFile(args[0], data, 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Backed up %d transactions to %s.", len(txns), args[0])))
			return nil
		},
	}
}
