package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/config"
	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/llm"
	"github.com/Veraticus/kesi-ledger/internal/service"
	"github.com/Veraticus/kesi-ledger/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app bundles the opened store for a single command run.
type app struct {
	kv    service.KeyValueStore
	store *storage.LedgerStore
}

// openApp opens the configured key-value backend.
func openApp(ctx context.Context) (*app, error) {
	st := config.LoadStorage(viper.GetViper())

	kv, err := storage.Open(ctx, st.Backend, st.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	slog.Debug("storage opened", "backend", st.Backend, "path", st.Path)

	return &app{
		kv:    kv,
		store: storage.NewLedgerStore(kv, slog.Default()),
	}, nil
}

func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		slog.Warn("failed to close storage", "error", err)
	}
}

// createSuggester builds the configured category suggester.
func createSuggester() (service.CategorySuggester, error) {
	s, err := llm.NewSuggester(config.LoadLLMConfig(viper.GetViper()), slog.Default())
	if err != nil {
		return nil, err
	}
	return s, nil
}

// parseDate reads a YYYY-MM-DD calendar date in local time.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date, inclusive (YYYY-MM-DD)")
}

// rangeFromFlags reads --from/--to. It reports false when neither is set.
func rangeFromFlags(cmd *cobra.Command) (ledger.DateRange, bool, error) {
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")

	if from == "" && to == "" {
		return ledger.DateRange{}, false, nil
	}
	if from == "" || to == "" {
		return ledger.DateRange{}, false, fmt.Errorf("both --from and --to are required: %w", ledger.ErrMissingDate)
	}

	fromDate, err := parseDate(from)
	if err != nil {
		return ledger.DateRange{}, false, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return ledger.DateRange{}, false, err
	}

	r, err := ledger.NewDateRange(fromDate, toDate)
	if err != nil {
		return ledger.DateRange{}, false, err
	}
	return r, true, nil
}
