package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/cli"
	"github.com/Veraticus/kesi-ledger/internal/config"
	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/report"
	"github.com/Veraticus/kesi-ledger/internal/sheets"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Export formats.
const (
	formatPDF    = "pdf"
	formatCSV    = "csv"
	formatSheets = "sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a transaction report",
		Long: `Export the transactions dated within a range, together with net income,
total expenses and balance for that range.

The range defaults to the current month.`,
		Example: `  kesi export --from 2024-05-01 --to 2024-05-31
  kesi export --format csv --output may.csv
  kesi export --format sheets`,
		RunE: runExport,
	}

	addRangeFlags(cmd)
	cmd.Flags().StringP("format", "f", formatPDF, "output format (pdf, csv, sheets)")
	cmd.Flags().StringP("output", "o", "", "output file (default: Kesi_Ledger_Report_<from>_<to>.<format>)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatPDF, formatCSV, formatSheets:
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}

	dateRange, filtered, err := rangeFromFlags(cmd)
	if err != nil {
		return err
	}
	if !filtered {
		dateRange = ledger.MonthOf(time.Now())
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	r, err := report.Build(a.store.LoadLedger(ctx).Transactions(), dateRange.From, dateRange.To)
	if errors.Is(err, report.ErrNoData) {
		fmt.Fprintln(out, cli.FormatInfo("No transactions found in the selected date range."))
		return nil
	}
	if err != nil {
		return err
	}

	if format == formatSheets {
		w, err := sheets.NewWriter(ctx, config.LoadSheetsConfig(viper.GetViper()), slog.Default())
		if err != nil {
			return fmt.Errorf("google sheets is not configured (run 'kesi auth sheets'): %w", err)
		}
		if err := w.Write(ctx, r); err != nil {
			return fmt.Errorf("failed to export to google sheets: %w", err)
		}
		fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to Google Sheets.", len(r.Rows))))
		return nil
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = report.FileName(r, format)
	}

	if err := writeReportFile(cmd, r, format, path); err != nil {
		return err
	}

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s.", len(r.Rows), path)))
	return nil
}

// pdfOptions applies the configured report.pdf_font.
func pdfOptions() ([]report.PDFOption, error) {
	path := config.LoadPDFFont(viper.GetViper())
	if path == "" {
		return nil, nil
	}

	ttf, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf font: %w", err)
	}
	return []report.PDFOption{report.WithFont(ttf)}, nil
}

func writeReportFile(cmd *cobra.Command, r *report.Report, format, path string) (err error) {
	var opts []report.PDFOption
	if format == formatPDF {
		if opts, err = pdfOptions(); err != nil {
			return err
		}
	}

	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	var w report.Writer
	if format == formatCSV {
		w = report.NewCSVWriter(f)
	} else {
		w = report.NewPDFWriter(f, opts...)
	}

	if err := w.Write(cmd.Context(), r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
