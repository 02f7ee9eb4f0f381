package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/report"
	"github.com/Veraticus/kesi-ledger/internal/service"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// sheetTitle is the tab the report is written to.
const sheetTitle = "Transactions"

// Writer implements report.Writer for Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return newWriterWithService(srv, config, logger), nil
}

func newWriterWithService(srv *sheets.Service, config Config, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}
}

// Write implements report.Writer.
func (w *Writer) Write(ctx context.Context, r *report.Report) error {
	w.logger.Info("starting report export",
		"rows", len(r.Rows),
		"date_range", fmt.Sprintf("%s to %s", r.Range.From.Format(time.DateOnly), r.Range.To.Format(time.DateOnly)))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	if clearErr := w.clearSheet(ctx, spreadsheetID); clearErr != nil {
		return fmt.Errorf("failed to clear sheet: %w", clearErr)
	}

	values := prepareReportData(r)

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err = common.WithRetry(ctx, func() error {
		return w.writeData(ctx, spreadsheetID, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write data: %w", err)
	}

	if w.config.EnableFormatting {
		err = common.WithRetry(ctx, func() error {
			return w.applyFormatting(ctx, spreadsheetID, len(values))
		}, retryOpts)
		if err != nil {
			// Formatting is cosmetic; the data is already written.
			w.logger.Warn("failed to apply formatting", "error", err)
		}
	}

	w.logger.Info("report export completed",
		"spreadsheet_id", spreadsheetID,
		"rows_written", len(values))

	return nil
}

// createSheetsService creates a Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		tokenSource = oauthConfig(config.ClientID, config.ClientSecret, "").TokenSource(ctx, &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		})
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, tokenSource)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}

// getOrCreateSpreadsheet gets an existing spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		_, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: sheetTitle}},
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// clearSheet clears all data from the sheet.
func (w *Writer) clearSheet(ctx context.Context, spreadsheetID string) error {
	_, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, "A:Z", &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// prepareReportData lays the report out as a title block, the transaction
// table and a totals block.
func prepareReportData(r *report.Report) [][]any {
	values := make([][]any, 0, len(r.Rows)+10)

	values = append(values,
		[]any{r.Title, r.Subtitle()},
		[]any{},
	)

	header := make([]any, len(report.Columns))
	for i, col := range report.Columns {
		header[i] = col
	}
	values = append(values, header)

	for _, row := range r.Rows {
		cells := row.Cells()
		line := make([]any, len(cells))
		for i, c := range cells {
			line[i] = c
		}
		values = append(values, line)
	}

	values = append(values,
		[]any{},
		[]any{"Summary"},
		[]any{"Net Income", r.Totals.NetIncome.StringFixed(2)},
		[]any{"Total Expenses", r.Totals.EffectiveExpenses.StringFixed(2)},
		[]any{"Balance", r.Totals.Balance.StringFixed(2)},
		[]any{"Transactions", len(r.Rows)},
	)

	return values
}

// writeData writes the data to the spreadsheet.
func (w *Writer) writeData(ctx context.Context, spreadsheetID string, values [][]any) error {
	for i := 0; i < len(values); i += w.config.BatchSize {
		end := min(i+w.config.BatchSize, len(values))

		batch := values[i:end]
		valueRange := &sheets.ValueRange{
			Values: batch,
		}

		rangeStr := fmt.Sprintf("A%d", i+1)
		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeStr, valueRange).
			ValueInputOption("USER_ENTERED").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		w.logger.Debug("wrote batch", "start_row", i+1, "rows", len(batch))
	}

	return nil
}

// applyFormatting bolds the title and table header, formats money columns
// and freezes the header rows.
func (w *Writer) applyFormatting(ctx context.Context, spreadsheetID string, totalRows int) error {
	bold := func(startRow, endRow, startCol, endCol int64, size int64) *sheets.Request {
		return &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					StartRowIndex:    startRow,
					EndRowIndex:      endRow,
					StartColumnIndex: startCol,
					EndColumnIndex:   endCol,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{Bold: true, FontSize: size},
					},
				},
				Fields: "userEnteredFormat.textFormat",
			},
		}
	}

	columns := int64(len(report.Columns))
	requests := []*sheets.Request{
		bold(0, 1, 0, 2, 16),
		bold(2, 3, 0, columns, 10),
		{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					StartRowIndex:    3,
					EndRowIndex:      int64(totalRows),
					StartColumnIndex: 7,
					EndColumnIndex:   columns,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						NumberFormat: &sheets.NumberFormat{Type: "NUMBER", Pattern: "#,##0.00"},
					},
				},
				Fields: "userEnteredFormat.numberFormat",
			},
		},
		{
			AutoResizeDimensions: &sheets.AutoResizeDimensionsRequest{
				Dimensions: &sheets.DimensionRange{
					Dimension:  "COLUMNS",
					StartIndex: 0,
					EndIndex:   columns,
				},
			},
		},
		{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					GridProperties: &sheets.GridProperties{FrozenRowCount: 3},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		},
	}

	_, err := w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}
