package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// CSVWriter writes a report as comma-separated values with a header row.
type CSVWriter struct {
	out io.Writer
}

// NewCSVWriter returns a writer that renders to out.
func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: out}
}

// Write implements Writer.
func (w *CSVWriter) Write(_ context.Context, r *Report) error {
	cw := csv.NewWriter(w.out)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range r.Rows {
		if err := cw.Write(row.Cells()); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}
