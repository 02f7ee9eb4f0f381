package report

import (
	"context"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Column widths in millimetres on an A4 landscape page.
var pdfColumnWidths = []float64{22, 16, 48, 28, 30, 30, 22, 26, 18, 26}

const (
	coreFont = "Helvetica"
	utf8Font = "KesiText"
)

// PDFWriter renders a report as a single-table PDF document.
type PDFWriter struct {
	out  io.Writer
	font []byte
}

// PDFOption configures a PDFWriter.
type PDFOption func(*PDFWriter)

// WithFont embeds ttf, a TrueType font, and renders all text with it.
func WithFont(ttf []byte) PDFOption {
	return func(w *PDFWriter) {
		w.font = ttf
	}
}

// NewPDFWriter returns a writer that renders to out.
func NewPDFWriter(out io.Writer, opts ...PDFOption) *PDFWriter {
	w := &PDFWriter{out: out}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// setupFont registers the embedded font, if any, and returns the family to
// use with the function that prepares cell text for it.
func (w *PDFWriter) setupFont(pdf *fpdf.Fpdf) (string, func(string) string) {
	if len(w.font) == 0 {
		return coreFont, pdf.UnicodeTranslatorFromDescriptor("")
	}
	pdf.AddUTF8FontFromBytes(utf8Font, "", w.font)
	pdf.AddUTF8FontFromBytes(utf8Font, "B", w.font)
	return utf8Font, func(s string) string { return s }
}

// Write implements Writer.
func (w *PDFWriter) Write(_ context.Context, r *Report) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	pdf.SetMargins(14, 14, 14)

	family, tr := w.setupFont(pdf)
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to load pdf font: %w", err)
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", 18)
	pdf.CellFormat(0, 10, r.Title, "", 1, "L", false, 0, "")

	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, r.Subtitle(), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(family, "B", 8)
	pdf.SetFillColor(204, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range Columns {
		pdf.CellFormat(pdfColumnWidths[i], 7, col, "", 0, cellAlign(i), true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 8)
	pdf.SetTextColor(0, 0, 0)
	for n, row := range r.Rows {
		fill := n%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for i, cell := range row.Cells() {
			pdf.CellFormat(pdfColumnWidths[i], 6, tr(truncate(pdf, cell, pdfColumnWidths[i]-2)), "", 0, cellAlign(i), fill, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont(family, "B", 9)
	for _, line := range []string{
		fmt.Sprintf("Net income: %s", r.Totals.NetIncome.StringFixed(2)),
		fmt.Sprintf("Total expenses: %s", r.Totals.EffectiveExpenses.StringFixed(2)),
		fmt.Sprintf("Balance: %s", r.Totals.Balance.StringFixed(2)),
	} {
		pdf.CellFormat(0, 5, line, "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w.out); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// cellAlign right-aligns the monetary columns.
func cellAlign(col int) string {
	if col >= 7 {
		return "R"
	}
	return "L"
}

// truncate shortens s with an ellipsis so it fits in width millimetres.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
