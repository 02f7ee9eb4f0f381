// Package report turns a date range of ledger transactions into export rows
// and renders them as PDF or CSV.
//
// The PDF writer uses the core Helvetica font unless given a TrueType font
// with WithFont. Helvetica only covers cp1252, so names in Myanmar or other
// non-Latin scripts need a font such as Padauk or Noto Sans Myanmar.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Title heads every exported report.
const Title = "Kesi Ledger - Transaction Report"

// ErrNoData means the selected range contains no transactions; callers show
// a "no data" notice instead of rendering an empty report.
var ErrNoData = errors.New("no transactions found in the selected date range")

// Columns are the table headings, in order.
var Columns = []string{"Date", "Type", "Description", "Category", "Name", "Phone", "Method", "Amount", "Fee", "Net"}

// Writer renders a report to some destination.
type Writer interface {
	Write(ctx context.Context, r *Report) error
}

// Row is one exported transaction.
type Row struct {
	Date          time.Time
	Amount        decimal.Decimal
	Effective     decimal.Decimal
	Fee           model.ServiceFee
	Type          model.TransactionType
	Description   string
	Category      string
	Name          string
	Phone         string
	PaymentMethod model.PaymentMethod
}

// Report is the data needed to render an export.
type Report struct {
	Range  ledger.DateRange
	Rows   []Row
	Totals ledger.Totals
	Title  string
}

// Build selects the transactions dated within [from, to] and prepares their
// rows. It returns ErrNoData when nothing matches.
func Build(txns []model.Transaction, from, to time.Time) (*Report, error) {
	r, err := ledger.NewDateRange(from, to)
	if err != nil {
		return nil, err
	}

	selected := r.Filter(txns)
	if len(selected) == 0 {
		return nil, ErrNoData
	}

	rows := make([]Row, 0, len(selected))
	for _, t := range selected {
		rows = append(rows, Row{
			Date:          t.Day(),
			Type:          t.Type,
			Description:   t.Description,
			Category:      t.Category,
			Name:          t.Name,
			Phone:         t.PhoneNumber,
			PaymentMethod: t.PaymentMethod,
			Amount:        t.Amount,
			Fee:           t.ServiceFee,
			Effective:     ledger.EffectiveAmount(t),
		})
	}

	return &Report{
		Title:  Title,
		Range:  r,
		Rows:   rows,
		Totals: ledger.Aggregate(selected),
	}, nil
}

// Subtitle describes the report's date range.
func (r *Report) Subtitle() string {
	return fmt.Sprintf("Report for: %s - %s", r.Range.From.Format("January 2, 2006"), r.Range.To.Format("January 2, 2006"))
}

// Cells returns the row's column values as display text. Expense amounts are
// shown with a leading minus sign; an absent fee is an empty cell.
func (row Row) Cells() []string {
	sign := ""
	if row.Type == model.TypeExpense {
		sign = "-"
	}
	return []string{
		row.Date.Format(time.DateOnly),
		string(row.Type),
		row.Description,
		row.Category,
		row.Name,
		row.Phone,
		string(row.PaymentMethod),
		sign + row.Amount.StringFixed(2),
		row.Fee.String(),
		sign + row.Effective.StringFixed(2),
	}
}

// FileName returns the conventional export file name for r.
func FileName(r *Report, ext string) string {
	return fmt.Sprintf("Kesi_Ledger_Report_%s_%s.%s", r.Range.From.Format("20060102"), r.Range.To.Format("20060102"), ext)
}
