package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/model"
)

// Filter errors.
var (
	ErrMissingDate      = errors.New("date range boundary is required")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange normalises both boundaries to calendar dates and rejects
// missing or inverted ranges.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() || to.IsZero() {
		return DateRange{}, ErrMissingDate
	}
	r := DateRange{From: model.DateOf(from), To: model.DateOf(to)}
	if r.From.After(r.To) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s",
			ErrInvalidDateRange, r.From.Format(time.DateOnly), r.To.Format(time.DateOnly))
	}
	return r, nil
}

// MonthOf returns the range covering the calendar month containing t.
func MonthOf(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: start, To: start.AddDate(0, 1, -1)}
}

// Contains reports whether t falls on a date within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := model.DateOf(t)
	return !d.Before(r.From) && !d.After(r.To)
}

// FilterByRange returns the transactions dated within [from, to], inclusive,
// in their original order.
func FilterByRange(txns []model.Transaction, from, to time.Time) ([]model.Transaction, error) {
	r, err := NewDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return r.Filter(txns), nil
}

// Filter returns the transactions within r, preserving order.
func (r DateRange) Filter(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if r.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
