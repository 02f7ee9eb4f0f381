package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func draft(t *testing.T, typ model.TransactionType, amount string, date time.Time) model.Draft {
	t.Helper()
	return model.Draft{
		Date:          date,
		Amount:        dec(t, amount),
		Description:   fmt.Sprintf("%s %s", typ, amount),
		Type:          typ,
		Category:      "General",
		Name:          "Ma Hla",
		PhoneNumber:   "09123456789",
		PaymentMethod: model.MethodWaveMoney,
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("txn-%d", n)
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}
