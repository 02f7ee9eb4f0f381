package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixture() []model.Transaction {
	return ledger.New([]model.Transaction{
		{
			ID: "1", Date: day(2024, 5, 1), Description: "Salary", Amount: decimal.RequireFromString("1000"),
			Type: model.TypeIncome, Category: "Income", Name: "Aung", PhoneNumber: "0911111111",
			PaymentMethod: model.MethodKPay, ServiceFee: model.FeeOf(decimal.RequireFromString("10")),
		},
		{
			ID: "2", Date: day(2024, 5, 3), Description: "Rice", Amount: decimal.RequireFromString("500"),
			Type: model.TypeExpense, Category: "Food", Name: "Hla", PhoneNumber: "0922222222",
			PaymentMethod: model.MethodWaveMoney, ServiceFee: model.FeeOf(decimal.RequireFromString("5")),
		},
		{
			ID: "3", Date: day(2024, 6, 1), Description: "Bus", Amount: decimal.RequireFromString("2.5"),
			Type: model.TypeExpense, Category: "Transport", Name: "Hla", PhoneNumber: "0922222222",
			PaymentMethod: model.MethodKPay, ServiceFee: model.NoFee(),
		},
	}).Transactions()
}

func TestBuild(t *testing.T) {
	r, err := Build(fixture(), day(2024, 5, 1), day(2024, 5, 31))
	require.NoError(t, err)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Rice", r.Rows[0].Description, "canonical order is kept")
	assert.Equal(t, Title, r.Title)
	assert.Equal(t, "Report for: May 1, 2024 - May 31, 2024", r.Subtitle())
	assert.True(t, r.Totals.Balance.Equal(decimal.RequireFromString("485")))
	assert.True(t, r.Rows[0].Effective.Equal(decimal.RequireFromString("505")))
	assert.True(t, r.Rows[1].Effective.Equal(decimal.RequireFromString("990")))
}

func TestBuild_NoData(t *testing.T) {
	_, err := Build(fixture(), day(2023, 1, 1), day(2023, 1, 31))
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Build(nil, day(2024, 5, 1), day(2024, 5, 31))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestBuild_InvalidRange(t *testing.T) {
	_, err := Build(fixture(), day(2024, 6, 1), day(2024, 5, 1))
	assert.ErrorIs(t, err, ledger.ErrInvalidDateRange)
}

func TestRow_Cells(t *testing.T) {
	r, err := Build(fixture(), day(2024, 5, 1), day(2024, 6, 30))
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"2024-06-01", "expense", "Bus", "Transport", "Hla", "0922222222", "KPay", "-2.50", "", "-2.50"},
		r.Rows[0].Cells())
	assert.Equal(t,
		[]string{"2024-05-01", "income", "Salary", "Income", "Aung", "0911111111", "KPay", "1000.00", "10.00", "990.00"},
		r.Rows[2].Cells())
}

func TestFileName(t *testing.T) {
	r, err := Build(fixture(), day(2024, 5, 1), day(2024, 5, 31))
	require.NoError(t, err)
	assert.Equal(t, "Kesi_Ledger_Report_20240501_20240531.pdf", FileName(r, "pdf"))
}

func TestCSVWriter(t *testing.T) {
	r, err := Build(fixture(), day(2024, 5, 1), day(2024, 5, 31))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(&buf).Write(context.Background(), r))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, "-505.00", records[1][9])
}

func TestPDFWriter(t *testing.T) {
	r, err := Build(fixture(), day(2024, 5, 1), day(2024, 6, 30))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewPDFWriter(&buf).Write(context.Background(), r))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFWriter_Fonts(t *testing.T) {
	pdf := fpdf.New("L", "mm", "A4", "")

	family, tr := NewPDFWriter(&bytes.Buffer{}).setupFont(pdf)
	assert.Equal(t, coreFont, family)
	assert.Equal(t, "Daw Hla", tr("Daw Hla"))

	w := NewPDFWriter(&bytes.Buffer{}, WithFont([]byte("ttf")))
	assert.Equal(t, []byte("ttf"), w.font)
}
