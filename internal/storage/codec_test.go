package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:            "b7e1",
			Date:          time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
			Description:   "Groceries",
			Amount:        decimal.RequireFromString("500"),
			Type:          model.TypeExpense,
			Category:      "Food",
			Name:          "Ko Ko",
			PhoneNumber:   "09 987 654 321",
			PaymentMethod: model.MethodWaveMoney,
			ServiceFee:    model.FeeOf(decimal.RequireFromString("5")),
		},
		{
			ID:            "a1c9",
			Date:          time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Description:   "Salary",
			Amount:        decimal.RequireFromString("33.33"),
			Type:          model.TypeIncome,
			Category:      "Income",
			Name:          "Aung Aung",
			PhoneNumber:   "+959123456",
			PaymentMethod: model.MethodKPay,
			ServiceFee:    model.NoFee(),
		},
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	original := sampleTransactions()

	data, err := EncodeTransactions(original)
	require.NoError(t, err)

	decoded, err := DecodeTransactions(data)
	require.NoError(t, err)
	require.Len(t, decoded, len(original))

	for i := range original {
		want, got := original[i], decoded[i]
		assert.Equal(t, want.ID, got.ID)
		assert.True(t, want.Day().Equal(got.Day()), "date %d", i)
		assert.True(t, want.Amount.Equal(got.Amount), "amount %d", i)
		assert.True(t, want.ServiceFee.Equal(got.ServiceFee), "fee %d", i)
		assert.Equal(t, want.Description, got.Description)
		assert.Equal(t, want.Type, got.Type)
		assert.Equal(t, want.Category, got.Category)
		assert.Equal(t, want.Name, got.Name)
		assert.Equal(t, want.PhoneNumber, got.PhoneNumber)
		assert.Equal(t, want.PaymentMethod, got.PaymentMethod)
	}
}

func TestEncodeTransactions_Layout(t *testing.T) {
	data, err := EncodeTransactions(sampleTransactions())
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "2024-05-02", raw[0]["date"])
	assert.Equal(t, float64(500), raw[0]["amount"], "amount is a JSON number")
	assert.Equal(t, float64(5), raw[0]["serviceFee"])
	assert.NotContains(t, raw[1], "serviceFee", "absent fee is omitted")
	assert.Contains(t, raw[1], "phoneNumber")
}

func TestDecodeTransactions_BrowserTimestamps(t *testing.T) {
	data := []byte(`[{"id":"x","date":"2024-05-01T12:00:00.000Z","description":"Tea","amount":1.5,
		"type":"expense","category":"Food","name":"Su","phoneNumber":"0912345678","paymentMethod":"KPay"}]`)

	txns, err := DecodeTransactions(data)
	require.NoError(t, err)
	require.Len(t, txns, 1)

	want := model.DateOf(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).In(time.Local))
	assert.Equal(t, want, txns[0].Date)
	assert.False(t, txns[0].ServiceFee.Present())
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("1.5")))
}

func TestDecodeTransactions_Corrupted(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{{{`},
		{name: "not an array", data: `{"id":"x"}`},
		{name: "bad date", data: `[{"id":"x","date":"yesterday","amount":1,"type":"income","paymentMethod":"KPay"}]`},
		{name: "bad type", data: `[{"id":"x","date":"2024-01-01","amount":1,"type":"gift","paymentMethod":"KPay"}]`},
		{name: "bad method", data: `[{"id":"x","date":"2024-01-01","amount":1,"type":"income","paymentMethod":"Cash"}]`},
		{name: "non-positive amount", data: `[{"id":"x","date":"2024-01-01","amount":0,"type":"income","paymentMethod":"KPay"}]`},
		{name: "negative fee", data: `[{"id":"x","date":"2024-01-01","amount":5,"serviceFee":-1,"type":"income","paymentMethod":"KPay"}]`},
		{name: "missing id", data: `[{"date":"2024-01-01","amount":5,"type":"income","paymentMethod":"KPay"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTransactions([]byte(tt.data))
			assert.ErrorIs(t, err, common.ErrCorruptedRecord)
		})
	}
}

func TestDecodeFeeRate(t *testing.T) {
	rate, err := DecodeFeeRate("2.5")
	require.NoError(t, err)
	assert.Equal(t, "2.5", EncodeFeeRate(rate))

	_, err = DecodeFeeRate("-3")
	assert.ErrorIs(t, err, common.ErrCorruptedRecord)
}
