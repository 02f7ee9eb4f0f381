package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Record keys.
const (
	TransactionsKey = "kesiLedgerTransactions"
	FeeRateKey      = "kesiLedgerServiceFeeRate"
)

// transactionRecord is the stored JSON shape of a transaction.
type transactionRecord struct {
	ServiceFee    *json.Number `json:"serviceFee,omitempty"`
	ID            string       `json:"id"`
	Date          string       `json:"date"`
	Description   string       `json:"description"`
	Amount        json.Number  `json:"amount"`
	Type          string       `json:"type"`
	Category      string       `json:"category"`
	Name          string       `json:"name"`
	PhoneNumber   string       `json:"phoneNumber"`
	PaymentMethod string       `json:"paymentMethod"`
}

// EncodeTransactions serialises txns as a JSON array. Dates are written as
// ISO-8601 calendar dates; an absent fee is omitted.
func EncodeTransactions(txns []model.Transaction) ([]byte, error) {
	records := make([]transactionRecord, 0, len(txns))
	for _, t := range txns {
		rec := transactionRecord{
			ID:            t.ID,
			Date:          t.Day().Format(time.DateOnly),
			Description:   t.Description,
			Amount:        json.Number(t.Amount.String()),
			Type:          string(t.Type),
			Category:      t.Category,
			Name:          t.Name,
			PhoneNumber:   t.PhoneNumber,
			PaymentMethod: string(t.PaymentMethod),
		}
		if t.ServiceFee.Present() {
			fee := json.Number(t.ServiceFee.Amount().String())
			rec.ServiceFee = &fee
		}
		records = append(records, rec)
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transactions: %w", err)
	}
	return data, nil
}

// DecodeTransactions parses a JSON array written by EncodeTransactions. Full
// ISO-8601 timestamps are accepted as well and reduced to their local
// calendar date.
func DecodeTransactions(data []byte) ([]model.Transaction, error) {
	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrCorruptedRecord, err)
	}

	txns := make([]model.Transaction, 0, len(records))
	for i, rec := range records {
		txn, err := rec.toModel()
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", common.ErrCorruptedRecord, i, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r transactionRecord) toModel() (model.Transaction, error) {
	if strings.TrimSpace(r.ID) == "" {
		return model.Transaction{}, fmt.Errorf("missing id")
	}

	date, err := parseStoredDate(r.Date)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}
	if !amount.IsPositive() {
		return model.Transaction{}, fmt.Errorf("amount %s is not positive", amount)
	}

	typ, err := model.ParseTransactionType(r.Type)
	if err != nil {
		return model.Transaction{}, err
	}
	method, err := model.ParsePaymentMethod(r.PaymentMethod)
	if err != nil {
		return model.Transaction{}, err
	}

	fee := model.NoFee()
	if r.ServiceFee != nil {
		d, feeErr := decimal.NewFromString(r.ServiceFee.String())
		if feeErr != nil {
			return model.Transaction{}, fmt.Errorf("invalid serviceFee %q: %w", *r.ServiceFee, feeErr)
		}
		if d.IsNegative() {
			return model.Transaction{}, fmt.Errorf("serviceFee %s is negative", d)
		}
		fee = model.FeeOf(d)
	}

	return model.Transaction{
		ID:            r.ID,
		Date:          date,
		Description:   r.Description,
		Amount:        amount,
		Type:          typ,
		Category:      r.Category,
		Name:          r.Name,
		PhoneNumber:   r.PhoneNumber,
		PaymentMethod: method,
		ServiceFee:    fee,
	}, nil
}

func parseStoredDate(s string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, s); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return model.DateOf(ts.In(time.Local)), nil
}

// EncodeFeeRate serialises a rate as a decimal string.
func EncodeFeeRate(rate model.FeeRate) string {
	return rate.String()
}

// DecodeFeeRate parses a stored rate.
func DecodeFeeRate(s string) (model.FeeRate, error) {
	rate, err := model.ParseFeeRate(s)
	if err != nil {
		return model.FeeRate{}, fmt.Errorf("%w: %w", common.ErrCorruptedRecord, err)
	}
	return rate, nil
}
