// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Model errors.
var (
	ErrInvalidDraft           = errors.New("invalid transaction")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrInvalidFeeRate         = errors.New("invalid fee rate")
)

// TransactionType indicates whether money came in or went out.
type TransactionType string

// Transaction type constants.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType converts user input into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// PaymentMethod is the mobile wallet used for a transaction.
type PaymentMethod string

// Payment method constants.
const (
	MethodKPay      PaymentMethod = "KPay"
	MethodWaveMoney PaymentMethod = "WaveMoney"
)

// PaymentMethods lists every supported payment method in display order.
var PaymentMethods = []PaymentMethod{MethodKPay, MethodWaveMoney}

// ParsePaymentMethod converts user input into a PaymentMethod, ignoring case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, m := range PaymentMethods {
		if strings.EqualFold(s, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, s)
}

// Valid reports whether m is one of the supported payment methods.
func (m PaymentMethod) Valid() bool {
	return m == MethodKPay || m == MethodWaveMoney
}

// Transaction is a recorded income or expense. Transactions are never edited
// after creation; ServiceFee is the fee snapshot taken when it was recorded.
type Transaction struct {
	Date          time.Time
	Amount        decimal.Decimal
	ServiceFee    ServiceFee
	ID            string
	Description   string
	Type          TransactionType
	Category      string
	Name          string
	PhoneNumber   string
	PaymentMethod PaymentMethod
}

// Day returns the calendar date of the transaction.
func (t Transaction) Day() time.Time {
	return DateOf(t.Date)
}

// DateOf strips the time of day from t, keeping its calendar date in t's
// own location, and returns midnight UTC of that date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
