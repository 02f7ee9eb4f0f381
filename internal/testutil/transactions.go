// Package testutil provides fixtures shared by package tests.
//
// Example:
//
//	salary := testutil.NewTransaction("salary").
//		Income("1000").
//		On(2024, time.May, 1).
//		WithFee("10").
//		Build()
package testutil

import (
	"time"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// TransactionBuilder constructs transactions with plausible defaults.
type TransactionBuilder struct {
	txn model.Transaction
}

// NewTransaction starts a KPay expense of 100 dated 2024-05-01 with no fee.
func NewTransaction(id string) *TransactionBuilder {
	return &TransactionBuilder{txn: model.Transaction{
		ID:            id,
		Date:          time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
		Description:   "Test " + id,
		Amount:        decimal.NewFromInt(100),
		Type:          model.TypeExpense,
		Category:      "General",
		Name:          "Daw Hla",
		PhoneNumber:   "0912345678",
		PaymentMethod: model.MethodKPay,
		ServiceFee:    model.NoFee(),
	}}
}

// Income makes the transaction income of amount.
func (b *TransactionBuilder) Income(amount string) *TransactionBuilder {
	b.txn.Type = model.TypeIncome
	b.txn.Amount = decimal.RequireFromString(amount)
	return b
}

// Expense makes the transaction an expense of amount.
func (b *TransactionBuilder) Expense(amount string) *TransactionBuilder {
	b.txn.Type = model.TypeExpense
	b.txn.Amount = decimal.RequireFromString(amount)
	return b
}

// On sets the calendar date.
func (b *TransactionBuilder) On(year int, month time.Month, day int) *TransactionBuilder {
	b.txn.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

// WithFee records a service fee.
func (b *TransactionBuilder) WithFee(fee string) *TransactionBuilder {
	b.txn.ServiceFee = model.FeeOf(decimal.RequireFromString(fee))
	return b
}

// Described sets description and category.
func (b *TransactionBuilder) Described(description, category string) *TransactionBuilder {
	b.txn.Description = description
	b.txn.Category = category
	return b
}

// Via sets the payment method.
func (b *TransactionBuilder) Via(method model.PaymentMethod) *TransactionBuilder {
	b.txn.PaymentMethod = method
	return b
}

// Build returns the transaction.
func (b *TransactionBuilder) Build() model.Transaction {
	return b.txn
}
