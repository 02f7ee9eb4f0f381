package ledger

import (
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
)

// Totals are the balance figures derived from a set of transactions.
type Totals struct {
	GrossIncome       decimal.Decimal
	GrossExpenses     decimal.Decimal
	FeesOnIncome      decimal.Decimal
	FeesOnExpenses    decimal.Decimal
	NetIncome         decimal.Decimal
	EffectiveExpenses decimal.Decimal
	Balance           decimal.Decimal
	IncomeCount       int
	ExpenseCount      int
}

// Aggregate sums txns in a single pass. An empty slice yields all zeros.
func Aggregate(txns []model.Transaction) Totals {
	totals := Totals{
		GrossIncome:    decimal.Zero,
		GrossExpenses:  decimal.Zero,
		FeesOnIncome:   decimal.Zero,
		FeesOnExpenses: decimal.Zero,
	}

	for _, t := range txns {
		switch t.Type {
		case model.TypeIncome:
			totals.GrossIncome = totals.GrossIncome.Add(t.Amount)
			totals.FeesOnIncome = totals.FeesOnIncome.Add(t.ServiceFee.Amount())
			totals.IncomeCount++
		case model.TypeExpense:
			totals.GrossExpenses = totals.GrossExpenses.Add(t.Amount)
			totals.FeesOnExpenses = totals.FeesOnExpenses.Add(t.ServiceFee.Amount())
			totals.ExpenseCount++
		}
	}

	totals.NetIncome = totals.GrossIncome.Sub(totals.FeesOnIncome)
	totals.EffectiveExpenses = totals.GrossExpenses.Add(totals.FeesOnExpenses)
	totals.Balance = totals.NetIncome.Sub(totals.EffectiveExpenses)

	return totals
}
