package ledger

import (
	"math/rand"
	"testing"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_Empty(t *testing.T) {
	for _, txns := range [][]model.Transaction{nil, {}} {
		totals := Aggregate(txns)
		for name, v := range map[string]decimal.Decimal{
			"GrossIncome":       totals.GrossIncome,
			"GrossExpenses":     totals.GrossExpenses,
			"FeesOnIncome":      totals.FeesOnIncome,
			"FeesOnExpenses":    totals.FeesOnExpenses,
			"NetIncome":         totals.NetIncome,
			"EffectiveExpenses": totals.EffectiveExpenses,
			"Balance":           totals.Balance,
		} {
			assert.True(t, v.IsZero(), "%s should be zero", name)
		}
	}
}

func TestAggregate_IncomeAndExpenseWithFees(t *testing.T) {
	l := New(nil, WithIDGenerator(sequentialIDs()))
	rate := model.MustFeeRate("1")

	_, err := l.Add(draft(t, model.TypeIncome, "1000", day(2024, 5, 1)), rate)
	assert.NoError(t, err)
	_, err = l.Add(draft(t, model.TypeExpense, "500", day(2024, 5, 2)), rate)
	assert.NoError(t, err)

	totals := l.Totals()
	assertDecimal(t, "1000", totals.GrossIncome, "GrossIncome")
	assertDecimal(t, "500", totals.GrossExpenses, "GrossExpenses")
	assertDecimal(t, "10", totals.FeesOnIncome, "FeesOnIncome")
	assertDecimal(t, "5", totals.FeesOnExpenses, "FeesOnExpenses")
	assertDecimal(t, "990", totals.NetIncome, "NetIncome")
	assertDecimal(t, "505", totals.EffectiveExpenses, "EffectiveExpenses")
	assertDecimal(t, "485", totals.Balance, "Balance")
	assert.Equal(t, 1, totals.IncomeCount)
	assert.Equal(t, 1, totals.ExpenseCount)
}

func TestAggregate_MatchesEffectiveAmounts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	rates := []model.FeeRate{model.MustFeeRate("0"), model.MustFeeRate("1"), model.MustFeeRate("2.5")}

	for round := 0; round < 50; round++ {
		l := New(nil, WithIDGenerator(sequentialIDs()))
		n := rng.Intn(20)
		for i := 0; i < n; i++ {
			typ := model.TypeIncome
			if rng.Intn(2) == 0 {
				typ = model.TypeExpense
			}
			amount := decimal.New(int64(rng.Intn(1_000_000)+1), -2)
			d := draft(t, typ, amount.String(), day(2024, time.Month(rng.Intn(12)+1), rng.Intn(28)+1))
			_, err := l.Add(d, rates[rng.Intn(len(rates))])
			assert.NoError(t, err)
		}

		income, expense := decimal.Zero, decimal.Zero
		for _, txn := range l.Transactions() {
			if txn.Type == model.TypeIncome {
				income = income.Add(EffectiveAmount(txn))
			} else {
				expense = expense.Add(EffectiveAmount(txn))
			}
		}

		totals := l.Totals()
		assert.True(t, totals.Balance.Equal(income.Sub(expense)),
			"round %d: balance %s != %s", round, totals.Balance, income.Sub(expense))
		assert.True(t, totals.NetIncome.Equal(income))
		assert.True(t, totals.EffectiveExpenses.Equal(expense))
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Type: model.TypeIncome, Amount: dec(t, "300"), ServiceFee: model.FeeOf(dec(t, "3")), Date: day(2024, 1, 1)},
		{ID: "b", Type: model.TypeExpense, Amount: dec(t, "120.50"), ServiceFee: model.NoFee(), Date: day(2024, 1, 3)},
		{ID: "c", Type: model.TypeExpense, Amount: dec(t, "80"), ServiceFee: model.FeeOf(dec(t, "0.80")), Date: day(2024, 1, 2)},
	}
	reversed := []model.Transaction{txns[2], txns[1], txns[0]}

	assert.True(t, Aggregate(txns).Balance.Equal(Aggregate(reversed).Balance))
	assertDecimal(t, "95.70", Aggregate(txns).Balance, "Balance")
}
