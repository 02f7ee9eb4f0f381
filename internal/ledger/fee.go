package ledger

import (
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeFee returns amount × rate / 100 rounded to two places, half away from
// zero (half-up for the positive amounts a ledger accepts). A result of zero
// is reported as an absent fee.
func ComputeFee(amount decimal.Decimal, rate model.FeeRate) model.ServiceFee {
	fee := amount.Mul(rate.Percent()).Div(hundred).Round(2)
	return model.FeeOf(fee)
}

// EffectiveAmount is what an income transaction nets or an expense costs once
// its fee is applied.
func EffectiveAmount(t model.Transaction) decimal.Decimal {
	if t.Type == model.TypeIncome {
		return t.Amount.Sub(t.ServiceFee.Amount())
	}
	return t.Amount.Add(t.ServiceFee.Amount())
}
