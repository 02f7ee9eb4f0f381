package ledger

import (
	"testing"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeFee(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		rate    string
		want    string
		present bool
	}{
		{name: "one percent of 100", amount: "100", rate: "1", want: "1.00", present: true},
		{name: "rounds down below half", amount: "33.33", rate: "2.5", want: "0.83", present: true},
		{name: "half rounds up", amount: "0.5", rate: "1", want: "0.01", present: true},
		{name: "just under half drops to zero", amount: "0.49", rate: "1", present: false},
		{name: "zero rate is absent", amount: "1000", rate: "0", present: false},
		{name: "large amount", amount: "1250000", rate: "1.5", want: "18750.00", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := ComputeFee(dec(t, tt.amount), model.MustFeeRate(tt.rate))
			assert.Equal(t, tt.present, fee.Present())
			if tt.present {
				assertDecimal(t, tt.want, fee.Amount(), "fee")
			} else {
				assert.True(t, fee.Amount().IsZero())
			}
		})
	}
}

func TestComputeFee_ZeroRateNeverPresent(t *testing.T) {
	for _, amount := range []string{"0.01", "1", "99.99", "1000000"} {
		fee := ComputeFee(dec(t, amount), model.MustFeeRate("0"))
		assert.False(t, fee.Present(), "amount %s", amount)
	}
}

func TestEffectiveAmount(t *testing.T) {
	income := model.Transaction{Type: model.TypeIncome, Amount: dec(t, "1000"), ServiceFee: model.FeeOf(dec(t, "10"))}
	expense := model.Transaction{Type: model.TypeExpense, Amount: dec(t, "500"), ServiceFee: model.FeeOf(dec(t, "5"))}
	noFee := model.Transaction{Type: model.TypeExpense, Amount: dec(t, "42"), ServiceFee: model.NoFee()}

	assertDecimal(t, "990", EffectiveAmount(income), "income")
	assertDecimal(t, "505", EffectiveAmount(expense), "expense")
	assertDecimal(t, "42", EffectiveAmount(noFee), "no fee")
}
