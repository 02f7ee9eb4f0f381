package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/Veraticus/kesi-ledger/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderTransactions(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, RenderTransactions(nil), "No transactions recorded yet.")
	})

	t.Run("rows", func(t *testing.T) {
		txns := []model.Transaction{
			testutil.NewTransaction("a").Expense("500").On(2024, time.May, 3).WithFee("5").
				Described("Rice", "Food").Via(model.MethodWaveMoney).Build(),
			testutil.NewTransaction("b").Income("20").Described("Gift", "Other").Build(),
		}

		out := RenderTransactions(txns)
		lines := strings.Split(out, "\n")
		assert.Len(t, lines, 3)
		assert.Contains(t, lines[1], "2024-05-03")
		assert.Contains(t, lines[1], "500.00")
		assert.Contains(t, lines[1], "5.00")
		assert.Contains(t, lines[2], "Gift")
	})
}

func TestJoinCells(t *testing.T) {
	got := joinCells([]string{"a", "b", "1.00", "2"}, []int{3, 1, 5, 3})
	assert.Equal(t, "a    b   1.00    2", got)
}

func TestRenderTotals(t *testing.T) {
	out := RenderTotals(ledger.Totals{
		NetIncome:         decimal.RequireFromString("990"),
		EffectiveExpenses: decimal.RequireFromString("505"),
		Balance:           decimal.RequireFromString("485"),
	})

	assert.Contains(t, out, "Balance Summary")
	assert.Contains(t, out, "990.00")
	assert.Contains(t, out, "505.00")
	assert.Contains(t, out, "485.00")
}
