package ledger

import (
	"testing"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_AddKeepsDateDescending(t *testing.T) {
	l := New(nil, WithIDGenerator(sequentialIDs()))
	rate := model.MustFeeRate("1")

	dates := []int{5, 1, 9, 3, 9, 7}
	for _, d := range dates {
		_, err := l.Add(draft(t, model.TypeExpense, "10", day(2024, 3, d)), rate)
		require.NoError(t, err)

		txns := l.Transactions()
		for i := 1; i < len(txns); i++ {
			assert.False(t, txns[i].Date.After(txns[i-1].Date),
				"transaction %d (%s) is after %d (%s)", i, txns[i].Date, i-1, txns[i-1].Date)
		}
	}
	assert.Equal(t, len(dates), l.Len())
}

func TestLedger_AddPutsNewestFirstOnSameDate(t *testing.T) {
	l := New(nil, WithIDGenerator(sequentialIDs()))
	rate := model.MustFeeRate("0")

	first, err := l.Add(draft(t, model.TypeIncome, "1", day(2024, 3, 1)), rate)
	require.NoError(t, err)
	second, err := l.Add(draft(t, model.TypeIncome, "2", day(2024, 3, 1)), rate)
	require.NoError(t, err)

	txns := l.Transactions()
	assert.Equal(t, second.ID, txns[0].ID)
	assert.Equal(t, first.ID, txns[1].ID)
}

func TestLedger_AddSnapshotsFee(t *testing.T) {
	l := New(nil, WithIDGenerator(sequentialIDs()))

	txn, err := l.Add(draft(t, model.TypeIncome, "1000", day(2024, 5, 1)), model.MustFeeRate("1"))
	require.NoError(t, err)
	assertDecimal(t, "10", txn.ServiceFee.Amount(), "fee")

	_, err = l.Add(draft(t, model.TypeIncome, "1000", day(2024, 5, 2)), model.MustFeeRate("5"))
	require.NoError(t, err)

	for _, stored := range l.Transactions() {
		if stored.ID == txn.ID {
			assertDecimal(t, "10", stored.ServiceFee.Amount(), "snapshotted fee")
		}
	}
}

func TestLedger_AddAssignsFieldsAndStripsTime(t *testing.T) {
	l := New(nil, WithIDGenerator(sequentialIDs()))
	d := draft(t, model.TypeExpense, "250", day(2024, 5, 1).Add(15*time.Hour))

	txn, err := l.Add(d, model.MustFeeRate("0"))
	require.NoError(t, err)

	assert.Equal(t, "txn-1", txn.ID)
	assert.Equal(t, day(2024, 5, 1), txn.Date)
	assert.Equal(t, d.Description, txn.Description)
	assert.Equal(t, d.PaymentMethod, txn.PaymentMethod)
	assert.False(t, txn.ServiceFee.Present())
}

func TestLedger_AddRejectsInvalidDraft(t *testing.T) {
	l := New(nil)
	d := draft(t, model.TypeExpense, "10", day(2024, 1, 1))
	d.PhoneNumber = "nope"

	_, err := l.Add(d, model.DefaultFeeRate)
	require.ErrorIs(t, err, model.ErrInvalidDraft)
	assert.Zero(t, l.Len(), "no partial transaction is recorded")
}

func TestNew_SortsStoredTransactions(t *testing.T) {
	stored := []model.Transaction{
		{ID: "old", Date: day(2023, 12, 31)},
		{ID: "new", Date: day(2024, 2, 1)},
		{ID: "mid", Date: day(2024, 1, 15)},
	}

	l := New(stored)
	var ids []string
	for _, txn := range l.Transactions() {
		ids = append(ids, txn.ID)
	}
	assert.Equal(t, []string{"new", "mid", "old"}, ids)
	assert.Equal(t, "old", stored[0].ID, "input slice is not reordered")
}

func TestLedger_Merge(t *testing.T) {
	l := New([]model.Transaction{{ID: "a", Date: day(2024, 1, 1)}})

	added, err := l.Merge([]model.Transaction{
		{ID: "a", Date: day(2024, 1, 1)},
		{ID: "b", Date: day(2024, 1, 2), ServiceFee: model.FeeOf(dec(t, "3"))},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, "b", l.Transactions()[0].ID)
	assertDecimal(t, "3", l.Transactions()[0].ServiceFee.Amount(), "merged fee")

	_, err = l.Merge([]model.Transaction{{Date: day(2024, 1, 3)}})
	assert.ErrorIs(t, err, model.ErrInvalidDraft)
}
