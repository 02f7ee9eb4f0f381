package ledger

import (
	"fmt"
	"sort"

	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/google/uuid"
)

// Ledger is the ordered collection of recorded transactions, most recent
// date first.
type Ledger struct {
	newID        func() string
	transactions []model.Transaction
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithIDGenerator replaces the uuid generator used for new transactions.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		l.newID = fn
	}
}

// New builds a ledger from previously stored transactions.
func New(txns []model.Transaction, opts ...Option) *Ledger {
	l := &Ledger{
		transactions: append([]model.Transaction(nil), txns...),
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	sortByDateDesc(l.transactions)
	return l
}

// Add validates draft, snapshots its service fee at rate and records it.
// Nothing is recorded when the draft is invalid.
func (l *Ledger) Add(draft model.Draft, rate model.FeeRate) (model.Transaction, error) {
	if err := draft.Validate(); err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		ID:            l.newID(),
		Date:          model.DateOf(draft.Date),
		Description:   draft.Description,
		Amount:        draft.Amount,
		Type:          draft.Type,
		Category:      draft.Category,
		Name:          draft.Name,
		PhoneNumber:   draft.PhoneNumber,
		PaymentMethod: draft.PaymentMethod,
		ServiceFee:    ComputeFee(draft.Amount, rate),
	}

	l.insert(txn)
	return txn, nil
}

// Merge adds already-recorded transactions, keeping their fee snapshots.
// Transactions whose ID is already present are skipped. It returns how many
// were added.
func (l *Ledger) Merge(txns []model.Transaction) (int, error) {
	seen := make(map[string]struct{}, len(l.transactions))
	for _, t := range l.transactions {
		seen[t.ID] = struct{}{}
	}

	added := 0
	for i, t := range txns {
		if t.ID == "" {
			return added, fmt.Errorf("%w: record %d has no id", model.ErrInvalidDraft, i)
		}
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		t.Date = model.DateOf(t.Date)
		l.insert(t)
		added++
	}
	return added, nil
}

// Transactions returns a copy of the ledger in canonical order.
func (l *Ledger) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), l.transactions...)
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Totals aggregates the whole ledger.
func (l *Ledger) Totals() Totals {
	return Aggregate(l.transactions)
}

// insert places txn ahead of existing entries and re-sorts, so it lands
// first among transactions sharing its date.
func (l *Ledger) insert(txn model.Transaction) {
	l.transactions = append([]model.Transaction{txn}, l.transactions...)
	sortByDateDesc(l.transactions)
}

func sortByDateDesc(txns []model.Transaction) {
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Day().After(txns[j].Day())
	})
}
