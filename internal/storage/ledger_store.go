package storage

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Veraticus/kesi-ledger/internal/common"
	"github.com/Veraticus/kesi-ledger/internal/ledger"
	"github.com/Veraticus/kesi-ledger/internal/model"
	"github.com/Veraticus/kesi-ledger/internal/service"
)

// corruptSuffix prefixes the timestamped keys where unreadable transactions
// records are preserved before the store falls back to an empty ledger.
const corruptSuffix = ".corrupt"

// corruptKey names the backup for a record found unreadable at t.
func corruptKey(t time.Time) string {
	return TransactionsKey + corruptSuffix + "." + t.UTC().Format("20060102T150405.000000000Z")
}

// LedgerStore persists the transaction list and the fee rate. Reads never
// fail: missing or unreadable records fall back to an empty ledger or the
// default rate, and the failure is logged.
type LedgerStore struct {
	kv          service.KeyValueStore
	logger      *slog.Logger
	now         func() time.Time
	subscribers map[int]func(model.FeeRate)
	nextSubID   int
	mu          sync.Mutex
}

// NewLedgerStore wraps kv. A nil logger uses slog.Default().
func NewLedgerStore(kv service.KeyValueStore, logger *slog.Logger) *LedgerStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerStore{
		kv:          kv,
		logger:      logger,
		now:         time.Now,
		subscribers: make(map[int]func(model.FeeRate)),
	}
}

// LoadTransactions returns the stored transactions, or none when the record
// is missing or cannot be read.
func (s *LedgerStore) LoadTransactions(ctx context.Context) []model.Transaction {
	raw, err := s.kv.Get(ctx, TransactionsKey)
	if errors.Is(err, common.ErrNotFound) {
		return []model.Transaction{}
	}
	if err != nil {
		common.LogError(s.logger, err, "Error loading transactions", common.Fields{"key": TransactionsKey})
		return []model.Transaction{}
	}

	txns, err := DecodeTransactions([]byte(raw))
	if err != nil {
		common.LogError(s.logger, err, "Error decoding transactions", common.Fields{"key": TransactionsKey})
		backupKey := corruptKey(s.now())
		if backupErr := s.kv.Set(ctx, backupKey, raw); backupErr != nil {
			common.LogError(s.logger, backupErr, "Error preserving unreadable transactions", common.Fields{"key": backupKey})
		}
		return []model.Transaction{}
	}
	return txns
}

// SaveTransactions replaces the stored transaction list.
func (s *LedgerStore) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	data, err := EncodeTransactions(txns)
	if err == nil {
		err = s.kv.Set(ctx, TransactionsKey, string(data))
	}
	if err != nil {
		common.LogError(s.logger, err, "Error saving transactions", common.Fields{"key": TransactionsKey, "count": len(txns)})
		return common.NewUserError("Could not save transactions", err)
	}
	return nil
}

// LoadLedger builds a ledger from the stored transactions.
func (s *LedgerStore) LoadLedger(ctx context.Context, opts ...ledger.Option) *ledger.Ledger {
	return ledger.New(s.LoadTransactions(ctx), opts...)
}

// SaveLedger persists every transaction in l.
func (s *LedgerStore) SaveLedger(ctx context.Context, l *ledger.Ledger) error {
	return s.SaveTransactions(ctx, l.Transactions())
}

// LoadFeeRate returns the stored rate, or model.DefaultFeeRate when it is
// missing or unreadable.
func (s *LedgerStore) LoadFeeRate(ctx context.Context) model.FeeRate {
	raw, err := s.kv.Get(ctx, FeeRateKey)
	if errors.Is(err, common.ErrNotFound) {
		return model.DefaultFeeRate
	}
	if err != nil {
		common.LogError(s.logger, err, "Error loading service fee rate", common.Fields{"key": FeeRateKey})
		return model.DefaultFeeRate
	}

	rate, err := DecodeFeeRate(raw)
	if err != nil {
		common.LogError(s.logger, err, "Error decoding service fee rate", common.Fields{"key": FeeRateKey, "value": raw})
		return model.DefaultFeeRate
	}
	return rate
}

// SaveFeeRate stores rate and notifies subscribers.
func (s *LedgerStore) SaveFeeRate(ctx context.Context, rate model.FeeRate) error {
	if err := s.kv.Set(ctx, FeeRateKey, EncodeFeeRate(rate)); err != nil {
		common.LogError(s.logger, err, "Error saving service fee rate", common.Fields{"key": FeeRateKey})
		return common.NewUserError("Could not save the service fee rate", err)
	}

	s.mu.Lock()
	subs := make([]func(model.FeeRate), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(rate)
	}
	return nil
}

// SetFeeRate parses user input and saves it. Invalid input leaves the stored
// rate untouched; the returned rate is always the one now in effect.
func (s *LedgerStore) SetFeeRate(ctx context.Context, input string) (model.FeeRate, error) {
	rate, err := model.ParseFeeRate(input)
	if err != nil {
		return s.LoadFeeRate(ctx), common.NewUserError("Please enter a valid non-negative number for the fee rate.", err)
	}
	if err := s.SaveFeeRate(ctx, rate); err != nil {
		return s.LoadFeeRate(ctx), err
	}
	return rate, nil
}

// OnFeeRateChange registers fn to run after every successful SaveFeeRate.
// The returned function removes the subscription.
func (s *LedgerStore) OnFeeRateChange(fn func(model.FeeRate)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}
