// Package ledger holds the authoritative in-session transaction list and its
// persistence. Mutations come only from explicit user-triggered operations,
// and every mutation is written through to the configured persister.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthaguide/sms-ledger/internal/models"
)

// ErrIndexOutOfRange is returned by RemoveAt for indexes outside the ledger.
// Callers can use it to tell a bad index apart from a persistence failure.
var ErrIndexOutOfRange = errors.New("index out of range")

// Persister round-trips the ordered transaction list to external storage
// under a fixed logical key.
type Persister interface {
	// Load returns the persisted list, or (nil, nil) when nothing was
	// persisted yet.
	Load(ctx context.Context) ([]models.Transaction, error)
	Save(ctx context.Context, txs []models.Transaction) error
}

// Store is the in-memory ledger. Newest entries sit at the front. The store
// is shared between request handlers and the snapshot archiver, so every
// access goes through the mutex.
type Store struct {
	persister Persister
	log       zerolog.Logger

	mu  sync.RWMutex
	txs []models.Transaction
}

// NewStore creates an unloaded store; call Load before use.
func NewStore(p Persister, log zerolog.Logger) *Store {
	return &Store{persister: p, log: log}
}

// Load pulls the persisted ledger into memory. Missing or unreadable
// persisted state is not an error: the store falls back to the seed set and
// only logs what happened. The seeds are not written back until the first
// mutation.
func (s *Store) Load(ctx context.Context) {
	txs, err := s.persister.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.log.Warn().Err(err).Msg("persisted ledger unreadable, using seed transactions")
		s.txs = SeedTransactions()
		return
	}
	if txs == nil {
		s.log.Info().Msg("no persisted ledger, using seed transactions")
		s.txs = SeedTransactions()
		return
	}
	s.txs = txs
}

// All returns a copy of the ledger, newest first.
func (s *Store) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Len returns the number of ledger entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txs)
}

// Add prepends a transaction and persists the new list.
func (s *Store) Add(ctx context.Context, tx models.Transaction) error {
	return s.AddBatch(ctx, []models.Transaction{tx})
}

// AddBatch prepends a batch at the head of the ledger, keeping the batch's
// own order, and persists once. A failed persist leaves the ledger untouched,
// so a batch is all-or-nothing.
func (s *Store) AddBatch(ctx context.Context, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]models.Transaction, 0, len(txs)+len(s.txs))
	next = append(next, txs...)
	next = append(next, s.txs...)
	if err := s.persister.Save(ctx, next); err != nil {
		return fmt.Errorf("persist after add: %w", err)
	}
	s.txs = next
	return nil
}

// RemoveAt deletes the entry at index i, preserving the relative order of
// everything else, and persists the new list.
func (s *Store) RemoveAt(ctx context.Context, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.txs) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(s.txs))
	}
	next := make([]models.Transaction, 0, len(s.txs)-1)
	next = append(next, s.txs[:i]...)
	next = append(next, s.txs[i+1:]...)
	if err := s.persister.Save(ctx, next); err != nil {
		return fmt.Errorf("persist after remove: %w", err)
	}
	s.txs = next
	return nil
}

// ReplaceAll swaps the whole ledger and persists it.
func (s *Store) ReplaceAll(ctx context.Context, txs []models.Transaction) error {
	next := make([]models.Transaction, len(txs))
	copy(next, txs)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persister.Save(ctx, next); err != nil {
		return fmt.Errorf("persist after replace: %w", err)
	}
	s.txs = next
	return nil
}
