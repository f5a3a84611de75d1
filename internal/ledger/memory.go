package ledger

import (
	"context"

	"github.com/arthaguide/sms-ledger/internal/models"
)

// InMemoryPersister keeps the ledger in process memory. Used when no MongoDB
// is configured and by tests; contents vanish with the process.
type InMemoryPersister struct {
	txs []models.Transaction
}

// NewInMemoryPersister returns an empty in-memory persister.
func NewInMemoryPersister() *InMemoryPersister {
	return &InMemoryPersister{}
}

// Load returns the stored list, or (nil, nil) before the first Save.
func (p *InMemoryPersister) Load(ctx context.Context) ([]models.Transaction, error) {
	if p.txs == nil {
		return nil, nil
	}
	out := make([]models.Transaction, len(p.txs))
	copy(out, p.txs)
	return out, nil
}

// Save replaces the stored list.
func (p *InMemoryPersister) Save(ctx context.Context, txs []models.Transaction) error {
	p.txs = make([]models.Transaction, len(txs))
	copy(p.txs, txs)
	return nil
}
