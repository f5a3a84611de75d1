package ledger

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthaguide/sms-ledger/internal/finance"
	"github.com/arthaguide/sms-ledger/internal/models"
)

// Snapshot is a frozen monthly summary of the ledger. It reads the
// transaction list but never mutates it.
type Snapshot struct {
	ID               string                       `bson:"_id" json:"id"`
	Year             int                          `bson:"year" json:"year"`
	Month            int                          `bson:"month" json:"month"`
	TotalIncome      float64                      `bson:"totalIncome" json:"totalIncome"`
	TotalExpenses    float64                      `bson:"totalExpenses" json:"totalExpenses"`
	Balance          float64                      `bson:"balance" json:"balance"`
	CategoryTotals   map[models.Category]float64  `bson:"categoryTotals" json:"categoryTotals"`
	HealthScore      int                          `bson:"healthScore" json:"healthScore"`
	TransactionCount int                          `bson:"transactionCount" json:"transactionCount"`
	ArchivedAt       int64                        `bson:"archivedAt" json:"archivedAt"`
}

// SnapshotSink stores snapshots.
type SnapshotSink interface {
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
}

// Archiver periodically freezes the current summary into a snapshot.
type Archiver struct {
	store *Store
	sink  SnapshotSink
	log   zerolog.Logger

	// Now is the snapshot timestamp source, overridable in tests.
	Now func() time.Time
}

// NewArchiver wires an archiver over a loaded store.
func NewArchiver(store *Store, sink SnapshotSink, log zerolog.Logger) *Archiver {
	return &Archiver{store: store, sink: sink, log: log, Now: time.Now}
}

// Run computes the summary for the current ledger and upserts this month's
// snapshot.
func (a *Archiver) Run(ctx context.Context) error {
	now := a.Now()
	txs := a.store.All()
	summary := finance.Summarize(txs)

	snap := &Snapshot{
		ID:               now.Format("2006-01"),
		Year:             now.Year(),
		Month:            int(now.Month()),
		TotalIncome:      summary.TotalIncome,
		TotalExpenses:    summary.TotalExpenses,
		Balance:          summary.Balance,
		CategoryTotals:   summary.CategoryTotals,
		HealthScore:      int(math.Round(finance.HealthScore(summary))),
		TransactionCount: len(txs),
		ArchivedAt:       now.Unix(),
	}

	if err := a.sink.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("archive month %s: %w", snap.ID, err)
	}
	a.log.Info().
		Str("month", snap.ID).
		Int("transactions", snap.TransactionCount).
		Int("healthScore", snap.HealthScore).
		Msg("monthly snapshot archived")
	return nil
}
