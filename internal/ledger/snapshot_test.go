package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/arthaguide/sms-ledger/internal/ledger"
)

type captureSink struct {
	snap *ledger.Snapshot
}

func (s *captureSink) SaveSnapshot(ctx context.Context, snap *ledger.Snapshot) error {
	s.snap = snap
	return nil
}

func TestArchiverRun(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore(ledger.NewInMemoryPersister(), zerolog.Nop())
	store.Load(ctx) // seeds: income 45000, expenses 25200

	sink := &captureSink{}
	archiver := ledger.NewArchiver(store, sink, zerolog.Nop())
	archiver.Now = func() time.Time {
		return time.Date(2025, 11, 30, 23, 0, 0, 0, time.UTC)
	}

	assert.NoError(t, archiver.Run(ctx))
	if assert.NotNil(t, sink.snap) {
		assert.Equal(t, "2025-11", sink.snap.ID)
		assert.Equal(t, 2025, sink.snap.Year)
		assert.Equal(t, 11, sink.snap.Month)
		assert.Equal(t, 45000.0, sink.snap.TotalIncome)
		assert.Equal(t, 25200.0, sink.snap.TotalExpenses)
		assert.Equal(t, 19800.0, sink.snap.Balance)
		assert.Equal(t, 44, sink.snap.HealthScore) // round(19800/45000*100)
		assert.Equal(t, 7, sink.snap.TransactionCount)
	}
}
