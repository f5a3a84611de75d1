package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arthaguide/sms-ledger/internal/models"
)

// Mongo persists the ledger as a single document keyed by a fixed logical
// name, plus monthly snapshots in a second collection. Last writer wins;
// there is no merge.
type Mongo struct {
	client    *mongo.Client
	ledger    *mongo.Collection
	snapshots *mongo.Collection
	key       string
}

type ledgerDocument struct {
	ID           string               `bson:"_id"`
	Transactions []models.Transaction `bson:"transactions"`
	UpdatedAt    int64                `bson:"updatedAt"`
}

// NewMongo connects, pings and returns a ready persister.
func NewMongo(ctx context.Context, uri, dbName, key string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(dbName)
	return &Mongo{
		client:    client,
		ledger:    db.Collection("ledgers"),
		snapshots: db.Collection("monthly_snapshots"),
		key:       key,
	}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Load fetches the ledger document. A missing document is (nil, nil); a
// document that fails to decode is an error, which the store treats as
// absent data.
func (m *Mongo) Load(ctx context.Context) ([]models.Transaction, error) {
	var doc ledgerDocument
	err := m.ledger.FindOne(ctx, bson.M{"_id": m.key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load ledger %q: %w", m.key, err)
	}
	if doc.Transactions == nil {
		// A persisted empty list is still prior data, not a first run.
		return []models.Transaction{}, nil
	}
	return doc.Transactions, nil
}

// Save upserts the whole list under the fixed key.
func (m *Mongo) Save(ctx context.Context, txs []models.Transaction) error {
	doc := ledgerDocument{
		ID:           m.key,
		Transactions: txs,
		UpdatedAt:    time.Now().Unix(),
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := m.ledger.ReplaceOne(ctx, bson.M{"_id": m.key}, doc, opts); err != nil {
		return fmt.Errorf("failed to save ledger %q: %w", m.key, err)
	}
	return nil
}

// SaveSnapshot upserts a monthly snapshot keyed by its YYYY-MM id, so
// re-running the archive for the same month overwrites rather than
// duplicates.
func (m *Mongo) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	opts := options.Replace().SetUpsert(true)
	if _, err := m.snapshots.ReplaceOne(ctx, bson.M{"_id": snap.ID}, snap, opts); err != nil {
		return fmt.Errorf("failed to save snapshot %q: %w", snap.ID, err)
	}
	return nil
}
