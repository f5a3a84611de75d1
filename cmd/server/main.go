package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"github.com/arthaguide/sms-ledger/internal/advisor"
	"github.com/arthaguide/sms-ledger/internal/api"
	"github.com/arthaguide/sms-ledger/internal/config"
	"github.com/arthaguide/sms-ledger/internal/ledger"
	"github.com/arthaguide/sms-ledger/internal/logger"
	"github.com/arthaguide/sms-ledger/internal/sms"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var (
		persister ledger.Persister
		sink      ledger.SnapshotSink
	)
	if cfg.MongoURI != "" {
		db, err := ledger.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.LedgerKey)
		if err != nil {
			log.Fatal().Err(err).Msg("MongoDB connection failed")
		}
		defer db.Close(context.Background())
		log.Info().Str("db", cfg.MongoDB).Str("key", cfg.LedgerKey).Msg("connected to MongoDB")
		persister = db
		sink = db
	} else {
		log.Warn().Msg("MONGODB_URI not set, ledger is in-memory only")
		persister = ledger.NewInMemoryPersister()
	}

	store := ledger.NewStore(persister, log)
	store.Load(ctx)
	log.Info().Int("transactions", store.Len()).Msg("ledger loaded")

	advisorClient, err := advisor.NewClient(&http.Client{Timeout: cfg.AdvisorTimeout}, cfg.AdvisorURL)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid advisor configuration")
	}

	// Monthly snapshots only make sense with durable storage behind them.
	if sink != nil {
		archiver := ledger.NewArchiver(store, sink, log)
		c := cron.New()
		if _, err := c.AddFunc(cfg.SnapshotSchedule, func() {
			snapCtx, snapCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer snapCancel()
			if err := archiver.Run(snapCtx); err != nil {
				log.Error().Err(err).Msg("monthly snapshot failed")
			}
		}); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.SnapshotSchedule).Msg("invalid snapshot schedule")
		}
		c.Start()
		defer c.Stop()
	}

	h := &api.Handler{
		Store:   store,
		Parser:  sms.NewParser(),
		Advisor: advisorClient,
		Log:     log,
	}

	app := fiber.New()
	app.Use(recover.New())
	h.RegisterRoutes(app)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
