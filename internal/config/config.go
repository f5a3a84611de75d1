package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the server.
type Config struct {
	Port             string
	MongoURI         string
	MongoDB          string
	LedgerKey        string
	AdvisorURL       string
	AdvisorTimeout   time.Duration
	SnapshotSchedule string
}

// Load loads configuration from environment variables. An empty MONGODB_URI
// is allowed: the server then runs on an in-memory ledger.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it.")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         os.Getenv("MONGODB_URI"),
		MongoDB:          getEnv("MONGODB_DB", "arthaguide"),
		LedgerKey:        getEnv("LEDGER_KEY", "arthaguide_transactions"),
		AdvisorURL:       os.Getenv("ADVISOR_URL"),
		AdvisorTimeout:   10 * time.Second,
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "0 9 1 * *"),
	}

	if raw := os.Getenv("ADVISOR_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatal("Invalid ADVISOR_TIMEOUT:", err)
		}
		cfg.AdvisorTimeout = d
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
