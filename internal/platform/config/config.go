package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Rate limiting, e.g. "100-M" for 100 requests per minute per IP.
	RateLimit string

	// Snapshot persistence. When SnapshotEnabled is false, or DatabaseURL is
	// empty, the engine runs purely in memory.
	SnapshotEnabled  bool
	SnapshotInterval time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("SNAPSHOT_ENABLED", true)
	viper.SetDefault("SNAPSHOT_INTERVAL", "5m")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set. Snapshots will not be persisted.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.SnapshotEnabled = viper.GetBool("SNAPSHOT_ENABLED")

	intervalStr := viper.GetString("SNAPSHOT_INTERVAL")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		interval = 5 * time.Minute
		if intervalStr != "" {
			log.Printf("Warning: Invalid value for SNAPSHOT_INTERVAL ('%s'). Defaulting to %s.\n", intervalStr, interval.String())
		}
	}
	cfg.SnapshotInterval = interval

	return cfg, nil
}
