// Package config loads settings shared by the CLI and the watchlist engine.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const DefaultFeedURL = "https://www.treasury.gov/ofac/downloads/sanctions/1.0/sdn_advanced.xml"

type Config struct {
	Port         string        `envconfig:"PORT" default:"8080"`
	DBPath       string        `envconfig:"DB_PATH" default:"./watchlist.db"`
	FeedURL      string        `envconfig:"WATCHLIST_FEED_URL" default:"https://www.treasury.gov/ofac/downloads/sanctions/1.0/sdn_advanced.xml"`
	SyncInterval time.Duration `envconfig:"SYNC_INTERVAL" default:"12h"`
	SyncDisabled bool          `envconfig:"SYNC_DISABLED" default:"false"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	EngineURL    string        `envconfig:"WATCHLIST_ENGINE_URL" default:"http://localhost:8080"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads an optional .env file and then the process environment.
// A missing .env is not an error: in Docker Compose the variables are
// injected directly.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env var: %w", err)
	}
	return cfg, nil
}

// ConfigureLogging sets the global logrus level and formatter.
func ConfigureLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
