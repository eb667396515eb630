package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/cleazy-chat/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvDatabaseDSN    = "CLEAZY_DATABASE_DSN"
	EnvWebhookURL     = "CLEAZY_WEBHOOK_URL"
	EnvWebhookTimeout = "CLEAZY_WEBHOOK_TIMEOUT"
	EnvLocalDB        = "CLEAZY_LOCAL_DB"
	EnvLogLevel       = "CLEAZY_LOG_LEVEL"
	EnvLogFormat      = "CLEAZY_LOG_FORMAT"
)

// loadDotenv loads the file given with -env, or ./.env. Variables already set
// in the process environment win. A missing default file is not an error.
func loadDotenv() {
	path := flagx.EnvFileFlag()
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(path); err != nil {
		panic(err)
	}
}

// parseDuration accepts Go durations ("90s") or a bare number of seconds.
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// parseEnv overlays Config with CLEAZY_* environment variables. Empty values
// are ignored. Panics on an unparsable timeout.
func parseEnv(cfg *Config) {
	loadDotenv()

	set := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	set(&cfg.DatabaseDSN, EnvDatabaseDSN)
	set(&cfg.WebhookURL, EnvWebhookURL)
	set(&cfg.LocalDBPath, EnvLocalDB)
	set(&cfg.LogLevel, EnvLogLevel)
	set(&cfg.LogFormat, EnvLogFormat)

	if v := os.Getenv(EnvWebhookTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.WebhookTimeout = d
	}
}
