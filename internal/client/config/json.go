package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cleazy-chat/internal/flagx"
	"github.com/dmitrijs2005/cleazy-chat/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the webhook timeout either
// as a string like "45s" or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN    string         `json:"database_dsn"`
	WebhookURL     string         `json:"webhook_url"`
	WebhookTimeout timex.Duration `json:"webhook_timeout"`
	LocalDBPath    string         `json:"local_db_path"`
	LogLevel       string         `json:"log_level"`
	LogFormat      string         `json:"log_format"`
}

// parseJson overlays Config with the non-empty values of the JSON file passed
// with -c or -config. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.DatabaseDSN, jc.DatabaseDSN)
	overlay(&cfg.WebhookURL, jc.WebhookURL)
	overlay(&cfg.LocalDBPath, jc.LocalDBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)

	if jc.WebhookTimeout.Duration > 0 {
		cfg.WebhookTimeout = jc.WebhookTimeout.Duration
	}
}
