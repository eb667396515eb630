package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/cleazy-chat/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   Postgres DSN
//	-w string   webhook URL
//	-t int      webhook timeout (seconds)
//	-l string   local cache file
//	-v string   log level
//	-f string   log format (text|json)
//
// os.Args is filtered with flagx.FilterArgs so -c/-config and -env, handled
// elsewhere, do not trip this FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-w", "-t", "-l", "-v", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Postgres DSN of the users database")
	fs.StringVar(&cfg.WebhookURL, "w", cfg.WebhookURL, "bot webhook URL")
	timeout := fs.Int("t", int(cfg.WebhookTimeout.Seconds()), "webhook timeout (in seconds)")
	fs.StringVar(&cfg.LocalDBPath, "l", cfg.LocalDBPath, "local cache database file")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t overrides only when given; its int default cannot hold sub-second values
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.WebhookTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
