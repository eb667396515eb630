// Command cleazy-setup provisions the remote users table the chat client
// needs. It is safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/cleazy-chat/internal/buildinfo"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/client"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/config"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
)

const connectTimeout = 10 * time.Second

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	db, err := client.OpenRemote(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	if err := client.MigrateRemote(ctx, db, logger); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}

	repo := users.NewPostgresRepository(db)
	if err := repo.CheckTable(ctx); err != nil {
		return fmt.Errorf("table %s still not usable: %w", users.Table, err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		return err
	}
	logger.Info(ctx, "users table ready", "table", users.Table, "rows", len(list))
	return nil
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat).With("module", "setup")

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "setup failed", "error", err)
		fmt.Fprintln(os.Stderr, "setup failed:", err)
		stop()
		os.Exit(1)
	}

	fmt.Printf("Table %s is ready. Start cleazy and log in as the admin account.\n", users.Table)
}
