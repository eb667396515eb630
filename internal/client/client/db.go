package client

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/migrations/local"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/migrations/remote"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// GooseLogger adapts logging.Logger to goose.Logger.
type GooseLogger struct {
	L logging.Logger
}

func (g GooseLogger) Printf(format string, v ...any) {
	g.L.Debug(context.Background(), fmt.Sprintf(format, v...), "module", "goose")
}

func (g GooseLogger) Fatalf(format string, v ...any) {
	g.L.Error(context.Background(), fmt.Sprintf(format, v...), "module", "goose")
	os.Exit(1)
}

func runMigrations(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, logger logging.Logger) error {
	goose.SetBaseFS(fsys)
	goose.SetLogger(GooseLogger{L: logger})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// RunMigrations applies the local cache schema to db.
func RunMigrations(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	return runMigrations(ctx, db, "sqlite3", local.Migrations, logger)
}

// InitDatabase opens the local cache file at dsn and migrates it.
func InitDatabase(ctx context.Context, dsn string, logger logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLocalDataNotAvailable, err)
	}
	// one writer keeps SQLite from returning SQLITE_BUSY on the cache file
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: local migrations: %v", ErrLocalDataNotAvailable, err)
	}

	return db, nil
}

// OpenRemote opens the hosted Postgres database. The connection is lazy; the
// first query reports reachability.
func OpenRemote(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

// MigrateRemote provisions the users table.
func MigrateRemote(ctx context.Context, db *sql.DB, logger logging.Logger) error {
	return runMigrations(ctx, db, "postgres", remote.Migrations, logger)
}
