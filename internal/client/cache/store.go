// Package cache is the durable client-side state of the chat client: the
// one-time admin bootstrap flag, one transcript per username and the last
// username that logged in. Everything is stored in the metadata table of the
// local SQLite file.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cleazy-chat/internal/dbx"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
)

const (
	BootstrapKey     = "admin_user_cleazy_users_v1"
	HistoryKeyPrefix = "chat_history_"
	LastUsernameKey  = "last_username"

	bootstrapValue = "true"
)

// HistoryKey returns the cache key of username's transcript.
func HistoryKey(username string) string {
	return HistoryKeyPrefix + username
}

type Store struct {
	db   *sql.DB
	repo metadata.Repository
	log  logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		log:  log.With("module", "cache"),
	}
}

// BootstrapDone reports whether the admin account was already provisioned
// from this machine.
func (s *Store) BootstrapDone(ctx context.Context) (bool, error) {
	v, err := s.repo.Get(ctx, BootstrapKey)
	if err != nil {
		return false, err
	}
	return string(v) == bootstrapValue, nil
}

func (s *Store) MarkBootstrapDone(ctx context.Context) error {
	return s.repo.Set(ctx, BootstrapKey, []byte(bootstrapValue))
}

// LoadHistory returns the transcript cached for username. An absent entry
// yields an empty list; unreadable or corrupt data is logged and also yields
// an empty list.
func (s *Store) LoadHistory(ctx context.Context, username string) []models.Message {
	msgs := make([]models.Message, 0)

	raw, err := s.repo.Get(ctx, HistoryKey(username))
	if err != nil {
		s.log.Error(ctx, "failed to read chat history", "username", username, "error", err)
		return msgs
	}
	if len(raw) == 0 {
		return msgs
	}

	var stored []models.Message
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Error(ctx, "failed to parse chat history", "username", username, "error", err)
		return msgs
	}

	return append(msgs, stored...)
}

// SaveHistory replaces username's transcript with msgs and records username
// as the last one seen. Both writes happen in one transaction.
func (s *Store) SaveHistory(ctx context.Context, username string, msgs []models.Message) error {
	if msgs == nil {
		msgs = []models.Message{}
	}
	payload, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("failed to encode chat history: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, HistoryKey(username), payload); err != nil {
			return err
		}
		return repo.Set(ctx, LastUsernameKey, []byte(username))
	})
}

// PurgeHistory drops username's transcript.
func (s *Store) PurgeHistory(ctx context.Context, username string) error {
	return s.repo.Delete(ctx, HistoryKey(username))
}

// CachedUsernames lists the usernames that have a transcript on this machine.
func (s *Store) CachedUsernames(ctx context.Context) ([]string, error) {
	keys, err := s.repo.Keys(ctx, HistoryKeyPrefix)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k[len(HistoryKeyPrefix):])
	}
	return names, nil
}

// LastUsername returns the username of the most recent session, or "".
func (s *Store) LastUsername(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, LastUsernameKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
