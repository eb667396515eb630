package session

import (
	"context"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
)

// Status is the readiness of the remote database.
type Status string

const (
	StatusChecking      Status = "checking"
	StatusSetupRequired Status = "setup-required"
	StatusReady         Status = "ready"
)

// ErrorReplyText is shown in place of a bot answer when the webhook fails.
const ErrorReplyText = "Desculpe, ocorreu um erro. Tente novamente em alguns instantes."

// Cache is the durable per-machine state the controller reads and writes.
type Cache interface {
	BootstrapDone(ctx context.Context) (bool, error)
	MarkBootstrapDone(ctx context.Context) error
	LoadHistory(ctx context.Context, username string) []models.Message
	SaveHistory(ctx context.Context, username string, msgs []models.Message) error
	PurgeHistory(ctx context.Context, username string) error
}

// Responder produces the bot's answer to a user message.
type Responder interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Snapshot is a point-in-time copy of the controller state. It shares no
// memory with the controller.
type Snapshot struct {
	Status    Status
	User      *models.User
	SessionID string
	Messages  []models.Message
	Users     []models.User
	Loading   bool
}

// Authenticated reports whether a user is logged in.
func (s Snapshot) Authenticated() bool {
	return s.User != nil
}

// IsAdmin reports whether the logged in user is the reserved admin.
func (s Snapshot) IsAdmin() bool {
	return s.User.IsAdmin()
}
