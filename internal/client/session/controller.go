package session

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
	"github.com/dmitrijs2005/cleazy-chat/internal/common"
	"github.com/dmitrijs2005/cleazy-chat/internal/logging"
	"github.com/google/uuid"
)

type Option func(*Controller)

// WithClock replaces time.Now for message timestamps and ids.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithSessionIDs replaces the session id generator.
func WithSessionIDs(next func() string) Option {
	return func(c *Controller) { c.newSessionID = next }
}

type Controller struct {
	users users.Repository
	cache Cache
	bot   Responder
	log   logging.Logger

	now          func() time.Time
	newSessionID func() string

	mu        sync.Mutex
	status    Status
	user      *models.User
	sessionID string
	messages  []models.Message
	userList  []models.User
	// pending counts bot calls in flight for the current session.
	pending int
}

func New(repo users.Repository, cache Cache, bot Responder, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		users:        repo,
		cache:        cache,
		bot:          bot,
		log:          log.With("module", "session"),
		now:          time.Now,
		newSessionID: uuid.NewString,
		status:       StatusChecking,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Status:    c.status,
		SessionID: c.sessionID,
		Messages:  slices.Clone(c.messages),
		Users:     slices.Clone(c.userList),
		Loading:   c.pending > 0,
	}
	if c.user != nil {
		u := *c.user
		s.User = &u
	}
	if s.Messages == nil {
		s.Messages = []models.Message{}
	}
	return s
}

func (c *Controller) setStatus(s Status) {
	c.mu.Lock()
	c.status = s
	c.mu.Unlock()
}

// Startup checks that the users table exists, provisions the admin account
// and marks the controller ready. Any table check failure leaves the controller in
// StatusSetupRequired.
func (c *Controller) Startup(ctx context.Context) Status {
	c.setStatus(StatusChecking)

	if err := c.users.CheckTable(ctx); err != nil {
		if users.KindOf(err) == users.KindUndefinedTable {
			c.log.Warn(ctx, "users table is missing, run cleazy-setup", "error", err)
		} else {
			c.log.Error(ctx, "unexpected database error during startup", "kind", users.KindOf(err).String(), "error", err)
		}
		c.setStatus(StatusSetupRequired)
		return StatusSetupRequired
	}

	if err := c.bootstrapAdmin(ctx); err != nil {
		c.log.Error(ctx, "admin bootstrap failed, will retry on next startup", "error", err)
	}

	c.setStatus(StatusReady)

	// a user logged in before a retry gets the list the login could not fetch
	c.mu.Lock()
	sid, authed := c.sessionID, c.user != nil
	c.mu.Unlock()
	if authed {
		_ = c.loadUsers(ctx, sid)
	}

	return StatusReady
}

// Retry re-runs the startup check from the setup screen.
func (c *Controller) Retry(ctx context.Context) Status {
	return c.Startup(ctx)
}

// bootstrapAdmin makes sure the reserved admin exists with the default
// credentials. It runs until it succeeds once on this machine.
func (c *Controller) bootstrapAdmin(ctx context.Context) error {
	done, err := c.cache.BootstrapDone(ctx)
	if err != nil {
		c.log.Warn(ctx, "cannot read bootstrap flag", "error", err)
	}
	if done {
		c.log.Debug(ctx, "admin bootstrap already done")
		return nil
	}

	admin, err := c.users.FindByUsernameFold(ctx, common.AdminUsername)
	switch {
	case err == nil:
		if err := c.users.UpdateCredentials(ctx, admin.ID, common.AdminUsername, common.AdminDefaultPassword); err != nil {
			return err
		}
		c.log.Info(ctx, "admin account found and reset", "id", admin.ID, "was", admin.Username)
	case users.KindOf(err) == users.KindNotFound:
		created, err := c.users.Create(ctx, models.NewUser{
			Username: common.AdminUsername,
			Password: common.AdminDefaultPassword,
		})
		if err != nil {
			return err
		}
		c.log.Info(ctx, "admin account created", "id", created.ID)
	default:
		return err
	}

	return c.cache.MarkBootstrapDone(ctx)
}

// loadUsers refreshes the cached user list if session sid is still current.
func (c *Controller) loadUsers(ctx context.Context, sid string) error {
	list, err := c.users.List(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to list users", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID != sid {
		return ErrSessionChanged
	}
	c.userList = list
	return nil
}

// persistLocked writes the transcript of the current user. Callers hold mu so
// writes reach the cache in the order the list changed.
func (c *Controller) persistLocked(ctx context.Context) {
	if c.user == nil {
		return
	}
	if err := c.cache.SaveHistory(ctx, c.user.Username, c.messages); err != nil {
		c.log.Error(ctx, "failed to save chat history", "username", c.user.Username, "error", err)
	}
}
