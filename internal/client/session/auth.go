package session

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
)

// NormalizeUsername is the canonical form usernames are stored and looked up in.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Login authenticates username/password against the users table. Unknown
// users, wrong passwords and lookup failures all return ErrInvalidCredentials.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	name := NormalizeUsername(username)

	u, err := c.users.FindByCredentials(ctx, name, password)
	if err != nil {
		if users.KindOf(err) != users.KindNotFound {
			c.log.Error(ctx, "login lookup failed", "username", name, "error", err)
		}
		return ErrInvalidCredentials
	}

	history := c.cache.LoadHistory(ctx, u.Username)

	c.mu.Lock()
	c.user = u
	c.sessionID = c.newSessionID()
	c.messages = history
	c.userList = nil
	c.pending = 0
	sid, ready := c.sessionID, c.status == StatusReady
	c.mu.Unlock()

	c.log.Info(ctx, "user logged in", "username", u.Username)

	if ready {
		_ = c.loadUsers(ctx, sid)
	}
	return nil
}

// Logout ends the current session. It never fails.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.sessionID = ""
	c.messages = nil
	c.userList = nil
	c.pending = 0
}
