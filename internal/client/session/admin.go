package session

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
	"github.com/dmitrijs2005/cleazy-chat/internal/client/repositories/users"
	"github.com/dmitrijs2005/cleazy-chat/internal/common"
)

// requireAdmin returns the current session id if the admin is logged in.
func (c *Controller) requireAdmin() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return "", ErrNotAuthenticated
	}
	if !c.user.IsAdmin() {
		return "", ErrForbidden
	}
	return c.sessionID, nil
}

// RefreshUsers reloads the user list shown in the settings panel.
func (c *Controller) RefreshUsers(ctx context.Context) error {
	sid, err := c.requireAdmin()
	if err != nil {
		return err
	}
	return c.loadUsers(ctx, sid)
}

// AddUser creates an account. The username is stored lowercase.
func (c *Controller) AddUser(ctx context.Context, candidate models.NewUser) (*models.User, error) {
	sid, err := c.requireAdmin()
	if err != nil {
		return nil, err
	}

	nu := models.NewUser{
		Username: NormalizeUsername(candidate.Username),
		Password: candidate.Password,
	}
	if nu.Username == "" || strings.TrimSpace(nu.Password) == "" {
		return nil, ErrInvalidUser
	}

	_, err = c.users.FindByUsername(ctx, nu.Username)
	switch {
	case err == nil:
		return nil, ErrDuplicateUser
	case users.KindOf(err) != users.KindNotFound:
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	created, err := c.users.Create(ctx, nu)
	if err != nil {
		if users.KindOf(err) == users.KindDuplicate {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	c.mu.Lock()
	if c.sessionID == sid {
		c.userList = append(c.userList, *created)
	}
	c.mu.Unlock()

	c.log.Info(ctx, "user added", "username", created.Username)
	return created, nil
}

// DeleteUser removes an account and its cached transcript. Deleting the
// reserved admin does nothing.
func (c *Controller) DeleteUser(ctx context.Context, username string) error {
	sid, err := c.requireAdmin()
	if err != nil {
		return err
	}

	name := NormalizeUsername(username)
	if name == common.AdminUsername {
		c.log.Debug(ctx, "refusing to delete the admin account")
		return nil
	}

	if err := c.users.DeleteByUsername(ctx, name); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	c.mu.Lock()
	if c.sessionID == sid {
		c.userList = slices.DeleteFunc(c.userList, func(u models.User) bool {
			return u.Username == name
		})
	}
	c.mu.Unlock()

	if err := c.cache.PurgeHistory(ctx, name); err != nil {
		c.log.Warn(ctx, "failed to purge chat history", "username", name, "error", err)
	}

	c.log.Info(ctx, "user deleted", "username", name)
	return nil
}
