package session

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cleazy-chat/internal/common"
)

// Each error wraps the matching common sentinel, so errors.Is works against
// either.
var (
	ErrInvalidCredentials = fmt.Errorf("invalid username or password: %w", common.ErrorUnauthorized)
	ErrForbidden          = fmt.Errorf("only the admin account can manage users: %w", common.ErrorUnauthorized)
	ErrNotAuthenticated   = fmt.Errorf("not authenticated: %w", common.ErrorUnauthorized)
	ErrDuplicateUser      = fmt.Errorf("user already exists: %w", common.ErrorAlreadyExists)
	ErrInvalidUser        = fmt.Errorf("username and password are required: %w", common.ErrorValidation)
	ErrSessionChanged     = errors.New("session changed before the reply arrived")
)
