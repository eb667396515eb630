package users

import (
	"context"

	"github.com/dmitrijs2005/cleazy-chat/internal/client/models"
)

// Repository is the contract the session controller relies on.
type Repository interface {
	// CheckTable issues a zero-row select; it fails when the table is missing.
	CheckTable(ctx context.Context) error
	// FindByUsernameFold is a case-insensitive single-row lookup.
	FindByUsernameFold(ctx context.Context, username string) (*models.User, error)
	// FindByUsername is a case-sensitive exact lookup.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByCredentials(ctx context.Context, username, password string) (*models.User, error)
	UpdateCredentials(ctx context.Context, id, username, password string) error
	Create(ctx context.Context, user models.NewUser) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}
