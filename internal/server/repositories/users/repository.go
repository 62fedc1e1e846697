package users

import (
	"context"

	"herbtrack/internal/server/models"
)

// Repository is the persistence contract for accounts.
type Repository interface {
	// Create inserts the user and fills in the assigned id.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername returns the user with that username, or
	// shared.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByEmail returns the user with that email, or shared.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
