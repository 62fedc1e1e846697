package entries

import (
	"context"
	"time"

	"herbtrack/internal/server/models"
)

// Repository is the persistence contract for entries.
type Repository interface {
	// Insert stores the entry and fills in the assigned id and created_at.
	Insert(ctx context.Context, entry *models.Entry) error

	// SelectByUser returns all entries owned by userID, newest first.
	SelectByUser(ctx context.Context, userID int64) ([]*models.Entry, error)

	// SelectSince returns the entries owned by userID whose timestamp is at
	// or after since.
	SelectSince(ctx context.Context, userID int64, since time.Time) ([]*models.Entry, error)

	// DeleteByID removes the entry only when it belongs to userID; a row
	// that does not exist or is owned by someone else yields
	// shared.ErrorEntryDoesNotExist.
	DeleteByID(ctx context.Context, id, userID int64) error
}
