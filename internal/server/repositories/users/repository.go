package users

import (
	"context"

	"github.com/dmitrijs2005/goblog/internal/server/models"
)

// Repository persists user accounts. Ids come from a durable monotonic
// sequence so they are never reused, even across restarts.
type Repository interface {
	// NextID reserves a fresh user id.
	NextID(ctx context.Context) (int64, error)

	// Create persists the user. A username or email collision surfaces as
	// common.ErrAlreadyExists.
	Create(ctx context.Context, user *models.User) error

	// GetByUsername fetches a user, or common.ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
