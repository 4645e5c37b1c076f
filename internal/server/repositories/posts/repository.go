package posts

import (
	"context"

	"github.com/dmitrijs2005/goblog/internal/server/models"
)

// Repository persists posts. Ids come from a durable monotonic sequence
// independent of the user sequence.
type Repository interface {
	// NextID reserves a fresh post id.
	NextID(ctx context.Context) (int64, error)

	// Create persists the post.
	Create(ctx context.Context, post *models.Post) error

	// Get fetches a post, or common.ErrPostNotFound.
	Get(ctx context.Context, id int64) (*models.Post, error)

	// GetAuthor fetches only the author id; cheaper than Get and used for
	// ownership checks. Absent posts surface as common.ErrPostNotFound.
	GetAuthor(ctx context.Context, id int64) (int64, error)

	// Update applies the supplied (non-empty) fields to the stored post and
	// returns the new state. UpdatedAt is bumped only when at least one
	// field was supplied.
	Update(ctx context.Context, id int64, title, content string) (*models.Post, error)

	// Delete removes the post. A missing row is reported as internal; the
	// authoritative not-found signal comes from GetAuthor earlier in the
	// service flow.
	Delete(ctx context.Context, id int64) error

	// List returns posts ordered by updated_at descending, id descending as
	// the tiebreak, within the [offset, offset+limit) row window.
	List(ctx context.Context, offset, limit int64) ([]*models.Post, error)
}
