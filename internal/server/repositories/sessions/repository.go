// Package sessions declares the repository contract for session rows backing
// the cookie-based authentication layer.
package sessions

import (
	"context"

	"github.com/Decolo/translate-note-web/internal/server/models"
)

type Repository interface {
	// Create inserts a session row and fills in its generated id and timestamp.
	Create(ctx context.Context, session *models.Session) (*models.Session, error)

	// FindByToken returns the session row for the given opaque token,
	// common.ErrNotFound when absent. Expiry is not checked here.
	FindByToken(ctx context.Context, token string) (*models.Session, error)

	// DeleteByToken removes a session by its token. Deleting a non-existent
	// token is not an error.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteAllForUser removes every session owned by userID.
	DeleteAllForUser(ctx context.Context, userID string) error

	// DeleteExpired removes all rows whose expiry has passed and reports how
	// many were deleted.
	DeleteExpired(ctx context.Context) (int64, error)
}
