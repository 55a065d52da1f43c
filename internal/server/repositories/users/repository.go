// Package users declares the repository contract for user identity rows.
package users

import (
	"context"

	"github.com/Decolo/translate-note-web/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email returns common.ErrConflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by email, common.ErrNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID looks a user up by id, common.ErrNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.User, error)
}
