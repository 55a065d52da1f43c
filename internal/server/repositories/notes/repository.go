// Package notes declares the repository contract for translation-notebook rows.
// Every operation is scoped by the owning user id at the query layer.
package notes

import (
	"context"

	"github.com/Decolo/translate-note-web/internal/server/models"
)

type Repository interface {
	// Create inserts a note for its owning user and fills in the generated
	// id and timestamp.
	Create(ctx context.Context, note *models.TranslationNote) (*models.TranslationNote, error)

	// ListByUser returns the user's notes, newest first.
	ListByUser(ctx context.Context, userID string) ([]*models.TranslationNote, error)

	// Delete removes the note only when both id and owner match; otherwise
	// common.ErrNotFound.
	Delete(ctx context.Context, userID, id string) error
}
