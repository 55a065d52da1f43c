package notes

import (
	"context"
	"fmt"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/dbx"
	"github.com/Decolo/translate-note-web/internal/server/models"
)

// PostgresRepository implements notebook storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, note *models.TranslationNote) (*models.TranslationNote, error) {
	query := `
		INSERT INTO translations (user_id, source_text, translated_text, source_lang, target_lang)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.SourceText, note.TranslatedText, note.SourceLang, note.TargetLang).
		Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return note, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.TranslationNote, error) {
	query := `
		SELECT id, user_id, source_text, translated_text, source_lang, target_lang, created_at
		FROM translations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.TranslationNote
	for rows.Next() {
		var item models.TranslationNote
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.SourceText, &item.TranslatedText,
			&item.SourceLang, &item.TargetLang, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Delete filters on both id and owner so a user cannot remove another user's
// note even with a valid note id.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `
		DELETE FROM translations
		WHERE id = $1 AND user_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
