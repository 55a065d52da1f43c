package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/server/repositories/repomanager"
)

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{db: db, repomanager: m}
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*models.TranslationNote, error) {
	notes, err := s.repomanager.Notes(s.db).ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

func (s *NoteService) Create(ctx context.Context, userID, sourceText, translatedText, sourceLang, targetLang string) (*models.TranslationNote, error) {
	if sourceText == "" || translatedText == "" || sourceLang == "" || targetLang == "" {
		return nil, common.ErrValidation
	}

	note, err := s.repomanager.Notes(s.db).Create(ctx, &models.TranslationNote{
		UserID:         userID,
		SourceText:     sourceText,
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

// Delete removes the user's note. A note id owned by someone else is
// indistinguishable from a missing one: both are common.ErrNotFound.
func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	return s.repomanager.Notes(s.db).Delete(ctx, userID, id)
}
