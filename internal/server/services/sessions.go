package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/server/config"
	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/server/repositories/repomanager"
)

type SessionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	ttl         time.Duration
}

func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{db: db, repomanager: m, ttl: cfg.SessionTTL}
}

// generateSessionToken returns a 32-byte random token, base64url-encoded.
func generateSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Create mints a session for userID. The returned session carries the raw
// token; this is the only place it exists server-side.
func (s *SessionService) Create(ctx context.Context, userID string, ip, ua *string) (*models.Session, error) {
	token, err := generateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("error generating session token: %w", err)
	}

	session, err := s.repomanager.Sessions(s.db).Create(ctx, &models.Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
		IPAddress: ip,
		UserAgent: ua,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}
	return session, nil
}

// Lookup resolves a token to its session and user. An unknown token yields
// (nil, nil, nil) rather than an error. An expired row is deleted as a side
// effect and then treated as absent; lookup is the only expiry-enforcement
// point on the request path.
func (s *SessionService) Lookup(ctx context.Context, token string) (*models.Session, *models.User, error) {
	repo := s.repomanager.Sessions(s.db)

	session, err := repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("error looking up session: %w", err)
	}

	if session.ExpiresAt.Before(time.Now()) {
		if err := repo.DeleteByToken(ctx, token); err != nil {
			return nil, nil, fmt.Errorf("error deleting expired session: %w", err)
		}
		return nil, nil, nil
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("error loading session user: %w", err)
	}
	user.PasswordHash = sql.NullString{}

	return session, user, nil
}

// Destroy removes the session for token. Idempotent.
func (s *SessionService) Destroy(ctx context.Context, token string) error {
	return s.repomanager.Sessions(s.db).DeleteByToken(ctx, token)
}

// DestroyAllForUser revokes every session owned by userID.
func (s *SessionService) DestroyAllForUser(ctx context.Context, userID string) error {
	return s.repomanager.Sessions(s.db).DeleteAllForUser(ctx, userID)
}

// CleanupExpired is the maintenance sweep; it never runs on the request path.
func (s *SessionService) CleanupExpired(ctx context.Context) (int64, error) {
	return s.repomanager.Sessions(s.db).DeleteExpired(ctx)
}
