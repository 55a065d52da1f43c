// Package services implements the application logic between the HTTP layer
// and the repositories.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/dbx"
	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/server/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func verifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Register creates a password-credentialed user. A duplicate email surfaces
// as common.ErrConflict. The returned user never carries the hash.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{
		Email:        email,
		PasswordHash: sql.NullString{String: hash, Valid: true},
	})
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			return nil, common.ErrConflict
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	user.PasswordHash = sql.NullString{}
	return user, nil
}

// VerifyCredentials returns the user for a valid (email, password) pair and
// (nil, nil) otherwise. Unknown email, an OAuth-only account (NULL hash) and
// a wrong password are indistinguishable to the caller.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, common.ErrInternal
	}

	if !user.PasswordHash.Valid || !verifyPassword(password, user.PasswordHash.String) {
		return nil, nil
	}

	user.PasswordHash = sql.NullString{}
	return user, nil
}

// GetOrCreateByEmail resolves a user for an OAuth login. The email is
// normalized the same way the password handlers do, so a provider-reported
// address links to the account registered with it regardless of case. A
// previously-unseen email gets a row with no password credential at all, so
// the account can only ever authenticate through the provider.
func (s *UserService) GetOrCreateByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		existing, err := repo.GetByEmail(ctx, email)
		if err == nil {
			user = existing
			return nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		user, err = repo.Create(ctx, &models.User{Email: email})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error resolving user by email: %w", err)
	}

	user.PasswordHash = sql.NullString{}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = sql.NullString{}
	return user, nil
}
