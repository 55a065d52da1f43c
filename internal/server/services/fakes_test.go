package services

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/dbx"
	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/server/repositories/notes"
	"github.com/Decolo/translate-note-web/internal/server/repositories/sessions"
	"github.com/Decolo/translate-note-web/internal/server/repositories/users"
)

// In-memory repository fakes shared by the service tests.

type fakeUsersRepo struct {
	mu     sync.Mutex
	byID   map[string]*models.User
	nextID int

	createErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byID: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return nil, common.ErrConflict
		}
	}
	f.nextID++
	cp := *u
	cp.ID = fmt.Sprintf("u-%d", f.nextID)
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	f.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

type fakeSessionsRepo struct {
	mu      sync.Mutex
	byToken map[string]*models.Session
	nextID  int

	deletedTokens []string
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{byToken: map[string]*models.Session{}}
}

func (f *fakeSessionsRepo) Create(ctx context.Context, s *models.Session) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s.ID = fmt.Sprintf("s-%d", f.nextID)
	s.CreatedAt = time.Now()
	cp := *s
	f.byToken[s.Token] = &cp
	return s, nil
}

func (f *fakeSessionsRepo) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.byToken[token]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeSessionsRepo) DeleteByToken(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byToken, token)
	f.deletedTokens = append(f.deletedTokens, token)
	return nil
}

func (f *fakeSessionsRepo) DeleteAllForUser(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, s := range f.byToken {
		if s.UserID == userID {
			delete(f.byToken, token)
		}
	}
	return nil
}

func (f *fakeSessionsRepo) DeleteExpired(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	now := time.Now()
	for token, s := range f.byToken {
		if s.ExpiresAt.Before(now) {
			delete(f.byToken, token)
			n++
		}
	}
	return n, nil
}

type fakeNotesRepo struct {
	mu     sync.Mutex
	rows   []*models.TranslationNote
	nextID int
}

func newFakeNotesRepo() *fakeNotesRepo {
	return &fakeNotesRepo{}
}

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.TranslationNote) (*models.TranslationNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	n.ID = fmt.Sprintf("n-%d", f.nextID)
	n.CreatedAt = time.Now()
	cp := *n
	f.rows = append([]*models.TranslationNote{&cp}, f.rows...)
	return n, nil
}

func (f *fakeNotesRepo) ListByUser(ctx context.Context, userID string) ([]*models.TranslationNote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.TranslationNote
	for _, n := range f.rows {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.rows {
		if n.ID == id && n.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// fakeRepoManager vends the fakes regardless of the DBTX handed in, so the
// transactional paths exercise the same state.
type fakeRepoManager struct {
	users    *fakeUsersRepo
	sessions *fakeSessionsRepo
	notes    *fakeNotesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUsersRepo(),
		sessions: newFakeSessionsRepo(),
		notes:    newFakeNotesRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error { return nil }

func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository { return m.users }

func (m *fakeRepoManager) Sessions(db dbx.DBTX) sessions.Repository { return m.sessions }

func (m *fakeRepoManager) Notes(db dbx.DBTX) notes.Repository { return m.notes }
