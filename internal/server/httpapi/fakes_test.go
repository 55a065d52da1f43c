package httpapi

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/server/oauth"
	"github.com/Decolo/translate-note-web/internal/translate"
)

// In-memory stand-ins for the service ports. Each records just enough to
// assert on handler behavior.

type fakeUserService struct {
	users      map[string]*models.User // keyed by email
	nextID     int
	registered []string
	failWith   error
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{users: map[string]*models.User{}}
}

func (f *fakeUserService) addUser(email, password string) *models.User {
	f.nextID++
	u := &models.User{
		ID:        fmt.Sprintf("u-%d", f.nextID),
		Email:     email,
		CreatedAt: time.Now(),
	}
	if password != "" {
		u.PasswordHash = sql.NullString{String: "hash:" + password, Valid: true}
	}
	f.users[email] = u
	return u
}

func (f *fakeUserService) Register(_ context.Context, email, password string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, ok := f.users[email]; ok {
		return nil, common.ErrConflict
	}
	f.registered = append(f.registered, email)
	return f.addUser(email, password), nil
}

func (f *fakeUserService) VerifyCredentials(_ context.Context, email, password string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[email]
	if !ok || !u.PasswordHash.Valid || u.PasswordHash.String != "hash:"+password {
		return nil, nil
	}
	return u, nil
}

func (f *fakeUserService) GetOrCreateByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return f.addUser(email, ""), nil
}

type fakeSessionService struct {
	sessions  map[string]*models.Session // keyed by token
	users     map[string]*models.User    // keyed by user ID
	nextID    int
	destroyed []string
	failWith  error
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{
		sessions: map[string]*models.Session{},
		users:    map[string]*models.User{},
	}
}

func (f *fakeSessionService) addSession(u *models.User) *models.Session {
	f.nextID++
	s := &models.Session{
		ID:        fmt.Sprintf("s-%d", f.nextID),
		UserID:    u.ID,
		Token:     fmt.Sprintf("tok-%d", f.nextID),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessions[s.Token] = s
	f.users[u.ID] = u
	return s
}

func (f *fakeSessionService) Create(_ context.Context, userID string, ip, ua *string) (*models.Session, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	s := &models.Session{
		ID:        fmt.Sprintf("s-%d", f.nextID),
		UserID:    userID,
		Token:     fmt.Sprintf("tok-%d", f.nextID),
		ExpiresAt: time.Now().Add(time.Hour),
		IPAddress: ip,
		UserAgent: ua,
	}
	f.sessions[s.Token] = s
	return s, nil
}

func (f *fakeSessionService) Lookup(_ context.Context, token string) (*models.Session, *models.User, error) {
	if f.failWith != nil {
		return nil, nil, f.failWith
	}
	s, ok := f.sessions[token]
	if !ok {
		return nil, nil, nil
	}
	return s, f.users[s.UserID], nil
}

func (f *fakeSessionService) Destroy(_ context.Context, token string) error {
	f.destroyed = append(f.destroyed, token)
	delete(f.sessions, token)
	return nil
}

type fakeNoteService struct {
	notes    map[string][]*models.TranslationNote // keyed by user ID
	nextID   int
	failWith error
}

func newFakeNoteService() *fakeNoteService {
	return &fakeNoteService{notes: map[string][]*models.TranslationNote{}}
}

func (f *fakeNoteService) List(_ context.Context, userID string) ([]*models.TranslationNote, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.notes[userID], nil
}

func (f *fakeNoteService) Create(_ context.Context, userID, sourceText, translatedText, sourceLang, targetLang string) (*models.TranslationNote, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if sourceText == "" || translatedText == "" || sourceLang == "" || targetLang == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	f.nextID++
	n := &models.TranslationNote{
		ID:             fmt.Sprintf("n-%d", f.nextID),
		UserID:         userID,
		SourceText:     sourceText,
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		CreatedAt:      time.Now(),
	}
	f.notes[userID] = append(f.notes[userID], n)
	return n, nil
}

func (f *fakeNoteService) Delete(_ context.Context, userID, id string) error {
	if f.failWith != nil {
		return f.failWith
	}
	list := f.notes[userID]
	for i, n := range list {
		if n.ID == id {
			f.notes[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type fakeTranslator struct {
	lastReq  translate.Request
	failWith error
}

func (f *fakeTranslator) Translate(_ context.Context, req translate.Request) (*translate.Result, error) {
	f.lastReq = req
	if f.failWith != nil {
		return nil, f.failWith
	}
	provider := req.Provider
	if provider == "" {
		provider = translate.DefaultProvider
	}
	return &translate.Result{
		TranslatedText: strings.ToUpper(req.Text),
		Provider:       provider,
	}, nil
}

type fakeOAuthClient struct {
	exchangeErr  error
	userinfoErr  error
	email        string
	exchanged    []string // codes seen
	lastVerifier string
}

func (f *fakeOAuthClient) AuthCodeURL(state, verifier string) string {
	return "https://accounts.example.com/auth?state=" + state
}

func (f *fakeOAuthClient) Exchange(_ context.Context, code, verifier string) (*oauth2.Token, error) {
	f.exchanged = append(f.exchanged, code)
	f.lastVerifier = verifier
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return &oauth2.Token{AccessToken: "at"}, nil
}

func (f *fakeOAuthClient) FetchUserinfo(_ context.Context, _ *oauth2.Token) (*oauth.Userinfo, error) {
	if f.userinfoErr != nil {
		return nil, f.userinfoErr
	}
	return &oauth.Userinfo{Email: f.email, EmailVerified: true}, nil
}
