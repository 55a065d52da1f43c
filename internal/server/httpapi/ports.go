package httpapi

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/server/oauth"
	"github.com/Decolo/translate-note-web/internal/translate"
)

// The handler layer depends on these narrow contracts rather than the
// concrete services so tests can substitute fakes.

type UserService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	GetOrCreateByEmail(ctx context.Context, email string) (*models.User, error)
}

type SessionService interface {
	Create(ctx context.Context, userID string, ip, ua *string) (*models.Session, error)
	Lookup(ctx context.Context, token string) (*models.Session, *models.User, error)
	Destroy(ctx context.Context, token string) error
}

type NoteService interface {
	List(ctx context.Context, userID string) ([]*models.TranslationNote, error)
	Create(ctx context.Context, userID, sourceText, translatedText, sourceLang, targetLang string) (*models.TranslationNote, error)
	Delete(ctx context.Context, userID, id string) error
}

type Translator interface {
	Translate(ctx context.Context, req translate.Request) (*translate.Result, error)
}

type OAuthClient interface {
	AuthCodeURL(state, verifier string) string
	Exchange(ctx context.Context, code, verifier string) (*oauth2.Token, error)
	FetchUserinfo(ctx context.Context, token *oauth2.Token) (*oauth.Userinfo, error)
}
