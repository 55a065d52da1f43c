package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/Decolo/translate-note-web/internal/logging"
	"github.com/Decolo/translate-note-web/internal/server/config"
)

type testEnv struct {
	server   *Server
	users    *fakeUserService
	sessions *fakeSessionService
	notes    *fakeNoteService
	trans    *fakeTranslator
	oauth    *fakeOAuthClient
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Env:               "local",
		SessionCookieName: "tn_session",
		SessionTTL:        time.Hour,
		OAuthStateTTL:     10 * time.Minute,
	}
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	env := &testEnv{
		users:    newFakeUserService(),
		sessions: newFakeSessionService(),
		notes:    newFakeNoteService(),
		trans:    &fakeTranslator{},
		oauth:    &fakeOAuthClient{email: "oauth@example.com"},
	}
	env.server = NewServer(cfg, logger, env.users, env.sessions, env.notes, env.trans, env.oauth)
	return env
}

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
