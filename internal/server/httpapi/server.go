// Package httpapi exposes the service over HTTP: cookie-session
// authentication endpoints, the Google OAuth redirect pair, and the
// session-gated translate/notebook JSON API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Decolo/translate-note-web/internal/logging"
	"github.com/Decolo/translate-note-web/internal/server/config"
)

type Server struct {
	cfg    *config.Config
	logger logging.Logger

	users      UserService
	sessions   SessionService
	notes      NoteService
	translator Translator

	// oauthClient is nil when Google sign-in is not configured; the start
	// handler reports a configuration error in that case.
	oauthClient OAuthClient
}

func NewServer(cfg *config.Config, l logging.Logger, users UserService, sessions SessionService, notes NoteService, translator Translator, oauthClient OAuthClient) *Server {
	return &Server{
		cfg:         cfg,
		logger:      l.With("module", "httpapi"),
		users:       users,
		sessions:    sessions,
		notes:       notes,
		translator:  translator,
		oauthClient: oauthClient,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.cfg.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
