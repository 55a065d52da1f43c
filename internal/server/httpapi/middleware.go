package httpapi

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Decolo/translate-note-web/internal/server/models"
)

type contextKey string

const principalKey contextKey = "principal"

// requestLog tags every request with a generated ID and logs method, path,
// status and duration on completion.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		s.logger.Info(r.Context(), "request",
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// principal is the authenticated user attached to the request context by
// requireSession.
type principal struct {
	User    *models.User
	Session *models.Session
}

func principalFrom(ctx context.Context) (*principal, bool) {
	p, ok := ctx.Value(principalKey).(*principal)
	return p, ok
}

// requireSession rejects requests that do not carry a valid session cookie.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(s.cfg.SessionCookieName)
		if err != nil || c.Value == "" {
			errorJSON(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		session, user, err := s.sessions.Lookup(r.Context(), c.Value)
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}
		if session == nil {
			s.clearSessionCookie(w)
			errorJSON(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, &principal{User: user, Session: session})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP extracts the caller's address, preferring X-Forwarded-For when a
// proxy set it.
func clientIP(r *http.Request) *string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		ip := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if ip != "" {
			return &ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		if r.RemoteAddr == "" {
			return nil
		}
		addr := r.RemoteAddr
		return &addr
	}
	return &host
}

func userAgent(r *http.Request) *string {
	ua := r.UserAgent()
	if ua == "" {
		return nil
	}
	return &ua
}
