package httpapi

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/Decolo/translate-note-web/internal/common"
	"github.com/Decolo/translate-note-web/internal/server/models"
)

// bcrypt rejects inputs above 72 bytes, so the cap is also a hard limit.
const (
	passwordMinLen = 8
	passwordMaxLen = 72
)

type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserView(u *models.User) userView {
	return userView{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !validEmail(req.Email) {
		errorJSON(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < passwordMinLen || len(req.Password) > passwordMaxLen {
		errorJSON(w, http.StatusBadRequest, "Password must be between 8 and 72 characters")
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			errorJSON(w, http.StatusConflict, "Email already registered")
			return
		}
		s.writeError(r.Context(), w, err)
		return
	}

	// Registration does not start a session; the client logs in afterwards.
	writeJSON(w, http.StatusOK, map[string]string{"id": user.ID, "email": user.Email})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if !validEmail(req.Email) {
		errorJSON(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if len(req.Password) < passwordMinLen || len(req.Password) > passwordMaxLen {
		errorJSON(w, http.StatusBadRequest, "Password must be between 8 and 72 characters")
		return
	}

	user, err := s.users.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	if user == nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	session, err := s.sessions.Create(r.Context(), user.ID, clientIP(r), userAgent(r))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	s.setSessionCookie(w, session.Token, session.ExpiresAt)

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserView(user)})
}

// handleLogout destroys the current session if one exists. It always
// succeeds: logging out with a stale cookie is not an error.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(s.cfg.SessionCookieName); err == nil && c.Value != "" {
		if err := s.sessions.Destroy(r.Context(), c.Value); err != nil {
			s.logger.Warn(r.Context(), "error destroying session", "error", err.Error())
		}
	}
	s.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(s.cfg.SessionCookieName)
	if err != nil || c.Value == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"user": nil})
		return
	}

	session, user, err := s.sessions.Lookup(r.Context(), c.Value)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	if session == nil {
		s.clearSessionCookie(w)
		writeJSON(w, http.StatusUnauthorized, map[string]any{"user": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": toUserView(user)})
}
