package httpapi

import (
	"net/http"
	"net/url"

	"github.com/Decolo/translate-note-web/internal/server/oauth"
)

// Google OAuth with PKCE. The start handler stashes the state and code
// verifier in short-lived cookies and redirects to Google; the callback
// validates them, exchanges the code, and signs the user in.

func (s *Server) handleGoogleStart(w http.ResponseWriter, r *http.Request) {
	if s.oauthClient == nil {
		errorJSON(w, http.StatusInternalServerError, "Google sign-in is not configured")
		return
	}

	state, err := oauth.GenerateState()
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	verifier := oauth.GenerateVerifier()

	s.setOAuthCookie(w, oauthStateCookie, state)
	s.setOAuthCookie(w, oauthVerifierCookie, verifier)

	http.Redirect(w, r, s.oauthClient.AuthCodeURL(state, verifier), http.StatusFound)
}

// redirectAuthError sends the browser back to the app with a machine-readable
// failure code in the query string.
func redirectAuthError(w http.ResponseWriter, r *http.Request, code string) {
	http.Redirect(w, r, "/?authError="+url.QueryEscape(code), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	// The state and verifier cookies are single-use regardless of outcome.
	stateCookie, stateErr := r.Cookie(oauthStateCookie)
	verifierCookie, verifierErr := r.Cookie(oauthVerifierCookie)
	s.clearOAuthCookies(w)

	if s.oauthClient == nil {
		redirectAuthError(w, r, "google_auth_failed")
		return
	}

	q := r.URL.Query()
	if errParam := q.Get("error"); errParam != "" {
		s.logger.Warn(r.Context(), "oauth provider returned error", "error", errParam)
		redirectAuthError(w, r, errParam)
		return
	}

	code := q.Get("code")
	if code == "" || q.Get("state") == "" {
		redirectAuthError(w, r, "missing_code")
		return
	}

	if stateErr != nil || verifierErr != nil || stateCookie.Value == "" || verifierCookie.Value == "" {
		redirectAuthError(w, r, "missing_oauth_session")
		return
	}
	if q.Get("state") != stateCookie.Value {
		redirectAuthError(w, r, "state_mismatch")
		return
	}

	token, err := s.oauthClient.Exchange(r.Context(), code, verifierCookie.Value)
	if err != nil {
		s.logger.Warn(r.Context(), "oauth code exchange failed", "error", err.Error())
		redirectAuthError(w, r, "google_auth_failed")
		return
	}

	info, err := s.oauthClient.FetchUserinfo(r.Context(), token)
	if err != nil {
		s.logger.Warn(r.Context(), "oauth userinfo fetch failed", "error", err.Error())
		redirectAuthError(w, r, "google_auth_failed")
		return
	}
	if info.Email == "" {
		s.logger.Warn(r.Context(), "oauth userinfo missing email")
		redirectAuthError(w, r, "google_auth_failed")
		return
	}

	user, err := s.users.GetOrCreateByEmail(r.Context(), info.Email)
	if err != nil {
		s.logger.Error(r.Context(), "error resolving oauth user", "error", err.Error())
		redirectAuthError(w, r, "google_auth_failed")
		return
	}

	session, err := s.sessions.Create(r.Context(), user.ID, clientIP(r), userAgent(r))
	if err != nil {
		s.logger.Error(r.Context(), "error creating session", "error", err.Error())
		redirectAuthError(w, r, "google_auth_failed")
		return
	}
	s.setSessionCookie(w, session.Token, session.ExpiresAt)

	http.Redirect(w, r, "/?authSuccess=google", http.StatusFound)
}
