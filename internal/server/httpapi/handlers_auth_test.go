package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	h := env.server.Handler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"new@example.com","password":"sup3rsecret"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "new@example.com", body.Email)
	assert.NotEmpty(t, body.ID)

	// Registration alone does not sign the user in.
	assert.Nil(t, cookieByName(rec.Result().Cookies(), "tn_session"))
}

func TestRegisterNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	h := env.server.Handler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"New@Example.COM","password":"sup3rsecret"}`))
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"new@example.com"}, env.users.registered)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"email":`},
		{"missing email", `{"password":"sup3rsecret"}`},
		{"invalid email", `{"email":"not-an-address","password":"sup3rsecret"}`},
		{"short password", `{"email":"a@example.com","password":"short"}`},
		{"long password", `{"email":"a@example.com","password":"` + strings.Repeat("x", 73) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			env.server.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, env.users.registered)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.users.addUser("taken@example.com", "sup3rsecret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"taken@example.com","password":"otherpassword"}`))
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already registered")
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.users.addUser("alice@example.com", "sup3rsecret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"alice@example.com","password":"sup3rsecret"}`))
	req.Header.Set("User-Agent", "test-agent")
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	c := cookieByName(rec.Result().Cookies(), "tn_session")
	require.NotNil(t, c)
	session := env.sessions.sessions[c.Value]
	require.NotNil(t, session)
	require.NotNil(t, session.UserAgent)
	assert.Equal(t, "test-agent", *session.UserAgent)
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"email":`},
		{"invalid email", `{"email":"not-an-address","password":"sup3rsecret"}`},
		{"short password", `{"email":"alice@example.com","password":"short"}`},
		{"long password", `{"email":"alice@example.com","password":"` + strings.Repeat("x", 73) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.users.addUser("alice@example.com", "sup3rsecret")

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			env.server.Handler().ServeHTTP(rec, req)

			// Malformed input is rejected before any credential check.
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, cookieByName(rec.Result().Cookies(), "tn_session"))
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.users.addUser("alice@example.com", "sup3rsecret")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"alice@example.com","password":"wrongpassword"}`},
		{"unknown email", `{"email":"nobody@example.com","password":"sup3rsecret"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			env.server.Handler().ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Invalid credentials")
			assert.Nil(t, cookieByName(rec.Result().Cookies(), "tn_session"))
		})
	}
}

func TestLoginOAuthOnlyAccountRejected(t *testing.T) {
	env := newTestEnv(t)
	env.users.addUser("oauth@example.com", "") // no password hash

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"oauth@example.com","password":"anypassword"}`))
	env.server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	u := env.users.addUser("alice@example.com", "sup3rsecret")
	session := env.sessions.addSession(u)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "tn_session", Value: session.Token})
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{session.Token}, env.sessions.destroyed)

	c := cookieByName(rec.Result().Cookies(), "tn_session")
	require.NotNil(t, c, "logout should clear the cookie")
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestLogoutWithoutSessionStillSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	env.server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, env.sessions.destroyed)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	u := env.users.addUser("alice@example.com", "sup3rsecret")
	session := env.sessions.addSession(u)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "tn_session", Value: session.Token})
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"alice@example.com"`)
}

func TestMeAnonymous(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Nil(t, body["user"])
}

func TestMeStaleCookieClears(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "tn_session", Value: "no-such-token"})
	env.server.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	c := cookieByName(rec.Result().Cookies(), "tn_session")
	require.NotNil(t, c)
	assert.Negative(t, c.MaxAge)
}
