package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler builds the route table. Exposed so tests can drive the full
// router without a listening socket.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestLog)

	r.HandleFunc("/api/auth/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", s.handleLogout).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", s.handleMe).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/google", s.handleGoogleStart).Methods(http.MethodGet)
	r.HandleFunc("/api/auth/google/callback", s.handleGoogleCallback).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.requireSession)
	api.HandleFunc("/translate", s.handleTranslate).Methods(http.MethodPost)
	api.HandleFunc("/notes", s.handleListNotes).Methods(http.MethodGet)
	api.HandleFunc("/notes", s.handleCreateNote).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}", s.handleDeleteNote).Methods(http.MethodDelete)

	return r
}
