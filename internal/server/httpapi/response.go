package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Decolo/translate-note-web/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError maps service error kinds to HTTP statuses. Internal detail
// never reaches the client; it is logged here instead.
func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		errorJSON(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrUnauthorized):
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrNotFound):
		errorJSON(w, http.StatusNotFound, "Not found")
	case errors.Is(err, common.ErrConflict):
		errorJSON(w, http.StatusConflict, "Conflict")
	case errors.Is(err, common.ErrUpstream):
		s.logger.Warn(ctx, "upstream error", "error", err.Error())
		errorJSON(w, http.StatusBadGateway, "Translation provider unavailable")
	case errors.Is(err, common.ErrNotConfigured):
		s.logger.Error(ctx, "feature not configured", "error", err.Error())
		errorJSON(w, http.StatusInternalServerError, "Feature not configured")
	default:
		s.logger.Error(ctx, "internal error", "error", err.Error())
		errorJSON(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
