package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Decolo/translate-note-web/internal/server/models"
	"github.com/Decolo/translate-note-web/internal/translate"
)

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
	Provider   string `json:"provider"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" || req.SourceLang == "" || req.TargetLang == "" {
		errorJSON(w, http.StatusBadRequest, "text, sourceLang and targetLang are required")
		return
	}

	result, err := s.translator.Translate(r.Context(), translate.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Provider:   translate.Provider(req.Provider),
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"translatedText": result.TranslatedText,
		"provider":       string(result.Provider),
	})
}

type noteView struct {
	ID             string    `json:"id"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	CreatedAt      time.Time `json:"created_at"`
}

func toNoteView(n *models.TranslationNote) noteView {
	return noteView{
		ID:             n.ID,
		SourceText:     n.SourceText,
		TranslatedText: n.TranslatedText,
		SourceLang:     n.SourceLang,
		TargetLang:     n.TargetLang,
		CreatedAt:      n.CreatedAt,
	}
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notes, err := s.notes.List(r.Context(), p.User.ID)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	views := make([]noteView, 0, len(notes))
	for _, n := range notes {
		views = append(views, toNoteView(n))
	}
	writeJSON(w, http.StatusOK, map[string]any{"notes": views})
}

type createNoteRequest struct {
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.notes.Create(r.Context(), p.User.ID, req.SourceText, req.TranslatedText, req.SourceLang, req.TargetLang)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"note": toNoteView(note)})
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	p, ok := principalFrom(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := mux.Vars(r)["id"]
	if err := s.notes.Delete(r.Context(), p.User.ID, id); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
