package completion

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitfield/runway/internal/completion"
	"github.com/mwhitfield/runway/internal/http/auth"
)

type Handler struct {
	svc *completion.Service
}

func NewHandler(svc *completion.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.mark)
	r.Delete("/{occurrenceID}", h.unmark)
}

type markRequest struct {
	OccurrenceID string `json:"occurrence_id"`
}

func (h *Handler) mark(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req markRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.Mark(r.Context(), userID, req.OccurrenceID); err != nil {
		if errors.Is(err, completion.ErrEmptyOccurrenceID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) unmark(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	occurrenceID := chi.URLParam(r, "occurrenceID")

	if err := h.svc.Unmark(r.Context(), userID, occurrenceID); err != nil {
		if errors.Is(err, completion.ErrEmptyOccurrenceID) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
