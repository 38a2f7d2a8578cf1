package payschedule

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitfield/runway/internal/http/auth"
	"github.com/mwhitfield/runway/internal/payschedule"
	"github.com/mwhitfield/runway/internal/recurring"
)

type Handler struct {
	svc *payschedule.Service
}

func NewHandler(svc *payschedule.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Put("/", h.put)
}

type preferencesPayload struct {
	Frequency  recurring.Frequency `json:"frequency"`
	AnchorDate string              `json:"anchor_date"`
	AnchorDays []int               `json:"anchor_days,omitempty"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	prefs, err := h.svc.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, payschedule.ErrNotFound) {
			http.Error(w, "pay schedule not configured", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	resp := preferencesPayload{
		Frequency:  prefs.Frequency,
		AnchorDate: prefs.AnchorDate.Format(time.DateOnly),
		AnchorDays: prefs.AnchorDays,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) put(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req preferencesPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	anchorDate, err := time.Parse(time.DateOnly, req.AnchorDate)
	if err != nil {
		http.Error(w, "invalid anchor_date", http.StatusBadRequest)
		return
	}

	prefs := &payschedule.Preferences{
		UserID:     userID,
		Frequency:  req.Frequency,
		AnchorDate: anchorDate,
		AnchorDays: req.AnchorDays,
	}

	if err := h.svc.Put(r.Context(), prefs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
