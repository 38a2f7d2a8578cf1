package override

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/http/auth"
	"github.com/mwhitfield/runway/internal/override"
)

type Handler struct {
	svc *override.Service
}

func NewHandler(svc *override.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Put("/", h.upsert)
	r.Get("/", h.listMonth)
	r.Delete("/{itemID}/{month}", h.delete)
}

type upsertOverrideRequest struct {
	ItemID uuid.UUID       `json:"item_id"`
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req upsertOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	month, err := override.ParseMonthYear(req.Month)
	if err != nil {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	if err := h.svc.Upsert(r.Context(), userID, req.ItemID, month, req.Amount); err != nil {
		if errors.Is(err, override.ErrNonPositiveAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listMonth(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	month, err := override.ParseMonthYear(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	amounts, err := h.svc.ForMonth(r.Context(), userID, month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make(map[string]decimal.Decimal, len(amounts))
	for itemID, amount := range amounts {
		resp[itemID.String()] = amount
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	month, err := override.ParseMonthYear(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, itemID, month); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
