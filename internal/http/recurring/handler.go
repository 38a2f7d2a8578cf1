package recurring

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/http/auth"
	"github.com/mwhitfield/runway/internal/recurring"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type createItemRequest struct {
	Name        string                `json:"name"`
	DisplayType recurring.DisplayType `json:"display_type"`
	Amount      decimal.Decimal       `json:"amount"`
	Frequency   recurring.Frequency   `json:"frequency"`
	StartDate   string                `json:"start_date"`
	EndDate     *string               `json:"end_date,omitempty"`
	AnchorDays  []int                 `json:"anchor_days,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}

	var endDate *time.Time

	if req.EndDate != nil {
		parsed, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		endDate = &parsed
	}

	item, err := h.svc.Create(r.Context(), recurring.CreateParams{
		UserID:      userID,
		Name:        req.Name,
		DisplayType: req.DisplayType,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		AnchorDays:  req.AnchorDays,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	filter := recurring.ListFilter{}

	if s := r.URL.Query().Get("display_type"); s != "" {
		dt := recurring.DisplayType(s)
		filter.DisplayType = &dt
	}

	if s := r.URL.Query().Get("active_on"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.ActiveOn = &t
		}
	}

	items, err := h.svc.List(r.Context(), userID, filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateItemRequest struct {
	Name        *string                `json:"name,omitempty"`
	DisplayType *recurring.DisplayType `json:"display_type,omitempty"`
	Amount      *decimal.Decimal       `json:"amount,omitempty"`
	Frequency   *recurring.Frequency   `json:"frequency,omitempty"`
	StartDate   *string                `json:"start_date,omitempty"`
	EndDate     *string                `json:"end_date,omitempty"`
	AnchorDays  []int                  `json:"anchor_days,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Get(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}

	if req.DisplayType != nil {
		item.DisplayType = *req.DisplayType
	}

	if req.Amount != nil {
		item.Amount = *req.Amount
	}

	if req.Frequency != nil {
		item.Frequency = *req.Frequency
	}

	if req.StartDate != nil {
		parsed, err := time.Parse(time.DateOnly, *req.StartDate)
		if err != nil {
			http.Error(w, "invalid start_date", http.StatusBadRequest)
			return
		}

		item.StartDate = parsed
	}

	if req.EndDate != nil {
		parsed, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			http.Error(w, "invalid end_date", http.StatusBadRequest)
			return
		}

		item.EndDate = &parsed
	}

	if req.AnchorDays != nil {
		item.AnchorDays = req.AnchorDays
	}

	if err := h.svc.Update(r.Context(), item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
