package forecast

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/http/auth"
)

type Handler struct {
	svc *forecast.Service

	// defaults applied when a request leaves the window or floor unset
	trackingFloor time.Time
	windowMonths  int
}

func NewHandler(svc *forecast.Service, trackingFloor time.Time, windowMonths int) *Handler {
	return &Handler{
		svc:           svc,
		trackingFloor: trackingFloor,
		windowMonths:  windowMonths,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.forecast)
	r.Get("/occurrences", h.occurrences)
}

// window reads start/end query params, defaulting to a window of
// h.windowMonths beginning today. This is the one place "now" enters the
// engine's inputs; generation itself never reads the clock.
func (h *Handler) window(r *http.Request) (forecast.Window, error) {
	start := forecast.DateOnly(time.Now())
	end := start.AddDate(0, h.windowMonths, 0)

	if s := r.URL.Query().Get("start"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return forecast.Window{}, errors.New("invalid start")
		}

		start = parsed
		end = start.AddDate(0, h.windowMonths, 0)
	}

	if s := r.URL.Query().Get("end"); s != "" {
		parsed, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return forecast.Window{}, errors.New("invalid end")
		}

		end = parsed
	}

	return forecast.Window{Start: start, End: end}, nil
}

func (h *Handler) forecast(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	window, err := h.window(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	balance := decimal.Zero

	if s := r.URL.Query().Get("starting_balance"); s != "" {
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			http.Error(w, "invalid starting_balance", http.StatusBadRequest)
			return
		}

		balance = parsed
	}

	result, err := h.svc.Forecast(r.Context(), forecast.ForecastParams{
		UserID:          userID,
		Window:          window,
		TrackingFloor:   h.trackingFloor,
		StartingBalance: balance,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, forecast.ErrInvalidWindow) || errors.Is(err, forecast.ErrWindowExceeded) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toForecastResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) occurrences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	window, err := h.window(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Occurrences(r.Context(), userID, window, h.trackingFloor)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, forecast.ErrInvalidWindow) || errors.Is(err, forecast.ErrWindowExceeded) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toOccurrencesResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
