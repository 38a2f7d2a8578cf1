package export

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwhitfield/runway/internal/export"
	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/http/auth"
)

type Handler struct {
	svc          *export.Service
	windowMonths int
}

func NewHandler(svc *export.Service, windowMonths int) *Handler {
	return &Handler{svc: svc, windowMonths: windowMonths}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/occurrences.csv", h.occurrencesCSV)
}

func (h *Handler) occurrencesCSV(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"occurrences_%s.csv\"",
			window.Start.Format(time.DateOnly)))

	if err := h.svc.WriteCSV(r.Context(), w, userID, window); err != nil {
		// Headers are already out; the truncated body is all we can signal with.
		status := http.StatusInternalServerError
		if errors.Is(err, forecast.ErrInvalidWindow) || errors.Is(err, forecast.ErrWindowExceeded) {
			status = http.StatusBadRequest
		}

		http.Error(w, err.Error(), status)
	}
}

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
