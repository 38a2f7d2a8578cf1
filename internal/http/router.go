package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mwhitfield/runway/internal/http/auth"
	"github.com/mwhitfield/runway/internal/http/completion"
	"github.com/mwhitfield/runway/internal/http/export"
	"github.com/mwhitfield/runway/internal/http/forecast"
	"github.com/mwhitfield/runway/internal/http/override"
	"github.com/mwhitfield/runway/internal/http/payschedule"
	"github.com/mwhitfield/runway/internal/http/recurring"
)

func New(
	authSecret string,
	itemsV1 *recurring.Handler,
	forecastV1 *forecast.Handler,
	overridesV1 *override.Handler,
	completionsV1 *completion.Handler,
	payScheduleV1 *payschedule.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(authSecret))

		r.Route("/items", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			itemsV1.Routes(r)
		})

		r.Route("/forecast", forecastV1.Routes)

		r.Route("/overrides", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			overridesV1.Routes(r)
		})

		r.Route("/completions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			completionsV1.Routes(r)
		})

		r.Route("/payschedule", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			payScheduleV1.Routes(r)
		})

		r.Route("/export", exportV1.Routes)
	})

	return router
}
