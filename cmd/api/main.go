package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mwhitfield/runway/internal/cache"
	"github.com/mwhitfield/runway/internal/completion"
	completionStore "github.com/mwhitfield/runway/internal/completion/store"
	"github.com/mwhitfield/runway/internal/config"
	"github.com/mwhitfield/runway/internal/database"
	"github.com/mwhitfield/runway/internal/export"
	"github.com/mwhitfield/runway/internal/forecast"
	runwayHttp "github.com/mwhitfield/runway/internal/http"
	completionHandler "github.com/mwhitfield/runway/internal/http/completion"
	exportHandler "github.com/mwhitfield/runway/internal/http/export"
	forecastHandler "github.com/mwhitfield/runway/internal/http/forecast"
	overrideHandler "github.com/mwhitfield/runway/internal/http/override"
	payScheduleHandler "github.com/mwhitfield/runway/internal/http/payschedule"
	itemHandler "github.com/mwhitfield/runway/internal/http/recurring"
	"github.com/mwhitfield/runway/internal/override"
	overrideStore "github.com/mwhitfield/runway/internal/override/store"
	"github.com/mwhitfield/runway/internal/payschedule"
	payScheduleStore "github.com/mwhitfield/runway/internal/payschedule/store"
	"github.com/mwhitfield/runway/internal/recurring"
	itemStore "github.com/mwhitfield/runway/internal/recurring/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.PoolLimits{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// The override store degrades to an in-memory fallback with identical
	// semantics when its backing table is unavailable; the forecast pipeline
	// never notices the difference.
	sqlOverrides := overrideStore.New(db)

	var overrideRepo override.Repository = sqlOverrides

	if err := sqlOverrides.Available(context.Background()); err != nil {
		slog.Warn("override table unavailable, using in-memory fallback", "error", err)

		overrideRepo = override.NewMemStoreWithOptions(cache.Options{
			TTL:        cfg.OverrideCache.TTL,
			MaxEntries: cfg.OverrideCache.MaxEntries,
		})
	}

	var (
		itemService        = recurring.NewService(itemStore.New(db))
		overrideService    = override.NewService(overrideRepo)
		completionService  = completion.NewService(completionStore.New(db))
		payScheduleService = payschedule.NewService(payScheduleStore.New(db))
		forecastService    = forecast.NewService(
			itemService, overrideService, completionService, payScheduleService,
		)
		exportService = export.NewService(forecastService)
	)

	var (
		itemsH       = itemHandler.NewHandler(itemService)
		forecastH    = forecastHandler.NewHandler(forecastService, cfg.Forecast.TrackingFloor, cfg.Forecast.DefaultWindowMonths)
		overridesH   = overrideHandler.NewHandler(overrideService)
		completionsH = completionHandler.NewHandler(completionService)
		payScheduleH = payScheduleHandler.NewHandler(payScheduleService)
		exportH      = exportHandler.NewHandler(exportService, cfg.Forecast.DefaultWindowMonths)
	)

	router := runwayHttp.New(cfg.Auth.Secret, itemsH, forecastH, overridesH, completionsH, payScheduleH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
