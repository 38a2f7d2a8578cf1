package forecast

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/override"
	"github.com/mwhitfield/runway/internal/recurring"
)

//go:generate mockgen -source=service.go -destination=sources_mock.go -package=forecast

// ItemSource supplies the recurring items to forecast over.
type ItemSource interface {
	ActiveItems(ctx context.Context, userID uuid.UUID) ([]recurring.Item, error)
}

// OverrideSource supplies per-month amount overrides for a month range.
// Implementations may serve from a degraded local store; the pipeline only
// ever sees a list, empty or populated.
type OverrideSource interface {
	ForRange(ctx context.Context, userID uuid.UUID, from, to override.MonthYear) ([]override.Override, error)
}

// CompletionSource supplies the set of occurrence IDs already settled.
type CompletionSource interface {
	CompletedIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error)
}

// PayScheduleSource supplies the user's pay dates inside a window.
type PayScheduleSource interface {
	PayDates(ctx context.Context, userID uuid.UUID, window Window) ([]time.Time, error)
}

// Service runs the forecast pipeline: generate, layer overrides, filter by
// completion, allocate into pay periods. Each stage is a pure function; the
// service only fetches the snapshot and calls them in order, so concurrent
// requests share nothing.
type Service struct {
	items       ItemSource
	overrides   OverrideSource
	completions CompletionSource
	schedule    PayScheduleSource
}

func NewService(items ItemSource, overrides OverrideSource, completions CompletionSource, schedule PayScheduleSource) *Service {
	return &Service{
		items:       items,
		overrides:   overrides,
		completions: completions,
		schedule:    schedule,
	}
}

type ForecastParams struct {
	UserID          uuid.UUID
	Window          Window
	TrackingFloor   time.Time
	StartingBalance decimal.Decimal
}

// Forecast is the pipeline's full output. Pending and Done are sorted
// ascending by date, Periods by start; consumers render these as-is and
// never re-derive schedule math.
type Forecast struct {
	Pending  []Occurrence
	Done     []Occurrence
	Periods  []PeriodBreakdown
	Failures []ItemError
}

func (s *Service) Forecast(ctx context.Context, params ForecastParams) (*Forecast, error) {
	if err := params.Window.Validate(); err != nil {
		return nil, err
	}

	items, err := s.items.ActiveItems(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching recurring items: %w", err)
	}

	result, err := Generate(items, params.Window, params.TrackingFloor)
	if err != nil {
		return nil, err
	}

	occs, err := s.layerOverrides(ctx, params.UserID, params.Window, result.Occurrences)
	if err != nil {
		return nil, err
	}

	completedIDs, err := s.completions.CompletedIDs(ctx, params.UserID)
	if err != nil {
		return nil, fmt.Errorf("fetching completed occurrences: %w", err)
	}

	pending, done := PartitionByCompletion(occs, completedIDs)

	payDates, err := s.schedule.PayDates(ctx, params.UserID, params.Window)
	if err != nil {
		return nil, fmt.Errorf("fetching pay dates: %w", err)
	}

	SortByDate(pending)
	SortByDate(done)

	periods := Allocate(payDates, pending, done, params.StartingBalance)

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].PeriodStart.Before(periods[j].PeriodStart)
	})

	return &Forecast{
		Pending:  pending,
		Done:     done,
		Periods:  periods,
		Failures: result.Failures,
	}, nil
}

// Occurrences generates the occurrence stream with overrides applied, sorted
// ascending by date, for calendar-style consumers that do their own grouping.
func (s *Service) Occurrences(ctx context.Context, userID uuid.UUID, window Window, trackingFloor time.Time) (*Result, error) {
	items, err := s.items.ActiveItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching recurring items: %w", err)
	}

	result, err := Generate(items, window, trackingFloor)
	if err != nil {
		return nil, err
	}

	occs, err := s.layerOverrides(ctx, userID, window, result.Occurrences)
	if err != nil {
		return nil, err
	}

	SortByDate(occs)

	return &Result{Occurrences: occs, Failures: result.Failures}, nil
}

func (s *Service) layerOverrides(ctx context.Context, userID uuid.UUID, window Window, occs []Occurrence) ([]Occurrence, error) {
	overrides, err := s.overrides.ForRange(ctx, userID,
		override.MonthOf(window.Start), override.MonthOf(window.End))
	if err != nil {
		return nil, fmt.Errorf("fetching overrides: %w", err)
	}

	return ApplyOverrides(occs, overrides), nil
}
