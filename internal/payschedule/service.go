package payschedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/recurring"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payschedule
type Repository interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (*Preferences, error)
	UpsertPreferences(ctx context.Context, prefs *Preferences) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Preferences, error) {
	return s.repo.GetPreferences(ctx, userID)
}

func (s *Service) Put(ctx context.Context, prefs *Preferences) error {
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("validating pay schedule: %w", err)
	}

	return s.repo.UpsertPreferences(ctx, prefs)
}

// PayDates enumerates the user's pay dates inside the window, ascending. The
// preferences are mapped onto a synthetic recurring item and driven through
// forecast.NextOccurrence; the schedule math lives there and nowhere else.
func (s *Service) PayDates(ctx context.Context, userID uuid.UUID, window forecast.Window) ([]time.Time, error) {
	prefs, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching pay schedule: %w", err)
	}

	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("validating pay schedule: %w", err)
	}

	synthetic := recurring.Item{
		ID:          prefs.UserID,
		Name:        "paycheck",
		DisplayType: recurring.DisplayIncome,
		Amount:      decimal.New(1, 0),
		Frequency:   prefs.Frequency,
		StartDate:   prefs.AnchorDate,
		AnchorDays:  prefs.AnchorDays,
	}

	start := forecast.DateOnly(window.Start)
	end := forecast.DateOnly(window.End)

	var dates []time.Time

	cursor := start

	for !cursor.After(end) {
		date, ok := forecast.NextOccurrence(synthetic, cursor)
		if !ok || date.After(end) {
			break
		}

		dates = append(dates, date)
		cursor = date.AddDate(0, 0, 1)
	}

	return dates, nil
}
