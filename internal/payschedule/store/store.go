package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/payschedule"
	"github.com/mwhitfield/runway/internal/recurring"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetPreferences(ctx context.Context, userID uuid.UUID) (*payschedule.Preferences, error) {
	query := `
		SELECT user_id, frequency, anchor_date, anchor_day_1, anchor_day_2, updated_at
		FROM pay_schedules
		WHERE user_id = $1
	`

	var prefs payschedule.Preferences

	var frequency string

	var anchor1, anchor2 sql.NullInt64

	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.UserID, &frequency, &prefs.AnchorDate, &anchor1, &anchor2, &prefs.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: user %s", payschedule.ErrNotFound, userID)
		}

		return nil, fmt.Errorf("getting pay schedule: %w", err)
	}

	prefs.Frequency = recurring.Frequency(frequency)

	if anchor1.Valid && anchor2.Valid {
		prefs.AnchorDays = []int{int(anchor1.Int64), int(anchor2.Int64)}
	}

	return &prefs, nil
}

func (s *Store) UpsertPreferences(ctx context.Context, prefs *payschedule.Preferences) error {
	query := `
		INSERT INTO pay_schedules (user_id, frequency, anchor_date, anchor_day_1, anchor_day_2, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET frequency = EXCLUDED.frequency, anchor_date = EXCLUDED.anchor_date,
			anchor_day_1 = EXCLUDED.anchor_day_1, anchor_day_2 = EXCLUDED.anchor_day_2,
			updated_at = NOW()
	`

	var anchor1, anchor2 sql.NullInt64

	if len(prefs.AnchorDays) == 2 {
		anchor1 = sql.NullInt64{Int64: int64(prefs.AnchorDays[0]), Valid: true}
		anchor2 = sql.NullInt64{Int64: int64(prefs.AnchorDays[1]), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		prefs.UserID, prefs.Frequency, prefs.AnchorDate, anchor1, anchor2,
	)
	if err != nil {
		return fmt.Errorf("upserting pay schedule: %w", err)
	}

	return nil
}
