package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/override"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Available reports whether the backing table exists. Callers degrade to the
// in-memory store when it does not, with identical semantics.
func (s *Store) Available(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `SELECT 1 FROM item_overrides LIMIT 1`); err != nil {
		return fmt.Errorf("checking item_overrides table: %w", err)
	}

	return nil
}

func (s *Store) Upsert(ctx context.Context, ov override.Override) error {
	query := `
		INSERT INTO item_overrides (user_id, item_id, month_year, amount, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, item_id, month_year)
		DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	`

	_, err := s.db.ExecContext(ctx, query, ov.UserID, ov.ItemID, ov.Month, ov.Amount)
	if err != nil {
		return fmt.Errorf("upserting override: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, userID, itemID uuid.UUID, month override.MonthYear) error {
	query := `DELETE FROM item_overrides WHERE user_id = $1 AND item_id = $2 AND month_year = $3`

	_, err := s.db.ExecContext(ctx, query, userID, itemID, month)
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}

	return nil
}

func (s *Store) ForMonth(ctx context.Context, userID uuid.UUID, month override.MonthYear) ([]override.Override, error) {
	return s.ForRange(ctx, userID, month, month)
}

func (s *Store) ForRange(ctx context.Context, userID uuid.UUID, from, to override.MonthYear) ([]override.Override, error) {
	query := `
		SELECT user_id, item_id, month_year, amount, updated_at
		FROM item_overrides
		WHERE user_id = $1 AND month_year >= $2 AND month_year <= $3
		ORDER BY month_year ASC, item_id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()

	var ovs []override.Override

	for rows.Next() {
		var ov override.Override

		if err := rows.Scan(&ov.UserID, &ov.ItemID, &ov.Month, &ov.Amount, &ov.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning override: %w", err)
		}

		ovs = append(ovs, ov)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}

	return ovs, nil
}
