package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/recurring"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectItemColumns = `
	id, user_id, name, display_type, amount, frequency,
	start_date, end_date, anchor_day_1, anchor_day_2, created_at, updated_at
`

// scanItem reads an item row from the scanner and returns a populated Item.
// Expected column order matches selectItemColumns.
func scanItem(s scanner) (*recurring.Item, error) {
	var item recurring.Item

	var displayType, frequency string

	var anchor1, anchor2 sql.NullInt64

	if err := s.Scan(
		&item.ID, &item.UserID, &item.Name, &displayType, &item.Amount, &frequency,
		&item.StartDate, &item.EndDate, &anchor1, &anchor2,
		&item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	item.DisplayType = recurring.DisplayType(displayType)
	item.Frequency = recurring.Frequency(frequency)

	if anchor1.Valid && anchor2.Valid {
		item.AnchorDays = []int{int(anchor1.Int64), int(anchor2.Int64)}
	}

	return &item, nil
}

func anchorColumns(item *recurring.Item) (sql.NullInt64, sql.NullInt64) {
	if len(item.AnchorDays) != 2 {
		return sql.NullInt64{}, sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(item.AnchorDays[0]), Valid: true},
		sql.NullInt64{Int64: int64(item.AnchorDays[1]), Valid: true}
}

func (s *Store) CreateItem(ctx context.Context, item *recurring.Item) error {
	query := `
		INSERT INTO recurring_items
			(user_id, name, display_type, amount, frequency, start_date, end_date,
			 anchor_day_1, anchor_day_2, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	anchor1, anchor2 := anchorColumns(item)

	err := s.db.QueryRowContext(ctx, query,
		item.UserID,
		item.Name,
		item.DisplayType,
		item.Amount,
		item.Frequency,
		item.StartDate,
		item.EndDate,
		anchor1,
		anchor2,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating recurring item: %w", err)
	}

	return nil
}

func (s *Store) GetItem(ctx context.Context, userID, id uuid.UUID) (*recurring.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM recurring_items
		WHERE user_id = $1 AND id = $2`

	item, err := scanItem(s.db.QueryRowContext(ctx, query, userID, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", recurring.ErrNotFound, id)
		}

		return nil, fmt.Errorf("getting recurring item: %w", err)
	}

	return item, nil
}

func (s *Store) ListItems(ctx context.Context, userID uuid.UUID, filter recurring.ListFilter) ([]recurring.Item, error) {
	query := `SELECT ` + selectItemColumns + `
		FROM recurring_items
		WHERE user_id = $1`

	args := []any{userID}

	if filter.DisplayType != nil {
		args = append(args, *filter.DisplayType)
		query += fmt.Sprintf(" AND display_type = $%d", len(args))
	}

	if filter.ActiveOn != nil {
		args = append(args, *filter.ActiveOn)
		query += fmt.Sprintf(" AND (end_date IS NULL OR end_date >= $%d)", len(args))
	}

	query += " ORDER BY start_date ASC, name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recurring items: %w", err)
	}
	defer rows.Close()

	var items []recurring.Item

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring item: %w", err)
		}

		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring items: %w", err)
	}

	return items, nil
}

func (s *Store) UpdateItem(ctx context.Context, item *recurring.Item) error {
	query := `
		UPDATE recurring_items
		SET name = $3, display_type = $4, amount = $5, frequency = $6,
			start_date = $7, end_date = $8, anchor_day_1 = $9, anchor_day_2 = $10,
			updated_at = NOW()
		WHERE user_id = $1 AND id = $2
	`

	anchor1, anchor2 := anchorColumns(item)

	res, err := s.db.ExecContext(ctx, query,
		item.UserID,
		item.ID,
		item.Name,
		item.DisplayType,
		item.Amount,
		item.Frequency,
		item.StartDate,
		item.EndDate,
		anchor1,
		anchor2,
	)
	if err != nil {
		return fmt.Errorf("updating recurring item: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: %s", recurring.ErrNotFound, item.ID)
	}

	return nil
}

func (s *Store) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM recurring_items WHERE user_id = $1 AND id = $2`

	_, err := s.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		return fmt.Errorf("deleting recurring item: %w", err)
	}

	return nil
}
