package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/completion"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Add(ctx context.Context, record completion.Record) error {
	query := `
		INSERT INTO completed_occurrences (user_id, occurrence_id, settled_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, occurrence_id) DO NOTHING
	`

	_, err := s.db.ExecContext(ctx, query, record.UserID, record.OccurrenceID)
	if err != nil {
		return fmt.Errorf("marking occurrence complete: %w", err)
	}

	return nil
}

func (s *Store) Remove(ctx context.Context, userID uuid.UUID, occurrenceID string) error {
	query := `DELETE FROM completed_occurrences WHERE user_id = $1 AND occurrence_id = $2`

	_, err := s.db.ExecContext(ctx, query, userID, occurrenceID)
	if err != nil {
		return fmt.Errorf("unmarking occurrence: %w", err)
	}

	return nil
}

func (s *Store) CompletedIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	query := `SELECT occurrence_id FROM completed_occurrences WHERE user_id = $1`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing completed occurrences: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})

	for rows.Next() {
		var id string

		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning occurrence id: %w", err)
		}

		ids[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completed occurrences: %w", err)
	}

	return ids, nil
}
