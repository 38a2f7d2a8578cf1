package completion

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=completion
type Repository interface {
	Add(ctx context.Context, record Record) error
	Remove(ctx context.Context, userID uuid.UUID, occurrenceID string) error
	CompletedIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var ErrEmptyOccurrenceID = errors.New("occurrence id is empty")

// Mark records an occurrence as settled. Adding an already-settled occurrence
// is a no-op; the store keeps set semantics.
func (s *Service) Mark(ctx context.Context, userID uuid.UUID, occurrenceID string) error {
	if occurrenceID == "" {
		return ErrEmptyOccurrenceID
	}

	return s.repo.Add(ctx, Record{UserID: userID, OccurrenceID: occurrenceID})
}

// Unmark reverts an occurrence to pending.
func (s *Service) Unmark(ctx context.Context, userID uuid.UUID, occurrenceID string) error {
	if occurrenceID == "" {
		return ErrEmptyOccurrenceID
	}

	return s.repo.Remove(ctx, userID, occurrenceID)
}

// CompletedIDs fetches the settled set for the forecast pipeline.
func (s *Service) CompletedIDs(ctx context.Context, userID uuid.UUID) (map[string]struct{}, error) {
	return s.repo.CompletedIDs(ctx, userID)
}
