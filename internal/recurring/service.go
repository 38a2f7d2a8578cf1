package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	CreateItem(ctx context.Context, item *Item) error
	GetItem(ctx context.Context, userID, id uuid.UUID) (*Item, error)
	ListItems(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, userID, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID      uuid.UUID
	Name        string
	DisplayType DisplayType
	Amount      decimal.Decimal
	Frequency   Frequency
	StartDate   time.Time
	EndDate     *time.Time
	AnchorDays  []int
}

type ListFilter struct {
	DisplayType *DisplayType
	ActiveOn    *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Item, error) {
	item := &Item{
		UserID:      params.UserID,
		Name:        params.Name,
		DisplayType: params.DisplayType,
		Amount:      params.Amount,
		Frequency:   params.Frequency,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		AnchorDays:  params.AnchorDays,
	}

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("validating item: %w", err)
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*Item, error) {
	return s.repo.GetItem(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Item, error) {
	return s.repo.ListItems(ctx, userID, filter)
}

func (s *Service) Update(ctx context.Context, item *Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validating item: %w", err)
	}

	return s.repo.UpdateItem(ctx, item)
}

// Delete removes an item. Occurrences are always derived, never stored, so
// deleting the item is enough to make them disappear from subsequent forecasts.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteItem(ctx, userID, id)
}

// ActiveItems returns every item that could still produce occurrences, used
// by the forecast pipeline as its item source.
func (s *Service) ActiveItems(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	return s.repo.ListItems(ctx, userID, ListFilter{})
}
