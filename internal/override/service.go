package override

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=override
type Repository interface {
	Upsert(ctx context.Context, ov Override) error
	Delete(ctx context.Context, userID, itemID uuid.UUID, month MonthYear) error
	ForMonth(ctx context.Context, userID uuid.UUID, month MonthYear) ([]Override, error)
	ForRange(ctx context.Context, userID uuid.UUID, from, to MonthYear) ([]Override, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var ErrNonPositiveAmount = fmt.Errorf("override amount must be positive")

// Upsert records an override, replacing any existing one for the same
// (item, month) key. Concurrent writers race under last-write-wins semantics;
// the store's on-conflict update settles them.
func (s *Service) Upsert(ctx context.Context, userID, itemID uuid.UUID, month MonthYear, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	return s.repo.Upsert(ctx, Override{
		UserID: userID,
		ItemID: itemID,
		Month:  month,
		Amount: amount,
	})
}

// Delete removes an override, reverting the item to its default amount for
// that month.
func (s *Service) Delete(ctx context.Context, userID, itemID uuid.UUID, month MonthYear) error {
	return s.repo.Delete(ctx, userID, itemID, month)
}

// ForMonth returns the overrides active for one month keyed by item.
func (s *Service) ForMonth(ctx context.Context, userID uuid.UUID, month MonthYear) (map[uuid.UUID]decimal.Decimal, error) {
	ovs, err := s.repo.ForMonth(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	amounts := make(map[uuid.UUID]decimal.Decimal, len(ovs))
	for _, ov := range ovs {
		amounts[ov.ItemID] = ov.Amount
	}

	return amounts, nil
}

// ForRange returns all overrides for months in [from, to] inclusive, used by
// the forecast pipeline to layer amounts over a whole window in one fetch.
func (s *Service) ForRange(ctx context.Context, userID uuid.UUID, from, to MonthYear) ([]Override, error) {
	if to.Before(from) {
		from, to = to, from
	}

	return s.repo.ForRange(ctx, userID, from, to)
}
