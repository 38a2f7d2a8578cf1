package recurring

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring item occurs.
type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyBiWeekly    Frequency = "bi-weekly"
	FrequencySemiMonthly Frequency = "semi-monthly"
	FrequencyMonthly     Frequency = "monthly"
	FrequencyQuarterly   Frequency = "quarterly"
	FrequencyYearly      Frequency = "yearly"
)

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiWeekly, FrequencySemiMonthly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}

	return false
}

// DisplayType represents the kind of financial commitment an item is.
type DisplayType string

const (
	DisplayIncome       DisplayType = "income"
	DisplaySubscription DisplayType = "subscription"
	DisplayFixedExpense DisplayType = "fixed-expense"
	DisplayDebtPayment  DisplayType = "debt-payment"
)

// IsValid reports whether d is one of the supported display types.
func (d DisplayType) IsValid() bool {
	switch d {
	case DisplayIncome, DisplaySubscription, DisplayFixedExpense, DisplayDebtPayment:
		return true
	}

	return false
}

var (
	ErrNotFound           = errors.New("recurring item not found")
	ErrEmptyName          = errors.New("item name is empty")
	ErrNonPositiveAmount  = errors.New("amount must be positive")
	ErrUnknownFrequency   = errors.New("unknown frequency")
	ErrUnknownDisplayType = errors.New("unknown display type")
	ErrMissingStartDate   = errors.New("start date is required")
	ErrEndBeforeStart     = errors.New("end date is before start date")
	ErrSemiMonthlyAnchors = errors.New("semi-monthly requires exactly two anchor days in [1,31]")
)

// Item represents one recurring financial commitment. Items are owned by the
// management API; the forecasting engine only ever reads them.
type Item struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	DisplayType DisplayType
	Amount      decimal.Decimal
	Frequency   Frequency
	StartDate   time.Time
	EndDate     *time.Time // inclusive, nil means open-ended

	// AnchorDays holds the two calendar days of month for semi-monthly items.
	// Empty for every other frequency, which anchors on StartDate.
	AnchorDays []int

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Validate checks the structural invariants of an item. A forecast over an
// item that fails validation must error loudly rather than silently skip it.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyName
	}

	if !i.DisplayType.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownDisplayType, i.DisplayType)
	}

	if !i.Frequency.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownFrequency, i.Frequency)
	}

	if !i.Amount.IsPositive() {
		return ErrNonPositiveAmount
	}

	if i.StartDate.IsZero() {
		return ErrMissingStartDate
	}

	if i.EndDate != nil && i.EndDate.Before(i.StartDate) {
		return ErrEndBeforeStart
	}

	if i.Frequency == FrequencySemiMonthly {
		if len(i.AnchorDays) != 2 {
			return ErrSemiMonthlyAnchors
		}

		for _, day := range i.AnchorDays {
			if day < 1 || day > 31 {
				return ErrSemiMonthlyAnchors
			}
		}

		if i.AnchorDays[0] == i.AnchorDays[1] {
			return ErrSemiMonthlyAnchors
		}
	}

	return nil
}
