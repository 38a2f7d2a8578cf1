// Package payschedule derives a user's pay dates from their configured
// paycheck preferences. Date projection reuses the forecast engine's
// frequency calculator so there is exactly one implementation of schedule
// math in the system.
package payschedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/recurring"
)

var (
	ErrNotFound             = errors.New("pay schedule not found")
	ErrUnsupportedFrequency = errors.New("unsupported pay frequency")
	ErrMissingAnchorDate    = errors.New("anchor date is required")
	ErrSemiMonthlyAnchors   = errors.New("semi-monthly pay requires exactly two anchor days in [1,31]")
)

// Preferences is a user's paycheck configuration: how often they are paid and
// the anchor the schedule is projected from.
type Preferences struct {
	UserID    uuid.UUID
	Frequency recurring.Frequency
	// AnchorDate is the reference pay date for single-anchor frequencies.
	AnchorDate time.Time
	// AnchorDays holds the two pay days of month for semi-monthly schedules.
	AnchorDays []int
	UpdatedAt  *time.Time
}

// Validate checks the preferences. Pay schedules support a subset of item
// frequencies; nobody is paid quarterly.
func (p Preferences) Validate() error {
	switch p.Frequency {
	case recurring.FrequencyWeekly, recurring.FrequencyBiWeekly,
		recurring.FrequencySemiMonthly, recurring.FrequencyMonthly:
	default:
		return ErrUnsupportedFrequency
	}

	if p.AnchorDate.IsZero() {
		return ErrMissingAnchorDate
	}

	if p.Frequency == recurring.FrequencySemiMonthly {
		if len(p.AnchorDays) != 2 {
			return ErrSemiMonthlyAnchors
		}

		for _, day := range p.AnchorDays {
			if day < 1 || day > 31 {
				return ErrSemiMonthlyAnchors
			}
		}

		if p.AnchorDays[0] == p.AnchorDays[1] {
			return ErrSemiMonthlyAnchors
		}
	}

	return nil
}
