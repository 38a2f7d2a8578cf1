package forecast

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/recurring"
)

var (
	// ErrInvalidWindow means the requested window is missing a bound or ends
	// before it starts. Request-level: the whole call fails.
	ErrInvalidWindow = errors.New("invalid forecast window")

	// ErrWindowExceeded means the requested window spans more than MaxWindowDays.
	// The bound is enforced before the first projection so an unbounded item can
	// never cause unbounded iteration.
	ErrWindowExceeded = errors.New("forecast window exceeds maximum span")

	// ErrScheduleStalled means a frequency projection stopped advancing; a bug
	// guard, surfaced per item rather than looping forever.
	ErrScheduleStalled = errors.New("schedule projection stopped advancing")
)

// MaxWindowDays bounds a forecast window to five years.
const MaxWindowDays = 5 * 366

// Window is the closed date range occurrences are generated over.
type Window struct {
	Start time.Time
	End   time.Time
}

// Validate normalizes and checks the window bounds.
func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return ErrInvalidWindow
	}

	start, end := DateOnly(w.Start), DateOnly(w.End)

	if end.Before(start) {
		return ErrInvalidWindow
	}

	if end.Sub(start) > MaxWindowDays*24*time.Hour {
		return ErrWindowExceeded
	}

	return nil
}

// ItemError reports that one item could not be forecast. Callers decide
// whether to fail their whole view or show partial results; a silently
// missing debt payment is worse than a loud error.
type ItemError struct {
	ItemID   uuid.UUID
	ItemName string
	Err      error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %s (%s): %v", e.ItemID, e.ItemName, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

// Result is the generator's output: the occurrences that could be produced
// plus the items that could not.
type Result struct {
	Occurrences []Occurrence
	Failures    []ItemError
}

// Generate produces every occurrence of the given items inside the window,
// floored by trackingFloor (zero means no floor). The output carries no
// global ordering; use SortByDate before presenting it. Generation is
// deterministic: the same inputs always yield the same result, and nothing in
// here reads the clock.
func Generate(items []recurring.Item, window Window, trackingFloor time.Time) (*Result, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	start, end := DateOnly(window.Start), DateOnly(window.End)

	if !trackingFloor.IsZero() {
		if floor := DateOnly(trackingFloor); floor.After(start) {
			start = floor
		}
	}

	result := &Result{}

	for _, item := range items {
		occs, err := generateItem(item, start, end)
		if err != nil {
			result.Failures = append(result.Failures, ItemError{
				ItemID:   item.ID,
				ItemName: item.Name,
				Err:      err,
			})

			continue
		}

		result.Occurrences = append(result.Occurrences, occs...)
	}

	return result, nil
}

func generateItem(item recurring.Item, start, end time.Time) ([]Occurrence, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	cursor := start
	if itemStart := DateOnly(item.StartDate); itemStart.After(cursor) {
		cursor = itemStart
	}

	var occs []Occurrence

	for !cursor.After(end) {
		date, ok := NextOccurrence(item, cursor)
		if !ok || date.After(end) {
			break
		}

		if date.Before(cursor) {
			return nil, ErrScheduleStalled
		}

		occs = append(occs, Occurrence{
			ID:          OccurrenceID(item.ID, date),
			ItemID:      item.ID,
			ItemName:    item.Name,
			DisplayType: item.DisplayType,
			Date:        date,
			Amount:      item.Amount,
		})

		cursor = date.AddDate(0, 0, 1)
	}

	return occs, nil
}
