// Package forecast implements the recurring occurrence and allocation engine:
// frequency-aware date projection, per-month override layering, completion
// filtering and pay-period cash allocation. Everything here is a pure
// function over a snapshot of inputs; persistence and transport live with the
// collaborators wired into Service.
package forecast

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/recurring"
)

// Occurrence is a single dated instance of a recurring item. Occurrences are
// regenerated on every query and never stored; only their derived ID may be
// persisted, by the completion store.
type Occurrence struct {
	ID          string
	ItemID      uuid.UUID
	ItemName    string
	DisplayType recurring.DisplayType
	Date        time.Time
	Amount      decimal.Decimal
}

// OccurrenceID derives the stable identity of an occurrence from the item and
// its calendar date. It is built from the date's calendar fields, never from
// an epoch timestamp, so the ID is identical no matter which zone the runtime
// defaults to.
func OccurrenceID(itemID uuid.UUID, date time.Time) string {
	year, month, day := date.Date()

	return fmt.Sprintf("%s::%04d-%02d-%02d", itemID, year, int(month), day)
}

// SortByDate orders occurrences ascending by date, breaking ties by item ID
// so repeated runs over the same inputs produce identical output.
func SortByDate(occs []Occurrence) {
	sort.Slice(occs, func(i, j int) bool {
		if !occs[i].Date.Equal(occs[j].Date) {
			return occs[i].Date.Before(occs[j].Date)
		}

		return occs[i].ID < occs[j].ID
	})
}
