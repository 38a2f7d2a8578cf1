// Package completion tracks which forecast occurrences have been settled by a
// real transaction. Only the derived occurrence ID is ever persisted;
// occurrences themselves are regenerated on every query.
package completion

import (
	"time"

	"github.com/google/uuid"
)

// Record marks one occurrence as settled. Set semantics: presence means
// done, absence means pending.
type Record struct {
	UserID       uuid.UUID
	OccurrenceID string
	SettledAt    time.Time
}
