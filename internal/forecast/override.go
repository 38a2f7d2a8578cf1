package forecast

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/override"
)

type overrideKey struct {
	ItemID uuid.UUID
	Month  override.MonthYear
}

// ApplyOverrides layers per-month amount corrections onto generated
// occurrences and returns a new slice; the input is left untouched. An
// override applies to every occurrence of its item within its month, so a
// weekly item with three March occurrences carries the March override amount
// three times.
//
// At most one override should exist per (item, month). If storage ever hands
// back more than one, the most recently updated wins so the layer stays total
// and deterministic; the duplicate is logged as a data-integrity signal, not
// surfaced as an error.
func ApplyOverrides(occs []Occurrence, overrides []override.Override) []Occurrence {
	if len(occs) == 0 {
		return nil
	}

	byKey := make(map[overrideKey]override.Override, len(overrides))

	for _, ov := range overrides {
		key := overrideKey{ItemID: ov.ItemID, Month: ov.Month}

		existing, ok := byKey[key]
		if ok {
			slog.Warn("duplicate override for item month",
				"item_id", ov.ItemID,
				"month", ov.Month.String(),
			)

			if !ov.UpdatedAt.After(existing.UpdatedAt) {
				continue
			}
		}

		byKey[key] = ov
	}

	out := make([]Occurrence, len(occs))

	for i, occ := range occs {
		out[i] = occ

		key := overrideKey{ItemID: occ.ItemID, Month: override.MonthOf(occ.Date)}
		if ov, ok := byKey[key]; ok {
			out[i].Amount = ov.Amount
		}
	}

	return out
}
