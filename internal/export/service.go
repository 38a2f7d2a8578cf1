// Package export renders forecast occurrence streams as CSV for use in
// spreadsheets and external budgeting tools.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/mwhitfield/runway/internal/forecast"
)

// OccurrenceSource is the slice of the forecast service the exporter needs.
type OccurrenceSource interface {
	Occurrences(ctx context.Context, userID uuid.UUID, window forecast.Window, trackingFloor time.Time) (*forecast.Result, error)
}

type Service struct {
	occurrences OccurrenceSource
}

func NewService(occurrences OccurrenceSource) *Service {
	return &Service{occurrences: occurrences}
}

var csvHeader = []string{"occurrence_id", "item_name", "display_type", "date", "amount"}

// WriteCSV streams the user's occurrences inside the window to w as CSV, one
// row per occurrence, sorted ascending by date. Per-item generation failures
// do not abort the export; the rows that could be generated are still written.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, userID uuid.UUID, window forecast.Window) error {
	result, err := s.occurrences.Occurrences(ctx, userID, window, time.Time{})
	if err != nil {
		return fmt.Errorf("generating occurrences: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, occ := range result.Occurrences {
		row := []string{
			occ.ID,
			occ.ItemName,
			string(occ.DisplayType),
			occ.Date.Format(time.DateOnly),
			occ.Amount.String(),
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
