package export_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/runway/internal/export"
	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/recurring"
)

type stubSource struct {
	result *forecast.Result
	err    error
}

func (s *stubSource) Occurrences(_ context.Context, _ uuid.UUID, _ forecast.Window, _ time.Time) (*forecast.Result, error) {
	return s.result, s.err
}

func TestWriteCSV(t *testing.T) {
	itemID := uuid.MustParse("11111111-1111-4111-8111-111111111111")

	source := &stubSource{
		result: &forecast.Result{
			Occurrences: []forecast.Occurrence{
				{
					ID:          forecast.OccurrenceID(itemID, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
					ItemID:      itemID,
					ItemName:    "Rent",
					DisplayType: recurring.DisplayFixedExpense,
					Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
					Amount:      decimal.NewFromInt(1200),
				},
				{
					ID:          forecast.OccurrenceID(itemID, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
					ItemID:      itemID,
					ItemName:    "Rent",
					DisplayType: recurring.DisplayFixedExpense,
					Date:        time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
					Amount:      decimal.NewFromInt(1200),
				},
			},
		},
	}

	var sb strings.Builder

	err := export.NewService(source).WriteCSV(context.Background(), &sb, uuid.New(), forecast.Window{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.April, 30, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "occurrence_id,item_name,display_type,date,amount", lines[0])
	assert.Contains(t, lines[1], "Rent,fixed-expense,2024-03-01,1200")
	assert.Contains(t, lines[2], "Rent,fixed-expense,2024-04-01,1200")
}

func TestWriteCSVEmptyStream(t *testing.T) {
	source := &stubSource{result: &forecast.Result{}}

	var sb strings.Builder

	err := export.NewService(source).WriteCSV(context.Background(), &sb, uuid.New(), forecast.Window{
		Start: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, "occurrence_id,item_name,display_type,date,amount\n", sb.String())
}

func TestWriteCSVSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("db error")}

	var sb strings.Builder

	err := export.NewService(source).WriteCSV(context.Background(), &sb, uuid.New(), forecast.Window{})

	assert.Error(t, err)
	assert.Empty(t, sb.String(), "nothing written on source failure")
}
