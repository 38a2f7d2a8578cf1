package forecast_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/runway/internal/forecast"
	"github.com/mwhitfield/runway/internal/recurring"
)

func incomeOn(day time.Time, amount int64) forecast.Occurrence {
	occ := occurrenceOn(uuid.New(), day, amount)
	occ.DisplayType = recurring.DisplayIncome

	return occ
}

func expenseOn(day time.Time, amount int64) forecast.Occurrence {
	occ := occurrenceOn(uuid.New(), day, amount)
	occ.DisplayType = recurring.DisplayFixedExpense

	return occ
}

func TestAllocateBoundaryBelongsToStartingPeriod(t *testing.T) {
	payDates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 15),
	}

	// Dated exactly on the second pay date: belongs to the period that
	// starts there, never the one ending there.
	pending := []forecast.Occurrence{
		expenseOn(date(2024, time.January, 15), 200),
	}

	periods := forecast.Allocate(payDates, pending, nil, decimal.Zero)

	require.Len(t, periods, 2)
	assert.True(t, periods[0].CommittedOutflows.IsZero())
	assert.True(t, periods[1].CommittedOutflows.Equal(decimal.NewFromInt(200)))
}

func TestAllocateChainsRemainingAcrossPeriods(t *testing.T) {
	payDates := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 15),
		date(2024, time.February, 1),
	}

	pending := []forecast.Occurrence{
		incomeOn(date(2024, time.January, 1), 1000),
		expenseOn(date(2024, time.January, 5), 300),
		incomeOn(date(2024, time.January, 15), 1000),
		expenseOn(date(2024, time.January, 20), 700),
		expenseOn(date(2024, time.February, 10), 200),
	}

	periods := forecast.Allocate(payDates, pending, nil, decimal.NewFromInt(50))

	require.Len(t, periods, 3)

	// 50 + 1000 - 300
	assert.True(t, periods[0].FinalRemaining.Equal(decimal.NewFromInt(750)))
	// 750 + 1000 - 700
	assert.True(t, periods[1].FinalRemaining.Equal(decimal.NewFromInt(1050)))
	// 1050 - 200
	assert.True(t, periods[2].FinalRemaining.Equal(decimal.NewFromInt(850)))

	// Final period is open-ended.
	assert.False(t, periods[0].PeriodEnd.IsZero())
	assert.True(t, periods[2].PeriodEnd.IsZero())
}

func TestAllocateNegativeRemainingIsValid(t *testing.T) {
	payDates := []time.Time{date(2024, time.January, 1)}

	pending := []forecast.Occurrence{
		incomeOn(date(2024, time.January, 1), 100),
		expenseOn(date(2024, time.January, 2), 500),
	}

	periods := forecast.Allocate(payDates, pending, nil, decimal.NewFromInt(50))

	require.Len(t, periods, 1)
	assert.True(t, periods[0].FinalRemaining.Equal(decimal.NewFromInt(-350)))
}

func TestAllocateCompletionSemantics(t *testing.T) {
	payDates := []time.Time{date(2024, time.March, 1)}

	pending := []forecast.Occurrence{
		expenseOn(date(2024, time.March, 10), 200),
	}

	// A settled outflow has already left the account: excluded. Settled
	// income still counts toward the period's gross.
	done := []forecast.Occurrence{
		expenseOn(date(2024, time.March, 5), 400),
		incomeOn(date(2024, time.March, 1), 1000),
	}

	periods := forecast.Allocate(payDates, pending, done, decimal.Zero)

	require.Len(t, periods, 1)
	assert.True(t, periods[0].GrossIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, periods[0].CommittedOutflows.Equal(decimal.NewFromInt(200)))
	assert.True(t, periods[0].FinalRemaining.Equal(decimal.NewFromInt(800)))
}

func TestAllocateSkipsOccurrencesBeforeFirstPayDate(t *testing.T) {
	payDates := []time.Time{date(2024, time.February, 1)}

	pending := []forecast.Occurrence{
		expenseOn(date(2024, time.January, 20), 999),
		expenseOn(date(2024, time.February, 10), 100),
	}

	periods := forecast.Allocate(payDates, pending, nil, decimal.Zero)

	require.Len(t, periods, 1)
	assert.True(t, periods[0].CommittedOutflows.Equal(decimal.NewFromInt(100)))
}

func TestAllocateNoPayDates(t *testing.T) {
	pending := []forecast.Occurrence{
		expenseOn(date(2024, time.January, 20), 100),
	}

	assert.Nil(t, forecast.Allocate(nil, pending, nil, decimal.Zero))
}

func TestAllocateNormalizesPayDates(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)

	payDates := []time.Time{
		time.Date(2024, time.January, 15, 9, 30, 0, 0, zone),
		date(2024, time.January, 1),
		date(2024, time.January, 15), // duplicate after normalization
	}

	periods := forecast.Allocate(payDates, nil, nil, decimal.Zero)

	require.Len(t, periods, 2)
	assert.True(t, periods[0].PeriodStart.Equal(date(2024, time.January, 1)))
	assert.True(t, periods[1].PeriodStart.Equal(date(2024, time.January, 15)))
}
