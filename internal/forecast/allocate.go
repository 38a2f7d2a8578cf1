package forecast

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mwhitfield/runway/internal/recurring"
)

// PeriodBreakdown is the allocator's answer for one pay period: what comes
// in, what is still committed to go out, and what is left to spend.
type PeriodBreakdown struct {
	PeriodStart time.Time

	// PeriodEnd is the exclusive end of the period; zero for the open-ended
	// final period.
	PeriodEnd time.Time

	GrossIncome       decimal.Decimal
	CommittedOutflows decimal.Decimal

	// FinalRemaining chains from the starting balance through each period.
	// Negative means overcommitted, which is a valid reportable state, not
	// an error.
	FinalRemaining decimal.Decimal
}

// Allocate partitions occurrences into the half-open pay periods
// [payDates[i], payDates[i+1]), the final period open-ended. An occurrence
// dated exactly on a pay date belongs to the period that starts that day.
// Income sums over all occurrences regardless of completion; outflows sum
// over pending ones only, since completed outflows have already left the
// account and show up in real balances instead.
func Allocate(payDates []time.Time, pending, done []Occurrence, startingBalance decimal.Decimal) []PeriodBreakdown {
	if len(payDates) == 0 {
		return nil
	}

	starts := normalizePayDates(payDates)

	periods := make([]PeriodBreakdown, len(starts))
	for i, start := range starts {
		periods[i] = PeriodBreakdown{
			PeriodStart:       start,
			GrossIncome:       decimal.Zero,
			CommittedOutflows: decimal.Zero,
		}

		if i+1 < len(starts) {
			periods[i].PeriodEnd = starts[i+1]
		}
	}

	for _, occ := range pending {
		i, ok := periodIndex(starts, occ.Date)
		if !ok {
			continue
		}

		if occ.DisplayType == recurring.DisplayIncome {
			periods[i].GrossIncome = periods[i].GrossIncome.Add(occ.Amount)
		} else {
			periods[i].CommittedOutflows = periods[i].CommittedOutflows.Add(occ.Amount)
		}
	}

	for _, occ := range done {
		if occ.DisplayType != recurring.DisplayIncome {
			continue
		}

		if i, ok := periodIndex(starts, occ.Date); ok {
			periods[i].GrossIncome = periods[i].GrossIncome.Add(occ.Amount)
		}
	}

	remaining := startingBalance
	for i := range periods {
		remaining = remaining.Add(periods[i].GrossIncome).Sub(periods[i].CommittedOutflows)
		periods[i].FinalRemaining = remaining
	}

	return periods
}

// normalizePayDates strips time-of-day, sorts ascending and drops duplicates.
func normalizePayDates(payDates []time.Time) []time.Time {
	starts := make([]time.Time, 0, len(payDates))
	for _, d := range payDates {
		starts = append(starts, DateOnly(d))
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })

	dedup := starts[:0]
	for i, d := range starts {
		if i == 0 || !d.Equal(starts[i-1]) {
			dedup = append(dedup, d)
		}
	}

	return dedup
}

// periodIndex finds the period a date falls in: the last period start <= date.
// Dates before the first pay date precede every period and are not allocated.
func periodIndex(starts []time.Time, date time.Time) (int, bool) {
	date = DateOnly(date)

	if date.Before(starts[0]) {
		return 0, false
	}

	// First start strictly after date; the date's period is the one before it.
	i := sort.Search(len(starts), func(i int) bool { return starts[i].After(date) })

	return i - 1, true
}
