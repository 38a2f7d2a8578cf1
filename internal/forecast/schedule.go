package forecast

import (
	"sort"
	"time"

	"github.com/mwhitfield/runway/internal/recurring"
)

// DateOnly strips the time-of-day and zone from t, re-anchoring its calendar
// fields at UTC midnight. All engine date math happens on DateOnly values;
// normalization is enforced here at the boundary rather than threaded through
// every computation.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// NewDate builds a UTC-midnight calendar date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the real calendar length of a month; day zero of the
// following month. Leap years fall out of the real calendar, no table needed.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// monthAnchor places day-of-month in the month identified by idx (months
// since year zero), clamping to the month's last day when it is shorter.
// A Jan 31 monthly item lands on Feb 28, or Feb 29 in a leap year.
func monthAnchor(idx, day int) time.Time {
	year := idx / 12
	month := time.Month(idx%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}

	return NewDate(year, month, day)
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// NextOccurrence returns the smallest occurrence date >= after consistent
// with the item's frequency and anchors, or ok=false when the item's end date
// is already behind any candidate. Callers are expected to have validated the
// item; an unknown frequency yields ok=false rather than a guess.
func NextOccurrence(item recurring.Item, after time.Time) (time.Time, bool) {
	after = DateOnly(after)
	start := DateOnly(item.StartDate)

	if after.Before(start) {
		after = start
	}

	var next time.Time

	switch item.Frequency {
	case recurring.FrequencyDaily:
		next = after
	case recurring.FrequencyWeekly:
		next = stepDays(start, after, 7)
	case recurring.FrequencyBiWeekly:
		next = stepDays(start, after, 14)
	case recurring.FrequencyMonthly:
		next = stepMonths(start, after, 1)
	case recurring.FrequencyQuarterly:
		next = stepMonths(start, after, 3)
	case recurring.FrequencyYearly:
		next = stepMonths(start, after, 12)
	case recurring.FrequencySemiMonthly:
		next = nextSemiMonthly(item.AnchorDays, after)
	default:
		return time.Time{}, false
	}

	if item.EndDate != nil && next.After(DateOnly(*item.EndDate)) {
		return time.Time{}, false
	}

	return next, true
}

// stepDays advances from the start anchor in fixed day-sized strides:
// start + n*interval where n = ceil((after-start)/interval).
func stepDays(start, after time.Time, interval int) time.Time {
	days := int(after.Sub(start).Hours() / 24)

	n := days / interval
	if days%interval != 0 {
		n++
	}

	return start.AddDate(0, 0, n*interval)
}

// stepMonths advances the start date's day-of-month in step-month strides,
// clamping into short months.
func stepMonths(start, after time.Time, step int) time.Time {
	anchorDay := start.Day()
	startIdx := monthIndex(start)

	k := (monthIndex(after) - startIdx) / step
	if k < 0 {
		k = 0
	}

	cand := monthAnchor(startIdx+k*step, anchorDay)
	for cand.Before(after) {
		k++
		cand = monthAnchor(startIdx+k*step, anchorDay)
	}

	return cand
}

// nextSemiMonthly projects the two anchor days into after's month, each
// independently clamped, and returns the earliest candidate >= after, falling
// through to the following month's first anchor when both have passed.
func nextSemiMonthly(anchorDays []int, after time.Time) time.Time {
	anchors := make([]int, len(anchorDays))
	copy(anchors, anchorDays)
	sort.Ints(anchors)

	idx := monthIndex(after)

	for offset := 0; ; offset++ {
		for _, day := range anchors {
			cand := monthAnchor(idx+offset, day)
			if !cand.Before(after) {
				return cand
			}
		}
	}
}
