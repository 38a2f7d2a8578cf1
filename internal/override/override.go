// Package override implements per-month amount corrections for recurring
// items. An override is keyed by (item, month) and replaces the item's
// default amount for every occurrence in that month.
package override

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthYear identifies a calendar month with no day component. It is half of
// the natural key (itemID, monthYear) an override is stored under.
type MonthYear struct {
	Year  int
	Month time.Month
}

const monthYearLayout = "2006-01"

// MonthOf returns the MonthYear containing t.
func MonthOf(t time.Time) MonthYear {
	return MonthYear{Year: t.Year(), Month: t.Month()}
}

// ParseMonthYear parses a "YYYY-MM" string.
func ParseMonthYear(s string) (MonthYear, error) {
	t, err := time.Parse(monthYearLayout, s)
	if err != nil {
		return MonthYear{}, fmt.Errorf("parsing month %q: %w", s, err)
	}

	return MonthOf(t), nil
}

func (m MonthYear) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Next returns the month immediately after m.
func (m MonthYear) Next() MonthYear {
	if m.Month == time.December {
		return MonthYear{Year: m.Year + 1, Month: time.January}
	}

	return MonthYear{Year: m.Year, Month: m.Month + 1}
}

// Before reports whether m is strictly earlier than other.
func (m MonthYear) Before(other MonthYear) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}

	return m.Month < other.Month
}

// Scan implements sql.Scanner; the store persists months as "YYYY-MM" text.
func (m *MonthYear) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseMonthYear(v)
		if err != nil {
			return err
		}

		*m = parsed

		return nil
	case []byte:
		return m.Scan(string(v))
	case time.Time:
		*m = MonthOf(v)

		return nil
	default:
		return fmt.Errorf("cannot scan %T into MonthYear", src)
	}
}

// Value implements driver.Valuer.
func (m MonthYear) Value() (driver.Value, error) {
	return m.String(), nil
}

// Override is a user correction to one item's amount for one calendar month.
// At most one override exists per (itemID, monthYear); the store enforces
// last-write-wins on conflict.
type Override struct {
	UserID    uuid.UUID
	ItemID    uuid.UUID
	Month     MonthYear
	Amount    decimal.Decimal
	UpdatedAt time.Time
}
