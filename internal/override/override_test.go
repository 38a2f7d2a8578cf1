package override_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/runway/internal/override"
)

func TestParseMonthYear(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    override.MonthYear
		wantErr bool
	}

	tests := []testCase{
		{
			name:  "Valid",
			input: "2024-03",
			want:  override.MonthYear{Year: 2024, Month: time.March},
		},
		{
			name:  "December",
			input: "2023-12",
			want:  override.MonthYear{Year: 2023, Month: time.December},
		},
		{
			name:    "MissingMonth",
			input:   "2024",
			wantErr: true,
		},
		{
			name:    "DayIncluded",
			input:   "2024-03-15",
			wantErr: true,
		},
		{
			name:    "MonthOutOfRange",
			input:   "2024-13",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := override.ParseMonthYear(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonthYearRoundTrip(t *testing.T) {
	m := override.MonthYear{Year: 2024, Month: time.September}

	parsed, err := override.ParseMonthYear(m.String())

	require.NoError(t, err)
	assert.Equal(t, m, parsed)
}

func TestMonthYearNext(t *testing.T) {
	assert.Equal(t,
		override.MonthYear{Year: 2024, Month: time.February},
		override.MonthYear{Year: 2024, Month: time.January}.Next())

	assert.Equal(t,
		override.MonthYear{Year: 2025, Month: time.January},
		override.MonthYear{Year: 2024, Month: time.December}.Next())
}

func TestMonthYearBefore(t *testing.T) {
	jan := override.MonthYear{Year: 2024, Month: time.January}
	feb := override.MonthYear{Year: 2024, Month: time.February}
	prevDec := override.MonthYear{Year: 2023, Month: time.December}

	assert.True(t, jan.Before(feb))
	assert.False(t, feb.Before(jan))
	assert.False(t, jan.Before(jan))
	assert.True(t, prevDec.Before(jan))
}

func TestMonthYearScan(t *testing.T) {
	want := override.MonthYear{Year: 2024, Month: time.June}

	var fromString override.MonthYear
	require.NoError(t, fromString.Scan("2024-06"))
	assert.Equal(t, want, fromString)

	var fromBytes override.MonthYear
	require.NoError(t, fromBytes.Scan([]byte("2024-06")))
	assert.Equal(t, want, fromBytes)

	var fromTime override.MonthYear
	require.NoError(t, fromTime.Scan(time.Date(2024, time.June, 17, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, want, fromTime)

	var m override.MonthYear
	assert.Error(t, m.Scan(42))
	assert.Error(t, m.Scan("not-a-month"))
}

func TestMonthYearValue(t *testing.T) {
	v, err := override.MonthYear{Year: 2024, Month: time.March}.Value()

	require.NoError(t, err)
	assert.Equal(t, "2024-03", v)
}
