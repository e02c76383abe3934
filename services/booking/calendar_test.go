package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		count int
		first string
		last  string
	}{
		{"thirty day month", 2025, time.June, 30, "2025-06-01", "2025-06-30"},
		{"thirty one day month", 2025, time.January, 31, "2025-01-01", "2025-01-31"},
		{"february", 2025, time.February, 28, "2025-02-01", "2025-02-28"},
		{"february leap year", 2024, time.February, 29, "2024-02-01", "2024-02-29"},
		{"december", 2026, time.December, 31, "2026-12-01", "2026-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := DaysInMonth(tt.year, tt.month)
			require.Len(t, days, tt.count)
			assert.Equal(t, tt.first, days[0])
			assert.Equal(t, tt.last, days[len(days)-1])
		})
	}
}

func TestIsPastDate(t *testing.T) {
	// Afternoon clock to prove time-of-day does not leak into the comparison.
	today := time.Date(2025, time.June, 10, 15, 42, 7, 0, time.UTC)

	assert.False(t, IsPastDate("2025-06-10", today), "today is not past")
	assert.False(t, IsPastDate("2025-06-11", today), "tomorrow is not past")
	assert.False(t, IsPastDate("2026-01-01", today), "next year is not past")
	assert.True(t, IsPastDate("2025-06-09", today), "yesterday is past")
	assert.True(t, IsPastDate("2024-12-31", today), "last year is past")
	assert.False(t, IsPastDate("not-a-date", today), "malformed dates are never past")

	midnight := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsPastDate("2025-06-10", midnight))
	assert.True(t, IsPastDate("2025-06-09", midnight))
}

func TestMonthOptions(t *testing.T) {
	months := MonthOptions()
	require.Len(t, months, 12)
	assert.Equal(t, time.January, months[0])
	assert.Equal(t, time.December, months[11])
}

func TestYearOptions(t *testing.T) {
	today := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []int{2025, 2026, 2027}, YearOptions(today))
}
