package booking

import "time"

const dateLayout = "2006-01-02"

// yearHorizon bounds the calendar picker: today's year plus the following
// two are selectable.
const yearHorizon = 3

// DaysInMonth returns every calendar day of the given month as ISO date
// strings, ascending from the 1st to the last day (28-31 entries).
func DaysInMonth(year int, month time.Month) []string {
	var days []string
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dateLayout))
	}
	return days
}

// IsPastDate reports whether date (yyyy-mm-dd) falls strictly before today
// at day granularity. Time-of-day on today is ignored; a malformed date is
// never past.
func IsPastDate(date string, today time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	y, m, day := today.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// MonthOptions returns the twelve selectable calendar months in order.
func MonthOptions() []time.Month {
	months := make([]time.Month, 12)
	for i := range months {
		months[i] = time.Month(i + 1)
	}
	return months
}

// YearOptions returns the selectable years: today's year and the following
// two.
func YearOptions(today time.Time) []int {
	years := make([]int, yearHorizon)
	for i := range years {
		years[i] = today.Year() + i
	}
	return years
}

func viewInRange(year int, month time.Month, today time.Time) bool {
	if month < time.January || month > time.December {
		return false
	}
	return year >= today.Year() && year < today.Year()+yearHorizon
}
