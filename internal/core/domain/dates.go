package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the canonical calendar-day key format. Every component
// that indexes completions or sleep entries by day must go through DateKey.
const DateKeyLayout = "2006-01-02"

// DateKey formats a date as a zero-padded YYYY-MM-DD key using the date's
// own calendar fields.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// MondayOf returns the Monday on or before t, at t's year/month/day
// granularity. Sunday belongs to the week that started six days earlier.
func MondayOf(t time.Time) time.Time {
	day := startOfDay(t)
	switch day.Weekday() {
	case time.Sunday:
		return day.AddDate(0, 0, -6)
	default:
		return day.AddDate(0, 0, -(int(day.Weekday()) - 1))
	}
}

// AddDays returns t shifted by n calendar days, handling month and year
// rollover.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// WeekDays returns the seven consecutive days starting at weekStart.
func WeekDays(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = AddDays(weekStart, i)
	}
	return days
}

// MonthGrid returns the days of a month padded at the front with zero dates
// so that day 1 lands in its Monday-indexed weekday column (column 0 is
// Monday). The slice has no trailing padding; callers test slots with
// Time.IsZero.
func MonthGrid(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	padding := (int(first.Weekday()) + 6) % 7

	grid := make([]time.Time, 0, padding+last.Day())
	for i := 0; i < padding; i++ {
		grid = append(grid, time.Time{})
	}
	for d := 1; d <= last.Day(); d++ {
		grid = append(grid, time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}
	return grid
}

// DaysBetween returns every day from start through end inclusive, in
// ascending order. An inverted range yields nil.
func DaysBetween(start, end time.Time) []time.Time {
	from := startOfDay(start)
	to := startOfDay(end)

	var days []time.Time
	for d := from; !d.After(to); d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
