package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

func TestDateKey(t *testing.T) {
	t.Run("Success: Zero-pads month and day", func(t *testing.T) {
		d := time.Date(2024, time.March, 5, 13, 45, 0, 0, time.UTC)
		assert.Equal(t, "2024-03-05", domain.DateKey(d))
	})

	t.Run("Success: Round trips through ParseDateKey", func(t *testing.T) {
		parsed, err := domain.ParseDateKey("2024-12-31")
		assert.Nil(t, err)
		assert.Equal(t, "2024-12-31", domain.DateKey(parsed))
	})

	t.Run("Fail: Rejects malformed keys", func(t *testing.T) {
		_, err := domain.ParseDateKey("31/12/2024")
		assert.NotNil(t, err)

		_, err = domain.ParseDateKey("2024-13-01")
		assert.NotNil(t, err)
	})
}

func TestMondayOf(t *testing.T) {
	t.Run("Success: Midweek maps back to Monday", func(t *testing.T) {
		// 2024-01-10 is a Wednesday.
		wed := time.Date(2024, time.January, 10, 18, 30, 0, 0, time.UTC)
		assert.Equal(t, "2024-01-08", domain.DateKey(domain.MondayOf(wed)))
	})

	t.Run("Edge Case: Sunday belongs to the preceding Monday", func(t *testing.T) {
		sun := time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-01-08", domain.DateKey(domain.MondayOf(sun)))
	})

	t.Run("Edge Case: Monday is a fixed point", func(t *testing.T) {
		mon := time.Date(2024, time.January, 8, 23, 59, 0, 0, time.UTC)
		got := domain.MondayOf(mon)
		assert.Equal(t, "2024-01-08", domain.DateKey(got))
		assert.Equal(t, got, domain.MondayOf(got))
	})

	t.Run("Edge Case: Crosses a month boundary", func(t *testing.T) {
		// 2024-03-01 is a Friday; its Monday is in February.
		fri := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2024-02-26", domain.DateKey(domain.MondayOf(fri)))
	})
}

func TestWeekDays(t *testing.T) {
	start := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	days := domain.WeekDays(start)

	assert.Len(t, days, 7)
	assert.Equal(t, "2024-01-08", domain.DateKey(days[0]))
	assert.Equal(t, "2024-01-14", domain.DateKey(days[6]))
}

func TestMonthGrid(t *testing.T) {
	t.Run("Success: Month starting on Monday has no padding", func(t *testing.T) {
		// January 2024 starts on a Monday.
		grid := domain.MonthGrid(2024, time.January)
		assert.Len(t, grid, 31)
		assert.False(t, grid[0].IsZero())
		assert.Equal(t, 1, grid[0].Day())
	})

	t.Run("Success: Month starting on Sunday pads six slots", func(t *testing.T) {
		// September 2024 starts on a Sunday.
		grid := domain.MonthGrid(2024, time.September)
		assert.Len(t, grid, 36)
		for i := 0; i < 6; i++ {
			assert.True(t, grid[i].IsZero())
		}
		assert.Equal(t, 1, grid[6].Day())
	})

	t.Run("Edge Case: Leap February", func(t *testing.T) {
		// February 2024 starts on a Thursday.
		grid := domain.MonthGrid(2024, time.February)
		assert.Len(t, grid, 3+29)
		assert.Equal(t, 29, grid[len(grid)-1].Day())
	})
}

func TestDaysBetween(t *testing.T) {
	t.Run("Success: Inclusive on both ends", func(t *testing.T) {
		start := time.Date(2024, time.January, 30, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.February, 2, 0, 0, 0, 0, time.UTC)

		days := domain.DaysBetween(start, end)
		assert.Len(t, days, 4)
		assert.Equal(t, "2024-01-30", domain.DateKey(days[0]))
		assert.Equal(t, "2024-02-02", domain.DateKey(days[3]))
	})

	t.Run("Edge Case: Single-day range", func(t *testing.T) {
		d := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		assert.Len(t, domain.DaysBetween(d, d), 1)
	})

	t.Run("Edge Case: Inverted range yields nothing", func(t *testing.T) {
		start := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, domain.DaysBetween(start, end))
	})

	t.Run("Edge Case: Ignores time-of-day on the bounds", func(t *testing.T) {
		start := time.Date(2024, time.June, 1, 23, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.June, 3, 1, 0, 0, 0, time.UTC)
		assert.Len(t, domain.DaysBetween(start, end), 3)
	})
}
