package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

func mkHabit(t *testing.T, name string) *domain.Habit {
	t.Helper()
	h, err := domain.NewHabit(name, domain.CategoryGeneral)
	assert.Nil(t, err)
	return h
}

func TestDailyStats(t *testing.T) {
	h1 := mkHabit(t, "Run")
	h2 := mkHabit(t, "Read")
	habits := []*domain.Habit{h1, h2}

	completions := domain.CompletionMap{
		h1.ID: {"2024-03-04": true, "2024-03-05": true},
		h2.ID: {"2024-03-04": true},
	}
	sleep := domain.SleepMap{"2024-03-04": 480}

	days := domain.DaysBetween(
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
	)
	stats := domain.DailyStats(habits, completions, sleep, days)

	assert.Len(t, stats, 3)

	assert.Equal(t, 2, stats[0].Completed)
	assert.Equal(t, 2, stats[0].Total)
	assert.Equal(t, 480, stats[0].SleepMinutes)
	assert.Equal(t, 8.0, stats[0].SleepHours())

	assert.Equal(t, 1, stats[1].Completed)
	assert.Equal(t, domain.DefaultSleepMinutes, stats[1].SleepMinutes,
		"days without a sleep entry MUST read as the six-hour default")

	assert.Equal(t, 0, stats[2].Completed)
}

func TestPerfectDays(t *testing.T) {
	t.Run("Success: Counts fully completed days only", func(t *testing.T) {
		stats := []domain.DayStat{
			{Completed: 2, Total: 2},
			{Completed: 1, Total: 2},
			{Completed: 2, Total: 2},
		}
		assert.Equal(t, 2, domain.PerfectDays(stats))
	})

	t.Run("Edge Case: Zero habits is never perfect", func(t *testing.T) {
		stats := []domain.DayStat{{Completed: 0, Total: 0}}
		assert.Equal(t, 0, domain.PerfectDays(stats))
	})
}

func TestCompletionPercent(t *testing.T) {
	h := mkHabit(t, "Run")
	habits := []*domain.Habit{h}
	days := domain.DaysBetween(
		time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC),
	)

	t.Run("Success: Rounds to nearest integer", func(t *testing.T) {
		completions := domain.CompletionMap{
			h.ID: {"2024-03-04": true, "2024-03-05": true},
		}
		// 2 of 3 -> 66.67 -> 67.
		assert.Equal(t, 67, domain.CompletionPercent(habits, completions, days))
	})

	t.Run("Edge Case: No habits yields zero", func(t *testing.T) {
		assert.Equal(t, 0, domain.CompletionPercent(nil, domain.CompletionMap{}, days))
	})

	t.Run("Edge Case: No days yields zero", func(t *testing.T) {
		assert.Equal(t, 0, domain.CompletionPercent(habits, domain.CompletionMap{}, nil))
	})
}

func TestCalendarMonthWeeks(t *testing.T) {
	t.Run("Success: 31-day month stretches the last bucket", func(t *testing.T) {
		weeks := domain.CalendarMonthWeeks(2024, time.March)

		assert.Len(t, weeks, 4)
		assert.Equal(t, "Week 1", weeks[0].Label)
		assert.Equal(t, 1, weeks[0].Start.Day())
		assert.Equal(t, 7, weeks[0].End.Day())
		assert.Equal(t, 22, weeks[3].Start.Day())
		assert.Equal(t, 31, weeks[3].End.Day())
		assert.Len(t, weeks[3].Days(), 10)
	})

	t.Run("Edge Case: Non-leap February truncates at 28", func(t *testing.T) {
		weeks := domain.CalendarMonthWeeks(2023, time.February)
		assert.Equal(t, 28, weeks[3].End.Day())
		assert.Len(t, weeks[3].Days(), 7)
	})

	t.Run("Edge Case: Leap February ends at 29", func(t *testing.T) {
		weeks := domain.CalendarMonthWeeks(2024, time.February)
		assert.Equal(t, 29, weeks[3].End.Day())
	})
}

func TestMondayAlignedChunks(t *testing.T) {
	t.Run("Success: Splits at each Monday after a non-empty run", func(t *testing.T) {
		// 2024-01-03 is a Wednesday, 2024-01-08 and 2024-01-15 are Mondays.
		days := domain.DaysBetween(
			time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		)
		chunks := domain.MondayAlignedChunks(days)

		assert.Len(t, chunks, 3)
		assert.Equal(t, "Week 1", chunks[0].Label)
		assert.Len(t, chunks[0].Days(), 5) // Wed..Sun
		assert.Len(t, chunks[1].Days(), 7)
		assert.Len(t, chunks[2].Days(), 1) // the lone trailing Monday
	})

	t.Run("Edge Case: Range starting on Monday has no leading partial", func(t *testing.T) {
		days := domain.DaysBetween(
			time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 21, 0, 0, 0, 0, time.UTC),
		)
		chunks := domain.MondayAlignedChunks(days)

		assert.Len(t, chunks, 2)
		assert.Len(t, chunks[0].Days(), 7)
		assert.Len(t, chunks[1].Days(), 7)
	})

	t.Run("Edge Case: Empty input yields no chunks", func(t *testing.T) {
		assert.Empty(t, domain.MondayAlignedChunks(nil))
	})
}

func TestHabitWeeklyCounts(t *testing.T) {
	completions := domain.CompletionMap{
		"h1": {
			"2024-03-01": true,
			"2024-03-07": true,
			"2024-03-10": true,
			"2024-03-25": true,
		},
	}

	counts := domain.HabitWeeklyCounts("h1", completions, 2024, time.March)

	assert.Len(t, counts, 4)
	assert.Equal(t, "W1", counts[0].Label)
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, 7, counts[0].Days)
	assert.Equal(t, 1, counts[1].Count)
	assert.Equal(t, 0, counts[2].Count)
	assert.Equal(t, 1, counts[3].Count)
	assert.Equal(t, 10, counts[3].Days)
}

func TestWeeklyImprovement(t *testing.T) {
	h := mkHabit(t, "Run")
	completions := domain.CompletionMap{
		h.ID: {
			"2024-02-01": true, "2024-02-02": true, "2024-02-03": true,
			"2024-02-04": true, "2024-02-05": true, "2024-02-06": true,
			"2024-02-07": true,
			"2024-02-08": true,
		},
	}

	out := domain.WeeklyImprovement([]*domain.Habit{h}, completions, 2024, time.February)

	assert.Len(t, out, 4)
	assert.Equal(t, 100, out[0].Percentage)
	assert.Equal(t, 14, out[1].Percentage) // 1 of 7
	assert.Equal(t, 0, out[2].Percentage)
	assert.Equal(t, 0, out[3].Percentage)
}

func TestAverageSleepHours(t *testing.T) {
	t.Run("Success: Mixes logged and default minutes", func(t *testing.T) {
		sleep := domain.SleepMap{"2024-03-04": 480}
		days := domain.DaysBetween(
			time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		)
		// (480 + 360) / 2 = 420 minutes = 7h.
		assert.Equal(t, 7.0, domain.AverageSleepHours(sleep, days))
	})

	t.Run("Edge Case: No days falls back to six hours", func(t *testing.T) {
		assert.Equal(t, 6.0, domain.AverageSleepHours(domain.SleepMap{}, nil))
	})

	t.Run("Success: Rounds to one decimal", func(t *testing.T) {
		sleep := domain.SleepMap{"2024-03-04": 400} // 6.666h
		days := []time.Time{time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)}
		assert.Equal(t, 6.7, domain.AverageSleepHours(sleep, days))
	})
}

func TestMonthChunks(t *testing.T) {
	t.Run("Success: Splits at the month transition", func(t *testing.T) {
		days := domain.DaysBetween(
			time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC),
		)
		chunks := domain.MonthChunks(days)

		assert.Len(t, chunks, 2)
		assert.Equal(t, "January 2024", chunks[0].Label)
		assert.Len(t, chunks[0].Dates, 4)
		assert.Equal(t, "February 2024", chunks[1].Label)
		assert.Len(t, chunks[1].Dates, 3)
	})

	t.Run("Edge Case: Single month yields one chunk", func(t *testing.T) {
		days := domain.DaysBetween(
			time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
		)
		chunks := domain.MonthChunks(days)
		assert.Len(t, chunks, 1)
		assert.Equal(t, "June 2024", chunks[0].Label)
	})
}
