package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// CSVFilename embeds the literal date keys of the exported range.
func CSVFilename(rng domain.DateRange) string {
	return fmt.Sprintf("HabitFlow_Export_%s_to_%s.csv", domain.DateKey(rng.Start), domain.DateKey(rng.End))
}

// WriteCSV renders a per-day summary of the range: completed count, habit
// total, perfect flag and sleep hours, one row per day.
func WriteCSV(habits []*domain.Habit, completions domain.CompletionMap, sleep domain.SleepMap, rng domain.DateRange) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Date", "Habits Completed", "Habits Total", "Perfect Day", "Sleep Hours"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}

	stats := domain.DailyStats(habits, completions, sleep, rng.Days())
	for _, s := range stats {
		perfect := "no"
		if s.Total > 0 && s.Completed == s.Total {
			perfect = "yes"
		}
		row := []string{
			s.Date,
			strconv.Itoa(s.Completed),
			strconv.Itoa(s.Total),
			perfect,
			fmt.Sprintf("%.1f", s.SleepHours()),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
