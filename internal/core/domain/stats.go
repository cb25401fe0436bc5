package domain

import (
	"math"
	"strconv"
	"time"
)

// DayStat is the per-day aggregate derived from the raw maps; it is never
// stored.
type DayStat struct {
	Date         string `json:"date"`
	Completed    int    `json:"completed"`
	Total        int    `json:"total"`
	SleepMinutes int    `json:"sleep_minutes"`
}

// SleepHours converts the day's minutes to hours rounded to one decimal.
func (d DayStat) SleepHours() float64 {
	return RoundHours(float64(d.SleepMinutes) / 60)
}

// WeekBucket is a named span of days used for weekly aggregates, produced by
// one of the two bucketing policies below.
type WeekBucket struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days expands the bucket into its ordered list of days.
func (w WeekBucket) Days() []time.Time {
	return DaysBetween(w.Start, w.End)
}

// MonthChunk groups a contiguous run of dates that share a calendar month,
// labelled "January 2006" style.
type MonthChunk struct {
	Label string
	Dates []time.Time
}

// DailyStats computes per-day completion counts and sleep minutes for every
// day in the range. Missing sleep entries read as DefaultSleepMinutes.
func DailyStats(habits []*Habit, completions CompletionMap, sleep SleepMap, days []time.Time) []DayStat {
	stats := make([]DayStat, 0, len(days))
	for _, day := range days {
		key := DateKey(day)
		completed := 0
		for _, h := range habits {
			if completions.Completed(h.ID, key) {
				completed++
			}
		}
		stats = append(stats, DayStat{
			Date:         key,
			Completed:    completed,
			Total:        len(habits),
			SleepMinutes: sleep.MinutesOr(key, DefaultSleepMinutes),
		})
	}
	return stats
}

// PerfectDays counts the days where every habit was completed. A day with
// zero habits is never perfect.
func PerfectDays(stats []DayStat) int {
	perfect := 0
	for _, s := range stats {
		if s.Total > 0 && s.Completed == s.Total {
			perfect++
		}
	}
	return perfect
}

// TotalCompletions sums the completed counts across all days.
func TotalCompletions(stats []DayStat) int {
	total := 0
	for _, s := range stats {
		total += s.Completed
	}
	return total
}

// CompletionPercent is the overall completion rate over the given days,
// rounded to the nearest integer. Zero habits or zero days yield 0.
func CompletionPercent(habits []*Habit, completions CompletionMap, days []time.Time) int {
	possible := len(habits) * len(days)
	if possible == 0 {
		return 0
	}
	completed := 0
	for _, day := range days {
		key := DateKey(day)
		for _, h := range habits {
			if completions.Completed(h.ID, key) {
				completed++
			}
		}
	}
	return int(math.Round(float64(completed) / float64(possible) * 100))
}

// CalendarMonthWeeks buckets a month into the fixed day-of-month spans
// [1-7] [8-14] [15-21] [22-end]. The last bucket truncates at the month's
// length, so February yields [22-28] (or [22-29]).
//
// This policy is intentionally distinct from MondayAlignedChunks; the two
// must not be unified without a product decision.
func CalendarMonthWeeks(year int, month time.Month) []WeekBucket {
	lastDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()

	spans := []struct {
		label      string
		start, end int
	}{
		{"Week 1", 1, 7},
		{"Week 2", 8, 14},
		{"Week 3", 15, 21},
		{"Week 4", 22, lastDay},
	}

	buckets := make([]WeekBucket, 0, len(spans))
	for _, s := range spans {
		end := s.end
		if end > lastDay {
			end = lastDay
		}
		buckets = append(buckets, WeekBucket{
			Label: s.label,
			Start: time.Date(year, month, s.start, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, month, end, 0, 0, 0, 0, time.UTC),
		})
	}
	return buckets
}

// MondayAlignedChunks splits an ascending list of days into literal week
// chunks: a new chunk opens whenever a Monday follows a non-empty run. The
// first and last chunks may be shorter than seven days.
//
// See CalendarMonthWeeks for the other, non-interchangeable policy.
func MondayAlignedChunks(days []time.Time) []WeekBucket {
	var buckets []WeekBucket
	var current []time.Time

	flush := func() {
		if len(current) == 0 {
			return
		}
		buckets = append(buckets, WeekBucket{
			Label: weekLabel(len(buckets) + 1),
			Start: current[0],
			End:   current[len(current)-1],
		})
		current = nil
	}

	for _, day := range days {
		if day.Weekday() == time.Monday && len(current) > 0 {
			flush()
		}
		current = append(current, day)
	}
	flush()

	return buckets
}

func weekLabel(n int) string {
	return "Week " + strconv.Itoa(n)
}

// WeekCount is a per-habit tally for one week bucket, displayed as
// count/total valid days.
type WeekCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Days  int    `json:"days"`
}

// HabitWeeklyCounts tallies one habit's completions per calendar-month week
// bucket, along with the number of valid days in each bucket.
func HabitWeeklyCounts(habitID string, completions CompletionMap, year int, month time.Month) []WeekCount {
	buckets := CalendarMonthWeeks(year, month)
	counts := make([]WeekCount, 0, len(buckets))
	for i, b := range buckets {
		wc := WeekCount{Label: "W" + strconv.Itoa(i+1)}
		for _, day := range b.Days() {
			wc.Days++
			if completions.Completed(habitID, DateKey(day)) {
				wc.Count++
			}
		}
		counts = append(counts, wc)
	}
	return counts
}

// WeekPercent is the rounded completion percentage for one week bucket
// across all habits.
type WeekPercent struct {
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

// WeeklyImprovement computes the all-habit completion percentage per
// calendar-month week bucket.
func WeeklyImprovement(habits []*Habit, completions CompletionMap, year int, month time.Month) []WeekPercent {
	buckets := CalendarMonthWeeks(year, month)
	out := make([]WeekPercent, 0, len(buckets))
	for _, b := range buckets {
		possible := 0
		actual := 0
		for _, day := range b.Days() {
			possible += len(habits)
			key := DateKey(day)
			for _, h := range habits {
				if completions.Completed(h.ID, key) {
					actual++
				}
			}
		}
		pct := 0
		if possible > 0 {
			pct = int(math.Round(float64(actual) / float64(possible) * 100))
		}
		out = append(out, WeekPercent{Label: b.Label, Percentage: pct})
	}
	return out
}

// AverageSleepHours is the mean of actual-or-default sleep minutes over the
// days, in hours rounded to one decimal. No days yield the default six.
func AverageSleepHours(sleep SleepMap, days []time.Time) float64 {
	if len(days) == 0 {
		return 6.0
	}
	total := 0
	for _, day := range days {
		total += sleep.MinutesOr(DateKey(day), DefaultSleepMinutes)
	}
	return RoundHours(float64(total) / float64(len(days)) / 60)
}

// MonthChunks partitions an ordered list of days at natural month
// transitions, regardless of where the range starts or ends.
func MonthChunks(days []time.Time) []MonthChunk {
	var chunks []MonthChunk
	currentLabel := ""
	var current []time.Time

	for _, day := range days {
		label := day.Format("January 2006")
		if label != currentLabel {
			if currentLabel != "" {
				chunks = append(chunks, MonthChunk{Label: currentLabel, Dates: current})
			}
			currentLabel = label
			current = nil
		}
		current = append(current, day)
	}
	if len(current) > 0 {
		chunks = append(chunks, MonthChunk{Label: currentLabel, Dates: current})
	}
	return chunks
}

// RoundHours rounds an hour figure to one decimal place.
func RoundHours(h float64) float64 {
	return math.Round(h*10) / 10
}
