package domain

import (
	"errors"
	"time"
)

var (
	ErrFutureDate     = errors.New("cannot record a completion for a future date")
	ErrInvalidDateKey = errors.New("invalid date key, expected YYYY-MM-DD")
)

// DefaultSleepMinutes is substituted whenever a date has no sleep entry.
// Absence means "unknown", and every aggregate treats unknown days as six
// hours of sleep.
const DefaultSleepMinutes = 360

const (
	MaxSleepHours   = 23
	MaxSleepMinutes = 59
)

// CompletionMap records boolean completion facts per habit per day. A missing
// date key means "not completed", never "unknown".
type CompletionMap map[string]map[string]bool

// SleepMap records logged sleep per day, in total minutes. Hour and minute
// inputs are clamped independently (0-23 and 0-59), so totals up to 23h59m
// are representable.
type SleepMap map[string]int

// Completed reports whether habitID has a true entry for dateKey.
func (c CompletionMap) Completed(habitID, dateKey string) bool {
	return c[habitID][dateKey]
}

// Toggle flips the completion fact for habitID on dateKey and returns the
// new value.
func (c CompletionMap) Toggle(habitID, dateKey string) bool {
	if c[habitID] == nil {
		c[habitID] = make(map[string]bool)
	}
	c[habitID][dateKey] = !c[habitID][dateKey]
	return c[habitID][dateKey]
}

// Purge removes every entry recorded for habitID.
func (c CompletionMap) Purge(habitID string) {
	delete(c, habitID)
}

// MinutesOr returns the logged minutes for dateKey, or fallback when the
// day has no entry.
func (s SleepMap) MinutesOr(dateKey string, fallback int) int {
	if m, ok := s[dateKey]; ok {
		return m
	}
	return fallback
}

// ClampSleep bounds hour and minute fields to their independent valid ranges
// and returns the combined total in minutes.
func ClampSleep(hours, minutes int) int {
	if hours < 0 {
		hours = 0
	}
	if hours > MaxSleepHours {
		hours = MaxSleepHours
	}
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MaxSleepMinutes {
		minutes = MaxSleepMinutes
	}
	return hours*60 + minutes
}

// DateRange is an inclusive span of calendar days bounding aggregation and
// export operations.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if end.Before(start) {
		return DateRange{}, errors.New("range end cannot precede start")
	}
	return DateRange{Start: start, End: end}, nil
}

// Days expands the range into its ordered list of days.
func (r DateRange) Days() []time.Time {
	return DaysBetween(r.Start, r.End)
}

// Len reports how many days the range spans, endpoints included.
func (r DateRange) Len() int {
	return len(r.Days())
}
