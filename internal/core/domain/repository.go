package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHabitNotFound = errors.New("habit not found")
)

// HabitRepository persists the habit list. Implementations replace the whole
// stored list on every mutation; there is a single logical writer.
type HabitRepository interface {
	// Create appends a new habit definition to the stored list.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// List retrieves all habits in creation order.
	List(ctx context.Context) ([]*Habit, error)

	// Delete permanently removes a habit.
	Delete(ctx context.Context, id string) error
}

// CompletionRepository persists the completion map as one document.
type CompletionRepository interface {
	LoadCompletions(ctx context.Context) (CompletionMap, error)
	SaveCompletions(ctx context.Context, m CompletionMap) error
}

// SleepRepository persists the sleep-minutes map as one document.
type SleepRepository interface {
	LoadSleep(ctx context.Context) (SleepMap, error)
	SaveSleep(ctx context.Context, m SleepMap) error
}

// ProfileRepository persists the user profile and the theme preference. The
// theme is stored as a raw string, not JSON.
type ProfileRepository interface {
	LoadProfile(ctx context.Context) (*UserProfile, error)
	SaveProfile(ctx context.Context, p *UserProfile) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
}

// InsightRepository persists the cached insight bundle and the wall-clock
// timestamp of the last generation run.
type InsightRepository interface {
	// CachedBundle returns the stored bundle, or nil when none exists.
	CachedBundle(ctx context.Context) (*InsightBundle, error)
	SaveBundle(ctx context.Context, b *InsightBundle) error

	// LastRun returns the zero time when no run has been recorded.
	LastRun(ctx context.Context) (time.Time, error)
	SetLastRun(ctx context.Context, t time.Time) error
}
