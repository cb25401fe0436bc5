package services

import (
	"context"
	"errors"
	"time"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// TrackerService records completion toggles and sleep logs. All updates are
// whole-map replacements; there is a single logical writer per process.
type TrackerService struct {
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
	sleepRepo      domain.SleepRepository

	now func() time.Time
}

func NewTrackerService(habitRepo domain.HabitRepository, completionRepo domain.CompletionRepository, sleepRepo domain.SleepRepository) *TrackerService {
	return &TrackerService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		sleepRepo:      sleepRepo,
		now:            time.Now,
	}
}

// Toggle flips the completion fact for a habit on a day. Future dates are
// rejected; dates before the habit's creation are accepted as-is.
func (s *TrackerService) Toggle(ctx context.Context, habitID, dateKey string) (bool, error) {
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return false, errors.Join(domain.ErrInvalidDateKey, err)
	}

	// Date keys sort lexicographically, so a plain string compare suffices.
	if dateKey > domain.DateKey(s.now()) {
		return false, domain.ErrFutureDate
	}

	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return false, err
	}

	completions, err := s.completionRepo.LoadCompletions(ctx)
	if err != nil {
		return false, err
	}

	done := completions.Toggle(habitID, dateKey)

	if err := s.completionRepo.SaveCompletions(ctx, completions); err != nil {
		return false, err
	}
	return done, nil
}

// LogSleep stores a day's sleep as clamped hour and minute fields combined
// into total minutes.
func (s *TrackerService) LogSleep(ctx context.Context, dateKey string, hours, minutes int) (int, error) {
	if _, err := domain.ParseDateKey(dateKey); err != nil {
		return 0, errors.Join(domain.ErrInvalidDateKey, err)
	}

	sleep, err := s.sleepRepo.LoadSleep(ctx)
	if err != nil {
		return 0, err
	}

	total := domain.ClampSleep(hours, minutes)
	sleep[dateKey] = total

	if err := s.sleepRepo.SaveSleep(ctx, sleep); err != nil {
		return 0, err
	}
	return total, nil
}
