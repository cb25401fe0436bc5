package services

import (
	"context"
	"time"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// Sleep charts clamp to different vertical scales on screen and in the PDF
// export. Both are deliberate and must not be unified.
const (
	ScreenSleepAxisMax = 14
	ExportSleepAxisMax = 12
)

// Snapshot is the full tracked state the aggregation functions run over.
// Services read one snapshot per request; nothing mutates it.
type Snapshot struct {
	Habits      []*domain.Habit
	Completions domain.CompletionMap
	Sleep       domain.SleepMap
}

type StatsService struct {
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
	sleepRepo      domain.SleepRepository
}

func NewStatsService(habitRepo domain.HabitRepository, completionRepo domain.CompletionRepository, sleepRepo domain.SleepRepository) *StatsService {
	return &StatsService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		sleepRepo:      sleepRepo,
	}
}

// LoadSnapshot reads the current habit, completion and sleep state.
func (s *StatsService) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	completions, err := s.completionRepo.LoadCompletions(ctx)
	if err != nil {
		return nil, err
	}
	sleep, err := s.sleepRepo.LoadSleep(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Habits: habits, Completions: completions, Sleep: sleep}, nil
}

type WeeklyStats struct {
	WeekStart    string            `json:"week_start"`
	Days         []domain.DayStat  `json:"days"`
	AverageSleep float64           `json:"average_sleep_hours"`
	SleepAxisMax int               `json:"sleep_axis_max"`
	Quote        string            `json:"quote"`
}

// Weekly aggregates the seven days starting at the Monday of anchor.
func (s *StatsService) Weekly(ctx context.Context, anchor time.Time) (*WeeklyStats, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	weekStart := domain.MondayOf(anchor)
	days := domain.WeekDays(weekStart)

	return &WeeklyStats{
		WeekStart:    domain.DateKey(weekStart),
		Days:         domain.DailyStats(snap.Habits, snap.Completions, snap.Sleep, days),
		AverageSleep: domain.AverageSleepHours(snap.Sleep, days),
		SleepAxisMax: ScreenSleepAxisMax,
		Quote:        domain.QuoteForHour(time.Now().Hour()),
	}, nil
}

type MonthlyStats struct {
	Month             string               `json:"month"`
	TotalCompletions  int                  `json:"total_completions"`
	PerfectDays       int                  `json:"perfect_days"`
	CompletionPercent int                  `json:"completion_percent"`
	Days              []domain.DayStat     `json:"days"`
	WeeklyImprovement []domain.WeekPercent `json:"weekly_improvement"`
	SleepAxisMax      int                  `json:"sleep_axis_max"`
}

// Monthly aggregates a full calendar month.
func (s *StatsService) Monthly(ctx context.Context, year int, month time.Month) (*MonthlyStats, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := domain.DaysBetween(first, first.AddDate(0, 1, -1))
	stats := domain.DailyStats(snap.Habits, snap.Completions, snap.Sleep, days)

	return &MonthlyStats{
		Month:             first.Format("January 2006"),
		TotalCompletions:  domain.TotalCompletions(stats),
		PerfectDays:       domain.PerfectDays(stats),
		CompletionPercent: domain.CompletionPercent(snap.Habits, snap.Completions, days),
		Days:              stats,
		WeeklyImprovement: domain.WeeklyImprovement(snap.Habits, snap.Completions, year, month),
		SleepAxisMax:      ScreenSleepAxisMax,
	}, nil
}

type HabitMonthlyStats struct {
	HabitID string             `json:"habit_id"`
	Name    string             `json:"name"`
	Color   string             `json:"color"`
	Weeks   []domain.WeekCount `json:"weeks"`
}

// HabitMonthly tallies one habit's per-week completions for a month, using
// the calendar-week-of-month buckets.
func (s *StatsService) HabitMonthly(ctx context.Context, habitID string, year int, month time.Month) (*HabitMonthlyStats, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, h := range snap.Habits {
		if h.ID == habitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrHabitNotFound
	}

	return &HabitMonthlyStats{
		HabitID: habitID,
		Name:    snap.Habits[idx].Name,
		Color:   domain.ColorFor(idx),
		Weeks:   domain.HabitWeeklyCounts(habitID, snap.Completions, year, month),
	}, nil
}

type OverviewStats struct {
	Start             string  `json:"start"`
	End               string  `json:"end"`
	TotalHabits       int     `json:"total_habits"`
	CompletionPercent int     `json:"completion_percent"`
	PerfectDays       int     `json:"perfect_days"`
	AverageSleep      float64 `json:"average_sleep_hours"`
}

// Overview summarizes an arbitrary inclusive range.
func (s *StatsService) Overview(ctx context.Context, r domain.DateRange) (*OverviewStats, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	days := r.Days()
	stats := domain.DailyStats(snap.Habits, snap.Completions, snap.Sleep, days)

	return &OverviewStats{
		Start:             domain.DateKey(r.Start),
		End:               domain.DateKey(r.End),
		TotalHabits:       len(snap.Habits),
		CompletionPercent: domain.CompletionPercent(snap.Habits, snap.Completions, days),
		PerfectDays:       domain.PerfectDays(stats),
		AverageSleep:      domain.AverageSleepHours(snap.Sleep, days),
	}, nil
}
