package repository

import (
	"context"
	"sync"
	"time"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// MemoryStateRepository is an in-memory implementation of the domain
// repository interfaces, used by tests and as a fallback when no state file
// is configured.
type MemoryStateRepository struct {
	mu          sync.RWMutex
	habits      []*domain.Habit
	completions domain.CompletionMap
	sleep       domain.SleepMap
	profile     *domain.UserProfile
	theme       string
	bundle      *domain.InsightBundle
	lastRun     time.Time
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{
		completions: make(domain.CompletionMap),
		sleep:       make(domain.SleepMap),
	}
}

func (r *MemoryStateRepository) Create(_ context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.habits = append(r.habits, habit)
	return nil
}

func (r *MemoryStateRepository) GetByID(_ context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, h := range r.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, domain.ErrHabitNotFound
}

func (r *MemoryStateRepository) List(_ context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Habit, len(r.habits))
	copy(out, r.habits)
	return out, nil
}

func (r *MemoryStateRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.habits {
		if h.ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return nil
		}
	}
	return domain.ErrHabitNotFound
}

func (r *MemoryStateRepository) LoadCompletions(_ context.Context) (domain.CompletionMap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyCompletions(r.completions), nil
}

func (r *MemoryStateRepository) SaveCompletions(_ context.Context, m domain.CompletionMap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completions = copyCompletions(m)
	return nil
}

func (r *MemoryStateRepository) LoadSleep(_ context.Context) (domain.SleepMap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(domain.SleepMap, len(r.sleep))
	for k, v := range r.sleep {
		out[k] = v
	}
	return out, nil
}

func (r *MemoryStateRepository) SaveSleep(_ context.Context, m domain.SleepMap) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sleep = make(domain.SleepMap, len(m))
	for k, v := range m {
		r.sleep[k] = v
	}
	return nil
}

func (r *MemoryStateRepository) LoadProfile(_ context.Context) (*domain.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return domain.DefaultProfile(), nil
	}
	p := *r.profile
	return &p, nil
}

func (r *MemoryStateRepository) SaveProfile(_ context.Context, p *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.profile = &cp
	return nil
}

func (r *MemoryStateRepository) Theme(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.theme != domain.ThemeLight && r.theme != domain.ThemeDark {
		return domain.DefaultTheme, nil
	}
	return r.theme, nil
}

func (r *MemoryStateRepository) SetTheme(_ context.Context, theme string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theme = theme
	return nil
}

func (r *MemoryStateRepository) CachedBundle(_ context.Context) (*domain.InsightBundle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.bundle == nil {
		return nil, nil
	}
	b := *r.bundle
	return &b, nil
}

func (r *MemoryStateRepository) SaveBundle(_ context.Context, b *domain.InsightBundle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.bundle = &cp
	return nil
}

func (r *MemoryStateRepository) LastRun(_ context.Context) (time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRun, nil
}

func (r *MemoryStateRepository) SetLastRun(_ context.Context, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastRun = t
	return nil
}

func copyCompletions(m domain.CompletionMap) domain.CompletionMap {
	out := make(domain.CompletionMap, len(m))
	for habitID, days := range m {
		cp := make(map[string]bool, len(days))
		for day, done := range days {
			cp[day] = done
		}
		out[habitID] = cp
	}
	return out
}
