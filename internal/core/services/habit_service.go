package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

type HabitService struct {
	repo           domain.HabitRepository
	completionRepo domain.CompletionRepository
}

func NewHabitService(repo domain.HabitRepository, completionRepo domain.CompletionRepository) *HabitService {
	return &HabitService{
		repo:           repo,
		completionRepo: completionRepo,
	}
}

type CreateHabitInput struct {
	Name     string
	Category string
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Category)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	habits, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

// Delete removes the habit and purges its completion entries so the
// completion map carries no orphaned keys.
func (s *HabitService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	completions, err := s.completionRepo.LoadCompletions(ctx)
	if err != nil {
		return fmt.Errorf("load completions for purge: %w", err)
	}
	completions.Purge(id)
	if err := s.completionRepo.SaveCompletions(ctx, completions); err != nil {
		return fmt.Errorf("save completions after purge: %w", err)
	}

	return nil
}

// EnsureSeed creates the starter habits when the store holds none.
func (s *HabitService) EnsureSeed(ctx context.Context) error {
	habits, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	if len(habits) > 0 {
		return nil
	}

	for _, h := range domain.SeedHabits() {
		if err := s.repo.Create(ctx, h); err != nil {
			return err
		}
	}
	log.Println("Seeded starter habits for first run.")
	return nil
}
