package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty   = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong = errors.New("habit name is too long (max 100 chars)")
)

const (
	CategoryHealth       = "Health"
	CategoryProductivity = "Productivity"
	CategoryLearning     = "Learning"
	CategoryMindfulness  = "Mindfulness"
	CategoryGeneral      = "General"

	MaxHabitNameLen = 100
)

// HabitColors is the fixed palette used for per-habit chart series; a habit's
// color is picked by its position modulo the palette length.
var HabitColors = []string{
	"#4f46e5", // Indigo
	"#ec4899", // Pink
	"#06b6d4", // Cyan
	"#8b5cf6", // Violet
	"#f59e0b", // Amber
	"#10b981", // Emerald
	"#ef4444", // Red
	"#3b82f6", // Blue
}

type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func validCategory(category string) string {
	switch category {
	case CategoryHealth, CategoryProductivity, CategoryLearning, CategoryMindfulness, CategoryGeneral:
		return category
	default:
		return CategoryGeneral
	}
}

func NewHabit(name, category string) (*Habit, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrHabitNameEmpty
	}
	if len(trimmed) > MaxHabitNameLen {
		return nil, ErrHabitNameTooLong
	}

	return &Habit{
		ID:        uuid.New().String(),
		Name:      trimmed,
		Category:  validCategory(category),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ColorFor returns the palette color for the habit at position idx.
func ColorFor(idx int) string {
	return HabitColors[idx%len(HabitColors)]
}
