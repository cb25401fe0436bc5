package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates habit with trimmed name and id", func(t *testing.T) {
		h, err := domain.NewHabit("  Morning Run  ", domain.CategoryHealth)

		assert.Nil(t, err)
		assert.NotNil(t, h)
		assert.Equal(t, "Morning Run", h.Name)
		assert.Equal(t, domain.CategoryHealth, h.Category)
		assert.NotEmpty(t, h.ID)
		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
	})

	t.Run("Success: Unknown category falls back to General", func(t *testing.T) {
		h, err := domain.NewHabit("Stretch", "Gymnastics")
		assert.Nil(t, err)
		assert.Equal(t, domain.CategoryGeneral, h.Category)
	})

	t.Run("Fail: Empty name", func(t *testing.T) {
		_, err := domain.NewHabit("   ", domain.CategoryHealth)
		assert.Equal(t, domain.ErrHabitNameEmpty, err)
	})

	t.Run("Fail: Name over the limit", func(t *testing.T) {
		_, err := domain.NewHabit(strings.Repeat("x", domain.MaxHabitNameLen+1), "")
		assert.Equal(t, domain.ErrHabitNameTooLong, err)
	})
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, domain.HabitColors[0], domain.ColorFor(0))
	assert.Equal(t, domain.HabitColors[0], domain.ColorFor(len(domain.HabitColors)),
		"palette wraps around")
	assert.Equal(t, domain.HabitColors[2], domain.ColorFor(len(domain.HabitColors)+2))
}

func TestSeedHabits(t *testing.T) {
	seeds := domain.SeedHabits()

	assert.Len(t, seeds, 3)
	for _, h := range seeds {
		assert.NotEmpty(t, h.ID)
		assert.NotEmpty(t, h.Name)
	}
}

func TestQuoteForHour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		assert.NotEmpty(t, domain.QuoteForHour(hour))
	}
	// Out-of-range hours still pick something.
	assert.NotEmpty(t, domain.QuoteForHour(-1))
	assert.NotEmpty(t, domain.QuoteForHour(30))
}
