package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

func TestCompletionMap(t *testing.T) {
	t.Run("Success: Toggle flips and reports the new value", func(t *testing.T) {
		m := domain.CompletionMap{}

		assert.True(t, m.Toggle("h1", "2024-03-04"))
		assert.True(t, m.Completed("h1", "2024-03-04"))

		assert.False(t, m.Toggle("h1", "2024-03-04"))
		assert.False(t, m.Completed("h1", "2024-03-04"))
	})

	t.Run("Edge Case: Missing keys read as not completed", func(t *testing.T) {
		m := domain.CompletionMap{}
		assert.False(t, m.Completed("h1", "2024-03-04"))
	})

	t.Run("Success: Purge drops every entry for a habit", func(t *testing.T) {
		m := domain.CompletionMap{
			"h1": {"2024-03-04": true, "2024-03-05": true},
			"h2": {"2024-03-04": true},
		}
		m.Purge("h1")

		assert.False(t, m.Completed("h1", "2024-03-04"))
		assert.True(t, m.Completed("h2", "2024-03-04"))
	})
}

func TestSleepMap(t *testing.T) {
	m := domain.SleepMap{"2024-03-04": 480}

	assert.Equal(t, 480, m.MinutesOr("2024-03-04", domain.DefaultSleepMinutes))
	assert.Equal(t, domain.DefaultSleepMinutes, m.MinutesOr("2024-03-05", domain.DefaultSleepMinutes))
}

func TestClampSleep(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		want    int
	}{
		{"Success: Normal values combine", 7, 30, 450},
		{"Edge Case: Hours clamp at 23 independently", 30, 15, 23*60 + 15},
		{"Edge Case: Minutes clamp at 59 independently", 7, 200, 7*60 + 59},
		{"Edge Case: Both clamp to the maximum total", 99, 99, 23*60 + 59},
		{"Edge Case: Negatives clamp to zero", -3, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClampSleep(tt.hours, tt.minutes))
		})
	}
}

func TestNewDateRange(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Success: Valid range expands inclusively", func(t *testing.T) {
		rng, err := domain.NewDateRange(start, end)
		assert.Nil(t, err)
		assert.Len(t, rng.Days(), 10)
	})

	t.Run("Success: Len counts days including both endpoints", func(t *testing.T) {
		rng, err := domain.NewDateRange(start, end)
		assert.Nil(t, err)
		assert.Equal(t, 10, rng.Len())
	})

	t.Run("Edge Case: Single-day range has length one", func(t *testing.T) {
		rng, err := domain.NewDateRange(start, start)
		assert.Nil(t, err)
		assert.Equal(t, 1, rng.Len())
	})

	t.Run("Fail: End before start", func(t *testing.T) {
		_, err := domain.NewDateRange(end, start)
		assert.NotNil(t, err)
	})
}
