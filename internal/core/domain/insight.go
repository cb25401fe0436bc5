package domain

import (
	"context"
	"errors"
)

var (
	ErrNoHabits = errors.New("no habits found, add habits to generate insights")
	ErrNoAPIKey = errors.New("generation API key not configured")
)

// BadgeColors are the only color tokens the generator may assign to a badge.
var BadgeColors = []string{"indigo", "emerald", "amber", "rose", "cyan", "purple"}

type Badge struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// InsightBundle is the structured generation output summarizing recent
// performance.
type InsightBundle struct {
	WeeklyVibe    string  `json:"weeklyVibe"`
	WinningStreak string  `json:"winningStreak"`
	RoomForGrowth string  `json:"roomForGrowth"`
	SmartTip      string  `json:"smartTip"`
	Badges        []Badge `json:"badges"`
}

// FallbackBundle is the deterministic bundle returned whenever generation
// fails for any reason.
func FallbackBundle() *InsightBundle {
	return &InsightBundle{
		WeeklyVibe:    "System initializing... gathering more data for analysis.",
		WinningStreak: "Consistency Building",
		RoomForGrowth: "Data Collection",
		SmartTip:      "Keep tracking your habits and sleep to unlock AI insights.",
		Badges: []Badge{
			{Name: "Newcomer", Emoji: "👋", Description: "Welcome to HabitFlow", Color: "cyan"},
		},
	}
}

// FallbackTip is returned when daily-tip generation fails.
const FallbackTip = "Consistency is key! You got this. 🔥"

// DefaultTip is returned when generation succeeds but yields empty text.
const DefaultTip = "Let's crush your goals today! 🚀"

// TextGenerator is the external text-generation capability. Generate returns
// free-form text; GenerateJSON constrains the response to a JSON document.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
