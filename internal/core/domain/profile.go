package domain

const (
	ThemeLight   = "light"
	ThemeDark    = "dark"
	DefaultTheme = ThemeDark
)

type UserProfile struct {
	Name      string `json:"name"`
	Tagline   string `json:"tagline"`
	AvatarURL string `json:"avatar_url"`
}

func DefaultProfile() *UserProfile {
	return &UserProfile{
		Name:      "Guest User",
		Tagline:   "Building habits, one day at a time.",
		AvatarURL: "",
	}
}

// SeedHabits are created on first run so a fresh install has something to
// track.
func SeedHabits() []*Habit {
	morningRun, _ := NewHabit("Morning Run (5k)", CategoryHealth)
	read, _ := NewHabit("Read 30 mins", CategoryLearning)
	water, _ := NewHabit("Drink 2L Water", CategoryHealth)
	return []*Habit{morningRun, read, water}
}
