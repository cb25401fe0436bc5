package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// RefreshCooldown is the advisory wall-clock spacing between automatic
// insight generations. Manual refreshes are never blocked by it.
const RefreshCooldown = 15 * time.Minute

// InsightLookbackDays is the trailing window embedded in the bundle prompt.
const InsightLookbackDays = 15

type InsightService struct {
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
	sleepRepo      domain.SleepRepository
	insightRepo    domain.InsightRepository
	generator      domain.TextGenerator

	now func() time.Time
}

func NewInsightService(
	habitRepo domain.HabitRepository,
	completionRepo domain.CompletionRepository,
	sleepRepo domain.SleepRepository,
	insightRepo domain.InsightRepository,
	generator domain.TextGenerator,
) *InsightService {
	return &InsightService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		sleepRepo:      sleepRepo,
		insightRepo:    insightRepo,
		generator:      generator,
		now:            time.Now,
	}
}

// DailyTip returns a short motivational sentence for today. It never
// propagates a failure: generation errors degrade to a fixed tip.
func (s *InsightService) DailyTip(ctx context.Context) string {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		log.Printf("Daily tip: failed to load habits: %v", err)
		return domain.FallbackTip
	}
	completions, err := s.completionRepo.LoadCompletions(ctx)
	if err != nil {
		log.Printf("Daily tip: failed to load completions: %v", err)
		return domain.FallbackTip
	}

	prompt := dailyTipPrompt(habits, completions, domain.DateKey(s.now()))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Daily tip generation failed: %v", err)
		return domain.FallbackTip
	}
	if strings.TrimSpace(text) == "" {
		return domain.DefaultTip
	}
	return strings.TrimSpace(text)
}

// Cached returns the stored bundle and the last generation time. The bundle
// is nil when nothing has been generated yet.
func (s *InsightService) Cached(ctx context.Context) (*domain.InsightBundle, time.Time, error) {
	bundle, err := s.insightRepo.CachedBundle(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	lastRun, err := s.insightRepo.LastRun(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	return bundle, lastRun, nil
}

// Stale reports whether the cooldown since the last run has lapsed.
func (s *InsightService) Stale(ctx context.Context) (bool, error) {
	lastRun, err := s.insightRepo.LastRun(ctx)
	if err != nil {
		return false, err
	}
	return s.now().Sub(lastRun) >= RefreshCooldown, nil
}

// Refresh generates a new insight bundle and caches it. With force=false
// (auto-triggered paths) an empty habit list is a silent no-op; with
// force=true it is reported as ErrNoHabits. Generation or parse failures
// degrade to the deterministic fallback bundle, which is cached like any
// other result.
func (s *InsightService) Refresh(ctx context.Context, force bool) (*domain.InsightBundle, error) {
	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		if force {
			return nil, domain.ErrNoHabits
		}
		return nil, nil
	}

	completions, err := s.completionRepo.LoadCompletions(ctx)
	if err != nil {
		return nil, err
	}
	sleep, err := s.sleepRepo.LoadSleep(ctx)
	if err != nil {
		return nil, err
	}

	bundle := s.generate(ctx, habits, completions, sleep)

	if err := s.insightRepo.SaveBundle(ctx, bundle); err != nil {
		return nil, err
	}
	if err := s.insightRepo.SetLastRun(ctx, s.now()); err != nil {
		return nil, err
	}
	return bundle, nil
}

func (s *InsightService) generate(ctx context.Context, habits []*domain.Habit, completions domain.CompletionMap, sleep domain.SleepMap) *domain.InsightBundle {
	prompt := insightPrompt(habits, completions, sleep, s.now())

	text, err := s.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("Insight generation failed: %v", err)
		return domain.FallbackBundle()
	}

	var bundle domain.InsightBundle
	if err := json.Unmarshal([]byte(stripFences(text)), &bundle); err != nil {
		log.Printf("Insight response was not valid JSON: %v", err)
		return domain.FallbackBundle()
	}
	return &bundle
}

// stripFences removes a surrounding markdown code fence if the model added
// one despite the JSON-only instruction.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "```") {
		t = strings.TrimPrefix(t, "```json")
		t = strings.TrimPrefix(t, "```")
		t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	}
	return strings.TrimSpace(t)
}

func dailyTipPrompt(habits []*domain.Habit, completions domain.CompletionMap, todayKey string) string {
	completedToday := 0
	names := make([]string, 0, len(habits))
	for _, h := range habits {
		names = append(names, h.Name)
		if completions.Completed(h.ID, todayKey) {
			completedToday++
		}
	}

	var b strings.Builder
	b.WriteString("You are a friendly habit coach.\n")
	fmt.Fprintf(&b, "Context: User has completed %d out of %d habits today.\n", completedToday, len(habits))
	fmt.Fprintf(&b, "Habits: %s.\n\n", strings.Join(names, ", "))
	b.WriteString("Task: Write a SINGLE, short, punchy, motivational sentence (max 20 words) to encourage them right now.\n")
	b.WriteString("Use an emoji. Do not use \"System Notice\" or formal language. Be human and enthusiastic.")
	return b.String()
}

func insightPrompt(habits []*domain.Habit, completions domain.CompletionMap, sleep domain.SleepMap, now time.Time) string {
	totalSleepMins := 0
	loggedSleepDays := 0

	var logs []string
	for i := InsightLookbackDays - 1; i >= 0; i-- {
		day := domain.AddDays(now, -i)
		key := domain.DateKey(day)

		sleepStr := "Not tracked"
		if mins, ok := sleep[key]; ok {
			totalSleepMins += mins
			loggedSleepDays++
			sleepStr = fmt.Sprintf("%dh %dm", mins/60, mins%60)
		}

		var completed, missed []string
		for _, h := range habits {
			if completions.Completed(h.ID, key) {
				completed = append(completed, h.Name)
			} else {
				missed = append(missed, h.Name)
			}
		}

		logs = append(logs, fmt.Sprintf("Date: %s\n- Sleep: %s\n- Habits Completed: %s\n- Habits Missed: %s",
			key, sleepStr, orNone(completed), orNone(missed)))
	}

	avgSleep := "N/A"
	if loggedSleepDays > 0 {
		avgSleep = fmt.Sprintf("%.1f", float64(totalSleepMins)/float64(loggedSleepDays)/60)
	}

	habitList := make([]string, 0, len(habits))
	for _, h := range habits {
		habitList = append(habitList, fmt.Sprintf("%s (%s)", h.Name, h.Category))
	}

	var b strings.Builder
	b.WriteString("You are the \"Neural Core\" of an advanced Habit & Biometric Tracker app.\n")
	b.WriteString("Your role is to act as a high-performance behavioral analyst.\n\n")
	b.WriteString("--- USER DATA SNAPSHOT ---\n")
	fmt.Fprintf(&b, "Average Sleep (Last %d days): %s hours\n", InsightLookbackDays, avgSleep)
	fmt.Fprintf(&b, "Total Active Habits: %d\n", len(habits))
	fmt.Fprintf(&b, "Habit List: %s\n\n", strings.Join(habitList, ", "))
	fmt.Fprintf(&b, "--- DAILY PERFORMANCE LOG (Last %d Days) ---\n", InsightLookbackDays)
	b.WriteString(strings.Join(logs, "\n\n"))
	b.WriteString("\n\n--- ANALYTICAL TASK ---\n")
	b.WriteString("1. Correlate Sleep & Performance: Analyze if low sleep causes specific habits to be missed. Does high sleep lead to perfect days?\n")
	b.WriteString("2. Identify Micro-Trends: Look for patterns like \"Misses habits on weekends\", \"skips 'Read' when 'Run' is missed\", etc.\n")
	b.WriteString("3. Construct Feedback: Give direct, constructive criticism or praise based on the data.\n\n")
	b.WriteString("--- REQUIRED JSON OUTPUT ---\n")
	b.WriteString("Return ONLY a valid JSON object matching this schema. Do not use Markdown blocks.\n\n")
	b.WriteString(`{
  "weeklyVibe": "A cool, futuristic, personalized one-sentence summary of their performance vibe. Mention sleep if relevant.",
  "winningStreak": "Highlight their best performing habit or a positive sleep pattern.",
  "roomForGrowth": "Identify the habit with the most misses OR a sleep issue (e.g., 'Inconsistent sleep impacting Morning Run'). Be specific.",
  "smartTip": "A data-backed actionable tip. E.g., 'Try sleeping 7h+ to secure your Reading habit.'",
  "badges": [
    {
      "name": "Creative Badge Name",
      "emoji": "🏆",
      "description": "Specific reason they earned this based on data.",
      "color": "indigo"
    }
  ]
}
`)
	fmt.Fprintf(&b, "\nBadge Color Options: %s.\n", strings.Join(domain.BadgeColors, ", "))
	b.WriteString(`Badge Criteria:
- Consistent Sleep (>7h avg) -> "Restoration Master"
- Perfect Streak -> "Unstoppable Force"
- Weekend Warrior -> "Weekender"
- Early Riser (deduced from context if possible, else generic consistency) -> "Early Bird"`)
	return b.String()
}

func orNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
