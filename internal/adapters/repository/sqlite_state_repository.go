package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

// Storage keys, one JSON document per concern. The theme and last-run rows
// hold raw strings, not JSON.
const (
	keyHabits         = "habits"
	keyCompletions    = "completions"
	keySleep          = "sleepData"
	keyProfile        = "userProfile"
	keyTheme          = "theme"
	keyInsightCache   = "habit_insights_cache"
	keyInsightLastRun = "habit_insights_last_run"
	keySchemaVersion  = "schema_version"
)

const schemaVersion = 1

// SQLiteStateRepository persists the whole application state as independent
// string-valued rows in one local sqlite file, mirroring a key-value store.
// It implements every domain repository interface; there is a single logical
// writer per process.
type SQLiteStateRepository struct {
	db *sqlx.DB
}

func NewSQLiteStateRepository(path string) (*SQLiteStateRepository, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open state database: %w", err)
	}

	// The store has one logical writer; a single connection avoids sqlite
	// write contention.
	db.SetMaxOpenConns(1)

	r := &SQLiteStateRepository{db: db}
	if err := r.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteStateRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteStateRepository) Ping() error {
	return r.db.Ping()
}

func (r *SQLiteStateRepository) migrate(ctx context.Context) error {
	const schema = `CREATE TABLE IF NOT EXISTS kv (
        key   TEXT PRIMARY KEY,
        value TEXT NOT NULL
    )`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	stored, err := r.get(ctx, keySchemaVersion)
	if err != nil {
		return err
	}
	if stored == "" {
		return r.set(ctx, keySchemaVersion, strconv.Itoa(schemaVersion))
	}

	v, err := strconv.Atoi(stored)
	if err != nil || v > schemaVersion {
		return fmt.Errorf("unsupported state schema version %q", stored)
	}
	// Future migrations step v up to schemaVersion here.
	return nil
}

// get returns the raw value for key, or "" when the row does not exist.
func (r *SQLiteStateRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStateRepository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// loadJSON unmarshals the stored document for key into out. A missing row
// leaves out untouched; malformed content is logged and treated as absent so
// a corrupt row degrades to the in-code default instead of failing startup.
func (r *SQLiteStateRepository) loadJSON(ctx context.Context, key string, out any) error {
	raw, err := r.get(ctx, key)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("State row %q is malformed, resetting to default: %v", key, err)
	}
	return nil
}

func (r *SQLiteStateRepository) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return r.set(ctx, key, string(data))
}

// --- domain.HabitRepository ---

func (r *SQLiteStateRepository) loadHabits(ctx context.Context) ([]*domain.Habit, error) {
	var habits []*domain.Habit
	if err := r.loadJSON(ctx, keyHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (r *SQLiteStateRepository) Create(ctx context.Context, habit *domain.Habit) error {
	habits, err := r.loadHabits(ctx)
	if err != nil {
		return err
	}
	habits = append(habits, habit)
	return r.saveJSON(ctx, keyHabits, habits)
}

func (r *SQLiteStateRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	habits, err := r.loadHabits(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range habits {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, domain.ErrHabitNotFound
}

func (r *SQLiteStateRepository) List(ctx context.Context) ([]*domain.Habit, error) {
	return r.loadHabits(ctx)
}

func (r *SQLiteStateRepository) Delete(ctx context.Context, id string) error {
	habits, err := r.loadHabits(ctx)
	if err != nil {
		return err
	}

	kept := habits[:0]
	found := false
	for _, h := range habits {
		if h.ID == id {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return domain.ErrHabitNotFound
	}
	return r.saveJSON(ctx, keyHabits, kept)
}

// --- domain.CompletionRepository ---

func (r *SQLiteStateRepository) LoadCompletions(ctx context.Context) (domain.CompletionMap, error) {
	m := make(domain.CompletionMap)
	if err := r.loadJSON(ctx, keyCompletions, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteStateRepository) SaveCompletions(ctx context.Context, m domain.CompletionMap) error {
	return r.saveJSON(ctx, keyCompletions, m)
}

// --- domain.SleepRepository ---

func (r *SQLiteStateRepository) LoadSleep(ctx context.Context) (domain.SleepMap, error) {
	m := make(domain.SleepMap)
	if err := r.loadJSON(ctx, keySleep, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteStateRepository) SaveSleep(ctx context.Context, m domain.SleepMap) error {
	return r.saveJSON(ctx, keySleep, m)
}

// --- domain.ProfileRepository ---

func (r *SQLiteStateRepository) LoadProfile(ctx context.Context) (*domain.UserProfile, error) {
	profile := domain.DefaultProfile()
	if err := r.loadJSON(ctx, keyProfile, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *SQLiteStateRepository) SaveProfile(ctx context.Context, p *domain.UserProfile) error {
	return r.saveJSON(ctx, keyProfile, p)
}

func (r *SQLiteStateRepository) Theme(ctx context.Context) (string, error) {
	theme, err := r.get(ctx, keyTheme)
	if err != nil {
		return "", err
	}
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return domain.DefaultTheme, nil
	}
	return theme, nil
}

func (r *SQLiteStateRepository) SetTheme(ctx context.Context, theme string) error {
	return r.set(ctx, keyTheme, theme)
}

// --- domain.InsightRepository ---

func (r *SQLiteStateRepository) CachedBundle(ctx context.Context) (*domain.InsightBundle, error) {
	raw, err := r.get(ctx, keyInsightCache)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var bundle domain.InsightBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		log.Printf("Cached insight bundle is malformed, dropping it: %v", err)
		return nil, nil
	}
	return &bundle, nil
}

func (r *SQLiteStateRepository) SaveBundle(ctx context.Context, b *domain.InsightBundle) error {
	return r.saveJSON(ctx, keyInsightCache, b)
}

func (r *SQLiteStateRepository) LastRun(ctx context.Context) (time.Time, error) {
	raw, err := r.get(ctx, keyInsightLastRun)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return time.Time{}, nil
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("Insight last-run timestamp is malformed, resetting: %v", err)
		return time.Time{}, nil
	}
	return time.UnixMilli(millis), nil
}

func (r *SQLiteStateRepository) SetLastRun(ctx context.Context, t time.Time) error {
	return r.set(ctx, keyInsightLastRun, strconv.FormatInt(t.UnixMilli(), 10))
}
