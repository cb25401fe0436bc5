package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("Success: Applies defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("STATE_PATH", "")
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GEMINI_MODEL", "")
		t.Setenv("EXPORT_DIR", "")

		cfg := LoadFromEnv()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "habitflow.db", cfg.Storage.Path)
		assert.Empty(t, cfg.Gemini.APIKey)
		assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
		assert.Equal(t, "exports", cfg.Export.Directory)
	})

	t.Run("Success: Environment overrides defaults", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		t.Setenv("STATE_PATH", "/tmp/state.db")
		t.Setenv("GEMINI_API_KEY", "abc123")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
		t.Setenv("EXPORT_DIR", "/tmp/reports")

		cfg := LoadFromEnv()

		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "/tmp/state.db", cfg.Storage.Path)
		assert.Equal(t, "abc123", cfg.Gemini.APIKey)
		assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
		assert.Equal(t, "/tmp/reports", cfg.Export.Directory)
	})
}
