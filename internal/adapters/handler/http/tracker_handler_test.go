package http_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

func TestTrackerHandler_Toggle(t *testing.T) {
	yesterday := domain.DateKey(time.Now().AddDate(0, 0, -1))
	tomorrow := domain.DateKey(time.Now().AddDate(0, 0, 1))

	t.Run("Success: Toggles a completion on", func(t *testing.T) {
		router, state := setupRouter(nil)
		h := addHabit(t, state, "Run")

		body := bytes.NewBufferString(fmt.Sprintf(`{"habit_id": %q, "date": %q}`, h.ID, yesterday))
		req, _ := http.NewRequest("POST", "/api/v1/completions/toggle", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"completed":true`)

		completions, _ := state.LoadCompletions(context.Background())
		assert.True(t, completions.Completed(h.ID, yesterday))
	})

	t.Run("Fail: 400 on a future date", func(t *testing.T) {
		router, state := setupRouter(nil)
		h := addHabit(t, state, "Run")

		body := bytes.NewBufferString(fmt.Sprintf(`{"habit_id": %q, "date": %q}`, h.ID, tomorrow))
		req, _ := http.NewRequest("POST", "/api/v1/completions/toggle", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "future")
	})

	t.Run("Fail: 400 on a malformed date", func(t *testing.T) {
		router, state := setupRouter(nil)
		h := addHabit(t, state, "Run")

		body := bytes.NewBufferString(fmt.Sprintf(`{"habit_id": %q, "date": "03/04/2024"}`, h.ID))
		req, _ := http.NewRequest("POST", "/api/v1/completions/toggle", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Fail: 404 on an unknown habit", func(t *testing.T) {
		router, _ := setupRouter(nil)

		body := bytes.NewBufferString(fmt.Sprintf(`{"habit_id": "missing", "date": %q}`, yesterday))
		req, _ := http.NewRequest("POST", "/api/v1/completions/toggle", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTrackerHandler_LogSleep(t *testing.T) {
	t.Run("Success: Stores clamped minutes", func(t *testing.T) {
		router, state := setupRouter(nil)

		body := bytes.NewBufferString(`{"date": "2024-03-04", "hours": 30, "minutes": 99}`)
		req, _ := http.NewRequest("POST", "/api/v1/sleep", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"sleep_minutes":1439`)

		sleep, _ := state.LoadSleep(context.Background())
		assert.Equal(t, 23*60+59, sleep["2024-03-04"])
	})

	t.Run("Fail: 400 on a malformed date", func(t *testing.T) {
		router, _ := setupRouter(nil)

		body := bytes.NewBufferString(`{"date": "yesterday", "hours": 7}`)
		req, _ := http.NewRequest("POST", "/api/v1/sleep", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
