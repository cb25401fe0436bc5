package http_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhakad-labs/habitflow/internal/core/domain"
)

func TestProfileHandler_Profile(t *testing.T) {
	t.Run("Success: Defaults before any save", func(t *testing.T) {
		router, _ := setupRouter(nil)

		req, _ := http.NewRequest("GET", "/api/v1/profile", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Guest User")
	})

	t.Run("Success: Update persists", func(t *testing.T) {
		router, state := setupRouter(nil)

		body := bytes.NewBufferString(`{"name": "Asha", "tagline": "One day at a time."}`)
		req, _ := http.NewRequest("PUT", "/api/v1/profile", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		p, err := state.LoadProfile(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, "Asha", p.Name)
		assert.Equal(t, "One day at a time.", p.Tagline)
	})

	t.Run("Fail: 400 on missing name", func(t *testing.T) {
		router, _ := setupRouter(nil)

		req, _ := http.NewRequest("PUT", "/api/v1/profile", bytes.NewBufferString(`{"tagline": "x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfileHandler_Theme(t *testing.T) {
	t.Run("Success: Defaults to dark", func(t *testing.T) {
		router, _ := setupRouter(nil)

		req, _ := http.NewRequest("GET", "/api/v1/theme", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"theme":"dark"`)
	})

	t.Run("Success: Switches to light", func(t *testing.T) {
		router, state := setupRouter(nil)

		req, _ := http.NewRequest("PUT", "/api/v1/theme", bytes.NewBufferString(`{"theme": "light"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		theme, err := state.Theme(context.Background())
		assert.Nil(t, err)
		assert.Equal(t, domain.ThemeLight, theme)
	})

	t.Run("Fail: 400 on an unknown theme", func(t *testing.T) {
		router, _ := setupRouter(nil)

		req, _ := http.NewRequest("PUT", "/api/v1/theme", bytes.NewBufferString(`{"theme": "sepia"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestProfileHandler_Quote(t *testing.T) {
	router, _ := setupRouter(nil)

	req, _ := http.NewRequest("GET", "/api/v1/quote", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "quote")
}
