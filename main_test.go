package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"shomee/internal/config"
	"shomee/internal/store"
)

// TestAppLiveness boots the full app against the in-memory store and
// checks the liveness endpoint end to end.
func TestAppLiveness(t *testing.T) {
	cfg := config.Config{CORSAllowOrigins: "*"}
	app := newApp(cfg, store.NewMemoryStore(), nil, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Shomee Spices Backend Running", body["message"])
}

// TestAppRoutesRegistered checks that every public route responds.
func TestAppRoutesRegistered(t *testing.T) {
	cfg := config.Config{CORSAllowOrigins: "*"}
	app := newApp(cfg, store.NewMemoryStore(), nil, zerolog.Nop())

	for _, path := range []string{"/", "/products", "/schema", "/test"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "GET %s", path)
	}
}
