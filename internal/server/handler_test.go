package server

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/card"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/config"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/telemetry"
)

func newFullServer(t *testing.T) (*httptest.Server, *App) {
	t.Helper()
	app := NewApp(config.Default(), card.DefaultCatalog())
	srv := httptest.NewServer(NewHandler(app, log.New(io.Discard, "", 0)))
	t.Cleanup(srv.Close)
	return srv, app
}

func TestHealthProbes(t *testing.T) {
	srv, _ := newFullServer(t)

	var health struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
	}
	resp := getJSON(t, srv.URL+"/healthz", &health)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, health.OK)
	assert.Equal(t, "mrc-bingo", health.Service)

	var ready struct {
		OK    bool `json:"ok"`
		Cards int  `json:"cards"`
	}
	resp = getJSON(t, srv.URL+"/readyz", &ready)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, ready.OK)
	assert.Equal(t, 42, ready.Cards)
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := newFullServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc123")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc123", resp.Header.Get("X-Request-Id"))
}

func TestHandleStats(t *testing.T) {
	srv, app := newFullServer(t)

	require.NoError(t, app.Events.RecordEvent(telemetry.EventBoardGenerated,
		telemetry.EventMetadata{"tier": "beginner"}))
	require.NoError(t, app.Events.RecordEvent(telemetry.EventClaimChecked,
		telemetry.EventMetadata{"ok": true}))

	var stats telemetry.Stats
	resp := getJSON(t, srv.URL+"/api/stats", &stats)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, stats.BoardsByTier["beginner"])
	assert.Equal(t, 1, stats.ClaimsOK)

	httpResp, err := http.Get(srv.URL + "/api/stats?since=yesterday")
	require.NoError(t, err)
	httpResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, httpResp.StatusCode)
}
