package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinecam/pkg/camera"
)

func newTestDirector() *camera.Director {
	return camera.New(camera.StandardDimensions(), rand.New(rand.NewSource(7)))
}

func TestHandleStatus(t *testing.T) {
	h := NewCameraHandler(newTestDirector(), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/camera/status", nil)
	rec := httptest.NewRecorder()
	h.HandleStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status camera.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, camera.ModeOff, status.Mode)
	assert.Equal(t, camera.PhaseOff, status.Phase)
}

func TestHandleShots(t *testing.T) {
	h := NewCameraHandler(newTestDirector(), nil, nil)

	rec := httptest.NewRecorder()
	h.HandleShots(rec, httptest.NewRequest(http.MethodGet, "/api/camera/shots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ShotListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Cockpit)
	assert.NotEmpty(t, resp.External)
	assert.Greater(t, resp.MinVisibleDistance, 0.0)
}

func TestHandleStartStop(t *testing.T) {
	d := newTestDirector()
	h := NewCameraHandler(d, nil, nil)

	rec := httptest.NewRecorder()
	h.HandleStart(rec, httptest.NewRequest(http.MethodPost, "/api/camera/start", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, camera.ModeManual, d.Snapshot().Mode)

	rec = httptest.NewRecorder()
	h.HandleStop(rec, httptest.NewRequest(http.MethodPost, "/api/camera/stop", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, camera.ModeOff, d.Snapshot().Mode)
}

func TestHandleAuto(t *testing.T) {
	d := newTestDirector()
	h := NewCameraHandler(d, nil, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/camera/auto", strings.NewReader(`{"enabled": true}`))
	h.HandleAuto(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, camera.ModeAuto, d.Snapshot().Mode)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/camera/auto", strings.NewReader(`not json`))
	h.HandleAuto(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSelectShot(t *testing.T) {
	d := newTestDirector()
	h := NewCameraHandler(d, nil, nil)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"valid cockpit", `{"category": "cockpit", "index": 0}`, http.StatusOK},
		{"valid external", `{"category": "external", "index": 2}`, http.StatusOK},
		{"bad category", `{"category": "orbital", "index": 0}`, http.StatusBadRequest},
		{"out of range", `{"category": "external", "index": 999}`, http.StatusBadRequest},
		{"garbage", `{{{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/camera/select-shot", strings.NewReader(tt.body))
			h.HandleSelectShot(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandleHistoryWithoutStore(t *testing.T) {
	h := NewCameraHandler(newTestDirector(), nil, nil)

	rec := httptest.NewRecorder()
	h.HandleHistory(rec, httptest.NewRequest(http.MethodGet, "/api/camera/history", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
