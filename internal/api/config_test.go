package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinecam/pkg/camera"
	"cinecam/pkg/config"
)

type memStateStore struct {
	data map[string]string
}

func newMemStateStore() *memStateStore {
	return &memStateStore{data: map[string]string{}}
}

func (m *memStateStore) GetState(_ context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memStateStore) SetState(_ context.Context, key, val string) error {
	m.data[key] = val
	return nil
}

func (m *memStateStore) DeleteState(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func TestHandleGetConfig(t *testing.T) {
	st := newMemStateStore()
	prov := config.NewProvider(config.DefaultConfig(), st)
	h := NewConfigHandler(st, prov, nil)

	rec := httptest.NewRecorder()
	h.HandleConfig(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sinusoidal", resp.DriftStyle)
	assert.Equal(t, "smooth", resp.TransitionStyle)
	assert.Equal(t, "1m0s", resp.ActivationDelay)
	assert.Equal(t, 18000.0, resp.AutoAltitudeFt)
}

func TestHandleSetConfigAppliesToDirector(t *testing.T) {
	st := newMemStateStore()
	prov := config.NewProvider(config.DefaultConfig(), st)

	var applied *camera.Settings
	h := NewConfigHandler(st, prov, func(s camera.Settings) { applied = &s })

	body := `{"drift_style": "linear", "activation_delay": "30s", "auto_altitude_ft": 12000}`
	rec := httptest.NewRecorder()
	h.HandleConfig(rec, httptest.NewRequest(http.MethodPut, "/api/config", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, applied, "settings must be pushed into the director")
	assert.Equal(t, camera.DriftLinear, applied.DriftStyle)
	assert.Equal(t, 30.0, applied.ActivationDelay)
	assert.Equal(t, 12000.0, applied.AutoAltitudeFt)

	// Overrides persist in the state store.
	ctx := context.Background()
	assert.Equal(t, 30*time.Second, prov.ActivationDelay(ctx))
	assert.Equal(t, "linear", prov.DriftStyle(ctx))
}

func TestHandleSetConfigRejectsBadValues(t *testing.T) {
	st := newMemStateStore()
	prov := config.NewProvider(config.DefaultConfig(), st)
	h := NewConfigHandler(st, prov, nil)

	tests := []struct {
		name string
		body string
	}{
		{"bad drift style", `{"drift_style": "wobbly"}`},
		{"bad transition style", `{"transition_style": "teleport"}`},
		{"bad duration", `{"shot_min_duration": "soon"}`},
		{"garbage body", `{{{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.HandleConfig(rec, httptest.NewRequest(http.MethodPut, "/api/config", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// Nothing leaked into the store.
	assert.Empty(t, st.data)
}

func TestSettingsFromProvider(t *testing.T) {
	st := newMemStateStore()
	prov := config.NewProvider(config.DefaultConfig(), st)

	s := SettingsFromProvider(context.Background(), prov)
	assert.Equal(t, 60.0, s.ActivationDelay)
	assert.Equal(t, 6.0, s.ShotMinDuration)
	assert.Equal(t, 15.0, s.ShotMaxDuration)
	assert.Equal(t, camera.DriftSinusoidal, s.DriftStyle)
	assert.Equal(t, camera.TransitionSmooth, s.TransitionStyle)
	assert.Equal(t, 1.0, s.TransitionSeconds)
}
