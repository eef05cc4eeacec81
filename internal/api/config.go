package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"cinecam/pkg/camera"
	"cinecam/pkg/config"
	"cinecam/pkg/store"
)

// ConfigHandler handles configuration API requests.
type ConfigHandler struct {
	store   store.StateStore
	cfgProv config.Provider
	apply   func(camera.Settings) // Pushes rebuilt settings into the director
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(st store.StateStore, cfg config.Provider, apply func(camera.Settings)) *ConfigHandler {
	return &ConfigHandler{
		store:   st,
		cfgProv: cfg,
		apply:   apply,
	}
}

// ConfigResponse represents the config API response.
type ConfigResponse struct {
	SimSource          string  `json:"sim_source"`
	ActivationDelay    string  `json:"activation_delay"`
	AutoAltitudeFt     float64 `json:"auto_altitude_ft"`
	ShotMinDuration    string  `json:"shot_min_duration"`
	ShotMaxDuration    string  `json:"shot_max_duration"`
	DriftStyle         string  `json:"drift_style"`
	TransitionStyle    string  `json:"transition_style"`
	TransitionTime     string  `json:"transition_time"`
	MockStartLat       float64 `json:"mock_start_lat"`
	MockStartLon       float64 `json:"mock_start_lon"`
	MockStartAlt       float64 `json:"mock_start_alt"`
	MockStartHeading   float64 `json:"mock_start_heading"`
	MockDurationParked string  `json:"mock_duration_parked"`
	MockDurationTaxi   string  `json:"mock_duration_taxi"`
}

// ConfigRequest represents the config API request for updates.
// Pointers distinguish "absent" from zero values.
type ConfigRequest struct {
	SimSource       string   `json:"sim_source,omitempty"`
	ActivationDelay string   `json:"activation_delay,omitempty"`
	AutoAltitudeFt  *float64 `json:"auto_altitude_ft,omitempty"`
	ShotMinDuration string   `json:"shot_min_duration,omitempty"`
	ShotMaxDuration string   `json:"shot_max_duration,omitempty"`
	DriftStyle      string   `json:"drift_style,omitempty"`
	TransitionStyle string   `json:"transition_style,omitempty"`
	TransitionTime  string   `json:"transition_time,omitempty"`
}

// HandleConfig is a unified handler for all config-related methods, facilitating CORS/OPTIONS.
func (h *ConfigHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.HandleGetConfig(w, r)
	case http.MethodPut, http.MethodPost:
		h.HandleSetConfig(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleGetConfig returns the current configuration.
func (h *ConfigHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, ConfigResponse{
		SimSource:          h.cfgProv.SimProvider(ctx),
		ActivationDelay:    h.cfgProv.ActivationDelay(ctx).String(),
		AutoAltitudeFt:     h.cfgProv.AutoAltitudeFt(ctx),
		ShotMinDuration:    h.cfgProv.ShotMinDuration(ctx).String(),
		ShotMaxDuration:    h.cfgProv.ShotMaxDuration(ctx).String(),
		DriftStyle:         h.cfgProv.DriftStyle(ctx),
		TransitionStyle:    h.cfgProv.TransitionStyle(ctx),
		TransitionTime:     h.cfgProv.TransitionTime(ctx).String(),
		MockStartLat:       h.cfgProv.MockStartLat(ctx),
		MockStartLon:       h.cfgProv.MockStartLon(ctx),
		MockStartAlt:       h.cfgProv.MockStartAlt(ctx),
		MockStartHeading:   h.cfgProv.MockStartHeading(ctx),
		MockDurationParked: h.cfgProv.MockDurationParked(ctx).String(),
		MockDurationTaxi:   h.cfgProv.MockDurationTaxi(ctx).String(),
	})
}

// HandleSetConfig updates the configuration.
func (h *ConfigHandler) HandleSetConfig(w http.ResponseWriter, r *http.Request) {
	var req ConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if err := h.applyRequest(ctx, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Push the merged view into the running director.
	if h.apply != nil {
		h.apply(SettingsFromProvider(ctx, h.cfgProv))
	}

	h.HandleGetConfig(w, r)
}

func (h *ConfigHandler) applyRequest(ctx context.Context, req *ConfigRequest) error {
	set := func(key, val string) error {
		if err := h.store.SetState(ctx, key, val); err != nil {
			slog.Error("Failed to persist config", "key", key, "error", err)
			return fmt.Errorf("failed to persist %s", key)
		}
		return nil
	}

	if req.SimSource != "" {
		if err := set(config.KeySimSource, req.SimSource); err != nil {
			return err
		}
	}
	if req.DriftStyle != "" {
		if req.DriftStyle != string(camera.DriftSinusoidal) && req.DriftStyle != string(camera.DriftLinear) {
			return fmt.Errorf("unknown drift_style %q", req.DriftStyle)
		}
		if err := set(config.KeyDriftStyle, req.DriftStyle); err != nil {
			return err
		}
	}
	if req.TransitionStyle != "" {
		if req.TransitionStyle != string(camera.TransitionSmooth) && req.TransitionStyle != string(camera.TransitionCut) {
			return fmt.Errorf("unknown transition_style %q", req.TransitionStyle)
		}
		if err := set(config.KeyTransitionStyle, req.TransitionStyle); err != nil {
			return err
		}
	}
	for key, val := range map[string]string{
		config.KeyActivationDelay: req.ActivationDelay,
		config.KeyShotMinDuration: req.ShotMinDuration,
		config.KeyShotMaxDuration: req.ShotMaxDuration,
		config.KeyTransitionTime:  req.TransitionTime,
	} {
		if val == "" {
			continue
		}
		if _, err := config.ParseDuration(val); err != nil {
			return fmt.Errorf("invalid duration for %s: %v", key, err)
		}
		if err := set(key, val); err != nil {
			return err
		}
	}
	if req.AutoAltitudeFt != nil {
		if err := set(config.KeyAutoAltitudeFt, strconv.FormatFloat(*req.AutoAltitudeFt, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

// SettingsFromProvider materializes director settings from the unified
// config view (static YAML merged with persistent overrides).
func SettingsFromProvider(ctx context.Context, p config.Provider) camera.Settings {
	return camera.Settings{
		ActivationDelay:   p.ActivationDelay(ctx).Seconds(),
		AutoAltitudeFt:    p.AutoAltitudeFt(ctx),
		ShotMinDuration:   p.ShotMinDuration(ctx).Seconds(),
		ShotMaxDuration:   p.ShotMaxDuration(ctx).Seconds(),
		DriftStyle:        camera.DriftStyle(p.DriftStyle(ctx)),
		TransitionStyle:   camera.TransitionStyle(p.TransitionStyle(ctx)),
		TransitionSeconds: p.TransitionTime(ctx).Seconds(),
	}
}
