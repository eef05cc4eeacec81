package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the static application configuration, loaded from YAML.
// Runtime-tunable values can be overridden through the state store; see
// Provider.
type Config struct {
	Camera CameraConfig `yaml:"camera"`
	Log    LogConfig    `yaml:"log"`
	DB     DBConfig     `yaml:"db"`
	Server ServerConfig `yaml:"server"`
	Ticker TickerConfig `yaml:"ticker"`
	Sim    SimConfig    `yaml:"sim"`
}

// CameraConfig holds settings for the cinematic director.
type CameraConfig struct {
	ActivationDelay    Duration `yaml:"activation_delay"`     // Mouse-idle time before auto resume / airborne activation
	AutoAltitudeFt     float64  `yaml:"auto_altitude_ft"`     // Cruise altitude above which auto mode engages
	ShotMinDuration    Duration `yaml:"shot_min_duration"`
	ShotMaxDuration    Duration `yaml:"shot_max_duration"`
	DriftStyle         string   `yaml:"drift_style"`          // "sinusoidal", "linear"
	TransitionStyle    string   `yaml:"transition_style"`     // "smooth", "cut"
	TransitionTime     Duration `yaml:"transition_time"`
	MinVisibleDistance Distance `yaml:"min_visible_distance"` // Floor for external shot distance
	HistoryRetention   Duration `yaml:"history_retention"`    // How long to keep the shot log
}

// SimConfig holds settings for the simulator connection.
type SimConfig struct {
	Provider string        `yaml:"provider"` // "mock"
	Mock     MockSimConfig `yaml:"mock"`
}

// MockSimConfig holds settings for the mock simulator.
type MockSimConfig struct {
	StartLat       float64  `yaml:"start_lat"`
	StartLon       float64  `yaml:"start_lon"`
	StartAlt       float64  `yaml:"start_alt"`
	StartHeading   float64  `yaml:"start_heading"`
	DurationParked Duration `yaml:"duration_parked"`
	DurationTaxi   Duration `yaml:"duration_taxi"`
}

// LogConfig configures the server and request log files.
type LogConfig struct {
	Server   LogSettings `yaml:"server"`
	Requests LogSettings `yaml:"requests"`
}

// LogSettings configures a single log file.
type LogSettings struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// DBConfig locates the SQLite database.
type DBConfig struct {
	Path string `yaml:"path"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// TickerConfig holds loop timing settings.
type TickerConfig struct {
	FrameLoop Duration `yaml:"frame_loop"` // Director tick interval
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			ActivationDelay:    Duration(60 * time.Second),
			AutoAltitudeFt:     18000,
			ShotMinDuration:    Duration(6 * time.Second),
			ShotMaxDuration:    Duration(15 * time.Second),
			DriftStyle:         "sinusoidal",
			TransitionStyle:    "smooth",
			TransitionTime:     Duration(1 * time.Second),
			MinVisibleDistance: Distance(30),
			HistoryRetention:   Duration(7 * Day),
		},
		Log: LogConfig{
			Server: LogSettings{
				Path:  "./logs/server.log",
				Level: "INFO",
			},
			Requests: LogSettings{
				Path:  "./logs/requests.log",
				Level: "INFO",
			},
		},
		DB: DBConfig{
			Path: "./data/cinecam.db",
		},
		Server: ServerConfig{
			Address: "localhost:1928",
		},
		Ticker: TickerConfig{
			FrameLoop: Duration(50 * time.Millisecond),
		},
		Sim: SimConfig{
			Provider: "mock",
			Mock: MockSimConfig{
				StartLat:       51.6845,
				StartLon:       14.4234,
				StartAlt:       285.0,
				StartHeading:   0.0,
				DurationParked: Duration(120 * time.Second),
				DurationTaxi:   Duration(120 * time.Second),
			},
		},
	}
}

// Load reads the config at path, layering it over the defaults. A
// missing file is written out with defaults; an existing file is never
// rewritten, so user comments and formatting survive.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to save config file: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Camera.ShotMaxDuration < c.Camera.ShotMinDuration {
		return fmt.Errorf("shot_max_duration (%v) must not be below shot_min_duration (%v)",
			time.Duration(c.Camera.ShotMaxDuration), time.Duration(c.Camera.ShotMinDuration))
	}
	switch c.Camera.DriftStyle {
	case "sinusoidal", "linear":
	default:
		return fmt.Errorf("invalid drift_style %q: must be 'sinusoidal' or 'linear'", c.Camera.DriftStyle)
	}
	switch c.Camera.TransitionStyle {
	case "smooth", "cut":
	default:
		return fmt.Errorf("invalid transition_style %q: must be 'smooth' or 'cut'", c.Camera.TransitionStyle)
	}
	return nil
}

// Save writes cfg to path with a usage header and inline option hints
// for the enum fields.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# CineCam Configuration
# ---------------------
# Supported Units:
#   Duration: ns, us (or µs), ms, s, m, h, d (day), w (week)
#   Distance: m (meters), km (kilometers), nm (nautical miles), ft (feet)

`)
	data = append(header, data...)

	reDrift := regexp.MustCompile(`(?m)^(\s+)drift_style:`)
	data = reDrift.ReplaceAll(data, []byte("${1}# Options: sinusoidal, linear\n${1}drift_style:"))

	reTransition := regexp.MustCompile(`(?m)^(\s+)transition_style:`)
	data = reTransition.ReplaceAll(data, []byte("${1}# Options: smooth, cut\n${1}transition_style:"))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// GenerateDefault writes a default config file at path unless one
// already exists.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return Save(path, DefaultConfig())
}
