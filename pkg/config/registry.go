package config

// Persistent state keys (Registry)
const (
	KeyCameraMode         = "camera_mode"
	KeyDriftStyle         = "drift_style"
	KeyTransitionStyle    = "transition_style"
	KeyTransitionTime     = "transition_time"
	KeyActivationDelay    = "activation_delay"
	KeyAutoAltitudeFt     = "auto_altitude_ft"
	KeyShotMinDuration    = "shot_min_duration"
	KeyShotMaxDuration    = "shot_max_duration"
	KeyMinVisibleDistance = "min_visible_distance"
	KeySimSource          = "sim_source"
	KeyMockLat            = "mock_start_lat"
	KeyMockLon            = "mock_start_lon"
	KeyMockAlt            = "mock_start_alt"
	KeyMockHeading        = "mock_start_heading"
	KeyMockDurParked      = "mock_duration_parked"
	KeyMockDurTaxi        = "mock_duration_taxi"
)
