package camera

import "testing"

func TestShouldAutoActivate(t *testing.T) {
	tests := []struct {
		name      string
		in        AutoInput
		idle      float64
		delay     float64
		altThresh float64
		want      bool
	}{
		{
			name: "OnGroundStationary",
			in:   AutoInput{Valid: true, IsOnGround: true, GroundSpeed: 0.5},
			want: true,
		},
		{
			name: "OnGroundTaxiing",
			in:   AutoInput{Valid: true, IsOnGround: true, GroundSpeed: 8},
			want: false,
		},
		{
			name:      "AirborneAboveThresholdIdleLongEnough",
			in:        AutoInput{Valid: true, AltitudeFt: 20000},
			idle:      61, delay: 60, altThresh: 18000,
			want: true,
		},
		{
			name:      "AirborneAboveThresholdIdleTooShort",
			in:        AutoInput{Valid: true, AltitudeFt: 20000},
			idle:      59, delay: 60, altThresh: 18000,
			want: false,
		},
		{
			name:      "AirborneBelowThreshold",
			in:        AutoInput{Valid: true, AltitudeFt: 12000},
			idle:      600, delay: 60, altThresh: 18000,
			want: false,
		},
		{
			name: "TelemetryUnavailable",
			in:   AutoInput{Valid: false, IsOnGround: true, GroundSpeed: 0},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldAutoActivate(tt.in, tt.idle, tt.delay, tt.altThresh)
			if got != tt.want {
				t.Errorf("ShouldAutoActivate(%+v, idle=%v) = %v, want %v", tt.in, tt.idle, got, tt.want)
			}
		})
	}
}
