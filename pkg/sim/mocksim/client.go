// Package mocksim implements a simulator client with a small physics
// loop, for development and integration tests without a running sim.
package mocksim

import (
	"context"
	"math"
	"sync"
	"time"

	"cinecam/pkg/geo"
	"cinecam/pkg/sim"
)

const (
	// Flight stages
	StageParked   = "PARKED"
	StageTaxiing  = "TAXIING"
	StageAirborne = "AIRBORNE"

	tickRateMs = 100

	taxiSpeed    = 8.0   // m/s
	cruiseSpeed  = 120.0 // m/s
	climbRateFpm = 1800.0
	cruiseAltFt  = 24000.0

	feetPerMeter = 3.28084
	metersPerDeg = 111320.0
)

// Config holds timing and placement for the mock simulation.
type Config struct {
	StartLat       float64
	StartLon       float64
	StartAltFt     float64 // Ground elevation at the start point
	StartHeading   float64
	DurationParked time.Duration
	DurationTaxi   time.Duration
	Geometry       sim.Geometry
}

// MockClient implements sim.Client.
type MockClient struct {
	mu         sync.Mutex
	cfg        Config
	tel        sim.Telemetry
	stage      string
	stageStart time.Time
	lastTurn   time.Time
	pos        geo.Point
	start      geo.Point
	groundAlt  float64 // Feet
	pointerX   int
	pointerY   int

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewClient creates a mock client and starts its physics loop.
func NewClient(cfg Config) *MockClient {
	start := geo.Point{Lat: cfg.StartLat, Lon: cfg.StartLon}
	m := &MockClient{
		cfg:        cfg,
		stage:      StageParked,
		stageStart: time.Now(),
		lastTurn:   time.Now(),
		pos:        start,
		start:      start,
		groundAlt:  cfg.StartAltFt,
		stopCh:     make(chan struct{}),
		tel: sim.Telemetry{
			Latitude:    cfg.StartLat,
			Longitude:   cfg.StartLon,
			Heading:     cfg.StartHeading,
			AltitudeMSL: cfg.StartAltFt,
			IsOnGround:  true,
			Valid:       true,
		},
	}
	m.syncLocal()

	m.wg.Add(1)
	go m.physicsLoop()
	return m
}

// GetTelemetry returns the current state of the simulated aircraft.
func (m *MockClient) GetTelemetry(ctx context.Context) (sim.Telemetry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tel, nil
}

// GetGeometry returns the configured aircraft geometry.
func (m *MockClient) GetGeometry(ctx context.Context) (sim.Geometry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg.Geometry, nil
}

// GetPointer returns the simulated pointer position.
func (m *MockClient) GetPointer(ctx context.Context) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pointerX, m.pointerY, nil
}

// SetPointer moves the simulated pointer; tests use this to trigger
// the director's pause behavior.
func (m *MockClient) SetPointer(x, y int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pointerX, m.pointerY = x, y
}

// GetState returns the simulator state. The mock is always active.
func (m *MockClient) GetState() sim.State {
	return sim.StateActive
}

// Close stops the physics loop and releases resources.
func (m *MockClient) Close() error {
	close(m.stopCh)
	m.wg.Wait()
	return nil
}

func (m *MockClient) physicsLoop() {
	defer m.wg.Done()
	ticker := time.NewTicker(tickRateMs * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-m.stopCh:
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			m.step(dt, now)
		}
	}
}

func (m *MockClient) step(dt float64, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.stage {
	case StageParked:
		m.tel.GroundSpeed = 0
		if now.Sub(m.stageStart) >= m.cfg.DurationParked {
			m.stage = StageTaxiing
			m.stageStart = now
		}
	case StageTaxiing:
		m.tel.GroundSpeed = taxiSpeed
		m.advance(dt)
		if now.Sub(m.stageStart) >= m.cfg.DurationTaxi {
			m.stage = StageAirborne
			m.stageStart = now
		}
	case StageAirborne:
		m.updateAirborne(dt, now)
	}

	m.tel.AltitudeAGL = m.tel.AltitudeMSL - m.groundAlt
	if m.tel.AltitudeAGL < 0 {
		m.tel.AltitudeAGL = 0
	}
	m.syncLocal()
}

func (m *MockClient) updateAirborne(dt float64, now time.Time) {
	m.tel.IsOnGround = false
	m.tel.GroundSpeed = cruiseSpeed

	if m.tel.AltitudeMSL < cruiseAltFt {
		m.tel.AltitudeMSL += climbRateFpm / 60.0 * dt
		m.tel.Pitch = 8
	} else {
		m.tel.Pitch = 1.5
	}

	// Gentle wander: pick a new heading once a minute and bank into it.
	if now.Sub(m.lastTurn) > 60*time.Second {
		m.lastTurn = now
		m.tel.Roll = 15 * sign(math.Sin(float64(now.Unix())))
	} else if now.Sub(m.lastTurn) > 10*time.Second {
		m.tel.Roll = 0
	}
	if m.tel.Roll != 0 {
		m.tel.Heading = math.Mod(m.tel.Heading+m.tel.Roll/5.0*dt+360, 360)
	}

	m.advance(dt)
}

// advance moves the aircraft along its heading at the current speed.
func (m *MockClient) advance(dt float64) {
	dist := m.tel.GroundSpeed * dt
	if dist <= 0 {
		return
	}
	m.pos = geo.DestinationPoint(m.pos, dist, m.tel.Heading)
	m.tel.Latitude = m.pos.Lat
	m.tel.Longitude = m.pos.Lon
}

// syncLocal projects the geographic position into the local frame the
// camera math works in: X east, Y up, Z south, meters from the start.
func (m *MockClient) syncLocal() {
	cosLat := math.Cos(m.start.Lat * math.Pi / 180)
	m.tel.LocalX = (m.tel.Longitude - m.start.Lon) * metersPerDeg * cosLat
	m.tel.LocalZ = -(m.tel.Latitude - m.start.Lat) * metersPerDeg
	m.tel.LocalY = m.tel.AltitudeMSL / feetPerMeter
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
