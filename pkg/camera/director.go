package camera

import (
	"log/slog"
	"math/rand"
	"sync"

	"cinecam/pkg/sim"
)

// Mode is the operating mode of the director.
type Mode string

const (
	// ModeOff disables the director entirely.
	ModeOff Mode = "off"
	// ModeManual runs the camera until explicitly stopped.
	ModeManual Mode = "manual"
	// ModeAuto activates and deactivates based on flight telemetry.
	ModeAuto Mode = "auto"
)

// Phase is the per-frame state of the camera machine.
type Phase string

const (
	// PhaseOff means the director holds no camera control.
	PhaseOff Phase = "off"
	// PhaseArmed means the mode is set but no shot is active yet.
	PhaseArmed Phase = "armed"
	// PhaseTransition interpolates between the previous pose and the
	// next shot's initial pose.
	PhaseTransition Phase = "transition"
	// PhaseDrift plays the active shot's drift motion.
	PhaseDrift Phase = "drift"
	// PhasePaused holds all timers while the pointer is in use.
	PhasePaused Phase = "paused"
)

// DriftStyle selects how a shot evolves while active.
type DriftStyle string

const (
	// DriftSinusoidal layers three sine waves per axis for an organic,
	// non-repeating oscillation.
	DriftSinusoidal DriftStyle = "sinusoidal"
	// DriftLinear eases into motion and then drifts at constant
	// velocity until the cut.
	DriftLinear DriftStyle = "linear"
)

// TransitionStyle selects how consecutive shots are joined.
type TransitionStyle string

const (
	// TransitionSmooth blends poses over TransitionSeconds with a
	// cubic ease.
	TransitionSmooth TransitionStyle = "smooth"
	// TransitionCut jumps straight to the next shot.
	TransitionCut TransitionStyle = "cut"
)

// Settings are the runtime-tunable knobs of the director.
type Settings struct {
	ActivationDelay   float64         `json:"activation_delay"`   // Seconds of pointer idle before auto-activation/resume
	AutoAltitudeFt    float64         `json:"auto_altitude_ft"`   // Altitude threshold for airborne auto mode
	ShotMinDuration   float64         `json:"shot_min_duration"`  // Seconds
	ShotMaxDuration   float64         `json:"shot_max_duration"`  // Seconds
	DriftStyle        DriftStyle      `json:"drift_style"`
	TransitionStyle   TransitionStyle `json:"transition_style"`
	TransitionSeconds float64         `json:"transition_seconds"`
}

// DefaultSettings returns the stock configuration.
func DefaultSettings() Settings {
	return Settings{
		ActivationDelay:   60,
		AutoAltitudeFt:    18000,
		ShotMinDuration:   6,
		ShotMaxDuration:   15,
		DriftStyle:        DriftSinusoidal,
		TransitionStyle:   TransitionSmooth,
		TransitionSeconds: 1.0,
	}
}

// transition is the overlay state while blending between two poses.
// Exists only during PhaseTransition.
type transition struct {
	start    Pose
	target   Pose
	progress float64 // [0, 1]
}

// Status is a read-only snapshot of the director for display surfaces.
type Status struct {
	Mode          Mode    `json:"mode"`
	Phase         Phase   `json:"phase"`
	ShotName      string  `json:"shot_name,omitempty"`
	ShotRemaining float64 `json:"shot_remaining,omitempty"`
	IdleSeconds   float64 `json:"idle_seconds"`
	PathID        string  `json:"path_id,omitempty"`
	Pose          Pose    `json:"pose"`
	ControlHeld   bool    `json:"control_held"`
}

// baseDriftFreq is the base angular frequency (rad/s) of the
// sinusoidal drift style. Per-axis multipliers keep axes out of
// lockstep.
const baseDriftFreq = 0.35

var driftFreqMult = DriftRates{
	X: 1.0, Y: 1.13, Z: 0.87,
	Pitch: 1.07, Heading: 0.93, Roll: 1.21,
	Zoom: 0.79,
}

// Director owns the camera state machine. All mutable state lives
// here; Tick drives it once per host frame and every public method is
// safe to call from the API goroutine.
type Director struct {
	mu       sync.Mutex
	settings Settings
	dims     Dimensions
	catalog  Catalog
	selector *Selector
	pointer  PointerTracker

	mode        Mode
	phase       Phase
	resumePhase Phase

	shot      *ActiveShot
	remaining float64
	trans     *transition

	path     *Path
	pathTime float64

	// visFloor is a configured minimum for the catalog's visibility
	// distance; it survives catalog regeneration.
	visFloor float64

	lastPose Pose
	hasPose  bool
}

// New creates a director for an aircraft of the given dimensions.
func New(dims Dimensions, rng *rand.Rand) *Director {
	return &Director{
		settings: DefaultSettings(),
		dims:     dims,
		catalog:  Generate(dims),
		selector: NewSelector(rng),
		mode:     ModeOff,
		phase:    PhaseOff,
	}
}

// SetAircraft re-resolves dimensions and regenerates the catalog.
// Called on aircraft-load events; any active shot is abandoned.
func (d *Director) SetAircraft(g sim.Geometry) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dims = ResolveDimensions(g)
	d.catalog = Generate(d.dims)
	if d.visFloor > d.catalog.MinVisibleDistance {
		d.catalog.MinVisibleDistance = d.visFloor
	}
	d.deactivateLocked()
}

// SetVisibilityFloor raises the catalog's minimum external-shot
// distance. Values below the generated floor have no effect.
func (d *Director) SetVisibilityFloor(dist float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visFloor = dist
	if d.visFloor > d.catalog.MinVisibleDistance {
		d.catalog.MinVisibleDistance = d.visFloor
	}
}

// Catalog returns the current shot catalog.
func (d *Director) Catalog() Catalog {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.catalog
}

// Settings returns the current settings.
func (d *Director) Settings() Settings {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.settings
}

// UpdateSettings replaces the runtime settings.
func (d *Director) UpdateSettings(s Settings) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s.ShotMaxDuration < s.ShotMinDuration {
		s.ShotMaxDuration = s.ShotMinDuration
	}
	if s.TransitionSeconds <= 0 {
		s.TransitionSeconds = 1.0
	}
	d.settings = s
}

// Start begins manual camera control.
func (d *Director) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode == ModeAuto {
		return
	}
	d.mode = ModeManual
	if d.phase == PhaseOff {
		d.phase = PhaseArmed
	}
	slog.Info("camera started", "mode", d.mode)
}

// Stop releases camera control and turns the director off.
func (d *Director) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = ModeOff
	d.deactivateLocked()
	d.phase = PhaseOff
	slog.Info("camera stopped")
}

// SetAuto toggles auto mode. Enabling it arms the director; disabling
// it turns everything off.
func (d *Director) SetAuto(on bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if on {
		d.mode = ModeAuto
		if d.phase == PhaseOff {
			d.phase = PhaseArmed
		}
		d.pointer.Reset()
	} else {
		d.mode = ModeOff
		d.deactivateLocked()
		d.phase = PhaseOff
	}
	slog.Info("auto mode toggled", "enabled", on)
}

// SelectPath switches the drift source to a user-authored path for
// preview. The path plays from its start; pass nil to return to the
// shot catalog.
func (d *Director) SelectPath(p *Path) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p != nil {
		p.Normalize()
	}
	d.path = p
	d.pathTime = 0
}

// SelectShot forces a specific shot from the catalog for preview.
func (d *Director) SelectShot(category Category, index int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	list := d.catalog.Cockpit
	if category == CategoryExternal {
		list = d.catalog.External
	}
	if index < 0 || index >= len(list) {
		return false
	}
	shot := ActiveShot{Shot: list[index], ResolvedDuration: d.settings.ShotMaxDuration}
	d.shot = &shot
	d.remaining = shot.ResolvedDuration
	d.trans = nil
	d.phase = PhaseDrift
	if d.mode == ModeOff {
		d.mode = ModeManual
	}
	return true
}

// Snapshot returns the current status for display.
func (d *Director) Snapshot() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := Status{
		Mode:        d.mode,
		Phase:       d.phase,
		IdleSeconds: d.pointer.Idle(),
		Pose:        d.lastPose,
		ControlHeld: d.phase == PhaseTransition || d.phase == PhaseDrift,
	}
	if d.shot != nil {
		st.ShotName = d.shot.Name
		st.ShotRemaining = d.remaining
	}
	if d.path != nil {
		st.PathID = d.path.ID
	}
	return st
}

// Tick advances the machine by dt seconds and returns the camera pose
// for this frame. The second return is false when the director does
// not hold camera control (off, armed, paused, or invalid telemetry).
// Tick never blocks and is total: whenever it reports control it also
// returns a usable pose.
func (d *Director) Tick(dt float64, tel sim.Telemetry, pointerX, pointerY int) (Pose, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// 1. Pointer movement pauses any active phase.
	moved := d.pointer.Update(pointerX, pointerY, dt)
	if moved && (d.phase == PhaseTransition || d.phase == PhaseDrift) {
		d.resumePhase = d.phase
		d.phase = PhasePaused
		slog.Debug("camera paused on pointer movement")
	}

	// 2./3. Mode-driven transitions.
	switch d.mode {
	case ModeAuto:
		d.tickAuto(tel)
	case ModeManual:
		if d.phase == PhasePaused && d.pointer.Idle() >= d.settings.ActivationDelay {
			d.resumeLocked()
		}
		if d.phase == PhaseArmed && tel.Valid {
			d.activateLocked(tel)
		}
	case ModeOff:
		if d.phase != PhaseOff {
			d.deactivateLocked()
			d.phase = PhaseOff
		}
	}

	if d.phase != PhaseTransition && d.phase != PhaseDrift {
		return d.lastPose, false
	}
	if !tel.Valid {
		// Telemetry dropout: hold the last pose, keep control. The
		// accessors are polled fresh next frame.
		return d.lastPose, true
	}

	// 4. Advance the relevant timer and handle boundary crossings.
	if d.path != nil {
		d.pathTime += dt
		d.lastPose = d.pathPose(tel)
		d.hasPose = true
		return d.lastPose, true
	}

	if d.phase == PhaseTransition {
		d.trans.progress += dt / d.settings.TransitionSeconds
		if d.trans.progress >= 1 {
			d.trans = nil
			d.phase = PhaseDrift
			d.shot.Elapsed = 0
		}
	} else {
		d.shot.Elapsed += dt
		d.remaining -= dt
		if d.remaining <= 0 {
			d.nextShotLocked(tel)
		}
	}

	d.lastPose = d.computePose(tel)
	d.hasPose = true
	return d.lastPose, true
}

// tickAuto drives activation from telemetry while in auto mode.
func (d *Director) tickAuto(tel sim.Telemetry) {
	in := AutoInput{
		Valid:       tel.Valid,
		IsOnGround:  tel.IsOnGround,
		GroundSpeed: tel.GroundSpeed,
		AltitudeFt:  tel.AltitudeMSL,
	}
	met := ShouldAutoActivate(in, d.pointer.Idle(), d.settings.ActivationDelay, d.settings.AutoAltitudeFt)

	switch {
	case met && d.phase == PhaseArmed:
		d.activateLocked(tel)
	case !met && d.phase != PhaseArmed && d.phase != PhaseOff:
		d.deactivateLocked()
	case met && d.phase == PhasePaused && d.pointer.Idle() >= d.settings.ActivationDelay:
		d.resumeLocked()
	}
}

// activateLocked selects the first shot and enters the active cycle.
// Always starts from a clean selection history.
func (d *Director) activateLocked(tel sim.Telemetry) {
	d.selector.Reset()
	d.beginShot(d.selector.Next(d.catalog, d.settings.ShotMinDuration, d.settings.ShotMaxDuration), tel)
	slog.Info("camera activated", "shot", d.shot.Name, "duration", d.shot.ResolvedDuration)
}

// nextShotLocked rotates to the next shot at a drift boundary.
func (d *Director) nextShotLocked(tel sim.Telemetry) {
	d.beginShot(d.selector.Next(d.catalog, d.settings.ShotMinDuration, d.settings.ShotMaxDuration), tel)
	slog.Debug("next shot", "shot", d.shot.Name, "duration", d.shot.ResolvedDuration)
}

// beginShot installs the shot and builds the transition overlay from
// the last emitted pose to the shot's initial pose. With the cut style
// (or without a previous pose to blend from) the shot starts
// immediately in the drift phase.
func (d *Director) beginShot(next ActiveShot, tel sim.Telemetry) {
	d.shot = &next
	d.remaining = next.ResolvedDuration
	target := d.initialPose(tel)

	if d.settings.TransitionStyle == TransitionCut || !d.hasPose {
		d.trans = nil
		d.shot.Elapsed = 0
		d.phase = PhaseDrift
		d.lastPose = target
		d.hasPose = true
		return
	}

	d.trans = &transition{start: d.lastPose, target: target}
	d.phase = PhaseTransition
}

// resumeLocked re-acquires control after a pause. Shot timers were
// never reset, so playback continues where it left off.
func (d *Director) resumeLocked() {
	if d.resumePhase == "" {
		d.resumePhase = PhaseDrift
	}
	d.phase = d.resumePhase
	d.resumePhase = ""
	slog.Debug("camera resumed", "phase", d.phase)
}

// deactivateLocked abandons the active shot and returns to armed.
// No timers survive: the next activation selects fresh.
func (d *Director) deactivateLocked() {
	d.shot = nil
	d.trans = nil
	d.remaining = 0
	d.resumePhase = ""
	d.phase = PhaseArmed
}

// computePose produces this frame's world pose from the active shot or
// transition overlay plus current telemetry. No position history is
// consulted beyond the fixed transition endpoints.
func (d *Director) computePose(tel sim.Telemetry) Pose {
	if d.trans != nil {
		t := EaseInOutCubic(Clamp(d.trans.progress, 0, 1))
		return BlendPose(d.trans.start, d.trans.target, t)
	}
	return d.shotPose(*d.shot, d.shot.Elapsed, tel)
}

// initialPose is the pose a shot has at drift time zero.
func (d *Director) initialPose(tel sim.Telemetry) Pose {
	return d.shotPose(*d.shot, 0, tel)
}

// shotPose evaluates a shot at the given drift time under current
// telemetry, applying the configured drift style, the category's
// coordinate transform, and the external safety clamps.
func (d *Director) shotPose(shot ActiveShot, elapsed float64, tel sim.Telemetry) Pose {
	dr := d.driftOffsets(shot, elapsed)

	off := Offset{X: shot.X + dr.X, Y: shot.Y + dr.Y, Z: shot.Z + dr.Z}
	pitch := shot.Pitch + dr.Pitch
	heading := tel.Heading + shot.Heading + dr.Heading
	roll := shot.Roll + dr.Roll
	zoom := shot.Zoom + dr.Zoom

	var x, y, z float64
	if shot.Category == CategoryCockpit {
		// Cockpit views originate at the pilot eye point.
		off.X += d.dims.EyeX
		off.Y += d.dims.EyeY
		off.Z += d.dims.EyeZ
		x, y, z = HeadingToWorld(off, tel)
	} else {
		x, y, z = AttitudeToWorld(off, tel)
		y = ClampGround(y, TerrainY(tel, d.dims))
		x, y, z = ClampVisibility(x, y, z, tel, d.catalog.MinVisibleDistance)
	}

	return Pose{X: x, Y: y, Z: z, Pitch: pitch, Heading: heading, Roll: roll, Zoom: zoom}
}

// driftOffsets evaluates the configured drift style at the given time.
// Both styles are zero at t=0 so the drift phase continues seamlessly
// from the transition's target pose.
func (d *Director) driftOffsets(shot ActiveShot, elapsed float64) DriftRates {
	switch d.settings.DriftStyle {
	case DriftLinear:
		dur := shot.ResolvedDuration
		if dur <= 0 {
			return DriftRates{}
		}
		p := EaseInLinearDrift(elapsed / dur)
		return DriftRates{
			X:       p * shot.Drift.X * dur,
			Y:       p * shot.Drift.Y * dur,
			Z:       p * shot.Drift.Z * dur,
			Pitch:   p * shot.Drift.Pitch * dur,
			Heading: p * shot.Drift.Heading * dur,
			Roll:    p * shot.Drift.Roll * dur,
			Zoom:    p * shot.Drift.Zoom * dur,
		}
	default:
		dur := shot.ResolvedDuration
		wave := func(rate, mult float64) float64 {
			// Center the [0,1] oscillation so drift starts at zero.
			return (SinusoidalDrift(elapsed, baseDriftFreq*mult) - 0.5) * 2 * rate * dur
		}
		return DriftRates{
			X:       wave(shot.Drift.X, driftFreqMult.X),
			Y:       wave(shot.Drift.Y, driftFreqMult.Y),
			Z:       wave(shot.Drift.Z, driftFreqMult.Z),
			Pitch:   wave(shot.Drift.Pitch, driftFreqMult.Pitch),
			Heading: wave(shot.Drift.Heading, driftFreqMult.Heading),
			Roll:    wave(shot.Drift.Roll, driftFreqMult.Roll),
			Zoom:    wave(shot.Drift.Zoom, driftFreqMult.Zoom),
		}
	}
}

// pathPose evaluates the active user path at the current path time.
// Paths use the full attitude transform and the same safety clamps as
// external shots.
func (d *Director) pathPose(tel sim.Telemetry) Pose {
	pose, off := d.path.PoseAt(d.pathTime)
	x, y, z := AttitudeToWorld(off, tel)
	y = ClampGround(y, TerrainY(tel, d.dims))
	x, y, z = ClampVisibility(x, y, z, tel, d.catalog.MinVisibleDistance)
	return Pose{
		X: x, Y: y, Z: z,
		Pitch:   pose.Pitch,
		Heading: tel.Heading + pose.Heading,
		Roll:    pose.Roll,
		Zoom:    pose.Zoom,
	}
}
