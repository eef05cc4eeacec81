package camera

import "math"

const (
	// absMinVisibleDistance is the absolute safety floor for external
	// camera distance, meters.
	absMinVisibleDistance = 30.0
	// visibleDistanceFactor scales the larger aircraft extent into the
	// per-aircraft visibility floor.
	visibleDistanceFactor = 1.5
	// refCameraDistance is the external distance the base zoom values
	// were tuned at, meters.
	refCameraDistance = 50.0
)

// Generate builds the shot catalog for an aircraft of the given
// dimensions. Deterministic: no randomness is involved; duration
// randomization happens at selection time.
//
// Cockpit offsets scale sub-linearly (sqrt of the wingspan ratio) so a
// small cockpit does not push the camera through the canopy. External
// shots scale linearly with size, are pushed out to the minimum
// visible distance, and get their zoom recomputed from the final
// camera distance so the aircraft stays framed at any scale.
func Generate(d Dimensions) Catalog {
	sizeScale := d.SizeScale()
	cockpitScale := d.CockpitScale()
	minVisible := math.Max(visibleDistanceFactor*math.Max(d.Wingspan, d.Length), absMinVisibleDistance)

	c := Catalog{MinVisibleDistance: minVisible}

	for _, s := range cockpitTemplates {
		s.X *= cockpitScale
		s.Y *= cockpitScale
		s.Z *= cockpitScale
		s.Drift.X *= cockpitScale
		s.Drift.Y *= cockpitScale
		s.Drift.Z *= cockpitScale
		c.Cockpit = append(c.Cockpit, s)
	}

	for _, s := range externalTemplates {
		s.X *= sizeScale
		s.Y *= sizeScale
		s.Z *= sizeScale

		// Enforce the visibility floor, preserving shot direction.
		dist := math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
		if dist > 0 && dist < minVisible {
			f := minVisible / dist
			s.X *= f
			s.Y *= f
			s.Z *= f
			dist = minVisible
		}

		s.Zoom = intelligentZoom(s.Zoom, sizeScale, dist)

		s.Drift.X *= sizeScale
		s.Drift.Y *= sizeScale
		s.Drift.Z *= sizeScale
		c.External = append(c.External, s)
	}

	return c
}

// intelligentZoom widens the lens for large aircraft and tightens it
// for distant placements so the subject fills a similar portion of the
// frame regardless of absolute scale.
func intelligentZoom(baseZoom, sizeScale, dist float64) float64 {
	if sizeScale <= 0 {
		sizeScale = 1
	}
	distanceFactor := Clamp(dist/refCameraDistance, 0.7, 1.5)
	zoom := baseZoom * (1 / math.Sqrt(sizeScale)) * distanceFactor
	return Clamp(zoom, 0.5, 2.0)
}

// Cockpit templates, tuned for the reference medium body. Offsets are
// body-frame meters; drift creates the slow cinematic motion while a
// shot is active, with zoom breathing standing in for a DOF pull.
var cockpitTemplates = []Shot{
	{Category: CategoryCockpit, Name: "Center Panel", Y: 0.15, Z: 0.4, Pitch: -8, Zoom: 1.0, Duration: 8,
		Drift: DriftRates{Y: 0.01, Z: 0.02, Pitch: 0.2, Zoom: 0.03}},
	{Category: CategoryCockpit, Name: "Left Panel", X: -0.25, Y: 0.1, Z: 0.3, Pitch: -12, Heading: -25, Zoom: 1.2, Duration: 7,
		Drift: DriftRates{X: 0.01, Z: 0.01, Pitch: 0.15, Heading: 1.0, Zoom: 0.025}},
	{Category: CategoryCockpit, Name: "Right Panel", X: 0.25, Y: 0.1, Z: 0.3, Pitch: -12, Heading: 25, Zoom: 1.2, Duration: 7,
		Drift: DriftRates{X: -0.01, Z: 0.01, Pitch: 0.15, Heading: -1.0, Zoom: 0.025}},
	{Category: CategoryCockpit, Name: "Overhead Panel", Y: 0.35, Z: 0.15, Pitch: -55, Zoom: 1.1, Duration: 6,
		Drift: DriftRates{Y: -0.01, Z: 0.01, Pitch: 1.5, Zoom: 0.02}},
	{Category: CategoryCockpit, Name: "PFD View", X: -0.12, Y: 0.05, Z: 0.45, Pitch: -3, Heading: -8, Zoom: 1.6, Duration: 8,
		Drift: DriftRates{X: 0.005, Y: 0.005, Z: 0.015, Pitch: 0.1, Heading: 0.3, Zoom: 0.04}},
	{Category: CategoryCockpit, Name: "ND/MFD View", X: 0.12, Y: 0.05, Z: 0.45, Pitch: -3, Heading: 8, Zoom: 1.6, Duration: 8,
		Drift: DriftRates{X: -0.005, Y: 0.005, Z: 0.015, Pitch: 0.1, Heading: -0.3, Zoom: 0.04}},
	{Category: CategoryCockpit, Name: "Pilot View", X: -0.1, Y: 0.25, Z: -0.1, Pitch: 3, Heading: 5, Zoom: 0.9, Duration: 10,
		Drift: DriftRates{X: 0.005, Heading: 0.8}},
	{Category: CategoryCockpit, Name: "Copilot View", X: 0.35, Y: 0.2, Heading: -20, Zoom: 0.95, Duration: 8,
		Drift: DriftRates{X: -0.01, Heading: 0.5, Zoom: 0.01}},
	{Category: CategoryCockpit, Name: "Left Window", X: -0.35, Y: 0.15, Pitch: 2, Heading: -75, Zoom: 0.85, Duration: 9,
		Drift: DriftRates{Y: 0.01, Pitch: -0.3, Heading: 2.0}},
	{Category: CategoryCockpit, Name: "Right Window", X: 0.35, Y: 0.15, Pitch: 2, Heading: 75, Zoom: 0.85, Duration: 9,
		Drift: DriftRates{Y: 0.01, Pitch: -0.3, Heading: -2.0}},
	{Category: CategoryCockpit, Name: "Pedestal View", Z: 0.35, Pitch: -35, Zoom: 1.4, Duration: 6,
		Drift: DriftRates{Y: 0.01, Z: 0.01, Pitch: 0.5, Zoom: 0.03}},
}

// External templates. Heading drift on orbit-style shots produces the
// circling effect; position drift gives flybys their sweep.
var externalTemplates = []Shot{
	{Category: CategoryExternal, Name: "Front Hero", Y: 3, Z: -35, Pitch: 8, Heading: 180, Zoom: 0.9, Duration: 10,
		Drift: DriftRates{Y: 0.15, Z: 0.3, Pitch: -0.3, Zoom: 0.01}},
	{Category: CategoryExternal, Name: "Rear Chase", Y: 4, Z: 45, Pitch: 12, Zoom: 0.85, Duration: 10,
		Drift: DriftRates{Y: 0.1, Z: -0.2, Pitch: -0.2}},
	{Category: CategoryExternal, Name: "Left Flyby", X: -30, Y: 2, Z: 10, Pitch: 3, Heading: 85, Zoom: 0.9, Duration: 12,
		Drift: DriftRates{X: 0.4, Y: 0.08, Z: -0.5, Heading: 0.8}},
	{Category: CategoryExternal, Name: "Right Flyby", X: 30, Y: 2, Z: 10, Pitch: 3, Heading: -85, Zoom: 0.9, Duration: 12,
		Drift: DriftRates{X: -0.4, Y: 0.08, Z: -0.5, Heading: -0.8}},
	{Category: CategoryExternal, Name: "High Orbit", Y: 40, Z: 20, Pitch: 65, Zoom: 0.8, Duration: 15,
		Drift: DriftRates{Y: 0.05, Heading: 2.5}},
	{Category: CategoryExternal, Name: "Low Angle Front", Y: -8, Z: -25, Pitch: -25, Heading: 180, Zoom: 0.95, Duration: 8,
		Drift: DriftRates{Y: 0.12, Z: 0.15, Pitch: 0.5}},
	{Category: CategoryExternal, Name: "Quarter FL", X: -25, Y: 6, Z: -25, Pitch: 12, Heading: 140, Zoom: 0.88, Duration: 10,
		Drift: DriftRates{X: 0.2, Y: 0.08, Z: 0.25, Pitch: -0.15, Heading: -1.0}},
	{Category: CategoryExternal, Name: "Quarter FR", X: 25, Y: 6, Z: -25, Pitch: 12, Heading: -140, Zoom: 0.88, Duration: 10,
		Drift: DriftRates{X: -0.2, Y: 0.08, Z: 0.25, Pitch: -0.15, Heading: 1.0}},
	{Category: CategoryExternal, Name: "Quarter RL", X: -25, Y: 10, Z: 35, Pitch: 18, Heading: 50, Zoom: 0.85, Duration: 10,
		Drift: DriftRates{X: 0.15, Y: 0.05, Z: -0.25, Pitch: -0.2, Heading: -0.5}},
	{Category: CategoryExternal, Name: "Quarter RR", X: 25, Y: 10, Z: 35, Pitch: 18, Heading: -50, Zoom: 0.85, Duration: 10,
		Drift: DriftRates{X: -0.15, Y: 0.05, Z: -0.25, Pitch: -0.2, Heading: 0.5}},
	{Category: CategoryExternal, Name: "Wing Left", X: -18, Y: 3, Z: 5, Pitch: 8, Heading: 65, Zoom: 1.05, Duration: 8,
		Drift: DriftRates{X: 0.08, Y: 0.03, Z: -0.1, Heading: 0.5}},
	{Category: CategoryExternal, Name: "Wing Right", X: 18, Y: 3, Z: 5, Pitch: 8, Heading: -65, Zoom: 1.05, Duration: 8,
		Drift: DriftRates{X: -0.08, Y: 0.03, Z: -0.1, Heading: -0.5}},
	{Category: CategoryExternal, Name: "Engine L", X: -12, Y: 1, Pitch: 5, Heading: 80, Zoom: 1.3, Duration: 7,
		Drift: DriftRates{X: 0.05, Y: 0.02, Z: -0.08, Heading: 0.3}},
	{Category: CategoryExternal, Name: "Engine R", X: 12, Y: 1, Pitch: 5, Heading: -80, Zoom: 1.3, Duration: 7,
		Drift: DriftRates{X: -0.05, Y: 0.02, Z: -0.08, Heading: -0.3}},
	{Category: CategoryExternal, Name: "Tail View", Y: 8, Z: 50, Pitch: 25, Heading: 5, Zoom: 0.9, Duration: 9,
		Drift: DriftRates{Y: 0.08, Z: -0.15, Pitch: -0.3, Heading: -0.8}},
}
