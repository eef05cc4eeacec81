// Package geo provides great-circle helpers for moving the simulated
// aircraft across the globe.
package geo

import "math"

// earthRadius is the mean Earth radius in meters.
const earthRadius = 6371000

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

func rad(deg float64) float64 { return deg * math.Pi / 180 }
func deg(rad float64) float64 { return rad * 180 / math.Pi }

// Distance returns the haversine distance between two points in meters.
func Distance(a, b Point) float64 {
	dLat := rad(b.Lat - a.Lat)
	dLon := rad(b.Lon - a.Lon)
	latA := rad(a.Lat)
	latB := rad(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DestinationPoint returns the point reached by traveling distMeters from
// start along the given bearing in degrees.
func DestinationPoint(start Point, distMeters, bearing float64) Point {
	lat := rad(start.Lat)
	lon := rad(start.Lon)
	brg := rad(bearing)
	ang := distMeters / earthRadius

	lat2 := math.Asin(math.Sin(lat)*math.Cos(ang) +
		math.Cos(lat)*math.Sin(ang)*math.Cos(brg))
	lon2 := lon + math.Atan2(math.Sin(brg)*math.Sin(ang)*math.Cos(lat),
		math.Cos(ang)-math.Sin(lat)*math.Sin(lat2))

	return Point{Lat: deg(lat2), Lon: deg(lon2)}
}

// Bearing returns the initial bearing from a to b in degrees, 0..360.
func Bearing(a, b Point) float64 {
	latA := rad(a.Lat)
	latB := rad(b.Lat)
	dLon := rad(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(latB)
	x := math.Cos(latA)*math.Sin(latB) - math.Sin(latA)*math.Cos(latB)*math.Cos(dLon)
	return math.Mod(deg(math.Atan2(y, x))+360, 360)
}
