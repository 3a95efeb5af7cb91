package scoring

import "math"

const earthRadiusMeters = 6371000.0

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula.
func DistanceMeters(latA, lonA, latB, lonB float64) float64 {
	p1 := latA * math.Pi / 180
	p2 := latB * math.Pi / 180
	dLat := (latB - latA) * math.Pi / 180
	dLon := (lonB - lonA) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// SectorAngle returns the angle in [0,360) of a point as seen from the
// center. Latitude is treated as a plain y axis here, which is not a true
// compass bearing; at the ~5km scales we bucket over, the distortion does not
// matter for sector assignment.
func SectorAngle(centerLat, centerLon, pointLat, pointLon float64) float64 {
	angle := math.Atan2(pointLat-centerLat, pointLon-centerLon)
	deg := angle*180/math.Pi + 180
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
