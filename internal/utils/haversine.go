package utils

import "math"

const earthRadiusKm = 6371.0

func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	lat1R := degreesToRadians(lat1)
	lat2R := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1R)*math.Cos(lat2R)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// WithinKm reports whether two points are at most km apart. Identical
// points always match, so a zero radius merges only exact duplicates.
func WithinKm(lat1, lon1, lat2, lon2, km float64) bool {
	if lat1 == lat2 && lon1 == lon2 {
		return true
	}
	if km <= 0 {
		return false
	}
	return HaversineKm(lat1, lon1, lat2, lon2) <= km
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
