package geocode

import (
	"github.com/sentinela/gateway/internal/utils"
)

// Marker is one map pin for the call map. Phones holds every number that
// resolved to (or near) its position.
type Marker struct {
	Lat    float64  `json:"lat"`
	Lng    float64  `json:"lng"`
	Phones []string `json:"phones"`
	Lada   LadaInfo `json:"lada"`
}

// Markers places one marker per locatable phone. Phones without a location
// are returned separately. Markers closer than mergeKm, or at identical
// coordinates, collapse into the first one placed.
func Markers(loc Locator, phones []string, mergeKm float64) (markers []Marker, unlocated []string) {
	if loc == nil {
		loc = TableLocator{}
	}
	for _, phone := range phones {
		info, ok := loc.Locate(phone)
		if !ok {
			unlocated = append(unlocated, phone)
			continue
		}
		merged := false
		for i := range markers {
			if utils.WithinKm(markers[i].Lat, markers[i].Lng, info.Lat, info.Lng, mergeKm) {
				markers[i].Phones = append(markers[i].Phones, phone)
				merged = true
				break
			}
		}
		if !merged {
			markers = append(markers, Marker{Lat: info.Lat, Lng: info.Lng, Phones: []string{phone}, Lada: info})
		}
	}
	return markers, unlocated
}
