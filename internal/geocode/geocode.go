// Package geocode resolves phone numbers to approximate map locations from
// static area-code and country-code tables.
package geocode

import (
	"regexp"
	"sort"
	"strings"
)

var (
	ladasByLength     = sortedByLength(LADAS, func(l LadaInfo) string { return l.Lada })
	countriesByLength = sortedByLength(countryCodes, func(c countryInfo) string { return c.Code })
)

func sortedByLength[T any](in []T, key func(T) string) []T {
	out := append([]T(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(key(out[i])) > len(key(out[j]))
	})
	return out
}

var numberNoise = regexp.MustCompile(`[\s\-()]`)

// CleanNumber strips whitespace, dashes and parentheses.
func CleanNumber(number string) string {
	return numberNoise.ReplaceAllString(number, "")
}

// GetLadaInfo locates a phone number. National numbers are matched against
// the area-code table first, longest prefix winning. Numbers written with
// a leading "+" or "00" are matched only against the country-code table,
// which also serves as the fallback for national numbers without a known
// area code.
func GetLadaInfo(number string) (LadaInfo, bool) {
	clean := CleanNumber(number)
	if clean == "" {
		return LadaInfo{}, false
	}

	bare := clean
	switch {
	case strings.HasPrefix(clean, "+"):
		bare = clean[1:]
	case strings.HasPrefix(clean, "00"):
		bare = clean[2:]
	default:
		for _, l := range ladasByLength {
			if strings.HasPrefix(clean, l.Lada) {
				return l, true
			}
		}
	}

	for _, c := range countriesByLength {
		if strings.HasPrefix(bare, c.Code) {
			return LadaInfo{
				Lada:   c.Code,
				Ciudad: c.Capital,
				Estado: c.Country,
				Lat:    c.Lat,
				Lng:    c.Lng,
			}, true
		}
	}
	return LadaInfo{}, false
}

// Locator resolves numbers to locations.
type Locator interface {
	Locate(number string) (LadaInfo, bool)
}

// TableLocator is the static-table Locator.
type TableLocator struct{}

func (TableLocator) Locate(number string) (LadaInfo, bool) {
	return GetLadaInfo(number)
}
