// Package weathercode classifies WMO weather codes as relayed by the
// Open-Meteo forecast API. The category sets overlap (a code can be
// both rainy and something else in principle) and are total over every
// code the provider can emit.
package weathercode

const unknownDescription = "Unknown weather condition"

// descriptions maps WMO codes to human-readable text.
var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Foggy",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

var (
	clearCodes  = codeSet(0, 1, 2)
	cloudyCodes = codeSet(3, 45, 48)
	rainyCodes  = codeSet(51, 53, 55, 56, 57, 61, 63, 65, 66, 67, 80, 81, 82)
	snowyCodes  = codeSet(71, 73, 75, 77, 85, 86)
	stormyCodes = codeSet(95, 96, 99)
)

func codeSet(codes ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// Describe returns the human-readable description for a WMO code. It
// never fails: unknown codes fall back to a fixed string.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return unknownDescription
}

// Known reports whether the code appears in the description table.
func Known(code int) bool {
	_, ok := descriptions[code]
	return ok
}

// IsClear reports clear-sky conditions (codes 0-2).
func IsClear(code int) bool {
	_, ok := clearCodes[code]
	return ok
}

// IsCloudy reports overcast or fog (codes 3, 45, 48).
func IsCloudy(code int) bool {
	_, ok := cloudyCodes[code]
	return ok
}

// IsRainy reports drizzle, rain or rain showers.
func IsRainy(code int) bool {
	_, ok := rainyCodes[code]
	return ok
}

// IsSnowy reports snowfall, snow grains or snow showers.
func IsSnowy(code int) bool {
	_, ok := snowyCodes[code]
	return ok
}

// IsStormy reports thunderstorm codes.
func IsStormy(code int) bool {
	_, ok := stormyCodes[code]
	return ok
}
