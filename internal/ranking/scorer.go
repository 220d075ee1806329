// Package ranking scores the four supported activities against one
// day's weather and orders them by suitability.
package ranking

import (
	"strings"

	"github.com/wanderwise/travel-planner/internal/travel"
	"github.com/wanderwise/travel-planner/internal/weathercode"
)

// rule evaluates one independent scoring dimension against a day's
// weather. A fired rule contributes a delta and usually a reason
// fragment; an empty fragment is a deliberate silent adjustment.
type rule func(f travel.DailyForecast) (delta int, reason string, fired bool)

// avgTemp is shared by every rule set.
func avgTemp(f travel.DailyForecast) float64 {
	return (f.TemperatureMax + f.TemperatureMin) / 2
}

// Score evaluates one activity against one day's weather. It is pure:
// identical input always produces an identical RankedActivity,
// rationale text included.
func Score(kind travel.ActivityKind, f travel.DailyForecast) travel.RankedActivity {
	switch kind {
	case travel.Skiing:
		return fold(kind, 0, nil, skiingRules, f)
	case travel.Surfing:
		return fold(kind, 0, nil, surfingRules, f)
	case travel.IndoorSightseeing:
		// Indoor sightseeing starts at 50: always a viable fallback.
		return fold(kind, 50, []string{"comfortable indoor environment"}, indoorRules, f)
	case travel.OutdoorSightseeing:
		return fold(kind, 0, nil, outdoorRules, f)
	default:
		return travel.RankedActivity{Kind: kind}
	}
}

// fold runs the rules in order over immutable input, sums the deltas
// onto the base score, clamps to [0,100] and joins the fragments.
func fold(kind travel.ActivityKind, base int, baseReasons []string, rules []rule, f travel.DailyForecast) travel.RankedActivity {
	score := base
	reasons := append([]string(nil), baseReasons...)

	for _, r := range rules {
		delta, reason, fired := r(f)
		if !fired {
			continue
		}
		score += delta
		if reason != "" {
			reasons = append(reasons, reason)
		}
	}

	score = clamp(score)
	return travel.RankedActivity{
		Kind:        kind,
		Score:       score,
		Reason:      strings.Join(reasons, ", "),
		Recommended: score >= 50,
	}
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ---- skiing ----

var skiingRules = []rule{
	skiTemperature,
	skiSnow,
	skiWind,
	skiRain,
	skiVisibility,
}

func skiTemperature(f travel.DailyForecast) (int, string, bool) {
	t := avgTemp(f)
	switch {
	case t >= -10 && t <= 5:
		return 40, "ideal temperature for skiing", true
	case t > 5 && t <= 10:
		return 20, "acceptable temperature", true
	case t < -10:
		return 15, "very cold", true
	default:
		return 0, "too warm for skiing", true
	}
}

// skiSnow prefers reported fresh snowfall over the weather code.
func skiSnow(f travel.DailyForecast) (int, string, bool) {
	switch {
	case f.Snowfall != nil && *f.Snowfall > 0:
		return 30, "fresh snow", true
	case weathercode.IsSnowy(f.WeatherCode):
		return 25, "snowy conditions", true
	default:
		return 0, "no snow", true
	}
}

func skiWind(f travel.DailyForecast) (int, string, bool) {
	switch {
	case f.WindSpeed < 20:
		return 20, "calm winds", true
	case f.WindSpeed < 40:
		return 10, "moderate winds", true
	default:
		return -10, "high winds", true
	}
}

func skiRain(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsRainy(f.WeatherCode) {
		return -20, "rainy conditions", true
	}
	return 0, "", false
}

func skiVisibility(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsClear(f.WeatherCode) {
		return 10, "clear visibility", true
	}
	return 0, "", false
}

// ---- surfing ----

var surfingRules = []rule{
	surfTemperature,
	surfWind,
	surfSky,
	surfStorm,
	surfHeavyRain,
	surfLightSpray,
}

func surfTemperature(f travel.DailyForecast) (int, string, bool) {
	t := avgTemp(f)
	switch {
	case t >= 20:
		return 40, "warm temperature", true
	case t >= 15:
		return 25, "mild temperature", true
	case t >= 10:
		return 10, "cool temperature", true
	default:
		return 0, "too cold", true
	}
}

func surfWind(f travel.DailyForecast) (int, string, bool) {
	switch {
	case f.WindSpeed >= 15 && f.WindSpeed <= 35:
		return 30, "good wind for waves", true
	case f.WindSpeed > 35 && f.WindSpeed <= 50:
		return 15, "strong winds", true
	case f.WindSpeed < 15:
		return 10, "light winds", true
	default:
		return -20, "dangerous winds", true
	}
}

func surfSky(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsClear(f.WeatherCode) || weathercode.IsCloudy(f.WeatherCode) {
		return 20, "suitable weather", true
	}
	return 0, "", false
}

func surfStorm(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsStormy(f.WeatherCode) {
		return -50, "dangerous thunderstorms", true
	}
	return 0, "", false
}

func surfHeavyRain(f travel.DailyForecast) (int, string, bool) {
	switch {
	case f.Precipitation > 10:
		return -20, "heavy rain", true
	case f.Precipitation > 5:
		return -10, "moderate rain", true
	default:
		return 0, "", false
	}
}

// surfLightSpray fires without a reason fragment. That asymmetry is
// historical and the rationale text must not change.
func surfLightSpray(f travel.DailyForecast) (int, string, bool) {
	if f.Precipitation > 0 && f.Precipitation <= 2 {
		return 10, "", true
	}
	return 0, "", false
}

// ---- indoor sightseeing ----

var indoorRules = []rule{
	indoorRain,
	indoorSnow,
	indoorStorm,
	indoorExtremeTemp,
	indoorHighWind,
	indoorNiceOutside,
}

func indoorRain(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsRainy(f.WeatherCode) {
		return 25, "rainy outside", true
	}
	return 0, "", false
}

func indoorSnow(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsSnowy(f.WeatherCode) {
		return 20, "snowy outside", true
	}
	return 0, "", false
}

func indoorStorm(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsStormy(f.WeatherCode) {
		return 30, "stormy outside", true
	}
	return 0, "", false
}

func indoorExtremeTemp(f travel.DailyForecast) (int, string, bool) {
	t := avgTemp(f)
	if t < 0 || t > 35 {
		return 15, "extreme temperature outside", true
	}
	return 0, "", false
}

func indoorHighWind(f travel.DailyForecast) (int, string, bool) {
	if f.WindSpeed > 40 {
		return 15, "high winds outside", true
	}
	return 0, "", false
}

// indoorNiceOutside penalizes being indoors on genuinely good days. It
// stacks additively with the bonuses above on pathological inputs.
func indoorNiceOutside(f travel.DailyForecast) (int, string, bool) {
	t := avgTemp(f)
	if weathercode.IsClear(f.WeatherCode) && t >= 15 && t <= 25 {
		return -20, "beautiful weather outside", true
	}
	return 0, "", false
}

// ---- outdoor sightseeing ----

var outdoorRules = []rule{
	outdoorTemperature,
	outdoorSky,
	outdoorPrecipitation,
	outdoorWind,
	outdoorStorm,
}

func outdoorTemperature(f travel.DailyForecast) (int, string, bool) {
	t := avgTemp(f)
	switch {
	case t >= 15 && t <= 25:
		return 35, "perfect temperature", true
	case t >= 10 && t < 15:
		return 25, "pleasant temperature", true
	case t > 25 && t <= 30:
		return 20, "warm but manageable", true
	case t > 30:
		return 5, "hot weather", true
	default:
		return 10, "cool weather", true
	}
}

func outdoorSky(f travel.DailyForecast) (int, string, bool) {
	switch {
	case weathercode.IsClear(f.WeatherCode):
		return 40, "clear skies", true
	case weathercode.IsCloudy(f.WeatherCode):
		return 25, "partly cloudy", true
	default:
		return 0, "", false
	}
}

func outdoorPrecipitation(f travel.DailyForecast) (int, string, bool) {
	switch {
	case f.Precipitation == 0:
		return 15, "no rain", true
	case f.Precipitation <= 2:
		return 5, "light rain possible", true
	case f.Precipitation <= 5:
		return -10, "moderate rain expected", true
	default:
		return -30, "heavy rain expected", true
	}
}

func outdoorWind(f travel.DailyForecast) (int, string, bool) {
	switch {
	case f.WindSpeed < 20:
		return 10, "calm conditions", true
	case f.WindSpeed > 40:
		return -20, "very windy", true
	default:
		return 0, "", false
	}
}

func outdoorStorm(f travel.DailyForecast) (int, string, bool) {
	if weathercode.IsStormy(f.WeatherCode) {
		return -50, "thunderstorms", true
	}
	return 0, "", false
}
