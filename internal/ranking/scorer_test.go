package ranking_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wanderwise/travel-planner/internal/ranking"
	"github.com/wanderwise/travel-planner/internal/travel"
)

func snowfall(mm float64) *float64 { return &mm }

// snowDay is a textbook skiing day: cold, fresh snow, calm winds.
func snowDay() travel.DailyForecast {
	return travel.DailyForecast{
		Date:           "2026-01-10",
		TemperatureMax: 2,
		TemperatureMin: -5,
		Precipitation:  0,
		WindSpeed:      15,
		WeatherCode:    71,
		Snowfall:       snowfall(10),
	}
}

// clearMildDay is a perfect outdoor sightseeing day.
func clearMildDay() travel.DailyForecast {
	return travel.DailyForecast{
		Date:           "2026-06-20",
		TemperatureMax: 24,
		TemperatureMin: 18,
		Precipitation:  0,
		WindSpeed:      10,
		WeatherCode:    0,
	}
}

// stormDay drives everything indoors.
func stormDay() travel.DailyForecast {
	return travel.DailyForecast{
		Date:           "2026-08-03",
		TemperatureMax: 22,
		TemperatureMin: 16,
		Precipitation:  25,
		WindSpeed:      45,
		WeatherCode:    95,
	}
}

func TestScoreSkiingOnSnowDay(t *testing.T) {
	got := ranking.Score(travel.Skiing, snowDay())

	assert.Equal(t, 90, got.Score)
	assert.Equal(t, "ideal temperature for skiing, fresh snow, calm winds", got.Reason)
	assert.True(t, got.Recommended)
}

func TestScoreSkiingSnowfallTakesPriorityOverSnowyCode(t *testing.T) {
	day := snowDay()

	withSnowfall := ranking.Score(travel.Skiing, day)
	assert.Contains(t, withSnowfall.Reason, "fresh snow")

	day.Snowfall = nil
	withoutSnowfall := ranking.Score(travel.Skiing, day)
	assert.Contains(t, withoutSnowfall.Reason, "snowy conditions")
	assert.Equal(t, withSnowfall.Score-5, withoutSnowfall.Score)
}

func TestScoreSkiingZeroSnowfallReportedIsNotFreshSnow(t *testing.T) {
	day := snowDay()
	day.Snowfall = snowfall(0)

	got := ranking.Score(travel.Skiing, day)
	assert.Contains(t, got.Reason, "snowy conditions")
	assert.NotContains(t, got.Reason, "fresh snow")
}

func TestScoreOutdoorOnClearMildDay(t *testing.T) {
	got := ranking.Score(travel.OutdoorSightseeing, clearMildDay())

	assert.Equal(t, 100, got.Score)
	assert.Equal(t, "perfect temperature, clear skies, no rain, calm conditions", got.Reason)
	assert.True(t, got.Recommended)
}

func TestScoreIndoorOnStormDay(t *testing.T) {
	got := ranking.Score(travel.IndoorSightseeing, stormDay())

	assert.Equal(t, 95, got.Score)
	assert.Equal(t, "comfortable indoor environment, stormy outside, high winds outside", got.Reason)
	assert.True(t, got.Recommended)
}

func TestScoreIndoorPenalizedOnBeautifulDay(t *testing.T) {
	got := ranking.Score(travel.IndoorSightseeing, clearMildDay())

	assert.Equal(t, 30, got.Score)
	assert.Equal(t, "comfortable indoor environment, beautiful weather outside", got.Reason)
	assert.False(t, got.Recommended)
}

func TestScoreIndoorBonusesStackWithPenalty(t *testing.T) {
	// Clear and mild but absurdly windy: the high-wind bonus and the
	// beautiful-weather penalty both fire, additively.
	day := clearMildDay()
	day.WindSpeed = 45

	got := ranking.Score(travel.IndoorSightseeing, day)
	assert.Equal(t, 45, got.Score)
	assert.Contains(t, got.Reason, "high winds outside")
	assert.Contains(t, got.Reason, "beautiful weather outside")
}

func TestScoreSurfingLightPrecipitationBonusHasNoFragment(t *testing.T) {
	day := travel.DailyForecast{
		TemperatureMax: 0,
		TemperatureMin: 0,
		Precipitation:  1,
		WindSpeed:      0,
		WeatherCode:    3,
	}

	got := ranking.Score(travel.Surfing, day)
	// too cold (0) + light winds (10) + suitable weather (20) + the
	// silent light-precipitation bonus (10).
	assert.Equal(t, 40, got.Score)
	assert.Equal(t, "too cold, light winds, suitable weather", got.Reason)
}

func TestScoreSurfingStormDayClampsToZero(t *testing.T) {
	got := ranking.Score(travel.Surfing, stormDay())

	assert.Equal(t, 0, got.Score)
	assert.False(t, got.Recommended)
	assert.Contains(t, got.Reason, "dangerous thunderstorms")
}

func TestScoreIndoorClampsToHundred(t *testing.T) {
	// Storm + gale + deep cold pushes the raw total to 110.
	day := travel.DailyForecast{
		TemperatureMax: -5,
		TemperatureMin: -5,
		WindSpeed:      50,
		WeatherCode:    95,
	}

	got := ranking.Score(travel.IndoorSightseeing, day)
	assert.Equal(t, 100, got.Score)
}

func TestScoreBoundsAndRecommendationAcrossInputGrid(t *testing.T) {
	kinds := []travel.ActivityKind{
		travel.Skiing, travel.Surfing, travel.IndoorSightseeing, travel.OutdoorSightseeing,
	}
	codes := []int{0, 3, 45, 55, 65, 71, 85, 95, 999, -1}
	temps := []float64{-25, -5, 0, 12, 22, 38}
	winds := []float64{0, 18, 37, 55}
	precips := []float64{0, 1, 4, 8, 30}

	for _, kind := range kinds {
		for _, code := range codes {
			for _, temp := range temps {
				for _, wind := range winds {
					for _, precip := range precips {
						day := travel.DailyForecast{
							TemperatureMax: temp + 3,
							TemperatureMin: temp - 3,
							Precipitation:  precip,
							WindSpeed:      wind,
							WeatherCode:    code,
						}
						got := ranking.Score(kind, day)
						msg := fmt.Sprintf("%s code=%d temp=%v wind=%v precip=%v", kind, code, temp, wind, precip)
						assert.GreaterOrEqual(t, got.Score, 0, msg)
						assert.LessOrEqual(t, got.Score, 100, msg)
						assert.Equal(t, got.Score >= 50, got.Recommended, msg)
						assert.NotEmpty(t, got.Reason, msg)
					}
				}
			}
		}
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	for _, day := range []travel.DailyForecast{snowDay(), clearMildDay(), stormDay()} {
		for _, kind := range []travel.ActivityKind{
			travel.Skiing, travel.Surfing, travel.IndoorSightseeing, travel.OutdoorSightseeing,
		} {
			first := ranking.Score(kind, day)
			second := ranking.Score(kind, day)
			assert.Equal(t, first, second)
		}
	}
}
