// Package planner orchestrates city resolution, forecast retrieval,
// forecast assembly and per-day activity ranking.
package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/wanderwise/travel-planner/internal/openmeteo"
	"github.com/wanderwise/travel-planner/internal/ranking"
	"github.com/wanderwise/travel-planner/internal/travel"
	"github.com/wanderwise/travel-planner/internal/weathercode"
)

const (
	// Forecast window bounds imposed by the weather provider.
	MinForecastDays     = 1
	MaxForecastDays     = 16
	DefaultForecastDays = 7

	minQueryLength = 2
)

// CitySearcher is the geocoding collaborator, satisfied by
// openmeteo.GeoClient.
type CitySearcher interface {
	Search(ctx context.Context, query string, limit int) ([]travel.City, error)
}

// ForecastFetcher is the weather collaborator, satisfied by
// openmeteo.ForecastClient.
type ForecastFetcher interface {
	Forecast(ctx context.Context, lat, lon float64, days int) (*openmeteo.ForecastResponse, error)
}

// Service implements the four planner operations.
type Service struct {
	geo            CitySearcher
	weather        ForecastFetcher
	maxSuggestions int
	log            *slog.Logger
}

// NewService constructs a Service with the given collaborators.
// maxSuggestions bounds the limit accepted by SearchCities.
func NewService(geo CitySearcher, weather ForecastFetcher, maxSuggestions int, log *slog.Logger) *Service {
	return &Service{
		geo:            geo,
		weather:        weather,
		maxSuggestions: maxSuggestions,
		log:            log,
	}
}

// ClampDays coerces a day count into [MinForecastDays, MaxForecastDays].
// Out-of-range requests are clamped, never rejected.
func ClampDays(days int) int {
	if days < MinForecastDays {
		return MinForecastDays
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}

func (s *Service) clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > s.maxSuggestions {
		return s.maxSuggestions
	}
	return limit
}

// SearchCities resolves a free-text query into candidate cities.
func (s *Service) SearchCities(ctx context.Context, query string, limit int) ([]travel.City, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < minQueryLength {
		return nil, travel.NewValidationError("search query must be at least 2 characters")
	}

	cities, err := s.geo.Search(ctx, trimmed, s.clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching cities: %w", err)
	}

	s.log.Debug("city search resolved", "query", trimmed, "matches", len(cities))
	return cities, nil
}

// GetWeather resolves the city id and returns its assembled forecast
// window.
func (s *Service) GetWeather(ctx context.Context, cityID string, days int) (*travel.Weather, error) {
	city, raw, err := s.fetchForecast(ctx, cityID, days)
	if err != nil {
		return nil, err
	}

	return &travel.Weather{
		City:      city,
		Timezone:  raw.Timezone,
		Forecasts: assembleForecasts(raw),
	}, nil
}

// GetActivityRankings returns per-day activity rankings for the city.
func (s *Service) GetActivityRankings(ctx context.Context, cityID string, days int) ([]travel.ActivityRanking, error) {
	_, raw, err := s.fetchForecast(ctx, cityID, days)
	if err != nil {
		return nil, err
	}

	return rankDays(ctx, assembleForecasts(raw)), nil
}

// GetTravelPlan composes the city, its forecast and per-day rankings
// into one result.
func (s *Service) GetTravelPlan(ctx context.Context, cityID string, days int) (*travel.TravelPlan, error) {
	city, raw, err := s.fetchForecast(ctx, cityID, days)
	if err != nil {
		return nil, err
	}

	forecasts := assembleForecasts(raw)

	return &travel.TravelPlan{
		City: city,
		Weather: travel.Weather{
			City:      city,
			Timezone:  raw.Timezone,
			Forecasts: forecasts,
		},
		ActivityRankings: rankDays(ctx, forecasts),
	}, nil
}

// fetchForecast is the shared first half of every city-scoped
// operation: parse the id, then fetch the raw forecast for the clamped
// day count.
func (s *Service) fetchForecast(ctx context.Context, cityID string, days int) (travel.City, *openmeteo.ForecastResponse, error) {
	city, err := openmeteo.CityFromID(cityID)
	if err != nil {
		return travel.City{}, nil, fmt.Errorf("resolving city id: %w", err)
	}

	raw, err := s.weather.Forecast(ctx, city.Latitude, city.Longitude, ClampDays(days))
	if err != nil {
		return travel.City{}, nil, fmt.Errorf("fetching forecast: %w", err)
	}

	return city, raw, nil
}

// assembleForecasts pairs the raw parallel arrays positionally into one
// DailyForecast per day. The date series defines the output length;
// snowfall is attached only where the snowfall series covers the index.
func assembleForecasts(raw *openmeteo.ForecastResponse) []travel.DailyForecast {
	daily := raw.Daily
	forecasts := make([]travel.DailyForecast, 0, len(daily.Time))

	for i, date := range daily.Time {
		f := travel.DailyForecast{Date: date}
		if i < len(daily.TemperatureMax) {
			f.TemperatureMax = daily.TemperatureMax[i]
		}
		if i < len(daily.TemperatureMin) {
			f.TemperatureMin = daily.TemperatureMin[i]
		}
		if i < len(daily.PrecipitationSum) {
			f.Precipitation = daily.PrecipitationSum[i]
		}
		if i < len(daily.WindSpeedMax) {
			f.WindSpeed = daily.WindSpeedMax[i]
		}
		if i < len(daily.WeatherCode) {
			f.WeatherCode = daily.WeatherCode[i]
		}
		f.WeatherDescription = weathercode.Describe(f.WeatherCode)
		if i < len(daily.SnowfallSum) {
			snowfall := daily.SnowfallSum[i]
			f.Snowfall = &snowfall
		}
		forecasts = append(forecasts, f)
	}

	return forecasts
}

// rankDays ranks every forecast day. Days are independent, so ranking
// fans out across goroutines; results land in a pre-sized slice by
// index, keeping the output in forecast day order.
func rankDays(ctx context.Context, forecasts []travel.DailyForecast) []travel.ActivityRanking {
	rankings := make([]travel.ActivityRanking, len(forecasts))

	g, _ := errgroup.WithContext(ctx)
	for i, f := range forecasts {
		i, f := i, f
		g.Go(func() error {
			rankings[i] = travel.ActivityRanking{
				Date:       f.Date,
				Weather:    f,
				Activities: ranking.Rank(f),
			}
			return nil
		})
	}
	// Ranking is pure and never errors.
	_ = g.Wait()

	return rankings
}
