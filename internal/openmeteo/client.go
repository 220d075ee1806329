// Package openmeteo implements the geocoding and forecast clients for
// the Open-Meteo APIs. Open-Meteo needs no API key.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wanderwise/travel-planner/internal/travel"
)

const (
	geocodingDefaultURL = "https://geocoding-api.open-meteo.com/v1"
	forecastDefaultURL  = "https://api.open-meteo.com/v1"

	defaultTimeout = 5 * time.Second
)

// dailyFields is the fixed set of daily series requested from the
// forecast API, matching the parallel arrays in ForecastResponse.
var dailyFields = strings.Join([]string{
	"temperature_2m_max",
	"temperature_2m_min",
	"precipitation_sum",
	"windspeed_10m_max",
	"weathercode",
	"snowfall_sum",
}, ",")

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// doGet performs a GET request and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", rawURL, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", rawURL, err)
	}

	return nil
}

// ---- geocoding ----

// GeoClient searches cities by name against the Open-Meteo geocoding
// API.
type GeoClient struct {
	baseURL string
	client  *http.Client
}

// NewGeoClient constructs a GeoClient against the production geocoding
// URL.
func NewGeoClient(timeout time.Duration) *GeoClient {
	return &GeoClient{baseURL: geocodingDefaultURL, client: newHTTPClient(timeout)}
}

// NewGeoClientWithURL constructs a GeoClient pointing at a custom base
// URL (config override or httptest).
func NewGeoClientWithURL(baseURL string, timeout time.Duration) *GeoClient {
	return &GeoClient{baseURL: baseURL, client: newHTTPClient(timeout)}
}

type geocodingResponse struct {
	Results []struct {
		Name        string  `json:"name"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
		Country     string  `json:"country"`
		CountryCode string  `json:"country_code"`
		Admin1      string  `json:"admin1"`
		Population  int     `json:"population"`
	} `json:"results"`
}

// Search looks up cities matching query. A zero-match result is a
// CITY_NOT_FOUND error, transport failures are UPSTREAM_ERROR.
func (c *GeoClient) Search(ctx context.Context, query string, limit int) ([]travel.City, error) {
	params := url.Values{}
	params.Set("name", query)
	params.Set("count", strconv.Itoa(limit))
	params.Set("language", "en")
	params.Set("format", "json")

	var raw geocodingResponse
	endpoint := c.baseURL + "/search?" + params.Encode()
	if err := doGet(ctx, c.client, endpoint, &raw); err != nil {
		return nil, travel.NewUpstreamError(fmt.Sprintf("city search for %q failed", query), err)
	}

	if len(raw.Results) == 0 {
		return nil, travel.NewCityNotFoundError(query)
	}

	cities := make([]travel.City, 0, len(raw.Results))
	for _, r := range raw.Results {
		cities = append(cities, travel.City{
			ID:          CityID(r.Latitude, r.Longitude),
			Name:        r.Name,
			Country:     r.Country,
			CountryCode: r.CountryCode,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
			Admin1:      r.Admin1,
			Population:  r.Population,
		})
	}

	return cities, nil
}

// CityID derives the stable city identifier from coordinates.
func CityID(lat, lon float64) string {
	return formatCoord(lat) + "_" + formatCoord(lon)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// CityFromID reconstructs a City from a "<lat>_<lon>" id. No network
// call is involved; name and country stay placeholders since only the
// geocoding search knows them.
func CityFromID(id string) (travel.City, error) {
	latStr, lonStr, ok := strings.Cut(id, "_")
	if !ok || latStr == "" || lonStr == "" {
		return travel.City{}, travel.NewBadCityIDError(id)
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil || math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return travel.City{}, travel.NewBadCityIDError(id)
	}

	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return travel.City{}, travel.NewBadCityIDError(id)
	}

	return travel.City{
		ID:        id,
		Name:      fmt.Sprintf("Lat %.2f, Lon %.2f", lat, lon),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// ---- forecast ----

// ForecastClient fetches the multi-day daily forecast from the
// Open-Meteo weather API.
type ForecastClient struct {
	baseURL string
	client  *http.Client
}

// NewForecastClient constructs a ForecastClient against the production
// weather URL.
func NewForecastClient(timeout time.Duration) *ForecastClient {
	return &ForecastClient{baseURL: forecastDefaultURL, client: newHTTPClient(timeout)}
}

// NewForecastClientWithURL constructs a ForecastClient pointing at a
// custom base URL (config override or httptest).
func NewForecastClientWithURL(baseURL string, timeout time.Duration) *ForecastClient {
	return &ForecastClient{baseURL: baseURL, client: newHTTPClient(timeout)}
}

// DailySeries carries the parallel per-day arrays of the raw payload,
// all indexed by day offset. SnowfallSum may be absent.
type DailySeries struct {
	Time             []string  `json:"time"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	WindSpeedMax     []float64 `json:"windspeed_10m_max"`
	WeatherCode      []int     `json:"weathercode"`
	SnowfallSum      []float64 `json:"snowfall_sum"`
}

// ForecastResponse is the raw multi-day payload from Open-Meteo.
type ForecastResponse struct {
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Timezone  string      `json:"timezone"`
	Daily     DailySeries `json:"daily"`
}

// Forecast retrieves the daily forecast for the given coordinates.
// days must already be clamped by the caller.
func (c *ForecastClient) Forecast(ctx context.Context, lat, lon float64, days int) (*ForecastResponse, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lon))
	params.Set("daily", dailyFields)
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	var raw ForecastResponse
	endpoint := c.baseURL + "/forecast?" + params.Encode()
	if err := doGet(ctx, c.client, endpoint, &raw); err != nil {
		return nil, travel.NewUpstreamError(fmt.Sprintf("weather fetch for %s failed", CityID(lat, lon)), err)
	}

	return &raw, nil
}
