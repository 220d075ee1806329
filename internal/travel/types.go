package travel

// City is a resolved location from the geocoding provider. The ID is
// derived from coordinates ("<lat>_<lon>") so a city can be looked up
// again without another geocoding round trip.
type City struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Admin1      string  `json:"admin1,omitempty"`
	Population  int     `json:"population,omitempty"`
}

// DailyForecast holds one day of forecast data. Snowfall is a pointer:
// the provider may omit the snowfall series entirely, and "not
// reported" is distinct from zero.
type DailyForecast struct {
	Date               string   `json:"date"`
	TemperatureMax     float64  `json:"temperature_max"`
	TemperatureMin     float64  `json:"temperature_min"`
	Precipitation      float64  `json:"precipitation"`
	WindSpeed          float64  `json:"wind_speed"`
	WeatherCode        int      `json:"weather_code"`
	WeatherDescription string   `json:"weather_description"`
	Snowfall           *float64 `json:"snowfall,omitempty"`
}

// Weather is a city's multi-day forecast.
type Weather struct {
	City      City            `json:"city"`
	Timezone  string          `json:"timezone"`
	Forecasts []DailyForecast `json:"forecasts"`
}

// ActivityKind enumerates the four supported activities. The set is
// closed; scoring logic switches over it exhaustively.
type ActivityKind string

const (
	Skiing             ActivityKind = "SKIING"
	Surfing            ActivityKind = "SURFING"
	IndoorSightseeing  ActivityKind = "INDOOR_SIGHTSEEING"
	OutdoorSightseeing ActivityKind = "OUTDOOR_SIGHTSEEING"
)

// RankedActivity is one activity scored against one day's weather.
// Score is always within [0,100] and Recommended is Score >= 50.
type RankedActivity struct {
	Kind        ActivityKind `json:"type"`
	Score       int          `json:"score"`
	Reason      string       `json:"reason"`
	Recommended bool         `json:"recommended"`
}

// ActivityRanking pairs a forecast day with its four ranked activities,
// sorted by descending score.
type ActivityRanking struct {
	Date       string           `json:"date"`
	Weather    DailyForecast    `json:"weather"`
	Activities []RankedActivity `json:"activities"`
}

// TravelPlan is the composite result: the city, its forecast window and
// one ActivityRanking per forecast day, in day order.
type TravelPlan struct {
	City             City              `json:"city"`
	Weather          Weather           `json:"weather"`
	ActivityRankings []ActivityRanking `json:"activity_rankings"`
}
