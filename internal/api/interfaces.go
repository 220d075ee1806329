package api

import (
	"context"

	"github.com/wanderwise/travel-planner/internal/travel"
)

// Planner defines the orchestration operations needed by handlers.
type Planner interface {
	SearchCities(ctx context.Context, query string, limit int) ([]travel.City, error)
	GetWeather(ctx context.Context, cityID string, days int) (*travel.Weather, error)
	GetActivityRankings(ctx context.Context, cityID string, days int) ([]travel.ActivityRanking, error)
	GetTravelPlan(ctx context.Context, cityID string, days int) (*travel.TravelPlan, error)
}
