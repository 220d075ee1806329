package ranking

import (
	"sort"

	"github.com/wanderwise/travel-planner/internal/travel"
)

// kinds is the fixed evaluation order; it is also the tie-break order
// for equal scores.
var kinds = [...]travel.ActivityKind{
	travel.Skiing,
	travel.Surfing,
	travel.IndoorSightseeing,
	travel.OutdoorSightseeing,
}

// Rank scores all four activities against one day's weather and
// returns them sorted by descending score. The sort is stable so ties
// keep the evaluation order.
func Rank(f travel.DailyForecast) []travel.RankedActivity {
	activities := make([]travel.RankedActivity, 0, len(kinds))
	for _, k := range kinds {
		activities = append(activities, Score(k, f))
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Score > activities[j].Score
	})

	return activities
}
