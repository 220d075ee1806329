package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wanderwise/travel-planner/internal/planner"
	"github.com/wanderwise/travel-planner/internal/travel"
)

const defaultSuggestionLimit = 10

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	planner Planner
	log     *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(p Planner, log *slog.Logger) *Handlers {
	return &Handlers{planner: p, log: log}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error struct {
		Code    travel.ErrorKind `json:"code"`
		Message string           `json:"message"`
	} `json:"error"`
}

// writeError maps a planner error onto its status class and stable
// code.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	te := travel.AsError(err)
	if te.Kind == travel.KindUpstream {
		h.log.Error("upstream failure", "err", err)
	}

	var body errorBody
	body.Error.Code = te.Kind
	body.Error.Message = te.Message
	writeJSON(w, te.Status(), body)
}

// intQueryParam parses an optional integer query parameter. Absent or
// empty values yield the fallback; non-numeric values are a validation
// error. Range clamping is the planner's job.
func intQueryParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, travel.NewValidationError(name + " must be an integer")
	}
	return v, nil
}

// SearchCities handles GET /api/v1/cities?query=...&limit=...
func (h *Handlers) SearchCities(w http.ResponseWriter, r *http.Request) {
	limit, err := intQueryParam(r, "limit", defaultSuggestionLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	cities, err := h.planner.SearchCities(r.Context(), r.URL.Query().Get("query"), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, cities)
}

// GetWeather handles GET /api/v1/cities/{cityID}/weather?days=...
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	days, err := intQueryParam(r, "days", planner.DefaultForecastDays)
	if err != nil {
		h.writeError(w, err)
		return
	}

	weather, err := h.planner.GetWeather(r.Context(), chi.URLParam(r, "cityID"), days)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, weather)
}

// GetActivityRankings handles GET /api/v1/cities/{cityID}/activities?days=...
func (h *Handlers) GetActivityRankings(w http.ResponseWriter, r *http.Request) {
	days, err := intQueryParam(r, "days", planner.DefaultForecastDays)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rankings, err := h.planner.GetActivityRankings(r.Context(), chi.URLParam(r, "cityID"), days)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rankings)
}

// GetTravelPlan handles GET /api/v1/cities/{cityID}/travel-plan?days=...
func (h *Handlers) GetTravelPlan(w http.ResponseWriter, r *http.Request) {
	days, err := intQueryParam(r, "days", planner.DefaultForecastDays)
	if err != nil {
		h.writeError(w, err)
		return
	}

	plan, err := h.planner.GetTravelPlan(r.Context(), chi.URLParam(r, "cityID"), days)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

// Health handles GET /api/v1/health. The planner holds no connections,
// so this is a plain liveness probe.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
