package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/activitymap/activitymap-server/internal/domain"
)

func (s *Server) registerStatsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getStats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Get country stats",
		Description: "Returns per-country user counts and score totals, most users first",
		Tags:        []string{"Stats"},
	}, s.handleGetStats)
}

// StatsResponse contains the per-country aggregates.
type StatsResponse struct {
	Stats    []domain.CountryStat `json:"stats" doc:"One entry per country with at least one user"`
	MaxCount int                  `json:"maxCount" doc:"Largest userCount among the entries, 0 when empty"`
}

// StatsOutput wraps the stats response for Huma.
type StatsOutput struct {
	Body StatsResponse
}

func (s *Server) handleGetStats(ctx context.Context, _ *struct{}) (*StatsOutput, error) {
	summary, err := s.services.Stats.Summary(ctx)
	if err != nil {
		return nil, s.apiError(err)
	}

	return &StatsOutput{
		Body: StatsResponse{
			Stats:    summary.Stats,
			MaxCount: summary.MaxCount,
		},
	}, nil
}
