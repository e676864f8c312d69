package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerHealthRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns server health status and the number of registered users",
		Tags:        []string{"Health"},
	}, s.handleHealthCheck)
}

// HealthResponse contains health check data in API responses.
type HealthResponse struct {
	Status    string `json:"status" doc:"Overall status: healthy or unhealthy"`
	UserCount int    `json:"userCount" doc:"Number of registered users"`
}

// HealthOutput wraps the health response for Huma.
type HealthOutput struct {
	Body HealthResponse
}

func (s *Server) handleHealthCheck(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	count, err := s.services.User.CountUsers(ctx)
	if err != nil {
		s.logger.Warn("Health check could not read the store", "error", err)
		return &HealthOutput{Body: HealthResponse{Status: "unhealthy"}}, nil
	}

	return &HealthOutput{
		Body: HealthResponse{
			Status:    "healthy",
			UserCount: count,
		},
	}, nil
}
