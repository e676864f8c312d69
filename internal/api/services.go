package api

import "github.com/activitymap/activitymap-server/internal/service"

// Services groups the business logic services used by the API server.
type Services struct {
	User  *service.UserService
	Stats *service.StatsService
}
