package providers

import (
	"github.com/samber/do/v2"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/logger"
	"github.com/activitymap/activitymap-server/internal/service"
	"github.com/activitymap/activitymap-server/internal/store"
)

// ProvideUserService provides the registration and leaderboard service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	st := do.MustInvoke[*store.Store](i)
	countries := do.MustInvoke[*country.Table](i)
	activity := do.MustInvoke[*service.ActivitySimulator](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	users := service.NewUserService(st, countries, activity, log.Logger)
	users.SetEventEmitter(sseHandle.Manager)

	return users, nil
}

// ProvideStatsService provides the country statistics service.
func ProvideStatsService(i do.Injector) (*service.StatsService, error) {
	st := do.MustInvoke[*store.Store](i)
	countries := do.MustInvoke[*country.Table](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewStatsService(st, countries, log.Logger), nil
}
