// Package di provides dependency injection configuration for the activity map server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/activitymap/activitymap-server/internal/config"
	"github.com/activitymap/activitymap-server/internal/di/providers"
	"github.com/activitymap/activitymap-server/internal/logger"
	"github.com/activitymap/activitymap-server/internal/service"
	"github.com/activitymap/activitymap-server/internal/store"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Events
	do.Provide(injector, providers.ProvideSSEManager)

	// Data layer
	do.Provide(injector, providers.ProvideCountryTable)
	do.Provide(injector, providers.ProvideActivitySimulator)
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideStatsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services, which starts the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.SSEManagerHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*store.Store](injector); err != nil {
		return err
	}

	// Business services
	if _, err := do.Invoke[*service.UserService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.StatsService](injector); err != nil {
		return err
	}

	// Server
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
