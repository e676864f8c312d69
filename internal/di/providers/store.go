package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/do/v2"

	"github.com/activitymap/activitymap-server/internal/config"
	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/logger"
	"github.com/activitymap/activitymap-server/internal/seed"
	"github.com/activitymap/activitymap-server/internal/service"
	"github.com/activitymap/activitymap-server/internal/store"
)

// ProvideCountryTable provides the country reference table.
func ProvideCountryTable(i do.Injector) (*country.Table, error) {
	return country.Default(), nil
}

// ProvideActivitySimulator provides the randomly seeded activity source.
func ProvideActivitySimulator(i do.Injector) (*service.ActivitySimulator, error) {
	return service.NewActivitySimulator(nil), nil
}

// ProvideStore provides the in-memory user store, loaded with the demo data
// set unless disabled by configuration.
func ProvideStore(i do.Injector) (*store.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	activity := do.MustInvoke[*service.ActivitySimulator](i)

	st := store.New(log.Logger)

	if !cfg.Demo.Seed {
		log.Info("Demo data disabled by configuration")
		return st, nil
	}

	n, err := seed.Load(context.Background(), st, time.Now(), activity.Float64)
	if err != nil {
		return nil, fmt.Errorf("seed store: %w", err)
	}
	log.Info("Demo data loaded", "users", n)

	return st, nil
}
