package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/domain"
	domainerrors "github.com/activitymap/activitymap-server/internal/errors"
	"github.com/activitymap/activitymap-server/internal/store"
)

// StatsService derives per-country statistics from the store. Nothing is
// cached: every call recomputes from a fresh snapshot.
type StatsService struct {
	store     *store.Store
	countries *country.Table
	logger    *slog.Logger
}

// NewStatsService creates a new stats service.
func NewStatsService(store *store.Store, countries *country.Table, logger *slog.Logger) *StatsService {
	return &StatsService{
		store:     store,
		countries: countries,
		logger:    logger,
	}
}

// StatsSummary is the country breakdown plus the largest user count, which
// the map uses to scale its colors.
type StatsSummary struct {
	Stats    []domain.CountryStat
	MaxCount int
}

// CountryStats returns one entry per country that has at least one user,
// ordered by user count descending.
func (s *StatsService) CountryStats(ctx context.Context) ([]domain.CountryStat, error) {
	users, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.aggregate(users), nil
}

// MaxCountryUserCount returns the largest UserCount across CountryStats, or 0
// when there are none.
func (s *StatsService) MaxCountryUserCount(ctx context.Context) (int, error) {
	stats, err := s.CountryStats(ctx)
	if err != nil {
		return 0, err
	}
	return MaxUserCount(stats), nil
}

// Summary computes the stats and the max count from a single snapshot.
func (s *StatsService) Summary(ctx context.Context) (*StatsSummary, error) {
	stats, err := s.CountryStats(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsSummary{Stats: stats, MaxCount: MaxUserCount(stats)}, nil
}

func (s *StatsService) snapshot(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to fetch stats")
	}
	return users, nil
}

func (s *StatsService) aggregate(users []domain.User) []domain.CountryStat {
	stats, skipped := AggregateByCountry(users, s.countries)
	if skipped > 0 {
		s.logger.Debug("users with unmapped nationality left out of stats", "count", skipped)
	}
	return stats
}

// AggregateByCountry groups users by nationality in a single pass. Users whose
// code is not in the table are skipped and counted in the second return value.
// The result is sorted by UserCount descending; ties keep the order in which
// each country was first encountered.
func AggregateByCountry(users []domain.User, countries *country.Table) ([]domain.CountryStat, int) {
	stats := make([]domain.CountryStat, 0)
	index := make(map[string]int)
	skipped := 0

	for _, u := range users {
		if i, ok := index[u.Nationality]; ok {
			stats[i].UserCount++
			stats[i].TotalScore += u.TotalScore
			continue
		}

		c, ok := countries.Lookup(u.Nationality)
		if !ok {
			skipped++
			continue
		}

		index[u.Nationality] = len(stats)
		stats = append(stats, domain.CountryStat{
			Code:       c.Code,
			Name:       c.Name,
			Flag:       c.Flag,
			UserCount:  1,
			TotalScore: u.TotalScore,
		})
	}

	slices.SortStableFunc(stats, func(a, b domain.CountryStat) int {
		return cmp.Compare(b.UserCount, a.UserCount)
	})

	return stats, skipped
}

// MaxUserCount returns the largest UserCount in stats, or 0 for none.
func MaxUserCount(stats []domain.CountryStat) int {
	maxCount := 0
	for _, st := range stats {
		maxCount = max(maxCount, st.UserCount)
	}
	return maxCount
}
