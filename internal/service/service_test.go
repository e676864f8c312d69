package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/domain"
	"github.com/activitymap/activitymap-server/internal/store"
)

const (
	testSeed1 = 42
	testSeed2 = 7
)

var testTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	store *store.Store
	users *UserService
	stats *StatsService
}

// setupTestServices wires both services over an empty store with sequential
// ids, a fixed clock and a seeded random source.
func setupTestServices(t *testing.T) *testDeps {
	t.Helper()

	next := 0
	st := store.New(nil,
		store.WithIDGenerator(func() (string, error) {
			next++
			return fmt.Sprintf("user-%d", next), nil
		}),
		store.WithClock(func() time.Time { return testTime }),
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	countries := country.Default()
	activity := NewActivitySimulator(rand.New(rand.NewPCG(testSeed1, testSeed2)))

	return &testDeps{
		store: st,
		users: NewUserService(st, countries, activity, logger),
		stats: NewStatsService(st, countries, logger),
	}
}

// loadUser stores a record with an exact score, bypassing simulated activity.
func loadUser(t *testing.T, st *store.Store, id, nationality string, posts, interactions int) {
	t.Helper()
	err := st.Load(context.Background(), []domain.User{{
		ID:              id,
		FullName:        "User " + id,
		Nationality:     nationality,
		TwitterUsername: "@" + id,
		Posts:           posts,
		Interactions:    interactions,
	}})
	require.NoError(t, err)
}
