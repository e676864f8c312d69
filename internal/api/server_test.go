package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/domain"
	"github.com/activitymap/activitymap-server/internal/http/response"
	"github.com/activitymap/activitymap-server/internal/service"
	"github.com/activitymap/activitymap-server/internal/store"
)

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api   humatest.TestAPI
	store *store.Store
}

// setupTestServer creates a server over an empty in-memory store with
// deterministic ids, clock and activity.
func setupTestServer(t *testing.T) *testServer {
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
	activity := service.NewActivitySimulator(rand.New(rand.NewPCG(1, 2)))

	services := &Services{
		User:  service.NewUserService(st, countries, activity, logger),
		Stats: service.NewStatsService(st, countries, logger),
	}

	s := NewServer(services, Options{}, logger)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.API()),
		store:  st,
	}
}

// load stores records with exact scores, in order.
func (ts *testServer) load(t *testing.T, users ...domain.User) {
	t.Helper()
	require.NoError(t, ts.store.Load(context.Background(), users))
}

func (ts *testServer) count(t *testing.T) int {
	t.Helper()
	n, err := ts.store.Count(context.Background())
	require.NoError(t, err)
	return n
}

func user(id, nationality string, posts, interactions int) domain.User {
	return domain.User{
		ID:              id,
		FullName:        "User " + id,
		Nationality:     nationality,
		TwitterUsername: "@" + id,
		Posts:           posts,
		Interactions:    interactions,
	}
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), "body: %s", body)
	return v
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/nope")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	body := decode[response.ErrorBody](t, resp.Body.Bytes())
	assert.Equal(t, "route not found", body.Error)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Delete("/users")

	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
	body := decode[response.ErrorBody](t, resp.Body.Bytes())
	assert.NotEmpty(t, body.Error)
}

func TestServer_PanicRecovered(t *testing.T) {
	ts := setupTestServer(t)
	ts.router.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	resp := ts.api.Get("/boom")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	body := decode[response.ErrorBody](t, resp.Body.Bytes())
	assert.Equal(t, "internal server error", body.Error)
	assert.NotContains(t, resp.Body.String(), "kaboom")
}

func TestServer_CORS(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/users", "Origin: http://localhost:3000")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "*", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_CORSRestrictedOrigins(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	st := store.New(nil)
	countries := country.Default()
	services := &Services{
		User:  service.NewUserService(st, countries, service.NewActivitySimulator(nil), logger),
		Stats: service.NewStatsService(st, countries, logger),
	}
	s := NewServer(services, Options{AllowedOrigins: []string{"https://map.example.com"}}, logger)
	api := humatest.Wrap(t, s.API())

	allowed := api.Get("/users", "Origin: https://map.example.com")
	assert.Equal(t, "https://map.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := api.Get("/users", "Origin: https://evil.example.com")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_OpenAPI(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.api.Get("/openapi.json")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "/users/country/{code}")
	assert.Contains(t, resp.Body.String(), "/stats")
}
