// Package main registers simulated users against a running server, to
// populate the map and the leaderboards.
//
// Usage:
//
//	go run ./cmd/seed
//	go run ./cmd/seed -url http://localhost:8080 -count 100 -rate 20
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/logger"
	"github.com/activitymap/activitymap-server/internal/seed"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server")
	count := flag.Int("count", 20, "Number of users to register")
	rps := flag.Float64("rate", 10, "Maximum registrations per second (0 for unlimited)")
	timeout := flag.Duration("timeout", 10*time.Second, "Per-request timeout")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{Level: logger.ParseLevel(*logLevel)})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := seed.NewClient(*baseURL, &http.Client{Timeout: *timeout}, *rps, nil, country.Default())

	log.Info("Registering users", "url", *baseURL, "count", *count, "rate", *rps)

	users, err := client.Register(ctx, *count)
	for _, u := range users {
		log.Debug("Registered user",
			"user_id", u.ID,
			"nationality", u.Nationality,
			"total_score", u.TotalScore,
		)
	}
	if err != nil {
		log.Error("Seeding stopped", "error", err, "registered", len(users))
		stop()
		os.Exit(1)
	}

	log.Info("Seeding complete", "registered", len(users))
}
