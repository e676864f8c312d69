// Package store holds the process-wide sequence of user records.
//
// Nothing is persisted: a restart starts from an empty store (or the demo
// seed). The Store is the sole owner of the sequence and hands out copies.
package store

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/activitymap/activitymap-server/internal/domain"
	"github.com/activitymap/activitymap-server/internal/id"
)

// Store is an in-memory, insertion-ordered sequence of user records.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users []domain.User

	newID  func() (string, error)
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the NanoID based id generator.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces time.Now for creation timestamps.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New creates an empty store. logger may be nil.
func New(logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		newID:  id.NewUserID,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListAll returns every record ordered by total score, highest first.
// Records with equal scores keep their insertion order.
func (s *Store) ListAll(ctx context.Context) ([]domain.User, error) {
	users, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sortByScore(users)
	return users, nil
}

// ListByCountry returns the records whose nationality equals code exactly,
// in the same order as ListAll.
func (s *Store) ListByCountry(ctx context.Context, code string) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	users := make([]domain.User, 0)
	for _, u := range s.users {
		if u.Nationality == code {
			users = append(users, u)
		}
	}
	s.mu.RUnlock()

	sortByScore(users)
	return users, nil
}

// Append stores a new record and returns a copy of it. The store assigns the
// id, the creation time and the total score.
func (s *Store) Append(ctx context.Context, nu domain.NewUser) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}

	userID, err := s.newID()
	if err != nil {
		return domain.User{}, fmt.Errorf("assign user id: %w", err)
	}

	user := domain.User{
		ID:              userID,
		FullName:        nu.FullName,
		Nationality:     nu.Nationality,
		TwitterUsername: nu.TwitterUsername,
		Posts:           nu.Posts,
		Interactions:    nu.Interactions,
		TotalScore:      domain.Score(nu.Posts, nu.Interactions),
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Debug("user appended", "user_id", user.ID, "nationality", user.Nationality, "total_score", user.TotalScore)
	}

	return user, nil
}

// Load appends fully formed records, for example a demo data set. Missing ids
// and timestamps are filled in and TotalScore is always recomputed.
func (s *Store) Load(ctx context.Context, users []domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	prepared := make([]domain.User, len(users))
	for i, u := range users {
		if u.ID == "" {
			userID, err := s.newID()
			if err != nil {
				return fmt.Errorf("assign user id: %w", err)
			}
			u.ID = userID
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = s.now()
		}
		u.TotalScore = domain.Score(u.Posts, u.Interactions)
		prepared[i] = u
	}

	s.mu.Lock()
	s.users = append(s.users, prepared...)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("users loaded", "count", len(prepared))
	}
	return nil
}

// Snapshot returns a copy of all records in insertion order.
func (s *Store) Snapshot(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

// sortByScore orders users by total score descending. The sort is stable so
// ties keep insertion order.
func sortByScore(users []domain.User) {
	slices.SortStableFunc(users, func(a, b domain.User) int {
		return cmp.Compare(b.TotalScore, a.TotalScore)
	})
}
