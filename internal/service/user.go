package service

import (
	"context"
	"log/slog"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/domain"
	domainerrors "github.com/activitymap/activitymap-server/internal/errors"
	"github.com/activitymap/activitymap-server/internal/sse"
	"github.com/activitymap/activitymap-server/internal/store"
	"github.com/activitymap/activitymap-server/internal/validation"
)

// EventEmitter receives the events produced by registrations.
type EventEmitter interface {
	Emit(event sse.Event)
}

// UserService handles registration and the user leaderboards.
type UserService struct {
	store     *store.Store
	countries *country.Table
	activity  *ActivitySimulator
	validator *validation.Validator
	emitter   EventEmitter
	logger    *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store *store.Store, countries *country.Table, activity *ActivitySimulator, logger *slog.Logger) *UserService {
	return &UserService{
		store:     store,
		countries: countries,
		activity:  activity,
		validator: validation.New(),
		logger:    logger,
	}
}

// SetEventEmitter sets where registration events are published.
func (s *UserService) SetEventEmitter(emitter EventEmitter) {
	s.emitter = emitter
}

// RegisterRequest carries the fields a user submits when registering.
type RegisterRequest struct {
	FullName        string `json:"fullName" validate:"required"`
	Nationality     string `json:"nationality" validate:"required"`
	TwitterUsername string `json:"twitterUsername" validate:"required"`
}

// CountryUsers is the leaderboard of a single country.
type CountryUsers struct {
	Country domain.Country
	Users   []domain.User
}

// Register validates the request, assigns simulated activity and stores the
// new record. Nothing is stored when validation fails.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (domain.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return domain.User{}, err
	}

	posts, interactions := s.activity.Next()

	user, err := s.store.Append(ctx, domain.NewUser{
		FullName:        req.FullName,
		Nationality:     req.Nationality,
		TwitterUsername: domain.NormalizeHandle(req.TwitterUsername),
		Posts:           posts,
		Interactions:    interactions,
	})
	if err != nil {
		return domain.User{}, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to create user")
	}

	if _, known := s.countries.Lookup(user.Nationality); !known {
		s.logger.Warn("user registered with unmapped nationality; excluded from country stats",
			"user_id", user.ID,
			"nationality", user.Nationality,
		)
	}

	if s.emitter != nil {
		s.emitter.Emit(sse.NewUserRegisteredEvent(user))
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"nationality", user.Nationality,
		"total_score", user.TotalScore,
	)

	return user, nil
}

// ListUsers returns the global leaderboard.
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to fetch users")
	}
	return users, nil
}

// ListUsersByCountry returns the leaderboard of one country. Unknown codes
// are rejected before the store is consulted.
func (s *UserService) ListUsersByCountry(ctx context.Context, code string) (*CountryUsers, error) {
	c, ok := s.countries.Lookup(code)
	if !ok {
		return nil, domainerrors.NotFound("country not found")
	}

	users, err := s.store.ListByCountry(ctx, code)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to fetch country users")
	}

	return &CountryUsers{Country: c, Users: users}, nil
}

// CountUsers returns the number of registered users.
func (s *UserService) CountUsers(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to count users")
	}
	return n, nil
}
