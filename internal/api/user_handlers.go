package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/activitymap/activitymap-server/internal/domain"
	"github.com/activitymap/activitymap-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listUsers",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Returns every registered user ordered by total score, highest first",
		Tags:        []string{"Users"},
	}, s.handleListUsers)

	huma.Register(s.api, huma.Operation{
		OperationID: "listCountryUsers",
		Method:      http.MethodGet,
		Path:        "/users/country/{code}",
		Summary:     "List users of a country",
		Description: "Returns the leaderboard of one nationality",
		Tags:        []string{"Users"},
	}, s.handleListCountryUsers)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createUser",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Register user",
		Description:   "Registers a user and assigns simulated posts and interactions",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateUser)
}

// === DTOs ===

// ListUsersOutput wraps the global leaderboard for Huma.
type ListUsersOutput struct {
	Body []domain.User
}

// ListCountryUsersInput contains parameters for a country leaderboard.
type ListCountryUsersInput struct {
	Code string `path:"code" doc:"ISO 3166-1 alpha-2 country code" example:"US"`
}

// CountryUsersResponse is the leaderboard of one country.
type CountryUsersResponse struct {
	Country domain.Country `json:"country" doc:"Country entry"`
	Users   []domain.User  `json:"users" doc:"Users of this nationality, highest score first"`
	Count   int            `json:"count" doc:"Number of users"`
}

// ListCountryUsersOutput wraps the country leaderboard for Huma.
type ListCountryUsersOutput struct {
	Body CountryUsersResponse
}

// CreateUserRequest is the registration body. Field presence is checked by
// the user service so every missing field is reported at once.
type CreateUserRequest struct {
	_               struct{} `json:"-" additionalProperties:"true"`
	FullName        string   `json:"fullName,omitempty" doc:"Full name" example:"Ada Lovelace"`
	Nationality     string   `json:"nationality,omitempty" doc:"ISO 3166-1 alpha-2 country code" example:"GB"`
	TwitterUsername string   `json:"twitterUsername,omitempty" doc:"Social handle, with or without a leading @" example:"@ada"`
}

// CreateUserInput wraps the registration body for Huma.
type CreateUserInput struct {
	Body CreateUserRequest
}

// CreateUserOutput wraps the stored record for Huma.
type CreateUserOutput struct {
	Body domain.User
}

// === Handlers ===

func (s *Server) handleListUsers(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	users, err := s.services.User.ListUsers(ctx)
	if err != nil {
		return nil, s.apiError(err)
	}
	return &ListUsersOutput{Body: users}, nil
}

func (s *Server) handleListCountryUsers(ctx context.Context, input *ListCountryUsersInput) (*ListCountryUsersOutput, error) {
	result, err := s.services.User.ListUsersByCountry(ctx, input.Code)
	if err != nil {
		return nil, s.apiError(err)
	}

	return &ListCountryUsersOutput{
		Body: CountryUsersResponse{
			Country: result.Country,
			Users:   result.Users,
			Count:   len(result.Users),
		},
	}, nil
}

func (s *Server) handleCreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	user, err := s.services.User.Register(ctx, service.RegisterRequest{
		FullName:        input.Body.FullName,
		Nationality:     input.Body.Nationality,
		TwitterUsername: input.Body.TwitterUsername,
	})
	if err != nil {
		return nil, s.apiError(err)
	}
	return &CreateUserOutput{Body: user}, nil
}
