package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/activitymap/activitymap-server/internal/country"
	"github.com/activitymap/activitymap-server/internal/domain"
	"github.com/activitymap/activitymap-server/internal/http/response"
	"github.com/activitymap/activitymap-server/internal/service"
)

var (
	firstNames = []string{"Ada", "Bruno", "Chiara", "Dmitri", "Elif", "Farah", "Gustavo", "Hana", "Ivan", "Jonas", "Keiko", "Lena", "Mateo", "Nia", "Omar", "Priya"}
	lastNames  = []string{"Almeida", "Berg", "Costa", "Dubois", "Eriksen", "Fischer", "Gomez", "Haddad", "Ito", "Jensen", "Kowalski", "Larsen", "Moreau", "Novak", "Okafor", "Park"}
)

// Client registers simulated users against a running server.
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	countries []domain.Country

	rng *rand.Rand
}

// NewClient creates a client for the server at baseURL. rps caps the request
// rate; zero or less means unlimited. Nationalities are drawn from countries.
func NewClient(baseURL string, httpClient *http.Client, rps float64, rng *rand.Rand, countries *country.Table) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		limiter:   rate.NewLimiter(limit, 1),
		countries: countries.All(),
		rng:       rng,
	}
}

// NextRequest builds a random registration.
func (c *Client) NextRequest() service.RegisterRequest {
	first := firstNames[c.rng.IntN(len(firstNames))]
	last := lastNames[c.rng.IntN(len(lastNames))]
	nat := c.countries[c.rng.IntN(len(c.countries))]

	return service.RegisterRequest{
		FullName:        first + " " + last,
		Nationality:     nat.Code,
		TwitterUsername: strings.ToLower(first + last),
	}
}

// Register posts n random registrations and returns the created records.
// It stops at the first failure.
func (c *Client) Register(ctx context.Context, n int) ([]domain.User, error) {
	users := make([]domain.User, 0, n)
	for i := 0; i < n; i++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return users, err
		}

		user, err := c.Post(ctx, c.NextRequest())
		if err != nil {
			return users, fmt.Errorf("registration %d: %w", i+1, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// Post sends one registration.
func (c *Client) Post(ctx context.Context, req service.RegisterRequest) (domain.User, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return domain.User{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(payload))
	if err != nil {
		return domain.User{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.User{}, fmt.Errorf("post user: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.User{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated {
		var errBody response.ErrorBody
		if json.Unmarshal(body, &errBody) == nil && errBody.Error != "" {
			return domain.User{}, fmt.Errorf("server returned %d: %s", resp.StatusCode, errBody.Error)
		}
		return domain.User{}, fmt.Errorf("server returned %d", resp.StatusCode)
	}

	var user domain.User
	if err := json.Unmarshal(body, &user); err != nil {
		return domain.User{}, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}
