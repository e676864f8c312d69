// Package seed provides the demo data set the server starts with.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/activitymap/activitymap-server/internal/domain"
	"github.com/activitymap/activitymap-server/internal/store"
)

// Window is how far back demo registrations are spread.
const Window = 7 * 24 * time.Hour

type demoUser struct {
	name         string
	country      string
	handle       string
	posts        int
	interactions int
}

var demoUsers = []demoUser{
	{"John Smith", "US", "@johnsmith", 145, 195},
	{"Emma Johnson", "GB", "@emmaj", 132, 178},
	{"Michael Chen", "CN", "@michaelchen", 189, 201},
	{"Sophie Martin", "FR", "@sophiemartin", 98, 143},
	{"Liam Brown", "CA", "@liambrown", 167, 188},
	{"Olivia Davis", "AU", "@oliviadavis", 121, 156},
	{"Noah Wilson", "US", "@noahwilson", 154, 172},
	{"Ava Martinez", "ES", "@avamartinez", 109, 134},
	{"Ethan Anderson", "US", "@ethananderson", 143, 169},
	{"Isabella Garcia", "MX", "@isabellagarcia", 87, 112},
	{"Mason Lee", "KR", "@masonlee", 176, 193},
	{"Sophia Taylor", "GB", "@sophiataylor", 134, 151},
	{"Lucas Müller", "DE", "@lucasmuller", 156, 178},
	{"Mia Schmidt", "DE", "@miaschmidt", 142, 165},
	{"Alexander Petrov", "RU", "@alexpetrov", 98, 127},
	{"Charlotte Wang", "CN", "@charlottewang", 164, 187},
	{"Benjamin Silva", "BR", "@bensilva", 119, 141},
	{"Amelia Rossi", "IT", "@ameliarossi", 127, 149},
	{"James O'Brien", "IE", "@jamesobrien", 156, 173},
	{"Harper Nakamura", "JP", "@harpernakamura", 189, 214},
}

// Users returns the demo records. Each CreatedAt lies within Window before
// now; jitter must return values in [0, 1). IDs are left for the store.
func Users(now time.Time, jitter func() float64) []domain.User {
	users := make([]domain.User, len(demoUsers))
	for i, d := range demoUsers {
		age := time.Duration(jitter() * float64(Window))
		users[i] = domain.User{
			FullName:        d.name,
			Nationality:     d.country,
			TwitterUsername: d.handle,
			Posts:           d.posts,
			Interactions:    d.interactions,
			TotalScore:      domain.Score(d.posts, d.interactions),
			CreatedAt:       now.Add(-age),
		}
	}
	return users
}

// Load appends the demo records to st.
func Load(ctx context.Context, st *store.Store, now time.Time, jitter func() float64) (int, error) {
	users := Users(now, jitter)
	if err := st.Load(ctx, users); err != nil {
		return 0, fmt.Errorf("load demo users: %w", err)
	}
	return len(users), nil
}
