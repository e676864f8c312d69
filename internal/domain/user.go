package domain

import (
	"strings"
	"time"
)

// HandlePrefix is the leading character every stored social handle carries.
const HandlePrefix = "@"

// User is a registered participant and their simulated activity.
// Records are immutable once stored.
type User struct {
	ID              string    `json:"id"`
	FullName        string    `json:"fullName"`
	Nationality     string    `json:"nationality"`
	TwitterUsername string    `json:"twitterUsername"`
	Posts           int       `json:"posts"`
	Interactions    int       `json:"interactions"`
	TotalScore      int       `json:"totalScore"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewUser holds the caller-supplied fields of a record about to be appended.
// ID, TotalScore and CreatedAt are assigned by the store.
type NewUser struct {
	FullName        string
	Nationality     string
	TwitterUsername string
	Posts           int
	Interactions    int
}

// Score returns the leaderboard score for the given activity counts.
func Score(posts, interactions int) int {
	return posts + interactions
}

// NormalizeHandle prefixes handle with "@" unless it already starts with one.
func NormalizeHandle(handle string) string {
	if strings.HasPrefix(handle, HandlePrefix) {
		return handle
	}
	return HandlePrefix + handle
}
