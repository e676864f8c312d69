// Package id generates prefixed unique identifiers.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UserPrefix is the prefix of every user record id.
const UserPrefix = "user"

// Generate creates a prefixed NanoID, e.g. "user-V1StGXR8_Z5jdHi6B-myT".
//
// Returns an error if the system has insufficient entropy.
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// NewUserID generates a user record id.
func NewUserID() (string, error) {
	return Generate(UserPrefix)
}
