// Package sse implements Server-Sent Events for live registration updates.
package sse

import (
	"time"

	"github.com/activitymap/activitymap-server/internal/domain"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventUserRegistered is sent for every stored registration.
	EventUserRegistered EventType = "user.registered"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`

	// Country restricts delivery to clients following this nationality.
	// Empty means every client.
	Country string `json:"-"`
}

// HeartbeatEventData is the data payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"serverTime"`
}

// NewUserRegisteredEvent creates a user.registered event carrying the stored record.
func NewUserRegisteredEvent(user domain.User) Event {
	return Event{
		Type:      EventUserRegistered,
		Data:      user,
		Country:   user.Nationality,
		Timestamp: time.Now(),
	}
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	now := time.Now()
	return Event{
		Type:      EventHeartbeat,
		Data:      HeartbeatEventData{ServerTime: now},
		Timestamp: now,
	}
}
