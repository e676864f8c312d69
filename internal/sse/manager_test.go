package sse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitymap/activitymap-server/internal/domain"
)

func startManager(t *testing.T, opts ...Option) *Manager {
	t.Helper()

	m := NewManager(nil, opts...)
	ctx, cancel := context.WithCancel(context.Background())
	go m.Start(ctx)

	t.Cleanup(func() {
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), time.Second)
		defer done()
		_ = m.Shutdown(shutdownCtx)
	})
	return m
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case ev, ok := <-c.EventChan:
		require.True(t, ok, "client channel closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestManager_BroadcastsRegistrations(t *testing.T) {
	m := startManager(t)

	a, err := m.Connect("")
	require.NoError(t, err)
	b, err := m.Connect("")
	require.NoError(t, err)
	assert.Equal(t, 2, m.ClientCount())

	user := domain.User{ID: "user-1", Nationality: "FR", TotalScore: 200}
	m.Emit(NewUserRegisteredEvent(user))

	for _, c := range []*Client{a, b} {
		ev := receive(t, c)
		assert.Equal(t, EventUserRegistered, ev.Type)
		assert.Equal(t, user, ev.Data)
	}
}

func TestManager_CountryFilter(t *testing.T) {
	m := startManager(t)

	fr, err := m.Connect("FR")
	require.NoError(t, err)
	de, err := m.Connect("DE")
	require.NoError(t, err)

	m.Emit(NewUserRegisteredEvent(domain.User{ID: "1", Nationality: "DE"}))
	m.Emit(NewUserRegisteredEvent(domain.User{ID: "2", Nationality: "FR"}))

	assert.Equal(t, "2", receive(t, fr).Data.(domain.User).ID)
	assert.Equal(t, "1", receive(t, de).Data.(domain.User).ID)

	select {
	case ev := <-fr.EventChan:
		t.Fatalf("unexpected event for FR client: %+v", ev)
	default:
	}
}

func TestManager_Heartbeat(t *testing.T) {
	m := startManager(t, WithHeartbeatInterval(10*time.Millisecond))

	c, err := m.Connect("JP")
	require.NoError(t, err)

	ev := receive(t, c)
	assert.Equal(t, EventHeartbeat, ev.Type)
}

func TestManager_Disconnect(t *testing.T) {
	m := startManager(t)

	c, err := m.Connect("")
	require.NoError(t, err)

	m.Disconnect(c.ID)
	m.Disconnect(c.ID)

	assert.Zero(t, m.ClientCount())
	_, ok := <-c.EventChan
	assert.False(t, ok)
}

func TestManager_ShutdownClosesClients(t *testing.T) {
	m := NewManager(nil)
	go m.Start(context.Background())

	c, err := m.Connect("")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Shutdown(ctx))

	<-c.Done
	assert.Zero(t, m.ClientCount())

	// Emitting after shutdown is a no-op.
	m.Emit(NewHeartbeatEvent())
	require.NoError(t, m.Shutdown(ctx))
}
