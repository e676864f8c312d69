package sse

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitymap/activitymap-server/internal/domain"
)

// readFrame reads one "event:/data:" frame from the stream.
func readFrame(t *testing.T, r *bufio.Reader) (event, data string) {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")

		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		case line == "" && event != "":
			return event, data
		}
	}
}

func TestHandler_StreamsRegistrations(t *testing.T) {
	m := startManager(t)
	srv := httptest.NewServer(NewHandler(m, nil))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL + "?country=GB")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	event, data := readFrame(t, reader)
	assert.Equal(t, "connected", event)
	assert.Contains(t, data, `"country":"GB"`)

	m.Emit(NewUserRegisteredEvent(domain.User{ID: "user-us", Nationality: "US"}))
	m.Emit(NewUserRegisteredEvent(domain.User{ID: "user-gb", Nationality: "GB"}))

	event, data = readFrame(t, reader)
	assert.Equal(t, string(EventUserRegistered), event)
	assert.Contains(t, data, `"id":"user-gb"`)
	assert.NotContains(t, data, "user-us")
}

func TestHandler_DisconnectRemovesClient(t *testing.T) {
	m := startManager(t)
	srv := httptest.NewServer(NewHandler(m, nil))
	t.Cleanup(srv.Close)

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)

	event, _ := readFrame(t, bufio.NewReader(resp.Body))
	require.Equal(t, "connected", event)
	assert.Equal(t, 1, m.ClientCount())

	resp.Body.Close()

	assert.Eventually(t, func() bool { return m.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
