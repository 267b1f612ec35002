package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studiosessions/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarClient_ListUpcomingEvents(t *testing.T) {
	now := time.Date(2026, 6, 3, 10, 30, 0, 0, time.UTC)

	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/calendars/studio@group.calendar.google.com/events", r.URL.Path)
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_ = json.NewEncoder(w).Encode(eventList{Items: []domain.CalendarEvent{
			{ID: "ev-1", Summary: "Jane: session"},
		}})
	}))
	defer server.Close()

	client := &calendarClient{client: server.Client(), baseURL: server.URL, calendarID: "studio@group.calendar.google.com"}
	events, err := client.ListUpcomingEvents(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ev-1", events[0].ID)

	assert.Equal(t, now.Add(-time.Hour).Format(time.RFC3339), gotQuery["timeMin"])
	assert.Equal(t, now.Add(24*time.Hour).Format(time.RFC3339), gotQuery["timeMax"])
	assert.Equal(t, "true", gotQuery["singleEvents"])
	assert.Equal(t, "false", gotQuery["showDeleted"])
	assert.Equal(t, "10", gotQuery["maxResults"])
	assert.Equal(t, "startTime", gotQuery["orderBy"])
}

func TestCalendarClient_ListUpcomingEvents_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := &calendarClient{client: server.Client(), baseURL: server.URL, calendarID: "cal"}
	_, err := client.ListUpcomingEvents(context.Background(), time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestCalendarClient_PatchEvent(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/calendars/cal/events/ev-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := &calendarClient{client: server.Client(), baseURL: server.URL, calendarID: "cal"}
	err := client.PatchEvent(context.Background(), "ev-1", domain.EventPatch{
		Summary: "Jane: session [EXTENDED]",
		End: &domain.EventTime{
			DateTime: "2026-06-03T11:30:00Z",
			TimeZone: "UTC",
		},
		Description: "extended",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane: session [EXTENDED]", gotBody["summary"])
	assert.Equal(t, "extended", gotBody["description"])
	end, ok := gotBody["end"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "2026-06-03T11:30:00Z", end["dateTime"])
	assert.Equal(t, "UTC", end["timeZone"])
}

func TestCalendarClient_PatchEvent_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := &calendarClient{client: server.Client(), baseURL: server.URL, calendarID: "cal"}
	err := client.PatchEvent(context.Background(), "missing", domain.EventPatch{Summary: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
