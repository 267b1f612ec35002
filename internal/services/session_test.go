package services

import (
	"context"
	"testing"
	"time"

	"studiosessions/internal/domain"
	"studiosessions/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_ActiveSession(t *testing.T) {
	start := time.Date(2026, 6, 3, 10, 0, 0, 0, time.UTC)
	now := start.Add(30 * time.Minute)

	cal := &fakeCalendar{events: []domain.CalendarEvent{
		{
			ID:      "ev-1",
			Summary: "Jane: session",
			Start:   domain.EventTime{DateTime: start.Format(time.RFC3339)},
			End:     domain.EventTime{DateTime: start.Add(time.Hour).Format(time.RFC3339)},
		},
	}}
	svc := NewSessionService(cal, schedule.NewResolver(time.UTC), func() time.Time { return now }, time.Second)

	session, free, err := svc.ActiveSession(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "ev-1", session.EventID)
	assert.Equal(t, "Jane", session.ClientName)
	assert.Equal(t, 240, free.AvailableMinutes)
}

func TestSessionService_ActiveSession_NoneActive(t *testing.T) {
	now := time.Date(2026, 6, 3, 9, 0, 0, 0, time.UTC)
	cal := &fakeCalendar{}
	svc := NewSessionService(cal, schedule.NewResolver(time.UTC), func() time.Time { return now }, time.Second)

	session, _, err := svc.ActiveSession(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionService_ActiveSession_NotReady(t *testing.T) {
	cal := &fakeCalendar{listErr: domain.ErrNotReady}
	svc := NewSessionService(cal, schedule.NewResolver(time.UTC), nil, time.Second)

	_, _, err := svc.ActiveSession(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestSessionService_ListUpcoming(t *testing.T) {
	cal := &fakeCalendar{events: []domain.CalendarEvent{{ID: "ev-1"}, {ID: "ev-2"}}}
	svc := NewSessionService(cal, schedule.NewResolver(time.UTC), nil, time.Second)

	events, err := svc.ListUpcoming(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
