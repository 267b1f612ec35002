package domain

import (
	"context"
	"time"
)

// EventTime is the calendar wire representation of an event boundary. Timed
// events carry DateTime (RFC 3339); whole-day events carry Date (YYYY-MM-DD).
// TimeZone is an optional IANA zone name overriding the calendar default.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// CalendarEvent is a calendar item as returned by the events query. The core
// treats it as read-only; malformed start/end fields make the event unusable
// for active-session matching but never cause a failure.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary,omitempty"`
	Description string    `json:"description,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// EventPatch is a partial update to a calendar event. Zero-valued fields are
// omitted from the patch and left untouched by the calendar.
type EventPatch struct {
	Summary     string     `json:"summary,omitempty"`
	End         *EventTime `json:"end,omitempty"`
	Description string     `json:"description,omitempty"`
}

// CalendarClient defines the calendar operations the core consumes.
type CalendarClient interface {
	// ListUpcomingEvents returns events in the window [now - 1h, now + 24h],
	// recurrences expanded, soft-deleted excluded, ordered by start time,
	// capped at 10 results.
	ListUpcomingEvents(ctx context.Context, now time.Time) ([]CalendarEvent, error)
	// PatchEvent applies a partial update to the event with the given id.
	PatchEvent(ctx context.Context, eventID string, patch EventPatch) error
}

// SheetAppender appends one row to the audit spreadsheet with user-entered
// value semantics, so the sheet coerces cell types itself.
type SheetAppender interface {
	AppendRow(ctx context.Context, row []any) error
}
