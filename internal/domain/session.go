package domain

import (
	"context"
	"time"
)

// Session is the snapshot derived from the active calendar event for one poll
// cycle. It is never mutated in place; an extension produces a fresh snapshot
// on the next resolve.
type Session struct {
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	ClientName  string    `json:"client_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Description string    `json:"description"`
	IsEventType bool      `json:"is_event_type"`
	IsAllDay    bool      `json:"is_all_day"`
}

// FreeBlock is the gap between the active session's end and the next booking.
type FreeBlock struct {
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	AvailableMinutes int       `json:"available_minutes"`
}

// ExtensionOption is one entry of a pricing catalog.
type ExtensionOption struct {
	Minutes int    `json:"minutes"`
	Price   string `json:"price"`
}

// StandardExtensionOptions is the catalog offered for regular slots.
var StandardExtensionOptions = []ExtensionOption{
	{Minutes: 15, Price: "$22"},
	{Minutes: 30, Price: "$43"},
	{Minutes: 60, Price: "$84.96"},
}

// EventExtensionOptions is the catalog offered for event-type bookings, which
// cost more per minute.
var EventExtensionOptions = []ExtensionOption{
	{Minutes: 30, Price: "$53.10"},
	{Minutes: 60, Price: "$106.20"},
}

// ExtensionRequest carries the raw facts of a confirmed extension. The backend
// recomputes every derived value (new end, title, description, labels) from
// these fields; clients are never trusted to send precomputed mutations.
type ExtensionRequest struct {
	EventID         string    `json:"eventId"`
	OriginalTitle   string    `json:"originalTitle"`
	SessionStart    time.Time `json:"sessionStart"`
	CurrentEnd      time.Time `json:"currentEnd"`
	ExtendMinutes   int       `json:"extendMinutes"`
	Description     string    `json:"description"`
	ClientName      string    `json:"clientName"`
	DurationLabel   string    `json:"durationLabel"`
	ExtensionAmount string    `json:"extensionAmount"`
}

// SessionService resolves the currently active session from the calendar.
type SessionService interface {
	// ActiveSession returns the active session, or nil when no booking
	// contains the current instant, together with the free block that
	// follows it.
	ActiveSession(ctx context.Context) (*Session, FreeBlock, error)
	// ListUpcoming exposes the raw calendar query for diagnostics.
	ListUpcoming(ctx context.Context) ([]CalendarEvent, error)
}

// ExtensionService performs the confirmed extension transaction: calendar
// patch plus spreadsheet audit row, both of which must succeed.
type ExtensionService interface {
	Extend(ctx context.Context, req ExtensionRequest) error
}
