package schedule

import (
	"strings"
	"time"

	"studiosessions/internal/domain"
)

// defaultFreeMinutes is assumed when no later event is visible in the query
// window. The window only reaches 24 hours ahead, so this is an optimistic
// heuristic, not a true "unbounded" signal.
const defaultFreeMinutes = 240

// Resolver derives the active session and the free block that follows it from
// a calendar query result. It holds no state between polls.
type Resolver struct {
	// location resolves whole-day event boundaries when the event carries no
	// timezone of its own.
	location *time.Location
}

// NewResolver returns a resolver that interprets whole-day dates in loc when
// the event does not name a timezone. A nil loc falls back to the local zone.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.Local
	}
	return &Resolver{location: loc}
}

// Resolve selects the first event whose resolved window contains now and
// returns its session snapshot plus the free block after it. It returns a nil
// session when no event matches. Events with malformed or missing boundaries
// never match and never fail the resolve.
func (r *Resolver) Resolve(events []domain.CalendarEvent, now time.Time) (*domain.Session, domain.FreeBlock) {
	for _, evt := range events {
		start, ok := r.resolveTime(evt.Start)
		if !ok {
			continue
		}
		end, ok := r.resolveTime(evt.End)
		if !ok {
			continue
		}
		if now.Before(start) || !now.Before(end) {
			continue
		}

		title := evt.Summary
		if title == "" {
			title = "Session"
		}
		isEventType := strings.Contains(strings.ToLower(evt.Summary), "event")
		session := &domain.Session{
			EventID:     evt.ID,
			Title:       title,
			ClientName:  ExtractClientName(evt.Summary, isEventType),
			StartTime:   start,
			EndTime:     end,
			Description: evt.Description,
			IsEventType: isEventType,
			IsAllDay:    evt.Start.Date != "",
		}
		return session, r.freeBlockAfter(events, end)
	}
	return nil, domain.FreeBlock{}
}

// ExtractClientName derives the display name from an event summary: the full
// trimmed summary for event-type bookings, otherwise the part before the
// first colon.
func ExtractClientName(summary string, isEventType bool) string {
	if summary == "" {
		return ""
	}
	if isEventType {
		return strings.TrimSpace(summary)
	}
	name, _, _ := strings.Cut(summary, ":")
	return strings.TrimSpace(name)
}

// freeBlockAfter finds the first event starting after end and measures the
// gap. With no such event in the window it assumes defaultFreeMinutes.
func (r *Resolver) freeBlockAfter(events []domain.CalendarEvent, end time.Time) domain.FreeBlock {
	for _, evt := range events {
		start, ok := r.resolveTime(evt.Start)
		if !ok {
			continue
		}
		if start.After(end) {
			return domain.FreeBlock{
				Start:            end,
				End:              start,
				AvailableMinutes: int(start.Sub(end) / time.Minute),
			}
		}
	}
	return domain.FreeBlock{
		Start:            end,
		End:              end.Add(defaultFreeMinutes * time.Minute),
		AvailableMinutes: defaultFreeMinutes,
	}
}

// resolveTime turns a wire boundary into an absolute instant. Timed events
// are already absolute. Whole-day dates are interpreted as midnight in the
// event's timezone, falling back to the resolver's zone, so the instant
// round-trips to the same calendar date regardless of the observer's zone.
func (r *Resolver) resolveTime(t domain.EventTime) (time.Time, bool) {
	if t.DateTime != "" {
		parsed, err := time.Parse(time.RFC3339, t.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	}
	if t.Date != "" {
		loc := r.location
		if t.TimeZone != "" {
			named, err := time.LoadLocation(t.TimeZone)
			if err != nil {
				return time.Time{}, false
			}
			loc = named
		}
		day, err := time.ParseInLocation("2006-01-02", t.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
		return day, true
	}
	return time.Time{}, false
}
