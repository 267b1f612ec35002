package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"studiosessions/internal/domain"
)

const calendarBaseURL = "https://www.googleapis.com/calendar/v3"

// Query window around now: one hour back, a day ahead, at most ten events.
const (
	queryLookback  = time.Hour
	queryLookahead = 24 * time.Hour
	queryMaxEvents = 10
)

type calendarClient struct {
	client     *http.Client
	baseURL    string
	calendarID string
}

// NewCalendarClient returns a CalendarClient that calls the Google Calendar
// v3 API for the given calendar.
func NewCalendarClient(client *http.Client, calendarID string) domain.CalendarClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &calendarClient{client: client, baseURL: calendarBaseURL, calendarID: calendarID}
}

// eventList is the subset of the events.list response the resolver consumes.
type eventList struct {
	Items []domain.CalendarEvent `json:"items"`
}

func (c *calendarClient) ListUpcomingEvents(ctx context.Context, now time.Time) ([]domain.CalendarEvent, error) {
	params := url.Values{}
	params.Set("timeMin", now.Add(-queryLookback).Format(time.RFC3339))
	params.Set("timeMax", now.Add(queryLookahead).Format(time.RFC3339))
	params.Set("showDeleted", "false")
	params.Set("singleEvents", "true")
	params.Set("maxResults", fmt.Sprint(queryMaxEvents))
	params.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(c.calendarID), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar api returned status: %d", resp.StatusCode)
	}

	var list eventList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode calendar response: %w", err)
	}
	return list.Items, nil
}

func (c *calendarClient) PatchEvent(ctx context.Context, eventID string, patch domain.EventPatch) error {
	body, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode event patch: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/%s", c.baseURL, url.PathEscape(c.calendarID), url.PathEscape(eventID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to patch calendar event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calendar api returned status: %d", resp.StatusCode)
	}
	return nil
}
