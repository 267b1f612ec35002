package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"studiosessions/internal/delivery/http/helpers"
	"studiosessions/internal/domain"
)

// SessionPayload is the current-session object in the active-session response.
type SessionPayload struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	ClientName  string    `json:"clientName"`
	IsEventType bool      `json:"isEventType"`
	IsAllDay    bool      `json:"isAllDay"`
}

// FreeBlockPayload is the gap after the current session.
type FreeBlockPayload struct {
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	AvailableMinutes int       `json:"availableMinutes"`
}

// ActiveSessionResponse is the body of GET /active-session. CurrentSession is
// null when no booking contains the current instant.
type ActiveSessionResponse struct {
	CurrentSession *SessionPayload   `json:"currentSession"`
	NextFreeBlock  *FreeBlockPayload `json:"nextFreeBlock"`
}

// ExtendSessionRequest is the body of POST /extend-session. It carries only
// raw facts; the server recomputes every derived value.
type ExtendSessionRequest struct {
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

// Validate implements helpers.Validator.
func (r ExtendSessionRequest) Validate() []string {
	var errs []string
	if r.EventID == "" {
		errs = append(errs, "eventId is required")
	}
	if r.ExtendMinutes <= 0 {
		errs = append(errs, "extendMinutes must be positive")
	}
	if r.CurrentEnd.IsZero() {
		errs = append(errs, "currentEnd is required")
	}
	return errs
}

// ExtendSessionResponse is the body of a successful POST /extend-session.
type ExtendSessionResponse struct {
	Success bool `json:"success"`
}

// TestCalendarResponse is the body of GET /test-calendar.
type TestCalendarResponse struct {
	Events []domain.CalendarEvent `json:"events"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Ready  bool   `json:"ready"`
}

type SessionController struct {
	Logger     *slog.Logger
	Sessions   domain.SessionService
	Extensions domain.ExtensionService
	Ready      func() bool
}

func NewSessionController(logger *slog.Logger, sessions domain.SessionService, extensions domain.ExtensionService, ready func() bool) *SessionController {
	return &SessionController{
		Logger:     logger,
		Sessions:   sessions,
		Extensions: extensions,
		Ready:      ready,
	}
}

// ActiveSession godoc
// @Summary Get the currently active session
// @Description Returns the booking whose time window contains the current instant, or null, plus the free block before the next booking.
// @Tags sessions
// @Produce json
// @Success 200 {object} controllers.ActiveSessionResponse
// @Failure 503 {object} helpers.ErrorResponse "calendar client not initialized"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /active-session [get]
func (c *SessionController) ActiveSession(w http.ResponseWriter, r *http.Request) {
	session, free, err := c.Sessions.ActiveSession(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if session == nil {
		helpers.WriteJSON(w, http.StatusOK, ActiveSessionResponse{})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ActiveSessionResponse{
		CurrentSession: &SessionPayload{
			ID:          session.EventID,
			Summary:     session.Title,
			Description: session.Description,
			Start:       session.StartTime,
			End:         session.EndTime,
			ClientName:  session.ClientName,
			IsEventType: session.IsEventType,
			IsAllDay:    session.IsAllDay,
		},
		NextFreeBlock: &FreeBlockPayload{
			Start:            free.Start,
			End:              free.End,
			AvailableMinutes: free.AvailableMinutes,
		},
	})
}

// ExtendSession godoc
// @Summary Extend the current session
// @Description Patches the calendar event's end, title and description and appends an audit row to the spreadsheet. Derived values are recomputed server-side from the raw facts in the body.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body controllers.ExtendSessionRequest true "Extension facts"
// @Success 200 {object} controllers.ExtendSessionResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 503 {object} helpers.ErrorResponse "clients not initialized"
// @Failure 500 {object} helpers.ErrorResponse
// @Router /extend-session [post]
func (c *SessionController) ExtendSession(w http.ResponseWriter, r *http.Request) {
	var req ExtendSessionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Extensions.Extend(r.Context(), domain.ExtensionRequest{
		EventID:         req.EventID,
		OriginalTitle:   req.OriginalTitle,
		SessionStart:    req.SessionStart,
		CurrentEnd:      req.CurrentEnd,
		ExtendMinutes:   req.ExtendMinutes,
		Description:     req.Description,
		ClientName:      req.ClientName,
		DurationLabel:   req.DurationLabel,
		ExtensionAmount: req.ExtensionAmount,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ExtendSessionResponse{Success: true})
}

// TestCalendar godoc
// @Summary List upcoming calendar events
// @Description Diagnostic passthrough of the raw calendar query.
// @Tags diagnostics
// @Produce json
// @Success 200 {object} controllers.TestCalendarResponse
// @Failure 503 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /test-calendar [get]
func (c *SessionController) TestCalendar(w http.ResponseWriter, r *http.Request) {
	events, err := c.Sessions.ListUpcoming(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	helpers.WriteJSON(w, http.StatusOK, TestCalendarResponse{Events: events})
}

// Healthz godoc
// @Summary Liveness and readiness
// @Tags diagnostics
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Router /healthz [get]
func (c *SessionController) Healthz(w http.ResponseWriter, r *http.Request) {
	ready := c.Ready != nil && c.Ready()
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Ready: ready})
}

func (c *SessionController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotReady) {
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, domain.ErrNotReady.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
}
