package services

import (
	"context"
	"fmt"
	"time"

	"studiosessions/internal/domain"
	"studiosessions/internal/schedule"
)

type sessionService struct {
	calendar       domain.CalendarClient
	resolver       *schedule.Resolver
	now            func() time.Time
	contextTimeout time.Duration
}

// NewSessionService returns a SessionService that queries the calendar and
// resolves the active session with the given resolver. A nil now falls back
// to the wall clock.
func NewSessionService(calendar domain.CalendarClient, resolver *schedule.Resolver, now func() time.Time, timeout time.Duration) domain.SessionService {
	if now == nil {
		now = time.Now
	}
	return &sessionService{
		calendar:       calendar,
		resolver:       resolver,
		now:            now,
		contextTimeout: timeout,
	}
}

func (s *sessionService) ActiveSession(ctx context.Context) (*domain.Session, domain.FreeBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now()
	events, err := s.calendar.ListUpcomingEvents(ctx, now)
	if err != nil {
		return nil, domain.FreeBlock{}, fmt.Errorf("list calendar events: %w", err)
	}
	session, free := s.resolver.Resolve(events, now)
	return session, free, nil
}

func (s *sessionService) ListUpcoming(ctx context.Context) ([]domain.CalendarEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.calendar.ListUpcomingEvents(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	return events, nil
}
