package google

import (
	"context"
	"sync"
	"time"

	"studiosessions/internal/domain"
)

// Lazy stands in for the calendar and sheets clients while the service
// account bootstrap runs in the background. Until SetClients is called every
// operation fails fast with domain.ErrNotReady and no upstream call is
// attempted.
type Lazy struct {
	mu       sync.RWMutex
	calendar domain.CalendarClient
	sheets   domain.SheetAppender
}

// NewLazy returns an uninitialized client holder.
func NewLazy() *Lazy {
	return &Lazy{}
}

// SetClients installs the initialized upstream clients.
func (l *Lazy) SetClients(calendar domain.CalendarClient, sheets domain.SheetAppender) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calendar = calendar
	l.sheets = sheets
}

// Ready reports whether the upstream clients are installed.
func (l *Lazy) Ready() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.calendar != nil && l.sheets != nil
}

func (l *Lazy) ListUpcomingEvents(ctx context.Context, now time.Time) ([]domain.CalendarEvent, error) {
	l.mu.RLock()
	calendar := l.calendar
	l.mu.RUnlock()
	if calendar == nil {
		return nil, domain.ErrNotReady
	}
	return calendar.ListUpcomingEvents(ctx, now)
}

func (l *Lazy) PatchEvent(ctx context.Context, eventID string, patch domain.EventPatch) error {
	l.mu.RLock()
	calendar := l.calendar
	l.mu.RUnlock()
	if calendar == nil {
		return domain.ErrNotReady
	}
	return calendar.PatchEvent(ctx, eventID, patch)
}

func (l *Lazy) AppendRow(ctx context.Context, row []any) error {
	l.mu.RLock()
	sheets := l.sheets
	l.mu.RUnlock()
	if sheets == nil {
		return domain.ErrNotReady
	}
	return sheets.AppendRow(ctx, row)
}
