package schedule

import (
	"context"
	"log/slog"
	"time"

	"studiosessions/internal/domain"
)

// MonitorConfig configures a monitor. Sessions and Display are required.
type MonitorConfig struct {
	Sessions     domain.SessionService
	Display      Display
	Chime        Chime
	Now          func() time.Time
	Tick         time.Duration
	RefreshDelay time.Duration
	// PollInterval is how often the monitor re-resolves when nothing else
	// prompts a refresh, e.g. while no session is active.
	PollInterval time.Duration
	Logger       *slog.Logger
}

// Monitor glues the resolver output to the countdown engine for one display
// surface: it resolves the active session, renders it, runs the countdown,
// and re-resolves whenever the countdown signals a refresh.
type Monitor struct {
	sessions     domain.SessionService
	display      Display
	countdown    *Countdown
	refresh      chan struct{}
	pollInterval time.Duration
	logger       *slog.Logger
}

// NewMonitor wires a monitor and its countdown engine.
func NewMonitor(cfg MonitorConfig) *Monitor {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	m := &Monitor{
		sessions:     cfg.Sessions,
		display:      cfg.Display,
		refresh:      make(chan struct{}, 1),
		pollInterval: cfg.PollInterval,
		logger:       cfg.Logger,
	}
	m.countdown = NewCountdown(CountdownConfig{
		Display:      cfg.Display,
		Chime:        cfg.Chime,
		OnRefresh:    m.requestRefresh,
		Now:          cfg.Now,
		Tick:         cfg.Tick,
		RefreshDelay: cfg.RefreshDelay,
		Logger:       cfg.Logger,
	})
	return m
}

// requestRefresh queues a re-resolve; a refresh already pending is enough.
func (m *Monitor) requestRefresh() {
	select {
	case m.refresh <- struct{}{}:
	default:
	}
}

// Run resolves and renders until ctx is cancelled. Each pass tears down the
// previous countdown before starting the next, so at most one timer is ever
// live for this surface.
func (m *Monitor) Run(ctx context.Context) error {
	defer m.countdown.Stop()
	for {
		m.resolveOnce(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.refresh:
		case <-time.After(m.pollInterval):
		}
	}
}

func (m *Monitor) resolveOnce(ctx context.Context) {
	session, free, err := m.sessions.ActiveSession(ctx)
	if err != nil {
		m.logger.Error("resolve active session", "err", err)
		m.countdown.Stop()
		m.display.ShowNoSession()
		return
	}
	if session == nil {
		m.countdown.Stop()
		m.display.ShowNoSession()
		return
	}
	m.display.ShowSession(session.ClientName, TimeRangeLabel(session.StartTime, session.EndTime))
	m.countdown.Start(session, free)
}
