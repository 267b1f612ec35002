package schedule

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"studiosessions/internal/domain"
)

// Cue names the audio file a display surface should play at the alert
// threshold. Playback itself is the surface's concern.
type Cue string

const (
	CueStandard Cue = "15_minute_warning"
	CueEvent    Cue = "30_minute_warning"
)

// Display receives countdown and session output. Implementations render to
// whatever surface the deployment uses; empty strings clear.
type Display interface {
	ShowSession(clientName, timeRange string)
	ShowNoSession()
	SetRemaining(text string)
	ShowAlert(text string)
	ShowEnded(text string)
	SetOffers(options []domain.ExtensionOption)
	ClearOffers()
}

// Chime plays a threshold cue.
type Chime interface {
	Play(cue Cue)
}

// CountdownConfig configures a countdown engine. Display is required; the
// rest default sensibly (1-second tick, 5-second refresh delay, wall clock).
type CountdownConfig struct {
	Display      Display
	Chime        Chime
	OnRefresh    func()
	Now          func() time.Time
	Tick         time.Duration
	RefreshDelay time.Duration
	Logger       *slog.Logger
}

// Countdown drives the remaining-time display for the active session: it
// renders each tick, fires the one-shot alert at the class-dependent
// threshold, and signals a refresh once the session ends. At most one timer
// is live at a time; starting a new one replaces any previous one.
type Countdown struct {
	display      Display
	chime        Chime
	onRefresh    func()
	now          func() time.Time
	tick         time.Duration
	refreshDelay time.Duration
	logger       *slog.Logger

	mu   sync.Mutex
	stop chan struct{}
}

// NewCountdown returns an idle countdown engine.
func NewCountdown(cfg CountdownConfig) *Countdown {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	if cfg.RefreshDelay <= 0 {
		cfg.RefreshDelay = 5 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Countdown{
		display:      cfg.Display,
		chime:        cfg.Chime,
		onRefresh:    cfg.OnRefresh,
		now:          cfg.Now,
		tick:         cfg.Tick,
		refreshDelay: cfg.RefreshDelay,
		logger:       cfg.Logger,
	}
}

// Start begins counting down the given session, first cancelling any timer
// from a prior session. All-day sessions are displayed but never counted
// down, so they stop the previous timer and leave the engine idle.
func (c *Countdown) Start(session *domain.Session, free domain.FreeBlock) {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	if session == nil || session.IsAllDay {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.stop = stop
	c.mu.Unlock()

	go c.run(session, free, stop)
}

// Stop cancels the live timer, if any.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

// tickState is the per-session countdown state: the alert threshold and the
// latch that guarantees the alert fires at most once.
type tickState struct {
	threshold  int
	alertFired bool
}

func (c *Countdown) run(session *domain.Session, free domain.FreeBlock, stop chan struct{}) {
	state := &tickState{threshold: AlertThreshold(session.IsEventType)}
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if c.step(session, free, state, c.now()) {
				c.scheduleRefresh(stop)
				return
			}
		}
	}
}

// step runs one countdown tick and reports whether the session has ended.
// The alert is guarded by a latch rather than an exact minute match, so a
// remaining-minutes value that lingers at the threshold across ticks (or
// jumps past it after a stall) still fires exactly once.
func (c *Countdown) step(session *domain.Session, free domain.FreeBlock, state *tickState, now time.Time) bool {
	remaining := session.EndTime.Sub(now)
	c.display.SetRemaining(FormatRemaining(remaining))

	minsRemaining := int(remaining / time.Minute)
	if !state.alertFired && remaining > 0 && minsRemaining <= state.threshold {
		state.alertFired = true
		c.display.ShowAlert(fmt.Sprintf("%d minutes remaining", state.threshold))
		if c.chime != nil {
			cue := CueStandard
			if session.IsEventType {
				cue = CueEvent
			}
			c.chime.Play(cue)
		}
		c.display.SetOffers(OffersFor(free.AvailableMinutes, session.IsEventType))
		c.logger.Info("countdown alert fired",
			"event_id", session.EventID,
			"threshold_minutes", state.threshold,
		)
	}

	if remaining <= 0 {
		c.display.ShowEnded("Session ended")
		c.display.ClearOffers()
		c.display.SetRemaining("")
		c.logger.Info("session ended", "event_id", session.EventID)
		return true
	}
	return false
}

// scheduleRefresh asks for a re-resolve after the fixed delay, unless the
// engine is stopped first. This is how the display self-heals onto the next
// session without a manual refresh.
func (c *Countdown) scheduleRefresh(stop chan struct{}) {
	if c.onRefresh == nil {
		return
	}
	timer := time.NewTimer(c.refreshDelay)
	defer timer.Stop()
	select {
	case <-stop:
	case <-timer.C:
		c.onRefresh()
	}
}
