package schedule

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"studiosessions/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// displayRecorder records engine output for assertions. It is safe for use
// from the engine goroutine.
type displayRecorder struct {
	mu            sync.Mutex
	remaining     []string
	alerts        []string
	ended         []string
	offers        [][]domain.ExtensionOption
	offersCleared int
	noSession     int
	sessions      []string
}

func (d *displayRecorder) ShowSession(clientName, timeRange string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sessions = append(d.sessions, clientName+" "+timeRange)
}

func (d *displayRecorder) ShowNoSession() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.noSession++
}

func (d *displayRecorder) SetRemaining(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.remaining = append(d.remaining, text)
}

func (d *displayRecorder) ShowAlert(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, text)
}

func (d *displayRecorder) ShowEnded(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ended = append(d.ended, text)
}

func (d *displayRecorder) SetOffers(options []domain.ExtensionOption) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.offers = append(d.offers, options)
}

func (d *displayRecorder) ClearOffers() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.offersCleared++
}

func (d *displayRecorder) alertCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.alerts)
}

type chimeRecorder struct {
	mu   sync.Mutex
	cues []Cue
}

func (c *chimeRecorder) Play(cue Cue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cues = append(c.cues, cue)
}

func standardSession(end time.Time) *domain.Session {
	return &domain.Session{
		EventID:    "ev-1",
		Title:      "Jane: session",
		ClientName: "Jane",
		StartTime:  end.Add(-time.Hour),
		EndTime:    end,
	}
}

func TestCountdown_StepRendersRemaining(t *testing.T) {
	display := &displayRecorder{}
	c := NewCountdown(CountdownConfig{Display: display, Logger: testLogger})
	end := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	session := standardSession(end)
	state := &tickState{threshold: AlertThreshold(false)}

	c.step(session, domain.FreeBlock{AvailableMinutes: 240}, state, end.Add(-90*time.Minute))
	c.step(session, domain.FreeBlock{AvailableMinutes: 240}, state, end.Add(-50*time.Minute))

	require.Len(t, display.remaining, 2)
	assert.Equal(t, "1:30:00", display.remaining[0])
	assert.Equal(t, "50:00", display.remaining[1])
	assert.Zero(t, display.alertCount())
}

func TestCountdown_AlertFiresOnceWhileLingeringAtThreshold(t *testing.T) {
	display := &displayRecorder{}
	chime := &chimeRecorder{}
	c := NewCountdown(CountdownConfig{Display: display, Chime: chime, Logger: testLogger})
	end := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	session := standardSession(end)
	free := domain.FreeBlock{AvailableMinutes: 45}
	state := &tickState{threshold: AlertThreshold(false)}

	// Several ticks inside the threshold minute: the remaining-minutes value
	// stays at 15 the whole time.
	for i := 0; i < 5; i++ {
		now := end.Add(-15*time.Minute - 30*time.Second).Add(time.Duration(i) * time.Second)
		c.step(session, free, state, now)
	}

	require.Equal(t, 1, display.alertCount())
	assert.Equal(t, "15 minutes remaining", display.alerts[0])
	assert.Equal(t, []Cue{CueStandard}, chime.cues)
	require.Len(t, display.offers, 1)
	var minutes []int
	for _, o := range display.offers[0] {
		minutes = append(minutes, o.Minutes)
	}
	assert.Equal(t, []int{15, 30}, minutes)
}

func TestCountdown_AlertLatchSurvivesDriftPastThreshold(t *testing.T) {
	display := &displayRecorder{}
	c := NewCountdown(CountdownConfig{Display: display, Logger: testLogger})
	end := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	session := standardSession(end)
	state := &tickState{threshold: AlertThreshold(false)}

	// A suspended tab can skip the exact threshold minute entirely; the
	// alert must still fire, and only once.
	c.step(session, domain.FreeBlock{AvailableMinutes: 240}, state, end.Add(-16*time.Minute))
	c.step(session, domain.FreeBlock{AvailableMinutes: 240}, state, end.Add(-4*time.Minute))
	c.step(session, domain.FreeBlock{AvailableMinutes: 240}, state, end.Add(-3*time.Minute))

	assert.Equal(t, 1, display.alertCount())
}

func TestCountdown_EventTypeThresholdAndCue(t *testing.T) {
	display := &displayRecorder{}
	chime := &chimeRecorder{}
	c := NewCountdown(CountdownConfig{Display: display, Chime: chime, Logger: testLogger})
	end := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	session := standardSession(end)
	session.IsEventType = true
	state := &tickState{threshold: AlertThreshold(true)}

	c.step(session, domain.FreeBlock{AvailableMinutes: 240}, state, end.Add(-29*time.Minute))

	require.Equal(t, 1, display.alertCount())
	assert.Equal(t, "30 minutes remaining", display.alerts[0])
	assert.Equal(t, []Cue{CueEvent}, chime.cues)
}

func TestCountdown_StepEndsSession(t *testing.T) {
	display := &displayRecorder{}
	c := NewCountdown(CountdownConfig{Display: display, Logger: testLogger})
	end := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	session := standardSession(end)
	state := &tickState{threshold: AlertThreshold(false)}

	ended := c.step(session, domain.FreeBlock{}, state, end.Add(time.Second))

	assert.True(t, ended)
	require.NotEmpty(t, display.ended)
	assert.Equal(t, "Session ended", display.ended[0])
	assert.Equal(t, 1, display.offersCleared)
	// The remaining display is cleared: the tick render and the final clear
	// are both empty.
	assert.Equal(t, []string{"", ""}, display.remaining)
}

func TestCountdown_EndSchedulesRefresh(t *testing.T) {
	display := &displayRecorder{}
	refreshed := make(chan struct{}, 1)
	ended := time.Date(2026, 6, 3, 11, 0, 0, 0, time.UTC)
	c := NewCountdown(CountdownConfig{
		Display:      display,
		OnRefresh:    func() { refreshed <- struct{}{} },
		Now:          func() time.Time { return ended.Add(time.Second) },
		Tick:         time.Millisecond,
		RefreshDelay: time.Millisecond,
		Logger:       testLogger,
	})

	c.Start(standardSession(ended), domain.FreeBlock{})
	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was never requested after session end")
	}
}

func TestCountdown_StartReplacesPreviousTimer(t *testing.T) {
	display := &displayRecorder{}
	end := time.Now().Add(time.Hour)
	c := NewCountdown(CountdownConfig{Display: display, Tick: time.Hour, Logger: testLogger})

	c.Start(standardSession(end), domain.FreeBlock{})
	c.mu.Lock()
	first := c.stop
	c.mu.Unlock()
	require.NotNil(t, first)

	c.Start(standardSession(end.Add(time.Hour)), domain.FreeBlock{})
	select {
	case <-first:
		// closed: the first timer was cancelled
	default:
		t.Fatal("starting a new countdown did not cancel the previous one")
	}
	c.Stop()

	c.mu.Lock()
	assert.Nil(t, c.stop)
	c.mu.Unlock()
}

func TestCountdown_AllDaySessionIsNotCountedDown(t *testing.T) {
	display := &displayRecorder{}
	c := NewCountdown(CountdownConfig{Display: display, Logger: testLogger})
	session := standardSession(time.Now().Add(time.Hour))
	session.IsAllDay = true

	c.Start(session, domain.FreeBlock{})

	c.mu.Lock()
	assert.Nil(t, c.stop)
	c.mu.Unlock()
	assert.Zero(t, display.alertCount())
}
