package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiosessions/config"
	"studiosessions/internal/adapters/google"
	"studiosessions/internal/domain"
	"studiosessions/internal/schedule"
	"studiosessions/internal/services"
)

// terminalDisplay renders monitor output as plain lines, one surface element
// per line. It stands in for the studio's wall display.
type terminalDisplay struct{}

func (terminalDisplay) ShowSession(clientName, timeRange string) {
	fmt.Printf("%s\n%s\n", clientName, timeRange)
}

func (terminalDisplay) ShowNoSession() {
	fmt.Println("No active session")
}

func (terminalDisplay) SetRemaining(text string) {
	if text != "" {
		fmt.Printf("\rTime remaining: %s", text)
	}
}

func (terminalDisplay) ShowAlert(text string) {
	fmt.Printf("\n*** %s ***\n", text)
}

func (terminalDisplay) ShowEnded(text string) {
	fmt.Printf("\n%s\n", text)
}

func (terminalDisplay) SetOffers(options []domain.ExtensionOption) {
	for _, opt := range options {
		fmt.Printf("Extend %d Minutes (%s)\n", opt.Minutes, opt.Price)
	}
}

func (terminalDisplay) ClearOffers() {}

// terminalChime names the cue; actual playback belongs to the surface.
type terminalChime struct{}

func (terminalChime) Play(cue schedule.Cue) {
	fmt.Printf("[chime: %s]\n", cue)
}

func main() {
	logger := config.NewLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	location := time.Local
	if cfg.Timezone != "" {
		location, err = time.LoadLocation(cfg.Timezone)
		if err != nil {
			logger.Error("invalid TIMEZONE", "timezone", cfg.Timezone, "err", err)
			os.Exit(1)
		}
	}

	// The kiosk holds credentials itself and talks to the calendar directly.
	client, err := google.NewHTTPClient(ctx, cfg)
	if err != nil {
		logger.Error("google client initialization failed", "err", err)
		os.Exit(1)
	}
	calendar := google.NewCalendarClient(client, cfg.CalendarID)

	resolver := schedule.NewResolver(location)
	sessions := services.NewSessionService(calendar, resolver, time.Now, cfg.RequestTimeout)

	monitor := schedule.NewMonitor(schedule.MonitorConfig{
		Sessions: sessions,
		Display:  terminalDisplay{},
		Chime:    terminalChime{},
		Logger:   logger,
	})
	if err := monitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("monitor stopped", "err", err)
		os.Exit(1)
	}
}
