package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"studiosessions/config"
	_ "studiosessions/docs"
	"studiosessions/internal/adapters/email"
	"studiosessions/internal/adapters/google"
	httpdelivery "studiosessions/internal/delivery/http"
	"studiosessions/internal/delivery/http/controllers"
	"studiosessions/internal/delivery/http/middleware"
	"studiosessions/internal/domain"
	"studiosessions/internal/repository/postgres"
	"studiosessions/internal/schedule"
	"studiosessions/internal/services"
)

// @title Studio Sessions API
// @version 1.0
// @description Live session countdown and paid extension service for a studio booking calendar.
// @BasePath /
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

	var auditRepo domain.ExtensionRepository
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		auditRepo = postgres.NewExtensionRepository(db)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// The Google bootstrap runs in the background so the server can accept
	// requests immediately; until it completes, calendar and sheet calls
	// fail fast with a not-ready error and the API answers 503.
	lazy := google.NewLazy()
	go func() {
		client, err := google.NewHTTPClient(ctx, cfg)
		if err != nil {
			logger.Error("google client initialization failed", "err", err)
			return
		}
		lazy.SetClients(
			google.NewCalendarClient(client, cfg.CalendarID),
			google.NewSheetsClient(client, cfg.SpreadsheetID, cfg.SheetName),
		)
		logger.Info("google clients initialized", "calendar_id", cfg.CalendarID)
	}()

	resolver := schedule.NewResolver(location)
	sessionSvc := services.NewSessionService(lazy, resolver, time.Now, cfg.RequestTimeout)
	extensionSvc := services.NewExtensionService(services.ExtensionServiceConfig{
		Calendar:  lazy,
		Sheets:    lazy,
		Audit:     auditRepo,
		Mailer:    mailer,
		ReceiptTo: cfg.EmailReceiptTo,
		Location:  location,
		Now:       time.Now,
		Timeout:   cfg.RequestTimeout,
		Logger:    logger,
	})

	controller := controllers.NewSessionController(logger, sessionSvc, extensionSvc, lazy.Ready)
	router := httpdelivery.NewRouter(controller)

	var handler http.Handler = router
	handler = middleware.LoggingMiddleware(logger, handler)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
