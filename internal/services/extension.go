package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studiosessions/internal/domain"
	"studiosessions/internal/schedule"
)

type extensionService struct {
	calendar       domain.CalendarClient
	sheets         domain.SheetAppender
	audit          domain.ExtensionRepository
	mailer         domain.Mailer
	receiptTo      string
	location       *time.Location
	now            func() time.Time
	contextTimeout time.Duration
	logger         *slog.Logger
}

// ExtensionServiceConfig holds the collaborators of the extension service.
// Audit and Mailer are optional; nil disables them.
type ExtensionServiceConfig struct {
	Calendar  domain.CalendarClient
	Sheets    domain.SheetAppender
	Audit     domain.ExtensionRepository
	Mailer    domain.Mailer
	ReceiptTo string
	Location  *time.Location
	Now       func() time.Time
	Timeout   time.Duration
	Logger    *slog.Logger
}

// NewExtensionService returns the ExtensionService that performs the
// calendar patch and spreadsheet append for a confirmed extension.
func NewExtensionService(cfg ExtensionServiceConfig) domain.ExtensionService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &extensionService{
		calendar:       cfg.Calendar,
		sheets:         cfg.Sheets,
		audit:          cfg.Audit,
		mailer:         cfg.Mailer,
		receiptTo:      cfg.ReceiptTo,
		location:       cfg.Location,
		now:            cfg.Now,
		contextTimeout: cfg.Timeout,
		logger:         cfg.Logger,
	}
}

// Extend recomputes every derived value from the request's raw facts, patches
// the calendar event, and appends the audit row. Both side effects must
// succeed for the extension to be reported successful. There is no
// compensating rollback: a sheet failure after a successful patch leaves the
// calendar authoritative, and the audit record carries enough to reconcile.
func (s *extensionService) Extend(ctx context.Context, req domain.ExtensionRequest) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if req.EventID == "" {
		return fmt.Errorf("%w: eventId is required", domain.ErrInvalidInput)
	}
	if req.ExtendMinutes <= 0 {
		return fmt.Errorf("%w: extendMinutes must be positive", domain.ErrInvalidInput)
	}
	if req.CurrentEnd.IsZero() {
		return fmt.Errorf("%w: currentEnd is required", domain.ErrInvalidInput)
	}

	title := req.OriginalTitle
	if title == "" {
		title = "Session"
	}
	newEnd := schedule.NewEnd(req.CurrentEnd, req.ExtendMinutes)
	updatedTitle := schedule.ExtendedTitle(title)
	note := schedule.ExtensionNote(s.now().In(s.location), req.ExtendMinutes)
	patch := domain.EventPatch{
		Summary: updatedTitle,
		End: &domain.EventTime{
			DateTime: newEnd.In(s.location).Format(time.RFC3339),
			TimeZone: s.location.String(),
		},
		Description: schedule.PrependNote(note, req.Description),
	}

	record := &domain.ExtensionRecord{
		EventID:    req.EventID,
		ClientName: req.ClientName,
		Minutes:    req.ExtendMinutes,
		Price:      req.ExtensionAmount,
		OldEnd:     req.CurrentEnd,
		NewEnd:     newEnd,
		CreatedAt:  s.now(),
	}

	if err := s.calendar.PatchEvent(ctx, req.EventID, patch); err != nil {
		s.logger.Error("extension calendar patch failed",
			"event_id", req.EventID,
			"client", req.ClientName,
			"minutes", req.ExtendMinutes,
			"err", err,
		)
		s.record(ctx, record)
		return fmt.Errorf("patch calendar event: %w", err)
	}
	record.CalendarPatched = true

	start := req.SessionStart.In(s.location)
	row := []any{
		req.ClientName,
		schedule.OriginalRangeLabel(start, req.CurrentEnd.In(s.location)),
		schedule.NewRangeLabel(start, newEnd.In(s.location)),
		schedule.DurationLabel(req.ExtendMinutes),
		req.ExtensionAmount,
	}
	if err := s.sheets.AppendRow(ctx, row); err != nil {
		// The calendar is already updated. Log the full row so the missing
		// audit entry can be reconciled by hand.
		s.logger.Error("extension sheet append failed after calendar patch",
			"event_id", req.EventID,
			"row", fmt.Sprint(row),
			"err", err,
		)
		s.record(ctx, record)
		return fmt.Errorf("append audit row: %w", err)
	}
	record.SheetAppended = true
	s.record(ctx, record)

	s.sendReceipt(req, updatedTitle, row)
	s.logger.Info("session extended",
		"event_id", req.EventID,
		"client", req.ClientName,
		"minutes", req.ExtendMinutes,
		"new_end", newEnd,
	)
	return nil
}

// record writes the audit trail best-effort; a storage failure never masks
// the outcome of the extension itself.
func (s *extensionService) record(ctx context.Context, rec *domain.ExtensionRecord) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Create(ctx, rec); err != nil {
		s.logger.Error("store extension record",
			"event_id", rec.EventID,
			"calendar_patched", rec.CalendarPatched,
			"sheet_appended", rec.SheetAppended,
			"err", err,
		)
	}
}

func (s *extensionService) sendReceipt(req domain.ExtensionRequest, updatedTitle string, row []any) {
	if s.mailer == nil || s.receiptTo == "" {
		return
	}
	data := domain.ReceiptEmailData{
		ClientName:    req.ClientName,
		Title:         schedule.CleanTitle(updatedTitle),
		DurationLabel: fmt.Sprint(row[3]),
		Amount:        req.ExtensionAmount,
		OriginalRange: fmt.Sprint(row[1]),
		NewRange:      fmt.Sprint(row[2]),
	}
	subject := fmt.Sprintf("Session extended: %s (%s)", data.ClientName, data.DurationLabel)
	text := fmt.Sprintf(
		"%s extended %s by %s for %s.\nOriginal: %s\nNew: %s\n",
		data.ClientName, data.Title, data.DurationLabel, data.Amount, data.OriginalRange, data.NewRange,
	)
	if err := s.mailer.Send(s.receiptTo, subject, "", text); err != nil {
		s.logger.Error("send extension receipt", "to", s.receiptTo, "err", err)
	}
}
