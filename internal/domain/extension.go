package domain

import (
	"context"
	"time"
)

// ExtensionRecord is the durable audit trail of one extension attempt. The
// per-side flags make a partial failure between the calendar patch and the
// sheet append reconcilable by hand.
type ExtensionRecord struct {
	ID              string    `json:"id"`
	EventID         string    `json:"event_id"`
	ClientName      string    `json:"client_name"`
	Minutes         int       `json:"minutes"`
	Price           string    `json:"price"`
	OldEnd          time.Time `json:"old_end"`
	NewEnd          time.Time `json:"new_end"`
	CalendarPatched bool      `json:"calendar_patched"`
	SheetAppended   bool      `json:"sheet_appended"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExtensionRepository stores extension audit records.
type ExtensionRepository interface {
	Create(ctx context.Context, rec *ExtensionRecord) error
	// ListUnreconciled returns records whose sheet append did not complete,
	// oldest first.
	ListUnreconciled(ctx context.Context) ([]*ExtensionRecord, error)
}
