package postgres

import (
	"context"
	"database/sql"

	"studiosessions/internal/domain"
)

type ExtensionRepository struct {
	DB *sql.DB
}

func NewExtensionRepository(db *sql.DB) domain.ExtensionRepository {
	return &ExtensionRepository{
		DB: db,
	}
}

func (r *ExtensionRepository) Create(ctx context.Context, rec *domain.ExtensionRecord) error {
	query := `
		INSERT INTO session_extensions (event_id, client_name, minutes, price, old_end, new_end, calendar_patched, sheet_appended, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		rec.EventID, rec.ClientName, rec.Minutes, rec.Price,
		rec.OldEnd, rec.NewEnd, rec.CalendarPatched, rec.SheetAppended, rec.CreatedAt,
	).Scan(&rec.ID)
}

func (r *ExtensionRepository) ListUnreconciled(ctx context.Context) ([]*domain.ExtensionRecord, error) {
	query := `
		SELECT id, event_id, client_name, minutes, price, old_end, new_end, calendar_patched, sheet_appended, created_at
		FROM session_extensions
		WHERE sheet_appended = false
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.ExtensionRecord
	for rows.Next() {
		rec := &domain.ExtensionRecord{}
		if err := rows.Scan(
			&rec.ID, &rec.EventID, &rec.ClientName, &rec.Minutes, &rec.Price,
			&rec.OldEnd, &rec.NewEnd, &rec.CalendarPatched, &rec.SheetAppended, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
