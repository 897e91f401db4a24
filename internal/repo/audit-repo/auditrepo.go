package auditrepo

import (
	"context"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) SaveStatusHistory(ctx context.Context, entry *domain.BookingStatusHistory) error {
	query := `
        INSERT INTO booking_status_history (booking_id, old_status, new_status, changed_by, reason, notes, changed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, entry.BookingID, entry.OldStatus, entry.NewStatus,
		entry.ChangedBy, entry.Reason, entry.Notes, entry.ChangedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save status history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetStatusHistory(ctx context.Context, bookingID int) ([]domain.BookingStatusHistory, error) {
	query := `
        SELECT id, booking_id, old_status, new_status, changed_by, reason, notes, changed_at
        FROM booking_status_history
        WHERE booking_id = $1
        ORDER BY changed_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		zap.L().Error("failed to fetch status history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.BookingStatusHistory
	for rows.Next() {
		var h domain.BookingStatusHistory
		err := rows.Scan(&h.ID, &h.BookingID, &h.OldStatus, &h.NewStatus, &h.ChangedBy, &h.Reason, &h.Notes, &h.ChangedAt)
		if err != nil {
			zap.L().Error("failed to scan status history row", zap.Error(err))
			return nil, err
		}
		history = append(history, h)
	}
	return history, nil
}

func (r *Repository) SaveResourceLog(ctx context.Context, entry *domain.ResourceAuditLog) error {
	query := `
        INSERT INTO resource_audit_log (hospital_id, resource_type, change_type, old_value, new_value, delta, booking_id, performed_by, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, entry.HospitalID, entry.ResourceType, entry.ChangeType,
		entry.OldValue, entry.NewValue, entry.Delta, entry.BookingID, entry.PerformedBy, entry.Reason, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save resource audit log", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetResourceLog(ctx context.Context, hospitalID int, resourceType string) ([]domain.ResourceAuditLog, error) {
	query := `
        SELECT id, hospital_id, resource_type, change_type, old_value, new_value, delta, booking_id, performed_by, reason, created_at
        FROM resource_audit_log
        WHERE hospital_id = $1 AND ($2 = '' OR resource_type = $2)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, hospitalID, resourceType)
	if err != nil {
		zap.L().Error("failed to fetch resource audit log", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.ResourceAuditLog
	for rows.Next() {
		var e domain.ResourceAuditLog
		err := rows.Scan(&e.ID, &e.HospitalID, &e.ResourceType, &e.ChangeType, &e.OldValue, &e.NewValue, &e.Delta, &e.BookingID, &e.PerformedBy, &e.Reason, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan resource audit row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
