package auditrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/asifrahman/medibook/internal/domain"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)

	return repo, mockDB
}

func testTime() time.Time {
	return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
}

func TestRepository_SaveStatusHistory(t *testing.T) {
	repo, mockDB := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()

	query := regexp.QuoteMeta(`
        INSERT INTO booking_status_history (booking_id, old_status, new_status, changed_by, reason, notes, changed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `)

	t.Run("Success", func(t *testing.T) {
		entry := &domain.BookingStatusHistory{
			BookingID: 10,
			OldStatus: domain.PendingBookingStatus,
			NewStatus: domain.ApprovedBookingStatus,
			ChangedBy: 5,
			Reason:    "capacity available",
			ChangedAt: testTime(),
		}
		mockDB.ExpectQuery(query).
			WithArgs(entry.BookingID, entry.OldStatus, entry.NewStatus, entry.ChangedBy,
				entry.Reason, entry.Notes, entry.ChangedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.SaveStatusHistory(ctx, entry)

		assert.NoError(t, err)
		assert.Equal(t, 1, entry.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		entry := &domain.BookingStatusHistory{BookingID: 10, ChangedAt: testTime()}
		mockDB.ExpectQuery(query).
			WithArgs(entry.BookingID, entry.OldStatus, entry.NewStatus, entry.ChangedBy,
				entry.Reason, entry.Notes, entry.ChangedAt).
			WillReturnError(errors.New("database error"))

		err := repo.SaveStatusHistory(ctx, entry)

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_GetStatusHistory(t *testing.T) {
	repo, mockDB := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()

	query := regexp.QuoteMeta(`
        SELECT id, booking_id, old_status, new_status, changed_by, reason, notes, changed_at
        FROM booking_status_history
        WHERE booking_id = $1
        ORDER BY changed_at ASC, id ASC
    `)
	columns := []string{"id", "booking_id", "old_status", "new_status", "changed_by", "reason", "notes", "changed_at"}

	t.Run("Success", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(10).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(1, 10, "", domain.PendingBookingStatus, 1, "submitted", "", testTime()).
				AddRow(2, 10, domain.PendingBookingStatus, domain.ApprovedBookingStatus, 5, "capacity available", "", testTime().Add(time.Hour)))

		got, err := repo.GetStatusHistory(ctx, 10)

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, domain.PendingBookingStatus, got[0].NewStatus)
		assert.Equal(t, got[0].NewStatus, got[1].OldStatus)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Empty history", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(99).
			WillReturnRows(pgxmock.NewRows(columns))

		got, err := repo.GetStatusHistory(ctx, 99)

		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(10).
			WillReturnError(errors.New("database error"))

		got, err := repo.GetStatusHistory(ctx, 10)

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_SaveResourceLog(t *testing.T) {
	repo, mockDB := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()

	query := regexp.QuoteMeta(`
        INSERT INTO resource_audit_log (hospital_id, resource_type, change_type, old_value, new_value, delta, booking_id, performed_by, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `)

	t.Run("Success", func(t *testing.T) {
		entry := &domain.ResourceAuditLog{
			HospitalID:   2,
			ResourceType: domain.BedResource,
			ChangeType:   domain.AllocationChange,
			OldValue:     5,
			NewValue:     3,
			Delta:        -2,
			BookingID:    10,
			PerformedBy:  5,
			Reason:       "booking approved",
			CreatedAt:    testTime(),
		}
		mockDB.ExpectQuery(query).
			WithArgs(entry.HospitalID, entry.ResourceType, entry.ChangeType, entry.OldValue,
				entry.NewValue, entry.Delta, entry.BookingID, entry.PerformedBy, entry.Reason, entry.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.SaveResourceLog(ctx, entry)

		assert.NoError(t, err)
		assert.Equal(t, 7, entry.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		entry := &domain.ResourceAuditLog{HospitalID: 2, ResourceType: domain.BedResource, CreatedAt: testTime()}
		mockDB.ExpectQuery(query).
			WithArgs(entry.HospitalID, entry.ResourceType, entry.ChangeType, entry.OldValue,
				entry.NewValue, entry.Delta, entry.BookingID, entry.PerformedBy, entry.Reason, entry.CreatedAt).
			WillReturnError(errors.New("database error"))

		err := repo.SaveResourceLog(ctx, entry)

		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_GetResourceLog(t *testing.T) {
	repo, mockDB := NewMock(t)
	defer mockDB.Close()
	ctx := context.Background()

	query := regexp.QuoteMeta(`
        SELECT id, hospital_id, resource_type, change_type, old_value, new_value, delta, booking_id, performed_by, reason, created_at
        FROM resource_audit_log
        WHERE hospital_id = $1 AND ($2 = '' OR resource_type = $2)
        ORDER BY created_at DESC
    `)
	columns := []string{"id", "hospital_id", "resource_type", "change_type", "old_value", "new_value", "delta", "booking_id", "performed_by", "reason", "created_at"}

	t.Run("Filtered by resource", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(2, domain.BedResource).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(1, 2, domain.BedResource, domain.AllocationChange, 5, 3, -2, 10, 5, "booking approved", testTime()))

		got, err := repo.GetResourceLog(ctx, 2, domain.BedResource)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, domain.AllocationChange, got[0].ChangeType)
		assert.Equal(t, got[0].NewValue-got[0].OldValue, got[0].Delta)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("All resources", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(2, "").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(1, 2, domain.BedResource, domain.AllocationChange, 5, 3, -2, 10, 5, "booking approved", testTime()).
				AddRow(2, 2, domain.ICUResource, domain.CapacityChange, 4, 6, 2, 0, 5, "new ICU wing", testTime()))

		got, err := repo.GetResourceLog(ctx, 2, "")

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mockDB.ExpectQuery(query).WithArgs(2, "").
			WillReturnError(errors.New("database error"))

		got, err := repo.GetResourceLog(ctx, 2, "")

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
