package bookingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"go.uber.org/zap"
)

const bookingColumns = `id, user_id, hospital_id, resource_type, patient_name, patient_age, patient_gender,
        medical_condition, urgency, estimated_duration_hours, status, booking_reference,
        payment_amount, payment_status, rapid_assistance, rapid_assistance_charge,
        approved_by, approved_at, decline_reason, created_at`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	query := `
        INSERT INTO bookings (user_id, hospital_id, resource_type, patient_name, patient_age, patient_gender,
            medical_condition, urgency, estimated_duration_hours, status, booking_reference,
            payment_amount, payment_status, rapid_assistance, rapid_assistance_charge, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			booking.UserID, booking.HospitalID, booking.ResourceType, booking.PatientName, booking.PatientAge,
			booking.PatientGender, booking.MedicalCondition, booking.Urgency, booking.EstimatedDurationHrs,
			booking.Status, booking.BookingReference, booking.PaymentAmount, booking.PaymentStatus,
			booking.RapidAssistance, booking.RapidAssistanceCharge, booking.CreatedAt,
		).Scan(&booking.ID)
	})
	if err != nil {
		zap.L().Error("can't save booking", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate re-reads the booking under a row lock so concurrent
// transitions on the same booking serialize.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE booking_reference = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, reference))
}

func (r *Repository) Update(ctx context.Context, booking *domain.Booking) error {
	query := `
        UPDATE bookings
        SET status = $1, payment_amount = $2, payment_status = $3, rapid_assistance = $4,
            rapid_assistance_charge = $5, approved_by = $6, approved_at = $7, decline_reason = $8
        WHERE id = $9
    `
	_, err := r.db.Exec(ctx, query,
		booking.Status, booking.PaymentAmount, booking.PaymentStatus, booking.RapidAssistance,
		booking.RapidAssistanceCharge, booking.ApprovedBy, booking.ApprovedAt, booking.DeclineReason,
		booking.ID,
	)
	if err != nil {
		zap.L().Error("failed to update booking", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *Repository) FindByHospitalID(ctx context.Context, hospitalID int, status string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE hospital_id = $1 AND ($2 = '' OR status = $2) ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, hospitalID, status)
	if err != nil {
		zap.L().Error("can't get hospital bookings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.HospitalID, &b.ResourceType, &b.PatientName, &b.PatientAge, &b.PatientGender,
		&b.MedicalCondition, &b.Urgency, &b.EstimatedDurationHrs, &b.Status, &b.BookingReference,
		&b.PaymentAmount, &b.PaymentStatus, &b.RapidAssistance, &b.RapidAssistanceCharge,
		&b.ApprovedBy, &b.ApprovedAt, &b.DeclineReason, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find booking", zap.Error(err))
		return nil, err
	}
	return &b, nil
}

func (r *Repository) scanMany(rows pgx.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID, &b.UserID, &b.HospitalID, &b.ResourceType, &b.PatientName, &b.PatientAge, &b.PatientGender,
			&b.MedicalCondition, &b.Urgency, &b.EstimatedDurationHrs, &b.Status, &b.BookingReference,
			&b.PaymentAmount, &b.PaymentStatus, &b.RapidAssistance, &b.RapidAssistanceCharge,
			&b.ApprovedBy, &b.ApprovedAt, &b.DeclineReason, &b.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan booking row", zap.Error(err))
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
