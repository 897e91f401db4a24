package bookingservice

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Booking, error)
	FindByHospitalID(ctx context.Context, hospitalID int, status string) ([]domain.Booking, error)
}
type AuditRepo interface {
	SaveStatusHistory(ctx context.Context, entry *domain.BookingStatusHistory) error
	GetStatusHistory(ctx context.Context, bookingID int) ([]domain.BookingStatusHistory, error)
}

// Ledger is the resource capacity ledger invoked on transitions that
// consume or free capacity.
type Ledger interface {
	Allocate(ctx context.Context, hospitalID int, resourceType string, qty, bookingID, performedBy int) error
	Release(ctx context.Context, hospitalID int, resourceType string, qty, bookingID, performedBy int, reason string) error
}

// Notifier is informed after every committed transition. Delivery is
// fire-and-forget; no confirmation is awaited.
type Notifier interface {
	BookingStatusChanged(booking *domain.Booking, oldStatus string)
}

type Service struct {
	repo        Repo
	audit       AuditRepo
	ledger      Ledger
	notifier    Notifier
	txManager   pg.TXManager
	rapidMinAge int
}

func New(repo Repo, audit AuditRepo, ledger Ledger, notifier Notifier, txManager pg.TXManager, rapidMinAge int) *Service {
	return &Service{
		repo:        repo,
		audit:       audit,
		ledger:      ledger,
		notifier:    notifier,
		txManager:   txManager,
		rapidMinAge: rapidMinAge,
	}
}

var (
	ErrBookingNotFound           = errors.New("booking not found")
	ErrInvalidTransition         = errors.New("invalid booking status transition")
	ErrDeclineReasonRequired     = errors.New("decline reason is required")
	ErrUnauthorized              = errors.New("actor may not act on this hospital's bookings")
	ErrInvalidPatientAge         = errors.New("patient age must be between 1 and 150")
	ErrInvalidUrgency            = errors.New("unknown urgency level")
	ErrInvalidResourceType       = errors.New("unknown resource type")
	ErrRapidAssistanceIneligible = errors.New("rapid assistance requires patient age 60 or above")
	ErrReferenceGeneration       = errors.New("could not generate a unique booking reference")
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type SubmitRequest struct {
	UserID                 int
	HospitalID             int
	ResourceType           string
	PatientName            string
	PatientAge             int
	PatientGender          string
	MedicalCondition       string
	Urgency                string
	EstimatedDurationHours int
	RapidAssistance        bool
}

func (s *Service) validate(req *SubmitRequest) error {
	if req.PatientAge < 1 || req.PatientAge > 150 {
		return ErrInvalidPatientAge
	}
	if !domain.ValidUrgency(req.Urgency) {
		return ErrInvalidUrgency
	}
	if !domain.ValidResourceType(req.ResourceType) {
		return ErrInvalidResourceType
	}
	if req.RapidAssistance && req.PatientAge < s.rapidMinAge {
		return ErrRapidAssistanceIneligible
	}
	return nil
}

// Submit validates the request and creates the booking in pending state
// together with its first history row. Nothing is created when
// validation fails.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*domain.Booking, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	duration := req.EstimatedDurationHours
	if duration == 0 {
		duration = 24
	}

	booking := &domain.Booking{
		UserID:               req.UserID,
		HospitalID:           req.HospitalID,
		ResourceType:         req.ResourceType,
		PatientName:          req.PatientName,
		PatientAge:           req.PatientAge,
		PatientGender:        req.PatientGender,
		MedicalCondition:     req.MedicalCondition,
		Urgency:              req.Urgency,
		EstimatedDurationHrs: duration,
		Status:               domain.PendingBookingStatus,
		PaymentStatus:        domain.PendingPaymentStatus,
		RapidAssistance:      req.RapidAssistance,
		CreatedAt:            time.Now(),
	}

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		reference, err := s.uniqueReference(ctx, booking.CreatedAt)
		if err != nil {
			return err
		}
		booking.BookingReference = reference

		if err := s.repo.Save(ctx, booking); err != nil {
			zap.L().Error("can't save booking", zap.Error(err))
			return err
		}
		return s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
			BookingID: booking.ID,
			OldStatus: "",
			NewStatus: domain.PendingBookingStatus,
			ChangedBy: req.UserID,
			ChangedAt: time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingStatusChanged(booking, "")
	zap.L().Info("booking submitted",
		zap.String("reference", booking.BookingReference),
		zap.Int("hospital_id", booking.HospitalID),
		zap.String("urgency", booking.Urgency))
	return booking, nil
}

func (s *Service) uniqueReference(ctx context.Context, at time.Time) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		suffix := make([]byte, 6)
		random := make([]byte, 6)
		if _, err := rand.Read(random); err != nil {
			return "", err
		}
		for i, b := range random {
			suffix[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
		}
		reference := fmt.Sprintf("BK-%s-%s", at.Format("20060102"), string(suffix))

		existing, err := s.repo.GetByReference(ctx, reference)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return reference, nil
		}
	}
	return "", ErrReferenceGeneration
}

// Approve moves a pending booking to approved and allocates one unit of
// the requested resource inside the same atomic unit. If allocation
// fails, the booking stays pending and the ledger error is surfaced.
func (s *Service) Approve(ctx context.Context, bookingID int, cap auth.Capability, notes string) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !cap.CanActOnHospital(b.HospitalID) {
			return ErrUnauthorized
		}
		if b.Status != domain.PendingBookingStatus {
			return ErrInvalidTransition
		}

		if err := s.ledger.Allocate(ctx, b.HospitalID, b.ResourceType, 1, b.ID, cap.ActorID); err != nil {
			return err
		}

		now := time.Now()
		oldStatus := b.Status
		b.Status = domain.ApprovedBookingStatus
		b.ApprovedBy = cap.ActorID
		b.ApprovedAt = &now
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		if err := s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: oldStatus,
			NewStatus: b.Status,
			ChangedBy: cap.ActorID,
			Notes:     notes,
			ChangedAt: now,
		}); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingStatusChanged(booking, domain.PendingBookingStatus)
	return booking, nil
}

// Decline rejects a pending booking. The reason is mandatory; no
// resource is touched.
func (s *Service) Decline(ctx context.Context, bookingID int, cap auth.Capability, reason, notes string) (*domain.Booking, error) {
	if reason == "" {
		return nil, ErrDeclineReasonRequired
	}

	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !cap.CanActOnHospital(b.HospitalID) {
			return ErrUnauthorized
		}
		if b.Status != domain.PendingBookingStatus {
			return ErrInvalidTransition
		}

		oldStatus := b.Status
		b.Status = domain.DeclinedBookingStatus
		b.DeclineReason = reason
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		if err := s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: oldStatus,
			NewStatus: b.Status,
			ChangedBy: cap.ActorID,
			Reason:    reason,
			Notes:     notes,
			ChangedAt: time.Now(),
		}); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingStatusChanged(booking, domain.PendingBookingStatus)
	return booking, nil
}

// Cancel withdraws a pending or approved booking. An approved booking
// releases the unit allocated at approval time.
func (s *Service) Cancel(ctx context.Context, bookingID int, cap auth.Capability, reason string) (*domain.Booking, error) {
	var booking *domain.Booking
	var oldStatus string
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if cap.ActorID != b.UserID && !cap.CanActOnHospital(b.HospitalID) {
			return ErrUnauthorized
		}
		if b.Status != domain.PendingBookingStatus && b.Status != domain.ApprovedBookingStatus {
			return ErrInvalidTransition
		}

		oldStatus = b.Status
		if b.Status == domain.ApprovedBookingStatus {
			if err := s.ledger.Release(ctx, b.HospitalID, b.ResourceType, 1, b.ID, cap.ActorID, "booking cancelled"); err != nil {
				return err
			}
		}

		b.Status = domain.CancelledBookingStatus
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		if err := s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: oldStatus,
			NewStatus: b.Status,
			ChangedBy: cap.ActorID,
			Reason:    reason,
			ChangedAt: time.Now(),
		}); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingStatusChanged(booking, oldStatus)
	return booking, nil
}

// Complete closes an approved booking after the stay. Capacity stays
// consumed until released by hospital staff through the ledger.
func (s *Service) Complete(ctx context.Context, bookingID int, cap auth.Capability) (*domain.Booking, error) {
	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.repo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		if !cap.CanActOnHospital(b.HospitalID) {
			return ErrUnauthorized
		}
		if b.Status != domain.ApprovedBookingStatus {
			return ErrInvalidTransition
		}

		oldStatus := b.Status
		b.Status = domain.CompletedBookingStatus
		if err := s.repo.Update(ctx, b); err != nil {
			return err
		}
		if err := s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: oldStatus,
			NewStatus: b.Status,
			ChangedBy: cap.ActorID,
			ChangedAt: time.Now(),
		}); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.BookingStatusChanged(booking, domain.ApprovedBookingStatus)
	return booking, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error) {
	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

func (s *Service) GetHistory(ctx context.Context, bookingID int) ([]domain.BookingStatusHistory, error) {
	history, err := s.audit.GetStatusHistory(ctx, bookingID)
	if err != nil {
		zap.L().Error("failed to get booking history", zap.Error(err))
		return nil, err
	}
	return history, nil
}

func (s *Service) ListForUser(ctx context.Context, userID int) ([]domain.Booking, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *Service) ListForHospital(ctx context.Context, hospitalID int, status string, cap auth.Capability) ([]domain.Booking, error) {
	if !cap.CanActOnHospital(hospitalID) {
		return nil, ErrUnauthorized
	}
	return s.repo.FindByHospitalID(ctx, hospitalID, status)
}
