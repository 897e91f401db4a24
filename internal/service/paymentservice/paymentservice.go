package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/internal/service/pricingservice"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/money"
	"go.uber.org/zap"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
}
type BalanceRepo interface {
	Get(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error)
	Create(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error)
	GetForUpdate(ctx context.Context, balanceID int) (*domain.UserBalance, error)
	ApplyDelta(ctx context.Context, balanceID int, delta money.Amount, txnType, reference string) (*domain.UserBalance, *domain.BalanceTransaction, error)
	FindTransactions(ctx context.Context, balanceID int) ([]domain.BalanceTransaction, error)
}
type TransactionRepo interface {
	Save(ctx context.Context, txn *domain.Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	GetByBookingID(ctx context.Context, bookingID int) (*domain.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status string) error
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
}
type AuditRepo interface {
	SaveStatusHistory(ctx context.Context, entry *domain.BookingStatusHistory) error
}

// Pricing supplies the expected cost of a booking.
type Pricing interface {
	CalculateAmount(ctx context.Context, hospitalID int, resourceType string, durationHours int) (*pricingservice.Breakdown, error)
}

// Distributor settles a recorded payment across the hospital and the
// platform.
type Distributor interface {
	Distribute(ctx context.Context, transactionID string, totalAmount money.Amount, hospitalID int) (*domain.Transaction, error)
	Reverse(ctx context.Context, txn *domain.Transaction) error
}

// Notifier is informed of every payment outcome, fire-and-forget.
type Notifier interface {
	PaymentProcessed(booking *domain.Booking, txn *domain.Transaction, outcome string)
}

type Config struct {
	RapidAssistMinAge int
	RapidAssistCharge money.Amount
}

type Service struct {
	bookingRepo     BookingRepo
	balanceRepo     BalanceRepo
	transactionRepo TransactionRepo
	audit           AuditRepo
	pricing         Pricing
	distributor     Distributor
	notifier        Notifier
	txManager       pg.TXManager
	cfg             Config
}

func New(bookingRepo BookingRepo, balanceRepo BalanceRepo, transactionRepo TransactionRepo, audit AuditRepo,
	pricing Pricing, distributor Distributor, notifier Notifier, txManager pg.TXManager, cfg Config) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		balanceRepo:     balanceRepo,
		transactionRepo: transactionRepo,
		audit:           audit,
		pricing:         pricing,
		distributor:     distributor,
		notifier:        notifier,
		txManager:       txManager,
		cfg:             cfg,
	}
}

var (
	ErrBookingNotFound           = errors.New("booking not found")
	ErrAlreadyProcessed          = errors.New("payment already processed")
	ErrBookingNotPayable         = errors.New("booking is not approved for payment")
	ErrUnauthorized              = errors.New("payer does not own this booking")
	ErrRapidAssistanceIneligible = errors.New("rapid assistance requires patient age 60 or above")
	ErrInvalidAmount             = errors.New("amount must be positive")
	ErrNotRefundable             = errors.New("booking payment is not refundable")
)

// AmountMismatchError reports a submitted amount that differs from the
// computed one beyond the accepted tolerance.
type AmountMismatchError struct {
	Expected  money.Amount
	Submitted money.Amount
}

func (e *AmountMismatchError) Error() string {
	return fmt.Sprintf("amount mismatch: expected %s, submitted %s", e.Expected, e.Submitted)
}

// InsufficientBalanceError carries the shortfall breakdown for the payer.
type InsufficientBalanceError struct {
	Required  money.Amount
	Current   money.Amount
	Shortfall money.Amount
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, current %s, shortfall %s", e.Required, e.Current, e.Shortfall)
}

type Result struct {
	Transaction  *domain.Transaction
	BalanceAfter money.Amount
}

// ProcessPayment validates and settles a payment for an approved
// booking; declined, cancelled and still-pending bookings are not
// payable. All mutations happen inside one atomic unit keyed by the
// booking row: the
// payer debit, the payment status change, the transaction record and the
// revenue distribution commit together or not at all. transactionRef is
// the idempotency key; a repeat call returns the recorded outcome
// without debiting again.
func (s *Service) ProcessPayment(ctx context.Context, bookingID, payerID int, submitted money.Amount, transactionRef string, rapidAssistance bool) (*Result, error) {
	existing, err := s.transactionRepo.GetByTransactionID(ctx, transactionRef)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == domain.CompletedTransactionStatus {
		balance, err := s.getOrCreate(ctx, payerID)
		if err != nil {
			return nil, err
		}
		return &Result{Transaction: existing, BalanceAfter: balance.CurrentBalance}, nil
	}

	var result *Result
	var booking *domain.Booking
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.bookingRepo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		booking = b
		if b.UserID != payerID {
			return ErrUnauthorized
		}
		if b.PaymentStatus != domain.PendingPaymentStatus {
			return ErrAlreadyProcessed
		}
		if b.Status != domain.ApprovedBookingStatus {
			return ErrBookingNotPayable
		}

		rapid := rapidAssistance || b.RapidAssistance
		if rapid && b.PatientAge < s.cfg.RapidAssistMinAge {
			return ErrRapidAssistanceIneligible
		}

		breakdown, err := s.pricing.CalculateAmount(ctx, b.HospitalID, b.ResourceType, b.EstimatedDurationHrs)
		if err != nil {
			return err
		}
		expected := breakdown.Total
		var surcharge money.Amount
		if rapid {
			surcharge = s.cfg.RapidAssistCharge
			expected += surcharge
		}

		if !money.Within(submitted, expected) {
			return &AmountMismatchError{Expected: expected, Submitted: submitted}
		}

		balance, err := s.getOrCreate(ctx, payerID)
		if err != nil {
			return err
		}
		balance, err = s.balanceRepo.GetForUpdate(ctx, balance.ID)
		if err != nil {
			return err
		}
		if balance.CurrentBalance < expected {
			return &InsufficientBalanceError{
				Required:  expected,
				Current:   balance.CurrentBalance,
				Shortfall: expected - balance.CurrentBalance,
			}
		}

		updated, _, err := s.balanceRepo.ApplyDelta(ctx, balance.ID, -expected, domain.PaymentSentTxnType, transactionRef)
		if err != nil {
			return err
		}

		b.PaymentStatus = domain.PaidPaymentStatus
		b.PaymentAmount = expected
		b.RapidAssistance = rapid
		b.RapidAssistanceCharge = surcharge
		if err := s.bookingRepo.Update(ctx, b); err != nil {
			return err
		}

		txn := &domain.Transaction{
			BookingID:     b.ID,
			UserID:        payerID,
			HospitalID:    b.HospitalID,
			Amount:        expected,
			PaymentMethod: "bkash",
			TransactionID: transactionRef,
			Status:        domain.PendingTransactionStatus,
			ProcessedAt:   time.Now(),
		}
		if err := s.transactionRepo.Save(ctx, txn); err != nil {
			return err
		}

		settled, err := s.distributor.Distribute(ctx, transactionRef, expected, b.HospitalID)
		if err != nil {
			return err
		}

		result = &Result{Transaction: settled, BalanceAfter: updated.CurrentBalance}
		return nil
	})
	if err != nil {
		if booking != nil {
			s.auditOutcome(ctx, booking, payerID, fmt.Sprintf("payment failed: %v", err))
			s.notifier.PaymentProcessed(booking, nil, "failed")
		}
		return nil, err
	}

	s.auditOutcome(ctx, booking, payerID, "payment settled")
	s.notifier.PaymentProcessed(booking, result.Transaction, "completed")
	zap.L().Info("payment settled",
		zap.String("transaction_id", transactionRef),
		zap.String("amount", result.Transaction.Amount.String()))
	return result, nil
}

// Refund returns a settled payment to the payer after a paid booking is
// cancelled, reversing the distribution as one atomic unit.
func (s *Service) Refund(ctx context.Context, bookingID int, cap auth.Capability, reason string) (*domain.Transaction, error) {
	var refunded *domain.Transaction
	var booking *domain.Booking
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		b, err := s.bookingRepo.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b == nil {
			return ErrBookingNotFound
		}
		booking = b
		if !cap.CanActOnHospital(b.HospitalID) {
			return ErrUnauthorized
		}
		if b.PaymentStatus != domain.PaidPaymentStatus || b.Status != domain.CancelledBookingStatus {
			return ErrNotRefundable
		}

		txn, err := s.transactionRepo.GetByBookingID(ctx, b.ID)
		if err != nil {
			return err
		}
		if txn == nil || txn.Status != domain.CompletedTransactionStatus {
			return ErrNotRefundable
		}

		payerBalance, err := s.getOrCreate(ctx, b.UserID)
		if err != nil {
			return err
		}
		if _, _, err := s.balanceRepo.ApplyDelta(ctx, payerBalance.ID, txn.Amount, domain.RefundProcessedTxnType, txn.TransactionID); err != nil {
			return err
		}
		if err := s.distributor.Reverse(ctx, txn); err != nil {
			return err
		}
		if err := s.transactionRepo.UpdateStatus(ctx, txn.TransactionID, domain.RefundedTransactionStatus); err != nil {
			return err
		}

		b.PaymentStatus = domain.RefundedPaymentStatus
		if err := s.bookingRepo.Update(ctx, b); err != nil {
			return err
		}
		if err := s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
			BookingID: b.ID,
			OldStatus: b.Status,
			NewStatus: b.Status,
			ChangedBy: cap.ActorID,
			Reason:    reason,
			Notes:     "payment refunded",
			ChangedAt: time.Now(),
		}); err != nil {
			return err
		}

		txn.Status = domain.RefundedTransactionStatus
		refunded = txn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.PaymentProcessed(booking, refunded, "refunded")
	return refunded, nil
}

// Deposit tops up the payer's wallet. The gateway is mocked; the
// reference identifies the external transfer.
func (s *Service) Deposit(ctx context.Context, userID int, amount money.Amount, reference string) (*domain.UserBalance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if reference == "" {
		reference = "DEP-" + uuid.NewString()
	}
	balance, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	updated, _, err := s.balanceRepo.ApplyDelta(ctx, balance.ID, amount, domain.AdjustmentTxnType, reference)
	if err != nil {
		zap.L().Error("failed to deposit", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.UserBalance, error) {
	return s.getOrCreate(ctx, userID)
}

func (s *Service) GetMovements(ctx context.Context, userID int) ([]domain.BalanceTransaction, error) {
	balance, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.balanceRepo.FindTransactions(ctx, balance.ID)
}

func (s *Service) GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByUserID(ctx, userID)
}

func (s *Service) getOrCreate(ctx context.Context, userID int) (*domain.UserBalance, error) {
	balance, err := s.balanceRepo.Get(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	if balance != nil {
		return balance, nil
	}
	return s.balanceRepo.Create(ctx, userID, 0)
}

// auditOutcome records the payment attempt in the booking's history.
// Failures are recorded outside the rolled-back unit so the attempt
// still leaves a trace.
func (s *Service) auditOutcome(ctx context.Context, booking *domain.Booking, actorID int, note string) {
	err := s.audit.SaveStatusHistory(ctx, &domain.BookingStatusHistory{
		BookingID: booking.ID,
		OldStatus: booking.Status,
		NewStatus: booking.Status,
		ChangedBy: actorID,
		Notes:     note,
		ChangedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to audit payment outcome", zap.Error(err))
	}
}
