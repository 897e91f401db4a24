package revenueservice

import (
	"context"
	"errors"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/pkg/money"
	"go.uber.org/zap"
)

type TransactionRepo interface {
	GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error)
	UpdateSplit(ctx context.Context, transactionID string, serviceCharge, hospitalAmount money.Amount, status string) error
}
type BalanceRepo interface {
	Get(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error)
	Create(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error)
	ApplyDelta(ctx context.Context, balanceID int, delta money.Amount, txnType, reference string) (*domain.UserBalance, *domain.BalanceTransaction, error)
}

type Service struct {
	transactionRepo   TransactionRepo
	balanceRepo       BalanceRepo
	txManager         pg.TXManager
	serviceChargeRate float64
	platformAccountID int
}

func New(transactionRepo TransactionRepo, balanceRepo BalanceRepo, txManager pg.TXManager, serviceChargeRate float64, platformAccountID int) *Service {
	return &Service{
		transactionRepo:   transactionRepo,
		balanceRepo:       balanceRepo,
		txManager:         txManager,
		serviceChargeRate: serviceChargeRate,
		platformAccountID: platformAccountID,
	}
}

var ErrTransactionNotFound = errors.New("transaction not found")

// Distribute splits a settled payment into the hospital share and the
// platform service charge and credits both balances as one atomic unit.
// The transaction id is the idempotency key: re-invocation on an already
// completed transaction is a no-op, and any partial failure rolls the
// whole unit back.
func (s *Service) Distribute(ctx context.Context, transactionID string, totalAmount money.Amount, hospitalID int) (*domain.Transaction, error) {
	var result *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		txn, err := s.transactionRepo.GetByTransactionIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if txn == nil {
			return ErrTransactionNotFound
		}
		if txn.Status == domain.CompletedTransactionStatus {
			result = txn
			return nil
		}

		serviceCharge := totalAmount.MulRate(s.serviceChargeRate)
		hospitalAmount := totalAmount - serviceCharge

		hospitalBalance, err := s.getOrCreate(ctx, 0, hospitalID)
		if err != nil {
			return err
		}
		if _, _, err := s.balanceRepo.ApplyDelta(ctx, hospitalBalance.ID, hospitalAmount, domain.PaymentReceivedTxnType, transactionID); err != nil {
			return err
		}

		platformBalance, err := s.getOrCreate(ctx, s.platformAccountID, 0)
		if err != nil {
			return err
		}
		if _, _, err := s.balanceRepo.ApplyDelta(ctx, platformBalance.ID, serviceCharge, domain.ServiceChargeTxnType, transactionID); err != nil {
			return err
		}

		if err := s.transactionRepo.UpdateSplit(ctx, transactionID, serviceCharge, hospitalAmount, domain.CompletedTransactionStatus); err != nil {
			return err
		}

		txn.ServiceCharge = serviceCharge
		txn.HospitalAmount = hospitalAmount
		txn.Status = domain.CompletedTransactionStatus
		result = txn
		return nil
	})
	if err != nil {
		zap.L().Error("revenue distribution failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Reverse undoes a completed distribution when a paid booking is
// refunded, debiting both beneficiary balances.
func (s *Service) Reverse(ctx context.Context, txn *domain.Transaction) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		hospitalBalance, err := s.getOrCreate(ctx, 0, txn.HospitalID)
		if err != nil {
			return err
		}
		if _, _, err := s.balanceRepo.ApplyDelta(ctx, hospitalBalance.ID, -txn.HospitalAmount, domain.AdjustmentTxnType, txn.TransactionID); err != nil {
			return err
		}

		platformBalance, err := s.getOrCreate(ctx, s.platformAccountID, 0)
		if err != nil {
			return err
		}
		if _, _, err := s.balanceRepo.ApplyDelta(ctx, platformBalance.ID, -txn.ServiceCharge, domain.AdjustmentTxnType, txn.TransactionID); err != nil {
			return err
		}
		return nil
	})
}

func (s *Service) getOrCreate(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error) {
	balance, err := s.balanceRepo.Get(ctx, userID, hospitalID)
	if err != nil {
		return nil, err
	}
	if balance != nil {
		return balance, nil
	}
	return s.balanceRepo.Create(ctx, userID, hospitalID)
}
