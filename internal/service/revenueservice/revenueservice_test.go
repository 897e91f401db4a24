package revenueservice

import (
	"context"
	"errors"
	"testing"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/pkg/money"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockTransactionRepo, *MockBalanceRepo) {
	ctrl := gomock.NewController(t)
	transactionRepo := NewMockTransactionRepo(ctrl)
	balanceRepo := NewMockBalanceRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()
	service := New(transactionRepo, balanceRepo, txManager, 0.05, 1)
	defer ctrl.Finish()
	return service, transactionRepo, balanceRepo
}

func TestDistribute(t *testing.T) {
	service, transactionRepo, balanceRepo := NewMock(t)
	ctx := context.Background()

	total := money.FromTaka(1200)
	serviceCharge := money.FromTaka(60)
	hospitalAmount := money.FromTaka(1140)

	transactionRepo.EXPECT().GetByTransactionIDForUpdate(gomock.Any(), "TXN-1").Return(&domain.Transaction{
		TransactionID: "TXN-1", Amount: total, HospitalID: 2,
		Status: domain.PendingTransactionStatus,
	}, nil)
	balanceRepo.EXPECT().Get(gomock.Any(), 0, 2).Return(&domain.UserBalance{ID: 8, HospitalID: 2}, nil)
	balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 8, hospitalAmount, domain.PaymentReceivedTxnType, "TXN-1").
		Return(&domain.UserBalance{ID: 8, CurrentBalance: hospitalAmount}, &domain.BalanceTransaction{}, nil)
	balanceRepo.EXPECT().Get(gomock.Any(), 1, 0).Return(&domain.UserBalance{ID: 9, UserID: 1}, nil)
	balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 9, serviceCharge, domain.ServiceChargeTxnType, "TXN-1").
		Return(&domain.UserBalance{ID: 9, CurrentBalance: serviceCharge}, &domain.BalanceTransaction{}, nil)
	transactionRepo.EXPECT().UpdateSplit(gomock.Any(), "TXN-1", serviceCharge, hospitalAmount, domain.CompletedTransactionStatus).Return(nil)

	txn, err := service.Distribute(ctx, "TXN-1", total, 2)
	assert.NoError(t, err)
	assert.Equal(t, serviceCharge, txn.ServiceCharge)
	assert.Equal(t, hospitalAmount, txn.HospitalAmount)
	assert.Equal(t, domain.CompletedTransactionStatus, txn.Status)
	assert.Equal(t, total, txn.ServiceCharge+txn.HospitalAmount)
}

func TestDistributeIdempotent(t *testing.T) {
	service, transactionRepo, _ := NewMock(t)
	ctx := context.Background()

	completed := &domain.Transaction{
		TransactionID:  "TXN-1",
		ServiceCharge:  money.FromTaka(60),
		HospitalAmount: money.FromTaka(1140),
		Status:         domain.CompletedTransactionStatus,
	}
	transactionRepo.EXPECT().GetByTransactionIDForUpdate(gomock.Any(), "TXN-1").Return(completed, nil)

	txn, err := service.Distribute(ctx, "TXN-1", money.FromTaka(1200), 2)
	assert.NoError(t, err)
	assert.Equal(t, completed, txn)
}

func TestDistributeErrors(t *testing.T) {
	service, transactionRepo, balanceRepo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "unknown transaction",
			prepareMock: func() {
				transactionRepo.EXPECT().GetByTransactionIDForUpdate(gomock.Any(), "TXN-1").Return(nil, nil)
			},
			expectedError: ErrTransactionNotFound,
		},
		{
			name: "hospital credit fails",
			prepareMock: func() {
				transactionRepo.EXPECT().GetByTransactionIDForUpdate(gomock.Any(), "TXN-1").Return(&domain.Transaction{
					TransactionID: "TXN-1", HospitalID: 2, Status: domain.PendingTransactionStatus,
				}, nil)
				balanceRepo.EXPECT().Get(gomock.Any(), 0, 2).Return(&domain.UserBalance{ID: 8}, nil)
				balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 8, gomock.Any(), domain.PaymentReceivedTxnType, "TXN-1").
					Return(nil, nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			txn, err := service.Distribute(ctx, "TXN-1", money.FromTaka(1200), 2)
			assert.Nil(t, txn)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestDistributeCreatesMissingBalances(t *testing.T) {
	service, transactionRepo, balanceRepo := NewMock(t)
	ctx := context.Background()

	transactionRepo.EXPECT().GetByTransactionIDForUpdate(gomock.Any(), "TXN-1").Return(&domain.Transaction{
		TransactionID: "TXN-1", HospitalID: 2, Status: domain.PendingTransactionStatus,
	}, nil)
	balanceRepo.EXPECT().Get(gomock.Any(), 0, 2).Return(nil, nil)
	balanceRepo.EXPECT().Create(gomock.Any(), 0, 2).Return(&domain.UserBalance{ID: 8, HospitalID: 2}, nil)
	balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 8, gomock.Any(), domain.PaymentReceivedTxnType, "TXN-1").
		Return(&domain.UserBalance{ID: 8}, &domain.BalanceTransaction{}, nil)
	balanceRepo.EXPECT().Get(gomock.Any(), 1, 0).Return(nil, nil)
	balanceRepo.EXPECT().Create(gomock.Any(), 1, 0).Return(&domain.UserBalance{ID: 9, UserID: 1}, nil)
	balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 9, gomock.Any(), domain.ServiceChargeTxnType, "TXN-1").
		Return(&domain.UserBalance{ID: 9}, &domain.BalanceTransaction{}, nil)
	transactionRepo.EXPECT().UpdateSplit(gomock.Any(), "TXN-1", gomock.Any(), gomock.Any(), domain.CompletedTransactionStatus).Return(nil)

	_, err := service.Distribute(ctx, "TXN-1", money.FromTaka(100), 2)
	assert.NoError(t, err)
}

func TestReverse(t *testing.T) {
	service, _, balanceRepo := NewMock(t)
	ctx := context.Background()

	txn := &domain.Transaction{
		TransactionID:  "TXN-1",
		HospitalID:     2,
		ServiceCharge:  money.FromTaka(60),
		HospitalAmount: money.FromTaka(1140),
		Status:         domain.CompletedTransactionStatus,
	}

	balanceRepo.EXPECT().Get(gomock.Any(), 0, 2).Return(&domain.UserBalance{ID: 8}, nil)
	balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 8, -money.FromTaka(1140), domain.AdjustmentTxnType, "TXN-1").
		Return(&domain.UserBalance{ID: 8}, &domain.BalanceTransaction{}, nil)
	balanceRepo.EXPECT().Get(gomock.Any(), 1, 0).Return(&domain.UserBalance{ID: 9}, nil)
	balanceRepo.EXPECT().ApplyDelta(gomock.Any(), 9, -money.FromTaka(60), domain.AdjustmentTxnType, "TXN-1").
		Return(&domain.UserBalance{ID: 9}, &domain.BalanceTransaction{}, nil)

	err := service.Reverse(ctx, txn)
	assert.NoError(t, err)
}
