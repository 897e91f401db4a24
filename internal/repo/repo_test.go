package repo

import (
	"testing"

	"github.com/asifrahman/medibook/internal/pg"
	auditrepo "github.com/asifrahman/medibook/internal/repo/audit-repo"
	balancerepo "github.com/asifrahman/medibook/internal/repo/balance-repo"
	bookingrepo "github.com/asifrahman/medibook/internal/repo/booking-repo"
	pricingrepo "github.com/asifrahman/medibook/internal/repo/pricing-repo"
	resourcerepo "github.com/asifrahman/medibook/internal/repo/resource-repo"
	transactionrepo "github.com/asifrahman/medibook/internal/repo/transaction-repo"
	userrepo "github.com/asifrahman/medibook/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.BookingRepo)
	assert.NotNil(t, repo.ResourceRepo)
	assert.NotNil(t, repo.PricingRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.AuditRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &bookingrepo.Repository{}, repo.BookingRepo)
	assert.IsType(t, &resourcerepo.Repository{}, repo.ResourceRepo)
	assert.IsType(t, &pricingrepo.Repository{}, repo.PricingRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &auditrepo.Repository{}, repo.AuditRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
