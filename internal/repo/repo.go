package repo

import (
	"github.com/asifrahman/medibook/internal/pg"
	auditrepo "github.com/asifrahman/medibook/internal/repo/audit-repo"
	balancerepo "github.com/asifrahman/medibook/internal/repo/balance-repo"
	bookingrepo "github.com/asifrahman/medibook/internal/repo/booking-repo"
	pricingrepo "github.com/asifrahman/medibook/internal/repo/pricing-repo"
	resourcerepo "github.com/asifrahman/medibook/internal/repo/resource-repo"
	transactionrepo "github.com/asifrahman/medibook/internal/repo/transaction-repo"
	userrepo "github.com/asifrahman/medibook/internal/repo/user-repo"
)

// Repositories holds the concrete stores. Several services consume the
// same store through their own narrower interfaces, so the fields stay
// concrete and the compiler checks each assignment at the service
// constructor.
type Repositories struct {
	UserRepo        *userrepo.Repository
	BookingRepo     *bookingrepo.Repository
	ResourceRepo    *resourcerepo.Repository
	PricingRepo     *pricingrepo.Repository
	TransactionRepo *transactionrepo.Repository
	BalanceRepo     *balancerepo.Repository
	AuditRepo       *auditrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		BookingRepo:     bookingrepo.New(conn, txManager),
		ResourceRepo:    resourcerepo.New(conn),
		PricingRepo:     pricingrepo.New(conn, txManager),
		TransactionRepo: transactionrepo.New(conn),
		BalanceRepo:     balancerepo.New(conn, txManager),
		AuditRepo:       auditrepo.New(conn),
	}
}
