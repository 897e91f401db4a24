package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/pkg/money"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type BalanceRepo interface {
	ListAll(ctx context.Context) ([]domain.UserBalance, error)
	SumTransactions(ctx context.Context, balanceID int) (money.Amount, error)
}
type ResourceRepo interface {
	ListAll(ctx context.Context) ([]domain.ResourceCounter, error)
}

// Alerter receives operator alerts for invariant violations.
type Alerter interface {
	IntegrityAlert(detail string)
}

// Service periodically verifies the ledger invariants: every resource
// counter's parts sum to its total, and every balance equals the net of
// its balance transactions. Violations go to the alert path only.
type Service struct {
	balanceRepo  BalanceRepo
	resourceRepo ResourceRepo
	alerter      Alerter
	interval     time.Duration
}

func New(balanceRepo BalanceRepo, resourceRepo ResourceRepo, alerter Alerter, interval time.Duration) *Service {
	return &Service{
		balanceRepo:  balanceRepo,
		resourceRepo: resourceRepo,
		alerter:      alerter,
		interval:     interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("reconciliation service started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping reconciliation")
			return
		case <-ticker.C:
			s.runChecks(ctx)
		}
	}
}

func (s *Service) runChecks(ctx context.Context) {
	if err := s.checkCounters(ctx); err != nil {
		zap.L().Error("counter reconciliation failed", zap.Error(err))
	}
	if err := s.checkBalances(ctx); err != nil {
		zap.L().Error("balance reconciliation failed", zap.Error(err))
	}
}

func (s *Service) checkCounters(ctx context.Context) error {
	counters, err := s.resourceRepo.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, c := range counters {
		sum := c.Available + c.Occupied + c.Reserved + c.Maintenance
		if c.Total != sum || c.Available < 0 || c.Occupied < 0 || c.Reserved < 0 || c.Maintenance < 0 {
			s.alerter.IntegrityAlert(fmt.Sprintf(
				"resource counter out of balance: hospital=%d type=%s total=%d parts=%d",
				c.HospitalID, c.ResourceType, c.Total, sum))
		}
	}
	return nil
}

func (s *Service) checkBalances(ctx context.Context) error {
	balances, err := s.balanceRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, balance := range balances {
		balance := balance
		g.Go(func() error {
			sum, err := s.balanceRepo.SumTransactions(ctx, balance.ID)
			if err != nil {
				return err
			}
			if sum != balance.CurrentBalance {
				s.alerter.IntegrityAlert(fmt.Sprintf(
					"balance drift: balance=%d user=%d hospital=%d stored=%s movements=%s",
					balance.ID, balance.UserID, balance.HospitalID, balance.CurrentBalance, sum))
			}
			return nil
		})
	}
	return g.Wait()
}
