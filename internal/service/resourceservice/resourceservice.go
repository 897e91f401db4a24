package resourceservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"go.uber.org/zap"
)

type Repo interface {
	Get(ctx context.Context, hospitalID int, resourceType string) (*domain.ResourceCounter, error)
	GetForUpdate(ctx context.Context, hospitalID int, resourceType string) (*domain.ResourceCounter, error)
	Update(ctx context.Context, counter *domain.ResourceCounter) error
	Upsert(ctx context.Context, counter *domain.ResourceCounter) error
	ListByHospital(ctx context.Context, hospitalID int) ([]domain.ResourceCounter, error)
}
type AuditRepo interface {
	SaveResourceLog(ctx context.Context, entry *domain.ResourceAuditLog) error
}

// Alerter receives ledger integrity violations the moment they are
// detected, before the unit of work is rolled back.
type Alerter interface {
	IntegrityAlert(detail string)
}

type Service struct {
	repo      Repo
	audit     AuditRepo
	alerter   Alerter
	txManager pg.TXManager
}

func New(repo Repo, audit AuditRepo, alerter Alerter, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		audit:     audit,
		alerter:   alerter,
		txManager: txManager,
	}
}

var (
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrCounterNotFound     = errors.New("resource counter not configured")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidCapacity     = errors.New("capacity below committed units")
)

// IntegrityError means a counter no longer satisfies
// total == available+occupied+reserved+maintenance. The unit that
// detected it is rolled back; the details go to the alert path, not to
// the caller-facing message.
type IntegrityError struct {
	HospitalID   int
	ResourceType string
	Detail       string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("resource ledger integrity violated: hospital=%d type=%s: %s", e.HospitalID, e.ResourceType, e.Detail)
}

func checkIntegrity(c *domain.ResourceCounter) error {
	if c.Available < 0 || c.Occupied < 0 || c.Reserved < 0 || c.Maintenance < 0 {
		return &IntegrityError{HospitalID: c.HospitalID, ResourceType: c.ResourceType, Detail: "negative counter field"}
	}
	if c.Total != c.Available+c.Occupied+c.Reserved+c.Maintenance {
		detail := fmt.Sprintf("total=%d available=%d occupied=%d reserved=%d maintenance=%d",
			c.Total, c.Available, c.Occupied, c.Reserved, c.Maintenance)
		return &IntegrityError{HospitalID: c.HospitalID, ResourceType: c.ResourceType, Detail: detail}
	}
	return nil
}

// Allocate moves qty units from available to occupied as one atomic unit.
// Insufficient availability fails without side effects; the caller
// decides whether to retry.
func (s *Service) Allocate(ctx context.Context, hospitalID int, resourceType string, qty, bookingID, performedBy int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		counter, err := s.repo.GetForUpdate(ctx, hospitalID, resourceType)
		if err != nil {
			return err
		}
		if counter == nil {
			return ErrCounterNotFound
		}
		if counter.Available < qty {
			return ErrResourceUnavailable
		}

		oldAvailable := counter.Available
		counter.Available -= qty
		counter.Occupied += qty
		if err := checkIntegrity(counter); err != nil {
			zap.L().Error("allocation aborted", zap.Error(err))
			s.alerter.IntegrityAlert(err.Error())
			return err
		}
		if err := s.repo.Update(ctx, counter); err != nil {
			return err
		}
		return s.audit.SaveResourceLog(ctx, &domain.ResourceAuditLog{
			HospitalID:   hospitalID,
			ResourceType: resourceType,
			ChangeType:   domain.AllocationChange,
			OldValue:     oldAvailable,
			NewValue:     counter.Available,
			Delta:        -qty,
			BookingID:    bookingID,
			PerformedBy:  performedBy,
			Reason:       "booking approval",
			CreatedAt:    time.Now(),
		})
	})
}

// Release returns units from occupied to available. The quantity is
// clamped to what is actually occupied so the counter never goes
// negative or exceeds total.
func (s *Service) Release(ctx context.Context, hospitalID int, resourceType string, qty, bookingID, performedBy int, reason string) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		counter, err := s.repo.GetForUpdate(ctx, hospitalID, resourceType)
		if err != nil {
			return err
		}
		if counter == nil {
			return ErrCounterNotFound
		}

		freed := qty
		if freed > counter.Occupied {
			freed = counter.Occupied
		}
		if freed == 0 {
			return nil
		}

		oldAvailable := counter.Available
		counter.Occupied -= freed
		counter.Available += freed
		if err := checkIntegrity(counter); err != nil {
			zap.L().Error("release aborted", zap.Error(err))
			s.alerter.IntegrityAlert(err.Error())
			return err
		}
		if err := s.repo.Update(ctx, counter); err != nil {
			return err
		}
		return s.audit.SaveResourceLog(ctx, &domain.ResourceAuditLog{
			HospitalID:   hospitalID,
			ResourceType: resourceType,
			ChangeType:   domain.ReleaseChange,
			OldValue:     oldAvailable,
			NewValue:     counter.Available,
			Delta:        freed,
			BookingID:    bookingID,
			PerformedBy:  performedBy,
			Reason:       reason,
			CreatedAt:    time.Now(),
		})
	})
}

// SetCapacity sets the total for a hospital resource. Units already
// occupied, reserved or in maintenance cannot be removed.
func (s *Service) SetCapacity(ctx context.Context, hospitalID int, resourceType string, total, performedBy int, reason string) error {
	if total < 0 {
		return ErrInvalidCapacity
	}
	if !domain.ValidResourceType(resourceType) {
		return ErrCounterNotFound
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		counter, err := s.repo.GetForUpdate(ctx, hospitalID, resourceType)
		if err != nil {
			return err
		}
		if counter == nil {
			counter = &domain.ResourceCounter{HospitalID: hospitalID, ResourceType: resourceType}
		}

		committed := counter.Occupied + counter.Reserved + counter.Maintenance
		if total < committed {
			return ErrInvalidCapacity
		}

		oldTotal := counter.Total
		counter.Total = total
		counter.Available = total - committed
		if err := checkIntegrity(counter); err != nil {
			zap.L().Error("capacity change aborted", zap.Error(err))
			s.alerter.IntegrityAlert(err.Error())
			return err
		}
		if err := s.repo.Upsert(ctx, counter); err != nil {
			return err
		}
		return s.audit.SaveResourceLog(ctx, &domain.ResourceAuditLog{
			HospitalID:   hospitalID,
			ResourceType: resourceType,
			ChangeType:   domain.CapacityChange,
			OldValue:     oldTotal,
			NewValue:     total,
			Delta:        total - oldTotal,
			PerformedBy:  performedBy,
			Reason:       reason,
			CreatedAt:    time.Now(),
		})
	})
}

// SetMaintenance moves units between available and maintenance.
func (s *Service) SetMaintenance(ctx context.Context, hospitalID int, resourceType string, units, performedBy int, reason string) error {
	return s.shift(ctx, hospitalID, resourceType, units, performedBy, reason, domain.MaintenanceChange)
}

// SetReserved moves units between available and reserved.
func (s *Service) SetReserved(ctx context.Context, hospitalID int, resourceType string, units, performedBy int, reason string) error {
	return s.shift(ctx, hospitalID, resourceType, units, performedBy, reason, domain.ReservedChange)
}

func (s *Service) shift(ctx context.Context, hospitalID int, resourceType string, units, performedBy int, reason, changeType string) error {
	if units < 0 {
		return ErrInvalidQuantity
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		counter, err := s.repo.GetForUpdate(ctx, hospitalID, resourceType)
		if err != nil {
			return err
		}
		if counter == nil {
			return ErrCounterNotFound
		}

		current := counter.Maintenance
		if changeType == domain.ReservedChange {
			current = counter.Reserved
		}
		delta := units - current
		if delta > counter.Available {
			return ErrResourceUnavailable
		}

		counter.Available -= delta
		if changeType == domain.ReservedChange {
			counter.Reserved = units
		} else {
			counter.Maintenance = units
		}
		if err := checkIntegrity(counter); err != nil {
			zap.L().Error("counter adjustment aborted", zap.Error(err))
			s.alerter.IntegrityAlert(err.Error())
			return err
		}
		if err := s.repo.Update(ctx, counter); err != nil {
			return err
		}
		return s.audit.SaveResourceLog(ctx, &domain.ResourceAuditLog{
			HospitalID:   hospitalID,
			ResourceType: resourceType,
			ChangeType:   changeType,
			OldValue:     current,
			NewValue:     units,
			Delta:        delta,
			PerformedBy:  performedBy,
			Reason:       reason,
			CreatedAt:    time.Now(),
		})
	})
}

type Utilization struct {
	ResourceType          string
	Total                 int
	Available             int
	Occupied              int
	Reserved              int
	Maintenance           int
	UtilizationPercentage float64
}

func (s *Service) GetUtilization(ctx context.Context, hospitalID int) ([]Utilization, error) {
	counters, err := s.repo.ListByHospital(ctx, hospitalID)
	if err != nil {
		zap.L().Error("failed to get utilization", zap.Error(err))
		return nil, err
	}

	result := make([]Utilization, 0, len(counters))
	for _, c := range counters {
		u := Utilization{
			ResourceType: c.ResourceType,
			Total:        c.Total,
			Available:    c.Available,
			Occupied:     c.Occupied,
			Reserved:     c.Reserved,
			Maintenance:  c.Maintenance,
		}
		if c.Total > 0 {
			u.UtilizationPercentage = float64(c.Occupied) / float64(c.Total) * 100
		}
		result = append(result, u)
	}
	return result, nil
}
