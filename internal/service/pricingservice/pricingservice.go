package pricingservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/pkg/money"
	"go.uber.org/zap"
)

type Repo interface {
	GetCurrent(ctx context.Context, hospitalID int, resourceType string) (*domain.HospitalPricing, error)
	Replace(ctx context.Context, pricing *domain.HospitalPricing) error
	History(ctx context.Context, hospitalID int, resourceType string) ([]domain.HospitalPricing, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrPricingNotConfigured = errors.New("pricing not configured")
	ErrInvalidDuration      = errors.New("duration must be at least one hour")
	ErrInvalidBaseRate      = errors.New("base rate must be positive")
	ErrInconsistentRates    = errors.New("hourly rate exceeds base rate")
	ErrInconsistentCharges  = errors.New("minimum charge exceeds maximum charge")
)

// baseBlockHours is the stay length the base rate covers; hours beyond
// it are billed at the hourly rate.
const baseBlockHours = 24

// rateBand is the advisory sanity range for a resource type's base rate,
// in taka. Rates outside it produce warnings, never a failure.
type rateBand struct {
	min float64
	max float64
}

var rateBands = map[string]rateBand{
	domain.BedResource:     {min: 500, max: 50000},
	domain.ICUResource:     {min: 5000, max: 200000},
	domain.TheatreResource: {min: 10000, max: 500000},
}

// Breakdown itemizes a calculated booking cost. Total is the only field
// rounded for display; internal math is exact paisa arithmetic.
type Breakdown struct {
	BaseCharge      money.Amount
	AdditionalHours int
	HourlyCharge    money.Amount
	Subtotal        money.Amount
	Total           money.Amount
	MinimumApplied  bool
	MaximumApplied  bool
}

// CalculateAmount prices a stay of durationHours against the hospital's
// current active rate card.
func (s *Service) CalculateAmount(ctx context.Context, hospitalID int, resourceType string, durationHours int) (*Breakdown, error) {
	if durationHours < 1 {
		return nil, ErrInvalidDuration
	}

	pricing, err := s.repo.GetCurrent(ctx, hospitalID, resourceType)
	if err != nil {
		zap.L().Error("failed to load pricing", zap.Error(err))
		return nil, err
	}
	if pricing == nil {
		return nil, ErrPricingNotConfigured
	}

	b := &Breakdown{BaseCharge: pricing.BaseRate}
	if durationHours > baseBlockHours {
		b.AdditionalHours = durationHours - baseBlockHours
		b.HourlyCharge = pricing.HourlyRate * money.Amount(b.AdditionalHours)
	}
	b.Subtotal = b.BaseCharge + b.HourlyCharge

	b.Total = b.Subtotal.Clamp(pricing.MinimumCharge, pricing.MaximumCharge)
	b.MinimumApplied = b.Total > b.Subtotal
	b.MaximumApplied = b.Total < b.Subtotal

	return b, nil
}

// ValidatePricing applies the hard consistency rules and returns advisory
// warnings for rates outside the expected band for the resource type.
func (s *Service) ValidatePricing(pricing *domain.HospitalPricing) ([]string, error) {
	if pricing.BaseRate <= 0 {
		return nil, ErrInvalidBaseRate
	}
	if pricing.HourlyRate > 0 && pricing.HourlyRate > pricing.BaseRate {
		return nil, ErrInconsistentRates
	}
	if pricing.MaximumCharge > 0 && pricing.MinimumCharge > pricing.MaximumCharge {
		return nil, ErrInconsistentCharges
	}

	var warnings []string
	if band, ok := rateBands[pricing.ResourceType]; ok {
		rate := pricing.BaseRate.Taka()
		if rate < band.min {
			warnings = append(warnings, fmt.Sprintf("base rate %.2f below the usual range for %s (%.0f–%.0f)", rate, pricing.ResourceType, band.min, band.max))
		}
		if rate > band.max {
			warnings = append(warnings, fmt.Sprintf("base rate %.2f above the usual range for %s (%.0f–%.0f)", rate, pricing.ResourceType, band.min, band.max))
		}
	}
	return warnings, nil
}

// SetPricing validates and installs a new rate card revision. The
// superseded revision stays in the table as history.
func (s *Service) SetPricing(ctx context.Context, pricing *domain.HospitalPricing) ([]string, error) {
	if !domain.ValidResourceType(pricing.ResourceType) {
		return nil, ErrPricingNotConfigured
	}
	warnings, err := s.ValidatePricing(pricing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Replace(ctx, pricing); err != nil {
		zap.L().Error("failed to save pricing", zap.Error(err))
		return nil, err
	}
	for _, w := range warnings {
		zap.L().Warn("pricing warning", zap.Int("hospital_id", pricing.HospitalID), zap.String("warning", w))
	}
	return warnings, nil
}

func (s *Service) GetCurrent(ctx context.Context, hospitalID int, resourceType string) (*domain.HospitalPricing, error) {
	pricing, err := s.repo.GetCurrent(ctx, hospitalID, resourceType)
	if err != nil {
		return nil, err
	}
	if pricing == nil {
		return nil, ErrPricingNotConfigured
	}
	return pricing, nil
}

func (s *Service) GetHistory(ctx context.Context, hospitalID int, resourceType string) ([]domain.HospitalPricing, error) {
	return s.repo.History(ctx, hospitalID, resourceType)
}
