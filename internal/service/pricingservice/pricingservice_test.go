package pricingservice

import (
	"context"
	"errors"
	"testing"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/pkg/money"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestCalculateAmount(t *testing.T) {
	service, repo := NewMock(t)

	icuPricing := &domain.HospitalPricing{
		HospitalID:    3,
		ResourceType:  domain.ICUResource,
		BaseRate:      money.FromTaka(3000),
		HourlyRate:    money.FromTaka(10),
		MinimumCharge: money.FromTaka(500),
		MaximumCharge: money.FromTaka(3200),
	}

	tests := []struct {
		name           string
		durationHours  int
		prepareMock    func()
		expectedTotal  money.Amount
		expectedExtra  int
		maximumApplied bool
		expectedError  error
	}{
		{
			name:          "Base block only",
			durationHours: 24,
			prepareMock: func() {
				repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.ICUResource).Return(icuPricing, nil)
			},
			expectedTotal: money.FromTaka(3000),
		},
		{
			name:          "Additional hours billed hourly",
			durationHours: 40,
			prepareMock: func() {
				repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.ICUResource).Return(icuPricing, nil)
			},
			expectedTotal: money.FromTaka(3160),
			expectedExtra: 16,
		},
		{
			name:          "Maximum charge caps the total",
			durationHours: 120,
			prepareMock: func() {
				repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.ICUResource).Return(icuPricing, nil)
			},
			expectedTotal:  money.FromTaka(3200),
			expectedExtra:  96,
			maximumApplied: true,
		},
		{
			name:          "Duration below one hour",
			durationHours: 0,
			prepareMock:   func() {},
			expectedError: ErrInvalidDuration,
		},
		{
			name:          "No active pricing",
			durationHours: 24,
			prepareMock: func() {
				repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.ICUResource).Return(nil, nil)
			},
			expectedError: ErrPricingNotConfigured,
		},
		{
			name:          "Repository error",
			durationHours: 24,
			prepareMock: func() {
				repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.ICUResource).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			breakdown, err := service.CalculateAmount(context.Background(), 3, domain.ICUResource, tt.durationHours)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, breakdown.Total)
			assert.Equal(t, tt.expectedExtra, breakdown.AdditionalHours)
			assert.Equal(t, tt.maximumApplied, breakdown.MaximumApplied)
		})
	}
}

func TestCalculateAmountMinimumCharge(t *testing.T) {
	service, repo := NewMock(t)

	repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.BedResource).Return(&domain.HospitalPricing{
		HospitalID:    3,
		ResourceType:  domain.BedResource,
		BaseRate:      money.FromTaka(800),
		MinimumCharge: money.FromTaka(1000),
	}, nil)

	breakdown, err := service.CalculateAmount(context.Background(), 3, domain.BedResource, 24)
	assert.NoError(t, err)
	assert.Equal(t, money.FromTaka(1000), breakdown.Total)
	assert.True(t, breakdown.MinimumApplied)
}

func TestValidatePricing(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name          string
		pricing       *domain.HospitalPricing
		expectedError error
		wantWarnings  int
	}{
		{
			name: "Valid pricing",
			pricing: &domain.HospitalPricing{
				ResourceType: domain.ICUResource,
				BaseRate:     money.FromTaka(8000),
				HourlyRate:   money.FromTaka(100),
			},
		},
		{
			name: "Base rate not positive",
			pricing: &domain.HospitalPricing{
				ResourceType: domain.ICUResource,
				BaseRate:     0,
			},
			expectedError: ErrInvalidBaseRate,
		},
		{
			name: "Hourly rate above base rate",
			pricing: &domain.HospitalPricing{
				ResourceType: domain.ICUResource,
				BaseRate:     money.FromTaka(100),
				HourlyRate:   money.FromTaka(200),
			},
			expectedError: ErrInconsistentRates,
		},
		{
			name: "Minimum above maximum",
			pricing: &domain.HospitalPricing{
				ResourceType:  domain.ICUResource,
				BaseRate:      money.FromTaka(8000),
				MinimumCharge: money.FromTaka(9000),
				MaximumCharge: money.FromTaka(5000),
			},
			expectedError: ErrInconsistentCharges,
		},
		{
			name: "Base rate below the advisory band",
			pricing: &domain.HospitalPricing{
				ResourceType: domain.ICUResource,
				BaseRate:     money.FromTaka(1000),
			},
			wantWarnings: 1,
		},
		{
			name: "Base rate above the advisory band",
			pricing: &domain.HospitalPricing{
				ResourceType: domain.BedResource,
				BaseRate:     money.FromTaka(90000),
			},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings, err := service.ValidatePricing(tt.pricing)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, warnings, tt.wantWarnings)
		})
	}
}

func TestSetPricing(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Installs a valid rate card", func(t *testing.T) {
		pricing := &domain.HospitalPricing{
			HospitalID:   3,
			ResourceType: domain.ICUResource,
			BaseRate:     money.FromTaka(8000),
		}
		repo.EXPECT().Replace(gomock.Any(), pricing).Return(nil)

		warnings, err := service.SetPricing(context.Background(), pricing)
		assert.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("Rejects unknown resource type", func(t *testing.T) {
		_, err := service.SetPricing(context.Background(), &domain.HospitalPricing{
			ResourceType: "ambulance",
			BaseRate:     money.FromTaka(100),
		})
		assert.ErrorIs(t, err, ErrPricingNotConfigured)
	})

	t.Run("Repository failure surfaces", func(t *testing.T) {
		pricing := &domain.HospitalPricing{
			HospitalID:   3,
			ResourceType: domain.BedResource,
			BaseRate:     money.FromTaka(1000),
		}
		repo.EXPECT().Replace(gomock.Any(), pricing).Return(errors.New("some error"))

		_, err := service.SetPricing(context.Background(), pricing)
		assert.Error(t, err)
	})
}

func TestGetCurrent(t *testing.T) {
	service, repo := NewMock(t)

	t.Run("Active pricing found", func(t *testing.T) {
		repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.BedResource).Return(&domain.HospitalPricing{ID: 1}, nil)

		pricing, err := service.GetCurrent(context.Background(), 3, domain.BedResource)
		assert.NoError(t, err)
		assert.Equal(t, 1, pricing.ID)
	})

	t.Run("No active pricing", func(t *testing.T) {
		repo.EXPECT().GetCurrent(gomock.Any(), 3, domain.BedResource).Return(nil, nil)

		_, err := service.GetCurrent(context.Background(), 3, domain.BedResource)
		assert.ErrorIs(t, err, ErrPricingNotConfigured)
	})
}
