package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/dto"
	"github.com/asifrahman/medibook/internal/service/pricingservice"
	"github.com/asifrahman/medibook/internal/service/resourceservice"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/money"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*ResourceHandler, *MockResourceService, *MockPricingService) {
	ctrl := gomock.NewController(t)
	resourceService := NewMockResourceService(ctrl)
	pricingService := NewMockPricingService(ctrl)
	handler := New(resourceService, pricingService)
	defer ctrl.Finish()
	return handler, resourceService, pricingService
}

func newRequest(method, target, body string, cap auth.Capability, hospitalID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.CapabilityKey, cap)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", hospitalID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestSetCapacityHandler(t *testing.T) {
	handler, resourceService, _ := NewMock(t)
	authority := auth.NewCapability(7, domain.AuthorityUserType, 2)

	tests := []struct {
		name         string
		cap          auth.Capability
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Capacity updated",
			cap:  authority,
			body: `{"resource_type":"bed","total":20,"reason":"new ward"}`,
			prepareMock: func() {
				resourceService.EXPECT().SetCapacity(gomock.Any(), 2, domain.BedResource, 20, 7, "new ward").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Below committed units",
			cap:  authority,
			body: `{"resource_type":"bed","total":2}`,
			prepareMock: func() {
				resourceService.EXPECT().SetCapacity(gomock.Any(), 2, domain.BedResource, 2, 7, "").
					Return(resourceservice.ErrInvalidCapacity)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Wrong hospital",
			cap:          auth.NewCapability(8, domain.AuthorityUserType, 3),
			body:         `{"resource_type":"bed","total":20}`,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Patient may not manage capacity",
			cap:          auth.NewCapability(1, domain.PatientUserType, 0),
			body:         `{"resource_type":"bed","total":20}`,
			prepareMock:  func() {},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Invalid request body",
			cap:          authority,
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PUT", "/api/hospitals/2/capacity", tt.body, tt.cap, "2")
			rr := httptest.NewRecorder()

			handler.SetCapacity(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestSetMaintenanceHandler(t *testing.T) {
	handler, resourceService, _ := NewMock(t)
	authority := auth.NewCapability(7, domain.AuthorityUserType, 2)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Units moved to maintenance",
			body: `{"resource_type":"bed","units":3,"reason":"quarterly service"}`,
			prepareMock: func() {
				resourceService.EXPECT().SetMaintenance(gomock.Any(), 2, domain.BedResource, 3, 7, "quarterly service").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not enough free units",
			body: `{"resource_type":"bed","units":9}`,
			prepareMock: func() {
				resourceService.EXPECT().SetMaintenance(gomock.Any(), 2, domain.BedResource, 9, 7, "").
					Return(resourceservice.ErrResourceUnavailable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Counter not configured",
			body: `{"resource_type":"icu","units":1}`,
			prepareMock: func() {
				resourceService.EXPECT().SetMaintenance(gomock.Any(), 2, domain.ICUResource, 1, 7, "").
					Return(resourceservice.ErrCounterNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/hospitals/2/maintenance", tt.body, authority, "2")
			rr := httptest.NewRecorder()

			handler.SetMaintenance(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetUtilizationHandler(t *testing.T) {
	handler, resourceService, _ := NewMock(t)
	patient := auth.NewCapability(1, domain.PatientUserType, 0)

	resourceService.EXPECT().GetUtilization(gomock.Any(), 2).Return([]resourceservice.Utilization{
		{ResourceType: domain.BedResource, Total: 10, Available: 4, Occupied: 5, Reserved: 1, UtilizationPercentage: 50},
	}, nil)

	req := newRequest("GET", "/api/hospitals/2/utilization", "", patient, "2")
	rr := httptest.NewRecorder()

	handler.GetUtilization(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.UtilizationResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, float64(50), resp[0].UtilizationPercentage)
}

func TestSetPricingHandler(t *testing.T) {
	handler, _, pricingService := NewMock(t)
	authority := auth.NewCapability(7, domain.AuthorityUserType, 2)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Pricing replaced",
			body: `{"resource_type":"icu","base_rate":8000,"hourly_rate":300,"minimum_charge":8000,"maximum_charge":50000}`,
			prepareMock: func() {
				pricingService.EXPECT().SetPricing(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.HospitalPricing) ([]string, error) {
						assert.Equal(t, 2, p.HospitalID)
						assert.Equal(t, money.FromTaka(8000), p.BaseRate)
						return nil, nil
					})
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Pricing outside the advisory band",
			body: `{"resource_type":"icu","base_rate":1000,"hourly_rate":50,"minimum_charge":1000,"maximum_charge":5000}`,
			prepareMock: func() {
				pricingService.EXPECT().SetPricing(gomock.Any(), gomock.Any()).
					Return([]string{"base rate below the customary band for icu"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Hourly rate above base rate",
			body: `{"resource_type":"icu","base_rate":8000,"hourly_rate":9000,"minimum_charge":8000,"maximum_charge":50000}`,
			prepareMock: func() {
				pricingService.EXPECT().SetPricing(gomock.Any(), gomock.Any()).
					Return(nil, pricingservice.ErrInconsistentRates)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("PUT", "/api/hospitals/2/pricing", tt.body, authority, "2")
			rr := httptest.NewRecorder()

			handler.SetPricing(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.name == "Pricing outside the advisory band" {
				var resp dto.PricingResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp.Warnings, 1)
			}
		})
	}
}

func TestGetPricingHandler(t *testing.T) {
	handler, _, pricingService := NewMock(t)
	patient := auth.NewCapability(1, domain.PatientUserType, 0)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Active pricing found",
			target: "/api/hospitals/2/pricing?resource_type=icu",
			prepareMock: func() {
				pricingService.EXPECT().GetCurrent(gomock.Any(), 2, domain.ICUResource).Return(&domain.HospitalPricing{
					HospitalID:   2,
					ResourceType: domain.ICUResource,
					BaseRate:     money.FromTaka(8000),
					IsActive:     true,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "No active pricing",
			target: "/api/hospitals/2/pricing?resource_type=icu",
			prepareMock: func() {
				pricingService.EXPECT().GetCurrent(gomock.Any(), 2, domain.ICUResource).
					Return(nil, pricingservice.ErrPricingNotConfigured)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Unknown resource type",
			target:       "/api/hospitals/2/pricing?resource_type=ambulance",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("GET", tt.target, "", patient, "2")
			rr := httptest.NewRecorder()

			handler.GetPricing(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
