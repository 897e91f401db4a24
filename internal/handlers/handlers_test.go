package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/asifrahman/medibook/docs"
	"github.com/asifrahman/medibook/internal/handlers/auth"
	"github.com/asifrahman/medibook/internal/handlers/bookings"
	"github.com/asifrahman/medibook/internal/handlers/payments"
	"github.com/asifrahman/medibook/internal/handlers/resources"
	"github.com/asifrahman/medibook/internal/service"
	"github.com/asifrahman/medibook/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     auth.NewMockService(ctrl),
		BookingService:  bookings.NewMockService(ctrl),
		PaymentService:  payments.NewMockService(ctrl),
		ResourceService: resources.NewMockResourceService(ctrl),
		PricingService:  resources.NewMockPricingService(ctrl),
	}

	h := New(services, ratelimit.NewMemoryStore(30))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockResourceHandler := NewMockResourceHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().GetBookings(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().ProcessPayment(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockResourceHandler.EXPECT().SetCapacity(gomock.Any(), gomock.Any()).AnyTimes()
	mockResourceHandler.EXPECT().GetUtilization(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		BookingHandler:  mockBookingHandler,
		PaymentHandler:  mockPaymentHandler,
		ResourceHandler: mockResourceHandler,
		limiter:         ratelimit.NewMemoryStore(100),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"POST", "/api/bookings/", http.StatusUnauthorized},
		{"GET", "/api/bookings/", http.StatusUnauthorized},
		{"POST", "/api/payments/", http.StatusUnauthorized},
		{"GET", "/api/balance/", http.StatusUnauthorized},
		{"POST", "/api/balance/deposit", http.StatusUnauthorized},
		{"GET", "/api/hospitals/1/utilization", http.StatusUnauthorized},
		{"PUT", "/api/hospitals/1/capacity", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
