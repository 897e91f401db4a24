package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/dto"
	"github.com/asifrahman/medibook/internal/service/paymentservice"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/money"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, body string, cap auth.Capability, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.CapabilityKey, cap)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}

func TestProcessPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)
	patient := auth.NewCapability(1, domain.PatientUserType, 0)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful payment",
			body: `{"booking_id":10,"amount":3000,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(3000), "TXN-1", false).
					Return(&paymentservice.Result{
						Transaction: &domain.Transaction{
							TransactionID:  "TXN-1",
							BookingID:      10,
							Amount:         money.FromTaka(3000),
							ServiceCharge:  money.FromTaka(150),
							HospitalAmount: money.FromTaka(2850),
							Status:         domain.CompletedTransactionStatus,
						},
						BalanceAfter: money.FromTaka(2000),
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Booking not found",
			body: `{"booking_id":10,"amount":3000,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(3000), "TXN-1", false).
					Return(nil, paymentservice.ErrBookingNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not the booking owner",
			body: `{"booking_id":10,"amount":3000,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(3000), "TXN-1", false).
					Return(nil, paymentservice.ErrUnauthorized)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "Already processed",
			body: `{"booking_id":10,"amount":3000,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(3000), "TXN-1", false).
					Return(nil, paymentservice.ErrAlreadyProcessed)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Booking not payable",
			body: `{"booking_id":10,"amount":3000,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(3000), "TXN-1", false).
					Return(nil, paymentservice.ErrBookingNotPayable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Amount mismatch",
			body: `{"booking_id":10,"amount":2500,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(2500), "TXN-1", false).
					Return(nil, &paymentservice.AmountMismatchError{
						Expected:  money.FromTaka(3000),
						Submitted: money.FromTaka(2500),
					})
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Insufficient balance",
			body: `{"booking_id":10,"amount":3000,"transaction_ref":"TXN-1"}`,
			prepareMock: func() {
				service.EXPECT().ProcessPayment(gomock.Any(), 10, 1, money.FromTaka(3000), "TXN-1", false).
					Return(nil, &paymentservice.InsufficientBalanceError{
						Required:  money.FromTaka(3000),
						Current:   money.FromTaka(1000),
						Shortfall: money.FromTaka(2000),
					})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Missing transaction ref",
			body:         `{"booking_id":10,"amount":3000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/payments", tt.body, patient, nil)
			rr := httptest.NewRecorder()

			handler.ProcessPayment(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.ProcessPaymentResponseDTO
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "TXN-1", resp.Transaction.TransactionID)
				assert.Equal(t, float64(2000), resp.Balance)
			}
		})
	}
}

func TestRefundHandler(t *testing.T) {
	handler, service := NewMock(t)
	authority := auth.NewCapability(7, domain.AuthorityUserType, 2)

	tests := []struct {
		name         string
		id           string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful refund",
			id:   "10",
			body: `{"reason":"patient request"}`,
			prepareMock: func() {
				service.EXPECT().Refund(gomock.Any(), 10, authority, "patient request").Return(&domain.Transaction{
					TransactionID: "TXN-1",
					Amount:        money.FromTaka(3000),
					Status:        domain.RefundedTransactionStatus,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Not refundable",
			id:   "10",
			prepareMock: func() {
				service.EXPECT().Refund(gomock.Any(), 10, authority, "").Return(nil, paymentservice.ErrNotRefundable)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid booking id",
			id:           "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/payments/"+tt.id+"/refund", tt.body, authority, map[string]string{"id": tt.id})
			rr := httptest.NewRecorder()

			handler.Refund(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service := NewMock(t)
	patient := auth.NewCapability(1, domain.PatientUserType, 0)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deposit",
			body: `{"amount":1000,"reference":"DEP-1"}`,
			prepareMock: func() {
				service.EXPECT().Deposit(gomock.Any(), 1, money.FromTaka(1000), "DEP-1").Return(&domain.UserBalance{
					UserID:         1,
					CurrentBalance: money.FromTaka(1000),
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Non-positive amount",
			body:         `{"amount":0,"reference":"DEP-1"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := newRequest("POST", "/api/balance/deposit", tt.body, patient, nil)
			rr := httptest.NewRecorder()

			handler.Deposit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	patient := auth.NewCapability(1, domain.PatientUserType, 0)

	service.EXPECT().GetBalance(gomock.Any(), 1).Return(&domain.UserBalance{
		UserID:           1,
		CurrentBalance:   money.FromTaka(2000),
		TotalEarnings:    money.FromTaka(5000),
		TotalWithdrawals: money.FromTaka(3000),
	}, nil)

	req := newRequest("GET", "/api/balance", "", patient, nil)
	rr := httptest.NewRecorder()

	handler.GetBalance(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp dto.BalanceResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, float64(2000), resp.Current)
	assert.Equal(t, float64(5000), resp.Earnings)
}

func TestGetMovementsHandler(t *testing.T) {
	handler, service := NewMock(t)
	patient := auth.NewCapability(1, domain.PatientUserType, 0)

	service.EXPECT().GetMovements(gomock.Any(), 1).Return([]domain.BalanceTransaction{
		{
			TransactionType: domain.PaymentSentTxnType,
			Amount:          -money.FromTaka(3000),
			BalanceBefore:   money.FromTaka(5000),
			BalanceAfter:    money.FromTaka(2000),
			Reference:       "TXN-1",
		},
	}, nil)

	req := newRequest("GET", "/api/balance/movements", "", patient, nil)
	rr := httptest.NewRecorder()

	handler.GetMovements(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp []dto.BalanceMovementResponseDTO
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, domain.PaymentSentTxnType, resp[0].TransactionType)
}
