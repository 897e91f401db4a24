package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/dto"
	"github.com/asifrahman/medibook/internal/service/paymentservice"
	"github.com/asifrahman/medibook/internal/service/pricingservice"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/money"
	"github.com/asifrahman/medibook/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	ProcessPayment(ctx context.Context, bookingID, payerID int, submitted money.Amount, transactionRef string, rapidAssistance bool) (*paymentservice.Result, error)
	Refund(ctx context.Context, bookingID int, cap auth.Capability, reason string) (*domain.Transaction, error)
	Deposit(ctx context.Context, userID int, amount money.Amount, reference string) (*domain.UserBalance, error)
	GetBalance(ctx context.Context, userID int) (*domain.UserBalance, error)
	GetMovements(ctx context.Context, userID int) ([]domain.BalanceTransaction, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func toTransactionDTO(t *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		TransactionID:  t.TransactionID,
		BookingID:      t.BookingID,
		Amount:         t.Amount.Taka(),
		ServiceCharge:  t.ServiceCharge.Taka(),
		HospitalAmount: t.HospitalAmount.Taka(),
		PaymentMethod:  t.PaymentMethod,
		Status:         t.Status,
		ProcessedAt:    t.ProcessedAt,
	}
}

// ProcessPayment godoc
//
//	@Summary		Pay for an approved booking
//	@Description	Debits the payer's wallet and settles the amount between hospital and platform
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProcessPaymentRequestDTO	true	"Payment request body"
//	@Success		200		{object}	dto.ProcessPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Already processed"
//	@Failure		422		{object}	utils.Response	"Amount mismatch or ineligible"
//	@Security		ApiKeyAuth
//	@Router			/api/payments [post]
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.ProcessPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.paymentService.ProcessPayment(r.Context(), req.BookingID, cap.ActorID,
		money.FromTaka(req.Amount), req.TransactionRef, req.RapidAssistance)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProcessPaymentResponseDTO{
		Transaction: toTransactionDTO(result.Transaction),
		Balance:     result.BalanceAfter.Taka(),
	})
}

func respondPaymentError(w http.ResponseWriter, err error) {
	var mismatch *paymentservice.AmountMismatchError
	var insufficient *paymentservice.InsufficientBalanceError
	switch {
	case errors.Is(err, paymentservice.ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, paymentservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, paymentservice.ErrAlreadyProcessed),
		errors.Is(err, paymentservice.ErrBookingNotPayable),
		errors.Is(err, paymentservice.ErrNotRefundable):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, paymentservice.ErrRapidAssistanceIneligible),
		errors.Is(err, pricingservice.ErrPricingNotConfigured),
		errors.As(err, &mismatch):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &insufficient):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Refund godoc
//
//	@Summary		Refund a cancelled paid booking
//	@Description	Returns the payment to the payer and reverses the revenue split
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Booking ID"
//	@Param			request	body		dto.RefundRequestDTO	false	"Optional reason"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Not refundable"
//	@Security		ApiKeyAuth
//	@Router			/api/payments/{id}/refund [post]
func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}

	var req dto.RefundRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	txn, err := h.paymentService.Refund(r.Context(), id, cap, req.Reason)
	if err != nil {
		respondPaymentError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// Deposit godoc
//
//	@Summary	Top up the caller's wallet
//	@Tags		Payments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.DepositRequestDTO	true	"Deposit request body"
//	@Success	200		{object}	dto.BalanceResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Security	ApiKeyAuth
//	@Router		/api/balance/deposit [post]
func (h *PaymentHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := h.paymentService.Deposit(r.Context(), cap.ActorID, money.FromTaka(req.Amount), req.Reference)
	if err != nil {
		if errors.Is(err, paymentservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:     balance.CurrentBalance.Taka(),
		Earnings:    balance.TotalEarnings.Taka(),
		Withdrawals: balance.TotalWithdrawals.Taka(),
	})
}

// GetBalance godoc
//
//	@Summary	Get the caller's wallet balance
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{object}	dto.BalanceResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Security	ApiKeyAuth
//	@Router		/api/balance [get]
func (h *PaymentHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	balance, err := h.paymentService.GetBalance(r.Context(), cap.ActorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Current:     balance.CurrentBalance.Taka(),
		Earnings:    balance.TotalEarnings.Taka(),
		Withdrawals: balance.TotalWithdrawals.Taka(),
	})
}

// GetMovements godoc
//
//	@Summary	List the caller's balance movements
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{array}		dto.BalanceMovementResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Security	ApiKeyAuth
//	@Router		/api/balance/movements [get]
func (h *PaymentHandler) GetMovements(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	movements, err := h.paymentService.GetMovements(r.Context(), cap.ActorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BalanceMovementResponseDTO, 0, len(movements))
	for _, m := range movements {
		resp = append(resp, dto.BalanceMovementResponseDTO{
			TransactionType: m.TransactionType,
			Amount:          m.Amount.Taka(),
			BalanceBefore:   m.BalanceBefore.Taka(),
			BalanceAfter:    m.BalanceAfter.Taka(),
			Reference:       m.Reference,
			CreatedAt:       m.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetTransactions godoc
//
//	@Summary	List the caller's payment transactions
//	@Tags		Payments
//	@Produce	json
//	@Success	200	{array}		dto.TransactionResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Security	ApiKeyAuth
//	@Router		/api/payments [get]
func (h *PaymentHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	txns, err := h.paymentService.GetTransactions(r.Context(), cap.ActorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.TransactionResponseDTO, 0, len(txns))
	for i := range txns {
		resp = append(resp, toTransactionDTO(&txns[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
