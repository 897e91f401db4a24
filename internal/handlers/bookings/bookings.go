package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/dto"
	"github.com/asifrahman/medibook/internal/service/bookingservice"
	"github.com/asifrahman/medibook/internal/service/resourceservice"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Submit(ctx context.Context, req *bookingservice.SubmitRequest) (*domain.Booking, error)
	Approve(ctx context.Context, bookingID int, cap auth.Capability, notes string) (*domain.Booking, error)
	Decline(ctx context.Context, bookingID int, cap auth.Capability, reason, notes string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID int, cap auth.Capability, reason string) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID int, cap auth.Capability) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID int) (*domain.Booking, error)
	GetHistory(ctx context.Context, bookingID int) ([]domain.BookingStatusHistory, error)
	ListForUser(ctx context.Context, userID int) ([]domain.Booking, error)
	ListForHospital(ctx context.Context, hospitalID int, status string, cap auth.Capability) ([]domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
}

func New(bookingService Service) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

func toBookingDTO(b *domain.Booking) dto.BookingResponseDTO {
	return dto.BookingResponseDTO{
		ID:                    b.ID,
		BookingReference:      b.BookingReference,
		HospitalID:            b.HospitalID,
		ResourceType:          b.ResourceType,
		PatientName:           b.PatientName,
		PatientAge:            b.PatientAge,
		Urgency:               b.Urgency,
		EstimatedDurationHrs:  b.EstimatedDurationHrs,
		Status:                b.Status,
		PaymentStatus:         b.PaymentStatus,
		PaymentAmount:         b.PaymentAmount.Taka(),
		RapidAssistance:       b.RapidAssistance,
		RapidAssistanceCharge: b.RapidAssistanceCharge.Taka(),
		DeclineReason:         b.DeclineReason,
		ApprovedAt:            b.ApprovedAt,
		CreatedAt:             b.CreatedAt,
	}
}

// CreateBooking godoc
//
//	@Summary		Submit a booking request
//	@Description	Request a hospital resource for a patient; the booking starts as pending
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateBookingRequestDTO	true	"Booking request body"
//	@Success		201		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Validation failed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		ApiKeyAuth
//	@Router			/api/bookings [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateBookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.bookingService.Submit(r.Context(), &bookingservice.SubmitRequest{
		UserID:                 cap.ActorID,
		HospitalID:             req.HospitalID,
		ResourceType:           req.ResourceType,
		PatientName:            req.PatientName,
		PatientAge:             req.PatientAge,
		PatientGender:          req.PatientGender,
		MedicalCondition:       req.MedicalCondition,
		Urgency:                req.Urgency,
		EstimatedDurationHours: req.EstimatedDurationHrs,
		RapidAssistance:        req.RapidAssistance,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrInvalidPatientAge),
			errors.Is(err, bookingservice.ErrInvalidUrgency),
			errors.Is(err, bookingservice.ErrInvalidResourceType),
			errors.Is(err, bookingservice.ErrRapidAssistanceIneligible):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBookingDTO(booking))
}

// GetBooking godoc
//
//	@Summary	Get a booking
//	@Tags		Bookings
//	@Produce	json
//	@Param		id	path		int	true	"Booking ID"
//	@Success	200	{object}	dto.BookingResponseDTO
//	@Failure	404	{object}	utils.Response	"Booking not found"
//	@Security	ApiKeyAuth
//	@Router		/api/bookings/{id} [get]
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}
	booking, err := h.bookingService.GetBooking(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

// GetBookings godoc
//
//	@Summary	List the caller's bookings
//	@Tags		Bookings
//	@Produce	json
//	@Success	200	{array}		dto.BookingResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Security	ApiKeyAuth
//	@Router		/api/bookings [get]
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	list, err := h.bookingService.ListForUser(r.Context(), cap.ActorID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BookingResponseDTO, 0, len(list))
	for i := range list {
		resp = append(resp, toBookingDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHospitalBookings godoc
//
//	@Summary	List bookings of a hospital
//	@Tags		Bookings
//	@Produce	json
//	@Param		id		path		int		true	"Hospital ID"
//	@Param		status	query		string	false	"Filter by booking status"
//	@Success	200		{array}		dto.BookingResponseDTO
//	@Failure	403		{object}	utils.Response	"Forbidden"
//	@Security	ApiKeyAuth
//	@Router		/api/hospitals/{id}/bookings [get]
func (h *BookingHandler) GetHospitalBookings(w http.ResponseWriter, r *http.Request) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	hospitalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid hospital id")
		return
	}
	list, err := h.bookingService.ListForHospital(r.Context(), hospitalID, r.URL.Query().Get("status"), cap)
	if err != nil {
		if errors.Is(err, bookingservice.ErrUnauthorized) {
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BookingResponseDTO, 0, len(list))
	for i := range list {
		resp = append(resp, toBookingDTO(&list[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetHistory godoc
//
//	@Summary	Get the status history of a booking
//	@Tags		Bookings
//	@Produce	json
//	@Param		id	path		int	true	"Booking ID"
//	@Success	200	{array}		dto.BookingHistoryResponseDTO
//	@Failure	404	{object}	utils.Response	"Booking not found"
//	@Security	ApiKeyAuth
//	@Router		/api/bookings/{id}/history [get]
func (h *BookingHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking id")
		return
	}
	history, err := h.bookingService.GetHistory(r.Context(), id)
	if err != nil {
		if errors.Is(err, bookingservice.ErrBookingNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BookingHistoryResponseDTO, 0, len(history))
	for _, h := range history {
		resp = append(resp, dto.BookingHistoryResponseDTO{
			OldStatus: h.OldStatus,
			NewStatus: h.NewStatus,
			ChangedBy: h.ChangedBy,
			Reason:    h.Reason,
			Notes:     h.Notes,
			ChangedAt: h.ChangedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Approve godoc
//
//	@Summary		Approve a pending booking
//	@Description	Allocates one resource unit and moves the booking to approved
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Booking ID"
//	@Param			request	body		dto.DecisionRequestDTO	false	"Optional notes"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Conflict"
//	@Security		ApiKeyAuth
//	@Router			/api/bookings/{id}/approve [post]
func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(ctx context.Context, id int, cap auth.Capability, req dto.DecisionRequestDTO) (*domain.Booking, error) {
		return h.bookingService.Approve(ctx, id, cap, req.Notes)
	})
}

// Decline godoc
//
//	@Summary		Decline a pending booking
//	@Description	Declines the booking; a reason is mandatory
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Booking ID"
//	@Param			request	body		dto.DecisionRequestDTO	true	"Decline reason"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Conflict"
//	@Failure		422		{object}	utils.Response	"Reason missing"
//	@Security		ApiKeyAuth
//	@Router			/api/bookings/{id}/decline [post]
func (h *BookingHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(ctx context.Context, id int, cap auth.Capability, req dto.DecisionRequestDTO) (*domain.Booking, error) {
		return h.bookingService.Decline(ctx, id, cap, req.Reason, req.Notes)
	})
}

// Cancel godoc
//
//	@Summary		Cancel a booking
//	@Description	Cancels a pending or approved booking; an approved one frees its resource unit
//	@Tags			Bookings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Booking ID"
//	@Param			request	body		dto.DecisionRequestDTO	false	"Optional reason"
//	@Success		200		{object}	dto.BookingResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		404		{object}	utils.Response	"Booking not found"
//	@Failure		409		{object}	utils.Response	"Conflict"
//	@Security		ApiKeyAuth
//	@Router			/api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(ctx context.Context, id int, cap auth.Capability, req dto.DecisionRequestDTO) (*domain.Booking, error) {
		return h.bookingService.Cancel(ctx, id, cap, req.Reason)
	})
}

// Complete godoc
//
//	@Summary		Complete a booking
//	@Description	Marks an approved booking completed; the unit stays occupied until discharge is recorded
//	@Tags			Bookings
//	@Produce		json
//	@Param			id	path		int	true	"Booking ID"
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Booking not found"
//	@Failure		409	{object}	utils.Response	"Conflict"
//	@Security		ApiKeyAuth
//	@Router			/api/bookings/{id}/complete [post]
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, func(ctx context.Context, id int, cap auth.Capability, _ dto.DecisionRequestDTO) (*domain.Booking, error) {
		return h.bookingService.Complete(ctx, id, cap)
	})
}

func (h *BookingHandler) decide(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, id int, cap auth.Capability, req dto.DecisionRequestDTO) (*domain.Booking, error)) {
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

	var req dto.DecisionRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	booking, err := fn(r.Context(), id, cap, req)
	if err != nil {
		respondTransitionError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBookingDTO(booking))
}

func respondTransitionError(w http.ResponseWriter, err error) {
	var integrity *resourceservice.IntegrityError
	switch {
	case errors.Is(err, bookingservice.ErrBookingNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bookingservice.ErrInvalidTransition),
		errors.Is(err, resourceservice.ErrResourceUnavailable):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, bookingservice.ErrDeclineReasonRequired):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &integrity):
		// never leak counter internals to the caller
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
