package resources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/dto"
	"github.com/asifrahman/medibook/internal/service/pricingservice"
	"github.com/asifrahman/medibook/internal/service/resourceservice"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/money"
	"github.com/asifrahman/medibook/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type ResourceService interface {
	SetCapacity(ctx context.Context, hospitalID int, resourceType string, total, performedBy int, reason string) error
	SetMaintenance(ctx context.Context, hospitalID int, resourceType string, units, performedBy int, reason string) error
	SetReserved(ctx context.Context, hospitalID int, resourceType string, units, performedBy int, reason string) error
	GetUtilization(ctx context.Context, hospitalID int) ([]resourceservice.Utilization, error)
}

type PricingService interface {
	SetPricing(ctx context.Context, pricing *domain.HospitalPricing) ([]string, error)
	GetCurrent(ctx context.Context, hospitalID int, resourceType string) (*domain.HospitalPricing, error)
	GetHistory(ctx context.Context, hospitalID int, resourceType string) ([]domain.HospitalPricing, error)
}

type ResourceHandler struct {
	resourceService ResourceService
	pricingService  PricingService
}

func New(resourceService ResourceService, pricingService PricingService) *ResourceHandler {
	return &ResourceHandler{
		resourceService: resourceService,
		pricingService:  pricingService,
	}
}

func hospitalFromRequest(w http.ResponseWriter, r *http.Request) (int, auth.Capability, bool) {
	cap, ok := auth.CapabilityFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, auth.Capability{}, false
	}
	hospitalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid hospital id")
		return 0, auth.Capability{}, false
	}
	if !cap.CanActOnHospital(hospitalID) {
		utils.RespondWithError(w, http.StatusForbidden, "actor may not manage this hospital")
		return 0, auth.Capability{}, false
	}
	return hospitalID, cap, true
}

// SetCapacity godoc
//
//	@Summary		Set the total capacity of a resource
//	@Description	Grows or shrinks the counter; shrinking below committed units is rejected
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Hospital ID"
//	@Param			request	body		dto.SetCapacityRequestDTO	true	"Capacity request body"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		409		{object}	utils.Response	"Capacity below committed units"
//	@Security		ApiKeyAuth
//	@Router			/api/hospitals/{id}/capacity [put]
func (h *ResourceHandler) SetCapacity(w http.ResponseWriter, r *http.Request) {
	hospitalID, cap, ok := hospitalFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.SetCapacityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.resourceService.SetCapacity(r.Context(), hospitalID, req.ResourceType, req.Total, cap.ActorID, req.Reason)
	if err != nil {
		respondResourceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Capacity updated"})
}

// SetMaintenance godoc
//
//	@Summary		Move units between available and maintenance
//	@Description	Sets the maintenance level to the given non-negative count; lowering it returns units to available
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Hospital ID"
//	@Param			request	body		dto.ShiftUnitsRequestDTO	true	"Maintenance request body"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		409		{object}	utils.Response	"Not enough available units"
//	@Security		ApiKeyAuth
//	@Router			/api/hospitals/{id}/maintenance [post]
func (h *ResourceHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	h.shift(w, r, h.resourceService.SetMaintenance, "Maintenance units updated")
}

// SetReserved godoc
//
//	@Summary		Move units between available and reserved
//	@Tags			Resources
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Hospital ID"
//	@Param			request	body		dto.ShiftUnitsRequestDTO	true	"Reservation request body"
//	@Success		200		{object}	utils.Response
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		409		{object}	utils.Response	"Not enough available units"
//	@Security		ApiKeyAuth
//	@Router			/api/hospitals/{id}/reserved [post]
func (h *ResourceHandler) SetReserved(w http.ResponseWriter, r *http.Request) {
	h.shift(w, r, h.resourceService.SetReserved, "Reserved units updated")
}

func (h *ResourceHandler) shift(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, hospitalID int, resourceType string, units, performedBy int, reason string) error, message string) {
	hospitalID, cap, ok := hospitalFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.ShiftUnitsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := fn(r.Context(), hospitalID, req.ResourceType, req.Units, cap.ActorID, req.Reason); err != nil {
		respondResourceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func respondResourceError(w http.ResponseWriter, err error) {
	var integrity *resourceservice.IntegrityError
	switch {
	case errors.Is(err, resourceservice.ErrCounterNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, resourceservice.ErrInvalidQuantity):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, resourceservice.ErrResourceUnavailable),
		errors.Is(err, resourceservice.ErrInvalidCapacity):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &integrity):
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// GetUtilization godoc
//
//	@Summary	Get per-resource utilization of a hospital
//	@Tags		Resources
//	@Produce	json
//	@Param		id	path		int	true	"Hospital ID"
//	@Success	200	{array}		dto.UtilizationResponseDTO
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Security	ApiKeyAuth
//	@Router		/api/hospitals/{id}/utilization [get]
func (h *ResourceHandler) GetUtilization(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid hospital id")
		return
	}
	utilization, err := h.resourceService.GetUtilization(r.Context(), hospitalID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.UtilizationResponseDTO, 0, len(utilization))
	for _, u := range utilization {
		resp = append(resp, dto.UtilizationResponseDTO{
			ResourceType:          u.ResourceType,
			Total:                 u.Total,
			Available:             u.Available,
			Occupied:              u.Occupied,
			Reserved:              u.Reserved,
			Maintenance:           u.Maintenance,
			UtilizationPercentage: u.UtilizationPercentage,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func toPricingDTO(p *domain.HospitalPricing, warnings []string) dto.PricingResponseDTO {
	return dto.PricingResponseDTO{
		ResourceType:  p.ResourceType,
		BaseRate:      p.BaseRate.Taka(),
		HourlyRate:    p.HourlyRate.Taka(),
		MinimumCharge: p.MinimumCharge.Taka(),
		MaximumCharge: p.MaximumCharge.Taka(),
		IsActive:      p.IsActive,
		EffectiveFrom: p.EffectiveFrom,
		EffectiveTo:   p.EffectiveTo,
		Warnings:      warnings,
	}
}

// SetPricing godoc
//
//	@Summary		Replace the active pricing of a resource
//	@Description	Deactivates the previous version and activates the new one; history is preserved
//	@Tags			Pricing
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Hospital ID"
//	@Param			request	body		dto.SetPricingRequestDTO	true	"Pricing request body"
//	@Success		200		{object}	dto.PricingResponseDTO
//	@Failure		403		{object}	utils.Response	"Forbidden"
//	@Failure		422		{object}	utils.Response	"Inconsistent pricing"
//	@Security		ApiKeyAuth
//	@Router			/api/hospitals/{id}/pricing [put]
func (h *ResourceHandler) SetPricing(w http.ResponseWriter, r *http.Request) {
	hospitalID, _, ok := hospitalFromRequest(w, r)
	if !ok {
		return
	}

	var req dto.SetPricingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := dto.Validate(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	pricing := &domain.HospitalPricing{
		HospitalID:    hospitalID,
		ResourceType:  req.ResourceType,
		BaseRate:      money.FromTaka(req.BaseRate),
		HourlyRate:    money.FromTaka(req.HourlyRate),
		MinimumCharge: money.FromTaka(req.MinimumCharge),
		MaximumCharge: money.FromTaka(req.MaximumCharge),
	}
	warnings, err := h.pricingService.SetPricing(r.Context(), pricing)
	if err != nil {
		switch {
		case errors.Is(err, pricingservice.ErrPricingNotConfigured):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, pricingservice.ErrInvalidBaseRate),
			errors.Is(err, pricingservice.ErrInconsistentRates),
			errors.Is(err, pricingservice.ErrInconsistentCharges):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPricingDTO(pricing, warnings))
}

// GetPricing godoc
//
//	@Summary	Get the active pricing of a resource
//	@Tags		Pricing
//	@Produce	json
//	@Param		id				path		int		true	"Hospital ID"
//	@Param		resource_type	query		string	true	"Resource type"
//	@Success	200				{object}	dto.PricingResponseDTO
//	@Failure	404				{object}	utils.Response	"No active pricing"
//	@Security	ApiKeyAuth
//	@Router		/api/hospitals/{id}/pricing [get]
func (h *ResourceHandler) GetPricing(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid hospital id")
		return
	}
	resourceType := r.URL.Query().Get("resource_type")
	if !domain.ValidResourceType(resourceType) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource type")
		return
	}
	pricing, err := h.pricingService.GetCurrent(r.Context(), hospitalID, resourceType)
	if err != nil {
		if errors.Is(err, pricingservice.ErrPricingNotConfigured) {
			utils.RespondWithError(w, http.StatusNotFound, "No active pricing")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toPricingDTO(pricing, nil))
}

// GetPricingHistory godoc
//
//	@Summary	List all pricing versions of a resource
//	@Tags		Pricing
//	@Produce	json
//	@Param		id				path		int		true	"Hospital ID"
//	@Param		resource_type	query		string	true	"Resource type"
//	@Success	200				{array}		dto.PricingResponseDTO
//	@Failure	500				{object}	utils.Response	"Internal server error"
//	@Security	ApiKeyAuth
//	@Router		/api/hospitals/{id}/pricing/history [get]
func (h *ResourceHandler) GetPricingHistory(w http.ResponseWriter, r *http.Request) {
	hospitalID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid hospital id")
		return
	}
	resourceType := r.URL.Query().Get("resource_type")
	if !domain.ValidResourceType(resourceType) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid resource type")
		return
	}
	history, err := h.pricingService.GetHistory(r.Context(), hospitalID, resourceType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PricingResponseDTO, 0, len(history))
	for i := range history {
		resp = append(resp, toPricingDTO(&history[i], nil))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
