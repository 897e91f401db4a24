package dto

import "time"

type SetCapacityRequestDTO struct {
	ResourceType string `json:"resource_type" validate:"required,oneof=bed icu operation_theatre" example:"bed"`
	Total        int    `json:"total" validate:"min=0" example:"120"`
	Reason       string `json:"reason,omitempty" example:"new ward opened"`
}

type ShiftUnitsRequestDTO struct {
	ResourceType string `json:"resource_type" validate:"required,oneof=bed icu operation_theatre" example:"bed"`
	Units        int    `json:"units" validate:"required" example:"2"`
	Reason       string `json:"reason,omitempty" example:"ventilator servicing"`
}

type UtilizationResponseDTO struct {
	ResourceType          string  `json:"resource_type" example:"icu"`
	Total                 int     `json:"total" example:"20"`
	Available             int     `json:"available" example:"5"`
	Occupied              int     `json:"occupied" example:"12"`
	Reserved              int     `json:"reserved" example:"2"`
	Maintenance           int     `json:"maintenance" example:"1"`
	UtilizationPercentage float64 `json:"utilization_percentage" example:"60"`
}

type SetPricingRequestDTO struct {
	ResourceType  string  `json:"resource_type" validate:"required,oneof=bed icu operation_theatre" example:"icu"`
	BaseRate      float64 `json:"base_rate" validate:"required,gt=0" example:"3000"`
	HourlyRate    float64 `json:"hourly_rate" validate:"min=0" example:"10"`
	MinimumCharge float64 `json:"minimum_charge,omitempty" example:"500"`
	MaximumCharge float64 `json:"maximum_charge,omitempty" example:"50000"`
}

type PricingResponseDTO struct {
	ResourceType  string     `json:"resource_type" example:"icu"`
	BaseRate      float64    `json:"base_rate" example:"3000"`
	HourlyRate    float64    `json:"hourly_rate" example:"10"`
	MinimumCharge float64    `json:"minimum_charge,omitempty" example:"500"`
	MaximumCharge float64    `json:"maximum_charge,omitempty" example:"50000"`
	IsActive      bool       `json:"is_active" example:"true"`
	EffectiveFrom time.Time  `json:"effective_from" example:"2026-01-01T00:00:00+06:00"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	Warnings      []string   `json:"warnings,omitempty"`
}
