package dto

import "time"

type CreateBookingRequestDTO struct {
	HospitalID           int    `json:"hospital_id" validate:"required,min=1" example:"3"`
	ResourceType         string `json:"resource_type" validate:"required,oneof=bed icu operation_theatre" example:"icu"`
	PatientName          string `json:"patient_name" validate:"required,max=100" example:"Abdul Karim"`
	PatientAge           int    `json:"patient_age" validate:"required,min=1,max=150" example:"64"`
	PatientGender        string `json:"patient_gender,omitempty" example:"male"`
	MedicalCondition     string `json:"medical_condition,omitempty" example:"post-operative care"`
	Urgency              string `json:"urgency" validate:"required,oneof=low medium high critical" example:"high"`
	EstimatedDurationHrs int    `json:"estimated_duration_hours,omitempty" validate:"omitempty,min=1" example:"48"`
	RapidAssistance      bool   `json:"rapid_assistance,omitempty" example:"true"`
}

type BookingResponseDTO struct {
	ID                    int        `json:"id" example:"17"`
	BookingReference      string     `json:"booking_reference" example:"BK-20260115-4F7A2C"`
	HospitalID            int        `json:"hospital_id" example:"3"`
	ResourceType          string     `json:"resource_type" example:"icu"`
	PatientName           string     `json:"patient_name" example:"Abdul Karim"`
	PatientAge            int        `json:"patient_age" example:"64"`
	Urgency               string     `json:"urgency" example:"high"`
	EstimatedDurationHrs  int        `json:"estimated_duration_hours" example:"48"`
	Status                string     `json:"status" example:"pending"`
	PaymentStatus         string     `json:"payment_status" example:"pending"`
	PaymentAmount         float64    `json:"payment_amount,omitempty" example:"3440"`
	RapidAssistance       bool       `json:"rapid_assistance,omitempty" example:"true"`
	RapidAssistanceCharge float64    `json:"rapid_assistance_charge,omitempty" example:"200"`
	DeclineReason         string     `json:"decline_reason,omitempty"`
	ApprovedAt            *time.Time `json:"approved_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at" example:"2026-01-15T10:04:05+06:00"`
}

type DecisionRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"no ICU capacity this week"`
	Notes  string `json:"notes,omitempty"`
}

type BookingHistoryResponseDTO struct {
	OldStatus string    `json:"old_status" example:"pending"`
	NewStatus string    `json:"new_status" example:"approved"`
	ChangedBy int       `json:"changed_by" example:"9"`
	Reason    string    `json:"reason,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	ChangedAt time.Time `json:"changed_at" example:"2026-01-15T12:00:00+06:00"`
}
