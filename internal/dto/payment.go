package dto

import "time"

type ProcessPaymentRequestDTO struct {
	BookingID       int     `json:"booking_id" validate:"required,min=1" example:"17"`
	Amount          float64 `json:"amount" validate:"required,gt=0" example:"3440"`
	TransactionRef  string  `json:"transaction_ref" validate:"required,max=100" example:"TXN-8842-AB"`
	RapidAssistance bool    `json:"rapid_assistance,omitempty" example:"true"`
}

type TransactionResponseDTO struct {
	TransactionID  string    `json:"transaction_id" example:"TXN-8842-AB"`
	BookingID      int       `json:"booking_id" example:"17"`
	Amount         float64   `json:"amount" example:"3440"`
	ServiceCharge  float64   `json:"service_charge,omitempty" example:"172"`
	HospitalAmount float64   `json:"hospital_amount,omitempty" example:"3268"`
	PaymentMethod  string    `json:"payment_method" example:"bkash"`
	Status         string    `json:"status" example:"completed"`
	ProcessedAt    time.Time `json:"processed_at" example:"2026-01-15T12:30:00+06:00"`
}

type ProcessPaymentResponseDTO struct {
	Transaction TransactionResponseDTO `json:"transaction"`
	Balance     float64                `json:"balance" example:"1560"`
}

type RefundRequestDTO struct {
	Reason string `json:"reason,omitempty" example:"booking cancelled before admission"`
}

type DepositRequestDTO struct {
	Amount    float64 `json:"amount" validate:"required,gt=0" example:"5000"`
	Reference string  `json:"reference,omitempty" example:"bkash topup"`
}

type BalanceResponseDTO struct {
	Current     float64 `json:"current" example:"1560"`
	Earnings    float64 `json:"earnings" example:"0"`
	Withdrawals float64 `json:"withdrawals" example:"3440"`
}

type BalanceMovementResponseDTO struct {
	TransactionType string    `json:"transaction_type" example:"payment_sent"`
	Amount          float64   `json:"amount" example:"-3440"`
	BalanceBefore   float64   `json:"balance_before" example:"5000"`
	BalanceAfter    float64   `json:"balance_after" example:"1560"`
	Reference       string    `json:"reference,omitempty" example:"TXN-8842-AB"`
	CreatedAt       time.Time `json:"created_at" example:"2026-01-15T12:30:00+06:00"`
}
