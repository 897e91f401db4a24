package domain

import (
	"time"

	"github.com/asifrahman/medibook/pkg/money"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	UserType     string    `db:"user_type"`
	HospitalID   int       `db:"hospital_id"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	PatientUserType   string = "patient"
	AuthorityUserType string = "hospital_authority"
	AdminUserType     string = "admin"
)

const (
	// PendingBookingStatus booking submitted, awaiting a hospital decision;
	PendingBookingStatus string = "pending"
	// ApprovedBookingStatus resource allocated, awaiting payment and admission;
	ApprovedBookingStatus string = "approved"
	// DeclinedBookingStatus rejected by the hospital, terminal;
	DeclinedBookingStatus string = "declined"
	// CancelledBookingStatus withdrawn by the patient or the hospital, terminal;
	CancelledBookingStatus string = "cancelled"
	// CompletedBookingStatus stay finished, terminal;
	CompletedBookingStatus string = "completed"
)

const (
	PendingPaymentStatus  string = "pending"
	PaidPaymentStatus     string = "paid"
	RefundedPaymentStatus string = "refunded"
)

const (
	BedResource     string = "bed"
	ICUResource     string = "icu"
	TheatreResource string = "operation_theatre"
)

const (
	LowUrgency      string = "low"
	MediumUrgency   string = "medium"
	HighUrgency     string = "high"
	CriticalUrgency string = "critical"
)

type Booking struct {
	ID                    int          `db:"id"`
	UserID                int          `db:"user_id"`
	HospitalID            int          `db:"hospital_id"`
	ResourceType          string       `db:"resource_type"`
	PatientName           string       `db:"patient_name"`
	PatientAge            int          `db:"patient_age"`
	PatientGender         string       `db:"patient_gender"`
	MedicalCondition      string       `db:"medical_condition"`
	Urgency               string       `db:"urgency"`
	EstimatedDurationHrs  int          `db:"estimated_duration_hours"`
	Status                string       `db:"status"`
	BookingReference      string       `db:"booking_reference"`
	PaymentAmount         money.Amount `db:"payment_amount"`
	PaymentStatus         string       `db:"payment_status"`
	RapidAssistance       bool         `db:"rapid_assistance"`
	RapidAssistanceCharge money.Amount `db:"rapid_assistance_charge"`
	ApprovedBy            int          `db:"approved_by"`
	ApprovedAt            *time.Time   `db:"approved_at"`
	DeclineReason         string       `db:"decline_reason"`
	CreatedAt             time.Time    `db:"created_at"`
}

// ResourceCounter keeps per-hospital capacity for one resource type.
// Total always equals available+occupied+reserved+maintenance.
type ResourceCounter struct {
	ID           int       `db:"id"`
	HospitalID   int       `db:"hospital_id"`
	ResourceType string    `db:"resource_type"`
	Total        int       `db:"total"`
	Available    int       `db:"available"`
	Occupied     int       `db:"occupied"`
	Reserved     int       `db:"reserved"`
	Maintenance  int       `db:"maintenance"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type HospitalPricing struct {
	ID            int          `db:"id"`
	HospitalID    int          `db:"hospital_id"`
	ResourceType  string       `db:"resource_type"`
	BaseRate      money.Amount `db:"base_rate"`
	HourlyRate    money.Amount `db:"hourly_rate"`
	MinimumCharge money.Amount `db:"minimum_charge"`
	MaximumCharge money.Amount `db:"maximum_charge"`
	IsActive      bool         `db:"is_active"`
	EffectiveFrom time.Time    `db:"effective_from"`
	EffectiveTo   *time.Time   `db:"effective_to"`
}

const (
	PendingTransactionStatus   string = "pending"
	CompletedTransactionStatus string = "completed"
	FailedTransactionStatus    string = "failed"
	RefundedTransactionStatus  string = "refunded"
)

type Transaction struct {
	ID             int          `db:"id"`
	BookingID      int          `db:"booking_id"`
	UserID         int          `db:"user_id"`
	HospitalID     int          `db:"hospital_id"`
	Amount         money.Amount `db:"amount"`
	ServiceCharge  money.Amount `db:"service_charge"`
	HospitalAmount money.Amount `db:"hospital_amount"`
	PaymentMethod  string       `db:"payment_method"`
	TransactionID  string       `db:"transaction_id"`
	Status         string       `db:"status"`
	ProcessedAt    time.Time    `db:"processed_at"`
}

type UserBalance struct {
	ID               int          `db:"id"`
	UserID           int          `db:"user_id"`
	HospitalID       int          `db:"hospital_id"`
	CurrentBalance   money.Amount `db:"current_balance"`
	TotalEarnings    money.Amount `db:"total_earnings"`
	TotalWithdrawals money.Amount `db:"total_withdrawals"`
}

const (
	PaymentReceivedTxnType string = "payment_received"
	PaymentSentTxnType     string = "payment_sent"
	ServiceChargeTxnType   string = "service_charge"
	RefundProcessedTxnType string = "refund_processed"
	WithdrawalTxnType      string = "withdrawal"
	AdjustmentTxnType      string = "adjustment"
)

// BalanceTransaction is one immutable balance movement. BalanceBefore
// plus Amount always equals BalanceAfter.
type BalanceTransaction struct {
	ID              int          `db:"id"`
	BalanceID       int          `db:"balance_id"`
	TransactionType string       `db:"transaction_type"`
	Amount          money.Amount `db:"amount"`
	BalanceBefore   money.Amount `db:"balance_before"`
	BalanceAfter    money.Amount `db:"balance_after"`
	Reference       string       `db:"reference"`
	CreatedAt       time.Time    `db:"created_at"`
}

type BookingStatusHistory struct {
	ID        int       `db:"id"`
	BookingID int       `db:"booking_id"`
	OldStatus string    `db:"old_status"`
	NewStatus string    `db:"new_status"`
	ChangedBy int       `db:"changed_by"`
	Reason    string    `db:"reason"`
	Notes     string    `db:"notes"`
	ChangedAt time.Time `db:"changed_at"`
}

const (
	AllocationChange  string = "allocation"
	ReleaseChange     string = "release"
	CapacityChange    string = "capacity"
	MaintenanceChange string = "maintenance"
	ReservedChange    string = "reserved"
)

type ResourceAuditLog struct {
	ID           int       `db:"id"`
	HospitalID   int       `db:"hospital_id"`
	ResourceType string    `db:"resource_type"`
	ChangeType   string    `db:"change_type"`
	OldValue     int       `db:"old_value"`
	NewValue     int       `db:"new_value"`
	Delta        int       `db:"delta"`
	BookingID    int       `db:"booking_id"`
	PerformedBy  int       `db:"performed_by"`
	Reason       string    `db:"reason"`
	CreatedAt    time.Time `db:"created_at"`
}

func ValidResourceType(rt string) bool {
	switch rt {
	case BedResource, ICUResource, TheatreResource:
		return true
	}
	return false
}

func ValidUrgency(u string) bool {
	switch u {
	case LowUrgency, MediumUrgency, HighUrgency, CriticalUrgency:
		return true
	}
	return false
}
