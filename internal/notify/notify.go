package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/asifrahman/medibook/internal/config"
	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/pkg/clients"
	"go.uber.org/zap"
)

// Event is the payload posted to the notification webhook.
type Event struct {
	Type             string    `json:"type"`
	BookingID        int       `json:"booking_id,omitempty"`
	BookingReference string    `json:"booking_reference,omitempty"`
	HospitalID       int       `json:"hospital_id,omitempty"`
	UserID           int       `json:"user_id,omitempty"`
	OldStatus        string    `json:"old_status,omitempty"`
	NewStatus        string    `json:"new_status,omitempty"`
	Outcome          string    `json:"outcome,omitempty"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	Amount           float64   `json:"amount,omitempty"`
	Detail           string    `json:"detail,omitempty"`
	At               time.Time `json:"at"`
}

// Service delivers events to the configured webhook through a worker
// pool. Delivery is fire-and-forget: the caller never waits for, nor
// learns about, the outcome.
type Service struct {
	url    string
	client clients.HTTPClientI
	pool   WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Service {
	return &Service{
		url:    cfg.NotifyAddress,
		client: client,
		pool:   NewWorkerPool(10),
	}
}

func (s *Service) BookingStatusChanged(booking *domain.Booking, oldStatus string) {
	s.enqueue(Event{
		Type:             "booking.status_changed",
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		HospitalID:       booking.HospitalID,
		UserID:           booking.UserID,
		OldStatus:        oldStatus,
		NewStatus:        booking.Status,
		At:               time.Now(),
	})
}

func (s *Service) PaymentProcessed(booking *domain.Booking, txn *domain.Transaction, outcome string) {
	e := Event{
		Type:             "payment.processed",
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		HospitalID:       booking.HospitalID,
		UserID:           booking.UserID,
		Outcome:          outcome,
		At:               time.Now(),
	}
	if txn != nil {
		e.TransactionID = txn.TransactionID
		e.Amount = txn.Amount.Taka()
	}
	s.enqueue(e)
}

// IntegrityAlert is the operator alert channel for ledger invariant
// violations. Full detail goes here, never to end users.
func (s *Service) IntegrityAlert(detail string) {
	zap.L().Error("integrity alert", zap.String("detail", detail))
	s.enqueue(Event{
		Type:   "integrity.alert",
		Detail: detail,
		At:     time.Now(),
	})
}

func (s *Service) enqueue(event Event) {
	if s.url == "" {
		zap.L().Debug("notification skipped, no webhook configured", zap.String("type", event.Type))
		return
	}
	err := s.pool.AddTask(context.Background(), func() error {
		return s.post(event)
	})
	if err != nil {
		zap.L().Error("can't enqueue notification", zap.Error(err))
	}
}

func (s *Service) post(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (s *Service) Close() {
	s.pool.Close()
}
