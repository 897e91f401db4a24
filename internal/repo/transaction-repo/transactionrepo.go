package transactionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/pkg/money"
	"go.uber.org/zap"
)

const transactionColumns = `id, booking_id, user_id, hospital_id, amount, service_charge, hospital_amount,
        payment_method, transaction_id, status, processed_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, txn *domain.Transaction) error {
	query := `
        INSERT INTO transactions (booking_id, user_id, hospital_id, amount, service_charge,
            hospital_amount, payment_method, transaction_id, status, processed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		txn.BookingID, txn.UserID, txn.HospitalID, txn.Amount, txn.ServiceCharge,
		txn.HospitalAmount, txn.PaymentMethod, txn.TransactionID, txn.Status, txn.ProcessedAt,
	).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, transactionID))
}

// GetByTransactionIDForUpdate locks the transaction row so repeated
// distribution attempts with the same idempotency key serialize.
func (r *Repository) GetByTransactionIDForUpdate(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, transactionID))
}

func (r *Repository) GetByBookingID(ctx context.Context, bookingID int) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE booking_id = $1 ORDER BY processed_at DESC LIMIT 1`
	return r.scanOne(r.db.QueryRow(ctx, query, bookingID))
}

func (r *Repository) UpdateSplit(ctx context.Context, transactionID string, serviceCharge, hospitalAmount money.Amount, status string) error {
	query := `
        UPDATE transactions
        SET service_charge = $1, hospital_amount = $2, status = $3
        WHERE transaction_id = $4
    `
	_, err := r.db.Exec(ctx, query, serviceCharge, hospitalAmount, status, transactionID)
	if err != nil {
		zap.L().Error("failed to update transaction split", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, transactionID string, status string) error {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE transaction_id = $2
    `
	_, err := r.db.Exec(ctx, query, status, transactionID)
	if err != nil {
		zap.L().Error("failed to update transaction status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY processed_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.BookingID, &t.UserID, &t.HospitalID, &t.Amount, &t.ServiceCharge,
			&t.HospitalAmount, &t.PaymentMethod, &t.TransactionID, &t.Status, &t.ProcessedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.ID, &t.BookingID, &t.UserID, &t.HospitalID, &t.Amount, &t.ServiceCharge,
		&t.HospitalAmount, &t.PaymentMethod, &t.TransactionID, &t.Status, &t.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find transaction", zap.Error(err))
		return nil, err
	}
	return &t, nil
}
