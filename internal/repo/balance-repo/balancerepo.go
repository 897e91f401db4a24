package balancerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/pkg/money"
	"go.uber.org/zap"
)

const balanceColumns = `id, user_id, hospital_id, current_balance, total_earnings, total_withdrawals`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM user_balances WHERE user_id = $1 AND hospital_id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, userID, hospitalID))
}

func (r *Repository) GetForUpdate(ctx context.Context, balanceID int) (*domain.UserBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM user_balances WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(ctx, query, balanceID))
}

func (r *Repository) Create(ctx context.Context, userID, hospitalID int) (*domain.UserBalance, error) {
	query := `
        INSERT INTO user_balances (user_id, hospital_id, current_balance, total_earnings, total_withdrawals)
        VALUES ($1, $2, 0, 0, 0)
        ON CONFLICT (user_id, hospital_id) DO UPDATE SET user_id = user_balances.user_id
        RETURNING ` + balanceColumns + `
    `
	balance, err := r.scanOne(r.db.QueryRow(ctx, query, userID, hospitalID))
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// ApplyDelta mutates the balance and appends the matching
// BalanceTransaction as one unit. Before and after values come from the
// mutating statement itself, never from a separate read.
func (r *Repository) ApplyDelta(ctx context.Context, balanceID int, delta money.Amount, txnType, reference string) (*domain.UserBalance, *domain.BalanceTransaction, error) {
	update := `
        UPDATE user_balances
        SET current_balance = current_balance + $1,
            total_earnings = total_earnings + $2,
            total_withdrawals = total_withdrawals + $3
        WHERE id = $4
        RETURNING ` + balanceColumns + `
    `
	insert := `
        INSERT INTO balance_transactions (balance_id, transaction_type, amount, balance_before, balance_after, reference, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	var earned, withdrawn money.Amount
	if delta >= 0 {
		earned = delta
	} else {
		withdrawn = -delta
	}

	var balance *domain.UserBalance
	var movement *domain.BalanceTransaction
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		updated, err := r.scanOne(r.db.QueryRow(ctx, update, delta, earned, withdrawn, balanceID))
		if err != nil {
			zap.L().Error("failed to apply balance delta", zap.Error(err))
			return err
		}
		if updated == nil {
			return pgx.ErrNoRows
		}

		movement = &domain.BalanceTransaction{
			BalanceID:       balanceID,
			TransactionType: txnType,
			Amount:          delta,
			BalanceBefore:   updated.CurrentBalance - delta,
			BalanceAfter:    updated.CurrentBalance,
			Reference:       reference,
			CreatedAt:       time.Now(),
		}
		if err := r.db.QueryRow(ctx, insert, movement.BalanceID, movement.TransactionType, movement.Amount,
			movement.BalanceBefore, movement.BalanceAfter, movement.Reference, movement.CreatedAt,
		).Scan(&movement.ID); err != nil {
			zap.L().Error("failed to save balance transaction", zap.Error(err))
			return err
		}
		balance = updated
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return balance, movement, nil
}

func (r *Repository) FindTransactions(ctx context.Context, balanceID int) ([]domain.BalanceTransaction, error) {
	query := `
        SELECT id, balance_id, transaction_type, amount, balance_before, balance_after, reference, created_at
        FROM balance_transactions
        WHERE balance_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, balanceID)
	if err != nil {
		zap.L().Error("failed to fetch balance transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var movements []domain.BalanceTransaction
	for rows.Next() {
		var m domain.BalanceTransaction
		err := rows.Scan(&m.ID, &m.BalanceID, &m.TransactionType, &m.Amount, &m.BalanceBefore, &m.BalanceAfter, &m.Reference, &m.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan balance transaction row", zap.Error(err))
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, nil
}

// SumTransactions returns the net of all movements for a balance, used by
// the reconciliation job.
func (r *Repository) SumTransactions(ctx context.Context, balanceID int) (money.Amount, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM balance_transactions WHERE balance_id = $1`
	var sum money.Amount
	if err := r.db.QueryRow(ctx, query, balanceID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum balance transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.UserBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM user_balances ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.UserBalance
	for rows.Next() {
		var b domain.UserBalance
		err := rows.Scan(&b.ID, &b.UserID, &b.HospitalID, &b.CurrentBalance, &b.TotalEarnings, &b.TotalWithdrawals)
		if err != nil {
			zap.L().Error("failed to scan balance row", zap.Error(err))
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.UserBalance, error) {
	var b domain.UserBalance
	err := row.Scan(&b.ID, &b.UserID, &b.HospitalID, &b.CurrentBalance, &b.TotalEarnings, &b.TotalWithdrawals)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}
