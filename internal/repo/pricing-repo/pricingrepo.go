package pricingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"go.uber.org/zap"
)

const pricingColumns = `id, hospital_id, resource_type, base_rate, hourly_rate, minimum_charge, maximum_charge,
        is_active, effective_from, effective_to`

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

// GetCurrent returns the active pricing row whose effective period covers
// now. Superseded rows stay in the table as history.
func (r *Repository) GetCurrent(ctx context.Context, hospitalID int, resourceType string) (*domain.HospitalPricing, error) {
	query := `
        SELECT ` + pricingColumns + `
        FROM hospital_pricing
        WHERE hospital_id = $1 AND resource_type = $2 AND is_active
            AND (effective_to IS NULL OR effective_to > NOW())
        ORDER BY effective_from DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, hospitalID, resourceType)

	var p domain.HospitalPricing
	err := row.Scan(&p.ID, &p.HospitalID, &p.ResourceType, &p.BaseRate, &p.HourlyRate,
		&p.MinimumCharge, &p.MaximumCharge, &p.IsActive, &p.EffectiveFrom, &p.EffectiveTo)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get current pricing", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// Replace closes the currently active pricing row and inserts the new one
// as a single unit.
func (r *Repository) Replace(ctx context.Context, pricing *domain.HospitalPricing) error {
	deactivate := `
        UPDATE hospital_pricing
        SET is_active = FALSE, effective_to = NOW()
        WHERE hospital_id = $1 AND resource_type = $2 AND is_active
    `
	insert := `
        INSERT INTO hospital_pricing (hospital_id, resource_type, base_rate, hourly_rate,
            minimum_charge, maximum_charge, is_active, effective_from)
        VALUES ($1, $2, $3, $4, $5, $6, TRUE, NOW())
        RETURNING id, effective_from
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, deactivate, pricing.HospitalID, pricing.ResourceType); err != nil {
			zap.L().Error("failed to deactivate pricing", zap.Error(err))
			return err
		}
		return r.db.QueryRow(ctx, insert, pricing.HospitalID, pricing.ResourceType, pricing.BaseRate,
			pricing.HourlyRate, pricing.MinimumCharge, pricing.MaximumCharge,
		).Scan(&pricing.ID, &pricing.EffectiveFrom)
	})
	if err != nil {
		return err
	}
	pricing.IsActive = true
	return nil
}

func (r *Repository) History(ctx context.Context, hospitalID int, resourceType string) ([]domain.HospitalPricing, error) {
	query := `
        SELECT ` + pricingColumns + `
        FROM hospital_pricing
        WHERE hospital_id = $1 AND resource_type = $2
        ORDER BY effective_from DESC
    `
	rows, err := r.db.Query(ctx, query, hospitalID, resourceType)
	if err != nil {
		zap.L().Error("failed to fetch pricing history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.HospitalPricing
	for rows.Next() {
		var p domain.HospitalPricing
		err := rows.Scan(&p.ID, &p.HospitalID, &p.ResourceType, &p.BaseRate, &p.HourlyRate,
			&p.MinimumCharge, &p.MaximumCharge, &p.IsActive, &p.EffectiveFrom, &p.EffectiveTo)
		if err != nil {
			zap.L().Error("failed to scan pricing row", zap.Error(err))
			return nil, err
		}
		history = append(history, p)
	}
	return history, nil
}
