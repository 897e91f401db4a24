package resourcerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Get(ctx context.Context, hospitalID int, resourceType string) (*domain.ResourceCounter, error) {
	query := `
        SELECT id, hospital_id, resource_type, total, available, occupied, reserved, maintenance, updated_at
        FROM resource_counters
        WHERE hospital_id = $1 AND resource_type = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, hospitalID, resourceType))
}

// GetForUpdate locks the counter row for the rest of the enclosing
// transaction. Concurrent units on the same (hospital, resource type)
// key serialize here.
func (r *Repository) GetForUpdate(ctx context.Context, hospitalID int, resourceType string) (*domain.ResourceCounter, error) {
	query := `
        SELECT id, hospital_id, resource_type, total, available, occupied, reserved, maintenance, updated_at
        FROM resource_counters
        WHERE hospital_id = $1 AND resource_type = $2
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, hospitalID, resourceType))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.ResourceCounter, error) {
	var c domain.ResourceCounter
	err := row.Scan(&c.ID, &c.HospitalID, &c.ResourceType, &c.Total, &c.Available, &c.Occupied, &c.Reserved, &c.Maintenance, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to get resource counter", zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Update(ctx context.Context, counter *domain.ResourceCounter) error {
	query := `
        UPDATE resource_counters
        SET total = $1, available = $2, occupied = $3, reserved = $4, maintenance = $5, updated_at = NOW()
        WHERE id = $6
    `
	_, err := r.db.Exec(ctx, query, counter.Total, counter.Available, counter.Occupied, counter.Reserved, counter.Maintenance, counter.ID)
	if err != nil {
		zap.L().Error("failed to update resource counter", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Upsert(ctx context.Context, counter *domain.ResourceCounter) error {
	query := `
        INSERT INTO resource_counters (hospital_id, resource_type, total, available, occupied, reserved, maintenance)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (hospital_id, resource_type)
        DO UPDATE SET total = $3, available = $4, occupied = $5, reserved = $6, maintenance = $7, updated_at = NOW()
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, counter.HospitalID, counter.ResourceType, counter.Total, counter.Available, counter.Occupied, counter.Reserved, counter.Maintenance).Scan(&counter.ID)
	if err != nil {
		zap.L().Error("failed to upsert resource counter", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListByHospital(ctx context.Context, hospitalID int) ([]domain.ResourceCounter, error) {
	query := `
        SELECT id, hospital_id, resource_type, total, available, occupied, reserved, maintenance, updated_at
        FROM resource_counters
        WHERE hospital_id = $1
        ORDER BY resource_type
    `
	rows, err := r.db.Query(ctx, query, hospitalID)
	if err != nil {
		zap.L().Error("failed to list resource counters", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.ResourceCounter, error) {
	query := `
        SELECT id, hospital_id, resource_type, total, available, occupied, reserved, maintenance, updated_at
        FROM resource_counters
        ORDER BY hospital_id, resource_type
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to list resource counters", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *Repository) scanMany(rows pgx.Rows) ([]domain.ResourceCounter, error) {
	var counters []domain.ResourceCounter
	for rows.Next() {
		var c domain.ResourceCounter
		err := rows.Scan(&c.ID, &c.HospitalID, &c.ResourceType, &c.Total, &c.Available, &c.Occupied, &c.Reserved, &c.Maintenance, &c.UpdatedAt)
		if err != nil {
			zap.L().Error("failed to scan resource counter row", zap.Error(err))
			return nil, err
		}
		counters = append(counters, c)
	}
	return counters, nil
}
