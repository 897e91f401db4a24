package resourcerepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func counterColumns() []string {
	return []string{"id", "hospital_id", "resource_type", "total", "available", "occupied", "reserved", "maintenance", "updated_at"}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.ResourceCounter
	}{
		{
			name: "Counter locked and returned",
			mockSetup: func() {
				rows := pgxmock.NewRows(counterColumns()).
					AddRow(3, 1, domain.BedResource, 10, 4, 5, 1, 0, updatedAt)
				mock.ExpectQuery(`SELECT id, hospital_id, resource_type`).
					WithArgs(1, domain.BedResource).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.ResourceCounter{
				ID:           3,
				HospitalID:   1,
				ResourceType: domain.BedResource,
				Total:        10,
				Available:    4,
				Occupied:     5,
				Reserved:     1,
				UpdatedAt:    updatedAt,
			},
		},
		{
			name: "Missing counter returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT id, hospital_id, resource_type`).
					WithArgs(1, domain.BedResource).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT id, hospital_id, resource_type`).
					WithArgs(1, domain.BedResource).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetForUpdate(context.Background(), 1, domain.BedResource)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	counter := &domain.ResourceCounter{
		ID: 3, HospitalID: 1, ResourceType: domain.BedResource,
		Total: 10, Available: 3, Occupied: 6, Reserved: 1,
	}
	mock.ExpectExec(`UPDATE resource_counters`).
		WithArgs(10, 3, 6, 1, 0, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), counter)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)

	counter := &domain.ResourceCounter{
		HospitalID: 1, ResourceType: domain.ICUResource,
		Total: 5, Available: 5,
	}
	mock.ExpectQuery(`INSERT INTO resource_counters`).
		WithArgs(1, domain.ICUResource, 5, 5, 0, 0, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))

	err := repo.Upsert(context.Background(), counter)
	assert.NoError(t, err)
	assert.Equal(t, 9, counter.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByHospital(t *testing.T) {
	repo, mock := NewMock(t)
	updatedAt := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(counterColumns()).
		AddRow(3, 1, domain.BedResource, 10, 4, 5, 1, 0, updatedAt).
		AddRow(4, 1, domain.ICUResource, 5, 2, 3, 0, 0, updatedAt)
	mock.ExpectQuery(`SELECT id, hospital_id, resource_type`).
		WithArgs(1).
		WillReturnRows(rows)

	counters, err := repo.ListByHospital(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, counters, 2)
	for _, c := range counters {
		assert.Equal(t, c.Total, c.Available+c.Occupied+c.Reserved+c.Maintenance)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
