package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

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

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "Existing user returned",
			login: "testuser",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "login", "password_hash", "user_type", "hospital_id"}).
					AddRow(1, "testuser", "hashedpassword", domain.AuthorityUserType, 2)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash, user_type, hospital_id FROM users WHERE login = $1`)).
					WithArgs("testuser").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
				UserType:     domain.AuthorityUserType,
				HospitalID:   2,
			},
		},
		{
			name:  "Missing user returns nil",
			login: "missing",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash, user_type, hospital_id FROM users WHERE login = $1`)).
					WithArgs("missing").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "testuser",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, login, password_hash, user_type, hospital_id FROM users WHERE login = $1`)).
					WithArgs("testuser").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "User saved with generated id",
			user: &domain.User{
				Login:        "newuser",
				PasswordHash: "hashedpassword",
				UserType:     domain.PatientUserType,
			},
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("newuser", "hashedpassword", domain.PatientUserType, 0).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{
				Login:        "newuser",
				PasswordHash: "hashedpassword",
				UserType:     domain.PatientUserType,
			},
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("newuser", "hashedpassword", domain.PatientUserType, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, result.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
