package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockBalanceCreator, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	balances := NewMockBalanceCreator(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, balances, hashService, jwtService)
	defer ctrl.Finish()
	return service, repo, balances, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, balances, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		userType      string
		hospitalID    int
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful registration",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				balances.EXPECT().GetBalance(context.Background(), 1).Return(&domain.UserBalance{ID: 1, UserID: 1}, nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Login:        "testuser",
				PasswordHash: "hashedpassword",
				UserType:     domain.PatientUserType,
			},
			expectedError: nil,
		},
		{
			name:       "Hospital authority registration",
			login:      "authority",
			password:   "testpassword",
			userType:   domain.AuthorityUserType,
			hospitalID: 2,
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "authority").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
				balances.EXPECT().GetBalance(context.Background(), 2).Return(&domain.UserBalance{ID: 2, UserID: 2}, nil)
			},
			expectedUser: &domain.User{
				ID:           2,
				Login:        "authority",
				PasswordHash: "hashedpassword",
				UserType:     domain.AuthorityUserType,
				HospitalID:   2,
			},
			expectedError: nil,
		},
		{
			name:     "User already exists",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{ID: 1, Login: "testuser"}, nil)
			},
			expectedUser:  nil,
			expectedError: ErrLoginTaken,
		},
		{
			name:          "Unknown user type",
			login:         "testuser",
			password:      "testpassword",
			userType:      "doctor",
			prepareMock:   func() {},
			expectedUser:  nil,
			expectedError: ErrInvalidUserType,
		},
		{
			name:     "Error finding user",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, errors.New("repo error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("repo error"),
		},
		{
			name:     "Error hashing password",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hash error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("hash error"),
		},
		{
			name:     "Error provisioning wallet",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				balances.EXPECT().GetBalance(context.Background(), 1).Return(nil, errors.New("balance error"))
			},
			expectedUser:  nil,
			expectedError: errors.New("balance error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Register(context.Background(), tt.login, tt.password, tt.userType, tt.hospitalID)
			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, _, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		login         string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			login:    "testuser",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser:  &domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"},
			expectedError: nil,
		},
		{
			name:     "User not found",
			login:    "missing",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "missing").Return(nil, nil)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			login:    "testuser",
			password: "wrong",
			prepareMock: func() {
				userRepo.EXPECT().FindByLogin(context.Background(), "testuser").Return(&domain.User{ID: 1, Login: "testuser", PasswordHash: "hashedpassword"}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrong").Return(false)
			},
			expectedUser:  nil,
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Authenticate(context.Background(), tt.login, tt.password)
			assert.Equal(t, tt.expectedUser, user)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, _, jwtService := NewMock(t)

	user := &domain.User{ID: 1, UserType: domain.AuthorityUserType, HospitalID: 2}
	jwtService.EXPECT().GenerateJWT(1, domain.AuthorityUserType, 2, gomock.Any()).Return("token", nil)

	token, err := service.GenerateToken(user)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)
}
