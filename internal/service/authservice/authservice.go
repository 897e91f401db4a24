package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/asifrahman/medibook/internal/domain"
	"github.com/asifrahman/medibook/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// BalanceCreator provisions a wallet for a newly registered user.
type BalanceCreator interface {
	GetBalance(ctx context.Context, userID int) (*domain.UserBalance, error)
}

type Service struct {
	userRepo    Repo
	balances    BalanceCreator
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, balances BalanceCreator, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		balances:    balances,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserType    = errors.New("unknown user type")
)

func (s *Service) Register(ctx context.Context, login, password, userType string, hospitalID int) (*domain.User, error) {
	switch userType {
	case "":
		userType = domain.PatientUserType
	case domain.PatientUserType, domain.AuthorityUserType, domain.AdminUserType:
	default:
		return nil, ErrInvalidUserType
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, login: ", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
		UserType:     userType,
		HospitalID:   hospitalID,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if _, err := s.balances.GetBalance(ctx, newUser.ID); err != nil {
		zap.L().Error("can't create balance: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(user *domain.User) (string, error) {
	return s.jwtService.GenerateJWT(user.ID, user.UserType, user.HospitalID, time.Now().Add(24*time.Hour))
}
