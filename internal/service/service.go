package service

import (
	"github.com/asifrahman/medibook/internal/handlers/auth"
	"github.com/asifrahman/medibook/internal/handlers/bookings"
	"github.com/asifrahman/medibook/internal/handlers/payments"
	"github.com/asifrahman/medibook/internal/handlers/resources"

	pkgauth "github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/money"

	"github.com/asifrahman/medibook/internal/config"
	"github.com/asifrahman/medibook/internal/notify"
	"github.com/asifrahman/medibook/internal/pg"
	"github.com/asifrahman/medibook/internal/repo"
	authservice "github.com/asifrahman/medibook/internal/service/authservice"
	bookingservice "github.com/asifrahman/medibook/internal/service/bookingservice"
	paymentservice "github.com/asifrahman/medibook/internal/service/paymentservice"
	pricingservice "github.com/asifrahman/medibook/internal/service/pricingservice"
	resourceservice "github.com/asifrahman/medibook/internal/service/resourceservice"
	revenueservice "github.com/asifrahman/medibook/internal/service/revenueservice"
)

type Services struct {
	AuthService     auth.Service
	BookingService  bookings.Service
	PaymentService  payments.Service
	ResourceService resources.ResourceService
	PricingService  resources.PricingService
}

func New(repos *repo.Repositories, cfg *config.Config, notifier *notify.Service, txManager pg.TXManager) *Services {
	pricingService := pricingservice.New(repos.PricingRepo)
	resourceService := resourceservice.New(repos.ResourceRepo, repos.AuditRepo, notifier, txManager)
	revenueService := revenueservice.New(repos.TransactionRepo, repos.BalanceRepo, txManager, cfg.ServiceChargeRate, cfg.PlatformAccountID)
	paymentService := paymentservice.New(repos.BookingRepo, repos.BalanceRepo, repos.TransactionRepo, repos.AuditRepo,
		pricingService, revenueService, notifier, txManager, paymentservice.Config{
			RapidAssistMinAge: cfg.RapidAssistMinAge,
			RapidAssistCharge: money.FromTaka(cfg.RapidAssistCharge),
		})
	bookingService := bookingservice.New(repos.BookingRepo, repos.AuditRepo, resourceService, notifier, txManager, cfg.RapidAssistMinAge)
	authService := authservice.New(repos.UserRepo, paymentService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:     authService,
		BookingService:  bookingService,
		PaymentService:  paymentService,
		ResourceService: resourceService,
		PricingService:  pricingService,
	}
}
