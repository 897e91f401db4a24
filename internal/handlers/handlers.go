package handlers

import (
	"net/http"

	_ "github.com/asifrahman/medibook/docs"
	authhandlers "github.com/asifrahman/medibook/internal/handlers/auth"
	bookinghandlers "github.com/asifrahman/medibook/internal/handlers/bookings"
	paymenthandlers "github.com/asifrahman/medibook/internal/handlers/payments"
	resourcehandlers "github.com/asifrahman/medibook/internal/handlers/resources"
	"github.com/asifrahman/medibook/internal/service"
	"github.com/asifrahman/medibook/pkg/auth"
	"github.com/asifrahman/medibook/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	CreateBooking(w http.ResponseWriter, r *http.Request)
	GetBooking(w http.ResponseWriter, r *http.Request)
	GetBookings(w http.ResponseWriter, r *http.Request)
	GetHospitalBookings(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Decline(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	ProcessPayment(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetMovements(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ResourceHandler interface {
	SetCapacity(w http.ResponseWriter, r *http.Request)
	SetMaintenance(w http.ResponseWriter, r *http.Request)
	SetReserved(w http.ResponseWriter, r *http.Request)
	GetUtilization(w http.ResponseWriter, r *http.Request)
	SetPricing(w http.ResponseWriter, r *http.Request)
	GetPricing(w http.ResponseWriter, r *http.Request)
	GetPricingHistory(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	BookingHandler  BookingHandler
	PaymentHandler  PaymentHandler
	ResourceHandler ResourceHandler

	limiter ratelimit.Store
}

func New(s *service.Services, limiter ratelimit.Store) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		BookingHandler:  bookinghandlers.New(s.BookingService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		ResourceHandler: resourcehandlers.New(s.ResourceService, s.PricingService),
		limiter:         limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		ratelimit.Middleware(h.limiter),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Route("/bookings", func(r chi.Router) {
				r.Post("/", h.BookingHandler.CreateBooking)
				r.Get("/", h.BookingHandler.GetBookings)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.BookingHandler.GetBooking)
					r.Get("/history", h.BookingHandler.GetHistory)
					r.Post("/approve", h.BookingHandler.Approve)
					r.Post("/decline", h.BookingHandler.Decline)
					r.Post("/cancel", h.BookingHandler.Cancel)
					r.Post("/complete", h.BookingHandler.Complete)
				})
			})

			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.ProcessPayment)
				r.Get("/", h.PaymentHandler.GetTransactions)
				r.Post("/{id}/refund", h.PaymentHandler.Refund)
			})

			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.PaymentHandler.GetBalance)
				r.Post("/deposit", h.PaymentHandler.Deposit)
				r.Get("/movements", h.PaymentHandler.GetMovements)
			})

			r.Route("/hospitals/{id}", func(r chi.Router) {
				r.Get("/bookings", h.BookingHandler.GetHospitalBookings)
				r.Get("/utilization", h.ResourceHandler.GetUtilization)
				r.Put("/capacity", h.ResourceHandler.SetCapacity)
				r.Post("/maintenance", h.ResourceHandler.SetMaintenance)
				r.Post("/reserved", h.ResourceHandler.SetReserved)
				r.Put("/pricing", h.ResourceHandler.SetPricing)
				r.Get("/pricing", h.ResourceHandler.GetPricing)
				r.Get("/pricing/history", h.ResourceHandler.GetPricingHistory)
			})
		})
	})

	return r
}
