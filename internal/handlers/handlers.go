package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/cloudlesspay/docs"
	authhandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/auth"
	billinghandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/billing"
	credentialshandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/credentials"
	logshandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/logs"
	ordershandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/orders"
	tokenshandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/tokens"
	usagehandlers "github.com/GlebRadaev/cloudlesspay/internal/handlers/usage"
	"github.com/GlebRadaev/cloudlesspay/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mocks.go -package=handlers

type AuthHandler interface {
	SendOTP(w http.ResponseWriter, r *http.Request)
	VerifyOTP(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CredentialsHandler interface {
	SetCredentials(w http.ResponseWriter, r *http.Request)
}

type TokenHandler interface {
	CreateAccessToken(w http.ResponseWriter, r *http.Request)
	GetAccessToken(w http.ResponseWriter, r *http.Request)
	DeleteAccessToken(w http.ResponseWriter, r *http.Request)
}

type UsageHandler interface {
	GetCredits(w http.ResponseWriter, r *http.Request)
	GetMonthwiseCredits(w http.ResponseWriter, r *http.Request)
}

type BillingHandler interface {
	AddCredits(w http.ResponseWriter, r *http.Request)
	PaymentSuccess(w http.ResponseWriter, r *http.Request)
	SaveBillingAddress(w http.ResponseWriter, r *http.Request)
	GetBillingAddress(w http.ResponseWriter, r *http.Request)
	PaymentHistory(w http.ResponseWriter, r *http.Request)
}

type LogHandler interface {
	ListLogs(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
}

// Middleware guards routes by token kind.
type Middleware interface {
	Session(next http.Handler) http.Handler
	APIToken(next http.Handler) http.Handler
}

type Handlers struct {
	AuthHandler        AuthHandler
	CredentialsHandler CredentialsHandler
	TokenHandler       TokenHandler
	UsageHandler       UsageHandler
	BillingHandler     BillingHandler
	LogHandler         LogHandler
	OrderHandler       OrderHandler

	middleware     Middleware
	allowedOrigins []string
}

func New(s *service.Services, m Middleware, allowedOrigins []string) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		CredentialsHandler: credentialshandlers.New(s.CredentialService),
		TokenHandler:       tokenshandlers.New(s.TokenService),
		UsageHandler:       usagehandlers.New(s.UsageService),
		BillingHandler:     billinghandlers.New(s.BillingService),
		LogHandler:         logshandlers.New(s.AuditService),
		OrderHandler:       ordershandlers.New(s.OrderService),
		middleware:         m,
		allowedOrigins:     allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		cors.Handler(cors.Options{
			AllowedOrigins:   h.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}),
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/send-otp", h.AuthHandler.SendOTP)
		r.Post("/verify-otp", h.AuthHandler.VerifyOTP)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(h.middleware.Session)
			r.Post("/set-credentials", h.CredentialsHandler.SetCredentials)
			r.Get("/create-access-token", h.TokenHandler.CreateAccessToken)
			r.Get("/get-access-token", h.TokenHandler.GetAccessToken)
			r.Delete("/delete-access-token", h.TokenHandler.DeleteAccessToken)
		})
	})

	r.Route("/settings", func(r chi.Router) {
		r.Use(h.middleware.Session)
		r.Get("/get-credits", h.UsageHandler.GetCredits)
		r.Get("/get_monthwise_credits", h.UsageHandler.GetMonthwiseCredits)
		r.Post("/add-credits", h.BillingHandler.AddCredits)
		r.Post("/payment-success", h.BillingHandler.PaymentSuccess)
		r.Post("/save_billing_address", h.BillingHandler.SaveBillingAddress)
		r.Get("/get_billing_address", h.BillingHandler.GetBillingAddress)
		r.Get("/payment-history", h.BillingHandler.PaymentHistory)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(h.middleware.Session).Get("/logs", h.LogHandler.ListLogs)
		r.With(h.middleware.APIToken).Post("/create-order", h.OrderHandler.CreateOrder)
	})

	return r
}
