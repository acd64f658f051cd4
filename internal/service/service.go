package service

import (
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/gateway"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/auth"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/billing"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/credentials"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/logs"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/orders"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/tokens"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers/usage"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/internal/repo"
	"github.com/GlebRadaev/cloudlesspay/internal/service/auditservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/authservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/billingservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/credentialservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/orderservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/tokenservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/usageservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/walletservice"
	pkgauth "github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/mailer"
	"github.com/GlebRadaev/cloudlesspay/pkg/otp"
	"github.com/shopspring/decimal"
)

// Deps are the collaborators built by the application from configuration.
type Deps struct {
	Cipher         credentialservice.Cipher
	Gateway        *gateway.Client
	Mailer         mailer.Client
	OTPs           *otp.Store
	JWT            pkgauth.JWTServiceInterface
	Hash           pkgauth.HashServiceInterface
	InitialCredits decimal.Decimal
	Platform       domain.Credentials
	SessionTTL     time.Duration
	OTPTTL         time.Duration
}

type Services struct {
	AuthService       auth.Service
	CredentialService credentials.Service
	TokenService      tokens.Service
	UsageService      usage.Service
	BillingService    billing.Service
	AuditService      logs.Service
	OrderService      orders.Service

	Revocations   pkgauth.RevocationChecker
	WalletService *walletservice.Service
}

func New(repos *repo.Repositories, txManager pg.TXManager, deps Deps) *Services {
	walletService := walletservice.New(repos.WalletRepo, deps.InitialCredits)
	auditService := auditservice.New(repos.APILogRepo)
	credentialService := credentialservice.New(repos.UserRepo, deps.Cipher, deps.Gateway)
	tokenService := tokenservice.New(repos.UserRepo, repos.TokenRepo, walletService, credentialService, deps.JWT, txManager)
	authService := authservice.New(repos.UserRepo, walletService, deps.OTPs, deps.Hash, deps.JWT, deps.Mailer, txManager, authservice.Options{
		SessionTTL: deps.SessionTTL,
		OTPTTL:     deps.OTPTTL,
	})

	return &Services{
		AuthService:       authService,
		CredentialService: credentialService,
		TokenService:      tokenService,
		UsageService:      usageservice.New(repos.APILogRepo, walletService),
		BillingService:    billingservice.New(repos.UserRepo, repos.PaymentRepo, walletService, deps.Gateway, deps.Mailer, txManager, deps.Platform),
		AuditService:      auditService,
		OrderService:      orderservice.New(deps.Gateway, credentialService, walletService, auditService),
		Revocations:       tokenService,
		WalletService:     walletService,
	}
}
