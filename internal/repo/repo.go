package repo

import (
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/internal/reconcile"
	apilogrepo "github.com/GlebRadaev/cloudlesspay/internal/repo/apilog-repo"
	paymentrepo "github.com/GlebRadaev/cloudlesspay/internal/repo/payment-repo"
	tokenrepo "github.com/GlebRadaev/cloudlesspay/internal/repo/token-repo"
	userrepo "github.com/GlebRadaev/cloudlesspay/internal/repo/user-repo"
	walletrepo "github.com/GlebRadaev/cloudlesspay/internal/repo/wallet-repo"
	"github.com/GlebRadaev/cloudlesspay/internal/service/auditservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/authservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/billingservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/credentialservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/tokenservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/usageservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/walletservice"
)

type UserRepo interface {
	authservice.Repo
	credentialservice.Repo
	tokenservice.UserRepo
	billingservice.UserRepo
}

type WalletRepo interface {
	walletservice.Repo
	reconcile.Repo
}

type APILogRepo interface {
	auditservice.Repo
	usageservice.Repo
}

type Repositories struct {
	UserRepo    UserRepo
	WalletRepo  WalletRepo
	TokenRepo   tokenservice.RevokedRepo
	PaymentRepo billingservice.PaymentRepo
	APILogRepo  APILogRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		WalletRepo:  walletrepo.New(conn),
		TokenRepo:   tokenrepo.New(conn),
		PaymentRepo: paymentrepo.New(conn),
		APILogRepo:  apilogrepo.New(conn),
	}
}
