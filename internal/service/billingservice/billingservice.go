package billingservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/gateway"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/pkg/mailer"
	"github.com/GlebRadaev/cloudlesspay/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=billingservice.go -destination=mocks.go -package=billingservice

const (
	topUpCurrency  = "INR"
	unknownMethod  = "Unknown"
	minorPerCredit = 100
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SaveBillingAddress(ctx context.Context, userID int, address domain.BillingAddress) error
	GetBillingAddress(ctx context.Context, userID int) (*domain.BillingAddress, error)
}

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.PaymentHistory) (*domain.PaymentHistory, error)
	List(ctx context.Context, userID int, q domain.ListQuery) (*domain.PaymentPage, error)
}

type Wallets interface {
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, creds domain.Credentials, params gateway.OrderParams) (*gateway.Order, error)
	FetchPayment(ctx context.Context, creds domain.Credentials, paymentID string) (*gateway.Payment, error)
}

// TopUp is a platform order the client pays through the gateway checkout.
type TopUp struct {
	OrderID string
	Amount  int64
	KeyID   string
}

type Confirmation struct {
	OrderID   string
	PaymentID string
	Signature string
	Amount    int64
}

type paymentMail struct {
	Username      string
	Amount        string
	Method        string
	TransactionID string
}

type Service struct {
	users     UserRepo
	payments  PaymentRepo
	wallets   Wallets
	gateway   Gateway
	mailer    mailer.Client
	txManager pg.TXManager
	platform  domain.Credentials
	verify    func(orderID, paymentID, signature, secret string) bool
	now       func() time.Time
}

func New(users UserRepo, payments PaymentRepo, wallets Wallets, gw Gateway, mail mailer.Client, txManager pg.TXManager, platform domain.Credentials) *Service {
	return &Service{
		users:     users,
		payments:  payments,
		wallets:   wallets,
		gateway:   gw,
		mailer:    mail,
		txManager: txManager,
		platform:  platform,
		verify:    gateway.VerifyPaymentSignature,
		now:       time.Now,
	}
}

func (s *Service) platformConfigured() bool {
	return s.platform.KeyID != "" && s.platform.KeySecret != ""
}

// AddCredits opens a platform order worth amount credits.
func (s *Service) AddCredits(ctx context.Context, userID int, amount int64) (*TopUp, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if !s.platformConfigured() {
		zap.L().Error("platform gateway credentials are not configured")
		return nil, domain.ErrConfiguration
	}

	order, err := s.gateway.CreateOrder(ctx, s.platform, gateway.OrderParams{
		Amount:         amount * minorPerCredit,
		Currency:       topUpCurrency,
		Receipt:        fmt.Sprintf("topup-%d-%d", userID, s.now().Unix()),
		Notes:          map[string]string{"user_id": strconv.Itoa(userID)},
		PaymentCapture: true,
	})
	if err != nil {
		zap.L().Error("can't create top-up order", zap.Int("userID", userID), zap.Error(err))
		return nil, classify(err)
	}

	return &TopUp{
		OrderID: order.ID,
		Amount:  amount * minorPerCredit,
		KeyID:   s.platform.KeyID,
	}, nil
}

// ConfirmPayment credits the wallet for a verified platform payment. The
// payment id is recorded once; a repeated confirmation is rejected.
func (s *Service) ConfirmPayment(ctx context.Context, userID int, c Confirmation) (*domain.Wallet, error) {
	if c.OrderID == "" || c.PaymentID == "" || c.Signature == "" || c.Amount <= 0 {
		return nil, fmt.Errorf("%w: order id, payment id, signature and amount are required", domain.ErrMissingParameter)
	}
	if !s.platformConfigured() {
		return nil, domain.ErrConfiguration
	}
	if !s.verify(c.OrderID, c.PaymentID, c.Signature, s.platform.KeySecret) {
		zap.L().Warn("payment signature mismatch", zap.Int("userID", userID), zap.String("paymentID", c.PaymentID))
		return nil, domain.ErrSignatureInvalid
	}

	payment, err := s.gateway.FetchPayment(ctx, s.platform, c.PaymentID)
	if err != nil {
		zap.L().Error("can't fetch payment", zap.String("paymentID", c.PaymentID), zap.Error(err))
		return nil, classify(err)
	}
	if payment.Amount != 0 && payment.Amount != c.Amount {
		return nil, fmt.Errorf("%w: amount does not match the payment", domain.ErrInvalidInput)
	}
	method := payment.Method
	if method == "" {
		method = unknownMethod
	}

	credits := decimal.New(c.Amount, -2)
	var wallet *domain.Wallet
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.payments.Create(ctx, &domain.PaymentHistory{
			UserID:        userID,
			TransactionID: c.PaymentID,
			Amount:        credits,
			PaymentDate:   s.now(),
			PaymentMethod: method,
			Status:        domain.PaymentCompleted,
		})
		if err != nil {
			return err
		}
		wallet, err = s.wallets.Credit(ctx, userID, credits)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateTransaction) {
			zap.L().Error("can't record payment", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}

	s.notifyPayment(ctx, userID, paymentMail{
		Amount:        credits.StringFixed(2),
		Method:        method,
		TransactionID: c.PaymentID,
	})
	return wallet, nil
}

func (s *Service) notifyPayment(ctx context.Context, userID int, data paymentMail) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		zap.L().Warn("payment email skipped, user lookup failed", zap.Int("userID", userID), zap.Error(err))
		return
	}
	data.Username = user.Username
	if err := s.mailer.Send(mailer.PaymentTemplate, user.Username, user.Email, data); err != nil {
		zap.L().Error("failed to send payment email", zap.Int("userID", userID), zap.Error(err))
	}
}

func (s *Service) SaveBillingAddress(ctx context.Context, userID int, address domain.BillingAddress) error {
	address.GSTNumber = strings.ToUpper(strings.TrimSpace(address.GSTNumber))
	if address.GSTRegistered && !validate.IsGSTNumber(address.GSTNumber) {
		return fmt.Errorf("%w: gst_number is not a valid GSTIN", domain.ErrInvalidInput)
	}
	if !address.GSTRegistered {
		address.GSTNumber = ""
	}

	if err := s.users.SaveBillingAddress(ctx, userID, address); err != nil {
		zap.L().Error("can't save billing address", zap.Int("userID", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GetBillingAddress(ctx context.Context, userID int) (*domain.BillingAddress, error) {
	address, err := s.users.GetBillingAddress(ctx, userID)
	if err != nil {
		zap.L().Error("can't get billing address", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return address, nil
}

func (s *Service) ListPayments(ctx context.Context, userID int, q domain.ListQuery) (*domain.PaymentPage, error) {
	page, err := s.payments.List(ctx, userID, q.Normalized())
	if err != nil {
		zap.L().Error("can't list payments", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return page, nil
}

func classify(err error) error {
	if errors.Is(err, gateway.ErrBadRequest) {
		return fmt.Errorf("%w: %v", domain.ErrGatewayBadRequest, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrGatewayUnexpected, err)
}
