package orderservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/gateway"
	"github.com/GlebRadaev/cloudlesspay/internal/service/auditservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=orderservice.go -destination=mocks.go -package=orderservice

const (
	Endpoint        = "/api/create-order"
	DefaultCurrency = "INR"
	DefaultReceipt  = "receipt#1"
	SuccessMessage  = "Order created successfully"
)

var (
	callCharge = decimal.NewFromInt(1)
	minorUnits = decimal.NewFromInt(100)
)

type Gateway interface {
	CreateOrder(ctx context.Context, creds domain.Credentials, params gateway.OrderParams) (*gateway.Order, error)
}

type Credentials interface {
	GetCredentials(ctx context.Context, userID int) (domain.Credentials, error)
}

type Wallets interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type Audit interface {
	Record(ctx context.Context, e auditservice.Entry) error
}

type Request struct {
	UserID                int
	Amount                decimal.Decimal
	Currency              string
	Receipt               string
	Notes                 map[string]string
	PartialPayment        bool
	FirstPaymentMinAmount *decimal.Decimal
	PaymentCapture        bool
	Origin                string
	UserAgent             string
}

// Result is the gateway order with amounts also given in major units.
type Result struct {
	gateway.Order
	AmountMajor    decimal.Decimal `json:"amount_major"`
	AmountDueMajor decimal.Decimal `json:"amount_due_major"`
}

type Response struct {
	Order   *Result `json:"order"`
	Message string  `json:"message"`
}

type Service struct {
	gateway     Gateway
	credentials Credentials
	wallets     Wallets
	audit       Audit
}

func New(gw Gateway, credentials Credentials, wallets Wallets, audit Audit) *Service {
	return &Service{
		gateway:     gw,
		credentials: credentials,
		wallets:     wallets,
		audit:       audit,
	}
}

// CreateOrder is the billable call. Validation runs first and the first
// failure wins. One credit is debited only after the gateway accepted the
// order.
func (s *Service) CreateOrder(ctx context.Context, req Request) (*Response, error) {
	params, err := s.buildParams(req)
	if err != nil {
		return nil, s.fail(ctx, req, err)
	}

	creds, err := s.credentials.GetCredentials(ctx, req.UserID)
	if err != nil {
		return nil, s.fail(ctx, req, err)
	}

	if err := s.checkCredits(ctx, req.UserID); err != nil {
		return nil, s.fail(ctx, req, err)
	}

	order, err := s.gateway.CreateOrder(ctx, creds, params)
	if err != nil {
		return nil, s.fail(ctx, req, classify(err))
	}

	resp := &Response{
		Order: &Result{
			Order:          *order,
			AmountMajor:    toMajor(order.Amount),
			AmountDueMajor: toMajor(order.AmountDue),
		},
		Message: SuccessMessage,
	}

	if _, err := s.wallets.Debit(ctx, req.UserID, callCharge); err != nil {
		zap.L().Error("missed debit after gateway accepted order",
			zap.Int("userID", req.UserID),
			zap.String("orderID", order.ID),
			zap.Error(err))
	}

	s.record(ctx, req, resp, domain.LogSuccess)
	zap.L().Info("order created", zap.Int("userID", req.UserID), zap.String("orderID", order.ID))
	return resp, nil
}

func (s *Service) buildParams(req Request) (gateway.OrderParams, error) {
	if !req.Amount.IsPositive() {
		return gateway.OrderParams{}, fmt.Errorf("%w: amount is required and must be a positive number", domain.ErrInvalidAmount)
	}
	amount, ok := toMinor(req.Amount)
	if !ok {
		return gateway.OrderParams{}, fmt.Errorf("%w: amount supports at most two decimal places", domain.ErrInvalidAmount)
	}

	params := gateway.OrderParams{
		Amount:         amount,
		Currency:       req.Currency,
		Receipt:        req.Receipt,
		Notes:          req.Notes,
		PaymentCapture: req.PaymentCapture,
	}
	if params.Currency == "" {
		params.Currency = DefaultCurrency
	}
	if params.Receipt == "" {
		params.Receipt = DefaultReceipt
	}

	if req.PartialPayment {
		if req.FirstPaymentMinAmount == nil {
			return gateway.OrderParams{}, fmt.Errorf("%w: first_payment_min_amount is required if partial_payment is true", domain.ErrMissingParameter)
		}
		minAmount := *req.FirstPaymentMinAmount
		if minAmount.GreaterThanOrEqual(req.Amount) {
			return gateway.OrderParams{}, fmt.Errorf("%w: first payment minimum amount must be less than total order amount", domain.ErrInvalidAmount)
		}
		minMinor, ok := toMinor(minAmount)
		if !ok || minMinor <= 0 {
			return gateway.OrderParams{}, fmt.Errorf("%w: first_payment_min_amount must be a positive amount", domain.ErrInvalidAmount)
		}
		params.PartialPayment = true
		params.FirstPaymentMinAmount = minMinor
	}
	return params, nil
}

func (s *Service) checkCredits(ctx context.Context, userID int) error {
	wallet, err := s.wallets.GetWallet(ctx, userID)
	if errors.Is(err, domain.ErrWalletNotFound) {
		return domain.ErrInsufficientCredits
	}
	if err != nil {
		return err
	}
	if wallet.Credits.LessThan(callCharge) {
		return domain.ErrInsufficientCredits
	}
	return nil
}

func (s *Service) fail(ctx context.Context, req Request, err error) error {
	s.record(ctx, req, err.Error(), domain.LogFailure)
	return err
}

// record never fails the request; store errors are already logged by the
// audit service.
func (s *Service) record(ctx context.Context, req Request, payload any, status domain.LogStatus) {
	_ = s.audit.Record(ctx, auditservice.Entry{
		UserID:   req.UserID,
		Endpoint: Endpoint,
		Domain:   req.Origin,
		Platform: auditservice.ClassifyClient(req.UserAgent),
		Payload:  payload,
		Status:   status,
	})
}

func classify(err error) error {
	if errors.Is(err, gateway.ErrBadRequest) {
		return fmt.Errorf("%w: %v", domain.ErrGatewayBadRequest, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrGatewayUnexpected, err)
}

func toMinor(amount decimal.Decimal) (int64, bool) {
	minor := amount.Mul(minorUnits)
	if !minor.IsInteger() {
		return 0, false
	}
	return minor.IntPart(), true
}

func toMajor(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
