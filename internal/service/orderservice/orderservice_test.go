package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/gateway"
	"github.com/GlebRadaev/cloudlesspay/internal/service/auditservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var creds = domain.Credentials{KeyID: "rzp_test_1", KeySecret: "s3cret"}

const chromeUA = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

func NewMock(t *testing.T) (*Service, *MockGateway, *MockCredentials, *MockWallets, *MockAudit) {
	ctrl := gomock.NewController(t)
	gw := NewMockGateway(ctrl)
	credentials := NewMockCredentials(ctrl)
	wallets := NewMockWallets(ctrl)
	audit := NewMockAudit(ctrl)
	return New(gw, credentials, wallets, audit), gw, credentials, wallets, audit
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func expectFailure(t *testing.T, audit *MockAudit, substr string) {
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e auditservice.Entry) error {
		assert.Equal(t, domain.LogFailure, e.Status)
		assert.Equal(t, Endpoint, e.Endpoint)
		payload, ok := e.Payload.(string)
		assert.True(t, ok)
		assert.Contains(t, payload, substr)
		return nil
	})
}

func TestCreateOrder_Validation(t *testing.T) {
	service, _, credentials, wallets, audit := NewMock(t)

	tests := []struct {
		name          string
		req           Request
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Zero amount",
			req:           Request{UserID: 1, Amount: decimal.Zero},
			prepareMock:   func() { expectFailure(t, audit, "positive number") },
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Negative amount",
			req:           Request{UserID: 1, Amount: dec("-5")},
			prepareMock:   func() { expectFailure(t, audit, "") },
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Sub-minor precision",
			req:           Request{UserID: 1, Amount: dec("10.005")},
			prepareMock:   func() { expectFailure(t, audit, "two decimal places") },
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Partial payment without minimum",
			req:           Request{UserID: 1, Amount: dec("500"), PartialPayment: true},
			prepareMock:   func() { expectFailure(t, audit, "first_payment_min_amount is required") },
			expectedError: domain.ErrMissingParameter,
		},
		{
			name:          "Partial minimum not below total",
			req:           Request{UserID: 1, Amount: dec("500"), PartialPayment: true, FirstPaymentMinAmount: decPtr("600")},
			prepareMock:   func() { expectFailure(t, audit, "must be less than total") },
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name:          "Partial minimum equal to total",
			req:           Request{UserID: 1, Amount: dec("500"), PartialPayment: true, FirstPaymentMinAmount: decPtr("500")},
			prepareMock:   func() { expectFailure(t, audit, "") },
			expectedError: domain.ErrInvalidAmount,
		},
		{
			name: "Credentials not configured",
			req:  Request{UserID: 1, Amount: dec("500")},
			prepareMock: func() {
				credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(domain.Credentials{}, domain.ErrCredentialsNotConfigured)
				expectFailure(t, audit, "")
			},
			expectedError: domain.ErrCredentialsNotConfigured,
		},
		{
			name: "Empty wallet",
			req:  Request{UserID: 1, Amount: dec("500")},
			prepareMock: func() {
				credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(creds, nil)
				wallets.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Credits: decimal.Zero}, nil)
				expectFailure(t, audit, "insufficient credits")
			},
			expectedError: domain.ErrInsufficientCredits,
		},
		{
			name: "Missing wallet",
			req:  Request{UserID: 1, Amount: dec("500")},
			prepareMock: func() {
				credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(creds, nil)
				wallets.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, domain.ErrWalletNotFound)
				expectFailure(t, audit, "")
			},
			expectedError: domain.ErrInsufficientCredits,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			resp, err := service.CreateOrder(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestCreateOrder_Success(t *testing.T) {
	service, gw, credentials, wallets, audit := NewMock(t)

	minAmount := decPtr("100.50")
	req := Request{
		UserID:                1,
		Amount:                dec("500.25"),
		Notes:                 map[string]string{"customer": "42"},
		PartialPayment:        true,
		FirstPaymentMinAmount: minAmount,
		PaymentCapture:        true,
		Origin:                "https://shop.example",
		UserAgent:             chromeUA,
	}

	credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(creds, nil)
	wallets.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Credits: dec("3")}, nil)
	gw.EXPECT().CreateOrder(gomock.Any(), creds, gateway.OrderParams{
		Amount:                50025,
		Currency:              DefaultCurrency,
		Receipt:               DefaultReceipt,
		Notes:                 map[string]string{"customer": "42"},
		PartialPayment:        true,
		FirstPaymentMinAmount: 10050,
		PaymentCapture:        true,
	}).Return(&gateway.Order{ID: "order_1", Amount: 50025, AmountDue: 50025, Currency: "INR", Status: "created"}, nil)

	var entry auditservice.Entry
	gomock.InOrder(
		wallets.EXPECT().Debit(gomock.Any(), 1, decimal.NewFromInt(1)).Return(&domain.Wallet{UserID: 1, Credits: dec("2")}, nil),
		audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e auditservice.Entry) error {
			entry = e
			return nil
		}),
	)

	resp, err := service.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, SuccessMessage, resp.Message)
	assert.Equal(t, "order_1", resp.Order.ID)
	assert.True(t, dec("500.25").Equal(resp.Order.AmountMajor))
	assert.True(t, dec("500.25").Equal(resp.Order.AmountDueMajor))

	assert.Equal(t, domain.LogSuccess, entry.Status)
	assert.Equal(t, Endpoint, entry.Endpoint)
	assert.Equal(t, "https://shop.example", entry.Domain)
	assert.Equal(t, "Google Chrome", entry.Platform)
	assert.Equal(t, resp, entry.Payload)
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	service, gw, credentials, wallets, audit := NewMock(t)

	tests := []struct {
		name          string
		gatewayErr    error
		expectedError error
	}{
		{
			name:          "Bad request",
			gatewayErr:    &gateway.APIError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "amount too low"},
			expectedError: domain.ErrGatewayBadRequest,
		},
		{
			name:          "Server error",
			gatewayErr:    &gateway.APIError{StatusCode: 502},
			expectedError: domain.ErrGatewayUnexpected,
		},
		{
			name:          "Transport error",
			gatewayErr:    errors.New("connection reset"),
			expectedError: domain.ErrGatewayUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(creds, nil)
			wallets.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Credits: dec("10")}, nil)
			gw.EXPECT().CreateOrder(gomock.Any(), creds, gomock.Any()).Return(nil, tt.gatewayErr)
			expectFailure(t, audit, "")

			resp, err := service.CreateOrder(context.Background(), Request{UserID: 1, Amount: dec("10")})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestCreateOrder_MissedDebitStillReturnsOrder(t *testing.T) {
	service, gw, credentials, wallets, audit := NewMock(t)

	credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(creds, nil)
	wallets.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Credits: dec("1")}, nil)
	gw.EXPECT().CreateOrder(gomock.Any(), creds, gomock.Any()).Return(&gateway.Order{ID: "order_2", Amount: 1000, AmountDue: 1000}, nil)
	wallets.EXPECT().Debit(gomock.Any(), 1, gomock.Any()).Return(nil, domain.ErrInsufficientCredits)
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := service.CreateOrder(context.Background(), Request{UserID: 1, Amount: dec("10")})
	require.NoError(t, err)
	assert.Equal(t, "order_2", resp.Order.ID)
}

func TestCreateOrder_AuditFailureIsSwallowed(t *testing.T) {
	service, gw, credentials, wallets, audit := NewMock(t)

	credentials.EXPECT().GetCredentials(gomock.Any(), 1).Return(creds, nil)
	wallets.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1, Credits: dec("5")}, nil)
	gw.EXPECT().CreateOrder(gomock.Any(), creds, gomock.Any()).Return(&gateway.Order{ID: "order_3", Amount: 100, AmountDue: 100}, nil)
	wallets.EXPECT().Debit(gomock.Any(), 1, gomock.Any()).Return(&domain.Wallet{UserID: 1, Credits: dec("4")}, nil)
	audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(domain.ErrPersistence)

	resp, err := service.CreateOrder(context.Background(), Request{UserID: 1, Amount: dec("1")})
	require.NoError(t, err)
	assert.Equal(t, "order_3", resp.Order.ID)
}
