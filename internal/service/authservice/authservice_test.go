package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/mailer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	repo    *MockRepo
	wallets *MockWallets
	otps    *MockOTPStore
	hash    *auth.MockHashServiceInterface
	jwt     *auth.MockJWTServiceInterface
	mailer  *mailer.MockClient
	tx      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:    NewMockRepo(ctrl),
		wallets: NewMockWallets(ctrl),
		otps:    NewMockOTPStore(ctrl),
		hash:    auth.NewMockHashServiceInterface(ctrl),
		jwt:     auth.NewMockJWTServiceInterface(ctrl),
		mailer:  mailer.NewMockClient(ctrl),
		tx:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.wallets, m.otps, m.hash, m.jwt, m.mailer, m.tx, Options{
		SessionTTL: time.Hour,
		OTPTTL:     10 * time.Minute,
	})
	return service, m
}

func runTx(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func TestSendOTP(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		email         string
		prepareMock   func()
		expectedError error
	}{
		{
			name:  "Successful send",
			email: " Alice@Example.com ",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				m.otps.EXPECT().Generate("alice@example.com").Return("123456", nil)
				m.mailer.EXPECT().Send(mailer.OTPTemplate, "alice", "alice@example.com", otpMail{
					Username: "alice",
					Code:     "123456",
					TTL:      "10 minutes",
				}).Return(nil)
			},
		},
		{
			name:  "Email already registered",
			email: "alice@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(&domain.User{ID: 1}, nil)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name:  "Error finding user",
			email: "alice@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:  "Mail failure drops the code",
			email: "alice@example.com",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
				m.otps.EXPECT().Generate("alice@example.com").Return("123456", nil)
				m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
				m.otps.EXPECT().Drop("alice@example.com")
			},
			expectedError: errors.New("smtp down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.SendOTP(context.Background(), tt.email, "alice")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		code          string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name: "Successful registration",
			code: "123456",
			prepareMock: func() {
				m.otps.EXPECT().Consume("alice@example.com", "123456").Return(true)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				m.wallets.EXPECT().EnsureWallet(gomock.Any(), 1).Return(&domain.Wallet{UserID: 1}, nil)
				m.wallets.EXPECT().InitialCredits().Return(decimal.NewFromInt(200))
				m.mailer.EXPECT().Send(mailer.WelcomeTemplate, "alice", "alice@example.com", welcomeMail{Username: "alice", Credits: "200"}).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           1,
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "hashedpassword",
				IsActive:     true,
			},
		},
		{
			name: "Invalid otp",
			code: "000000",
			prepareMock: func() {
				m.otps.EXPECT().Consume("alice@example.com", "000000").Return(false)
			},
			expectedError: domain.ErrInvalidOTP,
		},
		{
			name: "Error hashing password",
			code: "123456",
			prepareMock: func() {
				m.otps.EXPECT().Consume("alice@example.com", "123456").Return(true)
				m.hash.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "User already exists",
			code: "123456",
			prepareMock: func() {
				m.otps.EXPECT().Consume("alice@example.com", "123456").Return(true)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUserExists)
			},
			expectedError: domain.ErrUserExists,
		},
		{
			name: "Error creating wallet",
			code: "123456",
			prepareMock: func() {
				m.otps.EXPECT().Consume("alice@example.com", "123456").Return(true)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 1
					return user, nil
				})
				m.wallets.EXPECT().EnsureWallet(gomock.Any(), 1).Return(nil, errors.New("wallet creation failed"))
			},
			expectedError: errors.New("wallet creation failed"),
		},
		{
			name: "Welcome email failure is ignored",
			code: "123456",
			prepareMock: func() {
				m.otps.EXPECT().Consume("alice@example.com", "123456").Return(true)
				m.hash.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				m.tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
				m.wallets.EXPECT().EnsureWallet(gomock.Any(), 2).Return(&domain.Wallet{UserID: 2}, nil)
				m.wallets.EXPECT().InitialCredits().Return(decimal.NewFromInt(200))
				m.mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
			},
			expectedUser: &domain.User{
				ID:           2,
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "hashedpassword",
				IsActive:     true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "alice@example.com", tt.code, "alice", "testpassword")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorContains(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)

	activeUser := &domain.User{
		ID:           1,
		Email:        "alice@example.com",
		PasswordHash: "hashedpassword",
		IsActive:     true,
	}

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(activeUser, nil)
				m.hash.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedUser: activeUser,
		},
		{
			name:     "Invalid credentials - user not found",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(nil, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Invalid credentials - incorrect password",
			password: "wrongpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(activeUser, nil)
				m.hash.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Inactive account",
			password: "testpassword",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "alice@example.com").Return(&domain.User{ID: 3, PasswordHash: "hashedpassword"}, nil)
			},
			expectedError: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), "alice@example.com", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name:   "Successful token generation",
			userID: 1,
			prepareMock: func() {
				m.jwt.EXPECT().GenerateJWT(1, now.Add(time.Hour)).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
		},
		{
			name:   "Error generating token",
			userID: 1,
			prepareMock: func() {
				m.jwt.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken(tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
