package authservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/mailer"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mocks.go -package=authservice

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Wallets interface {
	EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	InitialCredits() decimal.Decimal
}

type OTPStore interface {
	Generate(key string) (string, error)
	Consume(key, code string) bool
	Drop(key string)
}

type otpMail struct {
	Username string
	Code     string
	TTL      string
}

type welcomeMail struct {
	Username string
	Credits  string
}

type Service struct {
	userRepo    Repo
	wallets     Wallets
	otps        OTPStore
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	mailer      mailer.Client
	txManager   pg.TXManager
	sessionTTL  time.Duration
	otpTTL      time.Duration
	now         func() time.Time
}

type Options struct {
	SessionTTL time.Duration
	OTPTTL     time.Duration
}

func New(repo Repo, wallets Wallets, otps OTPStore, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, mail mailer.Client, txManager pg.TXManager, opts Options) *Service {
	return &Service{
		userRepo:    repo,
		wallets:     wallets,
		otps:        otps,
		hashService: hashService,
		jwtService:  jwtService,
		mailer:      mail,
		txManager:   txManager,
		sessionTTL:  opts.SessionTTL,
		otpTTL:      opts.OTPTTL,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SendOTP mails a one-time signup code to an unregistered address.
func (s *Service) SendOTP(ctx context.Context, email, username string) error {
	email = normalizeEmail(email)
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return domain.ErrUserExists
	}

	code, err := s.otps.Generate(email)
	if err != nil {
		zap.L().Error("can't generate otp: ", zap.Error(err))
		return err
	}

	err = s.mailer.Send(mailer.OTPTemplate, username, email, otpMail{
		Username: username,
		Code:     code,
		TTL:      fmt.Sprintf("%d minutes", int(s.otpTTL.Minutes())),
	})
	if err != nil {
		s.otps.Drop(email)
		zap.L().Error("can't send otp email: ", zap.Error(err))
		return err
	}

	zap.L().Info("otp sent", zap.String("email", email))
	return nil
}

// Register consumes the OTP and creates the user together with the wallet.
func (s *Service) Register(ctx context.Context, email, code, username, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if !s.otps.Consume(email, code) {
		zap.L().Info("invalid otp", zap.String("email", email))
		return nil, domain.ErrInvalidOTP
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			return err
		}
		user = created
		_, err = s.wallets.EnsureWallet(ctx, created.ID)
		return err
	})
	if err != nil {
		zap.L().Error("can't register user: ", zap.Error(err))
		return nil, err
	}

	err = s.mailer.Send(mailer.WelcomeTemplate, username, email, welcomeMail{
		Username: username,
		Credits:  s.wallets.InitialCredits().String(),
	})
	if err != nil {
		zap.L().Warn("can't send welcome email", zap.String("email", email), zap.Error(err))
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("email", email), zap.Error(err))
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("email", email))
		return nil, domain.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	expirationTime := s.now().Add(s.sessionTTL)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
