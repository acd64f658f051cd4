package tokenservice

import (
	"context"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=tokenservice.go -destination=mocks.go -package=tokenservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	SetAccessToken(ctx context.Context, userID int, token, jti string) (bool, error)
	ClearAccessToken(ctx context.Context, userID int, jti string) error
}

type RevokedRepo interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type Wallets interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type Credentials interface {
	VerifyStored(ctx context.Context, userID int) error
}

type Service struct {
	users       UserRepo
	revoked     RevokedRepo
	wallets     Wallets
	credentials Credentials
	jwtService  auth.JWTServiceInterface
	txManager   pg.TXManager
	newID       func() string
}

func New(users UserRepo, revoked RevokedRepo, wallets Wallets, credentials Credentials, jwtService auth.JWTServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		users:       users,
		revoked:     revoked,
		wallets:     wallets,
		credentials: credentials,
		jwtService:  jwtService,
		txManager:   txManager,
		newID:       uuid.NewString,
	}
}

// requireCredits gates token operations on a strictly positive balance.
func (s *Service) requireCredits(ctx context.Context, userID int) error {
	wallet, err := s.wallets.GetWallet(ctx, userID)
	if err != nil {
		return err
	}
	if !wallet.Credits.IsPositive() {
		return domain.ErrInsufficientCredits
	}
	return nil
}

func (s *Service) findUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to find user", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// Issue creates the user's API token. A user holds at most one active token.
func (s *Service) Issue(ctx context.Context, userID int) (string, error) {
	if err := s.requireCredits(ctx, userID); err != nil {
		return "", err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if user.HasActiveToken() {
		return "", domain.ErrTokenAlreadyExists
	}

	if err := s.credentials.VerifyStored(ctx, userID); err != nil {
		return "", err
	}

	jti := s.newID()
	token, err := s.jwtService.GenerateAPIToken(userID, jti)
	if err != nil {
		zap.L().Error("can't generate api token", zap.Int("userID", userID), zap.Error(err))
		return "", err
	}

	stored, err := s.users.SetAccessToken(ctx, userID, token, jti)
	if err != nil {
		zap.L().Error("can't store api token", zap.Int("userID", userID), zap.Error(err))
		return "", err
	}
	if !stored {
		return "", domain.ErrTokenAlreadyExists
	}

	zap.L().Info("api token issued", zap.Int("userID", userID), zap.String("jti", jti))
	return token, nil
}

func (s *Service) Get(ctx context.Context, userID int) (string, error) {
	if err := s.requireCredits(ctx, userID); err != nil {
		return "", err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if !user.HasActiveToken() {
		return "", domain.ErrTokenNotFound
	}
	return user.AccessToken, nil
}

// Revoke blacklists the active jti and detaches the token from the user.
// The jti stays revoked forever.
func (s *Service) Revoke(ctx context.Context, userID int) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasActiveToken() {
		return domain.ErrTokenNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.revoked.Revoke(ctx, user.JTI); err != nil {
			return err
		}
		return s.users.ClearAccessToken(ctx, userID, user.JTI)
	})
	if err != nil {
		zap.L().Error("can't revoke api token", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	zap.L().Info("api token revoked", zap.Int("userID", userID), zap.String("jti", user.JTI))
	return nil
}

func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.revoked.IsRevoked(ctx, jti)
}

func (s *Service) Validate(ctx context.Context, jti string) error {
	revoked, err := s.IsRevoked(ctx, jti)
	if err != nil {
		zap.L().Error("can't check token revocation", zap.String("jti", jti), zap.Error(err))
		return err
	}
	if revoked {
		return domain.ErrTokenRevoked
	}
	return nil
}
