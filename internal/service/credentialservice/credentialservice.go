package credentialservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=credentialservice.go -destination=mocks.go -package=credentialservice

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	UpdateCredentials(ctx context.Context, userID int, keyID, encryptedSecret string) error
}

type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(token string) (string, error)
}

type Verifier interface {
	ValidateCredentials(ctx context.Context, creds domain.Credentials) (bool, error)
}

type Service struct {
	repo     Repo
	cipher   Cipher
	verifier Verifier
}

func New(repo Repo, cipher Cipher, verifier Verifier) *Service {
	return &Service{
		repo:     repo,
		cipher:   cipher,
		verifier: verifier,
	}
}

// SetCredentials verifies the pair against the gateway and stores it with
// the secret encrypted.
func (s *Service) SetCredentials(ctx context.Context, userID int, keyID, keySecret string) error {
	keyID = strings.TrimSpace(keyID)
	keySecret = strings.TrimSpace(keySecret)
	if keyID == "" || keySecret == "" {
		return fmt.Errorf("%w: key_id and key_secret are required", domain.ErrMissingParameter)
	}

	if err := s.verify(ctx, domain.Credentials{KeyID: keyID, KeySecret: keySecret}); err != nil {
		zap.L().Info("gateway credentials rejected", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	encrypted, err := s.cipher.Encrypt(keySecret)
	if err != nil {
		zap.L().Error("failed to encrypt gateway secret", zap.Int("userID", userID), zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	if err := s.repo.UpdateCredentials(ctx, userID, keyID, encrypted); err != nil {
		zap.L().Error("failed to store gateway credentials", zap.Int("userID", userID), zap.Error(err))
		return err
	}

	zap.L().Info("gateway credentials updated", zap.Int("userID", userID), zap.String("keyID", keyID))
	return nil
}

// GetCredentials returns the user's decrypted key pair.
func (s *Service) GetCredentials(ctx context.Context, userID int) (domain.Credentials, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to find user", zap.Int("userID", userID), zap.Error(err))
		return domain.Credentials{}, err
	}
	if user == nil {
		return domain.Credentials{}, domain.ErrUserNotFound
	}
	if !user.HasCredentials() {
		return domain.Credentials{}, domain.ErrCredentialsNotConfigured
	}

	secret, err := s.cipher.Decrypt(user.GatewayKeySecret)
	if err != nil {
		zap.L().Error("failed to decrypt gateway secret", zap.Int("userID", userID), zap.Error(err))
		return domain.Credentials{}, domain.ErrDecryption
	}
	return domain.Credentials{KeyID: user.GatewayKeyID, KeySecret: secret}, nil
}

func (s *Service) VerifyStored(ctx context.Context, userID int) error {
	creds, err := s.GetCredentials(ctx, userID)
	if err != nil {
		return err
	}
	return s.verify(ctx, creds)
}

func (s *Service) verify(ctx context.Context, creds domain.Credentials) error {
	ok, err := s.verifier.ValidateCredentials(ctx, creds)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrGatewayUnexpected, err)
	}
	if !ok {
		return domain.ErrCredentialsInvalid
	}
	return nil
}
