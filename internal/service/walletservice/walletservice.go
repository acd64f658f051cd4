package walletservice

import (
	"context"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=mocks.go -package=walletservice

type Repo interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	Create(ctx context.Context, userID int, credits decimal.Decimal) (*domain.Wallet, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
}

type Service struct {
	repo           Repo
	initialCredits decimal.Decimal
}

func New(repo Repo, initialCredits decimal.Decimal) *Service {
	return &Service{
		repo:           repo,
		initialCredits: initialCredits,
	}
}

func (s *Service) InitialCredits() decimal.Decimal {
	return s.initialCredits
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}
	return wallet, nil
}

// EnsureWallet creates the user's wallet with the opening balance unless
// one already exists.
func (s *Service) EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.repo.Create(ctx, userID, s.initialCredits)
	if err != nil {
		zap.L().Error("failed to ensure wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) Credit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	wallet, err := s.repo.Credit(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, domain.ErrWalletNotFound
	}

	zap.L().Info("wallet credited",
		zap.Int("userID", userID),
		zap.String("amount", amount.String()),
		zap.String("credits", wallet.Credits.String()))
	return wallet, nil
}

// Debit subtracts amount atomically. Concurrent debits never take the
// balance below zero.
func (s *Service) Debit(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	wallet, err := s.repo.Debit(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	existing, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrWalletNotFound
	}
	return nil, domain.ErrInsufficientCredits
}

func (s *Service) HasSufficient(ctx context.Context, userID int, amount decimal.Decimal) (bool, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return false, err
	}
	return wallet.Credits.GreaterThanOrEqual(amount), nil
}
