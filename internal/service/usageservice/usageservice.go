package usageservice

import (
	"context"
	"fmt"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usageservice.go -destination=mocks.go -package=usageservice

const (
	ThisMonth         = "this-month"
	LastMonth         = "last-month"
	LastPreviousMonth = "last-previous-month"
)

var monthOffsets = map[string]int{
	ThisMonth:         0,
	LastMonth:         1,
	LastPreviousMonth: 2,
}

type Repo interface {
	CountSuccessful(ctx context.Context, userID int, start, end time.Time) (int, error)
}

type Wallets interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type Summary struct {
	TotalCredits         decimal.Decimal
	CreditsUsedThisMonth int
}

type Service struct {
	repo    Repo
	wallets Wallets
	now     func() time.Time
}

func New(repo Repo, wallets Wallets) *Service {
	return &Service{
		repo:    repo,
		wallets: wallets,
		now:     time.Now,
	}
}

// MonthBounds returns the first second and the last second of the calendar
// month selected by label, relative to ref.
func MonthBounds(label string, ref time.Time) (time.Time, time.Time, error) {
	offset, ok := monthOffsets[label]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: unknown month %q", domain.ErrInvalidInput, label)
	}
	start := time.Date(ref.Year(), ref.Month()-time.Month(offset), 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end, nil
}

func (s *Service) CountSuccessfulCalls(ctx context.Context, userID int, start, end time.Time) (int, error) {
	count, err := s.repo.CountSuccessful(ctx, userID, start, end)
	if err != nil {
		zap.L().Error("failed to count successful calls", zap.Int("userID", userID), zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (s *Service) Summary(ctx context.Context, userID int) (*Summary, error) {
	wallet, err := s.wallets.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	start, end, err := MonthBounds(ThisMonth, s.now())
	if err != nil {
		return nil, err
	}
	used, err := s.CountSuccessfulCalls(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalCredits:         wallet.Credits,
		CreditsUsedThisMonth: used,
	}, nil
}

func (s *Service) Monthwise(ctx context.Context, userID int, label string) (int, error) {
	start, end, err := MonthBounds(label, s.now())
	if err != nil {
		return 0, err
	}
	return s.CountSuccessfulCalls(ctx, userID, start, end)
}
