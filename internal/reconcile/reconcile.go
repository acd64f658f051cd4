// Package reconcile restores the one-wallet-per-user invariant in the
// background.
package reconcile

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=reconcile.go -destination=mocks.go -package=reconcile

const (
	defaultLimit   = 1000
	defaultWorkers = 10
)

type Repo interface {
	FindUsersWithoutWallet(ctx context.Context, limit uint32) ([]int, error)
}

type Wallets interface {
	EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type Service struct {
	repo       Repo
	wallets    Wallets
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration
	inFlight   sync.Map
}

func New(repo Repo, wallets Wallets, interval time.Duration) *Service {
	return &Service{
		repo:       repo,
		wallets:    wallets,
		limit:      defaultLimit,
		workerPool: NewWorkerPool(defaultWorkers),
		interval:   interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("wallet reconciler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping wallet reconciler")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				zap.L().Error("wallet reconciliation failed", zap.Error(err))
			}
		}
	}
}

// RunOnce creates wallets for users that have none and waits for the
// pass to finish. It returns the number of wallets ensured.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	userIDs, err := s.repo.FindUsersWithoutWallet(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch users without wallet", zap.Error(err))
		return 0, err
	}
	if len(userIDs) == 0 {
		return 0, nil
	}

	var (
		g       errgroup.Group
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		errs    []error
	)
	for _, userID := range userIDs {
		userID := userID

		if _, loaded := s.inFlight.LoadOrStore(userID, struct{}{}); loaded {
			continue
		}

		wg.Add(1)
		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer wg.Done()
				defer s.inFlight.Delete(userID)

				_, err := s.wallets.EnsureWallet(ctx, userID)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					errs = append(errs, err)
					return err
				}
				created++
				return nil
			})
			if err != nil {
				wg.Done()
				s.inFlight.Delete(userID)
				return err
			}
			return nil
		})
	}

	dispatchErr := g.Wait()
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if created > 0 {
		zap.L().Info("wallets reconciled", zap.Int("count", created))
	}
	return created, errors.Join(append(errs, dispatchErr)...)
}
