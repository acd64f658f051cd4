package main

import (
	"context"
	"os"

	"github.com/GlebRadaev/cloudlesspay/internal/app"
	"github.com/GlebRadaev/cloudlesspay/internal/config"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/internal/reconcile"
	"github.com/GlebRadaev/cloudlesspay/internal/repo"
	"github.com/GlebRadaev/cloudlesspay/internal/service/usageservice"
	"github.com/GlebRadaev/cloudlesspay/internal/service/walletservice"
	"github.com/GlebRadaev/cloudlesspay/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd(connect).Execute(); err != nil {
		log.Fatal().Err(err).Msg("creditctl failed")
	}
}

// connect opens the database named by dsn, or by the environment when dsn
// is empty.
func connect(ctx context.Context, dsn string) (*backend, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dsn != "" {
		cfg.Database = dsn
	}
	if err := logger.InitLogger(cfg); err != nil {
		return nil, err
	}

	pool, err := app.OpenPool(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repos := repo.New(pg.New(pool))
	wallets := walletservice.New(repos.WalletRepo, decimal.NewFromInt(cfg.InitialCredits))
	return &backend{
		wallets:    wallets,
		usage:      usageservice.New(repos.APILogRepo, wallets),
		reconciler: reconcile.New(repos.WalletRepo, wallets, cfg.ReconcileInterval),
		close:      pool.Close,
	}, nil
}
