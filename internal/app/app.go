package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/cloudlesspay/internal/config"
	"github.com/GlebRadaev/cloudlesspay/internal/domain"
	"github.com/GlebRadaev/cloudlesspay/internal/gateway"
	"github.com/GlebRadaev/cloudlesspay/internal/handlers"
	"github.com/GlebRadaev/cloudlesspay/internal/pg"
	"github.com/GlebRadaev/cloudlesspay/internal/reconcile"
	"github.com/GlebRadaev/cloudlesspay/internal/repo"
	"github.com/GlebRadaev/cloudlesspay/internal/service"
	"github.com/GlebRadaev/cloudlesspay/pkg/auth"
	"github.com/GlebRadaev/cloudlesspay/pkg/clients"
	"github.com/GlebRadaev/cloudlesspay/pkg/logger"
	"github.com/GlebRadaev/cloudlesspay/pkg/mailer"
	"github.com/GlebRadaev/cloudlesspay/pkg/otp"
	"github.com/GlebRadaev/cloudlesspay/pkg/vault"
)

const (
	shutdownTimeout = 5 * time.Second
	otpSweepEvery   = time.Minute
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	pool       *pgxpool.Pool
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	otps       *otp.Store
	reconciler *reconcile.Service

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}
	return a.start(ctx, cfg)
}

func (a *Application) start(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrConfiguration, err)
	}
	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	decimal.MarshalJSONWithoutQuotes = true

	pool, err := OpenPool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}
	a.pool = pool

	deps, err := NewDeps(cfg)
	if err != nil {
		pool.Close()
		return err
	}

	txManager := pg.NewTXManager(pool)
	a.cfg = cfg
	a.otps = deps.OTPs
	a.repo = repo.New(pg.New(pool))
	a.srv = service.New(a.repo, txManager, deps)
	a.api = handlers.New(a.srv, auth.NewMiddleware(deps.JWT, a.srv.Revocations), cfg.CORSOrigins)
	a.reconciler = reconcile.New(a.repo.WalletRepo, a.srv.WalletService, cfg.ReconcileInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startBackground(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

// NewDeps builds the collaborators shared by the server and creditctl.
func NewDeps(cfg *config.Config) (service.Deps, error) {
	cipher, err := vault.New(cfg.VaultSecret)
	if err != nil {
		return service.Deps{}, fmt.Errorf("%w: vault: %w", domain.ErrConfiguration, err)
	}
	jwtService, err := auth.NewJWTService(cfg.JWTSecret)
	if err != nil {
		return service.Deps{}, fmt.Errorf("%w: jwt: %w", domain.ErrConfiguration, err)
	}

	var mail mailer.Client = mailer.NoopMailer{}
	if cfg.SMTP.Enabled() {
		mail = mailer.NewSMTP(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		zap.L().Warn("SMTP is not configured, emails will only be logged")
	}

	platform := domain.Credentials{KeyID: cfg.PlatformKeyID, KeySecret: cfg.PlatformKeySecret}
	if platform.KeyID == "" || platform.KeySecret == "" {
		zap.L().Warn("platform gateway credentials are not configured, top-ups are disabled")
	}

	return service.Deps{
		Cipher:         cipher,
		Gateway:        gateway.New(cfg.GatewayURL, clients.NewHTTPClient()),
		Mailer:         mail,
		OTPs:           otp.NewStore(cfg.OTPTTL),
		JWT:            jwtService,
		Hash:           auth.NewHashService(cfg.BcryptCost),
		InitialCredits: decimal.NewFromInt(cfg.InitialCredits),
		Platform:       platform,
		SessionTTL:     cfg.SessionTTL,
		OTPTTL:         cfg.OTPTTL,
	}, nil
}

func OpenPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startBackground(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.otps.Run(ctx, otpSweepEvery)
	}()

	a.reconciler.Start(ctx)
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	if a.pool != nil {
		a.pool.Close()
	}
	return appErr
}
