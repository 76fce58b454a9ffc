package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/seva/internal/config"
	"github.com/GlebRadaev/seva/internal/handlers"
	"github.com/GlebRadaev/seva/internal/notify"
	"github.com/GlebRadaev/seva/internal/pg"
	"github.com/GlebRadaev/seva/internal/reconcile"
	"github.com/GlebRadaev/seva/internal/repo"
	"github.com/GlebRadaev/seva/internal/service"
	"github.com/GlebRadaev/seva/pkg/auth"
	"github.com/GlebRadaev/seva/pkg/clients"
	"github.com/GlebRadaev/seva/pkg/logger"
	"github.com/GlebRadaev/seva/pkg/oauth"
	"github.com/GlebRadaev/seva/pkg/payments"
	"github.com/GlebRadaev/seva/pkg/sms"
	"github.com/GlebRadaev/seva/pkg/storage"
)

const redisPingTimeout = 500 * time.Millisecond

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	reconciler *reconcile.Reconciler
	dispatcher *notify.Dispatcher

	pool  *pgxpool.Pool
	redis *redis.Client

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
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	conn := pg.New(pool)
	a.cfg = cfg
	a.pool = pool
	a.repo = repo.New(conn, txManager)

	httpClient := clients.NewHTTPClient()
	sender := sms.New(sms.Config{
		AccountSID: cfg.TwilioSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioPhone,
	}, httpClient)
	a.dispatcher = notify.New(notify.NewWorkerPool(cfg.NotifyWorkers), sender)

	files, err := storage.NewFileStore(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("can't prepare upload dir: %w", err)
	}
	tokens, err := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return fmt.Errorf("can't build token issuer: %w", err)
	}

	a.srv = service.New(a.repo, service.Deps{
		Hasher:   auth.NewHashService(bcrypt.DefaultCost),
		Tokens:   tokens,
		Notifier: a.dispatcher,
		Files:    files,
		Gateway:  payments.NewRazorpayClient(cfg.RazorpayKeyID, cfg.RazorpaySecret, httpClient),
		Identity: oauth.NewGoogleProvider(oauth.GoogleConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL(),
		}, httpClient.StdClient()),
		States: a.stateStore(ctx),
	})
	a.api = handlers.New(a.srv, cfg.ClientURL, cfg.UploadDir)
	a.reconciler = reconcile.New(a.repo.CampaignRepo, a.repo.DonationRepo, cfg.ReconcileInterval)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	cfgpool.MaxConns = 10
	cfgpool.MinConns = 1
	cfgpool.MaxConnLifetime = time.Hour
	cfgpool.MaxConnIdleTime = 30 * time.Minute

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

// stateStore picks redis when it is configured and reachable, memory otherwise.
func (a *Application) stateStore(ctx context.Context) oauth.StateStore {
	if a.cfg.RedisAddr == "" {
		return oauth.NewMemoryStateStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unavailable, oauth state kept in memory", zap.String("addr", a.cfg.RedisAddr), zap.Error(err))
		client.Close()
		return oauth.NewMemoryStateStore()
	}

	a.redis = client
	return oauth.NewRedisStateStore(client)
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

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.reconciler.Start(ctx)
	}()
}

// close releases outbound resources after every goroutine has returned.
func (a *Application) close() {
	if a.dispatcher != nil {
		a.dispatcher.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			zap.L().Warn("redis close failed", zap.Error(err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
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
	a.close()

	return appErr
}
