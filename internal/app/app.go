package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/adapter/cache"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/game"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/item"
	listrepo "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/list"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/listchange"
	sharerepo "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/share"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/tag"
	tokenrepo "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/token"
	authpkg "github.com/heartmarshall/gameitems-backend/internal/auth"
	"github.com/heartmarshall/gameitems-backend/internal/config"
	authsvc "github.com/heartmarshall/gameitems-backend/internal/service/auth"
	"github.com/heartmarshall/gameitems-backend/internal/service/list"
	"github.com/heartmarshall/gameitems-backend/internal/service/listdetail"
	"github.com/heartmarshall/gameitems-backend/internal/service/moderation"
	"github.com/heartmarshall/gameitems-backend/internal/service/share"
	"github.com/heartmarshall/gameitems-backend/internal/service/token"
	"github.com/heartmarshall/gameitems-backend/internal/transport/middleware"
	"github.com/heartmarshall/gameitems-backend/internal/transport/rest"
)

// cacheStore is the list detail cache backend plus its lifecycle.
type cacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Redis, wires repositories, services and handlers, and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := newCache(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	clock := clockwork.NewRealClock()

	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(logger, cfg, pool, store, clock, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// NewHandler wires repositories, services and REST handlers on top of an
// open pool and cache, and returns the routed HTTP handler.
func NewHandler(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	store cacheStore,
	clock clockwork.Clock,
	limiter *middleware.RateLimiter,
) http.Handler {
	txm := postgres.NewTxManager(pool)

	// Repositories
	accountRepo := account.New(pool)
	gameRepo := game.New(pool)
	listRepo := listrepo.New(pool)
	tagRepo := tag.New(pool)
	itemRepo := item.New(pool)
	entryRepo := entry.New(pool)
	changeRepo := listchange.New(pool)
	shareRepo := sharerepo.New(pool)
	tokenRepo := tokenrepo.New(pool)

	// Services
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience, cfg.Auth.AccessTokenTTL, clock)
	tokenService := token.NewService(logger, tokenRepo, txm, token.NewLogAlertSink(logger), clock, cfg.Auth)
	authService := authsvc.NewService(logger, accountRepo, tokenService, jwtMgr, clock, cfg.Auth)

	listService := list.NewService(logger, listRepo, gameRepo, tagRepo, itemRepo, entryRepo, changeRepo, clock)
	detailService := listdetail.NewService(
		logger, listService, tagRepo, itemRepo, store,
		listdetail.NewLogObserver(logger), cfg.Redis,
	)
	moderationService := moderation.NewService(
		logger, changeRepo, listRepo, tagRepo, itemRepo, txm, detailService, clock,
	)
	shareService := share.NewService(logger, shareRepo, listRepo, listService, detailService, txm, clock)

	// Handlers
	var cachePinger interface {
		Ping(ctx context.Context) error
	}
	if cfg.Redis.Enabled() {
		cachePinger = store
	}

	handlers := Handlers{
		Health: rest.NewHealthHandler(pool, cachePinger, BuildVersion()),
		Auth:   rest.NewAuthHandler(authService, logger),
		Lists:  rest.NewListHandler(listService, detailService, logger),
		Share:  rest.NewShareHandler(shareService, logger),
		Admin:  rest.NewAdminHandler(moderationService, logger),
	}

	return NewRouter(logger, handlers, authService, cfg.CORS, limiter.Limit(cfg.RateLimit.AuthPerMinute))
}

// newCache connects to Redis when configured, falling back to the no-op backend.
func newCache(ctx context.Context, cfg config.RedisConfig) (cacheStore, error) {
	if !cfg.Enabled() {
		return cache.Noop{}, nil
	}
	r, err := cache.NewRedis(ctx, cfg.URL, cfg.KeyPrefix)
	if err != nil {
		return nil, err
	}
	return r, nil
}
