// Command cleanup-tokens deletes refresh sessions that have expired or were
// revoked longer ago than the configured retention window. Their refresh
// tokens go with them. It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/gameitems-backend/internal/app"
	"github.com/heartmarshall/gameitems-backend/internal/config"
	"github.com/heartmarshall/gameitems-backend/internal/service/token"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := token.NewService(
		logger,
		tokenrepo.New(pool),
		postgres.NewTxManager(pool),
		token.NewLogAlertSink(logger),
		clockwork.NewRealClock(),
		cfg.Auth,
	)

	deleted, err := svc.Cleanup(ctx)
	if err != nil {
		logger.Error("token cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("token cleanup completed",
		slog.Int("deleted_sessions", deleted),
		slog.Duration("revoked_retention", cfg.Auth.RevokedRetention),
	)
}
