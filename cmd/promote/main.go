// Command promote grants or revokes the admin flag of an account by email
// address. It is used to bootstrap the first moderator.
//
// Usage:
//
//	promote --email=user@example.com
//	promote --email=user@example.com --revoke
//
// Reads the same configuration as the API server; --config overrides CONFIG_PATH.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres"
	"github.com/heartmarshall/gameitems-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/gameitems-backend/internal/app"
	"github.com/heartmarshall/gameitems-backend/internal/config"
	"github.com/heartmarshall/gameitems-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to promote")
	revoke := flag.Bool("revoke", false, "remove the admin flag instead of granting it")
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--revoke]")
		os.Exit(1)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	acc, err := account.New(pool).SetAdmin(ctx, domain.NormalizeEmail(*email), !*revoke)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Error("no account with that email", slog.String("email", *email))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("update admin flag", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("admin flag updated",
		slog.String("account_id", acc.ID.String()),
		slog.String("email", acc.Email),
		slog.Bool("is_admin", acc.IsAdmin),
	)
}
