package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	accountservice "madr/contexts/identity-access/account-service"
	accountpostgres "madr/contexts/identity-access/account-service/adapters/postgres"

	bookservice "madr/contexts/catalog/book-service"
	bookpostgres "madr/contexts/catalog/book-service/adapters/postgres"
	novelistservice "madr/contexts/catalog/novelist-service"
	novelistpostgres "madr/contexts/catalog/novelist-service/adapters/postgres"

	"madr/internal/platform/config"
	"madr/internal/platform/db"
	"madr/internal/platform/httpserver"
	"madr/internal/platform/token"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	tokens, err := token.NewService(token.Config{
		SecretKey:     cfg.JWTSecretKey,
		Algorithm:     cfg.JWTAlgorithm,
		ExpireMinutes: cfg.AccessTokenExpireMinutes,
	})
	if err != nil {
		return nil, err
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(context.Background(), pg); err != nil {
		_ = pg.Close()
		return nil, err
	}

	accounts := accountservice.NewModule(accountservice.Dependencies{
		Repo:   accountpostgres.NewRepository(pg.DB, logger),
		Tokens: tokens,
		Logger: logger,
	})
	novelists := novelistservice.NewModule(novelistservice.Dependencies{
		Repo:   novelistpostgres.NewRepository(pg.DB, logger),
		Logger: logger,
	})
	books := bookservice.NewModule(bookservice.Dependencies{
		Repo:   bookpostgres.NewRepository(pg.DB, logger),
		Logger: logger,
	})

	server := httpserver.New(accounts, novelists, books, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
