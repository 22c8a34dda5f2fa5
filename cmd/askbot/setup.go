package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/internal/providers/rag"
	"github.com/sandevgo/askbot/internal/service/command"
	"github.com/sandevgo/askbot/internal/service/session"
	"github.com/sandevgo/askbot/internal/storage/history"
	"github.com/sandevgo/askbot/internal/transport/telegram"
	"github.com/sandevgo/askbot/pkg/log"
	"github.com/sandevgo/askbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	storageCfg := config.NewStorageConfig(ctx)
	backendCfg := config.NewBackendConfig(ctx)

	// 2. History store (durable with permanent in-memory fallback)
	store := history.New(ctx, storageCfg)
	services = append(services, srv.NewCleanup(store.Close))

	// 3. Query bridge
	bridge := rag.NewClient(backendCfg)

	// 4. Commands + orchestrator
	router := command.New(command.NewCommands(store))
	sess := session.New(store, bridge, router, storageCfg.WindowSize)

	// 5. Transports
	transports, err := initTransports(ctx, appCfg, sess)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	services = append(services, transports...)

	return services
}

func initTransports(ctx context.Context, cfg *config.AppConfig, sess *session.Service) ([]srv.Service, error) {
	var services []srv.Service

	if cfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, sess)
		if err != nil {
			return nil, err
		}
		services = append(services, bot)
	}

	return services, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
