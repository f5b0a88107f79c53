package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ogurasousui/staff-directory/internal/adapters/httpapi"
	zapnotify "github.com/ogurasousui/staff-directory/internal/adapters/notify"
	"github.com/ogurasousui/staff-directory/internal/adapters/repository/kvstore"
	"github.com/ogurasousui/staff-directory/internal/core/directory"
	"github.com/ogurasousui/staff-directory/internal/core/session"
	"github.com/ogurasousui/staff-directory/internal/platform/config"
	"github.com/ogurasousui/staff-directory/internal/platform/kv"
	"github.com/ogurasousui/staff-directory/internal/platform/logging"
	"github.com/ogurasousui/staff-directory/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// .env はあれば読み込みます。
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	store, err := kv.New(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("failed to initialize blob store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	employeeRepo := kvstore.NewEmployeeRepository(store)
	sessionRepo := kvstore.NewSessionRepository(store)

	directoryStore := directory.NewStore(employeeRepo, nil)
	if err := directoryStore.Load(ctx); err != nil {
		logger.Fatal("failed to load employee records", zap.Error(err))
	}

	gate := session.NewGate(sessionRepo)
	if err := gate.Restore(ctx); err != nil {
		logger.Fatal("failed to restore session", zap.Error(err))
	}

	notifier := zapnotify.NewZapNotifier(logger)
	handler := httpapi.NewHandler(directoryStore, gate, notifier, logger)
	httpServer := server.New(cfg.Server.ListenAddr, handler.Router())

	logger.Info("HTTP server listening", zap.String("addr", cfg.Server.ListenAddr))

	if err := httpServer.Run(ctx); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}
