package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/auth-service/internal/api/http"
	"github.com/spec-kit/auth-service/internal/api/http/handlers"
	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/directory"
	"github.com/spec-kit/auth-service/internal/observability"
	"github.com/spec-kit/auth-service/internal/persistence"
	"github.com/spec-kit/auth-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warn("AUTH_JWT_SECRET not set; using the insecure development default")
	}

	dir := directory.NewHTTPClient(cfg.Directory)

	var redis *persistence.Redis
	var registry auth.RevocationRegistry
	stopSweeper := func() {}

	if cfg.Redis.Addr != "" {
		redis = persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		registry = auth.NewRedisRegistry(redis.Client)
		logger.Info("using redis revocation registry", zap.String("addr", cfg.Redis.Addr))
	} else {
		memory := auth.NewMemoryRegistry()
		registry = memory
		stopSweeper = startSweeper(memory, cfg.Auth.SweepInterval(), logger)
	}
	defer stopSweeper()

	sessions := service.NewSessionService(cfg.Auth, dir, registry)
	authMiddleware := auth.NewMiddleware(sessions.TokenVerifier())

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dir, redis),
		Auth:           handlers.NewAuthHandler(sessions),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// startSweeper prunes naturally-expired revocation entries on an interval.
// Only the in-memory registry needs this; Redis entries expire via key TTL.
func startSweeper(registry *auth.MemoryRegistry, interval time.Duration, logger *zap.Logger) func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := registry.Sweep(time.Now()); removed > 0 {
					logger.Info("swept expired revocations", zap.Int("removed", removed))
				}
			case <-done:
				return
			}
		}
	}()
	return func() { close(done) }
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
