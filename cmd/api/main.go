package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/job-board/internal/api/http"
	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/persistence"
	"github.com/spec-kit/job-board/internal/repository"
	"github.com/spec-kit/job-board/internal/service"
	"github.com/spec-kit/job-board/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if pg.Enabled() && cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	userRepo, jobRepo, applicationRepo := repositories(pg)

	var sessions auth.SessionStore
	if redis.Enabled() {
		sessions = auth.NewRedisSessionStore(redis.Client, cfg.Redis.KeyPrefix)
	} else {
		sessions = auth.NewMemorySessionStore()
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartNotificationWorker(service.NewNotificationService(dispatcher, logger, cfg.Notification))

	authService, err := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo: userRepo,
		Sessions: sessions,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}
	jobService := service.NewJobService(service.JobDependencies{
		JobRepo:    jobRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	applicationService := service.NewApplicationService(service.ApplicationDependencies{
		ApplicationRepo: applicationRepo,
		JobRepo:         jobRepo,
		UserRepo:        userRepo,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	directoryService := service.NewDirectoryService(service.DirectoryDependencies{
		UserRepo:        userRepo,
		JobRepo:         jobRepo,
		ApplicationRepo: applicationRepo,
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:         logger,
		Metrics:        metrics,
		Timeout:        cfg.App.RequestTimeout(),
		AllowOrigins:   cfg.CORS.AllowOrigins,
		ExposeInternal: cfg.App.ExposeInternalErrors(),
	})
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Metrics:        handlers.NewMetricsHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Jobs:           handlers.NewJobsHandler(jobService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		Directory:      handlers.NewDirectoryHandler(directoryService),
		AuthMiddleware: auth.NewAuthMiddleware(authService.TokenManager(), userRepo, sessions),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// repositories picks the Postgres repositories when a pool is configured and
// the in-process store otherwise.
func repositories(pg *persistence.Postgres) (repository.UserRepository, repository.JobRepository, repository.ApplicationRepository) {
	if pg.Enabled() {
		pool := pg.PoolHandle()
		return repository.NewUserRepository(pool), repository.NewJobRepository(pool), repository.NewApplicationRepository(pool)
	}
	store := repository.NewMemoryStore()
	return store.Users(), store.Jobs(), store.Applications()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
