package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/AhmedEssamEsmail/SwapTool/internal/api/http"
	"github.com/AhmedEssamEsmail/SwapTool/internal/api/http/handlers"
	"github.com/AhmedEssamEsmail/SwapTool/internal/auth"
	"github.com/AhmedEssamEsmail/SwapTool/internal/config"
	"github.com/AhmedEssamEsmail/SwapTool/internal/events"
	"github.com/AhmedEssamEsmail/SwapTool/internal/observability"
	"github.com/AhmedEssamEsmail/SwapTool/internal/persistence"
	"github.com/AhmedEssamEsmail/SwapTool/internal/repository"
	"github.com/AhmedEssamEsmail/SwapTool/internal/service"
	"github.com/AhmedEssamEsmail/SwapTool/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
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

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	settingsCache := persistence.NewSettingsCache(redis, cfg.Redis.SettingsCacheTTL(), logger)

	pool := pg.Pool
	employeeRepo := repository.NewEmployeeRepository(pool)
	shiftRepo := repository.NewShiftRepository(pool)
	leaveRepo := repository.NewLeaveRequestRepository(pool)
	swapRepo := repository.NewSwapRequestRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		EmployeeRepo: employeeRepo,
	})
	directoryService := service.NewDirectoryService(service.DirectoryDependencies{
		EmployeeRepo: employeeRepo,
		BcryptCost:   cfg.Auth.BcryptCost,
	})
	scheduleService := service.NewScheduleService(service.ScheduleDependencies{
		ShiftRepo:    shiftRepo,
		EmployeeRepo: employeeRepo,
	})
	settingsService := service.NewSettingsService(service.SettingsDependencies{
		SettingRepo: settingRepo,
		Cache:       settingsCache,
		Dispatcher:  dispatcher,
	})
	leaveService := service.NewLeaveService(service.LeaveDependencies{
		LeaveRepo:  leaveRepo,
		Policy:     settingsService,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	swapService := service.NewSwapService(service.SwapDependencies{
		SwapRepo:     swapRepo,
		ShiftRepo:    shiftRepo,
		EmployeeRepo: employeeRepo,
		Dispatcher:   dispatcher,
		Metrics:      metrics,
	})

	notificationService := service.NewNotificationService(logger, cfg.Notification)
	notificationWorker := worker.StartNotificationWorker(dispatcher, notificationService, logger)
	defer notificationWorker.Stop()

	if created, err := directoryService.EnsureBootstrapAdmin(ctx, cfg.Bootstrap); err != nil {
		logger.Fatal("failed to seed bootstrap admin", zap.Error(err))
	} else if created {
		logger.Info("bootstrap admin created", zap.String("email", cfg.Bootstrap.AdminEmail))
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), employeeRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Employees:      handlers.NewEmployeesHandler(directoryService),
		Shifts:         handlers.NewShiftsHandler(scheduleService),
		Leaves:         handlers.NewLeaveRequestsHandler(leaveService),
		Swaps:          handlers.NewSwapRequestsHandler(swapService),
		Settings:       handlers.NewSettingsHandler(settingsService),
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

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
