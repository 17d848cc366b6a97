package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	coreport "github.com/amirhossein-jamali/ledger/internal/domain/port/core"
	transferUseCase "github.com/amirhossein-jamali/ledger/internal/domain/usecase/transfer"
	userUseCase "github.com/amirhossein-jamali/ledger/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/api/validation"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/seed"
	timeProvider "github.com/amirhossein-jamali/ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func main() {
	bootLogger := logger.NewDefaultLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fatal(bootLogger, "Failed to load configuration", err)
	}
	if err := cfg.Validate(); err != nil {
		fatal(bootLogger, "Configuration validation failed", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger.Format, coreport.ParseLogLevel(cfg.Logger.Level))
	if err != nil {
		fatal(bootLogger, "Failed to create logger", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	// In-memory ledger and its unit of work
	ledgerDB := database.NewLedgerDB(tp, appLogger)
	uow := database.NewUnitOfWork(ledgerDB, appLogger)

	// Metrics are exported through an SDK provider unless disabled
	ledgerMetrics := metrics.NewNoopLedgerMetrics()
	var meterProvider *sdkmetric.MeterProvider
	if cfg.Metrics.Enabled {
		meterProvider, err = metrics.NewMeterProvider(context.Background(), metrics.ProviderConfig{
			ServiceName:    cfg.Metrics.ServiceName,
			Environment:    cfg.Environment,
			Exporter:       cfg.Metrics.Exporter,
			Endpoint:       cfg.Metrics.Endpoint,
			ExportInterval: cfg.Metrics.ExportInterval,
		})
		if err != nil {
			fatal(appLogger, "Failed to create meter provider", err)
		}
		otel.SetMeterProvider(meterProvider)

		ledgerMetrics, err = metrics.NewOtelLedgerMetrics(meterProvider, cfg.Metrics.MeterName)
		if err != nil {
			fatal(appLogger, "Failed to create metrics", err)
		}

		appLogger.Info("Metrics enabled", map[string]any{
			"exporter": cfg.Metrics.Exporter,
			"interval": cfg.Metrics.ExportInterval.String(),
		})
	}

	// Initialize use cases
	userUseCaseImpl := userUseCase.NewUserUseCase(uow, tp, ledgerMetrics, appLogger)
	transferUseCaseImpl := transferUseCase.NewTransferService(uow, tp, ledgerMetrics, appLogger)

	// Create default users
	if cfg.Ledger.SeedOnStartup {
		if _, err := seed.CreateDefaultUsers(context.Background(), userUseCaseImpl, cfg.Ledger.SeedUsers, appLogger); err != nil {
			fatal(appLogger, "Failed to create default users", err)
		}
	}

	if err := validation.Register(); err != nil {
		fatal(appLogger, "Failed to register request validations", err)
	}

	router := routes.NewRouter(appLogger, tp, routes.Handlers{
		User:     handler.NewUserHandler(userUseCaseImpl, appLogger),
		Transfer: handler.NewTransferHandler(transferUseCaseImpl, appLogger),
		Health:   handler.NewHealthHandler(tp),
	})

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"address": server.Addr,
			"env":     cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		fatal(appLogger, "Failed to start server", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	if meterProvider != nil {
		if err := meterProvider.Shutdown(ctx); err != nil {
			appLogger.Error("Failed to flush metrics", map[string]any{
				"error": err.Error(),
			})
		}
	}

	appLogger.Info("Server exited gracefully", nil)
}

func fatal(log coreport.Logger, message string, err error) {
	log.Error(message, map[string]any{"error": err.Error()})
	_ = log.Flush()
	os.Exit(1)
}
