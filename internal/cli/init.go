// Package cli provides common initialization used by the budgetplan commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"budgetplan/internal/amqp"
	"budgetplan/internal/backend"
	"budgetplan/internal/budget"
	"budgetplan/internal/config"
	applog "budgetplan/internal/log"
	"budgetplan/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration from the environment and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger builds the application logger and installs it as the slog default.
// Proration tracing is emitted at debug level, so enabling it lowers the level.
func SetupLogger(cfg *config.Config) *applog.Logger {
	level, err := applog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	if cfg.TraceProration {
		level = slog.LevelDebug
	}
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
		Output:    os.Stderr,
	})
	applog.SetDefault(logger)
	return logger
}

// ConnectPublisher dials AMQP when configured. A failed dial is logged and
// yields no publisher so edits keep working without notifications.
func ConnectPublisher(logger *applog.Logger, cfg *config.Config) *amqp.Client {
	if cfg.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Warn("Failed to initialize AMQP client, continuing without change notifications", applog.FieldError, err)
		return nil
	}
	logger.Info("Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return client
}

// App bundles what a command needs to run.
type App struct {
	Config  *config.Config
	Logger  *applog.Logger
	Service *services.BudgetService

	backend *backend.BackendResult
}

// NewApp loads configuration and wires the configured backend, publisher and service.
func NewApp(ctx context.Context) (*App, error) {
	LoadEnvFile()
	cfg, err := LoadAndValidateConfig()
	if err != nil {
		return nil, err
	}
	logger := SetupLogger(cfg)

	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	res, err := backend.NewFactory(logger.WithComponent(applog.ComponentBackend).Logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return nil, fmt.Errorf("create %s backend: %w", backendCfg.Type, err)
	}

	var publisher services.Publisher
	if client := ConnectPublisher(logger.WithComponent(applog.ComponentAMQP), cfg); client != nil {
		publisher = client
	}

	var planOpts []budget.Option
	if cfg.TraceProration {
		planOpts = append(planOpts, budget.WithTracer(logger.WithComponent(applog.ComponentProration)))
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: services.NewBudgetService(res.Repository, res.Writer, publisher, logger, planOpts...),
		backend: res,
	}, nil
}

// Close releases the publisher and the backend.
func (a *App) Close() error {
	var errs []error
	if err := a.Service.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := a.backend.Close(); err != nil {
		errs = append(errs, fmt.Errorf("backend: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close app: %v", errs)
	}
	return nil
}

// ShutdownContext returns a context cancelled on SIGINT or SIGTERM.
func ShutdownContext(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Shutdown signal received", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
