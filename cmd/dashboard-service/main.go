package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-stock-dashboard/internal/dashboard/config"
	delivery "golang-stock-dashboard/internal/dashboard/delivery/http"
	"golang-stock-dashboard/internal/dashboard/repository"
	"golang-stock-dashboard/internal/dashboard/service"
	"golang-stock-dashboard/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

var configPath string

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Starts the dashboard web server",
		Run:   runServe,
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "health",
		Short:        "Checks whether the backend API is reachable",
		RunE:         runHealth,
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(newServeCmd(), newHealthCmd())
	return rootCmd
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger := bootstrap()
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service",
		logger.Field("name", cfg.App.Name),
		logger.StringField("env", cfg.App.Env),
		logger.StringField("version", cfg.App.Version),
		logger.StringField("backend", cfg.Backend.APIBaseURL()))

	// Initialize repositories
	gateway := repository.NewGateway(cfg.Backend, appLogger)
	backendRepo := repository.NewBackendRepository(gateway)

	// Initialize services
	validate := service.NewValidator()
	services := delivery.Services{
		Dashboard:       service.NewDashboardService(backendRepo, cfg.Backend, appLogger),
		StockManagement: service.NewStockManagementService(backendRepo, validate, appLogger),
		PriceHistory:    service.NewPriceHistoryService(backendRepo, validate, appLogger),
		Projections:     service.NewProjectionsService(backendRepo, validate, appLogger),
		Settings:        service.NewSettingsService(backendRepo, cfg.Backend, appLogger),
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	renderer, err := delivery.NewTemplateRenderer()
	if err != nil {
		appLogger.Fatal("Failed to load templates", logger.ErrorField(err))
	}
	e.Renderer = renderer
	e.Use(middleware.RequestID())
	e.Use(delivery.RequestLogger(appLogger))
	e.Use(middleware.Recover())

	// Initialize handlers and routes
	pageHandler, err := delivery.NewPageHandler(services, delivery.NewFlashStore(cfg.UI.FlashTTL), cfg.UI.Title, time.Now, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize page handler", logger.ErrorField(err))
	}
	pageHandler.RegisterRoutes(e.Group(""))

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, appLogger := bootstrap()
	defer func() { _ = appLogger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Backend.Timeout)
	defer cancel()

	settings := service.NewSettingsService(repository.NewBackendRepository(repository.NewGateway(cfg.Backend, appLogger)), cfg.Backend, appLogger)
	msg := settings.Probe(ctx)
	fmt.Fprintln(cmd.OutOrStdout(), msg.Text)
	if msg.Level != service.LevelSuccess {
		return fmt.Errorf("backend at %s is not healthy", cfg.Backend.HealthURL())
	}
	return nil
}

func bootstrap() (*config.Config, *logger.Logger) {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return cfg, appLogger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
