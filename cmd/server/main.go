package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmoport/shipyard/internal/api"
	"cosmoport/shipyard/internal/config"
	"cosmoport/shipyard/internal/constants"
	"cosmoport/shipyard/internal/db"
	"cosmoport/shipyard/internal/logging"
	"cosmoport/shipyard/internal/metrics"
	"cosmoport/shipyard/internal/routes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"
)

const shutdownTimeout = 15 * time.Second

func main() {
	var (
		configName string
		port       int
	)

	root := &cobra.Command{
		Use:   "shipyard",
		Short: "Ship registry REST backend",
		Example: `  shipyard serve --port 8080
  shipyard migrate --config staging`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configName, "config", "", "config file name without extension (searched in ./config and .)")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configName)
			if err != nil {
				return err
			}

			// Flags override file and environment values
			cmd.Flags().Visit(func(f *pflag.Flag) {
				if f.Name == "port" {
					cfg.HTTP.Port = port
				}
			})

			return runServer(cmd.Context(), cfg)
		},
	}
	serve.Flags().IntVar(&port, "port", 8080, "HTTP listen port (overrides HTTP_PORT)")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ships table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configName)
			if err != nil {
				return err
			}

			gormDB, err := db.InitPostgresORM(cfg.PostgresDSN())
			if err != nil {
				return err
			}
			return db.Migrate(gormDB)
		},
	}

	root.AddCommand(serve, migrate)
	// Bare `shipyard` serves.
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := root.ExecuteContext(ctx)
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig(configName string) (*config.Config, error) {
	cfg, err := config.Load(configName)
	if err != nil {
		return nil, err
	}

	if err := logging.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		log.Printf("Failed to initialize logger: %v", err)
		return nil, err
	}
	return cfg, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logging.Info("Shipyard starting up",
		"environment", cfg.AppEnv,
		"store_driver", cfg.Store.Driver,
		"cache_backend", cfg.Cache.Backend,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	conns, err := openConnections(cfg)
	if err != nil {
		return err
	}
	defer closeConnections(conns)

	metricsReg := metrics.NewMetricsRegistry(prometheus.DefaultRegisterer)

	deps, err := api.InitDependencies(ctx, cfg, conns, metricsReg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	if deps.Services.Cache != nil {
		defer deps.Services.Cache.Close()
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(cfg, deps, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      mux,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Server starting", "port", cfg.HTTP.Port, "environment", cfg.AppEnv)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logging.Info("Shutdown signal received, draining connections")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logging.Info("Server stopped")
	return nil
}

// openConnections opens only the handle the configured store driver uses.
func openConnections(cfg *config.Config) (api.Connections, error) {
	var conns api.Connections
	dsn := cfg.PostgresDSN()

	switch cfg.Store.Driver {
	case constants.StoreDriverSQLX:
		sqlxDB, err := db.InitPostgres(dsn)
		if err != nil {
			return conns, err
		}
		conns.SQLX = sqlxDB

	default:
		gormDB, err := db.InitPostgresORM(dsn)
		if err != nil {
			return conns, err
		}
		conns.ORM = gormDB
	}
	return conns, nil
}

func closeConnections(conns api.Connections) {
	if conns.SQLX != nil {
		_ = conns.SQLX.Close()
	}
	if conns.ORM != nil {
		if sqlDB, err := conns.ORM.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
