package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "log-query/internal/http"
	"log-query/internal/shared/configs"
	"log-query/internal/shared/loggers"
)

// App is the HTTP service: it holds all dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "log-query").
		Logger()

	resultStore, err := newResultStore(config)
	if err != nil {
		return nil, err
	}

	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	routerOptions := internalhttp.RouterOptions{
		ResultStore:  resultStore,
		MaxBodyBytes: config.Server.MaxBodyBytes,
	}
	router := internalhttp.NewRouter(newAggregationEngine(config), routerOptions, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting log-query service on port %d (log_level=%s, mapper_count=%d, partition_count=%d, store_dir=%q)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Aggregation.MapperCount,
			app.config.Aggregation.PartitionCount,
			app.config.Output.StoreDir)

	return app.server.ListenAndServe()
}

// Shutdown stops accepting requests and waits for in-flight aggregations until ctx is done.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")
	return nil
}
