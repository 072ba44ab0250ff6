package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockLens/internal/domain/repository"
	"StockLens/pkg/cache"
	"StockLens/pkg/config"
	xhttp "StockLens/pkg/http"
	applogger "StockLens/pkg/logger"
)

// App encapsulates the application lifecycle: it owns the HTTP server
// and the cache store and shuts both down on SIGINT/SIGTERM.
type App struct {
	cfg     *config.Config
	logger  *applogger.Logger
	handler xhttp.Handler
	store   cache.Store
	metrics repository.Metrics

	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	store cache.Store,
	m repository.Metrics,
) *App {
	return &App{
		cfg:     cfg,
		logger:  l.With("app"),
		handler: handler,
		store:   store,
		metrics: m,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	opts := []xhttp.ServerOption{
		xhttp.WithHost(a.cfg.Server.Host),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(a.cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
	}
	if a.metrics != nil {
		opts = append(opts, xhttp.WithRequestRecorder(a.metrics))
	}
	a.httpServer = xhttp.NewServer(a.handler, a.logger, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
