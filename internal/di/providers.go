package di

import (
	"context"
	"fmt"
	"time"

	"StockLens/internal/domain/repository"
	"StockLens/internal/handler/api"
	"StockLens/internal/service/yahoo"
	"StockLens/internal/usecase"
	"StockLens/pkg/cache"
	"StockLens/pkg/config"
	xhttp "StockLens/pkg/http"
	applogger "StockLens/pkg/logger"
	"StockLens/pkg/metrics"
	"StockLens/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCacheStore creates the bar cache. With Redis enabled the
// in-memory store fronts it as a first layer.
func ProvideCacheStore(cfg *config.Config, l *applogger.Logger) (cache.Store, error) {
	memory := cache.NewMemory(cfg.Cache.MemoryMaxEntries)
	if !cfg.Cache.Redis.Enabled {
		return memory, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redis, err := cache.NewRedis(ctx, cache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
		Prefix:   cfg.Cache.Redis.Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}

	l.Info("redis cache connected", applogger.String("addr", cfg.Cache.Redis.Addr))
	return cache.NewLayered(memory, redis), nil
}

// ProvideBarSource creates the Yahoo Finance provider client.
func ProvideBarSource(cfg *config.Config, l *applogger.Logger, m repository.Metrics) repository.BarSource {
	return yahoo.NewClient(yahoo.Config{
		BaseURL:         cfg.Provider.BaseURL,
		UserAgent:       cfg.Provider.UserAgent,
		RequestTimeout:  cfg.Provider.RequestTimeout,
		RequestsPerSec:  cfg.Provider.RequestsPerSec,
		Burst:           cfg.Provider.Burst,
		MaxRetryElapsed: cfg.Provider.MaxRetryElapsed,
	}, l, m)
}

// ProvideAnalyzer creates the analysis use case.
func ProvideAnalyzer(
	cfg *config.Config,
	source repository.BarSource,
	store cache.Store,
	l *applogger.Logger,
	m repository.Metrics,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(source, store, cfg.Cache.TTL, usecase.Windows{
		SMA:       cfg.Analysis.SMAWindow,
		EMA:       cfg.Analysis.EMAWindow,
		RSIPeriod: cfg.Analysis.RSIPeriod,
		BBWindow:  cfg.Analysis.BBWindow,
		BBStdDev:  cfg.Analysis.BBStdDev,
	}, l, m)
}

// ProvideHandler creates the HTTP route handler.
func ProvideHandler(l *applogger.Logger, analyzer *usecase.Analyzer) xhttp.Handler {
	return api.NewAnalysisHandler(l, analyzer)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	store cache.Store,
	m repository.Metrics,
) *server.App {
	return server.New(cfg, l, handler, store, m)
}
