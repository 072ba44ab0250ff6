// Package usecase orchestrates fetching, cleaning, and analysis of
// price history. Handlers call into Analyzer; Analyzer never touches
// HTTP concerns.
package usecase

import (
	"context"
	"encoding/json"
	"time"

	"StockLens/internal/analysis/extrema"
	"StockLens/internal/analysis/indicator"
	"StockLens/internal/analysis/series"
	"StockLens/internal/analysis/signal"
	"StockLens/internal/domain/models"
	"StockLens/internal/domain/repository"
	"StockLens/pkg/cache"
	applogger "StockLens/pkg/logger"
)

// Windows holds the indicator parameters the analyzer computes with.
type Windows struct {
	SMA       int
	EMA       int
	RSIPeriod int
	BBWindow  int
	BBStdDev  float64
}

// Analyzer is the service's central use case: cached bar retrieval plus
// every analysis the API exposes.
type Analyzer struct {
	source  repository.BarSource
	store   cache.Store
	ttl     time.Duration
	windows Windows
	logger  *applogger.Logger
	metrics repository.Metrics
}

// NewAnalyzer wires an analyzer. store may be nil to disable caching.
func NewAnalyzer(
	source repository.BarSource,
	store cache.Store,
	ttl time.Duration,
	windows Windows,
	l *applogger.Logger,
	m repository.Metrics,
) *Analyzer {
	return &Analyzer{
		source:  source,
		store:   store,
		ttl:     ttl,
		windows: windows,
		logger:  l.With("analyzer"),
		metrics: m,
	}
}

// Bars returns the cleaned daily series for a symbol, cache-aside. Only
// cleaned series are cached, so every consumer sees the same data.
func (a *Analyzer) Bars(ctx context.Context, symbol string, r models.Range) (models.Series, error) {
	key := a.cacheKey(symbol, r)

	if a.store != nil {
		if raw, err := a.store.Get(ctx, key); err == nil {
			var cached models.Series
			if err := json.Unmarshal(raw, &cached); err == nil {
				a.metrics.RecordCacheLookup(true)
				return cached, nil
			}
		}
		a.metrics.RecordCacheLookup(false)
	}

	fetched, err := a.source.DailyBars(ctx, symbol, r)
	if err != nil {
		a.metrics.RecordError("provider")
		return nil, err
	}

	cleaned, err := series.Clean(fetched)
	if err != nil {
		return nil, err
	}

	if a.store != nil {
		if raw, err := json.Marshal(cleaned); err == nil {
			if err := a.store.Set(ctx, key, raw, a.ttl); err != nil {
				a.logger.Warn("cache write failed", applogger.Error(err))
			}
		}
	}

	return cleaned, nil
}

// Analysis computes returns, the indicator bundle, and summary
// statistics over the cleaned series.
func (a *Analyzer) Analysis(ctx context.Context, symbol string, r models.Range) (*models.Analysis, error) {
	s, err := a.Bars(ctx, symbol, r)
	if err != nil {
		return nil, err
	}

	stats, err := indicator.Summary(s)
	if err != nil {
		return nil, err
	}

	line, signalLine := indicator.MACD(s,
		indicator.MACDFastWindow, indicator.MACDSlowWindow, indicator.MACDSignalWindow)
	upper, middle, lower := indicator.Bollinger(s, a.windows.BBWindow, a.windows.BBStdDev)

	return &models.Analysis{
		Series:  s,
		Returns: indicator.Returns(s),
		Indicators: models.IndicatorBundle{
			SMA:        indicator.SMA(s, a.windows.SMA),
			EMA:        indicator.EMA(s, a.windows.EMA),
			RSI:        indicator.RSI(s, a.windows.RSIPeriod),
			MACD:       line,
			MACDSignal: signalLine,
			BBUpper:    upper,
			BBMiddle:   middle,
			BBLower:    lower,
		},
		Stats: stats,
	}, nil
}

// Signals classifies the RSI, death cross, and MACD signals.
func (a *Analyzer) Signals(ctx context.Context, symbol string, r models.Range) (models.SignalBundle, error) {
	s, err := a.Bars(ctx, symbol, r)
	if err != nil {
		return models.SignalBundle{}, err
	}
	bundle, err := signal.Compute(s, a.windows.RSIPeriod)
	if err != nil {
		a.metrics.RecordError("insufficient_history")
		return models.SignalBundle{}, err
	}
	return bundle, nil
}

// Levels detects support and resistance levels with a centered window.
func (a *Analyzer) Levels(ctx context.Context, symbol string, r models.Range, window int) (models.LevelSet, error) {
	s, err := a.Bars(ctx, symbol, r)
	if err != nil {
		return models.LevelSet{}, err
	}
	return extrema.Levels(s, window), nil
}

// Outliers returns timestamps whose column value deviates from the mean
// by more than threshold standard deviations.
func (a *Analyzer) Outliers(ctx context.Context, symbol string, r models.Range, column string, threshold float64) ([]time.Time, error) {
	s, err := a.Bars(ctx, symbol, r)
	if err != nil {
		return nil, err
	}
	return extrema.Outliers(s, column, threshold)
}

// Resample aggregates the daily series into weekly or monthly bars and
// returns the per-bucket summed daily returns alongside.
func (a *Analyzer) Resample(ctx context.Context, symbol string, r models.Range, freq string) (models.Series, []float64, error) {
	s, err := a.Bars(ctx, symbol, r)
	if err != nil {
		return nil, nil, err
	}
	return series.Resample(s, freq)
}

func (a *Analyzer) cacheKey(symbol string, r models.Range) string {
	if r.Explicit() {
		return cache.Key("bars", symbol,
			r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
	}
	return cache.Key("bars", symbol, r.Period)
}
