package repository

import (
	"context"

	"StockLens/internal/domain/models"
)

// BarSource fetches daily OHLCV history for a symbol. Implementations
// own all network concerns: rate limiting, retries, provider quirks.
// The compute core only ever sees the returned series.
type BarSource interface {
	DailyBars(ctx context.Context, symbol string, r models.Range) (models.Series, error)
}

// Metrics records operational metrics for the service.
type Metrics interface {
	RecordRequest(endpoint, status string)
	RecordProviderFetch(symbol, outcome string)
	RecordCacheLookup(hit bool)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
