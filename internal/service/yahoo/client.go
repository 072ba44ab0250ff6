// Package yahoo fetches daily OHLCV history from the Yahoo Finance
// chart API. It is the only place in the service that talks to the
// network: rate limiting and retries live here, not in the analysis
// code.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"StockLens/internal/domain/models"
	"StockLens/internal/domain/repository"
	applogger "StockLens/pkg/logger"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"
)

// Config holds provider settings.
type Config struct {
	BaseURL         string
	UserAgent       string
	RequestTimeout  time.Duration
	RequestsPerSec  float64
	Burst           int
	MaxRetryElapsed time.Duration
}

// Client implements repository.BarSource against the Yahoo v8 chart API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *applogger.Logger
	metrics    repository.Metrics
	cfg        Config
}

// NewClient creates a chart API client. The rate limiter is shared by
// all requests going through this client.
func NewClient(cfg Config, l *applogger.Logger, m repository.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "Mozilla/5.0"
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.RequestsPerSec == 0 {
		cfg.RequestsPerSec = 2
	}
	if cfg.Burst == 0 {
		cfg.Burst = 1
	}
	if cfg.MaxRetryElapsed == 0 {
		cfg.MaxRetryElapsed = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst),
		logger:     l.With("yahoo"),
		metrics:    m,
		cfg:        cfg,
	}
}

// chartResponse is the v8 chart API envelope. Quote arrays use pointers
// because Yahoo reports holidays and halts as nulls.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// DailyBars fetches daily bars for symbol over the given range.
func (c *Client) DailyBars(ctx context.Context, symbol string, r models.Range) (models.Series, error) {
	start := time.Now()
	series, err := c.fetch(ctx, symbol, r)
	c.metrics.RecordLatency("provider_fetch", time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordProviderFetch(symbol, "error")
		return nil, err
	}
	c.metrics.RecordProviderFetch(symbol, "success")
	return series, nil
}

func (c *Client) fetch(ctx context.Context, symbol string, r models.Range) (models.Series, error) {
	u := c.chartURL(symbol, r)

	var body []byte
	operation := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		switch {
		case resp.StatusCode == http.StatusOK:
			return nil
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(models.ErrNoData)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return fmt.Errorf("yahoo: status %d", resp.StatusCode)
		default:
			return backoff.Permanent(fmt.Errorf("yahoo: status %d", resp.StatusCode))
		}
	}

	strategy := backoff.NewExponentialBackOff()
	strategy.MaxElapsedTime = c.cfg.MaxRetryElapsed

	if err := backoff.Retry(operation, backoff.WithContext(strategy, ctx)); err != nil {
		if errors.Is(err, models.ErrNoData) {
			return nil, models.ErrNoData
		}
		c.logger.Warn("fetch failed",
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("yahoo fetch %s: %w", symbol, err)
	}

	return c.parseChart(symbol, body)
}

func (c *Client) chartURL(symbol string, r models.Range) string {
	q := url.Values{}
	q.Set("interval", "1d")
	if r.Explicit() {
		q.Set("period1", fmt.Sprintf("%d", r.Start.Unix()))
		q.Set("period2", fmt.Sprintf("%d", r.End.Unix()))
	} else {
		q.Set("range", r.Period)
	}
	return fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())
}

func (c *Client) parseChart(symbol string, body []byte) (models.Series, error) {
	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		if chart.Chart.Error.Code == "Not Found" {
			return nil, models.ErrNoData
		}
		return nil, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, models.ErrNoData
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, models.ErrNoData
	}
	quote := result.Indicators.Quote[0]

	series := make(models.Series, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		o := deref(quote.Open, i)
		h := deref(quote.High, i)
		lo := deref(quote.Low, i)
		cl := deref(quote.Close, i)
		if cl == 0 {
			continue
		}
		series = append(series, models.Bar{
			Timestamp: time.Unix(ts, 0).UTC(),
			Open:      o,
			High:      h,
			Low:       lo,
			Close:     cl,
			Volume:    deref(quote.Volume, i),
		})
	}
	if len(series) == 0 {
		return nil, models.ErrNoData
	}

	c.logger.Debug("fetched bars",
		applogger.String("symbol", symbol),
		applogger.Int("count", len(series)),
	)
	return series, nil
}

func deref(xs []*float64, i int) float64 {
	if i >= len(xs) || xs[i] == nil {
		return 0
	}
	return *xs[i]
}
