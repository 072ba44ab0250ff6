package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StockLens/internal/domain/models"
	"StockLens/internal/usecase"
	applogger "StockLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

type fakeSource struct {
	series models.Series
	err    error
}

func (f *fakeSource) DailyBars(_ context.Context, _ string, _ models.Range) (models.Series, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.series, nil
}

type noopMetrics struct{}

func (noopMetrics) RecordRequest(_, _ string)         {}
func (noopMetrics) RecordProviderFetch(_, _ string)   {}
func (noopMetrics) RecordCacheLookup(_ bool)          {}
func (noopMetrics) RecordError(_ string)              {}
func (noopMetrics) RecordLatency(_ string, _ float64) {}

func rampSeries(n int) models.Series {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(models.Series, n)
	for i := range s {
		price := 100 + float64(i)*0.5
		s[i] = models.Bar{
			Timestamp: base.AddDate(0, 0, i),
			Open:      price,
			High:      price + 1,
			Low:       price - 1,
			Close:     price,
			Volume:    1000,
		}
	}
	return s
}

func testServer(t *testing.T, src *fakeSource) *echo.Echo {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	windows := usecase.Windows{SMA: 20, EMA: 20, RSIPeriod: 14, BBWindow: 20, BBStdDev: 2.0}
	analyzer := usecase.NewAnalyzer(src, nil, time.Minute, windows, l, noopMetrics{})

	e := echo.New()
	NewAnalysisHandler(l, analyzer).RegisterRoutes(e)
	return e
}

func doGet(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(10)})
	rec := doGet(e, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAnalysisEndpoint(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(260)})
	rec := doGet(e, "/api/analysis/AAPL?period=1y")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Status int          `json:"status"`
		Data   analysisView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Symbol != "AAPL" {
		t.Fatalf("symbol = %q", envelope.Data.Symbol)
	}
	if envelope.Data.Stats.CurrentPrice == 0 {
		t.Fatal("current price missing")
	}
	if len(envelope.Data.Dates) != 260 || len(envelope.Data.Close) != 260 {
		t.Fatalf("series lengths = %d/%d, want 260", len(envelope.Data.Dates), len(envelope.Data.Close))
	}
}

func TestIndicatorsEndpointSignals(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(260)})
	rec := doGet(e, "/api/indicators/AAPL?period=1y")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data signalsView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	sig := envelope.Data.Signals
	if sig.RSI.Tier == "" || sig.DeathCross.Tier == "" || sig.MACD.Tier == "" {
		t.Fatalf("incomplete signal bundle: %+v", sig)
	}
	if sig.DeathCross.Value != 0 {
		t.Fatalf("death cross on rising series = %v, want 0", sig.DeathCross.Value)
	}
}

func TestAnalysisNoData(t *testing.T) {
	e := testServer(t, &fakeSource{err: models.ErrNoData})
	rec := doGet(e, "/api/analysis/NOPE")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestIndicatorsInsufficientHistory(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(30)})
	rec := doGet(e, "/api/indicators/AAPL?period=1mo")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body = %s", rec.Code, rec.Body.String())
	}
}

func TestAnalysisBadPeriod(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(10)})
	rec := doGet(e, "/api/analysis/AAPL?period=7w")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalysisBadDateRange(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(10)})
	rec := doGet(e, "/api/analysis/AAPL?start=2024-06-01&end=2024-01-01")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalysisZeroFilledHead(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(60)})
	rec := doGet(e, "/api/analysis/AAPL")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data analysisView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	v := envelope.Data
	if len(v.Dates) != 60 || len(v.SMA) != 60 || len(v.RSI) != 60 {
		t.Fatalf("lengths = %d/%d/%d, want 60", len(v.Dates), len(v.SMA), len(v.RSI))
	}
	if v.SMA[0] != 0 || v.SMA[18] != 0 {
		t.Fatalf("sma head not zero-filled: %v, %v", v.SMA[0], v.SMA[18])
	}
	if v.SMA[19] == 0 {
		t.Fatal("first defined sma point is zero")
	}
	if v.RSI[13] != 0 || v.RSI[14] == 0 {
		t.Fatalf("rsi offset wrong: rsi[13]=%v rsi[14]=%v", v.RSI[13], v.RSI[14])
	}
	if v.Dates[0] != "2024-01-01" {
		t.Fatalf("dates[0] = %q", v.Dates[0])
	}
}

func TestOutliersInvalidColumn(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(30)})
	rec := doGet(e, "/api/outliers/AAPL?column=adjclose")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestResampleEndpoint(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(30)})
	rec := doGet(e, "/api/resample/AAPL?freq=W&period=1mo")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data resampleView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Freq != "W" {
		t.Fatalf("freq = %q", envelope.Data.Freq)
	}
	if len(envelope.Data.Bars) == 0 || len(envelope.Data.Bars) >= 30 {
		t.Fatalf("bars = %d", len(envelope.Data.Bars))
	}
	for _, b := range envelope.Data.Bars {
		d, err := time.Parse("2006-01-02", b.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", b.Date, err)
		}
		if d.Weekday() != time.Sunday {
			t.Fatalf("weekly label %q is not a Sunday", b.Date)
		}
	}
}

func TestResampleBadFreq(t *testing.T) {
	e := testServer(t, &fakeSource{series: rampSeries(30)})
	rec := doGet(e, "/api/resample/AAPL?freq=Q")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestZeroFill(t *testing.T) {
	s := models.IndicatorSeries{Offset: 2, Values: []float64{1.5, 2.5}}
	got := zeroFill(s, 4)
	want := []float64{0, 0, 1.5, 2.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("zeroFill = %v, want %v", got, want)
		}
	}
}
