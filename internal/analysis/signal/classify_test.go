package signal

import (
	"errors"
	"math"
	"testing"
	"time"

	"StockLens/internal/analysis/indicator"
	"StockLens/internal/domain/models"
)

func seriesFromCloses(closes []float64) models.Series {
	start := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	s := make(models.Series, len(closes))
	for i, c := range closes {
		s[i] = models.Bar{Timestamp: start.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c, Volume: 500}
	}
	return s
}

// ramp builds n closes moving linearly from a to b.
func ramp(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}
	return out
}

func TestRSITiers(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		tier   models.Tier
	}{
		{"overbought", ramp(100, 200, 20), models.TierBad},
		{"oversold", ramp(200, 100, 20), models.TierGood},
		{"flat neutral", ramp(100, 100, 20), models.TierWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := RSI(seriesFromCloses(tt.closes), DefaultRSIPeriod)
			if err != nil {
				t.Fatalf("rsi: %v", err)
			}
			if sig.Tier != tt.tier {
				t.Fatalf("expected tier %s, got %s (value %v)", tt.tier, sig.Tier, sig.Value)
			}
			if sig.Explanation == "" {
				t.Fatal("expected an explanation")
			}
		})
	}
}

func TestRSIInsufficientHistory(t *testing.T) {
	_, err := RSI(seriesFromCloses(ramp(1, 2, 5)), DefaultRSIPeriod)
	var ih *models.InsufficientHistoryError
	if !errors.As(err, &ih) {
		t.Fatalf("expected InsufficientHistoryError, got %v", err)
	}
	if ih.Indicator != "RSI" || ih.Required != DefaultRSIPeriod+1 {
		t.Fatalf("error must name the indicator and minimum: %+v", ih)
	}
}

func TestDeathCrossBearish(t *testing.T) {
	// Long decline: the 50-day average sits below the 200-day average.
	sig, err := DeathCross(seriesFromCloses(ramp(300, 100, 250)))
	if err != nil {
		t.Fatalf("death cross: %v", err)
	}
	if sig.Tier != models.TierBad || sig.Value != 1 {
		t.Fatalf("expected bearish cross, got %+v", sig)
	}
}

func TestDeathCrossBullish(t *testing.T) {
	sig, err := DeathCross(seriesFromCloses(ramp(100, 300, 250)))
	if err != nil {
		t.Fatalf("death cross: %v", err)
	}
	if sig.Tier != models.TierGood || sig.Value != 0 {
		t.Fatalf("expected bullish reading, got %+v", sig)
	}
}

func TestDeathCrossRequiresLongWindow(t *testing.T) {
	_, err := DeathCross(seriesFromCloses(ramp(100, 200, 150)))
	var ih *models.InsufficientHistoryError
	if !errors.As(err, &ih) {
		t.Fatalf("expected InsufficientHistoryError, got %v", err)
	}
	if ih.Required != LongMAWindow || ih.Have != 150 {
		t.Fatalf("unexpected error detail: %+v", ih)
	}
}

// The MACD signal tier must match the sign of line minus signal exactly.
func TestMACDTierMatchesSign(t *testing.T) {
	for _, closes := range [][]float64{
		ramp(100, 180, 60), // rising: positive gap
		ramp(180, 100, 60), // falling: negative gap
		ramp(100, 100, 60), // flat: zero gap
	} {
		s := seriesFromCloses(closes)
		sig, err := MACD(s)
		if err != nil {
			t.Fatalf("macd: %v", err)
		}

		line, sl := indicator.MACD(s,
			indicator.MACDFastWindow, indicator.MACDSlowWindow, indicator.MACDSignalWindow)
		m, _ := line.Last()
		g, _ := sl.Last()
		gap := m - g

		var want models.Tier
		switch {
		case gap > 0:
			want = models.TierGood
		case gap < 0:
			want = models.TierBad
		default:
			want = models.TierWarning
		}
		if sig.Tier != want {
			t.Fatalf("gap %v: expected tier %s, got %s", gap, want, sig.Tier)
		}
		if sig.Value != gap {
			t.Fatalf("signal value must be the gap: got %v want %v", sig.Value, gap)
		}
	}
}

// 300 synthetic bars: a ramp followed by 60 flat bars at 100. RSI reads
// neutral, MACD converges toward zero, and the death cross reflects the
// moving averages of the preceding ramp.
func TestComputeOnRampThenFlat(t *testing.T) {
	closes := append(ramp(50, 100, 240), ramp(100, 100, 60)...)
	s := seriesFromCloses(closes)

	bundle, err := Compute(s, DefaultRSIPeriod)
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if bundle.RSI.Value != 50 || bundle.RSI.Tier != models.TierWarning {
		t.Fatalf("expected neutral rsi on flat tail, got %+v", bundle.RSI)
	}
	if math.Abs(bundle.MACD.Value) > 0.05 {
		t.Fatalf("expected macd gap near zero, got %v", bundle.MACD.Value)
	}
	// After a rising ramp flattens out, the short average still sits at
	// or above the long one: no death cross.
	if bundle.DeathCross.Tier != models.TierGood {
		t.Fatalf("expected bullish death-cross reading, got %+v", bundle.DeathCross)
	}
}
