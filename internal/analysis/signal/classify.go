// Package signal maps indicator readings at the last bar of a series
// to three-state signals with fixed thresholds and explanations.
package signal

import (
	"StockLens/internal/analysis/indicator"
	"StockLens/internal/domain/models"
)

// Moving-average windows for the death-cross comparison.
const (
	ShortMAWindow = 50
	LongMAWindow  = 200
)

// DefaultRSIPeriod is the classifier's RSI lookback.
const DefaultRSIPeriod = 14

// RSI classifies the latest RSI reading. Overbought above 70, oversold
// below 30, neutral in between.
func RSI(s models.Series, period int) (models.Signal, error) {
	v, ok := indicator.RSI(s, period).Last()
	if !ok {
		return models.Signal{}, &models.InsufficientHistoryError{
			Indicator: "RSI",
			Required:  period + 1,
			Have:      len(s),
		}
	}

	switch {
	case v > 70:
		return models.Signal{Value: v, Tier: models.TierBad,
			Explanation: "RSI is overbought (>70), suggesting a potential sell signal."}, nil
	case v < 30:
		return models.Signal{Value: v, Tier: models.TierGood,
			Explanation: "RSI is oversold (<30), suggesting a potential buy signal."}, nil
	default:
		return models.Signal{Value: v, Tier: models.TierWarning,
			Explanation: "RSI is in neutral territory (30-70)."}, nil
	}
}

// DeathCross compares the 50-day and 200-day simple moving averages at
// the last bar. Needs a full long window; shorter histories are
// reported as insufficient rather than silently defaulted.
func DeathCross(s models.Series) (models.Signal, error) {
	short, shortOK := indicator.SMA(s, ShortMAWindow).Last()
	long, longOK := indicator.SMA(s, LongMAWindow).Last()
	if !shortOK || !longOK {
		return models.Signal{}, &models.InsufficientHistoryError{
			Indicator: "death cross",
			Required:  LongMAWindow,
			Have:      len(s),
		}
	}

	if short < long {
		return models.Signal{Value: 1, Tier: models.TierBad,
			Explanation: "Death Cross detected (50-day MA below 200-day MA), indicating a bearish trend."}, nil
	}
	return models.Signal{Value: 0, Tier: models.TierGood,
		Explanation: "No Death Cross detected (50-day MA above 200-day MA), indicating a bullish trend."}, nil
}

// MACD classifies the gap between the MACD line and its signal line at
// the last bar. The recursive EMAs technically produce values from the
// first bar, but acting on fewer bars than the slow window would be
// noise, so that is the required minimum.
func MACD(s models.Series) (models.Signal, error) {
	if len(s) < indicator.MACDSlowWindow {
		return models.Signal{}, &models.InsufficientHistoryError{
			Indicator: "MACD",
			Required:  indicator.MACDSlowWindow,
			Have:      len(s),
		}
	}

	line, signalLine := indicator.MACD(s,
		indicator.MACDFastWindow, indicator.MACDSlowWindow, indicator.MACDSignalWindow)
	m, _ := line.Last()
	sg, _ := signalLine.Last()
	gap := m - sg

	switch {
	case gap > 0:
		return models.Signal{Value: gap, Tier: models.TierGood,
			Explanation: "MACD is above signal line, indicating bullish momentum."}, nil
	case gap < 0:
		return models.Signal{Value: gap, Tier: models.TierBad,
			Explanation: "MACD is below signal line, indicating bearish momentum."}, nil
	default:
		return models.Signal{Value: gap, Tier: models.TierWarning,
			Explanation: "MACD is at signal line, indicating neutral momentum."}, nil
	}
}

// Compute bundles the RSI, death-cross, and MACD signals for a series.
// Any insufficient-history condition fails the whole bundle so callers
// cannot mistake a default for a reading.
func Compute(s models.Series, rsiPeriod int) (models.SignalBundle, error) {
	var bundle models.SignalBundle
	var err error

	if bundle.RSI, err = RSI(s, rsiPeriod); err != nil {
		return models.SignalBundle{}, err
	}
	if bundle.DeathCross, err = DeathCross(s); err != nil {
		return models.SignalBundle{}, err
	}
	if bundle.MACD, err = MACD(s); err != nil {
		return models.SignalBundle{}, err
	}
	return bundle, nil
}
