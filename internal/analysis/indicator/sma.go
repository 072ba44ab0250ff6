// Package indicator computes rolling and exponential technical
// indicators over a cleaned bar series. Every function is pure: it
// takes a series, returns a value object, touches no shared state.
// Windowed indicators leave their warm-up region undefined via the
// IndicatorSeries offset instead of zero-filling it.
package indicator

import "StockLens/internal/domain/models"

// SMA computes the simple moving average of close over a trailing
// window. The first window-1 bars are undefined.
func SMA(s models.Series, window int) models.IndicatorSeries {
	return rollingMean(s.Closes(), window)
}

func rollingMean(xs []float64, window int) models.IndicatorSeries {
	out := models.IndicatorSeries{Offset: window - 1}
	if window < 1 || len(xs) < window {
		out.Offset = len(xs)
		return out
	}

	var sum float64
	for _, v := range xs[:window] {
		sum += v
	}
	out.Values = make([]float64, 0, len(xs)-window+1)
	out.Values = append(out.Values, sum/float64(window))
	for i := window; i < len(xs); i++ {
		sum += xs[i] - xs[i-window]
		out.Values = append(out.Values, sum/float64(window))
	}
	return out
}
