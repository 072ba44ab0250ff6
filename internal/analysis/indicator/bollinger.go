package indicator

import (
	"math"

	"StockLens/internal/domain/models"
)

// Bollinger computes Bollinger Bands: middle = SMA(window), the outer
// bands at ±k rolling standard deviations. The rolling deviation is the
// sample standard deviation (n-1 denominator); that choice is fixed
// here so the bands are reproducible. All three series share the SMA
// warm-up offset.
func Bollinger(s models.Series, window int, k float64) (upper, middle, lower models.IndicatorSeries) {
	closes := s.Closes()
	middle = rollingMean(closes, window)

	upper = models.IndicatorSeries{Offset: middle.Offset}
	lower = models.IndicatorSeries{Offset: middle.Offset}
	if len(middle.Values) == 0 {
		return upper, middle, lower
	}

	upper.Values = make([]float64, len(middle.Values))
	lower.Values = make([]float64, len(middle.Values))
	for j, mean := range middle.Values {
		sd := sampleStd(closes[j:j+window], mean)
		upper.Values[j] = mean + k*sd
		lower.Values[j] = mean - k*sd
	}
	return upper, middle, lower
}

// sampleStd is the standard deviation with n-1 denominator around a
// known mean. Zero for windows of one.
func sampleStd(xs []float64, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var ss float64
	for _, v := range xs {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
