package indicator

import "StockLens/internal/domain/models"

// EMA computes the exponential moving average of close with smoothing
// factor 2/(window+1), seeded with the first close. The recursive
// definition is continuous, so the series is defined from the first bar.
func EMA(s models.Series, window int) models.IndicatorSeries {
	return emaValues(s.Closes(), window)
}

func emaValues(xs []float64, window int) models.IndicatorSeries {
	if window < 1 || len(xs) == 0 {
		return models.IndicatorSeries{Offset: len(xs)}
	}

	alpha := 2.0 / float64(window+1)
	out := make([]float64, len(xs))
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return models.IndicatorSeries{Values: out}
}
