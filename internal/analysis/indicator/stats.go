package indicator

import "StockLens/internal/domain/models"

// Returns computes the simple percentage change of close,
// r_t = close_t/close_{t-1} - 1. Defined from the second bar.
func Returns(s models.Series) models.IndicatorSeries {
	out := models.IndicatorSeries{Offset: 1}
	if len(s) < 2 {
		out.Offset = len(s)
		return out
	}
	out.Values = make([]float64, len(s)-1)
	for i := 1; i < len(s); i++ {
		out.Values[i-1] = s[i].Close/s[i-1].Close - 1
	}
	return out
}

// Summary computes the basic statistics of a cleaned series: mean and
// sample standard deviation of daily returns, the lowest low and
// highest high, last close, and mean volume. A series too short to form
// a single return cannot produce meaningful return moments and is
// reported as degenerate rather than zero-filled.
func Summary(s models.Series) (models.SummaryStats, error) {
	if len(s) == 0 {
		return models.SummaryStats{}, models.ErrEmptySeries
	}
	if len(s) < 2 {
		return models.SummaryStats{}, &models.DegenerateStatisticsError{Op: "return statistics"}
	}

	rets := Returns(s).Values
	mean := meanOf(rets)

	stats := models.SummaryStats{
		MeanReturn:   mean,
		StdDevReturn: sampleStd(rets, mean),
		MinPrice:     s[0].Low,
		MaxPrice:     s[0].High,
		CurrentPrice: s[len(s)-1].Close,
	}

	var volSum float64
	for _, b := range s {
		if b.Low < stats.MinPrice {
			stats.MinPrice = b.Low
		}
		if b.High > stats.MaxPrice {
			stats.MaxPrice = b.High
		}
		volSum += b.Volume
	}
	stats.VolumeAvg = volSum / float64(len(s))
	return stats, nil
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}
