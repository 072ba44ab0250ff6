package indicator

import "StockLens/internal/domain/models"

// RSI computes the Relative Strength Index with average gain and loss
// taken as trailing simple means of the positive and negative close
// changes over the period. The first value needs period deltas, so the
// series is defined from bar index period.
//
// Degenerate cases are pinned down explicitly: zero average loss with
// any gain means RSI 100; a fully flat window (no gains, no losses)
// reads as neutral 50.
func RSI(s models.Series, period int) models.IndicatorSeries {
	closes := s.Closes()
	out := models.IndicatorSeries{Offset: period}
	if period < 1 || len(closes) < period+1 {
		out.Offset = len(closes)
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i] = change
		} else {
			losses[i] = -change
		}
	}

	var sumGain, sumLoss float64
	for i := 1; i <= period; i++ {
		sumGain += gains[i]
		sumLoss += losses[i]
	}

	out.Values = make([]float64, 0, len(closes)-period)
	out.Values = append(out.Values, rsiPoint(sumGain, sumLoss))
	for i := period + 1; i < len(closes); i++ {
		sumGain += gains[i] - gains[i-period]
		sumLoss += losses[i] - losses[i-period]
		out.Values = append(out.Values, rsiPoint(sumGain, sumLoss))
	}
	return out
}

func rsiPoint(sumGain, sumLoss float64) float64 {
	switch {
	case sumLoss == 0 && sumGain == 0:
		return 50
	case sumLoss == 0:
		return 100
	}
	rs := sumGain / sumLoss
	return 100 - 100/(1+rs)
}
