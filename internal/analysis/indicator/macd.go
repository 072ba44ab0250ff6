package indicator

import "StockLens/internal/domain/models"

// Standard MACD parameterization.
const (
	MACDFastWindow   = 12
	MACDSlowWindow   = 26
	MACDSignalWindow = 9
)

// MACD computes the MACD line (fast EMA minus slow EMA of close) and
// its signal line (EMA of the MACD line). Both follow the continuous
// EMA definition and are defined from the first bar; the classifier
// decides separately whether the history is long enough to act on.
func MACD(s models.Series, fast, slow, signal int) (line, signalLine models.IndicatorSeries) {
	closes := s.Closes()
	fastEMA := emaValues(closes, fast)
	slowEMA := emaValues(closes, slow)

	diff := make([]float64, len(closes))
	for i := range closes {
		diff[i] = fastEMA.Values[i] - slowEMA.Values[i]
	}
	line = models.IndicatorSeries{Values: diff}
	signalLine = emaValues(diff, signal)
	return line, signalLine
}
