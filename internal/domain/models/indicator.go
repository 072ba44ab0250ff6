package models

// IndicatorSeries holds a computed indicator aligned to a bar series.
// Values[i] belongs to the bar at index Offset+i; indices before Offset
// carry no value at all. Zero-filling the undefined head is allowed only
// when shaping the final JSON response, never inside computations.
type IndicatorSeries struct {
	Offset int
	Values []float64
}

// At returns the value for bar index i, or false when the indicator is
// undefined there.
func (s IndicatorSeries) At(i int) (float64, bool) {
	j := i - s.Offset
	if j < 0 || j >= len(s.Values) {
		return 0, false
	}
	return s.Values[j], true
}

// Last returns the value at the most recent bar, or false when the
// series never became defined.
func (s IndicatorSeries) Last() (float64, bool) {
	if len(s.Values) == 0 {
		return 0, false
	}
	return s.Values[len(s.Values)-1], true
}

// Len is the total number of bar positions the series spans, defined
// or not.
func (s IndicatorSeries) Len() int { return s.Offset + len(s.Values) }

// SummaryStats summarizes a cleaned series: return moments plus price
// and volume extremes over the full history.
type SummaryStats struct {
	MeanReturn   float64 `json:"mean_return"`
	StdDevReturn float64 `json:"std_dev"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	CurrentPrice float64 `json:"current_price"`
	VolumeAvg    float64 `json:"volume_avg"`
}

// LevelSet holds detected support and resistance price levels, each at
// most three values in ascending order.
type LevelSet struct {
	Support    []float64 `json:"support"`
	Resistance []float64 `json:"resistance"`
}

// IndicatorBundle collects the indicator series computed for one
// analysis request.
type IndicatorBundle struct {
	SMA        IndicatorSeries
	EMA        IndicatorSeries
	RSI        IndicatorSeries
	MACD       IndicatorSeries
	MACDSignal IndicatorSeries
	BBUpper    IndicatorSeries
	BBMiddle   IndicatorSeries
	BBLower    IndicatorSeries
}

// Analysis is the full output of the statistics engine for one series.
type Analysis struct {
	Series     Series
	Returns    IndicatorSeries
	Indicators IndicatorBundle
	Stats      SummaryStats
}
