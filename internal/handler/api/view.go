package api

import (
	"StockLens/internal/domain/models"
	"StockLens/pkg/util"
)

type analysisView struct {
	Symbol     string              `json:"symbol"`
	Dates      []string            `json:"dates"`
	Close      []float64           `json:"close"`
	Volume     []float64           `json:"volume"`
	Returns    []float64           `json:"returns"`
	SMA        []float64           `json:"sma"`
	EMA        []float64           `json:"ema"`
	RSI        []float64           `json:"rsi"`
	MACD       []float64           `json:"macd"`
	MACDSignal []float64           `json:"macd_signal"`
	BBUpper    []float64           `json:"bb_upper"`
	BBMiddle   []float64           `json:"bb_middle"`
	BBLower    []float64           `json:"bb_lower"`
	Stats      models.SummaryStats `json:"stats"`
}

type signalsView struct {
	Symbol  string              `json:"symbol"`
	Signals models.SignalBundle `json:"signals"`
}

type levelsView struct {
	Symbol string          `json:"symbol"`
	Window int             `json:"window"`
	Levels models.LevelSet `json:"levels"`
}

type outliersView struct {
	Symbol    string   `json:"symbol"`
	Column    string   `json:"column"`
	Threshold float64  `json:"threshold"`
	Dates     []string `json:"dates"`
}

type resampleBarView struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
	Return float64 `json:"return"`
}

type resampleView struct {
	Symbol string            `json:"symbol"`
	Freq   string            `json:"freq"`
	Bars   []resampleBarView `json:"bars"`
}

func newAnalysisView(symbol string, a *models.Analysis) analysisView {
	n := len(a.Series)
	dates := make([]string, n)
	volumes := make([]float64, n)
	for i, b := range a.Series {
		dates[i] = util.FormatDate(b.Timestamp)
		volumes[i] = b.Volume
	}
	return analysisView{
		Symbol:     symbol,
		Dates:      dates,
		Close:      a.Series.Closes(),
		Volume:     volumes,
		Returns:    zeroFill(a.Returns, n),
		SMA:        zeroFill(a.Indicators.SMA, n),
		EMA:        zeroFill(a.Indicators.EMA, n),
		RSI:        zeroFill(a.Indicators.RSI, n),
		MACD:       zeroFill(a.Indicators.MACD, n),
		MACDSignal: zeroFill(a.Indicators.MACDSignal, n),
		BBUpper:    zeroFill(a.Indicators.BBUpper, n),
		BBMiddle:   zeroFill(a.Indicators.BBMiddle, n),
		BBLower:    zeroFill(a.Indicators.BBLower, n),
		Stats:      a.Stats,
	}
}

func newResampleView(symbol, freq string, s models.Series, rets []float64) resampleView {
	bars := make([]resampleBarView, len(s))
	for i, b := range s {
		bars[i] = resampleBarView{
			Date:   util.FormatDate(b.Timestamp),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
			Return: rets[i],
		}
	}
	return resampleView{Symbol: symbol, Freq: freq, Bars: bars}
}

// zeroFill expands an indicator series to n points, writing zeros where
// the indicator is undefined. JSON carries no NaN, so the undefined
// head becomes zeros at this boundary only.
func zeroFill(s models.IndicatorSeries, n int) []float64 {
	out := make([]float64, n)
	for i, v := range s.Values {
		idx := s.Offset + i
		if idx >= 0 && idx < n {
			out[idx] = v
		}
	}
	return out
}
