package models

import "time"

// Bar is one OHLCV observation for a single trading day.
type Bar struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

// Series is an ordered sequence of bars. A valid series has strictly
// increasing timestamps; missing trading days are simply absent.
type Series []Bar

func (s Series) Len() int { return len(s) }

// Last returns the most recent bar.
func (s Series) Last() (Bar, bool) {
	if len(s) == 0 {
		return Bar{}, false
	}
	return s[len(s)-1], true
}

// Closes extracts the close column.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Timestamps extracts the timestamp column.
func (s Series) Timestamps() []time.Time {
	out := make([]time.Time, len(s))
	for i, b := range s {
		out[i] = b.Timestamp
	}
	return out
}

// Column returns the named OHLCV column, or InvalidColumnError for an
// unknown name.
func (s Series) Column(name string) ([]float64, error) {
	out := make([]float64, len(s))
	for i, b := range s {
		switch name {
		case ColumnOpen:
			out[i] = b.Open
		case ColumnHigh:
			out[i] = b.High
		case ColumnLow:
			out[i] = b.Low
		case ColumnClose:
			out[i] = b.Close
		case ColumnVolume:
			out[i] = b.Volume
		default:
			return nil, &InvalidColumnError{Column: name}
		}
	}
	return out, nil
}

// Column names accepted by Series.Column and the outlier detector.
const (
	ColumnOpen   = "open"
	ColumnHigh   = "high"
	ColumnLow    = "low"
	ColumnClose  = "close"
	ColumnVolume = "volume"
)

// Resample frequencies, matching the calendar bucket labels of the API.
const (
	FreqWeekly  = "W"
	FreqMonthly = "M"
)

// Range selects the bar history to fetch: either an explicit start/end
// pair or a named period such as "1y".
type Range struct {
	Start  time.Time
	End    time.Time
	Period string
}

// Explicit reports whether the range carries concrete dates rather than
// a named period.
func (r Range) Explicit() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}
