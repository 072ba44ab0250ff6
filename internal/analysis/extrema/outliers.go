package extrema

import (
	"math"
	"time"

	"StockLens/internal/domain/models"
)

// Outliers flags bars whose value in the given column sits more than
// threshold sample standard deviations from the column mean, returning
// their timestamps in series order. A column with zero deviation has no
// outliers by definition and yields an empty result.
func Outliers(s models.Series, column string, threshold float64) ([]time.Time, error) {
	xs, err := s.Column(column)
	if err != nil {
		return nil, err
	}
	if len(xs) < 2 {
		return []time.Time{}, nil
	}

	var sum float64
	for _, v := range xs {
		sum += v
	}
	mean := sum / float64(len(xs))

	var ss float64
	for _, v := range xs {
		d := v - mean
		ss += d * d
	}
	std := math.Sqrt(ss / float64(len(xs)-1))
	if std == 0 {
		return []time.Time{}, nil
	}

	out := []time.Time{}
	for i, v := range xs {
		if math.Abs(v-mean)/std > threshold {
			out = append(out, s[i].Timestamp)
		}
	}
	return out, nil
}
