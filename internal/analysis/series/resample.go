package series

import (
	"fmt"
	"sort"
	"time"

	"StockLens/internal/domain/models"
)

// Resample aggregates a cleaned daily series into weekly or monthly
// calendar buckets: open = first, high = max, low = min, close = last,
// volume = sum. The second result sums the daily close-to-close returns
// falling into each bucket, aligned with the returned bars. Bucket
// labels are the week's Sunday and the month's last calendar day, so
// the output stays strictly ascending by timestamp.
func Resample(s models.Series, freq string) (models.Series, []float64, error) {
	if len(s) == 0 {
		return nil, nil, models.ErrEmptySeries
	}

	label, err := bucketLabel(freq)
	if err != nil {
		return nil, nil, err
	}

	type bucket struct {
		bar models.Bar
		ret float64
	}
	buckets := make(map[time.Time]*bucket)
	var order []time.Time

	for i, b := range s {
		key := label(b.Timestamp)

		var ret float64
		if i > 0 {
			ret = b.Close/s[i-1].Close - 1
		}

		agg, ok := buckets[key]
		if !ok {
			buckets[key] = &bucket{
				bar: models.Bar{
					Timestamp: key,
					Open:      b.Open,
					High:      b.High,
					Low:       b.Low,
					Close:     b.Close,
					Volume:    b.Volume,
				},
				ret: ret,
			}
			order = append(order, key)
			continue
		}
		if b.High > agg.bar.High {
			agg.bar.High = b.High
		}
		if b.Low < agg.bar.Low {
			agg.bar.Low = b.Low
		}
		agg.bar.Close = b.Close
		agg.bar.Volume += b.Volume
		agg.ret += ret
	}

	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	out := make(models.Series, 0, len(order))
	rets := make([]float64, 0, len(order))
	for _, key := range order {
		out = append(out, buckets[key].bar)
		rets = append(rets, buckets[key].ret)
	}
	return out, rets, nil
}

func bucketLabel(freq string) (func(time.Time) time.Time, error) {
	switch freq {
	case models.FreqWeekly:
		return weekEnd, nil
	case models.FreqMonthly:
		return monthEnd, nil
	default:
		return nil, fmt.Errorf("unsupported resample frequency %q", freq)
	}
}

// weekEnd labels a day with the Sunday closing its week.
func weekEnd(t time.Time) time.Time {
	days := (7 - int(t.Weekday())) % 7
	d := t.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// monthEnd labels a day with the last calendar day of its month.
func monthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}
