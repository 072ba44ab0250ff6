// Package series prepares raw bar series for analysis: cleaning,
// ordering, and resampling to coarser calendar frequencies.
package series

import (
	"math"
	"sort"

	"StockLens/internal/domain/models"
)

// Clean normalizes a raw provider series into one with strictly
// increasing timestamps and complete rows only.
// Bars with missing (NaN/Inf) or non-positive prices are dropped, the
// remainder is sorted ascending, and duplicate timestamps keep the last
// occurrence. Returns ErrEmptySeries when nothing survives.
func Clean(raw models.Series) (models.Series, error) {
	cleaned := make(models.Series, 0, len(raw))
	for _, b := range raw {
		if !complete(b) {
			continue
		}
		cleaned = append(cleaned, b)
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return cleaned[i].Timestamp.Before(cleaned[j].Timestamp)
	})

	// Duplicate timestamps: the later row wins, on the assumption that
	// the provider re-sent a corrected bar.
	deduped := cleaned[:0]
	for _, b := range cleaned {
		if n := len(deduped); n > 0 && deduped[n-1].Timestamp.Equal(b.Timestamp) {
			deduped[n-1] = b
			continue
		}
		deduped = append(deduped, b)
	}

	if len(deduped) == 0 {
		return nil, models.ErrEmptySeries
	}
	return deduped, nil
}

func complete(b models.Bar) bool {
	for _, v := range [...]float64{b.Open, b.High, b.Low, b.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	if math.IsNaN(b.Volume) || math.IsInf(b.Volume, 0) || b.Volume < 0 {
		return false
	}
	return !b.Timestamp.IsZero()
}
