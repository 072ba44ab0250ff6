// Package extrema finds support/resistance price levels and statistical
// outliers in a bar series.
package extrema

import (
	"sort"

	"StockLens/internal/domain/models"
)

// Levels detects support and resistance levels with a centered rolling
// window: a bar's low is a support candidate when it equals the
// centered rolling minimum of lows, a bar's high is a resistance
// candidate when it equals the centered rolling maximum of highs. Only
// full windows count, so the first and last few bars contribute no
// candidates.
//
// The selection among unique candidates is deliberately asymmetric:
// support keeps the three HIGHEST candidates and resistance the three
// LOWEST, each ascending. The sets are independent and no ordering
// between them is implied.
func Levels(s models.Series, window int) models.LevelSet {
	set := models.LevelSet{Support: []float64{}, Resistance: []float64{}}
	if window < 2 || len(s) < window {
		return set
	}

	// Centered window geometry: the window for bar i starts (window-1)/2
	// bars to its left and spans window bars.
	back := (window - 1) / 2
	supportSeen := make(map[float64]struct{})
	resistSeen := make(map[float64]struct{})

	for i := range s {
		lo := i - back
		hi := lo + window // exclusive
		if lo < 0 || hi > len(s) {
			continue
		}

		winMin, winMax := s[lo].Low, s[lo].High
		for _, b := range s[lo+1 : hi] {
			if b.Low < winMin {
				winMin = b.Low
			}
			if b.High > winMax {
				winMax = b.High
			}
		}

		if s[i].Low == winMin {
			supportSeen[s[i].Low] = struct{}{}
		}
		if s[i].High == winMax {
			resistSeen[s[i].High] = struct{}{}
		}
	}

	set.Support = topAscending(supportSeen, 3)
	set.Resistance = bottomAscending(resistSeen, 3)
	return set
}

// topAscending returns the n largest unique values, ascending.
func topAscending(seen map[float64]struct{}, n int) []float64 {
	vals := sortedKeys(seen)
	if len(vals) > n {
		vals = vals[len(vals)-n:]
	}
	return vals
}

// bottomAscending returns the n smallest unique values, ascending.
func bottomAscending(seen map[float64]struct{}, n int) []float64 {
	vals := sortedKeys(seen)
	if len(vals) > n {
		vals = vals[:n]
	}
	return vals
}

func sortedKeys(seen map[float64]struct{}) []float64 {
	vals := make([]float64, 0, len(seen))
	for v := range seen {
		vals = append(vals, v)
	}
	sort.Float64s(vals)
	return vals
}
